package master

import (
	"context"
	"strings"

	"github.com/talentosplus/talentos-backend-go/internal/domain/dimension"
)

// DefaultDepartmentName replaces blank department names during resolution.
const DefaultDepartmentName = "General"

type MasterService interface {
	dimension.Resolver

	ListDepartments(ctx context.Context) ([]dimension.Dimension, error)
	ListPositions(ctx context.Context) ([]dimension.Dimension, error)
	ListEducationLevels(ctx context.Context) ([]dimension.Dimension, error)
}

type masterServiceImpl struct {
	departmentRepo     dimension.Repository
	positionRepo       dimension.Repository
	educationLevelRepo dimension.Repository
}

func NewMasterService(
	departmentRepo dimension.Repository,
	positionRepo dimension.Repository,
	educationLevelRepo dimension.Repository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo:     departmentRepo,
		positionRepo:       positionRepo,
		educationLevelRepo: educationLevelRepo,
	}
}

// ResolveDepartment implements dimension.Resolver. A blank name is
// substituted with the "General" fallback before lookup, so department
// resolution never fails on empty input.
func (s *masterServiceImpl) ResolveDepartment(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultDepartmentName
	}
	d, err := s.departmentRepo.GetOrCreateByName(ctx, name)
	if err != nil {
		return 0, err
	}
	return d.ID, nil
}

// ResolvePosition implements dimension.Resolver.
func (s *masterServiceImpl) ResolvePosition(ctx context.Context, name string) (int64, error) {
	d, err := s.positionRepo.GetOrCreateByName(ctx, name)
	if err != nil {
		return 0, err
	}
	return d.ID, nil
}

// ResolveEducationLevel implements dimension.Resolver.
func (s *masterServiceImpl) ResolveEducationLevel(ctx context.Context, name string) (int64, error) {
	d, err := s.educationLevelRepo.GetOrCreateByName(ctx, name)
	if err != nil {
		return 0, err
	}
	return d.ID, nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]dimension.Dimension, error) {
	return listAll(ctx, s.departmentRepo)
}

func (s *masterServiceImpl) ListPositions(ctx context.Context) ([]dimension.Dimension, error) {
	return listAll(ctx, s.positionRepo)
}

func (s *masterServiceImpl) ListEducationLevels(ctx context.Context) ([]dimension.Dimension, error) {
	return listAll(ctx, s.educationLevelRepo)
}

func listAll(ctx context.Context, repo dimension.Repository) ([]dimension.Dimension, error) {
	results, err := repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	// Empty list instead of null in responses.
	if len(results) == 0 {
		return []dimension.Dimension{}, nil
	}
	return results, nil
}
