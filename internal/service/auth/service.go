package auth

import (
	"context"
	"errors"

	"github.com/talentosplus/talentos-backend-go/internal/domain/auth"
	"github.com/talentosplus/talentos-backend-go/internal/domain/employee"
	"github.com/talentosplus/talentos-backend-go/internal/pkg/jwt"
)

type AuthService interface {
	// Login verifies the email + document-number credential pair and
	// issues an access token for the matching employee.
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
}

type authServiceImpl struct {
	employeeService employee.Service
	jwtService      jwt.Service
}

func NewAuthService(employeeService employee.Service, jwtService jwt.Service) AuthService {
	return &authServiceImpl{
		employeeService: employeeService,
		jwtService:      jwtService,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	emp, err := s.employeeService.GetByEmail(ctx, employee.SanitizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if emp.DocumentNumber != req.DocumentNumber {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.FirstName+" "+emp.LastName)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
