package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentosplus/talentos-backend-go/internal/domain/dimension"
	"github.com/talentosplus/talentos-backend-go/internal/pkg/database"
)

// dimensionRepositoryImpl serves one of the three dimension tables;
// they share a schema (id BIGSERIAL, name with a unique index on
// LOWER(name)), so one implementation parameterized by table name
// covers all of them.
type dimensionRepositoryImpl struct {
	db    *database.DB
	table string
}

func NewDepartmentRepository(db *database.DB) dimension.Repository {
	return &dimensionRepositoryImpl{db: db, table: "departments"}
}

func NewPositionRepository(db *database.DB) dimension.Repository {
	return &dimensionRepositoryImpl{db: db, table: "positions"}
}

func NewEducationLevelRepository(db *database.DB) dimension.Repository {
	return &dimensionRepositoryImpl{db: db, table: "education_levels"}
}

// GetOrCreateByName implements dimension.Repository.
func (r *dimensionRepositoryImpl) GetOrCreateByName(ctx context.Context, name string) (dimension.Dimension, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, name
		FROM %s
		WHERE LOWER(name) = LOWER($1)
	`, r.table)

	var result dimension.Dimension
	err := q.QueryRow(ctx, query, name).Scan(&result.ID, &result.Name)
	if err == nil {
		return result, nil
	}
	if err != pgx.ErrNoRows {
		return dimension.Dimension{}, fmt.Errorf("failed to look up %s: %w", r.table, err)
	}

	// Not found: atomic upsert against the LOWER(name) unique index, so a
	// concurrent creator with the same name yields the same row. The
	// no-op DO UPDATE makes RETURNING yield the surviving row's id.
	insert := fmt.Sprintf(`
		INSERT INTO %s (name, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		ON CONFLICT (LOWER(name)) DO UPDATE SET updated_at = NOW()
		RETURNING id, name
	`, r.table)

	err = q.QueryRow(ctx, insert, name).Scan(&result.ID, &result.Name)
	if err != nil {
		return dimension.Dimension{}, fmt.Errorf("failed to create %s row: %w", r.table, err)
	}

	return result, nil
}

// GetAll implements dimension.Repository.
func (r *dimensionRepositoryImpl) GetAll(ctx context.Context) ([]dimension.Dimension, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, name
		FROM %s
		ORDER BY name ASC
	`, r.table)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", r.table, err)
	}
	defer rows.Close()

	var results []dimension.Dimension
	for rows.Next() {
		var d dimension.Dimension
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.table, err)
		}
		results = append(results, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return results, nil
}
