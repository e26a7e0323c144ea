package repository

import (
	"context"
	"time"

	"github.com/slab-org/slab-gangnam4/internal/domain"
)

func (r *Repository) GetAllStaff() ([]*domain.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, created_at FROM staff ORDER BY name
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staffList := make([]*domain.Staff, 0)
	for rows.Next() {
		s := &domain.Staff{}
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		staffList = append(staffList, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return staffList, nil
}

func (r *Repository) GetStaffByID(id int64) (*domain.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT name, created_at FROM staff WHERE id = $1
	`

	s := &domain.Staff{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&s.Name, &s.CreatedAt); err != nil {
		return nil, err
	}

	return s, nil
}

func (r *Repository) CreateStaff(s *domain.Staff) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO staff (name) VALUES ($1) RETURNING id, created_at
	`

	if err := r.dbpool.QueryRowContext(ctx, query, s.Name).Scan(&s.ID, &s.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateStaff(s *domain.Staff) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	// 이름 변경은 staff 행에만 반영된다. 템플릿과 오버라이드는 이름을
	// 그대로 들고 있으므로 과거 배정은 바뀌지 않는다.
	query := `
		UPDATE staff SET name = $1 WHERE id = $2 RETURNING created_at
	`

	if err := r.dbpool.QueryRowContext(ctx, query, s.Name, s.ID).Scan(&s.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteStaff(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM staff WHERE id = $1
	`

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
