package repository

import (
	"context"
	"time"

	"github.com/slab-org/slab-gangnam4/internal/domain"
)

// GetHandovers 는 날짜 범위(둘 다 nil 이면 전체)에 해당하는 메모를
// 최신순으로 한 페이지 돌려준다. 두 번째 반환값은 범위 전체 건수다.
func (r *Repository) GetHandovers(from, to *time.Time, limit, offset int) ([]*domain.Handover, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT count(*) OVER(), id, author, content, date, created_at
		FROM handovers
		WHERE ($1::date IS NULL OR date >= $1)
		  AND ($2::date IS NULL OR date <= $2)
		ORDER BY date DESC, created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.dbpool.QueryContext(ctx, query, from, to, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	memos := make([]*domain.Handover, 0)
	total := 0
	for rows.Next() {
		m := &domain.Handover{}
		if err := rows.Scan(&total, &m.ID, &m.Author, &m.Content, &m.Date, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		memos = append(memos, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return memos, total, nil
}

func (r *Repository) CreateHandover(m *domain.Handover) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO handovers (author, content, date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	if err := r.dbpool.QueryRowContext(ctx, query, m.Author, m.Content, m.Date).Scan(&m.ID, &m.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteHandover(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM handovers WHERE id = $1
	`

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
