package repository

import (
	"context"
	"time"

	"github.com/slab-org/slab-gangnam4/internal/domain"
)

// GetScheduleOverridesInRange 는 from 이상 to 이하의 오버라이드를
// 날짜순으로 돌려준다.
func (r *Repository) GetScheduleOverridesInRange(from, to time.Time) ([]*domain.ScheduleOverride, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, date, shift, staff_name, created_at
		FROM schedule_overrides
		WHERE date >= $1 AND date <= $2
		ORDER BY date, shift
	`

	rows, err := r.dbpool.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := make([]*domain.ScheduleOverride, 0)
	for rows.Next() {
		o := &domain.ScheduleOverride{}
		if err := rows.Scan(&o.ID, &o.Date, &o.Shift, &o.StaffName, &o.CreatedAt); err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return overrides, nil
}

// UpsertScheduleOverride 는 (date, shift) 유니크 제약을 충돌 키로 쓴다.
func (r *Repository) UpsertScheduleOverride(date time.Time, shift domain.Shift, staffName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO schedule_overrides (date, shift, staff_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (date, shift)
		DO UPDATE SET staff_name = EXCLUDED.staff_name
	`

	if _, err := r.dbpool.ExecContext(ctx, query, date, shift, staffName); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteScheduleOverride(date time.Time, shift domain.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM schedule_overrides WHERE date = $1 AND shift = $2
	`

	if _, err := r.dbpool.ExecContext(ctx, query, date, shift); err != nil {
		return err
	}

	return nil
}

// DeleteScheduleOverridesByDate 는 하루를 기본 근무로 되돌린다.
func (r *Repository) DeleteScheduleOverridesByDate(date time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM schedule_overrides WHERE date = $1
	`

	if _, err := r.dbpool.ExecContext(ctx, query, date); err != nil {
		return err
	}

	return nil
}
