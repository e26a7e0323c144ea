package repository

import (
	"context"
	"time"

	"github.com/slab-org/slab-gangnam4/internal/domain"
)

func (r *Repository) GetAllScheduleTemplates() ([]*domain.ScheduleTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, day_of_week, shift, week_type, staff_name, created_at
		FROM schedule_templates
		ORDER BY day_of_week, shift, week_type
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.ScheduleTemplate, 0)
	for rows.Next() {
		t := &domain.ScheduleTemplate{}
		if err := rows.Scan(&t.ID, &t.DayOfWeek, &t.Shift, &t.WeekType, &t.StaffName, &t.CreatedAt); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

// UpsertScheduleTemplate 은 (day_of_week, shift, week_type) 유니크 제약을
// 충돌 키로 쓴다.
func (r *Repository) UpsertScheduleTemplate(ctx context.Context, dayOfWeek int, shift domain.Shift, weekType domain.WeekType, staffName string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO schedule_templates (day_of_week, shift, week_type, staff_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (day_of_week, shift, week_type)
		DO UPDATE SET staff_name = EXCLUDED.staff_name
	`

	if _, err := r.dbpool.ExecContext(ctx, query, dayOfWeek, shift, weekType, staffName); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteScheduleTemplate(ctx context.Context, dayOfWeek int, shift domain.Shift, weekType domain.WeekType) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM schedule_templates
		WHERE day_of_week = $1 AND shift = $2 AND week_type = $3
	`

	if _, err := r.dbpool.ExecContext(ctx, query, dayOfWeek, shift, weekType); err != nil {
		return err
	}

	return nil
}
