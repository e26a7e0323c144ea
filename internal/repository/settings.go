package repository

import (
	"context"
	"time"
)

func (r *Repository) GetSetting(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT value FROM schedule_settings WHERE key = $1
	`

	var value string
	if err := r.dbpool.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		return "", err
	}

	return value, nil
}

// UpsertSetting 은 key 유니크 제약을 충돌 키로 쓴다.
func (r *Repository) UpsertSetting(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO schedule_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value
	`

	if _, err := r.dbpool.ExecContext(ctx, query, key, value); err != nil {
		return err
	}

	return nil
}
