package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bnema/mockbrowse/internal/application/port"
	"github.com/bnema/mockbrowse/internal/domain/entity"
	"github.com/bnema/mockbrowse/internal/domain/repository"
	"github.com/bnema/mockbrowse/internal/logging"
)

const (
	getSettingQuery    = `SELECT key, value, updated_at FROM settings WHERE key = ?`
	upsertSettingQuery = `INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deleteSettingQuery = `DELETE FROM settings WHERE key = ?`
)

type settingRepo struct {
	provider port.DatabaseProvider
}

// NewSettingRepository creates a SQLite-backed setting repository.
func NewSettingRepository(provider port.DatabaseProvider) repository.SettingRepository {
	return &settingRepo{provider: provider}
}

func (r *settingRepo) Get(ctx context.Context, key entity.SettingKey) (*entity.Setting, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	var (
		setting   entity.Setting
		updatedAt int64
	)
	err = db.QueryRowContext(ctx, getSettingQuery, string(key)).Scan(&setting.Key, &setting.Value, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	setting.UpdatedAt = time.UnixMilli(updatedAt)
	return &setting, nil
}

func (r *settingRepo) Set(ctx context.Context, setting *entity.Setting) error {
	logging.FromContext(ctx).Debug().
		Str("key", string(setting.Key)).
		Str("value", setting.Value).
		Msg("saving setting")

	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	updatedAt := setting.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	_, err = db.ExecContext(ctx, upsertSettingQuery, string(setting.Key), setting.Value, updatedAt.UnixMilli())
	return err
}

func (r *settingRepo) Delete(ctx context.Context, key entity.SettingKey) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, deleteSettingQuery, string(key))
	return err
}
