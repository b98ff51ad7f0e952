package repository

import (
	"context"

	"github.com/bnema/mockbrowse/internal/domain/entity"
)

// SettingRepository defines operations for desktop setting persistence.
type SettingRepository interface {
	// Get retrieves a setting by key.
	// Returns nil if the key has never been written.
	Get(ctx context.Context, key entity.SettingKey) (*entity.Setting, error)

	// Set saves or updates a setting.
	Set(ctx context.Context, setting *entity.Setting) error

	// Delete removes a setting so readers fall back to their default.
	Delete(ctx context.Context, key entity.SettingKey) error
}
