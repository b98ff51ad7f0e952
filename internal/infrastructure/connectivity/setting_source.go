// Package connectivity adapts the persisted wifi flag to the pane's
// connectivity port.
package connectivity

import (
	"context"
	"sync/atomic"

	"github.com/bnema/mockbrowse/internal/application/port"
	"github.com/bnema/mockbrowse/internal/domain/entity"
	"github.com/bnema/mockbrowse/internal/domain/repository"
	"github.com/bnema/mockbrowse/internal/logging"
)

// SettingSource reads connectivity from the settings repository.
type SettingSource struct {
	repo    repository.SettingRepository
	failing atomic.Bool
}

var _ port.ConnectivitySource = (*SettingSource)(nil)

// NewSettingSource creates a source backed by repo.
func NewSettingSource(repo repository.SettingRepository) *SettingSource {
	return &SettingSource{repo: repo}
}

// Connected reports the stored flag. An unset key or a failed read both
// count as connected. A read failure is logged at warn when it starts and
// at debug while it persists.
func (s *SettingSource) Connected(ctx context.Context) bool {
	log := logging.FromContext(ctx)

	setting, err := s.repo.Get(ctx, entity.SettingWiFiEnabled)
	if err != nil {
		if s.failing.CompareAndSwap(false, true) {
			log.Warn().Err(err).Msg("failed to read connectivity flag, assuming connected")
		} else {
			log.Debug().Err(err).Msg("connectivity flag still unreadable")
		}
		return entity.ParseConnectivity("", false)
	}
	if s.failing.CompareAndSwap(true, false) {
		log.Info().Msg("connectivity flag readable again")
	}
	if setting == nil {
		return entity.ParseConnectivity("", false)
	}
	return entity.ParseConnectivity(setting.Value, true)
}

// Static is a fixed ConnectivitySource.
type Static bool

// Connected returns the fixed value.
func (s Static) Connected(context.Context) bool {
	return bool(s)
}
