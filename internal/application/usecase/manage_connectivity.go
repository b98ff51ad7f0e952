package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/mockbrowse/internal/domain/entity"
	"github.com/bnema/mockbrowse/internal/domain/repository"
	"github.com/bnema/mockbrowse/internal/logging"
)

// ConnectivityStatus describes the stored connectivity flag.
type ConnectivityStatus struct {
	Connected bool
	// Explicit is false when no value is stored and Connected is the default.
	Explicit bool
	Raw      string
}

// ManageConnectivityUseCase writes the simulated network flag that browser
// panes poll. It plays the desktop's Wi-Fi toggle.
type ManageConnectivityUseCase struct {
	settingRepo repository.SettingRepository
}

// NewManageConnectivityUseCase creates a new connectivity management use case.
func NewManageConnectivityUseCase(settingRepo repository.SettingRepository) *ManageConnectivityUseCase {
	return &ManageConnectivityUseCase{settingRepo: settingRepo}
}

// Enable stores the flag as connected.
func (uc *ManageConnectivityUseCase) Enable(ctx context.Context) error {
	return uc.set(ctx, true)
}

// Disable stores the flag as disconnected.
func (uc *ManageConnectivityUseCase) Disable(ctx context.Context) error {
	return uc.set(ctx, false)
}

func (uc *ManageConnectivityUseCase) set(ctx context.Context, connected bool) error {
	log := logging.FromContext(ctx)

	setting := entity.NewSetting(entity.SettingWiFiEnabled, entity.FormatConnectivity(connected))
	if err := uc.settingRepo.Set(ctx, setting); err != nil {
		return fmt.Errorf("failed to store connectivity flag: %w", err)
	}

	log.Info().Bool("connected", connected).Msg("connectivity flag stored")
	return nil
}

// Reset removes the stored flag so readers fall back to connected.
func (uc *ManageConnectivityUseCase) Reset(ctx context.Context) error {
	if err := uc.settingRepo.Delete(ctx, entity.SettingWiFiEnabled); err != nil {
		return fmt.Errorf("failed to reset connectivity flag: %w", err)
	}

	logging.FromContext(ctx).Info().Msg("connectivity flag reset to default")
	return nil
}

// Status reads the stored flag.
func (uc *ManageConnectivityUseCase) Status(ctx context.Context) (*ConnectivityStatus, error) {
	setting, err := uc.settingRepo.Get(ctx, entity.SettingWiFiEnabled)
	if err != nil {
		return nil, fmt.Errorf("failed to read connectivity flag: %w", err)
	}

	if setting == nil {
		return &ConnectivityStatus{Connected: entity.ParseConnectivity("", false)}, nil
	}
	return &ConnectivityStatus{
		Connected: entity.ParseConnectivity(setting.Value, true),
		Explicit:  true,
		Raw:       setting.Value,
	}, nil
}
