package connectivity

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/mockbrowse/internal/domain/entity"
	repomocks "github.com/bnema/mockbrowse/internal/domain/repository/mocks"
	"github.com/bnema/mockbrowse/internal/logging"
)

func TestSettingSource_Connected(t *testing.T) {
	tests := []struct {
		name    string
		setting *entity.Setting
		err     error
		want    bool
	}{
		{name: "unset defaults to connected", want: true},
		{name: "true", setting: entity.NewSetting(entity.SettingWiFiEnabled, "true"), want: true},
		{name: "false", setting: entity.NewSetting(entity.SettingWiFiEnabled, "false"), want: false},
		{name: "garbage reads as disconnected", setting: entity.NewSetting(entity.SettingWiFiEnabled, "yes"), want: false},
		{name: "read error assumes connected", err: errors.New("database is locked"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repomocks.NewMockSettingRepository(t)
			repo.EXPECT().Get(mock.Anything, entity.SettingWiFiEnabled).Return(tt.setting, tt.err).Once()

			assert.Equal(t, tt.want, NewSettingSource(repo).Connected(context.Background()))
		})
	}
}

func TestStatic(t *testing.T) {
	assert.True(t, Static(true).Connected(context.Background()))
	assert.False(t, Static(false).Connected(context.Background()))
}

func TestSettingSource_PersistentFailureWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(logging.Config{Level: zerolog.WarnLevel, Format: "json"}, &buf)
	ctx := logging.WithContext(context.Background(), logger)

	repo := repomocks.NewMockSettingRepository(t)
	readErr := errors.New("open database: unable to open database file")
	repo.EXPECT().Get(mock.Anything, entity.SettingWiFiEnabled).Return(nil, readErr).Times(5)
	repo.EXPECT().Get(mock.Anything, entity.SettingWiFiEnabled).Return(nil, nil).Once()
	repo.EXPECT().Get(mock.Anything, entity.SettingWiFiEnabled).Return(nil, readErr).Once()

	source := NewSettingSource(repo)
	for range 5 {
		assert.True(t, source.Connected(ctx))
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "failed to read connectivity flag"))

	// Recovery re-arms the warning.
	assert.True(t, source.Connected(ctx))
	assert.True(t, source.Connected(ctx))
	assert.Equal(t, 2, strings.Count(buf.String(), "failed to read connectivity flag"))
}
