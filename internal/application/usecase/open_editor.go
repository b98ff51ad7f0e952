package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/mockbrowse/internal/application/port"
	"github.com/bnema/mockbrowse/internal/domain/entity"
	"github.com/bnema/mockbrowse/internal/logging"
)

// OpenEditorUseCase resolves the editor leaf view and can hand its URL to
// the desktop. The view itself has no interaction surface.
type OpenEditorUseCase struct {
	view   entity.EmbeddedView
	opener port.URLOpener
}

// NewOpenEditorUseCase creates the editor use case. An empty url selects
// entity.DefaultEditorURL. opener may be nil when launching is unavailable.
func NewOpenEditorUseCase(url string, opener port.URLOpener) *OpenEditorUseCase {
	return &OpenEditorUseCase{
		view:   entity.NewEditorView(url),
		opener: opener,
	}
}

// View returns the embedded view descriptor.
func (uc *OpenEditorUseCase) View() entity.EmbeddedView {
	return uc.view
}

// Launch opens the editor URL with the desktop handler.
func (uc *OpenEditorUseCase) Launch(ctx context.Context) error {
	if uc.opener == nil {
		return fmt.Errorf("no URL opener available")
	}

	logging.FromContext(ctx).Debug().Str("url", uc.view.URL).Msg("launching editor view")
	if err := uc.opener.Open(ctx, uc.view.URL); err != nil {
		return fmt.Errorf("failed to open %s: %w", uc.view.URL, err)
	}
	return nil
}
