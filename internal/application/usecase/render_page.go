package usecase

import "github.com/bnema/mockbrowse/internal/domain/entity"

// RenderPage maps pane state to its render tree. It has no side effects.
//
// While disconnected only the placeholder is produced, whatever the address
// or active tab. Its retry control is TryAgain, which refreshes the spinner
// and leaves connectivity to the next poll.
func RenderPage(state entity.PaneState, tabs entity.TabList, collections []entity.LinkCollection) entity.PageView {
	if !state.Connected {
		return entity.PageView{
			Kind: entity.ViewDisconnected,
			Placeholder: &entity.DisconnectedPlaceholder{
				Heading:    "You Are Not Connected to the Internet",
				Message:    "This page can't be displayed because your computer is currently offline.",
				RetryLabel: "Try Again",
				Retry:      entity.CommandTryAgain,
				Loading:    state.Loading,
			},
		}
	}

	view := entity.PageView{
		Kind: entity.ViewBlank,
		Toolbar: &entity.Toolbar{
			Address:  state.Address,
			Spinning: state.Loading,
			Leading: []entity.CommandKind{
				entity.CommandBack,
				entity.CommandForward,
				entity.CommandRefresh,
				entity.CommandHome,
			},
			Trailing: []entity.CommandKind{entity.CommandStar},
		},
		TabBar: &entity.TabBar{
			Tabs:   tabs.Tabs,
			Active: state.ActiveTab,
			AddTab: entity.CommandAddTab,
		},
	}

	if state.ActiveTab == entity.TabHome {
		view.Kind = entity.ViewHome
		view.Home = &entity.HomeContent{
			Collections: collections,
			Card:        entity.DefaultPortfolioCard(),
		}
	}

	return view
}
