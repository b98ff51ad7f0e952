package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHomeTabList(t *testing.T) {
	tl := NewHomeTabList()

	require.Equal(t, 1, tl.Count())
	active, ok := tl.ActiveTab()
	require.True(t, ok)
	assert.Equal(t, TabHome, active.ID)
	assert.Equal(t, "Home", active.Title())
	assert.True(t, active.Closable)
}

func TestTabList_Contains(t *testing.T) {
	tl := NewHomeTabList()

	assert.True(t, tl.Contains(TabHome))
	assert.False(t, tl.Contains(TabID("settings")))
}

func TestTab_TitleFallback(t *testing.T) {
	assert.Equal(t, "New Tab", Tab{ID: "x"}.Title())
}
