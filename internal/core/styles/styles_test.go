package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"gruvbox", "nord", "tokyo-night"}, ThemeNames())
}

func TestSetTheme(t *testing.T) {
	defer SetTheme(themes[DefaultTheme])

	p, ok := GetPalette("gruvbox")
	assert.True(t, ok)

	SetTheme(p)
	assert.Equal(t, p, CurrentPalette)
	assert.Equal(t, p.Success, TextSuccessStyle.GetForeground())

	_, ok = GetPalette("missing")
	assert.False(t, ok)
}

func TestGlamourStyleUsesPalette(t *testing.T) {
	cfg := GlamourStyle()
	if assert.NotNil(t, cfg.Document.Color) {
		assert.Equal(t, string(CurrentPalette.Foreground), *cfg.Document.Color)
	}
}
