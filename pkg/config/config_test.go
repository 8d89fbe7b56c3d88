package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := loadDefaultConfig()
	require.NoError(t, err)

	assert.Equal(t, "rofi", cfg.Selector.Command)
	assert.Equal(t, "select", cfg.Selector.Prompt)
	assert.Empty(t, cfg.Selector.Theme)
	assert.False(t, cfg.Selector.CaseSensitive)
	assert.False(t, cfg.Selector.Markup)
	assert.False(t, cfg.Selector.Password)
	assert.Equal(t, 0, cfg.Selector.Lines)
	assert.Equal(t, "none", cfg.Selector.Width.Mode)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[selector]
prompt = "run"
case_sensitive = true

[selector.width]
mode = "percentage"
value = 40
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := loadConfigFromFile(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Selector.Prompt)
	assert.Equal(t, "run", *cfg.Selector.Prompt)
	require.NotNil(t, cfg.Selector.CaseSensitive)
	assert.True(t, *cfg.Selector.CaseSensitive)
	assert.Nil(t, cfg.Selector.Command)
	require.NotNil(t, cfg.Selector.Width)
	assert.Equal(t, "percentage", *cfg.Selector.Width.Mode)
	assert.Equal(t, 40, *cfg.Selector.Width.Value)
}

func TestLoadConfigFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml [["), 0644))

	_, err := loadConfigFromFile(path)
	require.Error(t, err)
}

func TestMergeConfigs(t *testing.T) {
	defaults, err := loadDefaultConfig()
	require.NoError(t, err)

	prompt := "apps"
	markup := true
	lines := 12
	mode := "pixels"
	value := 800
	user := &ConfigFile{
		Selector: SelectorConfigFile{
			Prompt: &prompt,
			Markup: &markup,
			Lines:  &lines,
			Width:  &WidthConfigFile{Mode: &mode, Value: &value},
		},
	}

	merged := mergeConfigs(defaults, user)

	// User стойностите печелят
	assert.Equal(t, "apps", merged.Selector.Prompt)
	assert.True(t, merged.Selector.Markup)
	assert.Equal(t, 12, merged.Selector.Lines)
	assert.Equal(t, "pixels", merged.Selector.Width.Mode)
	assert.Equal(t, 800, merged.Selector.Width.Value)

	// Незададените остават от defaults
	assert.Equal(t, "rofi", merged.Selector.Command)
	assert.False(t, merged.Selector.CaseSensitive)

	// Defaults не се мутират
	assert.Equal(t, "select", defaults.Selector.Prompt)
}

func TestMergeConfigsEmptyCommandIgnored(t *testing.T) {
	defaults, err := loadDefaultConfig()
	require.NoError(t, err)

	empty := ""
	merged := mergeConfigs(defaults, &ConfigFile{
		Selector: SelectorConfigFile{Command: &empty},
	})

	assert.Equal(t, "rofi", merged.Selector.Command)
}
