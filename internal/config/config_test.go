package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, "games.json", DefaultDataPath)
	assert.Equal(t, 5, DefaultMinGames)
	assert.Equal(t, "config", DefaultConfigName)
	assert.Equal(t, "lycans", DefaultConfigDir)
	assert.Equal(t, "LYCANS", EnvPrefix)
}

func TestInitConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, InitConfig(""))

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultDataPath, cfg.DataPath)
	assert.False(t, cfg.TraitorJoinsWolves)
	assert.False(t, cfg.GroupSolos)
	assert.Equal(t, DefaultMinGames, cfg.MinGames)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Empty(t, cfg.APIKey)
}

func TestInitConfigFromFile(t *testing.T) {
	viper.Reset()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `data_path: /srv/lycans/games.json
traitor_joins_wolves: true
min_games: 12
model: gpt-4o
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	require.NoError(t, InitConfig(path))

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "/srv/lycans/games.json", cfg.DataPath)
	assert.True(t, cfg.TraitorJoinsWolves)
	assert.Equal(t, 12, cfg.MinGames)
	assert.Equal(t, "gpt-4o", cfg.Model)

	// Untouched keys fall back to defaults.
	assert.False(t, cfg.GroupSolos)
}

func TestInitConfigMissingExplicitFile(t *testing.T) {
	viper.Reset()

	err := InitConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(t, err, "a missing config file is not an error")
}

func TestInitConfigInvalidYAML(t *testing.T) {
	viper.Reset()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_games: [broken"), 0o644))

	err := InitConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestInitConfigEnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LYCANS_DATA_PATH", "/tmp/override.json")

	require.NoError(t, InitConfig(""))

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.json", cfg.DataPath)
}

func TestSaveConfig(t *testing.T) {
	viper.Reset()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_games: 3\n"), 0o644))
	require.NoError(t, InitConfig(path))

	SetConfigValue("min_games", 9)
	require.NoError(t, SaveConfig())

	viper.Reset()
	require.NoError(t, InitConfig(path))
	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.MinGames)
}

func TestIsValidKey(t *testing.T) {
	for _, key := range []string{
		"data_path", "traitor_joins_wolves", "group_solos", "min_games",
		"achievements_file", "api_key", "api_base", "model",
	} {
		assert.True(t, IsValidKey(key), key)
	}
	assert.False(t, IsValidKey("nonsense"))
	assert.False(t, IsValidKey(""))
}

func TestKeysSorted(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, 8)
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1][0], keys[i][0])
	}
}
