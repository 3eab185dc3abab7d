package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name  string `yaml:"name"`
	Port  int    `yaml:"port"`
	Debug bool   `yaml:"debug"`
	DB    struct {
		URI      string `yaml:"uri"`
		PoolSize int    `yaml:"pool_size" env:"DB_POOL"`
	} `yaml:"db"`
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("name: svc\nport: 9090\ndebug: true\ndb:\n  uri: mongodb://localhost\n  pool_size: 5\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("CONFIG_FILE", path)

	var cfg testConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "svc", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "mongodb://localhost", cfg.DB.URI)
	assert.Equal(t, 5, cfg.DB.PoolSize)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: from-file\nport: 1000\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("NAME", "from-env")
	t.Setenv("PORT", "2000")

	var cfg testConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 2000, cfg.Port)
}

func TestNestedAndTaggedEnvKeys(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DB_URI", "mongodb://env-host")
	t.Setenv("DB_POOL", "12")

	var cfg testConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "mongodb://env-host", cfg.DB.URI)
	assert.Equal(t, 12, cfg.DB.PoolSize)
}

func TestLoadErrors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		assert.Error(t, Load(nil))
	})

	t.Run("non-pointer target", func(t *testing.T) {
		assert.Error(t, Load(testConfig{}))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
		var cfg testConfig
		assert.Error(t, Load(&cfg))
	})

	t.Run("unparseable env value", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", "")
		t.Setenv("PORT", "not-a-number")
		var cfg testConfig
		assert.Error(t, Load(&cfg))
	})
}
