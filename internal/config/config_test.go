package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv(DataFileEnv, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDataFile(), cfg.DataFile)
	assert.Equal(t, "ordinal", cfg.Collation)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Signature.Required)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv(DataFileEnv, "")

	path := writeConfig(t, `data_file: /srv/recept.txt
collation: sv
log_level: debug
signature:
  keyring: /etc/receptbok/keys.asc
  required: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/recept.txt", cfg.DataFile)
	assert.Equal(t, "sv", cfg.Collation)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/etc/receptbok/keys.asc", cfg.Signature.Keyring)
	assert.True(t, cfg.Signature.Required)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(DataFileEnv, "")

	cfg, err := Load(writeConfig(t, "log_level: info\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDataFile(), cfg.DataFile)
	assert.Equal(t, "ordinal", cfg.Collation)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv(DataFileEnv, "/tmp/from-env.txt")

	cfg, err := Load(writeConfig(t, "data_file: /srv/recept.txt\n"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.txt", cfg.DataFile)
}

func TestLoad_ExpandsHome(t *testing.T) {
	t.Setenv(DataFileEnv, "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := Load(writeConfig(t, "data_file: ~/recept.txt\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "recept.txt"), cfg.DataFile)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "data_file: [broken\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_InvalidCollation(t *testing.T) {
	t.Setenv(DataFileEnv, "")
	_, err := Load(writeConfig(t, "collation: \"not a tag!\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid collation")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.DataFile = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Signature.Required = true
	assert.Error(t, cfg.Validate())

	cfg.Signature.Keyring = "/keys.asc"
	assert.NoError(t, cfg.Validate())
}

func TestDefaultPaths(t *testing.T) {
	assert.Equal(t, "config.yml", filepath.Base(DefaultPath()))
	assert.Equal(t, "receptbok", filepath.Base(filepath.Dir(DefaultPath())))
	assert.Equal(t, "recept.txt", filepath.Base(DefaultDataFile()))
}
