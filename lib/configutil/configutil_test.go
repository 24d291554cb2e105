package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Endpoint string `json:"endpoint"`
	Token    string `json:"token"`
}

func writeConfigFile(t *testing.T, path, contents string) {
	t.Helper()
	err := os.WriteFile(path, []byte(contents), 0644)
	require.NoError(t, err)
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "service.json5")
	writeConfigFile(t, name, `{endpoint: "https://example.com", token: "base"}`)

	config, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "https://example.com", config.Endpoint)
	require.Equal(t, "base", config.Token)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "service.json5")
	writeConfigFile(t, name, `{endpoint: "https://example.com", token: "base"}`)
	writeConfigFile(t, filepath.Join(dir, "service.local.json5"), `{token: "override"}`)

	config, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "https://example.com", config.Endpoint)
	require.Equal(t, "override", config.Token)
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, filepath.Join(dir, "service.local.json5"), `{endpoint: "https://local.example.com"}`)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "service.json5"))
	require.NoError(t, err)
	require.Equal(t, "https://local.example.com", config.Endpoint)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "service.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
