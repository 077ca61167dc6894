package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Port    int      `json:"port"`
	Name    string   `json:"name"`
	Origins []string `json:"origins"`
}

func writeFile(t testing.TB, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestReadConfigMergesLocal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json5"), `{
		// comments are allowed
		"port": 5000,
		"name": "base"
	}`)
	writeFile(t, filepath.Join(dir, "config.local.json5"), `{ "name": "local" }`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, "local", cfg.Name)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestReadConfigOnlyLocal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.local.json5"), `{ "port": 8080 }`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
}

func TestWithDefaults(t *testing.T) {
	cfg, err := WithDefaults(
		testConfig{Name: "set"},
		testConfig{Port: 5000, Name: "default", Origins: []string{"http://localhost:3000"}},
	)
	require.NoError(t, err)
	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, "set", cfg.Name)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.Origins)
}
