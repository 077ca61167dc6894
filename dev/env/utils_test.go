package devenv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePathPassthrough(t *testing.T) {
	resolved, err := ResolvePath("data/eformify.db")
	require.NoError(t, err)
	require.Equal(t, "data/eformify.db", resolved)
}

func TestResolvePathDevState(t *testing.T) {
	root, err := GetWorkspaceRoot()
	if err != nil {
		t.Skip("not running inside the module workspace")
	}
	resolved, err := ResolvePath("<dev_state>/resty/scrape")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "dev", ".state", "resty", "scrape"), resolved)
}
