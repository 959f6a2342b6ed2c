package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := "[board]\ntopology = \"hexagonal\"\n\n[search]\nmax_depth = 8\ntable_size = 2048\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, TopologyHexagonal, cfg.Board.TopologyName)
	require.Equal(t, 8, cfg.Search.MaxDepth)
	require.Equal(t, 2048, cfg.Search.TableSize)
}

func TestLoadRejectsUnknownTopology(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[board]\ntopology = \"round\"\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestBoardConfigTopologyResolvesEachName(t *testing.T) {
	for _, name := range []string{TopologyTraditional, TopologyHexagonal, TopologyTriangular, TopologyAperiodic} {
		bc := BoardConfig{TopologyName: name}
		top, err := bc.Topology()
		require.NoError(t, err)
		require.Greater(t, top.NumTiles, 0)
	}
}

func TestBoardConfigTopologyRejectsUnknown(t *testing.T) {
	bc := BoardConfig{TopologyName: "nonsense"}
	_, err := bc.Topology()
	require.Error(t, err)
}
