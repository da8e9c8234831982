package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := config.Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.ModeShared, cfg.Mode)
	assert.Equal(t, 20, cfg.ColorBudget)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "run.yaml", `
mode: local-distributed
color_budget: 4
graph:
  kind: grid
  rows: 3
  cols: 5
transport:
  size: 4
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.ModeLocalDistributed, cfg.Mode)
	assert.Equal(t, 4, cfg.ColorBudget)
	assert.Equal(t, 10, cfg.Workers, "unset keys keep defaults")
	assert.Equal(t, 4, cfg.Transport.Size)

	g, err := cfg.Graph.Build()
	require.NoError(t, err)
	assert.Equal(t, 15, g.VertexCount())
}

func TestLoad_ReportsEveryProblem(t *testing.T) {
	path := writeFile(t, "bad.yaml", `
mode: distributed
color_budget: 0
graph:
  kind: hexagon
transport:
  size: 1
  rank: 3
  address: ""
log:
  format: xml
`)
	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	for _, want := range []string{"color_budget", "graph.kind", "transport.size", "transport.rank", "transport.address", "log.format"} {
		assert.ErrorContains(t, err, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "broken.yaml", "mode: [shared"))
	require.ErrorContains(t, err, "failed to parse")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LVCOLOR_MODE", "distributed")
	t.Setenv("LVCOLOR_COLOR_BUDGET", "7")
	t.Setenv("LVCOLOR_TRANSPORT_RANK", "2")
	t.Setenv("LVCOLOR_TRANSPORT_SIZE", "3")
	t.Setenv("LVCOLOR_GRAPH_KIND", "wheel")
	t.Setenv("LVCOLOR_PRINT", "true")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.ModeDistributed, cfg.Mode)
	assert.Equal(t, 7, cfg.ColorBudget)
	assert.Equal(t, 2, cfg.Transport.Rank)
	assert.Equal(t, config.KindWheel, cfg.Graph.Kind)
	assert.True(t, cfg.Print)

	t.Setenv("LVCOLOR_WORKERS", "many")
	_, err = config.FromEnv()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorContains(t, err, "LVCOLOR_WORKERS")
}

func TestGraphBuild(t *testing.T) {
	g, err := config.Defaults().Graph.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())

	path := writeFile(t, "edges.csv", "0,1\n1,2\n")
	g, err = config.Graph{Kind: config.KindFile, File: path}.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}
