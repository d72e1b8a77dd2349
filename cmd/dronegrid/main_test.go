package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_SucceedsOnValidTopology(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topology.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
nb_drones: 1
hubs:
  - name: start
    category: START
    max_drones: 1
  - name: goal
    category: END
    max_drones: 1
connections:
  - a: start
    b: goal
    capacity: 1
`), 0o644))

	require.NoError(t, run(context.Background(), path, false))
}

func TestRun_FailsOnUnreachableTopology(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topology.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
nb_drones: 1
hubs:
  - name: start
    category: START
    max_drones: 1
  - name: island
    max_drones: 1
  - name: goal
    category: END
    max_drones: 1
connections:
  - a: start
    b: island
    capacity: 1
`), 0o644))

	require.Error(t, run(context.Background(), path, true))
}

func TestRun_FailsOnMissingFile(t *testing.T) {
	require.Error(t, run(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), false))
}
