package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "absent.yaml")))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSimulateCommand(t *testing.T) {
	out, err := execute(t, "simulate", "--seed", "9", "--series")
	require.NoError(t, err)

	assert.Contains(t, out, "seed 9")
	assert.Contains(t, out, "Busiest week")
	assert.Contains(t, out, "Lost potential revenue")

	var days int
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "\t") {
			days++
		}
	}
	assert.Equal(t, 365, days)
}

func TestBatchCommand(t *testing.T) {
	out, err := execute(t, "batch", "--runs", "3", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Batch of 3 runs")
}

func TestInvalidRampRejected(t *testing.T) {
	_, err := execute(t, "simulate", "--ramp-days", "30")
	assert.ErrorContains(t, err, "invalid configuration")
}
