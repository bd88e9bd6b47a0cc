package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	cmd := NewRootCommand(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEstimate_Defaults(t *testing.T) {
	out, err := run(t, "estimate")
	require.NoError(t, err)
	assert.Equal(t, domain.ResultTitle+"\n10:48 PM\n", out)
}

func TestEstimate_Flags(t *testing.T) {
	out, err := run(t, "estimate", "--wake", "6:30am", "--sleep", "7.5", "--coffee", "0", "--clock", "24h")
	require.NoError(t, err)
	assert.Contains(t, out, "23:00")
}

func TestEstimate_JSON(t *testing.T) {
	out, err := run(t, "estimate", "--json")
	require.NoError(t, err)

	var resp domain.EstimateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 22, resp.BedtimeHour)
	assert.Equal(t, 48, resp.BedtimeMinute)
	assert.InDelta(t, 8.2, resp.PredictedSleepHours, 1e-9)
}

func TestEstimate_ModelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	artifact := `{"name":"flat","version":"1","intercept":1,"wake":0,"estimated_sleep":1,"coffee":0}`
	require.NoError(t, os.WriteFile(path, []byte(artifact), 0o600))

	out, err := run(t, "estimate", "--wake", "07:00", "--sleep", "8", "--coffee", "5", "--clock", "24h", "--model", path)
	require.NoError(t, err)
	assert.Contains(t, out, "22:00")
}

func TestEstimate_BrokenModelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	out, err := run(t, "estimate", "--model", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPredictionFailed))
	assert.Contains(t, out, domain.ErrorTitle)
	assert.Contains(t, out, domain.PredictionFailedMessage)
}

func TestEstimate_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad wake", []string{"--wake", "25:00"}, "not a valid time"},
		{"sleep too low", []string{"--sleep", "3"}, "sleepHours must be at least 4"},
		{"sleep off step", []string{"--sleep", "8.1"}, "sleepHours must be a multiple of 0.25"},
		{"too much coffee", []string{"--coffee", "21"}, "coffeeCups must be at most 20"},
		{"bad clock", []string{"--clock", "metric"}, "--clock must be 12h or 24h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"estimate"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLabels(t *testing.T) {
	out, err := run(t, "labels")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header + 33 sleep steps + header + 21 cup options
	assert.Len(t, lines, 1+33+1+21)
	assert.Contains(t, out, "  4 hours\n")
	assert.Contains(t, out, "  8.25 hours\n")
	assert.Contains(t, out, "  12 hours\n")
	assert.Contains(t, out, "  0 cups\n")
	assert.Contains(t, out, "  1 cup\n")
	assert.Contains(t, out, "  20 cups\n")
}
