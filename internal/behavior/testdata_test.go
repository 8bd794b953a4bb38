package behavior

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testModel prefers High as stress_level grows and Low as sleep_hours grows.
func testModel() FileModel {
	return FileModel{
		FeatureNames: []string{"sleep_hours", "screen_time", "stress_level"},
		Labels:       []string{"Low", "Medium", "High"},
		Weights: [][]float64{
			{1.0, -0.2, -1.0},
			{0.0, 0.1, 0.2},
			{-1.0, 0.3, 1.0},
		},
		Intercepts: []float64{0, 0, 0},
	}
}

func writeModel(t *testing.T, m any) string {
	t.Helper()
	data, err := json.Marshal(m)
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}
