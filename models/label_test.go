package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in     string
		want   Label
		wantOK bool
	}{
		{"Low", LabelLow, true},
		{"medium", LabelMedium, true},
		{" HIGH ", LabelHigh, true},
		{"Mild", LabelLow, true},
		{"moderate", LabelMedium, true},
		{"Severe", LabelHigh, true},
		{"Unknown", "", false},
		{"", "", false},
		{"extreme", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLabel(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLabel_Severity(t *testing.T) {
	assert.Equal(t, 0, LabelLow.Severity())
	assert.Equal(t, 1, LabelMedium.Severity())
	assert.Equal(t, 2, LabelHigh.Severity())
	assert.Equal(t, -1, LabelUnknown.Severity())
	assert.False(t, LabelUnknown.IsValid())
	assert.True(t, LabelHigh.IsValid())
}

func TestLabel_UnmarshalJSON(t *testing.T) {
	var l Label
	require.NoError(t, json.Unmarshal([]byte(`"moderate"`), &l))
	assert.Equal(t, LabelMedium, l)

	require.NoError(t, json.Unmarshal([]byte(`"Critical"`), &l))
	assert.Equal(t, Label("Critical"), l)
	assert.False(t, l.IsValid())

	assert.Error(t, json.Unmarshal([]byte(`5`), &l))
}
