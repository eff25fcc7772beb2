package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriorityKey(t *testing.T) {
	tests := []struct {
		key  string
		want Priority
	}{
		{"o", PriorityOptional},
		{"l", PriorityLow},
		{"m", PriorityMedium},
		{"h", PriorityHigh},
		{"c", PriorityCrucial},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p, err := ParsePriorityKey(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestParsePriorityKeyInvalid(t *testing.T) {
	for _, key := range []string{"", "x", "high", "H", "mm"} {
		t.Run("key "+key, func(t *testing.T) {
			_, err := ParsePriorityKey(key)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid priority")
		})
	}
}

func TestPriorityKeysOrder(t *testing.T) {
	// Keys are documented least-to-most urgent.
	assert.Equal(t, []string{"o", "l", "m", "h", "c"}, PriorityKeys())
}

func TestPriorityKeyRoundTrip(t *testing.T) {
	for _, key := range PriorityKeys() {
		p, err := ParsePriorityKey(key)
		require.NoError(t, err)
		assert.Equal(t, key, p.Key())
	}
}

func TestPriorityKeyUnknownLabel(t *testing.T) {
	// Hand-edited files can hold labels outside the enumeration.
	assert.Equal(t, "", Priority("Urgent").Key())
}
