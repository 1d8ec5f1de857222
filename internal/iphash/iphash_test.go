package iphash

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		expected  string
	}{
		{
			name:      "no header falls back to loopback",
			forwarded: "",
			expected:  "127.0.0.1",
		},
		{
			name:      "single entry",
			forwarded: "203.0.113.7",
			expected:  "203.0.113.7",
		},
		{
			name:      "first of several entries wins",
			forwarded: "203.0.113.7, 10.0.0.1, 192.168.1.1",
			expected:  "203.0.113.7",
		},
		{
			name:      "surrounding whitespace trimmed",
			forwarded: "  203.0.113.7 , 10.0.0.1",
			expected:  "203.0.113.7",
		},
		{
			name:      "empty first entry falls back",
			forwarded: " , 10.0.0.1",
			expected:  "127.0.0.1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/submissions", nil)
			require.NoError(t, err)
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}

			assert.Equal(t, tc.expected, FromRequest(req))
		})
	}
}

func TestHash(t *testing.T) {
	// Fixed digest keeps the on-disk identifier format stable across runs.
	assert.Equal(t,
		"12ca17b49af2289436f303e0166030a21e525d266e209267433801a8fd4071a0",
		Hash("127.0.0.1"))

	// Deterministic within a run and across inputs.
	assert.Equal(t, Hash("203.0.113.7"), Hash("203.0.113.7"))
	assert.NotEqual(t, Hash("203.0.113.7"), Hash("203.0.113.8"))
	assert.Len(t, Hash("anything"), 64)
}
