package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate_URLSafe(t *testing.T) {
	token, err := Generate()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			t.Fatalf("token contains non URL-safe character %q", r)
		}
	}
}

func TestGenerate_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		token, err := Generate()
		require.NoError(t, err)
		require.False(t, seen[token], "duplicate token after %d generations", i)
		seen[token] = true
	}
}
