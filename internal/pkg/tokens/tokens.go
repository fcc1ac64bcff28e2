// Package tokens issues the opaque access tokens printed on team QR codes.
package tokens

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
)

// tokenBytes gives 128 bits of entropy, matching the URL-safe tokens teams
// receive at import time. Tokens are never rotated after issue.
const tokenBytes = 16

// Generate returns a URL-safe random token.
func Generate() (string, error) {
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "reading random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}
