package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres/team"
)

func TestScanURL(t *testing.T) {
	svc := NewService("http://localhost:8080")

	assert.Equal(t, "http://localhost:8080/scan?t=abc123", svc.ScanURL("abc123"))
	assert.Equal(t, "http://localhost:8080/scan?t=a%2Fb%3Dc", svc.ScanURL("a/b=c"), "token must be query-escaped")
}

func TestRenderToken(t *testing.T) {
	svc := NewService("http://localhost:8080")

	png, err := svc.RenderToken("abc123")
	require.NoError(t, err)
	require.True(t, len(png) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4], "output must be a PNG")
}

func TestSheet(t *testing.T) {
	svc := NewService("http://localhost:8080")

	teams := []team.QRListRow{
		{TeamID: "T001", Name: "Quantum Leap", Token: "tok-1"},
		{TeamID: "T002", Name: "Null Pointers", Token: "tok-2"},
	}

	pdf, err := svc.Sheet(teams)
	require.NoError(t, err)
	require.True(t, len(pdf) > 4)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestSheet_Empty(t *testing.T) {
	svc := NewService("http://localhost:8080")

	pdf, err := svc.Sheet(nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]), "an empty roster still yields a valid document")
}
