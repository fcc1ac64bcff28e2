// Package qrcode renders team access tokens as scannable images. The QR
// payload is always the full scan URL, so any phone camera lands on the
// team's roster page; the same policy applies to the web page, the PDF
// sheet, and the CLI.
package qrcode

import (
	"bytes"
	"fmt"
	"net/url"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/pkg/errors"
	qrc "github.com/skip2/go-qrcode"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres/team"
)

const pngSize = 256

type Service struct {
	baseURL string
}

func NewService(baseURL string) *Service {
	return &Service{baseURL: baseURL}
}

// ScanURL builds the URL a scanned code resolves to.
func (s *Service) ScanURL(token string) string {
	return fmt.Sprintf("%s/scan?t=%s", s.baseURL, url.QueryEscape(token))
}

// RenderToken returns a PNG QR code for one team token.
func (s *Service) RenderToken(token string) ([]byte, error) {
	png, err := qrc.Encode(s.ScanURL(token), qrc.Medium, pngSize)
	if err != nil {
		return nil, errors.Wrap(err, "encoding qr code")
	}
	return png, nil
}

// Sheet renders a printable PDF with one labeled QR code per team, two
// columns of three per A4 page.
func (s *Service) Sheet(teams []team.QRListRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Team QR Codes", false)

	const (
		cols    = 2
		rows    = 3
		cellW   = 90.0
		cellH   = 85.0
		qrSide  = 60.0
		marginX = 15.0
		marginY = 15.0
	)

	for i, t := range teams {
		cell := i % (cols * rows)
		if cell == 0 {
			pdf.AddPage()
		}

		x := marginX + float64(cell%cols)*cellW
		y := marginY + float64(cell/cols)*cellH

		png, err := s.RenderToken(t.Token)
		if err != nil {
			return nil, err
		}

		name := fmt.Sprintf("qr-%s", t.TeamID)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))

		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(x, y+5, fmt.Sprintf("%s - %s", t.TeamID, t.Name))
		pdf.ImageOptions(name, x, y+8, qrSide, qrSide, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "writing qr sheet pdf")
	}

	return buf.Bytes(), nil
}
