package admin

import (
	"context"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres/team"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/service/importer"
)

type Importer interface {
	ImportRoster(ctx context.Context, rows []importer.Row) importer.Summary
}

type Teams interface {
	GetQRList(ctx context.Context) ([]team.QRListRow, error)
	GetTokenByTeamID(ctx context.Context, teamID string) (string, error)
}

type QRRenderer interface {
	RenderToken(token string) ([]byte, error)
	Sheet(teams []team.QRListRow) ([]byte, error)
	ScanURL(token string) string
}
