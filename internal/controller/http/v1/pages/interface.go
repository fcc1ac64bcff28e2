package pages

import (
	"context"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres/team"
)

type Team interface {
	GetByToken(ctx context.Context, token string) (team.GetByTokenResponse, error)
}
