package member

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/foundation/web"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/entity"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/pkg/repository/postgresql"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// ExistsByName reports whether the team already has a member with this name.
// The importer uses it to keep re-imports idempotent.
func (r Repository) ExistsByName(ctx context.Context, teamID, name string) (bool, error) {
	exists := false
	query := `SELECT CASE WHEN (SELECT id FROM members WHERE team_id = $1 AND name = $2) IS NOT NULL THEN true ELSE false END`

	if err := r.QueryRowContext(ctx, query, teamID, name).Scan(&exists); err != nil {
		return false, web.NewRequestError(errors.Wrap(err, "member name check"), http.StatusInternalServerError)
	}

	return exists, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	if err := r.ValidateStruct(&request, "TeamID", "Name"); err != nil {
		return CreateResponse{}, err
	}

	row := entity.Member{
		TeamID: *request.TeamID,
		Name:   *request.Name,
		Phone:  request.Phone,
		Gender: request.Gender,
	}

	_, err := r.NewInsert().Model(&row).Returning("id").Exec(ctx, &row.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating member"), http.StatusInternalServerError)
	}

	return CreateResponse{
		ID:     row.ID,
		TeamID: request.TeamID,
		Name:   request.Name,
		Phone:  request.Phone,
		Gender: request.Gender,
	}, nil
}
