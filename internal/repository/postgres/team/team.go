package team

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/foundation/web"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/entity"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/pkg/repository/postgresql"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetByToken resolves a team by its access token and loads the full member
// roster ordered by name.
func (r Repository) GetByToken(ctx context.Context, token string) (GetByTokenResponse, error) {
	var detail GetByTokenResponse

	query := `
		SELECT
			id,
			team_id,
			name,
			college,
			team_size,
			leader_name,
			leader_email,
			leader_phone,
			token,
			is_present
		FROM teams
		WHERE token = $1
	`

	err := r.QueryRowContext(ctx, query, token).Scan(
		&detail.ID,
		&detail.TeamID,
		&detail.Name,
		&detail.College,
		&detail.TeamSize,
		&detail.LeaderName,
		&detail.LeaderEmail,
		&detail.LeaderPhone,
		&detail.Token,
		&detail.IsPresent,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetByTokenResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetByTokenResponse{}, web.NewRequestError(errors.Wrap(err, "selecting team by token"), http.StatusInternalServerError)
	}

	members, err := r.membersOf(ctx, detail.TeamID)
	if err != nil {
		return GetByTokenResponse{}, err
	}
	detail.Members = members

	return detail, nil
}

func (r Repository) membersOf(ctx context.Context, teamID string) ([]MemberDetail, error) {
	query := `
		SELECT
			id,
			name,
			phone,
			gender,
			is_present
		FROM members
		WHERE team_id = $1
		ORDER BY name
	`

	rows, err := r.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting team members"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []MemberDetail
	for rows.Next() {
		var detail MemberDetail
		if err = rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.Phone,
			&detail.Gender,
			&detail.IsPresent); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning team member"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading team members"), http.StatusInternalServerError)
	}

	return list, nil
}

// ExistsByTeamID reports whether the external team identifier is already
// registered.
func (r Repository) ExistsByTeamID(ctx context.Context, teamID string) (bool, error) {
	exists := false
	query := `SELECT CASE WHEN (SELECT id FROM teams WHERE team_id = $1) IS NOT NULL THEN true ELSE false END`

	if err := r.QueryRowContext(ctx, query, teamID).Scan(&exists); err != nil {
		return false, web.NewRequestError(errors.Wrap(err, "team_id check"), http.StatusInternalServerError)
	}

	return exists, nil
}

// Create inserts a new team. The token must already be issued by the caller;
// the unique constraint on token and team_id backstops the importer's
// dedup logic.
func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	if err := r.ValidateStruct(&request, "TeamID", "Name", "Token"); err != nil {
		return CreateResponse{}, err
	}

	row := entity.Team{
		TeamID:      *request.TeamID,
		Name:        *request.Name,
		College:     deref(request.College),
		TeamSize:    request.TeamSize,
		LeaderName:  deref(request.LeaderName),
		LeaderEmail: deref(request.LeaderEmail),
		LeaderPhone: deref(request.LeaderPhone),
		Token:       *request.Token,
		CreatedAt:   time.Now(),
	}

	_, err := r.NewInsert().Model(&row).Returning("id").Exec(ctx, &row.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating team"), http.StatusInternalServerError)
	}

	return CreateResponse{
		ID:          row.ID,
		TeamID:      request.TeamID,
		Name:        request.Name,
		College:     request.College,
		TeamSize:    request.TeamSize,
		LeaderName:  request.LeaderName,
		LeaderEmail: request.LeaderEmail,
		LeaderPhone: request.LeaderPhone,
		Token:       request.Token,
		CreatedAt:   row.CreatedAt,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetTokenByTeamID looks up the access token for one external team id.
func (r Repository) GetTokenByTeamID(ctx context.Context, teamID string) (string, error) {
	var token string

	err := r.QueryRowContext(ctx, `SELECT token FROM teams WHERE team_id = $1`, teamID).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return "", web.NewRequestError(errors.Wrap(err, "selecting team token"), http.StatusInternalServerError)
	}

	return token, nil
}

// GetQRList returns every team with its token, ordered by team_id, for QR
// rendering.
func (r Repository) GetQRList(ctx context.Context) ([]QRListRow, error) {
	query := `
		SELECT
			team_id,
			name,
			token
		FROM teams
		ORDER BY team_id
	`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting teams for qr list"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []QRListRow
	for rows.Next() {
		var detail QRListRow
		if err = rows.Scan(&detail.TeamID, &detail.Name, &detail.Token); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning qr list row"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading qr list"), http.StatusInternalServerError)
	}

	return list, nil
}
