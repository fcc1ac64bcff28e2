package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

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

func validAction(action string) bool {
	return action == ActionIn || action == ActionOut
}

func actor(byWho *string) string {
	if byWho == nil || *byWho == "" {
		return DefaultActor
	}
	return *byWho
}

// SetTeamPresence flips a team's presence flag and appends one audit row.
// Flag and audit row are written in the same transaction; the row UPDATE
// locks the team row so concurrent toggles on one team serialize.
// Repeated identical actions are applied and logged again, never rejected.
func (r Repository) SetTeamPresence(ctx context.Context, request TeamActionRequest) (ActionResponse, error) {
	if err := r.ValidateStruct(&request, "Token", "Action"); err != nil {
		return ActionResponse{}, err
	}
	if !validAction(*request.Action) {
		return ActionResponse{}, web.NewRequestError(
			errors.Wrap(postgres.ErrInvalidInput, "action must be 'in' or 'out'"), http.StatusBadRequest)
	}

	var teamID string
	err := r.QueryRowContext(ctx, `SELECT team_id FROM teams WHERE token = $1`, *request.Token).Scan(&teamID)
	if errors.Is(err, sql.ErrNoRows) {
		return ActionResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return ActionResponse{}, web.NewRequestError(errors.Wrap(err, "selecting team by token"), http.StatusInternalServerError)
	}

	response := ActionResponse{
		TeamID:    teamID,
		Action:    *request.Action,
		ByWho:     actor(request.ByWho),
		IsPresent: *request.Action == ActionIn,
		At:        time.Now(),
	}

	err = r.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().
			Table("teams").
			Set("is_present = ?", response.IsPresent).
			Where("team_id = ?", teamID).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "updating team presence")
		}

		logRow := entity.TeamAttendanceLog{
			TeamID: teamID,
			Action: response.Action,
			ByWho:  response.ByWho,
			At:     response.At,
		}
		if _, err := tx.NewInsert().Model(&logRow).Returning("id").Exec(ctx, &logRow.ID); err != nil {
			return errors.Wrap(err, "appending team attendance log")
		}

		return nil
	})
	if err != nil {
		return ActionResponse{}, web.NewRequestError(err, http.StatusInternalServerError)
	}

	return response, nil
}

// SetMemberPresence is the member-level counterpart of SetTeamPresence,
// keyed by the member's surrogate id.
func (r Repository) SetMemberPresence(ctx context.Context, request MemberActionRequest) (ActionResponse, error) {
	if err := r.ValidateStruct(&request, "MemberID", "Action"); err != nil {
		return ActionResponse{}, err
	}
	if !validAction(*request.Action) {
		return ActionResponse{}, web.NewRequestError(
			errors.Wrap(postgres.ErrInvalidInput, "action must be 'in' or 'out'"), http.StatusBadRequest)
	}

	var memberID int
	err := r.QueryRowContext(ctx, `SELECT id FROM members WHERE id = $1`, *request.MemberID).Scan(&memberID)
	if errors.Is(err, sql.ErrNoRows) {
		return ActionResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return ActionResponse{}, web.NewRequestError(errors.Wrap(err, "selecting member"), http.StatusInternalServerError)
	}

	response := ActionResponse{
		MemberID:  memberID,
		Action:    *request.Action,
		ByWho:     actor(request.ByWho),
		IsPresent: *request.Action == ActionIn,
		At:        time.Now(),
	}

	err = r.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().
			Table("members").
			Set("is_present = ?", response.IsPresent).
			Where("id = ?", memberID).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "updating member presence")
		}

		logRow := entity.MemberAttendanceLog{
			MemberID: memberID,
			Action:   response.Action,
			ByWho:    response.ByWho,
			At:       response.At,
		}
		if _, err := tx.NewInsert().Model(&logRow).Returning("id").Exec(ctx, &logRow.ID); err != nil {
			return errors.Wrap(err, "appending member attendance log")
		}

		return nil
	})
	if err != nil {
		return ActionResponse{}, web.NewRequestError(err, http.StatusInternalServerError)
	}

	return response, nil
}

// GetStatistics aggregates team and member presence for the dashboard. All
// reads run inside one read-only repeatable-read transaction so the counts
// and the per-team rosters come from a single snapshot.
func (r Repository) GetStatistics(ctx context.Context) (GetStatisticsResponse, error) {
	var response GetStatisticsResponse

	opts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

	err := r.RunInTx(ctx, opts, func(ctx context.Context, tx bun.Tx) error {
		totalsQuery := `
			SELECT
				(SELECT COUNT(*) FROM teams) AS team_total,
				(SELECT COUNT(*) FROM teams WHERE is_present) AS team_present,
				(SELECT COUNT(*) FROM members) AS member_total,
				(SELECT COUNT(*) FROM members WHERE is_present) AS member_present
		`
		if err := tx.QueryRowContext(ctx, totalsQuery).Scan(
			&response.Teams.Total,
			&response.Teams.Present,
			&response.Members.Total,
			&response.Members.Present,
		); err != nil {
			return errors.Wrap(err, "scanning totals")
		}

		teamsQuery := `
			SELECT
				t.id,
				t.team_id,
				t.name,
				t.college,
				t.leader_name,
				t.token,
				t.is_present,
				COUNT(m.id) AS member_count,
				COALESCE(SUM(CASE WHEN m.is_present THEN 1 ELSE 0 END), 0) AS members_present
			FROM teams t
			LEFT JOIN members m ON m.team_id = t.team_id
			GROUP BY t.id
			ORDER BY t.name
		`
		rows, err := tx.QueryContext(ctx, teamsQuery)
		if err != nil {
			return errors.Wrap(err, "selecting team stats")
		}
		defer rows.Close()

		index := map[string]int{}
		for rows.Next() {
			var detail StatsTeam
			if err = rows.Scan(
				&detail.ID,
				&detail.TeamID,
				&detail.Name,
				&detail.College,
				&detail.LeaderName,
				&detail.Token,
				&detail.IsPresent,
				&detail.MemberCount,
				&detail.MembersPresent); err != nil {
				return errors.Wrap(err, "scanning team stats")
			}
			detail.Members = []StatsMember{}
			index[detail.TeamID] = len(response.TeamList)
			response.TeamList = append(response.TeamList, detail)
		}
		if err = rows.Err(); err != nil {
			return errors.Wrap(err, "reading team stats")
		}

		membersQuery := `
			SELECT
				id,
				team_id,
				name,
				phone,
				is_present
			FROM members
			ORDER BY team_id, name
		`
		memberRows, err := tx.QueryContext(ctx, membersQuery)
		if err != nil {
			return errors.Wrap(err, "selecting member stats")
		}
		defer memberRows.Close()

		for memberRows.Next() {
			var (
				detail StatsMember
				teamID string
			)
			if err = memberRows.Scan(&detail.ID, &teamID, &detail.Name, &detail.Phone, &detail.IsPresent); err != nil {
				return errors.Wrap(err, "scanning member stats")
			}
			if i, ok := index[teamID]; ok {
				response.TeamList[i].Members = append(response.TeamList[i].Members, detail)
			}
		}

		return memberRows.Err()
	})
	if err != nil {
		return GetStatisticsResponse{}, web.NewRequestError(errors.Wrap(err, "fetching statistics"), http.StatusInternalServerError)
	}

	if response.TeamList == nil {
		response.TeamList = []StatsTeam{}
	}

	return response, nil
}

// GetTeamLog lists team audit entries, newest first, optionally restricted
// to one day.
func (r Repository) GetTeamLog(ctx context.Context, filter LogFilter) ([]TeamLogRow, int, error) {
	whereQuery := "WHERE true"
	if filter.Date != nil {
		whereQuery += fmt.Sprintf(" AND l.at::date = '%s'", filter.Date.Format("2006-01-02"))
	}

	query := fmt.Sprintf(`
		SELECT
			l.id,
			l.team_id,
			t.name,
			l.action,
			l.by_who,
			l.at
		FROM team_attendance_log l
		LEFT JOIN teams t ON t.team_id = l.team_id
		%s
		ORDER BY l.at DESC, l.id DESC
		%s
	`, whereQuery, limitOffsetQuery(filter))

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting team log"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []TeamLogRow
	for rows.Next() {
		var detail TeamLogRow
		if err = rows.Scan(&detail.ID, &detail.TeamID, &detail.TeamName, &detail.Action, &detail.ByWho, &detail.At); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning team log"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "reading team log"), http.StatusInternalServerError)
	}

	count, err := r.countLog(ctx, "team_attendance_log", filter)
	if err != nil {
		return nil, 0, err
	}

	return list, count, nil
}

// GetMemberLog lists member audit entries, newest first.
func (r Repository) GetMemberLog(ctx context.Context, filter LogFilter) ([]MemberLogRow, int, error) {
	whereQuery := "WHERE true"
	if filter.Date != nil {
		whereQuery += fmt.Sprintf(" AND l.at::date = '%s'", filter.Date.Format("2006-01-02"))
	}

	query := fmt.Sprintf(`
		SELECT
			l.id,
			l.member_id,
			m.name,
			m.team_id,
			l.action,
			l.by_who,
			l.at
		FROM member_attendance_log l
		LEFT JOIN members m ON m.id = l.member_id
		%s
		ORDER BY l.at DESC, l.id DESC
		%s
	`, whereQuery, limitOffsetQuery(filter))

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting member log"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []MemberLogRow
	for rows.Next() {
		var detail MemberLogRow
		if err = rows.Scan(&detail.ID, &detail.MemberID, &detail.MemberName, &detail.TeamID, &detail.Action, &detail.ByWho, &detail.At); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning member log"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "reading member log"), http.StatusInternalServerError)
	}

	count, err := r.countLog(ctx, "member_attendance_log", filter)
	if err != nil {
		return nil, 0, err
	}

	return list, count, nil
}

func (r Repository) countLog(ctx context.Context, table string, filter LogFilter) (int, error) {
	whereQuery := "WHERE true"
	if filter.Date != nil {
		whereQuery += fmt.Sprintf(" AND at::date = '%s'", filter.Date.Format("2006-01-02"))
	}

	count := 0
	query := fmt.Sprintf(`SELECT count(id) FROM %s %s`, table, whereQuery)
	if err := r.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, web.NewRequestError(errors.Wrap(err, "counting log rows"), http.StatusInternalServerError)
	}

	return count, nil
}

func limitOffsetQuery(filter LogFilter) string {
	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}

	var q string
	if filter.Limit != nil {
		q += fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}
	if filter.Offset != nil {
		q += fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}
	return q
}
