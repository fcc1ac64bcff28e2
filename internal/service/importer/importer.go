// Package importer consolidates roster imports into one contract: rows are
// processed independently, a team is created only the first time its team_id
// is seen, members are deduplicated by (team_id, name), and row-level
// failures are collected instead of aborting the batch.
package importer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/pkg/tokens"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres/member"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres/team"
)

// Row is one parsed input row. Each row describes a member and, redundantly,
// its team's metadata.
type Row struct {
	Line int

	TeamID      string
	TeamName    string
	College     string
	TeamSize    *int
	LeaderName  string
	LeaderEmail string
	LeaderPhone string

	MemberName   string
	MemberPhone  string
	MemberGender string
}

type RowError struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

type Summary struct {
	TeamsImported   int        `json:"teams_imported"`
	MembersImported int        `json:"members_imported"`
	MembersSkipped  int        `json:"members_skipped"`
	RowErrors       []RowError `json:"row_errors,omitempty"`
}

type TeamStore interface {
	ExistsByTeamID(ctx context.Context, teamID string) (bool, error)
	Create(ctx context.Context, request team.CreateRequest) (team.CreateResponse, error)
}

type MemberStore interface {
	ExistsByName(ctx context.Context, teamID, name string) (bool, error)
	Create(ctx context.Context, request member.CreateRequest) (member.CreateResponse, error)
}

type Service struct {
	teams   TeamStore
	members MemberStore
	log     *zap.SugaredLogger
}

func NewService(teams TeamStore, members MemberStore, log *zap.SugaredLogger) *Service {
	return &Service{teams: teams, members: members, log: log}
}

// ImportRoster applies rows one at a time. A failed row is recorded in the
// summary and skipped; everything imported before and after it stays
// committed.
func (s *Service) ImportRoster(ctx context.Context, rows []Row) Summary {
	var summary Summary

	// Teams created earlier in this batch, so a second row for the same
	// team skips the existence query.
	seen := map[string]bool{}

	for _, row := range rows {
		if err := s.importRow(ctx, row, seen, &summary); err != nil {
			summary.RowErrors = append(summary.RowErrors, RowError{Line: row.Line, Error: err.Error()})
			if s.log != nil {
				s.log.Warnw("import row failed", "line", row.Line, "team_id", row.TeamID, "error", err)
			}
		}
	}

	return summary
}

func (s *Service) importRow(ctx context.Context, row Row, seen map[string]bool, summary *Summary) error {
	teamID := strings.TrimSpace(row.TeamID)
	if teamID == "" {
		return fmt.Errorf("team_id is required")
	}

	if !seen[teamID] {
		exists, err := s.teams.ExistsByTeamID(ctx, teamID)
		if err != nil {
			return err
		}

		if !exists {
			if strings.TrimSpace(row.TeamName) == "" {
				return fmt.Errorf("team_name is required for new team %s", teamID)
			}

			token, err := tokens.Generate()
			if err != nil {
				return err
			}

			request := team.CreateRequest{
				TeamID:      &teamID,
				Name:        strPtr(row.TeamName),
				College:     strPtr(row.College),
				TeamSize:    row.TeamSize,
				LeaderName:  strPtr(row.LeaderName),
				LeaderEmail: strPtr(row.LeaderEmail),
				LeaderPhone: strPtr(row.LeaderPhone),
				Token:       &token,
			}
			if _, err := s.teams.Create(ctx, request); err != nil {
				return err
			}
			summary.TeamsImported++
		}

		seen[teamID] = true
	}

	name := norm.NFKC.String(strings.TrimSpace(row.MemberName))
	if name == "" {
		return nil
	}

	exists, err := s.members.ExistsByName(ctx, teamID, name)
	if err != nil {
		return err
	}
	if exists {
		summary.MembersSkipped++
		return nil
	}

	request := member.CreateRequest{
		TeamID: &teamID,
		Name:   &name,
		Phone:  optStrPtr(row.MemberPhone),
		Gender: optStrPtr(row.MemberGender),
	}
	if _, err := s.members.Create(ctx, request); err != nil {
		return err
	}
	summary.MembersImported++

	return nil
}

func strPtr(s string) *string {
	v := strings.TrimSpace(s)
	return &v
}

func optStrPtr(s string) *string {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	return &v
}
