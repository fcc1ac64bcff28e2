package attendance

import (
	"context"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres/attendance"
)

type Attendance interface {
	SetTeamPresence(ctx context.Context, request attendance.TeamActionRequest) (attendance.ActionResponse, error)
	SetMemberPresence(ctx context.Context, request attendance.MemberActionRequest) (attendance.ActionResponse, error)
	GetStatistics(ctx context.Context) (attendance.GetStatisticsResponse, error)
	GetTeamLog(ctx context.Context, filter attendance.LogFilter) ([]attendance.TeamLogRow, int, error)
	GetMemberLog(ctx context.Context, filter attendance.LogFilter) ([]attendance.MemberLogRow, int, error)
}
