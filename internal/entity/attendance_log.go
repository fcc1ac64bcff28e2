package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Attendance log rows are append-only: they are inserted once alongside the
// presence-flag update and never modified afterwards.

type TeamAttendanceLog struct {
	bun.BaseModel `bun:"table:team_attendance_log"`

	ID     int       `json:"id" bun:"id,pk,autoincrement"`
	TeamID string    `json:"team_id" bun:"team_id"`
	Action string    `json:"action" bun:"action"`
	ByWho  string    `json:"by_who" bun:"by_who"`
	At     time.Time `json:"at" bun:"at"`
}

type MemberAttendanceLog struct {
	bun.BaseModel `bun:"table:member_attendance_log"`

	ID       int       `json:"id" bun:"id,pk,autoincrement"`
	MemberID int       `json:"member_id" bun:"member_id"`
	Action   string    `json:"action" bun:"action"`
	ByWho    string    `json:"by_who" bun:"by_who"`
	At       time.Time `json:"at" bun:"at"`
}
