package attendance

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
)

// Recognized presence actions.
const (
	ActionIn  = "in"
	ActionOut = "out"
)

// DefaultActor is recorded when a toggle arrives without by_who.
const DefaultActor = "system"

type TeamActionRequest struct {
	Token  *string `json:"token" form:"token"`
	Action *string `json:"action" form:"action"`
	ByWho  *string `json:"by_who" form:"by_who"`
}

type MemberActionRequest struct {
	MemberID *int    `json:"member_id" form:"member_id"`
	Action   *string `json:"action" form:"action"`
	ByWho    *string `json:"by_who" form:"by_who"`
}

type ActionResponse struct {
	TeamID    string    `json:"team_id,omitempty"`
	MemberID  int       `json:"member_id,omitempty"`
	Action    string    `json:"action"`
	ByWho     string    `json:"by_who"`
	IsPresent bool      `json:"is_present"`
	At        time.Time `json:"at"`
}

type Counts struct {
	Total   int `json:"total"`
	Present int `json:"present"`
}

type StatsMember struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone"`
	IsPresent bool    `json:"is_present"`
}

type StatsTeam struct {
	ID             int           `json:"id"`
	TeamID         string        `json:"team_id"`
	Name           string        `json:"name"`
	College        string        `json:"college"`
	LeaderName     string        `json:"leader_name"`
	Token          string        `json:"token"`
	IsPresent      bool          `json:"is_present"`
	MemberCount    int           `json:"member_count"`
	MembersPresent int           `json:"members_present"`
	Members        []StatsMember `json:"members"`
}

type GetStatisticsResponse struct {
	Teams    Counts      `json:"teams"`
	Members  Counts      `json:"members"`
	TeamList []StatsTeam `json:"team_list"`
}

type LogFilter struct {
	Limit  *int
	Offset *int
	Page   *int
	Date   *date.Date
}

type TeamLogRow struct {
	ID       int       `json:"id"`
	TeamID   string    `json:"team_id"`
	TeamName string    `json:"team_name"`
	Action   string    `json:"action"`
	ByWho    string    `json:"by_who"`
	At       time.Time `json:"at"`
}

type MemberLogRow struct {
	ID         int       `json:"id"`
	MemberID   int       `json:"member_id"`
	MemberName string    `json:"member_name"`
	TeamID     string    `json:"team_id"`
	Action     string    `json:"action"`
	ByWho      string    `json:"by_who"`
	At         time.Time `json:"at"`
}
