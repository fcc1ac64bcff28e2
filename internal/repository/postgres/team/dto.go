package team

import "time"

type MemberDetail struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone"`
	Gender    *string `json:"gender,omitempty"`
	IsPresent bool    `json:"is_present"`
}

type GetByTokenResponse struct {
	ID          int            `json:"id"`
	TeamID      string         `json:"team_id"`
	Name        string         `json:"name"`
	College     string         `json:"college"`
	TeamSize    *int           `json:"team_size"`
	LeaderName  string         `json:"leader_name"`
	LeaderEmail string         `json:"leader_email"`
	LeaderPhone string         `json:"leader_phone"`
	Token       string         `json:"token"`
	IsPresent   bool           `json:"is_present"`
	Members     []MemberDetail `json:"members"`
}

type CreateRequest struct {
	TeamID      *string `json:"team_id" form:"team_id"`
	Name        *string `json:"name" form:"name"`
	College     *string `json:"college" form:"college"`
	TeamSize    *int    `json:"team_size" form:"team_size"`
	LeaderName  *string `json:"leader_name" form:"leader_name"`
	LeaderEmail *string `json:"leader_email" form:"leader_email"`
	LeaderPhone *string `json:"leader_phone" form:"leader_phone"`
	Token       *string `json:"token" form:"token"`
}

type CreateResponse struct {
	ID          int       `json:"id"`
	TeamID      *string   `json:"team_id"`
	Name        *string   `json:"name"`
	College     *string   `json:"college"`
	TeamSize    *int      `json:"team_size"`
	LeaderName  *string   `json:"leader_name"`
	LeaderEmail *string   `json:"leader_email"`
	LeaderPhone *string   `json:"leader_phone"`
	Token       *string   `json:"token"`
	CreatedAt   time.Time `json:"-"`
}

type QRListRow struct {
	TeamID string `json:"team_id"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}
