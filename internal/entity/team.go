package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type Team struct {
	bun.BaseModel `bun:"table:teams"`

	ID          int       `json:"id" bun:"id,pk,autoincrement"`
	TeamID      string    `json:"team_id" bun:"team_id"`
	Name        string    `json:"name" bun:"name"`
	College     string    `json:"college" bun:"college"`
	TeamSize    *int      `json:"team_size,omitempty" bun:"team_size"`
	LeaderName  string    `json:"leader_name" bun:"leader_name"`
	LeaderEmail string    `json:"leader_email" bun:"leader_email"`
	LeaderPhone string    `json:"leader_phone" bun:"leader_phone"`
	Token       string    `json:"token" bun:"token"`
	IsPresent   bool      `json:"is_present" bun:"is_present"`
	CreatedAt   time.Time `json:"created_at" bun:"created_at"`
}
