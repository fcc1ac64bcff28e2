package entity

import "github.com/uptrace/bun"

type Member struct {
	bun.BaseModel `bun:"table:members"`

	ID        int     `json:"id" bun:"id,pk,autoincrement"`
	TeamID    string  `json:"team_id" bun:"team_id"`
	Name      string  `json:"name" bun:"name"`
	Phone     *string `json:"phone,omitempty" bun:"phone"`
	Gender    *string `json:"gender,omitempty" bun:"gender"`
	IsPresent bool    `json:"is_present" bun:"is_present"`
}
