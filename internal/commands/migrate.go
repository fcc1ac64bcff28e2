package commands

import (
	"log"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/pkg/repository/postgresql"
)

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "Create table: teams.",
		Query: `
        CREATE TABLE IF NOT EXISTS teams (
            id serial PRIMARY KEY,
            team_id text UNIQUE NOT NULL,
            name text NOT NULL,
            college text NOT NULL,
            team_size int,
            leader_name text NOT NULL,
            leader_email text NOT NULL,
            leader_phone text NOT NULL,
            token text UNIQUE NOT NULL,
            is_present boolean DEFAULT false,
            created_at timestamp DEFAULT now()
        );`,
	},
	{
		Index:       2,
		Description: "Create table: members.",
		Query: `
        CREATE TABLE IF NOT EXISTS members (
            id serial PRIMARY KEY,
            team_id text NOT NULL REFERENCES teams(team_id),
            name text NOT NULL,
            phone text,
            gender text,
            is_present boolean DEFAULT false
        );`,
	},
	{
		Index:       3,
		Description: "Create table: team_attendance_log.",
		Query: `
        CREATE TABLE IF NOT EXISTS team_attendance_log (
            id serial PRIMARY KEY,
            team_id text NOT NULL REFERENCES teams(team_id),
            action text NOT NULL,
            by_who text NOT NULL,
            at timestamp DEFAULT now()
        );`,
	},
	{
		Index:       4,
		Description: "Create table: member_attendance_log.",
		Query: `
        CREATE TABLE IF NOT EXISTS member_attendance_log (
            id serial PRIMARY KEY,
            member_id int NOT NULL REFERENCES members(id),
            action text NOT NULL,
            by_who text NOT NULL,
            at timestamp DEFAULT now()
        );`,
	},
}

// Migrate creates the scheme in the database.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Exec(s.Query); err != nil {
			log.Fatalln("migrate error:", s.Description, err)
		}
	}
}
