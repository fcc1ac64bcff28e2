// Command manage is the offline management CLI: database setup, roster
// import, and QR code generation without going through the HTTP surface.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/commands"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/pkg/config"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/pkg/logger"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/pkg/repository/postgresql"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres/member"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres/team"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/service/importer"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/service/qrcode"
)

const qrDir = "qr_codes"

func main() {
	if len(os.Args) < 2 {
		showHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init-db":
		db := mustConnect()
		defer db.Close()
		commands.Migrate(db)
		fmt.Println("Database initialized successfully!")

	case "import-csv":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Error: file path required")
			fmt.Fprintln(os.Stderr, "Usage: manage import-csv <file>")
			os.Exit(1)
		}
		importRoster(os.Args[2])

	case "generate-qrs":
		generateQRs()

	case "help":
		showHelp()

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", os.Args[1])
		showHelp()
		os.Exit(1)
	}
}

func mustConfig() *config.Config {
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	return cfg
}

func mustConnect() *postgresql.Database {
	cfg := mustConfig()

	db, err := postgresql.NewDB(cfg.Database.URL, cfg.QueryDebug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connecting to database:", err)
		os.Exit(1)
	}
	return db
}

func importRoster(path string) {
	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %s: %v\n", path, err)
		os.Exit(1)
	}
	defer file.Close()

	rows, parseErrs, err := importer.ParseFile(path, file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing roster:", err)
		os.Exit(1)
	}

	cfg := mustConfig()
	db, err := postgresql.NewDB(cfg.Database.URL, cfg.QueryDebug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	svc := importer.NewService(team.NewRepository(db), member.NewRepository(db), logger.New(cfg.AppEnv))
	summary := svc.ImportRoster(context.Background(), rows)
	summary.RowErrors = append(parseErrs, summary.RowErrors...)

	fmt.Println("Import completed.")
	fmt.Printf("Teams imported: %d\n", summary.TeamsImported)
	fmt.Printf("Members imported: %d\n", summary.MembersImported)
	fmt.Printf("Members skipped (already present): %d\n", summary.MembersSkipped)
	for _, re := range summary.RowErrors {
		fmt.Printf("  row %d: %s\n", re.Line, re.Error)
	}
}

func generateQRs() {
	cfg := mustConfig()

	db, err := postgresql.NewDB(cfg.Database.URL, cfg.QueryDebug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	teams, err := team.NewRepository(db).GetQRList(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading teams:", err)
		os.Exit(1)
	}
	if len(teams) == 0 {
		fmt.Println("No teams found in database!")
		return
	}

	if err := os.MkdirAll(qrDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "creating qr_codes directory:", err)
		os.Exit(1)
	}

	svc := qrcode.NewService(cfg.BaseURL)
	for _, t := range teams {
		png, err := svc.RenderToken(t.Token)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rendering QR for %s: %v\n", t.TeamID, err)
			os.Exit(1)
		}

		name := filepath.Join(qrDir, t.TeamID+".png")
		if err := os.WriteFile(name, png, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "writing %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("Generated QR for %s - %s\n", t.TeamID, t.Name)
	}

	pdf, err := svc.Sheet(teams)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rendering QR sheet:", err)
		os.Exit(1)
	}
	sheet := filepath.Join(qrDir, "sheet.pdf")
	if err := os.WriteFile(sheet, pdf, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", sheet, err)
		os.Exit(1)
	}

	fmt.Printf("QR codes generated for %d teams in %q\n", len(teams), qrDir)
}

func showHelp() {
	fmt.Print(`Hackathon Attendance System Management CLI

Usage: manage <command> [arguments]

Commands:
    init-db                 Initialize the database
    import-csv <file>       Import teams/members from a CSV or .xlsx file
    generate-qrs            Generate QR codes for all teams
    help                    Show this help message
`)
}
