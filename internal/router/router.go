package router

import (
	"go.uber.org/zap"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/foundation/web"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/middleware"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/pkg/config"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/pkg/repository/postgresql"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres/attendance"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres/member"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/repository/postgres/team"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/service/importer"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/service/qrcode"

	admin_controller "github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/controller/http/v1/admin"
	attendance_controller "github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/controller/http/v1/attendance"
	pages_controller "github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/controller/http/v1/pages"
	team_controller "github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/controller/http/v1/team"
)

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	cfg        *config.Config
	log        *zap.SugaredLogger
}

func NewRouter(app *web.App, postgresDB *postgresql.Database, cfg *config.Config, log *zap.SugaredLogger) *Router {
	return &Router{
		App:        app,
		postgresDB: postgresDB,
		cfg:        cfg,
		log:        log,
	}
}

func (r *Router) Init() error {
	r.HandleMethodNotAllowed = true
	r.Use(middleware.CorsMiddleware())

	// - postgresql
	teamPostgres := team.NewRepository(r.postgresDB)
	memberPostgres := member.NewRepository(r.postgresDB)
	attendancePostgres := attendance.NewRepository(r.postgresDB)

	// - services
	importService := importer.NewService(teamPostgres, memberPostgres, r.log)
	qrService := qrcode.NewService(r.cfg.BaseURL)

	// - controllers
	teamController := team_controller.NewController(teamPostgres)
	attendanceController := attendance_controller.NewController(attendancePostgres)
	adminController := admin_controller.NewController(importService, teamPostgres, qrService)

	pagesController, err := pages_controller.NewController(teamPostgres, r.cfg.AdminToken, r.cfg.BaseURL)
	if err != nil {
		return err
	}

	adminOnly := middleware.AdminOnly(r.cfg.AdminToken)

	// #pages
	r.Get("/", pagesController.Index)
	r.Get("/scan", pagesController.Scan)
	r.Get("/dashboard", pagesController.Dashboard)

	// #api
	r.Get("/api/team/by-token", teamController.GetByToken)
	r.Post("/api/team/action", attendanceController.TeamAction)
	r.Post("/api/member/action", attendanceController.MemberAction)
	r.Get("/api/stats", attendanceController.GetStatistics)
	r.Get("/api/logs/team", attendanceController.GetTeamLog, adminOnly)
	r.Get("/api/logs/member", attendanceController.GetMemberLog, adminOnly)

	// #admin
	r.Get("/admin/import-csv", adminController.ImportForm, adminOnly)
	r.Post("/admin/import-csv", adminController.ImportRoster, adminOnly)
	r.Post("/admin/import-excel", adminController.ImportRoster, adminOnly)
	r.Get("/admin/generate-qrs", adminController.GenerateQRs, adminOnly)
	r.Get("/admin/qr", adminController.GetQR, adminOnly)
	r.Get("/admin/qr-sheet.pdf", adminController.GetQRSheet, adminOnly)

	return r.Run(":" + r.cfg.Port)
}
