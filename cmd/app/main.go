package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/skittlechan-cmd/kurukshetra-attendance-system/foundation/web"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/commands"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/pkg/config"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/pkg/logger"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/pkg/repository/postgresql"
	"github.com/skittlechan-cmd/kurukshetra-attendance-system/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalln("config:", err)
	}

	zlog := logger.New(cfg.AppEnv)
	defer zlog.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	postgresDB, err := postgresql.NewDB(cfg.Database.URL, cfg.QueryDebug)
	if err != nil {
		zlog.Fatalw("connecting to database", "error", err)
	}
	defer postgresDB.Close()

	commands.Migrate(postgresDB)

	zlog.Infow("starting server", "port", cfg.Port, "env", cfg.AppEnv)

	app := web.NewApp(zlog)
	if err := router.NewRouter(app, postgresDB, cfg, zlog).Init(); err != nil {
		zlog.Fatalw("server stopped", "error", err)
	}
}
