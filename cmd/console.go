package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/hr-management/internal/console"
	"github.com/frahmantamala/hr-management/internal/project"
	projectstore "github.com/frahmantamala/hr-management/internal/project/store"
	"github.com/frahmantamala/hr-management/internal/report"
	"github.com/frahmantamala/hr-management/internal/scoring"
	"github.com/frahmantamala/hr-management/internal/user"
	userstore "github.com/frahmantamala/hr-management/internal/user/store"
	"github.com/frahmantamala/hr-management/pkg/logger"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the interactive HR console",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Init(os.Getenv("APP_ENV"))
		appLogger := logger.LoggerWrapper()

		if err := cfg.Storage.EnsureDataDir(); err != nil {
			log.Fatalf("failed to prepare data directory: %v", err)
		}

		users := userstore.New(cfg.Storage, cfg.Security, appLogger)
		projects := projectstore.New(cfg.Storage, appLogger)
		scoringCfg := scoring.New(cfg.Storage, appLogger)

		userSvc := user.NewService(users, projects, cfg.Security, appLogger)
		projectSvc := project.NewService(projects, appLogger)
		reports := report.NewGenerator(users, projects, scoringCfg, cfg.Storage.ReportDir, appLogger)

		app := console.New(cfg, users, projects, scoringCfg, userSvc, projectSvc, reports,
			os.Stdin, os.Stdout, appLogger)
		app.Run(cmd.Context())
	},
}
