package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/hr-management/internal/auth"
	userdm "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
	projectstore "github.com/frahmantamala/hr-management/internal/project/store"
	userstore "github.com/frahmantamala/hr-management/internal/user/store"
	"github.com/frahmantamala/hr-management/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the data files with sample records",
	Long:  `Seed the data files with sample users and projects for development and testing purposes.`,
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

		if clearData {
			for _, path := range []string{
				cfg.Storage.UsersPath(),
				cfg.Storage.HRUsersPath(),
				cfg.Storage.ProjectsPath(),
				cfg.Storage.AssignmentsPath(),
				cfg.Storage.ScoresPath(),
			} {
				if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
					log.Fatalf("failed to clear %s: %v", path, err)
				}
			}
			fmt.Println("Existing data cleared.")
		}

		users := userstore.New(cfg.Storage, cfg.Security, appLogger)
		projects := projectstore.New(cfg.Storage, appLogger)

		sampleUsers := []struct {
			username   string
			password   string
			fullName   string
			department string
			role       userdm.Role
		}{
			{"ivanov", "dev12345", "Иванов Иван Иванович", "Разработка", userdm.RoleEmployee},
			{"petrova", "qa123456", "Петрова Анна Сергеевна", "QA", userdm.RoleEmployee},
			{"sidorov", "design99", "Сидоров Петр Александрович", "Дизайн", userdm.RoleEmployee},
			{"smirnova", "hrsecret", "Смирнова Ольга Викторовна", "HR", userdm.RoleHR},
		}

		for _, su := range sampleUsers {
			if _, exists := users.FindByUsername(su.username); exists {
				fmt.Printf("user %s already exists; skipping\n", su.username)
				continue
			}
			ok := users.AddUser(userdm.User{
				Username:     su.username,
				PasswordHash: auth.HashPassword(su.password),
				FullName:     su.fullName,
				Department:   su.department,
				Role:         su.role,
			})
			if !ok {
				log.Fatalf("failed to seed user %s", su.username)
			}
			fmt.Printf("Seeded user: %s (%s)\n", su.username, su.department)
		}

		sampleProjects := []struct {
			name        string
			description string
			status      string
		}{
			{"Портал клиентов", "Веб-портал самообслуживания для клиентов", "активный"},
			{"Мобильное приложение", "Кроссплатформенное мобильное приложение", "активный"},
			{"Миграция CRM", "Перенос данных в новую CRM-систему", "завершенный"},
		}

		for _, sp := range sampleProjects {
			if _, exists := projects.FindProject(sp.name); exists {
				fmt.Printf("project %s already exists; skipping\n", sp.name)
				continue
			}
			if !projects.AddProject(sp.name, sp.description, sp.status) {
				log.Fatalf("failed to seed project %s", sp.name)
			}
			fmt.Printf("Seeded project: %s\n", sp.name)
		}

		assignments := []struct {
			username string
			project  string
			role     string
		}{
			{"ivanov", "Портал клиентов", "Руководитель"},
			{"ivanov", "Миграция CRM", "Разработчик"},
			{"petrova", "Портал клиентов", "Тестировщик"},
			{"sidorov", "Мобильное приложение", "Дизайнер"},
		}

		for _, a := range assignments {
			if projects.AssignEmployee(a.username, a.project, a.role) {
				fmt.Printf("Assigned %s to %s as %s\n", a.username, a.project, a.role)
			}
		}

		fmt.Println("Seeding complete.")
	},
}
