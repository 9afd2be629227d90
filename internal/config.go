package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	Storage       StorageConfig       `mapstructure:"storage"`
	Security      SecurityConfig      `mapstructure:"security"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// StorageConfig names the flat files every store persists to. All paths are
// resolved relative to DataDir.
type StorageConfig struct {
	DataDir         string `mapstructure:"data_dir"`
	UsersFile       string `mapstructure:"users_file"`
	HRUsersFile     string `mapstructure:"hr_users_file"`
	AdminFile       string `mapstructure:"admin_file"`
	ProjectsFile    string `mapstructure:"projects_file"`
	AssignmentsFile string `mapstructure:"assignments_file"`
	WeightsFile     string `mapstructure:"weights_file"`
	ScoresFile      string `mapstructure:"scores_file"`
	ReportDir       string `mapstructure:"report_dir"`
	CreateDataDir   bool   `mapstructure:"create_data_dir"`
}

type SecurityConfig struct {
	MinPasswordLength int    `mapstructure:"min_password_length"`
	MaxLoginAttempts  int    `mapstructure:"max_login_attempts"`
	DefaultAdminLogin string `mapstructure:"default_admin_login"`
	// DefaultAdminPassword is only used to synthesize the admin account when
	// the admin file is missing or unreadable.
	DefaultAdminPassword string `mapstructure:"default_admin_password"`
}

type ObservabilityConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

// DefaultConfig carries the compiled-in settings: the original file layout in
// the current directory, admin/admin123 bootstrap credentials, 6-character
// password minimum and 3 login attempts.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DataDir:         ".",
			UsersFile:       "users.txt",
			HRUsersFile:     "hr_users.txt",
			AdminFile:       "admin_users.txt",
			ProjectsFile:    "projects.txt",
			AssignmentsFile: "employee_projects.txt",
			WeightsFile:     "config.txt",
			ScoresFile:      "performance_scores.txt",
			ReportDir:       ".",
			CreateDataDir:   true,
		},
		Security: SecurityConfig{
			MinPasswordLength:    6,
			MaxLoginAttempts:     3,
			DefaultAdminLogin:    "admin",
			DefaultAdminPassword: "admin123",
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{Level: "info", Format: "text"},
		},
	}
}

// LoadConfigFromEnv builds a Config from environment variables for container
// deployments where no config file is mounted.
func LoadConfigFromEnv() *Config {
	cfg := DefaultConfig()
	cfg.Storage.DataDir = getEnv("HR_DATA_DIR", cfg.Storage.DataDir)
	cfg.Storage.ReportDir = getEnv("HR_REPORT_DIR", cfg.Storage.ReportDir)
	cfg.Security.MinPasswordLength = getEnvAsInt("HR_MIN_PASSWORD_LENGTH", cfg.Security.MinPasswordLength)
	cfg.Security.MaxLoginAttempts = getEnvAsInt("HR_MAX_LOGIN_ATTEMPTS", cfg.Security.MaxLoginAttempts)
	cfg.Security.DefaultAdminLogin = getEnv("HR_DEFAULT_ADMIN_LOGIN", cfg.Security.DefaultAdminLogin)
	cfg.Security.DefaultAdminPassword = getEnv("HR_DEFAULT_ADMIN_PASSWORD", cfg.Security.DefaultAdminPassword)
	cfg.Observability.Logging.Level = getEnv("HR_LOG_LEVEL", cfg.Observability.Logging.Level)
	cfg.Observability.Logging.Format = getEnv("HR_LOG_FORMAT", cfg.Observability.Logging.Format)
	return cfg
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Storage.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("storage config: %v", err))
	}

	if err := c.Security.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("security config: %v", err))
	}

	if err := c.Observability.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *StorageConfig) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	named := map[string]string{
		"users_file":       c.UsersFile,
		"hr_users_file":    c.HRUsersFile,
		"admin_file":       c.AdminFile,
		"projects_file":    c.ProjectsFile,
		"assignments_file": c.AssignmentsFile,
		"weights_file":     c.WeightsFile,
		"scores_file":      c.ScoresFile,
	}
	for name, value := range named {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}

func (c *SecurityConfig) Validate() error {
	if c.MinPasswordLength < 1 {
		return errors.New("min_password_length must be positive")
	}
	if c.MaxLoginAttempts < 1 {
		return errors.New("max_login_attempts must be positive")
	}
	if c.DefaultAdminLogin == "" {
		return errors.New("default_admin_login is required")
	}
	if c.DefaultAdminPassword == "" {
		return errors.New("default_admin_password is required")
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Level)
	}
	switch c.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q", c.Format)
	}
	return nil
}

// ----------------- PATH RESOLUTION -----------------

func (c *StorageConfig) path(file string) string {
	return filepath.Join(c.DataDir, file)
}

func (c *StorageConfig) UsersPath() string       { return c.path(c.UsersFile) }
func (c *StorageConfig) HRUsersPath() string     { return c.path(c.HRUsersFile) }
func (c *StorageConfig) AdminPath() string       { return c.path(c.AdminFile) }
func (c *StorageConfig) ProjectsPath() string    { return c.path(c.ProjectsFile) }
func (c *StorageConfig) AssignmentsPath() string { return c.path(c.AssignmentsFile) }
func (c *StorageConfig) WeightsPath() string     { return c.path(c.WeightsFile) }
func (c *StorageConfig) ScoresPath() string      { return c.path(c.ScoresFile) }

// EnsureDataDir creates the data and report directories when configured to.
func (c *StorageConfig) EnsureDataDir() error {
	if !c.CreateDataDir {
		return nil
	}
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return err
	}
	return os.MkdirAll(c.ReportDir, 0o755)
}
