// Package console implements the interactive menu surface: the entry menu,
// login and registration flows, and the role-specific sessions behind them.
package console

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/frahmantamala/hr-management/internal"
	userdm "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
	"github.com/frahmantamala/hr-management/internal/project"
	projectstore "github.com/frahmantamala/hr-management/internal/project/store"
	"github.com/frahmantamala/hr-management/internal/report"
	"github.com/frahmantamala/hr-management/internal/scoring"
	"github.com/frahmantamala/hr-management/internal/user"
	userstore "github.com/frahmantamala/hr-management/internal/user/store"
	"github.com/frahmantamala/hr-management/pkg/logger"
)

type Console struct {
	cfg        *internal.Config
	users      *userstore.UserStore
	projects   *projectstore.ProjectStore
	scoring    *scoring.Config
	userSvc    *user.Service
	projectSvc *project.Service
	reports    *report.Generator
	prompt     *prompter
	logger     *slog.Logger
}

func New(
	cfg *internal.Config,
	users *userstore.UserStore,
	projects *projectstore.ProjectStore,
	scoringCfg *scoring.Config,
	userSvc *user.Service,
	projectSvc *project.Service,
	reports *report.Generator,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
) *Console {
	return &Console{
		cfg:        cfg,
		users:      users,
		projects:   projects,
		scoring:    scoringCfg,
		userSvc:    userSvc,
		projectSvc: projectSvc,
		reports:    reports,
		prompt:     newPrompter(in, out),
		logger:     logger,
	}
}

// Run drives the entry menu until the user exits.
func (c *Console) Run(ctx context.Context) {
	c.logger.Info("console started")
	for {
		c.prompt.println("\n====== АИС HR-менеджмента для IT-предприятия ======")
		c.prompt.println("1) Войти")
		c.prompt.println("2) Зарегистрироваться")
		c.prompt.println("0) Выход")
		switch c.prompt.ReadInt("Выберите: ") {
		case 1:
			c.handleLogin(ctx)
		case 2:
			c.handleRegister(ctx)
		case 0:
			c.prompt.println("Выход... До свидания")
			return
		default:
			c.prompt.println("Неверный выбор.")
		}
	}
}

func (c *Console) handleLogin(ctx context.Context) {
	login := c.prompt.ReadLine("Логин: ", true)
	if login == "" {
		c.prompt.println("Вы ввели пустой логин, возврат в главное меню...")
		return
	}

	if _, ok := c.users.FindByUsername(login); !ok {
		if c.prompt.Confirm("Пользователь не найден. Хотите зарегистрироваться? (y/n): ") {
			c.registerWithLogin(ctx, login)
		} else {
			c.prompt.println("Возврат в главное меню...")
		}
		return
	}

	authenticated := c.attemptPassword(login)
	if authenticated == nil {
		c.prompt.println("Слишком много неудачных попыток. Возврат в главное меню...")
		return
	}

	c.startSession(ctx, *authenticated)
}

// attemptPassword gives the user a bounded number of password tries and
// returns the authenticated user, or nil when the budget is spent.
func (c *Console) attemptPassword(login string) *user.User {
	attempts := c.cfg.Security.MaxLoginAttempts
	for attempt := 1; attempt <= attempts; attempt++ {
		password := c.prompt.ReadPassword("Пароль: ")
		authenticated, err := c.userSvc.Authenticate(login, password)
		if err == nil {
			c.prompt.println("Аутентификация прошла успешно")
			return authenticated
		}
		c.prompt.printf("Неверный пароль. Осталось попыток: %d\n", attempts-attempt)
	}
	return nil
}

func (c *Console) startSession(ctx context.Context, u user.User) {
	ctx = logger.With(ctx, "session_id", uuid.NewString(), "username", u.Username)
	logger.From(ctx).Info("session started", "role", u.Role)

	switch u.Role {
	case userdm.RoleAdmin:
		c.adminSession(ctx, u)
	case userdm.RoleHR:
		c.hrSession(ctx, u)
	case userdm.RolePending:
		c.prompt.println("Ваша учетная запись находится в стадии рассмотрения. Для получения прав HR требуется одобрение администратора.")
		c.employeeSession(u)
	default:
		c.employeeSession(u)
	}

	logger.From(ctx).Info("session ended")
}

func (c *Console) handleRegister(ctx context.Context) {
	login := c.prompt.ReadLine("Логин: ", true)
	if login == "" {
		c.prompt.println("Вы ввели пустой логин, возврат в главное меню...")
		return
	}
	c.registerWithLogin(ctx, login)
}

func (c *Console) registerWithLogin(ctx context.Context, desiredLogin string) {
	login := desiredLogin
	for {
		if _, taken := c.users.FindByUsername(login); !taken {
			break
		}
		c.prompt.printf("Логин '%s' уже существует. Введите другой логин или введите 'q' для отмены: ", login)
		alt := c.prompt.rawLine()
		if alt == "" || alt == "q" || alt == "Q" {
			c.prompt.println("Регистрация отменена. Возврат в главное меню...")
			return
		}
		login = alt
	}

	password := c.readNewPassword()
	fullName := c.prompt.ReadLine("Ваше ФИО: ", false)
	department := c.prompt.ChooseDepartment()

	registered, err := c.userSvc.Register(user.RegisterDTO{
		Username:        login,
		Password:        password,
		PasswordConfirm: password,
		FullName:        fullName,
		Department:      department,
	})
	if err != nil {
		c.prompt.errorln(err.Error())
		return
	}

	c.prompt.successln("Регистрация прошла успешно, теперь вы можете войти в систему.")
	if registered.IsPendingApproval() {
		c.prompt.println("Для подтверждения роли HR требуется одобрение администратора.")
	}

	if c.prompt.Confirm("\nХотите войти в систему сейчас? (y/n): ") {
		if authenticated := c.attemptPassword(login); authenticated != nil {
			c.startSession(ctx, *authenticated)
		}
	}
}

// readNewPassword loops until a password satisfies length, uniqueness and
// confirmation. Uniqueness is checked up front so the user is not told about
// a collision only after confirming.
func (c *Console) readNewPassword() string {
	minLen := c.cfg.Security.MinPasswordLength
	for {
		password := c.prompt.ReadPassword("Пароль: ")
		if password == "" {
			c.prompt.println("Пароль не может быть пустым.")
			continue
		}
		if len(password) < minLen {
			c.prompt.printf("Пароль должен содержать минимум %d символов.\n", minLen)
			continue
		}
		if !c.userSvc.IsPasswordAvailable(password) {
			c.prompt.errorln("Ошибка: этот пароль уже используется другим пользователем!")
			c.prompt.println("Пожалуйста, придумайте другой пароль.")
			continue
		}
		confirm := c.prompt.ReadPassword("Подтвердите пароль: ")
		if password != confirm {
			c.prompt.println("Пароли не совпадают. Попробуйте заново.")
			continue
		}
		return password
	}
}

func (c *Console) viewProfile(u user.User) {
	c.prompt.println("\n--- Профиль ---")
	c.prompt.printf("Логин: %s\n", u.Username)
	c.prompt.printf("ФИО: %s\n", u.FullName)
	if u.Department != "" {
		c.prompt.printf("Отдел: %s\n", u.Department)
	}
	c.prompt.printf("Роль: %s\n", u.Role)
}
