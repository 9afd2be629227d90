package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/user"
	"github.com/frahmantamala/hr-management/pkg/logger"
)

func (c *Console) adminSession(ctx context.Context, admin user.User) {
	for {
		c.prompt.println("\n--- Меню Администратора ---")
		c.prompt.println("1) Просмотреть всех пользователей")
		c.prompt.println("2) Назначить роль HR ожидающему пользователю")
		c.prompt.println("3) Удалить пользователя")
		c.prompt.println("4) Настроить параметры оценки")
		c.prompt.println("0) Выход")
		switch c.prompt.ReadInt("Ваш выбор: ") {
		case 1:
			c.listAllUsers()
			c.prompt.Pause()
		case 2:
			c.assignHRRole(ctx)
			c.prompt.Pause()
		case 3:
			c.deleteUser(ctx, admin)
			c.prompt.Pause()
		case 4:
			c.configureWeights()
		case 0:
			c.prompt.println("Администратор вышел из системы...")
			return
		default:
			c.prompt.println("Неверный выбор.")
		}
	}
}

func (c *Console) listAllUsers() {
	all := c.users.AllUsers()
	t := newTable(fmt.Sprintf("\nСписок пользователей (%d)", len(all)),
		"№", "Логин", "ФИО", "Отдел", "Роль")
	for i, u := range all {
		t.AddRow(fmt.Sprintf("%d", i+1), u.Username, clip(u.FullName, 30), clip(u.Department, 20), string(u.Role))
	}
	c.prompt.println(t.Render(c.prompt.st))
}

func (c *Console) assignHRRole(ctx context.Context) {
	pending := c.users.GetPendingUsers()
	if len(pending) == 0 {
		c.prompt.println("Нет пользователей, ожидающих назначения роли HR.")
		return
	}

	c.prompt.println("Пользователи, ожидающие роль HR:")
	for i, u := range pending {
		c.prompt.printf("%d) %s (%s)\n", i+1, u.FullName, u.Username)
	}

	choice := c.prompt.ReadInt("Выберите пользователя (0 - отмена): ")
	if choice == 0 {
		return
	}
	if choice < 1 || choice > len(pending) {
		c.prompt.println("Неверный выбор.")
		return
	}

	username := pending[choice-1].Username
	if err := c.userSvc.PromoteToHR(username); err != nil {
		c.prompt.errorln(err.Error())
		return
	}
	logger.From(ctx).Info("hr role assigned", "promoted", username)
	c.prompt.successln(fmt.Sprintf("Пользователю '%s' назначена роль HR.", username))
}

func (c *Console) deleteUser(ctx context.Context, admin user.User) {
	username := c.prompt.ReadLine("Введите логин пользователя для удаления: ", false)
	if username == admin.Username {
		c.prompt.println("Нельзя удалить текущего администратора.")
		return
	}

	if err := c.userSvc.RemoveUser(username); err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			c.prompt.println("Пользователь не найден.")
			return
		}
		c.prompt.errorln(err.Error())
		return
	}
	logger.From(ctx).Info("user deleted", "deleted", username)
	c.prompt.successln("Пользователь удален успешно. Данные в файлах обновлены.")
}

// configureWeights is the admin loop over the scoring coefficients. Every
// change is written through immediately.
func (c *Console) configureWeights() {
	for {
		w := c.scoring.Weights()
		c.prompt.println("\n=== Настройка параметров системы ===")
		c.prompt.println("=== Общие параметры ===")
		c.prompt.println("1. Показать все текущие параметры")
		c.prompt.println("2. Изменить вес командной работы (для всех)")
		c.prompt.println("3. Изменить вес выполненных задач (для всех)")
		c.prompt.println("\n=== Специализированные параметры для отделов ===")
		c.prompt.println("4. Изменить вес качества кода (Разработка)")
		c.prompt.println("5. Изменить вес креативности (Дизайн)")
		c.prompt.println("6. Изменить вес ROI кампаний (Маркетинг)")
		c.prompt.println("7. Изменить вес конверсии продаж (Продажи)")
		c.prompt.println("8. Изменить вес удовлетворенности клиентов (Поддержка)")
		c.prompt.println("9. Изменить вес обнаружения багов (QA)")
		c.prompt.println("0. Выход в главное меню")

		switch c.prompt.ReadInt("Выберите пункт: ") {
		case 1:
			c.showAllWeights()
		case 2:
			c.scoring.SetTeamworkWeight(c.readWeight("командной работы", w.Teamwork))
		case 3:
			c.scoring.SetTasksWeight(c.readWeight("выполненных задач", w.Tasks))
		case 4:
			c.scoring.SetCodeQualityWeight(c.readWeight("качества кода", w.CodeQuality))
		case 5:
			c.scoring.SetDesignCreativityWeight(c.readWeight("креативности", w.DesignCreativity))
		case 6:
			c.scoring.SetMarketingROIWeight(c.readWeight("ROI кампаний", w.MarketingROI))
		case 7:
			c.scoring.SetSalesConversionWeight(c.readWeight("конверсии продаж", w.SalesConversion))
		case 8:
			c.scoring.SetSupportSatisfactionWeight(c.readWeight("удовлетворенности клиентов", w.SupportSatisfaction))
		case 9:
			c.scoring.SetQABugDetectionWeight(c.readWeight("обнаружения багов", w.QABugDetection))
		case 0:
			return
		default:
			c.prompt.println("Неверный выбор.")
		}
	}
}

func (c *Console) readWeight(label string, current float64) float64 {
	c.prompt.printf("Текущий вес %s: %g\n", label, current)
	value := c.prompt.ReadScore("Введите новый вес: ", 0, 100)
	c.prompt.printf("Вес %s изменен на: %g\n", label, value)
	return value
}

func (c *Console) showAllWeights() {
	w := c.scoring.Weights()
	t := newTable("\nТекущие параметры оценки", "Параметр", "Вес, %")
	t.AddRow("Командная работа (для всех)", fmt.Sprintf("%g", w.Teamwork))
	t.AddRow("Выполненные задачи (для всех)", fmt.Sprintf("%g", w.Tasks))
	t.AddRow("Качество кода (Разработка)", fmt.Sprintf("%g", w.CodeQuality))
	t.AddRow("Креативность (Дизайн)", fmt.Sprintf("%g", w.DesignCreativity))
	t.AddRow("ROI кампаний (Маркетинг)", fmt.Sprintf("%g", w.MarketingROI))
	t.AddRow("Конверсия продаж (Продажи)", fmt.Sprintf("%g", w.SalesConversion))
	t.AddRow("Удовлетворенность клиентов (Поддержка)", fmt.Sprintf("%g", w.SupportSatisfaction))
	t.AddRow("Обнаружение багов (QA)", fmt.Sprintf("%g", w.QABugDetection))
	c.prompt.println(t.Render(c.prompt.st))
}
