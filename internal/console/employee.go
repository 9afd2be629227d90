package console

import (
	"fmt"

	"github.com/frahmantamala/hr-management/internal/report"
	"github.com/frahmantamala/hr-management/internal/user"
)

func (c *Console) employeeSession(emp user.User) {
	for {
		c.prompt.println("\n--- Меню сотрудника ---")
		c.prompt.println("1) Посмотреть мой профиль")
		c.prompt.println("2) Посмотреть мои проекты")
		c.prompt.println("3) Посмотреть мой отчет")
		c.prompt.println("4) Посмотреть мою оценку эффективности")
		c.prompt.println("5) Посмотреть мой рейтинг")
		c.prompt.println("0) Выйти")
		switch c.prompt.ReadInt("Ваш выбор: ") {
		case 1:
			c.viewProfile(emp)
			c.viewMyProjects(emp)
			c.prompt.Pause()
		case 2:
			c.viewMyProjects(emp)
			c.prompt.Pause()
		case 3:
			c.viewMyReport(emp.Username)
			c.prompt.Pause()
		case 4:
			c.viewMyScore(emp.Username)
			c.prompt.Pause()
		case 5:
			c.viewMyRating(emp.Username)
			c.prompt.Pause()
		case 0:
			c.prompt.println("Сотрудник вышел из системы...")
			return
		default:
			c.prompt.println("Неверный выбор.")
		}
	}
}

func (c *Console) viewMyProjects(emp user.User) {
	assignments := c.projects.AssignmentsForUser(emp.Username)
	if len(assignments) == 0 {
		c.prompt.println("\nВы не участвуете ни в одном проекте.")
		return
	}

	t := newTable(fmt.Sprintf("\nМои проекты (%d)", len(assignments)),
		"Название проекта", "Статус", "Роль", "Дата назначения")
	for _, a := range assignments {
		status := ""
		if proj, found := c.projects.FindProject(a.ProjectName); found {
			status = proj.Status
		}
		t.AddRow(clip(a.ProjectName, 30), clip(status, 15), clip(a.Role, 20), a.AssignedDate)
	}
	c.prompt.println(t.Render(c.prompt.st))
}

func (c *Console) viewMyReport(username string) {
	name, lines, found := c.reports.Latest(username)
	if !found {
		c.prompt.println("\n=== ОТЧЕТ НЕ НАЙДЕН ===")
		c.prompt.println("Для вас еще не создан отчет HR-менеджером.")
		c.prompt.println("Отчет будет доступен после его генерации HR-менеджером.")
		return
	}

	c.prompt.println(banner("ВАШ ОТЧЕТ HR: " + name))
	for _, line := range lines {
		c.prompt.println(line)
	}
}

func (c *Console) viewMyScore(username string) {
	c.prompt.println("\n=== ВАША ОЦЕНКА ЭФФЕКТИВНОСТИ ===")
	if !c.scoring.HasPerformanceScore(username) {
		c.prompt.println("Оценка эффективности еще не рассчитана HR-менеджером.")
		c.prompt.println("Обратитесь к HR для проведения оценки.")
		return
	}

	score := c.scoring.GetPerformanceScore(username)
	c.prompt.printf("Текущая оценка: %.1f/100\n", score)
	c.prompt.printf("Уровень: %s\n", report.ScoreLevel(score))
}

func (c *Console) viewMyRating(username string) {
	c.prompt.println("\n=== МОЙ РЕЙТИНГ ===")
	rank, total := c.users.Rank(username, c.scoring)
	if rank < 0 {
		c.prompt.println("Вы еще не участвуете в рейтинге: оценка не рассчитана.")
		return
	}
	c.prompt.printf("Ваше место: %d из %d\n", rank, total)

	rated := c.users.SortedByRating(c.scoring)
	t := newTable("\nОбщий рейтинг", "Место", "ФИО", "Оценка")
	for i, r := range rated {
		rating := "НЕ ОЦЕНЕН"
		if r.Score >= 0 {
			rating = fmt.Sprintf("%.2f/100", r.Score)
		}
		marker := ""
		if r.User.Username == username {
			marker = " (вы)"
		}
		t.AddRow(fmt.Sprintf("%d", i+1), clip(r.User.FullName, 30)+marker, rating)
	}
	c.prompt.println(t.Render(c.prompt.st))
}
