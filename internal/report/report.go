// Package report builds and persists HR evaluation reports as fixed-width
// text files. One report per employee is kept on disk; generating a new one
// removes the previous files for that employee.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/frahmantamala/hr-management/internal"
	projectdm "github.com/frahmantamala/hr-management/internal/core/datamodel/project"
	userdm "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
	"github.com/frahmantamala/hr-management/internal/scoring"
)

const lineWidth = 80

// viewLimit caps how many lines of a saved report are echoed back.
const viewLimit = 100

// detailsLimit caps the project rows rendered in the details table.
const detailsLimit = 10

type UserLookup interface {
	FindByUsername(username string) (userdm.User, bool)
}

type AssignmentSource interface {
	AssignmentsForUser(username string) []projectdm.Assignment
	FindProject(name string) (projectdm.Project, bool)
}

type ScoreSource interface {
	HasPerformanceScore(username string) bool
	GetPerformanceScore(username string) float64
	DepartmentParameterName(department string) string
}

type Generator struct {
	users    UserLookup
	projects AssignmentSource
	scores   ScoreSource
	dir      string
	logger   *slog.Logger
	now      func() time.Time
}

func NewGenerator(users UserLookup, projects AssignmentSource, scores ScoreSource, dir string, logger *slog.Logger) *Generator {
	return &Generator{
		users:    users,
		projects: projects,
		scores:   scores,
		dir:      dir,
		logger:   logger,
		now:      time.Now,
	}
}

// Generate writes a fresh report for the employee and returns the file name.
// Older reports for the same employee are removed first.
func (g *Generator) Generate(username string) (string, error) {
	employee, ok := g.users.FindByUsername(username)
	if !ok {
		return "", internal.ErrUserNotFound
	}

	activity := g.projectActivity(username)
	body := g.render(employee, activity, g.recommendations(activity))

	g.removeOldReports(username)

	timestamp := g.now().Format(projectdm.DateLayout)
	timestamp = strings.ReplaceAll(timestamp, ":", "-")
	timestamp = strings.ReplaceAll(timestamp, " ", "_")
	filename := fmt.Sprintf("HR_REPORT_%s_%s.txt", username, timestamp)

	path := filepath.Join(g.dir, filename)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		g.logger.Error("failed to write report", "path", path, "error", err)
		return "", internal.NewInternalError("не удалось сохранить отчет", err)
	}
	g.logger.Info("generated report", "username", username, "file", filename)
	return filename, nil
}

// Latest returns the contents of the newest saved report for the employee,
// truncated to the view limit. The bool reports whether a report exists.
func (g *Generator) Latest(username string) (name string, lines []string, found bool) {
	matches, err := filepath.Glob(filepath.Join(g.dir, "HR_REPORT_"+username+"_*.txt"))
	if err != nil || len(matches) == 0 {
		return "", nil, false
	}

	latest := matches[0]
	for _, m := range matches[1:] {
		if filepath.Base(m) > filepath.Base(latest) {
			latest = m
		}
	}

	data, err := os.ReadFile(latest)
	if err != nil {
		g.logger.Error("failed to read report", "path", latest, "error", err)
		return "", nil, false
	}

	all := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(all) > viewLimit {
		all = all[:viewLimit]
	}
	return filepath.Base(latest), all, true
}

func (g *Generator) removeOldReports(username string) {
	matches, err := filepath.Glob(filepath.Join(g.dir, "HR_REPORT_"+username+"_*.txt"))
	if err != nil {
		return
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			g.logger.Warn("failed to remove old report", "path", m, "error", err)
			continue
		}
		g.logger.Info("removed old report", "file", filepath.Base(m))
	}
}

// projectDetail is one row of the report's project table.
type projectDetail struct {
	Name         string
	Status       string
	Role         string
	AssignedDate string
}

type activitySummary struct {
	scoring.ProjectActivity
	Details []projectDetail
}

func (g *Generator) projectActivity(username string) activitySummary {
	var summary activitySummary
	for _, a := range g.projects.AssignmentsForUser(username) {
		p, ok := g.projects.FindProject(a.ProjectName)
		if !ok {
			continue
		}
		summary.Total++
		status := strings.ToLower(p.Status)
		if strings.Contains(status, "актив") || strings.Contains(status, "active") {
			summary.Active++
		}
		if strings.Contains(status, "заверш") || strings.Contains(status, "complet") {
			summary.Completed++
		}
		role := strings.ToLower(a.Role)
		if strings.Contains(role, "лидер") || strings.Contains(role, "руководит") ||
			strings.Contains(role, "lead") || strings.Contains(role, "manager") {
			summary.Leadership++
		}
		summary.Details = append(summary.Details, projectDetail{
			Name:         p.Name,
			Status:       p.Status,
			Role:         a.Role,
			AssignedDate: a.AssignedDate,
		})
	}
	return summary
}

func (g *Generator) recommendations(a activitySummary) []string {
	var recs []string
	switch {
	case a.Total == 0:
		recs = append(recs,
			"Включить сотрудника в активные проекты",
			"Назначить наставника для адаптации",
			"Определить зону ответственности")
	case a.Leadership == 0 && a.Total >= 3:
		recs = append(recs,
			"Рассмотреть возможность назначения на лидерскую роль",
			"Развивать управленческие навыки",
			"Поручить менторство новым сотрудникам")
	case a.Completed == 0 && a.Active > 0:
		recs = append(recs,
			"Сфокусироваться на завершении текущих проектов",
			"Улучшить навыки тайм-менеджмента",
			"Установить четкие дедлайны")
	case a.Completed >= 3 && a.Leadership >= 1:
		recs = append(recs,
			"Рассмотреть кандидатуру для повышения",
			"Поручить более сложные и ответственные задачи",
			"Включить в процессы принятия решений")
	default:
		recs = append(recs,
			"Продолжать текущую деятельность",
			"Развивать профессиональные навыки",
			"Участвовать в кросс-функциональных проектах")
	}
	return append(recs,
		"Проводить регулярные one-to-one встречи",
		"Отслеживать прогресс по проектам",
		"Обеспечить доступ к обучению и развитию")
}

// ScoreLevel maps a 0-100 performance score onto the evaluation scale.
func ScoreLevel(score float64) string {
	switch {
	case score >= 90:
		return "ОТЛИЧНО"
	case score >= 75:
		return "ХОРОШО"
	case score >= 60:
		return "УДОВЛЕТВОРИТЕЛЬНО"
	case score >= 40:
		return "ТРЕБУЕТСЯ УЛУЧШЕНИЕ"
	default:
		return "НЕДОСТАТОЧНО"
	}
}

func (g *Generator) render(employee userdm.User, a activitySummary, recs []string) string {
	var b strings.Builder
	double := strings.Repeat("=", lineWidth)
	single := strings.Repeat("-", lineWidth)
	generatedAt := g.now().Format(projectdm.DateLayout)

	b.WriteString(double + "\n")
	b.WriteString("|" + center("ОТЧЕТ HR О СОТРУДНИКЕ", lineWidth-2) + "|\n")
	b.WriteString(double + "\n")
	writePair(&b, "Дата генерации:", generatedAt, 20)
	writePair(&b, "Сгенерировано:", "HR-менеджером", 20)
	b.WriteString(double + "\n\n")

	b.WriteString(double + "\n")
	b.WriteString("|" + center("ОСНОВНАЯ ИНФОРМАЦИЯ", lineWidth-2) + "|\n")
	b.WriteString(single + "\n")
	writePair(&b, "ФИО:", employee.FullName, 20)
	writePair(&b, "Отдел:", employee.Department, 20)
	b.WriteString(double + "\n\n")

	b.WriteString(double + "\n")
	b.WriteString("|" + center("ПРОЕКТНАЯ АКТИВНОСТЬ", lineWidth-2) + "|\n")
	b.WriteString(single + "\n")
	writeCount(&b, "Всего проектов:", a.Total)
	writeCount(&b, "Активных проектов:", a.Active)
	writeCount(&b, "Завершенных проектов:", a.Completed)
	writeCount(&b, "Лидерских ролей:", a.Leadership)
	if a.Total > 0 {
		writePercent(&b, "Процент завершения:", float64(a.Completed)/float64(a.Total)*100)
		writePercent(&b, "Процент активности:", float64(a.Active)/float64(a.Total)*100)
		writePercent(&b, "Процент лидерства:", float64(a.Leadership)/float64(a.Total)*100)
	}
	b.WriteString(double + "\n\n")

	if len(a.Details) > 0 {
		b.WriteString(double + "\n")
		b.WriteString("|" + center("ДЕТАЛИ ПРОЕКТОВ", lineWidth-2) + "|\n")
		b.WriteString(single + "\n")
		fmt.Fprintf(&b, "| %-30s | %-15s | %-25s |\n", "Название проекта", "Статус", "Дата назначения")
		b.WriteString(single + "\n")
		details := a.Details
		if len(details) > detailsLimit {
			details = details[:detailsLimit]
		}
		for _, d := range details {
			fmt.Fprintf(&b, "| %-30s | %-15s | %-25s |\n",
				truncate(d.Name, 28), truncate(d.Status, 13), d.AssignedDate)
		}
		if rest := len(a.Details) - detailsLimit; rest > 0 {
			fmt.Fprintf(&b, "| %-76s |\n", fmt.Sprintf("... и еще %d проект(ов)", rest))
		}
		b.WriteString(double + "\n\n")
	}

	b.WriteString("|" + center("ОЦЕНКА ЭФФЕКТИВНОСТИ", lineWidth-2) + "|\n")
	b.WriteString(single + "\n")
	if g.scores.HasPerformanceScore(employee.Username) {
		score := g.scores.GetPerformanceScore(employee.Username)
		fmt.Fprintf(&b, "| %-40s | %28.2f/100 |\n", "Текущая оценка:", score)
		fmt.Fprintf(&b, "| %-40s | %-32s |\n", "Уровень:", ScoreLevel(score))
	} else {
		fmt.Fprintf(&b, "| %-76s |\n", "Оценка эффективности не рассчитана. Используйте пункт меню")
		fmt.Fprintf(&b, "| %-76s |\n", "'Рассчитать эффективность сотрудника' для проведения оценки.")
	}

	b.WriteString(double + "\n")
	b.WriteString("|" + center("РЕКОМЕНДАЦИИ ДЛЯ РАЗВИТИЯ", lineWidth-2) + "|\n")
	b.WriteString(single + "\n")
	for i, rec := range recs {
		fmt.Fprintf(&b, "| %-76s |\n", fmt.Sprintf("%d. %s", i+1, rec))
	}
	b.WriteString(double + "\n\n")

	b.WriteString(double + "\n")
	fmt.Fprintf(&b, "| %-40s | %-33s|\n", "Подпись HR-менеджера: ___________________", "Дата: ___________________")
	b.WriteString(double + "\n")
	return b.String()
}

func writePair(b *strings.Builder, label, value string, labelWidth int) {
	fmt.Fprintf(b, "| %-*s | %-*s |\n", labelWidth, label, lineWidth-labelWidth-7, value)
}

func writeCount(b *strings.Builder, label string, value int) {
	fmt.Fprintf(b, "| %-30s | %43d |\n", label, value)
}

func writePercent(b *strings.Builder, label string, value float64) {
	fmt.Fprintf(b, "| %-30s | %42.1f%%|\n", label, value)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "..."
}

func center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
