package console

import (
	"context"
	"fmt"
	"math"
	"strings"

	projectdm "github.com/frahmantamala/hr-management/internal/core/datamodel/project"
	userdm "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
	"github.com/frahmantamala/hr-management/internal/project"
	"github.com/frahmantamala/hr-management/internal/scoring"
	"github.com/frahmantamala/hr-management/internal/user"
	"github.com/frahmantamala/hr-management/pkg/logger"
)

func (c *Console) hrSession(ctx context.Context, hr user.User) {
	for {
		c.prompt.println("\n--- Меню HR-менеджера ---")
		c.prompt.println("1) Просмотреть мой профиль")
		c.prompt.println("2) Управление проектами")
		c.prompt.println("3) Управление сотрудниками")
		c.prompt.println("0) Выход")
		switch c.prompt.ReadInt("Ваш выбор: ") {
		case 1:
			c.viewProfile(hr)
			c.prompt.Pause()
		case 2:
			c.manageProjects()
		case 3:
			c.manageEmployees(ctx)
		case 0:
			c.prompt.println("HR-менеджер вышел из системы...")
			return
		default:
			c.prompt.println("Неверный выбор.")
		}
	}
}

func (c *Console) manageProjects() {
	for {
		c.prompt.println("\n--- Управление проектами ---")
		c.prompt.println("1) Добавить новый проект")
		c.prompt.println("2) Просмотреть все проекты")
		c.prompt.println("3) Назначить сотрудника на проект")
		c.prompt.println("4) Просмотреть детали проекта")
		c.prompt.println("5) Редактировать проект")
		c.prompt.println("6) Удалить проект")
		c.prompt.println("7) Поиск проектов")
		c.prompt.println("8) Фильтр проектов по статусу")
		c.prompt.println("9) Сортировка проектов")
		c.prompt.println("0) Вернуться в меню HR")
		switch c.prompt.ReadInt("Выберите действие: ") {
		case 1:
			c.addProject()
		case 2:
			c.viewAllProjects()
		case 3:
			c.assignEmployeeToProject()
		case 4:
			c.viewProjectDetails()
		case 5:
			c.editProject()
		case 6:
			c.deleteProject()
		case 7:
			c.searchProjects()
		case 8:
			c.filterProjectsByStatus()
		case 9:
			c.sortProjects()
		case 0:
			return
		default:
			c.prompt.println("Неверный выбор.")
		}
	}
}

func (c *Console) manageEmployees(ctx context.Context) {
	for {
		c.prompt.println("\n--- Управление сотрудниками ---")
		c.prompt.println("1) Добавить нового сотрудника")
		c.prompt.println("2) Просмотреть всех сотрудников")
		c.prompt.println("3) Просмотреть детали сотрудника")
		c.prompt.println("4) Редактировать данные сотрудника")
		c.prompt.println("5) Удалить сотрудника")
		c.prompt.println("6) Поиск сотрудников")
		c.prompt.println("7) Сортировка сотрудников по ФИО")
		c.prompt.println("8) Назначить сотрудника на проект")
		c.prompt.println("9) Рассчитать эффективность сотрудника")
		c.prompt.println("10) Рейтинг сотрудников по эффективности")
		c.prompt.println("11) Сгенерировать отчет сотрудника")
		c.prompt.println("0) Вернуться в меню HR")
		switch c.prompt.ReadInt("Выберите действие: ") {
		case 1:
			c.addEmployee()
		case 2:
			c.viewAllEmployees()
		case 3:
			c.viewEmployeeDetails()
		case 4:
			c.editEmployee()
		case 5:
			c.deleteEmployee()
		case 6:
			c.searchEmployees()
		case 7:
			c.sortEmployeesByName()
		case 8:
			c.assignEmployeeToProject()
		case 9:
			c.calculatePerformance(ctx)
		case 10:
			c.showEmployeesRating()
		case 11:
			c.generateReport(ctx)
		case 0:
			return
		default:
			c.prompt.println("Неверный выбор.")
		}
	}
}

// chooseEmployee lists employees by full name and returns the picked record.
func (c *Console) chooseEmployee(prompt string) (userdm.User, bool) {
	employees := c.users.GetAllEmployees()
	if len(employees) == 0 {
		c.prompt.println("Нет сотрудников.")
		return userdm.User{}, false
	}

	c.prompt.println("Список сотрудников:")
	for i, e := range employees {
		c.prompt.printf("%d) %s\n", i+1, e.FullName)
	}

	choice := c.prompt.ReadInt(prompt)
	if choice < 1 || choice > len(employees) {
		c.prompt.println("Неверный выбор.")
		return userdm.User{}, false
	}
	return employees[choice-1], true
}

func (c *Console) chooseProject(prompt string) (projectdm.Project, bool) {
	projects := c.projects.AllProjects()
	if len(projects) == 0 {
		c.prompt.println("Нет проектов.")
		return projectdm.Project{}, false
	}

	c.prompt.println("Список проектов:")
	for i, p := range projects {
		c.prompt.printf("%d) %s\n", i+1, p.Name)
	}

	choice := c.prompt.ReadInt(prompt)
	if choice < 1 || choice > len(projects) {
		c.prompt.println("Неверный выбор.")
		return projectdm.Project{}, false
	}
	return projects[choice-1], true
}

// ---------- проекты ----------

func (c *Console) addProject() {
	c.prompt.println("\n--- Добавление нового проекта ---")
	name := c.prompt.ReadLine("Название проекта: ", false)
	description := c.prompt.ReadLine("Описание проекта: ", false)

	status := "активный"
	if custom := c.prompt.ReadLine("Статус проекта (по умолчанию 'Активный'): ", true); custom != "" {
		status = custom
	}

	err := c.projectSvc.CreateProject(project.CreateProjectDTO{
		Name:        name,
		Description: description,
		Status:      status,
	})
	if err != nil {
		c.prompt.errorln("Ошибка: проект с таким названием уже существует.")
		return
	}
	c.prompt.successln(fmt.Sprintf("Проект '%s' успешно добавлен.", name))
}

func (c *Console) renderProjects(title string, projects []projectdm.Project) {
	if len(projects) == 0 {
		c.prompt.println("\nНет проектов.")
		return
	}
	t := newTable(title, "№", "Название проекта", "Описание", "Статус", "Дата создания")
	for i, p := range projects {
		t.AddRow(fmt.Sprintf("%d", i+1), clip(p.Name, 30), clip(p.Description, 25), clip(p.Status, 15), p.CreatedDate)
	}
	c.prompt.println(t.Render(c.prompt.st))
}

func (c *Console) viewAllProjects() {
	projects := c.projects.AllProjects()
	c.renderProjects(fmt.Sprintf("\nВсе проекты (%d)", len(projects)), projects)
}

func (c *Console) assignEmployeeToProject() {
	c.prompt.println("\n--- Назначение сотрудника на проект ---")
	employee, ok := c.chooseEmployee("Выберите сотрудника: ")
	if !ok {
		return
	}
	proj, ok := c.chooseProject("Выберите проект: ")
	if !ok {
		return
	}

	role := c.prompt.ReadLine("Роль сотрудника в проекте: ", true)
	if role == "" {
		role = projectdm.DefaultAssignmentRole
	}

	err := c.projectSvc.AssignEmployee(project.AssignEmployeeDTO{
		Username:    employee.Username,
		ProjectName: proj.Name,
		Role:        role,
	})
	if err != nil {
		c.prompt.errorln("Ошибка: сотрудник уже назначен на этот проект или проект не существует.")
		return
	}
	c.prompt.successln(fmt.Sprintf("Сотрудник %s успешно назначен на проект '%s' с ролью '%s'.",
		employee.Username, proj.Name, role))
}

func (c *Console) viewProjectDetails() {
	c.prompt.println("\n--- Детали проекта ---")
	proj, ok := c.chooseProject("Выберите проект для просмотра: ")
	if !ok {
		return
	}

	c.prompt.println("\n--- Информация о проекте ---")
	c.prompt.printf("Название: %s\n", proj.Name)
	c.prompt.printf("Описание: %s\n", proj.Description)
	c.prompt.printf("Статус: %s\n", proj.Status)
	c.prompt.printf("Дата создания: %s\n", proj.CreatedDate)

	assignments := c.projects.AssignmentsForProject(proj.Name)
	if len(assignments) == 0 {
		c.prompt.println("\nНа проекте нет сотрудников.")
		return
	}

	t := newTable(fmt.Sprintf("\nСотрудники на проекте (%d)", len(assignments)),
		"ФИО", "Логин", "Роль", "Дата назначения")
	for _, a := range assignments {
		fullName := a.Username
		if record, found := c.users.FindByUsername(a.Username); found {
			fullName = record.FullName
		}
		t.AddRow(clip(fullName, 25), a.Username, clip(a.Role, 20), a.AssignedDate)
	}
	c.prompt.println(t.Render(c.prompt.st))
}

var standardStatuses = []string{"активный", "завершенный", "приостановленный", "планируется"}

func (c *Console) editProject() {
	c.prompt.println("\n--- Редактирование проекта ---")
	proj, ok := c.chooseProject("Выберите проект для редактирования: ")
	if !ok {
		return
	}

	c.prompt.println("\nЧто вы хотите изменить?")
	c.prompt.println("1) Статус проекта")
	c.prompt.println("2) Описание проекта")
	c.prompt.println("3) Роль сотрудника на проекте")

	switch c.prompt.ReadInt("Ваш выбор: ") {
	case 1:
		c.editProjectStatus(proj)
	case 2:
		c.editProjectDescription(proj)
	case 3:
		c.editAssignmentRole(proj.Name)
	default:
		c.prompt.println("Неверный выбор.")
	}
}

func (c *Console) editProjectStatus(proj projectdm.Project) {
	c.prompt.printf("Текущий статус: %s\n", proj.Status)
	newStatus := c.prompt.ReadLine("Новый статус («активный», «завершенный», «приостановленный», «планируется»): ", false)

	standard := false
	for _, s := range standardStatuses {
		if newStatus == s {
			standard = true
			break
		}
	}
	if !standard {
		c.prompt.warnln(fmt.Sprintf("Предупреждение: статус '%s' не является стандартным.", newStatus))
		c.prompt.printf("Стандартные статусы: %s\n", strings.Join(standardStatuses, ", "))
		if !c.prompt.Confirm("Продолжить с пользовательским статусом? (y/n): ") {
			c.prompt.println("Изменение статуса отменено.")
			return
		}
	}

	if err := c.projectSvc.UpdateProject(project.UpdateProjectDTO{Name: proj.Name, Status: newStatus}); err != nil {
		c.prompt.errorln(err.Error())
		return
	}
	c.prompt.successln("Статус проекта обновлен.")
}

func (c *Console) editProjectDescription(proj projectdm.Project) {
	c.prompt.println("Текущее описание:")
	c.prompt.println(proj.Description + "\n")

	newDesc := c.prompt.ReadLine("Новое описание (нажмите Enter для отмены): ", true)
	if newDesc == "" {
		c.prompt.println("Изменение описания отменено.")
		return
	}
	if len([]rune(newDesc)) < 10 {
		c.prompt.println("Описание слишком короткое (минимум 10 символов).")
		if !c.prompt.Confirm("Продолжить? (y/n): ") {
			return
		}
	}

	if err := c.projectSvc.UpdateProject(project.UpdateProjectDTO{Name: proj.Name, Description: newDesc}); err != nil {
		c.prompt.errorln(err.Error())
		return
	}
	c.prompt.successln("Описание проекта обновлено.")
}

func (c *Console) editAssignmentRole(projectName string) {
	assignments := c.projects.AssignmentsForProject(projectName)
	if len(assignments) == 0 {
		c.prompt.println("На проекте нет сотрудников.")
		return
	}

	c.prompt.println("Сотрудники на проекте:")
	for i, a := range assignments {
		fullName := a.Username
		if record, found := c.users.FindByUsername(a.Username); found {
			fullName = record.FullName
		}
		c.prompt.printf("%d) %s - Текущая роль: %s\n", i+1, fullName, a.Role)
	}

	choice := c.prompt.ReadInt("Выберите сотрудника: ")
	if choice < 1 || choice > len(assignments) {
		c.prompt.println("Неверный выбор.")
		return
	}

	c.prompt.println("Доступные роли: Участник (по умолчанию), Руководитель, Разработчик, Тестировщик, Аналитик, Дизайнер")
	newRole := c.prompt.ReadLine("Новая роль: ", true)
	if newRole == "" {
		newRole = projectdm.DefaultAssignmentRole
	}

	if err := c.projectSvc.ChangeEmployeeRole(assignments[choice-1].Username, projectName, newRole); err != nil {
		c.prompt.errorln("Ошибка обновления роли.")
		return
	}
	c.prompt.successln("Роль сотрудника обновлена.")
}

func (c *Console) deleteProject() {
	c.prompt.println("\n--- Удаление проекта ---")
	proj, ok := c.chooseProject("Выберите проект для удаления: ")
	if !ok {
		return
	}

	if !c.prompt.Confirm(fmt.Sprintf("Вы уверены, что хотите удалить проект '%s'? (y/n): ", proj.Name)) {
		c.prompt.println("Удаление отменено.")
		return
	}
	if err := c.projectSvc.RemoveProject(proj.Name); err != nil {
		c.prompt.errorln("Ошибка удаления проекта.")
		return
	}
	c.prompt.successln("Проект удален.")
}

func (c *Console) searchProjects() {
	c.prompt.println("\n--- Поиск проектов ---")
	keyword := c.prompt.ReadLine("Введите ключевое слово для поиска: ", false)
	results := c.projects.SearchByName(keyword)
	if len(results) == 0 {
		c.prompt.println("\nПроекты не найдены.")
		return
	}
	c.renderProjects(fmt.Sprintf("\nРезультаты поиска (%d)", len(results)), results)
}

func (c *Console) filterProjectsByStatus() {
	c.prompt.println("\n--- Фильтр проектов по статусу ---")
	c.prompt.println("Доступные статусы: Активный, Завершенный, Приостановленный")
	status := c.prompt.ReadLine("Введите статус для фильтрации: ", false)
	results := c.projects.FilterByStatus(status)
	if len(results) == 0 {
		c.prompt.printf("\nПроекты с статусом '%s' не найдены.\n", status)
		return
	}
	c.renderProjects(fmt.Sprintf("\nПроекты со статусом '%s' (%d)", status, len(results)), results)
}

func (c *Console) sortProjects() {
	c.prompt.println("\n--- Сортировка проектов ---")
	c.prompt.println("1) По названию (А-Я)")
	c.prompt.println("2) По названию (Я-А)")
	c.prompt.println("3) По дате создания (старые сначала)")
	c.prompt.println("4) По дате создания (новые сначала)")

	var sorted []projectdm.Project
	var title string
	switch c.prompt.ReadInt("Выберите тип сортировки: ") {
	case 1:
		sorted = c.projects.SortedByName(true)
		title = "Проекты отсортированные по названию (А-Я)"
	case 2:
		sorted = c.projects.SortedByName(false)
		title = "Проекты отсортированные по названию (Я-А)"
	case 3:
		sorted = c.projects.SortedByDate(true)
		title = "Проекты отсортированные по дате создания (старые сначала)"
	case 4:
		sorted = c.projects.SortedByDate(false)
		title = "Проекты отсортированные по дате создания (новые сначала)"
	default:
		c.prompt.println("Неверный выбор.")
		return
	}
	c.renderProjects(fmt.Sprintf("\n%s (%d)", title, len(sorted)), sorted)
}

// ---------- сотрудники ----------

func (c *Console) addEmployee() {
	c.prompt.println("\n--- Добавление нового сотрудника ---")
	username := c.prompt.ReadLine("Логин сотрудника: ", false)
	if _, exists := c.users.FindByUsername(username); exists {
		c.prompt.println("Сотрудник с таким логином уже существует.")
		return
	}

	password := c.readNewPassword()
	fullName := c.prompt.ReadLine("ФИО сотрудника: ", false)
	department := c.prompt.ChooseDepartment()

	_, err := c.userSvc.Register(user.RegisterDTO{
		Username:        username,
		Password:        password,
		PasswordConfirm: password,
		FullName:        fullName,
		Department:      department,
	})
	if err != nil {
		c.prompt.errorln("Ошибка добавления сотрудника.")
		return
	}
	c.prompt.successln(fmt.Sprintf("Сотрудник '%s' успешно добавлен.", fullName))
}

func (c *Console) viewAllEmployees() {
	employees := c.users.GetAllEmployees()
	if len(employees) == 0 {
		c.prompt.println("\nНет сотрудников.")
		return
	}

	t := newTable("\nСписок сотрудников", "№", "ФИО", "Отдел")
	for i, e := range employees {
		t.AddRow(fmt.Sprintf("%d", i+1), clip(e.FullName, 25), clip(e.Department, 15))
	}
	c.prompt.println(t.Render(c.prompt.st))
	c.prompt.printf("Всего: %d сотрудников\n", len(employees))
}

func (c *Console) viewEmployeeDetails() {
	c.prompt.println("\n--- Детали сотрудника ---")
	employee, ok := c.chooseEmployee("Выберите сотрудника для просмотра: ")
	if !ok {
		return
	}

	c.prompt.println("\n--- Информация о сотруднике ---")
	c.viewProfile(user.FromDataModel(employee))

	assignments := c.projects.AssignmentsForUser(employee.Username)
	if len(assignments) == 0 {
		c.prompt.println("\nСотрудник не участвует ни в одном проекте.")
		return
	}

	c.prompt.println("\nПроекты сотрудника:")
	for _, a := range assignments {
		status := ""
		if proj, found := c.projects.FindProject(a.ProjectName); found {
			status = proj.Status
		}
		c.prompt.printf("  - %s | Статус: %s | Роль: %s\n", a.ProjectName, status, a.Role)
	}
}

func (c *Console) editEmployee() {
	c.prompt.println("\n--- Редактирование данных сотрудника ---")
	employee, ok := c.chooseEmployee("Выберите сотрудника для редактирования: ")
	if !ok {
		return
	}

	c.prompt.println("\nТекущая информация:")
	c.viewProfile(user.FromDataModel(employee))

	c.prompt.println("\nВведите новые данные (оставьте пустым, чтобы не менять):")
	newFullName := c.prompt.ReadLine("Новое ФИО: ", true)
	if newFullName == "" {
		newFullName = employee.FullName
	}
	newDepartment := c.prompt.ChooseDepartmentOrKeep(employee.Department)

	err := c.userSvc.UpdateEmployee(user.UpdateEmployeeDTO{
		Username:   employee.Username,
		FullName:   newFullName,
		Department: newDepartment,
	})
	if err != nil {
		c.prompt.errorln("Ошибка обновления данных.")
		return
	}
	c.prompt.successln("Данные сотрудника обновлены.")
}

func (c *Console) deleteEmployee() {
	c.prompt.println("\n--- Удаление сотрудника ---")
	employee, ok := c.chooseEmployee("Выберите сотрудника для удаления: ")
	if !ok {
		return
	}

	if !c.prompt.Confirm(fmt.Sprintf("Вы уверены, что хотите удалить сотрудника '%s'? (y/n): ", employee.FullName)) {
		c.prompt.println("Удаление отменено.")
		return
	}
	if err := c.userSvc.RemoveUser(employee.Username); err != nil {
		c.prompt.errorln("Ошибка удаления сотрудника.")
		return
	}
	c.prompt.successln("Сотрудник удален.")
}

func (c *Console) searchEmployees() {
	c.prompt.println("\n--- Поиск сотрудников ---")
	keyword := c.prompt.ReadLine("Введите ключевое слово для поиска (ФИО): ", false)
	results := c.users.SearchByName(keyword)
	if len(results) == 0 {
		c.prompt.println("Сотрудники не найдены.")
		return
	}

	c.prompt.printf("\n--- Результаты поиска (%d) ---\n", len(results))
	for _, e := range results {
		c.prompt.printf("ФИО: %s | Отдел: %s | Роль: %s\n", e.FullName, e.Department, e.Role)
	}
}

func (c *Console) sortEmployeesByName() {
	sorted := c.users.SortedByName(true)
	c.prompt.println("\n--- Сотрудники отсортированные по ФИО (А-Я) ---")
	if len(sorted) == 0 {
		c.prompt.println("Нет сотрудников.")
		return
	}
	for _, e := range sorted {
		c.prompt.printf("ФИО: %s | Логин: %s | Отдел: %s | Роль: %s\n",
			e.FullName, e.Username, e.Department, e.Role)
	}
}

// ---------- расчет эффективности ----------

// leadershipRoles are the assignment roles counted as leadership when
// analysing project activity.
var leadershipRoles = []string{"руководитель", "менеджер", "ведущий разработчик"}

func (c *Console) projectActivityFor(username string) scoring.ProjectActivity {
	var activity scoring.ProjectActivity
	for _, a := range c.projects.AssignmentsForUser(username) {
		proj, found := c.projects.FindProject(a.ProjectName)
		if !found {
			continue
		}
		activity.Total++
		status := strings.ToLower(proj.Status)
		switch {
		case strings.Contains(status, "актив"):
			activity.Active++
		case strings.Contains(status, "заверш"):
			activity.Completed++
		}
		role := strings.ToLower(a.Role)
		for _, lead := range leadershipRoles {
			if role == lead {
				activity.Leadership++
				break
			}
		}
	}
	return activity
}

func (c *Console) calculatePerformance(ctx context.Context) {
	c.prompt.println("\n=== РАСЧЕТ ЭФФЕКТИВНОСТИ СОТРУДНИКА ===")

	employees := c.users.GetAllEmployees()
	if len(employees) == 0 {
		c.prompt.println("Нет сотрудников для расчета.")
		return
	}

	t := newTable("\n--- ВЫБЕРИТЕ СОТРУДНИКА ---", "№", "ФИО", "ОТДЕЛ", "ТЕКУЩАЯ ОЦЕНКА")
	for i, e := range employees {
		rating := "НЕ ОЦЕНЕН"
		if score := c.scoring.GetPerformanceScore(e.Username); score >= 0 {
			rating = fmt.Sprintf("%.2f/100", score)
		}
		t.AddRow(fmt.Sprintf("%d", i+1), clip(e.FullName, 33), clip(e.Department, 18), rating)
	}
	c.prompt.println(t.Render(c.prompt.st))

	choice := c.prompt.ReadInt("Введите номер сотрудника для расчета (0 - отмена): ")
	if choice == 0 {
		c.prompt.println("Отмена расчета.")
		return
	}
	if choice < 1 || choice > len(employees) {
		c.prompt.println("Неверный выбор.")
		return
	}

	employee := employees[choice-1]
	c.prompt.println(banner(
		"ВЫБРАН СОТРУДНИК: "+employee.FullName,
		"ЛОГИН: "+employee.Username+" | ОТДЕЛ: "+employee.Department,
	))

	paramName := c.scoring.DepartmentParameterName(employee.Department)
	c.prompt.printf("\nСпециализированный параметр: %s\n\n", paramName)

	activity := c.projectActivityFor(employee.Username)
	if activity.Total == 0 {
		c.prompt.println("Сотрудник не участвует в проектах.")
		c.prompt.println("Эффективность: Н/Д (недостаточно данных)")
		return
	}

	c.prompt.println("=== Анализ проектов ===")
	c.prompt.printf("Всего проектов: %d\n", activity.Total)
	c.prompt.printf("Активных проектов: %d\n", activity.Active)
	c.prompt.printf("Завершенных проектов: %d\n", activity.Completed)
	c.prompt.printf("Проектов с руководящей ролью: %d\n\n", activity.Leadership)

	c.prompt.println("=== Введите данные для расчета ===")
	departmentScore := c.prompt.ReadScore(fmt.Sprintf("Оценка %s (0-100): ", paramName), 0, 100)
	c.printDepartmentHint(employee.Department)
	teamworkScore := c.prompt.ReadScore("Оценка командной работы (0-100): ", 0, 100)

	tasksScore := activity.TasksScore()

	w := c.scoring.Weights()
	c.prompt.printf("\n=== Коэффициенты для отдела '%s' ===\n", employee.Department)
	c.prompt.printf("Вес %s: %g%%\n", paramName, c.scoring.DepartmentWeight(employee.Department))
	c.prompt.printf("Вес командной работы: %g%%\n", w.Teamwork)
	c.prompt.printf("Вес выполненных задач: %g%%\n", w.Tasks)

	if !c.scoring.ValidateDepartmentWeights(employee.Department) {
		c.prompt.warnln(fmt.Sprintf("Внимание: сумма весов для отдела '%s' не равна 100%%!", employee.Department))
		c.prompt.println("Рекомендуется настроить параметры в меню администратора.")
	}

	c.prompt.println("\n=== Результаты расчета ===")
	c.prompt.printf("%s: %.2f/100\n", paramName, departmentScore)
	c.prompt.printf("Оценка командной работы: %.2f/100\n", teamworkScore)
	c.prompt.printf("Оценка выполненных задач: %.2f/100 (на основе %d проектов)\n", tasksScore, activity.Total)

	finalScore := c.scoring.CalculatePerformance(employee.Department, departmentScore, teamworkScore, tasksScore)
	finalScore = math.Round(finalScore*100) / 100

	c.prompt.println("\n=== ИТОГОВАЯ ЭФФЕКТИВНОСТЬ ===")
	c.prompt.printf("Общий балл: %.2f/100\n", finalScore)
	c.scoring.SavePerformanceScore(employee.Username, finalScore)
	logger.From(ctx).Info("performance score saved", "employee", employee.Username, "score", finalScore)
	c.prompt.println("Оценка сохранена в системе.")

	level, recommendation := performanceLevel(finalScore)
	c.prompt.printf("Уровень: %s\n", level)
	c.prompt.printf("Рекомендации: %s\n", recommendation)
}

func performanceLevel(score float64) (level, recommendation string) {
	switch {
	case score >= 90:
		return "ЭКСПЕРТ", "Кандидат на повышение/премию"
	case score >= 75:
		return "ОПЫТНЫЙ СПЕЦИАЛИСТ", "Стабильно высокие показатели"
	case score >= 60:
		return "КОМПЕТЕНТНЫЙ СОТРУДНИК", "Соответствует ожиданиям"
	case score >= 40:
		return "НАЧИНАЮЩИЙ СПЕЦИАЛИСТ", "Требуется наставничество"
	default:
		return "ТРЕБУЕТСЯ ПОВЫШЕНИЕ КВАЛИФИКАЦИИ", "Необходим план развития"
	}
}

func (c *Console) printDepartmentHint(department string) {
	dept := strings.ToLower(department)
	var lines []string
	switch {
	case strings.Contains(dept, "разработ") || strings.Contains(dept, "dev"):
		lines = []string{
			"Подсказка: качество кода оценивается по:",
			"- Количество критических багов",
			"- Соблюдение стандартов кодирования",
			"- Эффективность и читаемость кода",
		}
	case strings.Contains(dept, "дизайн") || strings.Contains(dept, "design"):
		lines = []string{
			"Подсказка: креативность оценивается по:",
			"- Уникальность дизайн-решений",
			"- Соответствие трендам",
			"- Визуальная привлекательность",
		}
	case strings.Contains(dept, "маркетинг") || strings.Contains(dept, "marketing"):
		lines = []string{
			"Подсказка: ROI кампаний оценивается по:",
			"- Возврат на инвестиции",
			"- Эффективность рекламных кампаний",
			"- Привлечение новых клиентов",
		}
	case strings.Contains(dept, "продаж") || strings.Contains(dept, "sales"):
		lines = []string{
			"Подсказка: конверсия продаж оценивается по:",
			"- Процент успешных сделок",
			"- Объем продаж",
			"- Удержание клиентов",
		}
	case strings.Contains(dept, "поддерж") || strings.Contains(dept, "support"):
		lines = []string{
			"Подсказка: удовлетворенность клиентов оценивается по:",
			"- Оценки клиентов после обращений",
			"- Скорость решения проблем",
			"- Профессионализм общения",
		}
	case strings.Contains(dept, "qa") || strings.Contains(dept, "тестиров"):
		lines = []string{
			"Подсказка: обнаружение багов оценивается по:",
			"- Количество найденных критических багов",
			"- Эффективность тест-кейсов",
			"- Качество баг-репортов",
		}
	}
	for _, line := range lines {
		c.prompt.println(line)
	}
	if len(lines) > 0 {
		c.prompt.println("")
	}
}

func (c *Console) showEmployeesRating() {
	rated := c.users.SortedByRating(c.scoring)
	if len(rated) == 0 {
		c.prompt.println("\nНет сотрудников.")
		return
	}

	t := newTable("\n=== РЕЙТИНГ СОТРУДНИКОВ ПО ЭФФЕКТИВНОСТИ ===",
		"Место", "ФИО", "Отдел", "Оценка")
	evaluated := 0
	var sum float64
	for i, r := range rated {
		rating := "НЕ ОЦЕНЕН"
		if r.Score >= 0 {
			rating = fmt.Sprintf("%.2f/100", r.Score)
			evaluated++
			sum += r.Score
		}
		t.AddRow(fmt.Sprintf("%d", i+1), clip(r.User.FullName, 30), clip(r.User.Department, 18), rating)
	}
	c.prompt.println(t.Render(c.prompt.st))

	c.prompt.println("=== СТАТИСТИКА ===")
	c.prompt.printf("Всего сотрудников: %d\n", len(rated))
	c.prompt.printf("Оценено: %d\n", evaluated)
	if evaluated > 0 {
		c.prompt.printf("Средняя оценка: %.2f/100\n", sum/float64(evaluated))
	}
}

func (c *Console) generateReport(ctx context.Context) {
	c.prompt.println(banner("ГЕНЕРАЦИЯ ОТЧЕТА О СОТРУДНИКЕ"))

	employees := c.users.GetAllEmployees()
	if len(employees) == 0 {
		c.prompt.println("Нет сотрудников для генерации отчетов.")
		return
	}

	c.prompt.println("Список сотрудников:")
	for i, e := range employees {
		c.prompt.printf("%d) %s - %s\n", i+1, e.FullName, e.Department)
	}

	choice := c.prompt.ReadInt("\nВыберите сотрудника для генерации отчета (0 - отмена): ")
	if choice == 0 {
		c.prompt.println("Операция отменена.")
		return
	}
	if choice < 1 || choice > len(employees) {
		c.prompt.println("Неверный выбор.")
		return
	}

	username := employees[choice-1].Username
	filename, err := c.reports.Generate(username)
	if err != nil {
		c.prompt.errorln("Ошибка сохранения отчета.")
		return
	}
	logger.From(ctx).Info("report generated", "employee", username, "file", filename)
	c.prompt.println(banner("ОТЧЕТ УСПЕШНО СОХРАНЕН!", "Файл: "+filename))

	if c.prompt.Confirm("Показать сохраненный отчет? (y/n): ") {
		if _, lines, found := c.reports.Latest(username); found {
			for _, line := range lines {
				c.prompt.println(line)
			}
		}
	}
}
