package report_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-management/internal"
	projectdm "github.com/frahmantamala/hr-management/internal/core/datamodel/project"
	userdm "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
	"github.com/frahmantamala/hr-management/internal/report"
)

func TestReport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report Suite")
}

type stubUsers struct {
	users map[string]userdm.User
}

func (s *stubUsers) FindByUsername(username string) (userdm.User, bool) {
	u, ok := s.users[username]
	return u, ok
}

type stubProjects struct {
	assignments []projectdm.Assignment
	projects    map[string]projectdm.Project
}

func (s *stubProjects) AssignmentsForUser(username string) []projectdm.Assignment {
	var out []projectdm.Assignment
	for _, a := range s.assignments {
		if a.Username == username {
			out = append(out, a)
		}
	}
	return out
}

func (s *stubProjects) FindProject(name string) (projectdm.Project, bool) {
	p, ok := s.projects[name]
	return p, ok
}

type stubScores struct {
	scores map[string]float64
}

func (s *stubScores) HasPerformanceScore(username string) bool {
	_, ok := s.scores[username]
	return ok
}

func (s *stubScores) GetPerformanceScore(username string) float64 {
	if score, ok := s.scores[username]; ok {
		return score
	}
	return -1.0
}

func (s *stubScores) DepartmentParameterName(department string) string {
	return "Качество кода"
}

var _ = Describe("Report Generator", func() {
	var (
		dir       string
		users     *stubUsers
		projects  *stubProjects
		scores    *stubScores
		generator *report.Generator
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		users = &stubUsers{users: map[string]userdm.User{
			"ivanov": {
				Username:   "ivanov",
				FullName:   "Иванов Иван",
				Department: "Разработка",
				Role:       userdm.RoleEmployee,
			},
		}}
		projects = &stubProjects{
			projects: map[string]projectdm.Project{
				"Портал": {Name: "Портал", Status: "активный", CreatedDate: "2024-01-10 12:00:00"},
				"CRM":    {Name: "CRM", Status: "завершенный", CreatedDate: "2024-02-01 09:00:00"},
			},
			assignments: []projectdm.Assignment{
				{Username: "ivanov", ProjectName: "Портал", Role: "Руководитель", AssignedDate: "2024-01-11 10:00:00"},
				{Username: "ivanov", ProjectName: "CRM", Role: "Разработчик", AssignedDate: "2024-02-02 10:00:00"},
			},
		}
		scores = &stubScores{scores: map[string]float64{"ivanov": 81.5}}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		generator = report.NewGenerator(users, projects, scores, dir, logger)
	})

	Describe("Generate", func() {
		It("should write a report file named after the employee", func() {
			filename, err := generator.Generate("ivanov")
			Expect(err).NotTo(HaveOccurred())
			Expect(filename).To(HavePrefix("HR_REPORT_ivanov_"))
			Expect(filename).To(HaveSuffix(".txt"))
			Expect(filename).NotTo(ContainSubstring(":"))
			Expect(filename).NotTo(ContainSubstring(" "))

			_, err = os.Stat(filepath.Join(dir, filename))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should include the evaluation sections", func() {
			filename, err := generator.Generate("ivanov")
			Expect(err).NotTo(HaveOccurred())

			data, err := os.ReadFile(filepath.Join(dir, filename))
			Expect(err).NotTo(HaveOccurred())
			body := string(data)
			Expect(body).To(ContainSubstring("ОТЧЕТ HR О СОТРУДНИКЕ"))
			Expect(body).To(ContainSubstring("Иванов Иван"))
			Expect(body).To(ContainSubstring("ПРОЕКТНАЯ АКТИВНОСТЬ"))
			Expect(body).To(ContainSubstring("81.50"))
			Expect(body).To(ContainSubstring("ХОРОШО"))
			Expect(body).To(ContainSubstring("РЕКОМЕНДАЦИИ ДЛЯ РАЗВИТИЯ"))
		})

		It("should replace older reports for the same employee", func() {
			stale := filepath.Join(dir, "HR_REPORT_ivanov_2024-01-01_00-00-00.txt")
			Expect(os.WriteFile(stale, []byte("устаревший"), 0o644)).To(Succeed())

			_, err := generator.Generate("ivanov")
			Expect(err).NotTo(HaveOccurred())

			matches, err := filepath.Glob(filepath.Join(dir, "HR_REPORT_ivanov_*.txt"))
			Expect(err).NotTo(HaveOccurred())
			Expect(matches).To(HaveLen(1))
			Expect(matches[0]).NotTo(Equal(stale))
		})

		It("should note the missing evaluation when no score exists", func() {
			scores.scores = map[string]float64{}

			filename, err := generator.Generate("ivanov")
			Expect(err).NotTo(HaveOccurred())

			data, err := os.ReadFile(filepath.Join(dir, filename))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("Оценка эффективности не рассчитана"))
		})

		It("should fail for an unknown employee", func() {
			_, err := generator.Generate("ghost")
			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})
	})

	Describe("Latest", func() {
		It("should report absence when no report exists", func() {
			_, _, found := generator.Latest("ivanov")
			Expect(found).To(BeFalse())
		})

		It("should return the newest report by file name", func() {
			old := filepath.Join(dir, "HR_REPORT_ivanov_2024-01-01_00-00-00.txt")
			newer := filepath.Join(dir, "HR_REPORT_ivanov_2025-06-01_12-00-00.txt")
			Expect(os.WriteFile(old, []byte("старый\n"), 0o644)).To(Succeed())
			Expect(os.WriteFile(newer, []byte("новый\n"), 0o644)).To(Succeed())

			name, lines, found := generator.Latest("ivanov")
			Expect(found).To(BeTrue())
			Expect(name).To(Equal(filepath.Base(newer)))
			Expect(lines).To(Equal([]string{"новый"}))
		})
	})

	Describe("ScoreLevel", func() {
		It("should map scores to the evaluation scale", func() {
			Expect(report.ScoreLevel(95)).To(Equal("ОТЛИЧНО"))
			Expect(report.ScoreLevel(80)).To(Equal("ХОРОШО"))
			Expect(report.ScoreLevel(65)).To(Equal("УДОВЛЕТВОРИТЕЛЬНО"))
			Expect(report.ScoreLevel(45)).To(Equal("ТРЕБУЕТСЯ УЛУЧШЕНИЕ"))
			Expect(report.ScoreLevel(20)).To(Equal("НЕДОСТАТОЧНО"))
		})
	})
})
