package scoring_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/scoring"
)

func TestScoring(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Scoring Suite")
}

var _ = Describe("Scoring Config", func() {
	var (
		storage internal.StorageConfig
		logger  *slog.Logger
		cfg     *scoring.Config
	)

	BeforeEach(func() {
		dir := GinkgoT().TempDir()
		base := internal.DefaultConfig()
		storage = base.Storage
		storage.DataDir = dir
		storage.ReportDir = dir
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		cfg = scoring.New(storage, logger)
	})

	Describe("defaults", func() {
		It("should start with 30/30/40 and 30 for each specialized weight", func() {
			w := cfg.Weights()
			Expect(w.CodeQuality).To(Equal(30.0))
			Expect(w.Teamwork).To(Equal(30.0))
			Expect(w.Tasks).To(Equal(40.0))
			Expect(w.QABugDetection).To(Equal(30.0))
		})

		It("should write the defaults out when the weights file is missing", func() {
			_, err := os.Stat(storage.WeightsPath())
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("DepartmentWeight", func() {
		It("should classify departments by keyword", func() {
			Expect(cfg.DepartmentWeight("Разработка")).To(Equal(30.0))
			cfg.SetDesignCreativityWeight(45)
			Expect(cfg.DepartmentWeight("Дизайн")).To(Equal(45.0))
			Expect(cfg.DepartmentWeight("Отдел дизайна")).To(Equal(45.0))
		})

		It("should average the six specialized weights for HR", func() {
			cfg.SetCodeQualityWeight(60)
			// mean of 60, 30, 30, 30, 30, 30
			Expect(cfg.DepartmentWeight("HR")).To(BeNumerically("~", 35.0, 1e-9))
			Expect(cfg.DepartmentWeight("hr")).To(BeNumerically("~", 35.0, 1e-9))
		})

		It("should fall back to code quality for unknown departments", func() {
			cfg.SetCodeQualityWeight(55)
			Expect(cfg.DepartmentWeight("Бухгалтерия")).To(Equal(55.0))
		})
	})

	Describe("DepartmentParameterName", func() {
		It("should name the specialized metric per department", func() {
			Expect(cfg.DepartmentParameterName("Разработка")).To(Equal("Качество кода"))
			Expect(cfg.DepartmentParameterName("QA")).To(Equal("Обнаружение багов"))
			Expect(cfg.DepartmentParameterName("HR")).To(Equal("Эффективность найма"))
			Expect(cfg.DepartmentParameterName("Бухгалтерия")).To(Equal("Специализированный параметр"))
		})
	})

	Describe("CalculatePerformance", func() {
		It("should compute the weighted sum with default weights", func() {
			// 80*0.30 + 70*0.30 + 90*0.40 = 24 + 21 + 36 = 81
			score := cfg.CalculatePerformance("Разработка", 80, 70, 90)
			Expect(score).To(BeNumerically("~", 81.0, 1e-9))
		})

		It("should apply changed weights without renormalizing", func() {
			cfg.SetCodeQualityWeight(50)
			// 80*0.50 + 70*0.30 + 90*0.40 = 40 + 21 + 36 = 97
			score := cfg.CalculatePerformance("Разработка", 80, 70, 90)
			Expect(score).To(BeNumerically("~", 97.0, 1e-9))
		})
	})

	Describe("ValidateDepartmentWeights", func() {
		It("should pass with the defaults", func() {
			Expect(cfg.ValidateDepartmentWeights("Разработка")).To(BeTrue())
		})

		It("should fail when the sum drifts from 100", func() {
			cfg.SetCodeQualityWeight(35)
			Expect(cfg.ValidateDepartmentWeights("Разработка")).To(BeFalse())
		})
	})

	Describe("TasksScore", func() {
		It("should score zero without projects", func() {
			Expect(scoring.ProjectActivity{}.TasksScore()).To(Equal(0.0))
		})

		It("should combine completion, leadership and activity bonuses", func() {
			// 1/2 completed = 50, 1 leadership = 10, 1/2 active = 10
			a := scoring.ProjectActivity{Total: 2, Active: 1, Completed: 1, Leadership: 1}
			Expect(a.TasksScore()).To(BeNumerically("~", 70.0, 1e-9))
		})

		It("should cap at 100", func() {
			a := scoring.ProjectActivity{Total: 2, Active: 1, Completed: 2, Leadership: 3}
			Expect(a.TasksScore()).To(Equal(100.0))
		})
	})

	Describe("performance scores", func() {
		It("should return the absence sentinel for unknown users", func() {
			Expect(cfg.GetPerformanceScore("ghost")).To(Equal(scoring.ScoreAbsent))
			Expect(cfg.HasPerformanceScore("ghost")).To(BeFalse())
		})

		It("should persist saved scores across reload", func() {
			cfg.SavePerformanceScore("ivanov", 81.5)

			reloaded := scoring.New(storage, logger)
			Expect(reloaded.HasPerformanceScore("ivanov")).To(BeTrue())
			Expect(reloaded.GetPerformanceScore("ivanov")).To(BeNumerically("~", 81.5, 1e-9))
		})

		It("should write scores as username|score with two decimals", func() {
			cfg.SavePerformanceScore("ivanov", 81.456)

			data, err := os.ReadFile(storage.ScoresPath())
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("ivanov|81.46"))
		})
	})

	Describe("loadWeights", func() {
		It("should keep defaults beyond a truncated weights file", func() {
			Expect(os.WriteFile(storage.WeightsPath(), []byte("25\n35\n40\n"), 0o644)).To(Succeed())

			reloaded := scoring.New(storage, logger)
			w := reloaded.Weights()
			Expect(w.CodeQuality).To(Equal(25.0))
			Expect(w.Teamwork).To(Equal(35.0))
			Expect(w.Tasks).To(Equal(40.0))
			Expect(w.DesignCreativity).To(Equal(30.0))
		})

		It("should stop at the first unparsable line", func() {
			Expect(os.WriteFile(storage.WeightsPath(), []byte("25\nмусор\n40\n"), 0o644)).To(Succeed())

			reloaded := scoring.New(storage, logger)
			w := reloaded.Weights()
			Expect(w.CodeQuality).To(Equal(25.0))
			Expect(w.Teamwork).To(Equal(30.0))
			Expect(w.Tasks).To(Equal(40.0))
		})
	})
})
