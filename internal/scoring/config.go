// Package scoring owns the weighted performance model: eight configurable
// department weights, the persisted username score map, and the weighted
// average itself.
package scoring

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/textcodec"
)

// ScoreAbsent is returned when a user has never been evaluated. Absence is a
// normal state, not an error.
const ScoreAbsent = -1.0

// Weights holds the percentage contribution of each metric. Teamwork and
// Tasks apply to every department; the other six are specialized, one per
// department group.
type Weights struct {
	CodeQuality         float64
	Teamwork            float64
	Tasks               float64
	DesignCreativity    float64
	MarketingROI        float64
	SalesConversion     float64
	SupportSatisfaction float64
	QABugDetection      float64
}

func DefaultWeights() Weights {
	return Weights{
		CodeQuality:         30,
		Teamwork:            30,
		Tasks:               40,
		DesignCreativity:    30,
		MarketingROI:        30,
		SalesConversion:     30,
		SupportSatisfaction: 30,
		QABugDetection:      30,
	}
}

type Config struct {
	storage internal.StorageConfig
	logger  *slog.Logger
	weights Weights
	scores  map[string]float64
}

func New(storage internal.StorageConfig, logger *slog.Logger) *Config {
	c := &Config{
		storage: storage,
		logger:  logger,
		weights: DefaultWeights(),
		scores:  make(map[string]float64),
	}
	c.loadWeights()
	c.loadScores()
	return c
}

func (c *Config) Weights() Weights {
	return c.weights
}

func (c *Config) SetCodeQualityWeight(w float64) { c.weights.CodeQuality = w; c.saveWeights() }
func (c *Config) SetTeamworkWeight(w float64)    { c.weights.Teamwork = w; c.saveWeights() }
func (c *Config) SetTasksWeight(w float64)       { c.weights.Tasks = w; c.saveWeights() }
func (c *Config) SetDesignCreativityWeight(w float64) {
	c.weights.DesignCreativity = w
	c.saveWeights()
}
func (c *Config) SetMarketingROIWeight(w float64)    { c.weights.MarketingROI = w; c.saveWeights() }
func (c *Config) SetSalesConversionWeight(w float64) { c.weights.SalesConversion = w; c.saveWeights() }
func (c *Config) SetSupportSatisfactionWeight(w float64) {
	c.weights.SupportSatisfaction = w
	c.saveWeights()
}
func (c *Config) SetQABugDetectionWeight(w float64) { c.weights.QABugDetection = w; c.saveWeights() }

// DepartmentWeight resolves the specialized weight for a department by
// case-insensitive substring classification. "HR" (exact, any case) gets the
// arithmetic mean of the six specialized weights; anything unclassified
// falls back to the code-quality weight.
func (c *Config) DepartmentWeight(department string) float64 {
	dept := strings.ToLower(department)
	switch {
	case strings.Contains(dept, "разработ") || strings.Contains(dept, "dev"):
		return c.weights.CodeQuality
	case strings.Contains(dept, "дизайн") || strings.Contains(dept, "design"):
		return c.weights.DesignCreativity
	case strings.Contains(dept, "маркетинг") || strings.Contains(dept, "marketing"):
		return c.weights.MarketingROI
	case strings.Contains(dept, "продаж") || strings.Contains(dept, "sales"):
		return c.weights.SalesConversion
	case strings.Contains(dept, "поддержк") || strings.Contains(dept, "support"):
		return c.weights.SupportSatisfaction
	case strings.Contains(dept, "qa") || strings.Contains(dept, "тестиров"):
		return c.weights.QABugDetection
	case dept == "hr":
		return c.hrWeight()
	default:
		return c.weights.CodeQuality
	}
}

// DepartmentParameterName is the human label of the specialized metric the
// department is scored on, following the same classification.
func (c *Config) DepartmentParameterName(department string) string {
	dept := strings.ToLower(department)
	switch {
	case strings.Contains(dept, "разработ") || strings.Contains(dept, "dev"):
		return "Качество кода"
	case strings.Contains(dept, "дизайн") || strings.Contains(dept, "design"):
		return "Креативность"
	case strings.Contains(dept, "маркетинг") || strings.Contains(dept, "marketing"):
		return "ROI кампаний"
	case strings.Contains(dept, "продаж") || strings.Contains(dept, "sales"):
		return "Конверсия продаж"
	case strings.Contains(dept, "поддержк") || strings.Contains(dept, "support"):
		return "Удовлетворенность клиентов"
	case strings.Contains(dept, "qa") || strings.Contains(dept, "тестиров"):
		return "Обнаружение багов"
	case dept == "hr":
		return "Эффективность найма"
	default:
		return "Специализированный параметр"
	}
}

func (c *Config) hrWeight() float64 {
	w := c.weights
	return (w.CodeQuality + w.DesignCreativity + w.MarketingROI +
		w.SalesConversion + w.SupportSatisfaction + w.QABugDetection) / 6.0
}

// CalculatePerformance computes the weighted sum. Weights are applied as
// given; nothing renormalizes them when they do not add up to 100.
func (c *Config) CalculatePerformance(department string, departmentScore, teamworkScore, tasksScore float64) float64 {
	deptWeight := c.DepartmentWeight(department)
	return departmentScore*deptWeight/100.0 +
		teamworkScore*c.weights.Teamwork/100.0 +
		tasksScore*c.weights.Tasks/100.0
}

// ValidateDepartmentWeights reports whether the three applicable weights sum
// to exactly 100. Purely an operator warning; the calculation never enforces
// it.
func (c *Config) ValidateDepartmentWeights(department string) bool {
	return c.DepartmentWeight(department)+c.weights.Teamwork+c.weights.Tasks == 100.0
}

// ProjectActivity summarizes a user's assignments for the tasks-score
// derivation.
type ProjectActivity struct {
	Total      int
	Active     int
	Completed  int
	Leadership int
}

// TasksScore derives the completed-tasks metric from project activity:
// completion percentage plus 10 points per leadership role plus up to 20
// points for active-project share, capped at 100. Zero projects score zero.
func (a ProjectActivity) TasksScore() float64 {
	if a.Total == 0 {
		return 0
	}
	completionRate := float64(a.Completed) / float64(a.Total) * 100
	leadershipBonus := float64(a.Leadership) * 10
	activityBonus := float64(a.Active) / float64(a.Total) * 20
	return math.Min(100, completionRate+leadershipBonus+activityBonus)
}

func (c *Config) SavePerformanceScore(username string, score float64) {
	c.scores[username] = score
	c.saveScores()
}

func (c *Config) GetPerformanceScore(username string) float64 {
	if score, ok := c.scores[username]; ok {
		return score
	}
	return ScoreAbsent
}

func (c *Config) HasPerformanceScore(username string) bool {
	_, ok := c.scores[username]
	return ok
}

// ----------------- PERSISTENCE -----------------

// weightSlots fixes the file layout: one numeric line per weight.
func (c *Config) weightSlots() []*float64 {
	w := &c.weights
	return []*float64{
		&w.CodeQuality, &w.Teamwork, &w.Tasks,
		&w.DesignCreativity, &w.MarketingROI, &w.SalesConversion,
		&w.SupportSatisfaction, &w.QABugDetection,
	}
}

// loadWeights tolerates a truncated file: weights beyond the last readable
// line keep their compiled-in defaults. A missing file is written out with
// the defaults.
func (c *Config) loadWeights() {
	lines, err := textcodec.ReadLines(c.storage.WeightsPath())
	if err != nil {
		c.logger.Error("failed to read weights file", "path", c.storage.WeightsPath(), "error", err)
		return
	}
	if lines == nil {
		c.saveWeights()
		return
	}
	for i, slot := range c.weightSlots() {
		if i >= len(lines) {
			break
		}
		v, err := strconv.ParseFloat(lines[i], 64)
		if err != nil {
			c.logger.Warn("stopping weights load at unparsable line", "line", lines[i])
			break
		}
		*slot = v
	}
}

func (c *Config) saveWeights() {
	slots := c.weightSlots()
	lines := make([]string, 0, len(slots))
	for _, slot := range slots {
		lines = append(lines, strconv.FormatFloat(*slot, 'g', -1, 64))
	}
	if err := textcodec.WriteLines(c.storage.WeightsPath(), lines); err != nil {
		c.logger.Error("failed to write weights file", "path", c.storage.WeightsPath(), "error", err)
	}
}

func (c *Config) loadScores() {
	lines, err := textcodec.ReadLines(c.storage.ScoresPath())
	if err != nil {
		c.logger.Error("failed to read scores file", "path", c.storage.ScoresPath(), "error", err)
	}
	for _, line := range lines {
		fields, ok := textcodec.Split(line, 2)
		if !ok {
			c.logger.Warn("skipping malformed score record", "line", line)
			continue
		}
		score, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			c.logger.Warn("skipping score record with bad value", "line", line)
			continue
		}
		c.scores[fields[0]] = score
	}
}

// saveScores writes username|score with two decimals, usernames sorted for a
// stable file.
func (c *Config) saveScores() {
	usernames := make([]string, 0, len(c.scores))
	for username := range c.scores {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	lines := make([]string, 0, len(usernames))
	for _, username := range usernames {
		lines = append(lines, fmt.Sprintf("%s|%.2f", username, c.scores[username]))
	}
	if err := textcodec.WriteLines(c.storage.ScoresPath(), lines); err != nil {
		c.logger.Error("failed to write scores file", "path", c.storage.ScoresPath(), "error", err)
	}
}
