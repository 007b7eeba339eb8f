// internal/app/store/queries/coursemetrics/metrics.go
package coursemetrics

import (
	"fmt"
	"math"

	"github.com/dalemusser/learnhub/internal/domain/models"
)

// Display classes and state texts. These feed badge/progress-bar CSS in
// the templates and the modal snippets, so they must stay stable.
const (
	ClassSecondary = "bg-secondary"
	ClassWarning   = "bg-warning"
	ClassSuccess   = "bg-success"
	ClassDanger    = "bg-danger"

	BadgeComplete   = "badge-success"
	BadgeIncomplete = "badge-secondary"

	TextNotStarted   = "Not Started"
	TextInProgress   = "In Progress"
	TextCompleted    = "Completed"
	TextNotCompleted = "Not Completed"

	TextNoGrade       = "-"
	TextNotApplicable = "N / A"
)

// Progress is the per-course progress metric.
type Progress struct {
	Percent int
	Text    string
	Class   string
}

// Grade is the per-course grade metric. Display is "-" when the course
// has no aggregate item or the user is ungraded.
type Grade struct {
	Display     string
	PercentText string
	Percent     float64
	GradeMax    float64
	HasGrade    bool
	Class       string
}

// Completion is the per-course activity-completion metric.
type Completion struct {
	Completed int
	Total     int
	Percent   float64
	Class     string
}

// ActivityRow is one entry in the activities list/modal.
type ActivityRow struct {
	Name           string
	Module         string
	Completed      bool
	CompletedText  string
	CompletedClass string
}

// GradeRow is one entry in the grades list/modal. Scale rows expose the
// achieved label and the full label sequence; numeric rows expose the
// formatted value and max.
type GradeRow struct {
	Name          string
	Display       string
	HasGrade      bool
	IsScale       bool
	ScaleItems    []string
	AchievedScale string
	GradeMax      float64
}

// ProgressFor maps an integer percentage to its state. The mapping is
// total and exclusive: 0 not started, 1-99 in progress, 100 completed.
func ProgressFor(percent int) Progress {
	p := Progress{Percent: percent, Text: TextNotStarted, Class: ClassSecondary}
	switch {
	case percent > 0 && percent < 100:
		p.Text = TextInProgress
		p.Class = ClassWarning
	case percent == 100:
		p.Text = TextCompleted
		p.Class = ClassSuccess
	}
	return p
}

// DisabledProgress is the progress shown when a course has completion
// tracking turned off: always zero and "not started".
func DisabledProgress() Progress {
	return Progress{Percent: 0, Text: TextNotStarted, Class: ClassSecondary}
}

// GradeClass buckets a grade percentage: <50 danger, 50-69 warning,
// ≥70 success.
func GradeClass(percent float64) string {
	switch {
	case percent >= 70:
		return ClassSuccess
	case percent >= 50:
		return ClassWarning
	default:
		return ClassDanger
	}
}

// NumericActivityGrade is one numeric per-activity grade considered by
// RecomputePercent.
type NumericActivityGrade struct {
	Final    *float64
	GradeMax float64
}

// RecomputePercent computes the course grade percentage from numeric
// per-activity grade items that have a non-null final grade:
// earned/total × 100. Items with a null final grade are excluded from
// the denominator ("not applicable" never drags the percentage down).
// Returns 0 when nothing qualifies, so there is no division by zero.
func RecomputePercent(items []NumericActivityGrade) float64 {
	var earned, total float64
	for _, it := range items {
		if it.Final == nil || it.GradeMax <= 0 {
			continue
		}
		earned += *it.Final
		total += it.GradeMax
	}
	if total == 0 {
		return 0
	}
	return earned / total * 100
}

// CompletionFor computes the activity-completion metric. The percentage
// is rounded to one decimal; the state classes match ProgressFor.
func CompletionFor(completed, total int) Completion {
	c := Completion{Completed: completed, Total: total, Class: ClassSecondary}
	if total > 0 {
		c.Percent = Round1(float64(completed) / float64(total) * 100)
	}
	switch {
	case c.Percent > 0 && c.Percent < 100:
		c.Class = ClassWarning
	case c.Percent == 100 && total > 0:
		c.Class = ClassSuccess
	}
	return c
}

// ResolveScaleLabel returns the label for a raw scale grade value
// (1-based index), or "" when out of range. Matches models.Scale.Resolve
// but takes the raw float the grade store returns.
func ResolveScaleLabel(scale *models.Scale, raw float64) string {
	if scale == nil {
		return ""
	}
	return scale.Resolve(int(raw))
}

// FormatValue renders a numeric grade for display, rounded to two
// decimals.
func FormatValue(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatPercent renders a percentage for display, rounded to one
// decimal, with the percent sign.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", Round1(p))
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
