package roadmap

import (
	"fmt"
	"log"
	"math"

	"career-connect/internal/domain/skillgap"
	"career-connect/internal/domain/student"
)

// StepCount is fixed: the roadmap always has exactly four phases
// (Foundation, Specialization, Projects, Preparation) regardless of
// readiness or gap count, so the UI never shows a degenerate plan.
const StepCount = 4

type Resource struct {
	Name string
	URL  string
	Free bool
}

type Step struct {
	Step                   int
	Title                  string
	Duration               string
	FocusAreas             []string
	CompletionMetrics      []string
	Resources              []Resource
	ExpectedCRSImprovement string
}

type Plan struct {
	Steps         []Step
	TotalTimeline string
	CurrentCRS    int
}

// Generator builds adaptive learning roadmaps from a readiness score and a
// gap list. Stateless; every lookup is a threshold-band table.
type Generator struct {
	logger *log.Logger
}

func NewGenerator(logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{logger: logger}
}

// Generate never fails. Readiness outside [0,100] is clamped, an empty gap
// list falls back to default focus areas, and the result always has exactly
// StepCount steps.
func (g *Generator) Generate(p student.Profile, readiness int, gaps []skillgap.Gap) Plan {
	if readiness < 0 {
		readiness = 0
	}
	if readiness > 100 {
		readiness = 100
	}

	b := bandFor(readiness)
	durations := stepDurations[b]

	steps := make([]Step, 0, StepCount)
	for n := 1; n <= StepCount; n++ {
		steps = append(steps, Step{
			Step:                   n,
			Title:                  stepTitle(b, n),
			Duration:               durations[n-1],
			FocusAreas:             focusAreas(gaps, n),
			CompletionMetrics:      stepCompletionMetrics[n-1],
			Resources:              stepResources[n-1],
			ExpectedCRSImprovement: fmt.Sprintf("%d%%", expectedImprovement(b, n)),
		})
	}

	g.logger.Printf("Roadmap | readiness=%d gaps=%d steps=%d", readiness, len(gaps), len(steps))

	return Plan{
		Steps:         steps,
		TotalTimeline: totalTimelines[b],
		CurrentCRS:    readiness,
	}
}

// focusAreas fills steps 1-2 from the gap list (high priorities first, then
// medium) and keeps steps 3-4 fixed. Falls back to per-step defaults so no
// step ever has an empty focus list.
func focusAreas(gaps []skillgap.Gap, step int) []string {
	switch step {
	case 1:
		out := make([]string, 0, 3)
		for _, gap := range gaps {
			if gap.Priority == skillgap.PriorityHigh || gap.Priority == skillgap.PriorityCritical {
				out = append(out, gap.Skill)
				if len(out) == 3 {
					break
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	case 2:
		out := make([]string, 0, 2)
		for _, gap := range gaps {
			if gap.Priority == skillgap.PriorityMedium {
				out = append(out, gap.Skill)
				if len(out) == 2 {
					break
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultFocusAreas[step-1]
}

func expectedImprovement(b band, step int) int {
	return int(math.Round(float64(baseImprovements[step-1]) * adjustmentFactor(b)))
}
