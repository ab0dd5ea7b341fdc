// Package evaluation turns a raw flag list into boolean decisions. It is a
// pure function over its inputs: no I/O, no errors, safe under unbounded
// read concurrency.
package evaluation

import (
	"math/rand"

	"feature-flag-be/internal/entity"
)

// EvaluatedFlag is the client-facing decision for one flag.
type EvaluatedFlag struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Rand returns a uniform sample in [0,1). Injected so percentage rollouts
// are testable deterministically.
type Rand func() float64

type Evaluator struct {
	rand Rand
}

func NewEvaluator() *Evaluator {
	return &Evaluator{rand: rand.Float64}
}

func NewEvaluatorWithRand(r Rand) *Evaluator {
	return &Evaluator{rand: r}
}

// Evaluate resolves each flag to a boolean, preserving input order. The
// master switch wins: a disabled flag is false before any strategy is
// consulted. requesterId may be empty (absent requester).
//
// PERCENTAGE draws one fresh uniform sample per call. The same requester can
// flip between enabled/disabled across requests; this is a statistical
// rollout, not a stable per-user bucket.
func (e *Evaluator) Evaluate(flags []*entity.FeatureFlag, requesterId string) []EvaluatedFlag {
	results := make([]EvaluatedFlag, 0, len(flags))
	for _, flag := range flags {
		enabled := flag.Enabled

		if enabled {
			switch flag.Strategy {
			case entity.StrategyPercentage:
				// Missing or unparseable percentage counts as 0.
				percentage := 0.0
				if flag.Details.Percentage != nil {
					percentage = *flag.Details.Percentage
				}
				enabled = e.rand()*100 < percentage

			case entity.StrategyUser:
				enabled = requesterId != "" && flag.Details.HasUser(requesterId)

			case entity.StrategyBoolean:
				// Master switch already decided.
			}
		}

		name := ""
		if flag.Feature != nil {
			name = flag.Feature.Name
		}
		results = append(results, EvaluatedFlag{
			Name:    name,
			Enabled: enabled,
		})
	}
	return results
}
