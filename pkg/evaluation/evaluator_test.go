package evaluation

import (
	"testing"

	"feature-flag-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func flag(name string, enabled bool, strategy entity.EvaluationStrategy, details entity.StrategyDetails) *entity.FeatureFlag {
	return &entity.FeatureFlag{
		Enabled:  enabled,
		Strategy: strategy,
		Details:  details,
		Feature:  &entity.Feature{Name: name},
	}
}

func TestEvaluateMasterSwitchWins(t *testing.T) {
	// A disabled flag is off no matter how permissive the strategy is.
	evaluator := NewEvaluatorWithRand(func() float64 { return 0 })

	flags := []*entity.FeatureFlag{
		flag("a", false, entity.StrategyBoolean, entity.StrategyDetails{}),
		flag("b", false, entity.StrategyPercentage, entity.StrategyDetails{Percentage: floatPtr(100)}),
		flag("c", false, entity.StrategyUser, entity.StrategyDetails{Users: []string{"user-123"}}),
	}

	results := evaluator.Evaluate(flags, "user-123")
	assert.Len(t, results, 3)
	for _, r := range results {
		assert.False(t, r.Enabled)
	}
}

func TestEvaluateBoolean(t *testing.T) {
	evaluator := NewEvaluator()

	results := evaluator.Evaluate([]*entity.FeatureFlag{
		flag("on", true, entity.StrategyBoolean, entity.StrategyDetails{}),
	}, "")

	assert.Equal(t, []EvaluatedFlag{{Name: "on", Enabled: true}}, results)
}

func TestEvaluatePercentageBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		percentage *float64
		sample     float64
		expect     bool
	}{
		{"zero percent never passes", floatPtr(0), 0, false},
		{"hundred percent always passes", floatPtr(100), 0.9999, true},
		{"sample below threshold passes", floatPtr(50), 0.4999, true},
		{"sample at threshold fails", floatPtr(50), 0.5, false},
		{"missing percentage counts as zero", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evaluator := NewEvaluatorWithRand(func() float64 { return tt.sample })
			results := evaluator.Evaluate([]*entity.FeatureFlag{
				flag("rollout", true, entity.StrategyPercentage, entity.StrategyDetails{Percentage: tt.percentage}),
			}, "")
			assert.Equal(t, tt.expect, results[0].Enabled)
		})
	}
}

func TestEvaluatePercentageIsStatistical(t *testing.T) {
	// With the real RNG a 50% rollout should land near half over many
	// trials. Wide band to keep the test stable.
	evaluator := NewEvaluator()
	flags := []*entity.FeatureFlag{
		flag("rollout", true, entity.StrategyPercentage, entity.StrategyDetails{Percentage: floatPtr(50)}),
	}

	enabled := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		if evaluator.Evaluate(flags, "same-user")[0].Enabled {
			enabled++
		}
	}

	ratio := float64(enabled) / trials
	assert.Greater(t, ratio, 0.45)
	assert.Less(t, ratio, 0.55)
}

func TestEvaluateUserStrategy(t *testing.T) {
	evaluator := NewEvaluator()
	flags := []*entity.FeatureFlag{
		flag("api", true, entity.StrategyUser, entity.StrategyDetails{Users: []string{"user-123", "dev-team@zebra.com"}}),
	}

	assert.True(t, evaluator.Evaluate(flags, "user-123")[0].Enabled)
	assert.True(t, evaluator.Evaluate(flags, "dev-team@zebra.com")[0].Enabled)
	assert.False(t, evaluator.Evaluate(flags, "stranger")[0].Enabled)

	// An absent requester is never in the list, even an empty-string entry
	// must not match.
	assert.False(t, evaluator.Evaluate(flags, "")[0].Enabled)
}

func TestEvaluatePreservesOrder(t *testing.T) {
	evaluator := NewEvaluator()
	flags := []*entity.FeatureFlag{
		flag("first", true, entity.StrategyBoolean, entity.StrategyDetails{}),
		flag("second", false, entity.StrategyBoolean, entity.StrategyDetails{}),
		flag("third", true, entity.StrategyBoolean, entity.StrategyDetails{}),
	}

	results := evaluator.Evaluate(flags, "")
	assert.Equal(t, "first", results[0].Name)
	assert.Equal(t, "second", results[1].Name)
	assert.Equal(t, "third", results[2].Name)
}

func TestEvaluateEmptyInput(t *testing.T) {
	evaluator := NewEvaluator()
	results := evaluator.Evaluate(nil, "user-123")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
