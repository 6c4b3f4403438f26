// Package valuation estimates case value from the collected answers. The
// navigation core treats the engine as an opaque collaborator; this built-in
// implementation is a deterministic factor model good enough to exercise the
// pipeline.
package valuation

import (
	"context"
	"fmt"

	"caseflow/internal/wizard/model"
	dErrors "caseflow/pkg/domain-errors"
)

// Engine computes an estimate for a case, its answers and jurisdiction.
type Engine interface {
	Estimate(ctx context.Context, caseID string, answers model.Answers, jurisdiction string) (model.Valuation, error)
}

// FactorEngine is the default engine: a base value per case type adjusted by
// multiplicative factors derived from the answers.
type FactorEngine struct {
	baseValues map[string]float64
}

// NewFactorEngine returns the default engine configuration.
func NewFactorEngine() *FactorEngine {
	return &FactorEngine{
		baseValues: map[string]float64{
			"motor":      18000,
			"medical":    65000,
			"employment": 24000,
		},
	}
}

// Estimate computes the valuation. Unknown case types are an error; unknown
// sentinel answers reduce confidence and widen the range.
func (e *FactorEngine) Estimate(ctx context.Context, caseID string, answers model.Answers, jurisdiction string) (model.Valuation, error) {
	if err := ctx.Err(); err != nil {
		return model.Valuation{}, err
	}

	base, ok := e.baseValues[caseID]
	if !ok {
		return model.Valuation{}, dErrors.Newf(dErrors.CodeInvalidInput, "no valuation model for case %q", caseID)
	}

	value := base
	var factors []string
	var warnings []string

	for questionID, answer := range answers {
		if answers.IsUnknown(questionID) {
			continue
		}
		if mult, label, ok := factorFor(questionID, answer); ok {
			value *= mult
			factors = append(factors, label)
		}
	}

	spread := 0.25
	if unknowns := answers.CountUnknown(); unknowns > 0 {
		spread += 0.10 * float64(unknowns)
		warnings = append(warnings, fmt.Sprintf("%d answers were left as unknown; the range is wider", unknowns))
	}
	if jurisdiction == "" {
		warnings = append(warnings, "no jurisdiction selected; statewide averages applied")
	}

	return model.Valuation{
		Value:     value,
		LowRange:  value * (1 - spread),
		HighRange: value * (1 + spread),
		Factors:   factors,
		Warnings:  warnings,
	}, nil
}

// factorFor maps a concrete answer onto its multiplier. Answers without a
// model contribute nothing.
func factorFor(questionID string, answer any) (float64, string, bool) {
	switch questionID {
	case "at_fault":
		if answer == true || answer == "true" {
			return 0.5, "shared fault reduces recovery", true
		}
	case "injured", "permanent_harm":
		if answer == true || answer == "true" {
			return 1.8, "documented injury increases damages", true
		}
	case "vehicle_totaled":
		if answer == true || answer == "true" {
			return 1.2, "total vehicle loss adds property damages", true
		}
	case "weeks_off_work":
		if weeks, ok := toFloat(answer); ok && weeks > 4 {
			return 1.4, "extended time off work adds lost wages", true
		}
	case "still_employed":
		if answer == false || answer == "false" {
			return 1.3, "job loss adds front pay exposure", true
		}
	}
	return 0, "", false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
