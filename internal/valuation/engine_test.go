package valuation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"caseflow/internal/wizard/model"
	dErrors "caseflow/pkg/domain-errors"
)

type EngineSuite struct {
	suite.Suite
	engine *FactorEngine
}

func (s *EngineSuite) SetupTest() {
	s.engine = NewFactorEngine()
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) TestEstimate() {
	ctx := context.Background()

	s.Run("baseline case yields base value and a range around it", func() {
		v, err := s.engine.Estimate(ctx, "motor", model.Answers{}, "California")
		s.Require().NoError(err)
		s.InDelta(18000, v.Value, 0.01)
		s.Less(v.LowRange, v.Value)
		s.Greater(v.HighRange, v.Value)
	})

	s.Run("injury raises the estimate, shared fault lowers it", func() {
		injured, err := s.engine.Estimate(ctx, "motor", model.Answers{"injured": true}, "California")
		s.Require().NoError(err)
		s.Greater(injured.Value, 18000.0)
		s.NotEmpty(injured.Factors)

		atFault, err := s.engine.Estimate(ctx, "motor", model.Answers{"at_fault": true}, "California")
		s.Require().NoError(err)
		s.Less(atFault.Value, 18000.0)
	})

	s.Run("unknown answers widen the range and add a warning", func() {
		answers := model.Answers{"injured": model.AnswerUnknown, "at_fault": model.AnswerUnknown}
		v, err := s.engine.Estimate(ctx, "motor", answers, "California")
		s.Require().NoError(err)
		s.InDelta(18000, v.Value, 0.01, "unknown answers contribute no factors")
		s.NotEmpty(v.Warnings)

		base, err := s.engine.Estimate(ctx, "motor", model.Answers{}, "California")
		s.Require().NoError(err)
		s.Less(v.LowRange, base.LowRange)
	})

	s.Run("empty jurisdiction adds a warning", func() {
		v, err := s.engine.Estimate(ctx, "motor", model.Answers{}, "")
		s.Require().NoError(err)
		s.NotEmpty(v.Warnings)
	})

	s.Run("unknown case type is rejected", func() {
		_, err := s.engine.Estimate(ctx, "maritime", model.Answers{}, "California")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
	})
}
