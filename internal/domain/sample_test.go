package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleScenarioIsValid(t *testing.T) {
	s := SampleScenario()
	require.NoError(t, s.Validate())

	assert.Equal(t, "sample-base", s.Meta.ID)
	assert.Equal(t, 36, s.Timeframe.Months)
	assert.Len(t, s.Revenue.Plans, 1)
	assert.Len(t, s.Headcount.Positions, 5)
	// Normalized at construction.
	assert.Equal(t, ScenarioBase, s.Meta.ScenarioType)
	assert.Len(t, s.Revenue.Plans[0].SeasonalPattern.Values, 12)
}
