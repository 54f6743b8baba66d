package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/prreview/internal/domain/model"
)

func TestAggregateComments_DeterministicOrder(t *testing.T) {
	results := []UnitResult{
		{
			Unit:     model.ReviewUnit{Path: "b.go", Hunk: model.Hunk{NewStart: 5}},
			Comments: []model.Comment{{Path: "b.go", Line: 6, Body: "late file"}},
		},
		{
			Unit:     model.ReviewUnit{Path: "a.go", Hunk: model.Hunk{NewStart: 40}},
			Comments: []model.Comment{{Path: "a.go", Line: 41, Body: "second hunk"}},
		},
		{
			Unit:     model.ReviewUnit{Path: "a.go", Hunk: model.Hunk{NewStart: 10}},
			Comments: []model.Comment{{Path: "a.go", Line: 11, Body: "first hunk"}},
		},
	}

	comments := AggregateComments(results)
	require.Len(t, comments, 3)
	assert.Equal(t, "first hunk", comments[0].Body)
	assert.Equal(t, "second hunk", comments[1].Body)
	assert.Equal(t, "late file", comments[2].Body)

	// Input order must not matter.
	reversed := []UnitResult{results[2], results[1], results[0]}
	assert.Equal(t, comments, AggregateComments(reversed))
}

func TestAggregateComments_OrdersLinesWithinUnit(t *testing.T) {
	results := []UnitResult{
		{
			Unit: model.ReviewUnit{Path: "a.go", Hunk: model.Hunk{NewStart: 10}},
			Comments: []model.Comment{
				{Path: "a.go", Line: 14, Body: "later"},
				{Path: "a.go", Line: 11, Body: "earlier"},
			},
		},
	}

	comments := AggregateComments(results)
	require.Len(t, comments, 2)
	assert.Equal(t, "earlier", comments[0].Body)
	assert.Equal(t, "later", comments[1].Body)
}

func TestAggregateComments_DropsNonPositiveLines(t *testing.T) {
	results := []UnitResult{
		{
			Unit: model.ReviewUnit{Path: "a.go", Hunk: model.Hunk{NewStart: 1}},
			Comments: []model.Comment{
				{Path: "a.go", Line: 0, Body: "zero"},
				{Path: "a.go", Line: -3, Body: "negative"},
				{Path: "a.go", Line: 2, Body: "keep"},
			},
		},
	}

	comments := AggregateComments(results)
	require.Len(t, comments, 1)
	assert.Equal(t, "keep", comments[0].Body)
}

func TestAggregateComments_Empty(t *testing.T) {
	assert.Empty(t, AggregateComments(nil))
	assert.Empty(t, AggregateComments([]UnitResult{{Unit: model.ReviewUnit{Path: "a.go"}}}))
}
