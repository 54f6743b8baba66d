package application

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/prreview/internal/domain/model"
)

func promptFixture() (model.ReviewUnit, model.PRContext) {
	hunk := model.Hunk{
		Content:  "@@ -1,2 +1,3 @@\n context\n+added",
		NewStart: 1,
		Lines: []model.LineChange{
			{Kind: model.LineContext, OldLine: 1, NewLine: 1, Content: "context"},
			{Kind: model.LineAdded, NewLine: 2, Content: "added"},
			{Kind: model.LineRemoved, OldLine: 2, Content: "dropped"},
		},
	}
	unit := model.NewReviewUnit("src/a.ts", hunk)
	pr := model.PRContext{
		Owner:       "octocat",
		Repo:        "hello-world",
		Number:      7,
		Title:       "Add widget",
		Description: "Adds the widget feature.",
	}
	return unit, pr
}

func TestBuildPrompt_Idempotent(t *testing.T) {
	unit, pr := promptFixture()
	first := BuildPrompt(unit, pr)
	second := BuildPrompt(unit, pr)
	assert.Equal(t, first, second, "identical inputs must yield byte-identical output")
}

func TestBuildPrompt_EmbedsContext(t *testing.T) {
	unit, pr := promptFixture()
	prompt := BuildPrompt(unit, pr)

	assert.Contains(t, prompt, `"src/a.ts"`)
	assert.Contains(t, prompt, "Add widget")
	assert.Contains(t, prompt, "Adds the widget feature.")
	assert.Contains(t, prompt, "@@ -1,2 +1,3 @@")
	assert.Contains(t, prompt, `{"reviews": [{"lineNumber": <line_number>, "reviewComment": "<review comment>"}]}`)
}

func TestBuildPrompt_NumberedReconstruction(t *testing.T) {
	unit, pr := promptFixture()
	prompt := BuildPrompt(unit, pr)

	// New-side number when present, old-side number otherwise.
	assert.Contains(t, prompt, "\n1 context\n")
	assert.Contains(t, prompt, "\n2 added\n")
	assert.Contains(t, prompt, "\n2 dropped\n")
	assert.Equal(t, 1, strings.Count(prompt, "```diff"))
}
