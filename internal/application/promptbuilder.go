package application

import (
	"fmt"
	"strings"

	"github.com/ericfisherdev/prreview/internal/domain/model"
)

// promptInstructions is the fixed instruction block sent with every review
// unit. The response schema is load-bearing: the model client decodes
// exactly this shape.
const promptInstructions = `Your task is to review pull requests. Instructions:
- Provide the response in the following JSON format: {"reviews": [{"lineNumber": <line_number>, "reviewComment": "<review comment>"}]}
- Do not give positive comments or compliments.
- Provide comments and suggestions ONLY if there is something to improve, otherwise "reviews" should be an empty array.
- Write the comment in GitHub Markdown format.
- Use the given pull request title and description only for the overall context; only comment on the code.
- IMPORTANT: NEVER suggest adding comments to the code.`

// BuildPrompt renders the instruction text for one review unit. It embeds
// the file path, the PR title and description, the raw hunk content, and a
// numbered reconstruction of each line change. Output is byte-identical
// for identical inputs.
func BuildPrompt(unit model.ReviewUnit, pr model.PRContext) string {
	var b strings.Builder

	b.WriteString(promptInstructions)
	fmt.Fprintf(&b, "\n\nReview the following code diff in the file %q and take the pull request title and description into account when writing the response.\n", unit.Path)

	fmt.Fprintf(&b, "\nPull request title: %s\n", pr.Title)
	b.WriteString("Pull request description:\n\n---\n")
	b.WriteString(pr.Description)
	b.WriteString("\n---\n")

	b.WriteString("\nGit diff to review:\n\n```diff\n")
	b.WriteString(unit.Hunk.Content)
	b.WriteString("\n")
	for _, line := range unit.Hunk.Lines {
		fmt.Fprintf(&b, "%d %s\n", lineNumberFor(line), line.Content)
	}
	b.WriteString("```\n")

	return b.String()
}

// lineNumberFor picks the number shown in the reconstruction: the new-side
// number when the line exists in the new file, otherwise the old-side one.
func lineNumberFor(line model.LineChange) int {
	if line.NewLine > 0 {
		return line.NewLine
	}
	return line.OldLine
}
