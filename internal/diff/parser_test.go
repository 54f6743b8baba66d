package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/prreview/internal/domain/model"
)

const sampleDiff = `diff --git a/src/a.ts b/src/a.ts
index 1111111..2222222 100644
--- a/src/a.ts
+++ b/src/a.ts
@@ -8,6 +8,7 @@ function main() {
 ctx8
 ctx9
-removed10
+added10
+added11
 ctx12
 ctx13
 ctx14
@@ -20,3 +21,4 @@ function helper() {
 ctx21
+added22
 ctx23
 ctx24
diff --git a/gone.go b/gone.go
deleted file mode 100644
--- a/gone.go
+++ /dev/null
@@ -1,2 +0,0 @@
-line1
-line2
`

func TestParse_FilesAndHunks(t *testing.T) {
	files := Parse(sampleDiff)
	require.Len(t, files, 2)

	assert.Equal(t, "src/a.ts", files[0].Path)
	assert.False(t, files[0].IsDeleted())
	require.Len(t, files[0].Hunks, 2)

	assert.Equal(t, "", files[1].Path)
	assert.True(t, files[1].IsDeleted())
	require.Len(t, files[1].Hunks, 1)
}

func TestParse_LineNumbering(t *testing.T) {
	files := Parse(sampleDiff)
	require.Len(t, files, 2)

	hunk := files[0].Hunks[0]
	assert.Equal(t, 8, hunk.OldStart)
	assert.Equal(t, 6, hunk.OldCount)
	assert.Equal(t, 8, hunk.NewStart)
	assert.Equal(t, 7, hunk.NewCount)
	require.Len(t, hunk.Lines, 8)

	want := []model.LineChange{
		{Kind: model.LineContext, OldLine: 8, NewLine: 8, Content: "ctx8"},
		{Kind: model.LineContext, OldLine: 9, NewLine: 9, Content: "ctx9"},
		{Kind: model.LineRemoved, OldLine: 10, Content: "removed10"},
		{Kind: model.LineAdded, NewLine: 10, Content: "added10"},
		{Kind: model.LineAdded, NewLine: 11, Content: "added11"},
		{Kind: model.LineContext, OldLine: 11, NewLine: 12, Content: "ctx12"},
		{Kind: model.LineContext, OldLine: 12, NewLine: 13, Content: "ctx13"},
		{Kind: model.LineContext, OldLine: 13, NewLine: 14, Content: "ctx14"},
	}
	assert.Equal(t, want, hunk.Lines)

	second := files[0].Hunks[1]
	assert.Equal(t, 21, second.NewStart)
	require.Len(t, second.Lines, 4)
	assert.Equal(t, model.LineAdded, second.Lines[1].Kind)
	assert.Equal(t, 22, second.Lines[1].NewLine)
}

func TestParse_TargetLines(t *testing.T) {
	files := Parse(sampleDiff)
	require.Len(t, files, 2)

	targets := files[0].Hunks[0].TargetLines()
	for line := 8; line <= 14; line++ {
		assert.Contains(t, targets, line, "new-side line %d", line)
	}
	assert.Len(t, targets, 7, "removed-only lines must not be targets")
}

func TestParse_HunkContentPreserved(t *testing.T) {
	files := Parse(sampleDiff)
	require.Len(t, files, 2)

	content := files[0].Hunks[1].Content
	assert.Contains(t, content, "@@ -20,3 +21,4 @@")
	assert.Contains(t, content, "+added22")
	assert.Contains(t, content, " ctx24")
}

func TestParse_EmptyInput(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("\n"))
}

func TestParse_NoNewlineMarker(t *testing.T) {
	text := `--- a/f.txt
+++ b/f.txt
@@ -1 +1 @@
-old
+new
\ No newline at end of file
`
	files := Parse(text)
	require.Len(t, files, 1)
	require.Len(t, files[0].Hunks, 1)
	require.Len(t, files[0].Hunks[0].Lines, 2)
	assert.Equal(t, 1, files[0].Hunks[0].Lines[1].NewLine)
}

func TestParse_BodyLinesCollidingWithFileHeaders(t *testing.T) {
	// "-" + "-- drop" and "+" + "++ add" produce body lines that look like
	// "---"/"+++" file headers. They must stay inside the hunk.
	text := `diff --git a/q.sql b/q.sql
--- a/q.sql
+++ b/q.sql
@@ -1,2 +1,2 @@
 SELECT 1;
--- drop
+++ add
diff --git a/other.go b/other.go
--- a/other.go
+++ b/other.go
@@ -1 +1,2 @@
 package other
+var x = 1
`
	files := Parse(text)
	require.Len(t, files, 2)

	assert.Equal(t, "q.sql", files[0].Path)
	require.Len(t, files[0].Hunks, 1)

	want := []model.LineChange{
		{Kind: model.LineContext, OldLine: 1, NewLine: 1, Content: "SELECT 1;"},
		{Kind: model.LineRemoved, OldLine: 2, Content: "-- drop"},
		{Kind: model.LineAdded, NewLine: 2, Content: "++ add"},
	}
	assert.Equal(t, want, files[0].Hunks[0].Lines)

	// The next file still parses normally after the colliding hunk.
	assert.Equal(t, "other.go", files[1].Path)
	require.Len(t, files[1].Hunks, 1)
	assert.Len(t, files[1].Hunks[0].Lines, 2)
}

func TestParse_PlainDiffWithoutGitHeader(t *testing.T) {
	text := `--- a/f.go
+++ b/f.go
@@ -1,2 +1,3 @@
 package main
+// hi
 func main() {}
`
	files := Parse(text)
	require.Len(t, files, 1)
	assert.Equal(t, "f.go", files[0].Path)
	require.Len(t, files[0].Hunks, 1)
	assert.Len(t, files[0].Hunks[0].Lines, 3)
}
