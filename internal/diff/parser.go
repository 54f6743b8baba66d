// Package diff parses unified diff text into the domain model's structured
// form. The parser is deliberately lenient: header lines it does not
// recognize are skipped, and only lines inside a hunk contribute changes.
package diff

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ericfisherdev/prreview/internal/domain/model"
)

// hunkHeaderPattern matches "@@ -oldStart[,oldCount] +newStart[,newCount] @@".
var hunkHeaderPattern = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

type parser struct {
	files   []model.DiffFile
	file    *model.DiffFile
	hunk    *model.Hunk
	oldLine int
	newLine int
	oldRem  int // Old-side lines the hunk header still owes.
	newRem  int // New-side lines the hunk header still owes.
}

// Parse converts unified diff text into a sequence of DiffFiles. Empty
// input yields an empty slice: a PR without a diff is a clean no-op
// upstream, not a parse failure.
func Parse(text string) []model.DiffFile {
	p := &parser{}

	for _, line := range strings.Split(text, "\n") {
		// While the current hunk still owes lines, everything belongs to its
		// body. A removed "-- drop" or added "++ add" line would otherwise
		// collide with the "---"/"+++" file headers.
		if p.hunk != nil && (p.oldRem > 0 || p.newRem > 0) {
			p.hunkLine(line)
			continue
		}

		switch {
		case strings.HasPrefix(line, "diff --git "):
			p.flushFile()
			p.file = &model.DiffFile{}
		case strings.HasPrefix(line, "--- "):
			if p.file == nil {
				// Plain unified diff without git headers.
				p.file = &model.DiffFile{}
			}
			p.flushHunk()
		case strings.HasPrefix(line, "+++ "):
			if p.file != nil {
				p.file.Path = targetPath(line)
			}
		case strings.HasPrefix(line, "@@"):
			p.startHunk(line)
		default:
			p.hunkLine(line)
		}
	}

	p.flushFile()

	if p.files == nil {
		return []model.DiffFile{}
	}
	return p.files
}

// targetPath extracts the new-side path from a "+++ " header line.
// "/dev/null" maps to the empty-path deletion sentinel.
func targetPath(line string) string {
	path := strings.TrimPrefix(line, "+++ ")
	if i := strings.IndexByte(path, '\t'); i >= 0 {
		path = path[:i]
	}
	if path == "/dev/null" {
		return ""
	}
	path = strings.TrimPrefix(path, "b/")
	return path
}

func (p *parser) startHunk(line string) {
	m := hunkHeaderPattern.FindStringSubmatch(line)
	if m == nil || p.file == nil {
		return
	}
	p.flushHunk()

	oldStart, _ := strconv.Atoi(m[1])
	oldCount := 1
	if m[2] != "" {
		oldCount, _ = strconv.Atoi(m[2])
	}
	newStart, _ := strconv.Atoi(m[3])
	newCount := 1
	if m[4] != "" {
		newCount, _ = strconv.Atoi(m[4])
	}

	p.hunk = &model.Hunk{
		Content:  line,
		OldStart: oldStart,
		OldCount: oldCount,
		NewStart: newStart,
		NewCount: newCount,
	}
	p.oldLine = oldStart
	p.newLine = newStart
	p.oldRem = oldCount
	p.newRem = newCount
}

// hunkLine classifies one body line of the current hunk and advances the
// old/new line counters. Lines outside a hunk are ignored.
func (p *parser) hunkLine(line string) {
	if p.hunk == nil {
		return
	}
	if p.oldRem <= 0 && p.newRem <= 0 && !strings.HasPrefix(line, `\`) {
		// Hunk is complete; whatever follows belongs to the next section.
		p.flushHunk()
		return
	}

	switch {
	case strings.HasPrefix(line, "+"):
		p.hunk.Lines = append(p.hunk.Lines, model.LineChange{
			Kind:    model.LineAdded,
			NewLine: p.newLine,
			Content: line[1:],
		})
		p.newLine++
		p.newRem--
	case strings.HasPrefix(line, "-"):
		p.hunk.Lines = append(p.hunk.Lines, model.LineChange{
			Kind:    model.LineRemoved,
			OldLine: p.oldLine,
			Content: line[1:],
		})
		p.oldLine++
		p.oldRem--
	case strings.HasPrefix(line, `\`):
		// "\ No newline at end of file" carries no line change.
	case line == "" || strings.HasPrefix(line, " "):
		// Git may emit a completely empty line for blank context lines.
		p.hunk.Lines = append(p.hunk.Lines, model.LineChange{
			Kind:    model.LineContext,
			OldLine: p.oldLine,
			NewLine: p.newLine,
			Content: strings.TrimPrefix(line, " "),
		})
		p.oldLine++
		p.newLine++
		p.oldRem--
		p.newRem--
	default:
		// Anything else ends the hunk (trailing git metadata).
		p.flushHunk()
		return
	}

	p.hunk.Content += "\n" + line
}

func (p *parser) flushHunk() {
	if p.hunk == nil {
		return
	}
	p.file.Hunks = append(p.file.Hunks, *p.hunk)
	p.hunk = nil
}

func (p *parser) flushFile() {
	p.flushHunk()
	if p.file == nil {
		return
	}
	p.files = append(p.files, *p.file)
	p.file = nil
}
