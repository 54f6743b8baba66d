package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ericfisherdev/prreview/internal/domain/model"
)

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
}

// renderMarkdown converts a markdown comment body to sanitized HTML.
func renderMarkdown(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}

	return htmlSanitizer.Sanitize(buf.String())
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Review comment history</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; vertical-align: top; }
th { background: #f0f0f0; }
td.body { max-width: 40rem; }
</style>
</head>
<body>
<h1>Review comment history</h1>
<table>
<tr><th>Repo</th><th>PR</th><th>File</th><th>Line</th><th>Comment</th><th>Model</th><th>Posted</th></tr>
{{range .}}<tr>
<td>{{.Repo}}</td>
<td>#{{.PRNumber}}</td>
<td>{{.Path}}</td>
<td>{{.Line}}</td>
<td class="body">{{.BodyHTML}}</td>
<td>{{.Model}}</td>
<td>{{.PostedAt}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

type reportRow struct {
	Repo     string
	PRNumber int
	Path     string
	Line     int
	BodyHTML template.HTML
	Model    string
	PostedAt string
}

// WriteHTML renders a static HTML report. Comment bodies are rendered as
// GitHub-flavored markdown and sanitized before embedding.
func WriteHTML(w io.Writer, comments []model.PostedComment) error {
	rows := make([]reportRow, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, reportRow{
			Repo:     c.Repo,
			PRNumber: c.PRNumber,
			Path:     c.Path,
			Line:     c.Line,
			BodyHTML: template.HTML(renderMarkdown(c.Body)),
			Model:    c.Model,
			PostedAt: c.PostedAt.UTC().Format(time.RFC3339),
		})
	}

	if err := reportTemplate.Execute(w, rows); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	return nil
}
