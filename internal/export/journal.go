package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"sort"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/julianstephens/habitual/internal/models"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Linkify,
		extension.Strikethrough,
		extension.TaskList,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

var journalPage = template.Must(template.New("journal").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, sans-serif; max-width: 46rem; margin: 2rem auto; color: #222; }
section { border-bottom: 1px solid #ddd; padding-bottom: 1rem; }
time { color: #888; font-size: .9rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Entries}}<section>
<time datetime="{{.Date}}">{{.Date}}</time>
{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{.Body}}
</section>
{{else}}<p>No journal entries.</p>
{{end}}</body>
</html>
`))

type journalEntry struct {
	Date    string
	Heading string
	Body    template.HTML
}

// JournalHTML renders notes as a standalone HTML page, newest first. Note
// bodies are Markdown. Raw HTML inside a body is not passed through.
func JournalHTML(w io.Writer, title string, notes []models.Note) error {
	sorted := make([]models.Note, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	entries := make([]journalEntry, 0, len(sorted))
	for _, n := range sorted {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(n.Body), &buf); err != nil {
			return fmt.Errorf("rendering note %s: %w", n.ID, err)
		}
		entries = append(entries, journalEntry{
			Date:    n.Date,
			Heading: n.Heading,
			Body:    template.HTML(buf.String()),
		})
	}

	return journalPage.Execute(w, struct {
		Title   string
		Entries []journalEntry
	}{title, entries})
}
