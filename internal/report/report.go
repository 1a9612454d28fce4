// Package report writes a static HTML review page for a set of rows: each row's rendered diff markup, similarity ratio, status, and approvals, plus an
// optional reviewer-notes section supplied as Markdown.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/celldiff/celldiff/internal/review"
	"github.com/celldiff/celldiff/internal/textdiff"
	"github.com/yuin/goldmark"
)

// Options control report generation.
type Options struct {
	Title string
	Notes []byte // optional Markdown, rendered above the table
}

type rowView struct {
	Number    string
	Index     int
	Ratio     string
	Status    string
	Primary   template.HTML
	Secondary template.HTML
	ApprovalA string
	ApprovalB string
	Comment   string
}

type pageView struct {
	Title string
	Notes template.HTML
	Rows  []rowView
}

// Write renders entries as an HTML page on w.
//
// The engine's span markup is embedded as-is: its wrappers carry only the change class and the span identifier, and cell text is not re-escaped, which
// keeps the output identical to what inline callers of the engine see.
func Write(w io.Writer, entries []review.Entry, opts Options) error {
	view := pageView{Title: opts.Title}
	if view.Title == "" {
		view.Title = "celldiff report"
	}

	if len(opts.Notes) > 0 {
		var buf bytes.Buffer
		if err := goldmark.Convert(opts.Notes, &buf); err != nil {
			return fmt.Errorf("render notes: %w", err)
		}
		view.Notes = template.HTML(buf.String())
	}

	for _, e := range entries {
		d := textdiff.Compare(e.Row.Primary, e.Row.Secondary)
		p, s := d.HTML()
		view.Rows = append(view.Rows, rowView{
			Number:    e.Row.Number,
			Index:     e.Index,
			Ratio:     fmt.Sprintf("%.1f", e.Row.Ratio),
			Status:    d.Status.String(),
			Primary:   template.HTML(p),
			Secondary: template.HTML(s),
			ApprovalA: e.Row.Approval(review.SidePrimary).String(),
			ApprovalB: e.Row.Approval(review.SideSecondary).String(),
			Comment:   e.Row.Comment,
		})
	}

	return pageTemplate.Execute(w, view)
}

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.5em; vertical-align: top; text-align: left; }
td.num { white-space: nowrap; }
span.removed { background: #ffd7d7; text-decoration: line-through; }
span.added { background: #d7ffd7; }
.approval-green { color: #090; }
.approval-yellow { color: #a90; }
.approval-red { color: #c00; }
td.comment { font-style: italic; color: #555; }
.notes { border-left: 4px solid #ccc; padding-left: 1em; margin-bottom: 2em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}
<table>
<tr><th>#</th><th>Primary</th><th>Secondary</th><th>Change</th><th>Status</th><th>A</th><th>B</th><th>Comment</th></tr>
{{range .Rows}}<tr>
<td class="num">{{if .Number}}{{.Number}}{{else}}{{.Index}}{{end}}</td>
<td>{{.Primary}}</td>
<td>{{.Secondary}}</td>
<td class="num">{{.Ratio}}</td>
<td class="num">{{.Status}}</td>
<td class="num approval-{{.ApprovalA}}">{{.ApprovalA}}</td>
<td class="num approval-{{.ApprovalB}}">{{.ApprovalB}}</td>
<td class="comment">{{.Comment}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))
