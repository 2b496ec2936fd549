package datesort

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	blackfriday "github.com/russross/blackfriday/v2"
)

type ReportContext struct {
	Title     string
	Layout    string
	Generated time.Time
	Dates     []CalendarDate
	Table     template.HTML
}

const reportHTML = `<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
<p>{{len .Dates}} dates, generated {{.Generated.Format "2006-01-02 15:04:05"}}</p>
{{.Table}}
<pre>{{range .Dates}}{{date $.Layout .}} {{upper (date "Mon" .)}} day {{epochDay .}}{{if not (rmonth .)}} *{{end}}
{{end}}</pre>
</body>
</html>
`

var reportTemplate = template.Must(template.New("report").Funcs(funcMap).Parse(reportHTML))

func NewReportContext(title, layout string, sorted []CalendarDate) *ReportContext {
	if layout == "" {
		layout = DefaultLayout
	}

	return &ReportContext{
		Title:     title,
		Layout:    layout,
		Generated: time.Now(),
		Dates:     sorted,
		Table:     template.HTML(blackfriday.Run([]byte(markdownTable(layout, sorted)))),
	}
}

func markdownTable(layout string, dates []CalendarDate) string {
	var md strings.Builder
	md.WriteString("| # | Date | Month | Group |\n")
	md.WriteString("|---|------|-------|-------|\n")
	for i, d := range dates {
		group := "r-month, ascending"
		if !d.MonthHasLetterR() {
			group = "no r, descending"
		}
		fmt.Fprintf(&md, "| %d | %s | %s | %s |\n", i+1, d.Format(layout), d.Month, group)
	}
	return md.String()
}

func (rc *ReportContext) Render(w io.Writer) error {
	return reportTemplate.Execute(w, rc)
}
