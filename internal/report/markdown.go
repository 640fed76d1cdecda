package report

import (
	"io"
	"text/template"
)

var markdownTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`# {{.Title}}

Answered {{.Answered}} of {{.Total}} questions{{if .Duration}} in {{.Duration}}{{end}}.
{{- if .SessionID}}
Session ` + "`{{.SessionID}}`" + `.
{{- end}}

## {{.Guidance.Title}}

{{.Guidance.Description}}

| Score | Value | Assessment |
|-------|------:|------------|
| {{.Overall.Label}} | {{.Overall.Value}} | {{.TierLabel}} |
| {{.Technical.Label}} | {{.Technical.Value}} | {{.Technical.Note}} |
| {{.Psycho.Label}} | {{.Psycho.Value}} | {{.Psycho.Note}} |

## WISCAR dimensions

| Dimension | Score |
|-----------|------:|
{{range .Dimensions}}| {{.Label}} | {{.Value}} |
{{end}}
## Career role fit

| Role | Fit | Description |
|------|-----|-------------|
{{range .Roles}}| {{.Title}} | {{.Fit}} | {{.Description}} |
{{end}}
## Next steps

{{range $i, $s := .Guidance.NextSteps}}{{inc $i}}. {{$s}}
{{end}}`))

func renderMarkdown(w io.Writer, v view) error {
	return markdownTemplate.Execute(w, v)
}
