// Package renderer turns import results into markdown for the terminal.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/snapimport"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// funcs are available to every template.
var funcs = template.FuncMap{
	// cell escapes a value for a markdown table cell.
	"cell": func(s string) string {
		if s == "" {
			return "-"
		}
		return strings.ReplaceAll(s, "|", `\|`)
	},
	"inc": func(i int) int { return i + 1 },
}

// RowsMarkdown renders imported rows as a table.
func RowsMarkdown(title string, rows []snapimport.Row) string {
	return renderTemplate("rows", "rows.md", map[string]string{"row_line": "row_line.md"}, struct {
		Title string
		Rows  []snapimport.Row
	}{title, rows})
}

// DeltasMarkdown renders the unit changes of an account.
func DeltasMarkdown(account int64, deltas []snapimport.Delta) string {
	return renderTemplate("deltas", "deltas.md", nil, struct {
		Account int64
		Deltas  []snapimport.Delta
	}{account, deltas})
}

// EditMarkdown renders the outcome of an edit, and its candidates if the edit
// is ambiguous.
func EditMarkdown(old snapimport.Row, o snapimport.EditOutcome) string {
	return renderTemplate("edit", "edit.md", nil, struct {
		Old snapimport.Row
		snapimport.EditOutcome
	}{old, o})
}

// ErrorsMarkdown renders the messages of a failed import.
func ErrorsMarkdown(file string, messages []string) string {
	return renderTemplate("errors", "errors.md", nil, struct {
		File     string
		Messages []string
	}{file, messages})
}

// renderTemplate executes mainFile with data, partials being the named sub
// templates it uses.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
