package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// ProjectionRenderOptions holds configuration for rendering a projection report.
type ProjectionRenderOptions struct {
	SkipRows bool // Do not render the month-by-month table.
}

// RenderProjection renders the Projection struct to a markdown string.
func RenderProjection(p *Projection, opts ProjectionRenderOptions) string {
	// Declare template dependencies: which partials are needed and how they
	// are aliased in the main template.
	partials := map[string]string{
		"projection_title": "projection_title.md",
	}

	// Skip the monthly table if requested. An empty file name results in an
	// empty template.
	if opts.SkipRows {
		partials["projection_rows"] = ""
	} else {
		partials["projection_rows"] = "projection_rows.md"
	}

	return renderTemplate("projection", "projection.md", partials, p)
}

// RenderYield renders the Yield struct to a markdown string.
func RenderYield(y *Yield) string {
	return renderTemplate("yield", "yield.md", map[string]string{}, y)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, "templates/"+file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
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
