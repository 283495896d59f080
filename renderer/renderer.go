// Package renderer turns ledger reports into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/etnz/securefinance"
)

//go:embed templates/*.md
var templates embed.FS

// RenderStatus renders the account status dashboard.
func RenderStatus(s securefinance.Status) string {
	return renderTemplate("status", "status.md", nil, s)
}

// RenderPayments renders a list of payment attempts, one section each.
func RenderPayments(payments []securefinance.Payment) string {
	partials := map[string]string{
		"payment": "payment.md",
	}
	return renderTemplate("payments", "payments.md", partials, payments)
}

// risk is the data of the risk template.
type risk struct {
	securefinance.Customer
	Category securefinance.RiskCategory
}

// RenderRisk renders the risk analysis of a customer.
func RenderRisk(c securefinance.Customer) string {
	return renderTemplate("risk", "risk.md", nil, risk{Customer: c, Category: securefinance.ClassifyRisk(c.RiskScore)})
}

// RenderDemo renders a full dashboard run.
func RenderDemo(r securefinance.DemoReport) string {
	partials := map[string]string{
		"status":  "status.md",
		"payment": "payment.md",
	}
	return renderTemplate("demo", "demo.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, path.Join("templates", mainFile))
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, path.Join("templates", file))
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		// partials are inlined, their trailing newline belongs to the caller.
		if _, err := tmpl.New(name).Parse(strings.TrimSuffix(string(content), "\n")); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
