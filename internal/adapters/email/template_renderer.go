package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strconv"
	"strings"
	texttemplate "text/template"

	"wemetstudio/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

var templateFuncs = map[string]any{
	"price": func(v float64) string { return "₪" + strconv.FormatFloat(v, 'f', -1, 64) },
	"total": func(price float64, persons int) float64 { return price * float64(persons) },
}

// TemplateRenderer renders the embedded email templates. A template named
// "x" consists of x_subject.txt, x.txt and an optional x.html.
type TemplateRenderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

var _ domain.EmailTemplateRenderer = (*TemplateRenderer)(nil)

// NewTemplateRenderer parses every embedded template once.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	html, err := htmltemplate.New("email").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	text, err := texttemplate.New("email").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &TemplateRenderer{html: html, text: text}, nil
}

// Render executes template name with data.
func (r *TemplateRenderer) Render(name string, data any) (domain.EmailContent, error) {
	subjectTmpl := r.text.Lookup(name + "_subject.txt")
	textTmpl := r.text.Lookup(name + ".txt")
	if subjectTmpl == nil || textTmpl == nil {
		return domain.EmailContent{}, fmt.Errorf("%w: email template %q", domain.ErrNotFound, name)
	}

	var content domain.EmailContent
	var buf bytes.Buffer
	if err := subjectTmpl.Execute(&buf, data); err != nil {
		return domain.EmailContent{}, fmt.Errorf("render %s subject: %w", name, err)
	}
	// Header values must stay on one line.
	content.Subject = strings.Join(strings.Fields(buf.String()), " ")

	buf.Reset()
	if err := textTmpl.Execute(&buf, data); err != nil {
		return domain.EmailContent{}, fmt.Errorf("render %s text: %w", name, err)
	}
	content.Text = buf.String()

	if htmlTmpl := r.html.Lookup(name + ".html"); htmlTmpl != nil {
		buf.Reset()
		if err := htmlTmpl.Execute(&buf, data); err != nil {
			return domain.EmailContent{}, fmt.Errorf("render %s html: %w", name, err)
		}
		content.HTML = buf.String()
	}
	return content, nil
}
