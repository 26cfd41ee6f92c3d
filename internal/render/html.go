// Package render composes a canonical record into the self-contained HTML
// study sheet handed to the PDF engine.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"englishkaku/internal/notes"
)

// Options select the document's fixed text and optional sections.
type Options struct {
	Banner string
	Footer string

	// SentenceTable enables the example-sentence section when the record
	// carries sentence data. Off reproduces the simpler sheet layout.
	SentenceTable bool

	// TrustedMessage embeds the narrative message as raw markup. The
	// default is contextual escaping; only flip this when the upstream
	// workflow is known to emit safe HTML.
	TrustedMessage bool
}

// DefaultOptions returns the canonical sheet text.
func DefaultOptions() Options {
	return Options{
		Banner:        "AI Powered English Learning Notes from contemporary news",
		Footer:        "Generated by EnglishKaku  AI powered Workflow",
		SentenceTable: true,
	}
}

type Renderer struct {
	opts Options
	tmpl *template.Template
}

func New(opts Options) (*Renderer, error) {
	tmpl, err := template.New("sheet").Funcs(template.FuncMap{
		"join": strings.Join,
		"inc":  func(i int) int { return i + 1 },
	}).Parse(sheetTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse sheet template: %w", err)
	}
	return &Renderer{opts: opts, tmpl: tmpl}, nil
}

type sheetData struct {
	Banner string
	Footer string
	Title  string

	// Time is server-generated (normalizer output or its fixed sentinel),
	// never payload bytes; it bypasses escaping so a zone label like
	// "GMT+6" survives literally.
	Time template.HTML

	Words []notes.Word

	// nil slices suppress their sections entirely
	Sentences []notes.Sentence

	// Message is a plain string (escaped on output) or template.HTML when
	// the narrative was explicitly marked trusted. The type decides the
	// escaping, not the template.
	Message    any
	HasMessage bool
}

// Render produces the complete markup document for one record. The
// vocabulary table is always present, even with an empty record; sentence
// and narrative sections are conditional.
func (r *Renderer) Render(rec notes.Record, displayTime string) (string, error) {
	data := sheetData{
		Banner:     r.opts.Banner,
		Footer:     r.opts.Footer,
		Title:      rec.Title,
		Time:       template.HTML(displayTime),
		Words:      rec.Words,
		HasMessage: rec.Message != "",
		Message:    rec.Message,
	}
	if r.opts.TrustedMessage {
		data.Message = template.HTML(rec.Message)
	}
	if r.opts.SentenceTable {
		data.Sentences = rec.Sentences
	}

	var b strings.Builder
	if err := r.tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("execute sheet template: %w", err)
	}
	return b.String(), nil
}
