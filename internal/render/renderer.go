// Package render turns parsed log records into display lines.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/tinytelemetry/prettylogs/internal/logparse"
	"github.com/tinytelemetry/prettylogs/internal/model"
	"github.com/tinytelemetry/prettylogs/internal/timestamp"
)

const commitLength = 8

// Options control the layout of rendered records.
type Options struct {
	UTC    bool // timestamps in UTC instead of local time
	Inline bool // extra fields as compact JSON on the header line
	Quiet  bool // never print extra fields
}

// Renderer renders records with a fixed set of options and a Styler.
type Renderer struct {
	opts   Options
	styler Styler
}

// New creates a Renderer. A nil styler renders plain text.
func New(opts Options, styler Styler) *Renderer {
	if styler == nil {
		styler = Plain{}
	}
	return &Renderer{opts: opts, styler: styler}
}

// Render returns the header line, followed by the extra fields when there
// are any and quiet is off. Without inline the extra fields form an indented
// JSON block on the following lines.
func (r *Renderer) Render(rec *model.Record) string {
	header := r.Header(rec)
	if r.opts.Quiet {
		return header
	}
	extra := ExtraFields(rec)
	if len(extra) == 0 {
		return header
	}
	if r.opts.Inline {
		return header + " " + string(compactJSON(extra))
	}
	return header + "\n" + string(indentJSON(extra))
}

// Header assembles the single header line of rec. Absent elements are left
// out; present ones are joined by a single space.
func (r *Renderer) Header(rec *model.Record) string {
	dim := func(text string) string { return r.styler.Render(RoleDim, text) }

	var parts segments
	if rec.Timestamp != nil {
		parts.add(dim(timestamp.Format(*rec.Timestamp, r.opts.UTC)))
	}
	if rec.Instance != nil {
		parts.add(*rec.Instance)
	}
	if rec.CommitID != nil && *rec.CommitID != "" {
		parts.add(dim(truncate(*rec.CommitID, commitLength)))
	}
	parts.add(PrettifyLevel(levelOf(rec), r.styler))
	if rec.Category != nil && *rec.Category != "" {
		parts.add(dim(padRight(*rec.Category, LabelWidth)))
	}
	if id, ok := requestID(rec); ok {
		parts.add(id)
	}
	parts.add(r.body(rec))
	if rec.Meta != nil {
		parts.add(dim(rec.Meta.String()))
	}
	return parts.String()
}

// body de-emphasizes trace and debug messages; higher levels go through the
// HTTP summary.
func (r *Renderer) body(rec *model.Record) string {
	if levelOf(rec) <= logparse.LevelDebug {
		if rec.Message == nil || *rec.Message == "" {
			return ""
		}
		return r.styler.Render(RoleDim, *rec.Message)
	}
	return HTTPMessage(rec, r.styler)
}

// segments collects header elements, skipping empty ones.
type segments []string

func (s *segments) add(text string) {
	if text == "" {
		return
	}
	*s = append(*s, text)
}

func (s segments) String() string {
	return strings.Join(s, " ")
}

func truncate(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	return string([]rune(value)[:limit])
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
