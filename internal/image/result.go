package imagepkg

import (
	"log/slog"
	"strings"

	"github.com/youruser/lifestyleapp/internal/section"
)

// WarningKind says which part of the composition degraded.
type WarningKind string

const (
	WarnFont  WarningKind = "font"
	WarnImage WarningKind = "image"
	WarnIcon  WarningKind = "icon"
	WarnQR    WarningKind = "qr"
)

// Warning records one soft failure. Position is empty for canvas-wide parts.
type Warning struct {
	Kind     WarningKind
	Position string
	Err      error
}

func (w Warning) String() string {
	s := string(w.Kind)
	if w.Position != "" {
		s += " " + w.Position
	}
	return s + ": " + w.Err.Error()
}

// Result describes a finished composition.
type Result struct {
	Path     string
	Lines    []string // wrapped title
	Warnings []Warning
}

// Degraded reports whether any part fell back.
func (r *Result) Degraded() bool { return len(r.Warnings) > 0 }

// Report is a plain-text summary for console output.
func (r *Result) Report() string {
	lines := []string{}
	if r.Path != "" {
		lines = append(lines, "Image saved as "+r.Path)
	}
	for _, w := range r.Warnings {
		lines = append(lines, "warning: "+w.String())
	}
	return strings.Join(lines, "\n")
}

func (r *Result) warn(log *slog.Logger, kind WarningKind, pos *section.Position, err error, attrs ...any) {
	w := Warning{Kind: kind, Err: err}
	if pos != nil {
		w.Position = pos.String()
		attrs = append(attrs, slog.String("position", w.Position))
	}
	r.Warnings = append(r.Warnings, w)
	log.Warn("falling back after "+string(kind)+" failure", append(attrs, slog.Any("error", err))...)
}
