package render

import (
	"math"

	"github.com/tinytelemetry/prettylogs/internal/logparse"
	"github.com/tinytelemetry/prettylogs/internal/model"
)

// LabelWidth is the unstyled width of every level label.
const LabelWidth = 5

var levelLabels = map[string]struct {
	role  Role
	label string
}{
	"TRACE": {RoleTrace, "trace"},
	"DEBUG": {RoleDebug, "debug"},
	"INFO":  {RoleInfo, "info "},
	"WARN":  {RoleWarn, "WARN "},
	"ERROR": {RoleError, "ERROR"},
	"FATAL": {RoleFatal, "FATAL"},
}

// PrettifyLevel maps a numeric level to a fixed-width label. Values below
// trace render as trace and values above error render as FATAL.
func PrettifyLevel(level int, s Styler) string {
	l := levelLabels[logparse.PinoLevelToString(level)]
	return s.Render(l.role, l.label)
}

// levelOf treats a missing level as the lowest possible level.
func levelOf(rec *model.Record) int {
	if rec.Level == nil {
		return math.MinInt
	}
	return *rec.Level
}
