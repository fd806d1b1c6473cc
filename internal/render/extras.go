package render

import (
	"bytes"
	"encoding/json"

	"github.com/tinytelemetry/prettylogs/internal/model"
	"github.com/valyala/fastjson"
)

// ExtraFields returns the record fields outside the recognized set, in
// source order. The result is empty, never nil, when there are none.
func ExtraFields(rec *model.Record) []model.Field {
	out := make([]model.Field, len(rec.Extra))
	copy(out, rec.Extra)
	return out
}

// compactJSON serializes fields as a single-line JSON object.
func compactJSON(fields []model.Field) []byte {
	var a fastjson.Arena
	obj := a.NewObject()
	for _, f := range fields {
		obj.Set(f.Key, f.Value)
	}
	return obj.MarshalTo(nil)
}

// indentJSON serializes fields as a JSON object indented by two spaces.
func indentJSON(fields []model.Field) []byte {
	compact := compactJSON(fields)
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return compact
	}
	return buf.Bytes()
}
