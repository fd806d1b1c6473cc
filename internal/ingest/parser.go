package ingest

import (
	"fmt"
	"math"

	"github.com/tinytelemetry/prettylogs/internal/model"
	"github.com/valyala/fastjson"
)

// Parse decodes one NDJSON line into a Record.
//
// Values inside the returned Record reference memory owned by a parser that
// is allocated per call, so records stay valid after Parse returns.
func Parse(line string) (*model.Record, error) {
	var p fastjson.Parser
	v, err := p.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	obj, err := v.Object()
	if err != nil {
		return nil, fmt.Errorf("%w: got %s, want object", ErrMalformedInput, v.Type())
	}

	recognized, extra := splitFields(obj)

	version, ok := numberField(recognized[model.KeyVersion])
	if !ok || version != model.SchemaVersion {
		return nil, fmt.Errorf("%w: missing or unknown %q field", ErrUnsupportedSchema, model.KeyVersion)
	}

	record := &model.Record{Version: model.SchemaVersion, Extra: extra}
	if level, ok := numberField(recognized[model.KeyLevel]); ok {
		// Rounded up so fractional levels land in the next label bucket.
		n := saturateInt(math.Ceil(level))
		record.Level = &n
	}
	if ts, ok := numberField(recognized[model.KeyTimestamp]); ok {
		ms := saturateInt64(ts)
		record.Timestamp = &ms
	}
	record.Message = textField(recognized[model.KeyMessage])
	record.LoggerName = textField(recognized[model.KeyLoggerName])
	record.Category = textField(recognized[model.KeyCategory])
	record.Instance = textField(recognized[model.KeyInstance])
	record.CommitID = textField(recognized[model.KeyCommitID])
	if meta := recognized[model.KeyMeta]; present(meta) {
		record.Meta = meta
	}
	return record, nil
}

// splitFields walks obj once. Recognized keys go to a map, the rest to the
// extra fields in encounter order. A repeated key takes its last value; an
// extra field keeps the position of its first occurrence.
func splitFields(obj *fastjson.Object) (map[string]*fastjson.Value, []model.Field) {
	recognized := make(map[string]*fastjson.Value, obj.Len())
	var extra []model.Field
	index := map[string]int{}
	obj.Visit(func(key []byte, v *fastjson.Value) {
		k := string(key)
		if model.IsRecognized(k) {
			recognized[k] = v
			return
		}
		if i, ok := index[k]; ok {
			extra[i].Value = v
			return
		}
		index[k] = len(extra)
		extra = append(extra, model.Field{Key: k, Value: v})
	})
	return recognized, extra
}

func saturateInt(f float64) int {
	switch {
	case f >= float64(math.MaxInt):
		return math.MaxInt
	case f <= float64(math.MinInt):
		return math.MinInt
	}
	return int(f)
}

func saturateInt64(f float64) int64 {
	switch {
	case f >= float64(math.MaxInt64):
		return math.MaxInt64
	case f <= float64(math.MinInt64):
		return math.MinInt64
	}
	return int64(f)
}

func present(v *fastjson.Value) bool {
	return v != nil && v.Type() != fastjson.TypeNull
}

func numberField(v *fastjson.Value) (float64, bool) {
	if v == nil || v.Type() != fastjson.TypeNumber {
		return 0, false
	}
	f, err := v.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func textField(v *fastjson.Value) *string {
	if !present(v) {
		return nil
	}
	s := model.Text(v)
	return &s
}
