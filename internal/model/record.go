package model

import "github.com/valyala/fastjson"

// SchemaVersion is the only value of the "v" field the prettifier understands.
const SchemaVersion = 1

// Wire keys of the recognized fields.
const (
	KeyVersion    = "v"
	KeyLevel      = "level"
	KeyMessage    = "msg"
	KeyTimestamp  = "time"
	KeyLoggerName = "name"
	KeyCategory   = "category"
	KeyInstance   = "instance"
	KeyCommitID   = "commit"
	KeyMeta       = "meta"
)

// Keys read by the HTTP summary. They are not recognized fields and
// therefore also show up in the extra fields.
const (
	KeyRequest      = "req"
	KeyResponse     = "res"
	KeyResponseTime = "responseTime"
)

var recognizedKeys = map[string]struct{}{
	KeyVersion:    {},
	KeyLevel:      {},
	KeyMessage:    {},
	KeyTimestamp:  {},
	KeyLoggerName: {},
	KeyCategory:   {},
	KeyInstance:   {},
	KeyCommitID:   {},
	KeyMeta:       {},
}

// IsRecognized reports whether key is one of the fields rendered in the header.
func IsRecognized(key string) bool {
	_, ok := recognizedKeys[key]
	return ok
}

// Record is one decoded log line. Optional fields are nil when the key was
// absent (or null) in the input.
type Record struct {
	Version    int
	Level      *int
	Message    *string
	Timestamp  *int64 // epoch milliseconds
	LoggerName *string
	Category   *string
	Instance   *string
	CommitID   *string
	Meta       *fastjson.Value

	// Extra holds every non-recognized key in source order.
	Extra []Field
}

// Field is one key/value pair of the extra fields. Value is any JSON value.
type Field struct {
	Key   string
	Value *fastjson.Value
}

// ExtraValue returns the extra field named key, or nil.
func (r *Record) ExtraValue(key string) *fastjson.Value {
	if r == nil {
		return nil
	}
	for _, f := range r.Extra {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}

// Text renders a JSON value for display: strings without quotes, everything
// else as compact JSON. A nil value yields "".
func Text(v *fastjson.Value) string {
	if v == nil {
		return ""
	}
	if v.Type() == fastjson.TypeString {
		return string(v.GetStringBytes())
	}
	return v.String()
}
