package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tinytelemetry/prettylogs/internal/model"
	"github.com/valyala/fastjson"
)

// HTTPTrigger is the message pino-http emits once a response is sent.
const HTTPTrigger = "request completed"

var errRendering = errors.New("rendering failure")

// HTTPMessage summarizes a "request completed" record as
// "<status> <method> <url> <time> ms - <length> bytes". Records that are not
// request completions, or whose req/res have an unexpected shape, keep their
// original message.
func HTTPMessage(rec *model.Record, s Styler) string {
	if rec.Message == nil {
		return ""
	}
	msg := *rec.Message
	if msg != HTTPTrigger {
		return msg
	}
	req := rec.ExtraValue(model.KeyRequest)
	res := rec.ExtraValue(model.KeyResponse)
	if !present(req) || !present(res) {
		return msg
	}
	summary, err := httpSummary(req, res, rec.ExtraValue(model.KeyResponseTime), s)
	if err != nil || summary == "" {
		return msg
	}
	return summary
}

func httpSummary(req, res, responseTime *fastjson.Value, s Styler) (string, error) {
	reqObj, err := req.Object()
	if err != nil {
		return "", fmt.Errorf("%w: req: %v", errRendering, err)
	}
	resObj, err := res.Object()
	if err != nil {
		return "", fmt.Errorf("%w: res: %v", errRendering, err)
	}

	var parts []string
	if code := resObj.Get("statusCode"); present(code) {
		n, err := code.Float64()
		if err != nil {
			return "", fmt.Errorf("%w: statusCode: %v", errRendering, err)
		}
		parts = append(parts, s.Render(statusRole(n), strconv.FormatFloat(n, 'f', -1, 64)))
	}
	if method := reqObj.Get("method"); present(method) {
		parts = append(parts, model.Text(method))
	}
	if url := reqObj.Get("url"); present(url) {
		parts = append(parts, model.Text(url))
	}
	if present(responseTime) {
		ms, err := responseTime.Float64()
		if err != nil {
			return "", fmt.Errorf("%w: responseTime: %v", errRendering, err)
		}
		parts = append(parts, strconv.FormatFloat(ms, 'f', -1, 64)+" ms")
	}
	if headers := resObj.Get("headers"); present(headers) {
		h, err := headers.Object()
		if err != nil {
			return "", fmt.Errorf("%w: headers: %v", errRendering, err)
		}
		if length := h.Get("content-length"); present(length) {
			parts = append(parts, "-", model.Text(length)+" bytes")
		}
	}
	return strings.Join(parts, " "), nil
}

func statusRole(code float64) Role {
	switch {
	case code >= 500:
		return RoleStatus5xx
	case code >= 400:
		return RoleStatus4xx
	case code >= 300:
		return RoleStatus3xx
	case code >= 200:
		return RoleStatus2xx
	default:
		return -1
	}
}

// requestID returns req.id when req is an object carrying one.
func requestID(rec *model.Record) (string, bool) {
	req := rec.ExtraValue(model.KeyRequest)
	if req == nil || req.Type() != fastjson.TypeObject {
		return "", false
	}
	id := req.Get("id")
	if !present(id) {
		return "", false
	}
	return model.Text(id), true
}

func present(v *fastjson.Value) bool {
	return v != nil && v.Type() != fastjson.TypeNull
}
