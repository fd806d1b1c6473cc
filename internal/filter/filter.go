// Package filter decides whether a parsed record should be displayed.
package filter

import (
	"strings"

	"github.com/tinytelemetry/prettylogs/internal/model"
)

// Options holds the configured criteria. The zero value lets everything through.
type Options struct {
	MinLevel *int
	Category string
}

// Matcher applies Options to records. Build it once per run with NewMatcher
// so the category expression is only tokenized once.
type Matcher struct {
	minLevel   *int
	categories CategoryExpr
}

// NewMatcher prepares opts for repeated matching.
func NewMatcher(opts Options) Matcher {
	return Matcher{
		minLevel:   opts.MinLevel,
		categories: ParseCategoryExpr(opts.Category),
	}
}

// Match reports whether rec passes both the level and the category filter.
func (m Matcher) Match(rec *model.Record) bool {
	return Level(rec, m.minLevel) && m.categories.Match(rec.Category)
}

// Level passes when min is nil or the record level is at least min.
// Records without a level fail any threshold.
func Level(rec *model.Record, min *int) bool {
	if min == nil {
		return true
	}
	if rec.Level == nil {
		return false
	}
	return *rec.Level >= *min
}

// Category passes rec against a comma-separated category expression.
func Category(rec *model.Record, expr string) bool {
	return ParseCategoryExpr(expr).Match(rec.Category)
}

// CategoryExpr is a tokenized category expression such as "http,api" or "!db".
type CategoryExpr struct {
	set     bool
	include []string
	exclude []string
}

// ParseCategoryExpr splits expr on commas and lowercases every token.
// Tokens starting with "!" are exclusions.
func ParseCategoryExpr(expr string) CategoryExpr {
	if expr == "" {
		return CategoryExpr{}
	}
	e := CategoryExpr{set: true}
	for _, token := range strings.Split(expr, ",") {
		token = strings.ToLower(token)
		if rest, ok := strings.CutPrefix(token, "!"); ok {
			e.exclude = append(e.exclude, rest)
			continue
		}
		e.include = append(e.include, token)
	}
	return e
}

// Match evaluates the expression against a record category. Exclusions win
// over inclusions; an expression made only of exclusions passes everything
// else. An absent or empty category never matches a set expression.
func (e CategoryExpr) Match(category *string) bool {
	if !e.set {
		return true
	}
	if category == nil || *category == "" {
		return false
	}
	target := strings.ToLower(*category)
	if contains(e.exclude, target) {
		return false
	}
	if len(e.include) == 0 {
		return true
	}
	return contains(e.include, target)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
