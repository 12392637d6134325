package form

import (
	"strings"

	"github.com/hanco1/D2Cdashboard/model"
)

// Normalize canonicalizes the shape of a raw answer for a question. It never
// rejects input; enforcing constraints is the validator's job.
func Normalize(q *Question, v model.Value) model.Value {
	if q.Type == model.TypeChoice {
		return normalizeChoice(q, v)
	}
	return normalizeText(q, v)
}

func normalizeChoice(q *Question, v model.Value) model.Value {
	if q.AllowMultiple {
		if !v.IsList() {
			return model.List()
		}
		return model.List(dedupeList(v.Items())...)
	}

	if v.IsList() {
		return model.String(first(v.Items()))
	}
	return model.String(trimmed(v.Text()))
}

func normalizeText(q *Question, v model.Value) model.Value {
	if v.IsList() {
		return model.String(trimmed(first(v.Items())))
	}

	text := v.Text()
	if q.LongAnswer {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	return model.String(trimmed(text))
}

// dedupeList trims each element, drops empties, and removes duplicates
// preserving first-occurrence order.
func dedupeList(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = trimmed(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func first(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
