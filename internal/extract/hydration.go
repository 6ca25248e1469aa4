package extract

import (
	"encoding/json"
	"regexp"
	"sort"
)

var (
	nuxtRe          = regexp.MustCompile(`(?s)window\.__NUXT__\s*=\s*(\{.*?\});`)
	trailingComma   = regexp.MustCompile(`,\s*\}`)
	trailingBracket = regexp.MustCompile(`,\s*\]`)
	undefinedValue  = regexp.MustCompile(`:\s*undefined`)
)

// Hydration locates the window.__NUXT__ assignment in markup, repairs the
// almost-JSON it carries and decodes it. The blob is written by a
// serializer, not an encoder, so it can contain `undefined` values and
// trailing commas; both are repaired before giving up. Returns false when
// there is no blob or it stays unparseable after repair.
func Hydration(markup string) (any, bool) {
	m := nuxtRe.FindStringSubmatch(markup)
	if m == nil {
		return nil, false
	}
	return RepairJSON(m[1])
}

// RepairJSON decodes text that is meant to be JSON but may contain
// `undefined` tokens in value position and trailing commas before
// closing braces/brackets.
func RepairJSON(text string) (any, bool) {
	text = undefinedValue.ReplaceAllString(text, ": null")

	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err == nil {
		return doc, true
	}

	text = trailingComma.ReplaceAllString(text, "}")
	text = trailingBracket.ReplaceAllString(text, "]")
	var doc2 any
	if err := json.Unmarshal([]byte(text), &doc2); err == nil {
		return doc2, true
	}
	return nil, false
}

// Predicate decides whether a decoded JSON node is the value a caller is
// looking for. A panic inside a predicate counts as "no match" so one
// malformed node cannot fail a whole traversal.
type Predicate func(node any) bool

// FindFirst walks the decoded document depth first (object values in key
// order, then array elements) and returns the first node matching pred.
// The predicate is applied to every node, interior ones included, before
// descending into it.
func FindFirst(doc any, pred Predicate) (any, bool) {
	if safeMatch(pred, doc) {
		return doc, true
	}
	switch v := doc.(type) {
	case map[string]any:
		for _, k := range sortedKeys(v) {
			if res, ok := FindFirst(v[k], pred); ok {
				return res, true
			}
		}
	case []any:
		for _, el := range v {
			if res, ok := FindFirst(el, pred); ok {
				return res, true
			}
		}
	}
	return nil, false
}

// FindAll collects every node matching pred in traversal order.
func FindAll(doc any, pred Predicate) []any {
	var found []any
	if safeMatch(pred, doc) {
		found = append(found, doc)
	}
	switch v := doc.(type) {
	case map[string]any:
		for _, k := range sortedKeys(v) {
			found = append(found, FindAll(v[k], pred)...)
		}
	case []any:
		for _, el := range v {
			found = append(found, FindAll(el, pred)...)
		}
	}
	return found
}

func safeMatch(pred Predicate, node any) (matched bool) {
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()
	return pred(node)
}

// Map iteration order is randomized; sort keys so searches are
// deterministic across runs.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MatchListShape reports whether node is a non-empty array whose first
// element looks like a fixture record: an object carrying "id" and at
// least one round-like key.
func MatchListShape(node any) bool {
	arr, ok := node.([]any)
	if !ok || len(arr) == 0 {
		return false
	}
	first, ok := arr[0].(map[string]any)
	if !ok {
		return false
	}
	if _, ok := first["id"]; !ok {
		return false
	}
	for _, k := range []string{"round", "round_number", "week"} {
		if _, ok := first[k]; ok {
			return true
		}
	}
	return false
}

// ShotPairShape reports whether node is an object with home and away
// shot arrays under "h" and "a".
func ShotPairShape(node any) bool {
	obj, ok := node.(map[string]any)
	if !ok {
		return false
	}
	_, hOK := obj["h"].([]any)
	_, aOK := obj["a"].([]any)
	return hOK && aOK
}
