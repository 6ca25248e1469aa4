package extract

import "testing"

func TestHydrationRepair(t *testing.T) {
	markup := `<script>window.__NUXT__ = {"foo": undefined, "bar": [1, 2,], "baz": {"q": 3,},};</script>`

	doc, ok := Hydration(markup)
	if !ok {
		t.Fatalf("expected repaired blob to parse")
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", doc)
	}
	if v, present := obj["foo"]; !present || v != nil {
		t.Errorf("foo = %v, want null", v)
	}
	arr, ok := obj["bar"].([]any)
	if !ok || len(arr) != 2 {
		t.Errorf("bar = %v, want 2-element array", obj["bar"])
	}
}

func TestHydrationAbsent(t *testing.T) {
	if _, ok := Hydration(`<html>no blob here</html>`); ok {
		t.Fatalf("expected absence without a blob")
	}
	if _, ok := Hydration(`window.__NUXT__ = {"broken": };`); ok {
		t.Fatalf("expected absence for unrepairable JSON")
	}
}

func TestFindFirstMatchList(t *testing.T) {
	doc := map[string]any{
		"state": map[string]any{
			"noise": []any{"a", "b"},
			"season": map[string]any{
				"fixtures": []any{
					map[string]any{"id": "101", "round": "1"},
					map[string]any{"id": "102", "round": "2"},
				},
			},
		},
	}

	node, ok := FindFirst(doc, MatchListShape)
	if !ok {
		t.Fatalf("expected to find the fixture list")
	}
	arr := node.([]any)
	if len(arr) != 2 {
		t.Errorf("expected 2 fixtures, got %d", len(arr))
	}
}

func TestFindFirstShotPair(t *testing.T) {
	doc := map[string]any{
		"match": map[string]any{
			"shots": map[string]any{"h": []any{}, "a": []any{}},
		},
	}
	if _, ok := FindFirst(doc, ShotPairShape); !ok {
		t.Fatalf("expected to find the shot pair")
	}

	// h present but not an array must not match.
	bad := map[string]any{"h": "x", "a": []any{}}
	if _, ok := FindFirst(bad, ShotPairShape); ok {
		t.Fatalf("h must be an array for a match")
	}
}

func TestFindAllAndPanickyPredicate(t *testing.T) {
	doc := []any{
		map[string]any{"h": []any{}, "a": []any{}},
		[]any{map[string]any{"h": []any{}, "a": []any{}}},
	}
	found := FindAll(doc, ShotPairShape)
	if len(found) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(found))
	}

	// A predicate that panics on some nodes only skips those nodes.
	panicky := func(node any) bool {
		arr := node.([]any) // panics on non-arrays
		return len(arr) == 1
	}
	found = FindAll(doc, panicky)
	if len(found) != 1 {
		t.Fatalf("expected 1 match from panicky predicate, got %d", len(found))
	}
}
