package extract

import (
	"encoding/json"
	"testing"
)

func TestBlockEscapedForm(t *testing.T) {
	markup := `<html><script>
var other = {"x": 1};
var shotsData = JSON.parse('{"h":[],"a":[]}');
</script></html>`

	text, ok := Block(markup, "shotsData")
	if !ok {
		t.Fatalf("expected a match for shotsData")
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		t.Fatalf("extracted text is not valid JSON: %v", err)
	}
	if _, ok := parsed["h"]; !ok {
		t.Errorf("expected key h in %q", text)
	}
	if _, ok := parsed["a"]; !ok {
		t.Errorf("expected key a in %q", text)
	}
}

func TestBlockUnescapesEscapes(t *testing.T) {
	markup := `var playersData = JSON.parse('{"name":"Sébastien O\'Brien","team":"København"}');`

	text, ok := Block(markup, "playersData")
	if !ok {
		t.Fatalf("expected a match")
	}
	var parsed map[string]string
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		t.Fatalf("unescaped text is not valid JSON: %v (%q)", err, text)
	}
	if parsed["name"] != "Sébastien O'Brien" {
		t.Errorf("name = %q", parsed["name"])
	}
	if parsed["team"] != "København" {
		t.Errorf("team = %q", parsed["team"])
	}
}

func TestBlockLiteralForm(t *testing.T) {
	markup := `<script>var matchesData = [{"id":"101","round":"1"}];</script>`

	text, ok := Block(markup, "matchesData")
	if !ok {
		t.Fatalf("expected a match")
	}
	var parsed []any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		t.Fatalf("literal span is not valid JSON: %v", err)
	}
	if len(parsed) != 1 {
		t.Errorf("expected 1 element, got %d", len(parsed))
	}
}

func TestBlockAbsent(t *testing.T) {
	if _, ok := Block(`<html>var somethingElse = 5;</html>`, "shotsData"); ok {
		t.Fatalf("expected no match")
	}
}

func TestBlockFirstDeclarationWins(t *testing.T) {
	markup := `var d = JSON.parse('{"v":1}'); var d = JSON.parse('{"v":2}');`
	text, ok := Block(markup, "d")
	if !ok {
		t.Fatalf("expected a match")
	}
	if text != `{"v":1}` {
		t.Errorf("expected first declaration, got %q", text)
	}
}

func TestUnescape(t *testing.T) {
	cases := []struct{ in, want string }{
		{`plain`, `plain`},
		{`a\'b`, `a'b`},
		{`a\"b`, `a"b`},
		{`a\\b`, `a\b`},
		{`a\/b`, `a/b`},
		{`line\nbreak`, "line\nbreak"},
		{`A`, "A"},
		{`é`, "é"},
		{`😀`, "😀"}, // surrogate pair
		{`\x41`, "A"},
		{`bad\q`, `bad\q`}, // unknown escape kept verbatim
	}
	for _, c := range cases {
		if got := Unescape(c.in); got != c.want {
			t.Errorf("Unescape(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
