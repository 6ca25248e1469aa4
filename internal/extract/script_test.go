package extract

import (
	"encoding/json"
	"testing"
)

func TestScriptJSONParseAssignment(t *testing.T) {
	page := `<html><head>
<script src="https://cdn.example.com/app.js"></script>
<script>var matchesData = JSON.parse('[{"id":"101"}]');</script>
</head><body></body></html>`

	text, ok := Script(page, "matchesData")
	if !ok {
		t.Fatal("expected matchesData from the VM")
	}
	var parsed []map[string]any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		t.Fatalf("VM output is not JSON: %v (%q)", err, text)
	}
	if len(parsed) != 1 || parsed[0]["id"] != "101" {
		t.Errorf("parsed = %+v", parsed)
	}
}

func TestScriptComputedAssignment(t *testing.T) {
	// An assignment the regex strategies cannot see: the value is built
	// by code rather than declared as a literal.
	page := `<html><script>
var parts = ['[{"id":', '"7"', '}]'];
var shotsData = JSON.parse(parts.join(''));
</script></html>`

	text, ok := Script(page, "shotsData")
	if !ok {
		t.Fatal("expected shotsData from the VM")
	}
	var parsed []map[string]any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		t.Fatalf("VM output is not JSON: %v (%q)", err, text)
	}
	if parsed[0]["id"] != "7" {
		t.Errorf("parsed = %+v", parsed)
	}
}

func TestScriptSurvivesBrokenSiblings(t *testing.T) {
	page := `<html>
<script>document.getElementById("x").innerHTML = "boom";</script>
<script>var matchesData = '[]';</script>
</html>`

	text, ok := Script(page, "matchesData")
	if !ok || text != "[]" {
		t.Fatalf("Script = (%q, %v)", text, ok)
	}
}

func TestScriptAbsentGlobal(t *testing.T) {
	if _, ok := Script(`<html><script>var other = 1;</script></html>`, "matchesData"); ok {
		t.Fatal("expected no result for an unset global")
	}
}
