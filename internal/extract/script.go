package extract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dop251/goja"
	"github.com/rs/zerolog/log"
)

// Script is the last-resort extraction strategy: execute the page's
// inline scripts in a sandboxed JS VM and read the named global back as
// JSON text. It catches pages where the assignment was reformatted or
// split in a way the regex strategies cannot see. Script errors are
// expected (there is no real DOM) and ignored.
func Script(markup, name string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		log.Warn().Err(err).Msg("Failed to parse HTML for script extraction")
		return "", false
	}

	vm := goja.New()

	// Minimal browser shims, just enough for data-assignment scripts.
	vm.Set("window", vm.GlobalObject())
	vm.Set("self", vm.GlobalObject())
	vm.Set("document", map[string]any{})
	vm.Set("console", map[string]any{
		"log":   func(call goja.FunctionCall) goja.Value { return nil },
		"error": func(call goja.FunctionCall) goja.Value { return nil },
	})

	doc.Find("script").Each(func(i int, sel *goquery.Selection) {
		if _, external := sel.Attr("src"); external {
			return
		}
		src := sel.Text()
		if src == "" {
			return
		}
		if _, err := vm.RunString(src); err != nil {
			// Most inline scripts fail on the missing DOM; only the
			// data assignments need to survive.
			log.Trace().Err(err).Int("script", i).Msg("Inline script failed in VM")
		}
	})

	val := vm.Get(name)
	if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
		return "", false
	}

	exported := val.Export()
	if exported == nil {
		return "", false
	}
	// The VM may hand back a JSON string or an already-built value.
	if s, ok := exported.(string); ok {
		return s, true
	}
	raw, err := json.Marshal(exported)
	if err != nil {
		log.Debug().Err(err).Str("name", name).Msg("Could not re-encode VM global")
		return "", false
	}
	return string(raw), true
}
