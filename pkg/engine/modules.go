package engine

import (
	"fmt"
	"strings"

	"github.com/brepfeat/aag/pkg/recognize"
)

// moduleKey maps a recognize.Recognizer's Name() to its selector
// string on the CLI surface.
var moduleKey = map[string]string{
	"hole":      "recognize_holes",
	"shaft":     "recognize_shafts",
	"fillet":    "recognize_fillets",
	"chamfer":   "recognize_chamfers",
	"cavity":    "recognize_cavities",
	"thin_wall": "recognize_thin_walls",
}

var validModuleKeys = func() map[string]bool {
	m := make(map[string]bool, len(moduleKey))
	for _, k := range moduleKey {
		m[k] = true
	}
	return m
}()

// parseModules validates and normalizes a module selector: either "all"
// or a comma-separated list of the recognized keys.
func parseModules(selector string) (map[string]bool, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" || selector == "all" {
		return nil, nil // nil means "all" to the caller
	}

	enabled := make(map[string]bool)
	for _, part := range strings.Split(selector, ",") {
		key := strings.TrimSpace(part)
		if key == "" {
			continue
		}
		if !validModuleKeys[key] {
			return nil, fmt.Errorf("unknown module %q", key)
		}
		enabled[key] = true
	}
	if len(enabled) == 0 {
		return nil, fmt.Errorf("module selector %q named no modules", selector)
	}
	return enabled, nil
}

// filterRecognizers restricts recognizers to those the selector enables,
// preserving their fixed relative order. A nil enabled set (selector
// "all") keeps every recognizer.
func filterRecognizers(recognizers []recognize.Recognizer, enabled map[string]bool) []recognize.Recognizer {
	if enabled == nil {
		return recognizers
	}
	var out []recognize.Recognizer
	for _, r := range recognizers {
		if enabled[moduleKey[r.Name()]] {
			out = append(out, r)
		}
	}
	return out
}
