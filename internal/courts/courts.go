// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package courts maps CourtListener court codes to display names and
// suggests close matches for codes that look like typos. The registry
// is advisory: unknown codes still go upstream unchanged, because the
// remote API knows thousands of courts this table does not.
package courts

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.yaml.in/yaml/v3"
)

//go:embed courts.yaml
var registryYAML []byte

var (
	loadOnce sync.Once
	byCode   map[string]string
	allCodes []string
)

func load() {
	loadOnce.Do(func() {
		byCode = map[string]string{}
		if err := yaml.Unmarshal(registryYAML, &byCode); err != nil {
			// The registry is compiled in; a parse failure is a build
			// defect, not a runtime condition.
			panic(fmt.Sprintf("courts: embedded registry: %v", err))
		}
		allCodes = make([]string, 0, len(byCode))
		for code := range byCode {
			allCodes = append(allCodes, code)
		}
		sort.Strings(allCodes)
	})
}

// Name returns the display name for a court code.
func Name(code string) (string, bool) {
	load()
	name, ok := byCode[strings.ToLower(strings.TrimSpace(code))]
	return name, ok
}

// suggestMaxDistance is the largest edit distance still treated as a
// plausible typo.
const suggestMaxDistance = 2

// Suggest returns the closest known code to the given one, or "" when
// nothing is near enough to be a plausible typo.
func Suggest(code string) string {
	load()
	code = strings.ToLower(strings.TrimSpace(code))
	best, bestDist := "", suggestMaxDistance+1
	for _, candidate := range allCodes {
		if d := fuzzy.LevenshteinDistance(code, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// Hint inspects a space-separated court filter and returns one advisory
// line about unrecognized codes, or "" when every code is known. The
// filter itself is never altered.
func Hint(filter string) string {
	load()
	for _, code := range strings.Fields(filter) {
		if _, ok := byCode[strings.ToLower(code)]; ok {
			continue
		}
		if s := Suggest(code); s != "" {
			return fmt.Sprintf("Note: court code %q is not in the known-court list; did you mean %q?", code, s)
		}
		return fmt.Sprintf("Note: court code %q is not in the known-court list.", code)
	}
	return ""
}
