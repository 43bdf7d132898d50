// SPDX-License-Identifier: Apache-2.0

package extractors

import (
	"strings"

	"desklog/internal/textscope"
)

// ResidentNameChain extracts the resident's display name. The breadcrumb
// trail is the single most reliable source: it reflects the browser's
// current navigation state, while page body text can lag a profile switch
// or appear twice when a background panel still holds the previous
// resident.
func ResidentNameChain(chromeWords []string) *Chain {
	return NewChain("resident_name", Strategy{
		Name: "breadcrumb",
		Fn:   breadcrumbName(chromeWords),
	})
}

func breadcrumbName(chromeWords []string) func(*textscope.Scope) (string, bool) {
	return func(s *textscope.Scope) (string, bool) {
		if s.Root == nil {
			return "", false
		}
		// The pruning walk matters: a breadcrumb inside a hidden panel can
		// still name the previous resident even when its own flag is unset.
		trails := s.Root.FindAllVisible(func(n *textscope.Node) bool {
			return n.HasClass("breadcrumb") || n.Attr("aria-label") == "breadcrumb"
		})
		for _, trail := range trails {
			for _, entry := range strings.Split(trail.VisibleText(), "\n") {
				entry = strings.TrimSpace(entry)
				if entry == "" || !strings.Contains(entry, ",") {
					continue
				}
				if containsChrome(entry, chromeWords) {
					continue
				}
				return entry, true
			}
		}
		return "", false
	}
}

// containsChrome rejects breadcrumb entries that are navigation chrome
// rather than a person ("Dashboard", "Desk", ...). The comma requirement
// alone is not enough: some chrome entries carry commas in list form.
func containsChrome(entry string, chromeWords []string) bool {
	lower := strings.ToLower(entry)
	for _, word := range chromeWords {
		if strings.Contains(lower, strings.ToLower(word)) {
			return true
		}
	}
	return false
}
