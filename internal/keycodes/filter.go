// SPDX-License-Identifier: Apache-2.0

// Package keycodes extracts the key codes issued to one resident from a
// scope that may show several residents' key rows at once. The host renders
// key assignments as flat text with no table structure the engine can see,
// so proximity in text is the only signal tying a key to a resident.
package keycodes

import (
	"regexp"
	"strings"

	"desklog/internal/observability"
	"desklog/internal/patterns"
	"desklog/internal/record"
	"desklog/internal/textscope"
)

// Filter recovers a resident's key codes from scope text.
type Filter struct {
	keyRegex *regexp.Regexp
	window   int
	minLen   int

	observer *observability.StandardObserver
}

// NewFilter builds a filter for the given label vocabulary. window is the
// proximity window in characters; minLen is the shortest token accepted.
func NewFilter(labels []string, window, minLen int) *Filter {
	return &Filter{
		keyRegex: patterns.KeyAssignment(labels),
		window:   window,
		minLen:   minLen,
	}
}

// SetObserver sets the observability component
func (f *Filter) SetObserver(observer *observability.StandardObserver) {
	f.observer = observer
}

// Extract returns the key codes belonging to the resident, or
// record.ErrNoKeysFound when none survive.
//
// In report mode the search is scoped: a key assignment only counts when it
// appears within the proximity window after the resident's identifier, or
// failing that, after the resident's display name. When neither anchor
// yields a match the answer is "no keys" — falling back to the unscoped
// candidates here would risk attributing another resident's keys to this
// one, which is the one failure this package exists to prevent.
//
// In a single-profile scope there is no ambiguity and the unscoped
// candidates are accepted directly.
func (f *Filter) Extract(s *textscope.Scope, residentName, identifier string, reportMode bool) (record.KeyCodeSet, error) {
	var finishTiming func(bool, map[string]interface{})
	if f.observer != nil {
		finishTiming = f.observer.StartTiming("keycode_filter", "extract", identifier)
	}

	text := s.Text()

	var tokens []string
	if reportMode {
		if identifier != "" {
			tokens = f.WindowMatches(text, identifier)
		}
		if len(tokens) == 0 && residentName != "" {
			tokens = f.WindowMatches(text, residentName)
		}
	} else {
		tokens = f.unscopedMatches(text)
	}

	set := f.filterTokens(tokens, identifier)

	if finishTiming != nil {
		finishTiming(len(set) > 0, map[string]interface{}{
			"report_mode": reportMode,
			"candidates":  len(tokens),
			"accepted":    len(set),
		})
	}

	if len(set) == 0 {
		return nil, record.ErrNoKeysFound
	}
	return set, nil
}

// WindowMatches is the bounded-window proximity primitive: it returns the
// key tokens whose assignment match begins within the window after an
// occurrence of anchor in text. The anchor is matched literally; every
// occurrence opens its own window.
//
// The window additionally ends at the next resident row: report rows can
// sit closer together than the window length, and a window that ran into
// the following row would collect that resident's keys. The start of the
// next row is detected as the first identifier-shaped run or the next
// occurrence of the anchor itself, whichever comes first.
func (f *Filter) WindowMatches(text, anchor string) []string {
	var tokens []string
	for from := 0; ; {
		idx := strings.Index(text[from:], anchor)
		if idx < 0 {
			break
		}
		start := from + idx + len(anchor)
		end := start + f.window
		if end > len(text) {
			end = len(text)
		}
		window := text[start:end]
		if loc := patterns.IdentifierRun.FindStringIndex(window); loc != nil {
			window = window[:loc[0]]
		}
		if next := strings.Index(window, anchor); next >= 0 {
			window = window[:next]
		}
		for _, m := range f.keyRegex.FindAllStringSubmatch(window, -1) {
			tokens = append(tokens, m[1])
		}
		from = start
	}
	return tokens
}

func (f *Filter) unscopedMatches(text string) []string {
	var tokens []string
	for _, m := range f.keyRegex.FindAllStringSubmatch(text, -1) {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// filterTokens applies the token-level rejections and deduplicates. Short
// fragments, anything lowercase (username/email convention), the resident's
// own identifier echoed into a key column, and addresses are all false
// positives seen in real report text.
func (f *Filter) filterTokens(tokens []string, identifier string) record.KeyCodeSet {
	set := record.KeyCodeSet{}
	for _, t := range tokens {
		if len(t) < f.minLen {
			continue
		}
		if patterns.HasLower(t) {
			continue
		}
		if t == identifier {
			continue
		}
		if strings.Contains(t, "@") {
			continue
		}
		set.Add(t)
	}
	return set
}
