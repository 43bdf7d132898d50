// SPDX-License-Identifier: Apache-2.0

package keycodes

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"desklog/internal/record"
	"desklog/internal/textscope"
)

var labels = []string{"Bedroom", "Suite", "Floor", "Unit", "Key", "LOANER"}

func newFilter() *Filter {
	return NewFilter(labels, 300, 3)
}

func keyScope(text string) *textscope.Scope {
	return textscope.NewScope(&textscope.Node{Text: text})
}

// reportText builds two resident rows far enough apart that a proximity
// window anchored on one identifier cannot reach the other's keys, the way
// real report rows carry a long tail of columns.
func reportText() string {
	padding := strings.Repeat("column-data ", 30)
	return "11223344 Doe, Jane Bedroom Key: AB12 " + padding +
		"\n99887766 Roe, Rick Bedroom Key: CD34 " + padding
}

func TestExtract_SingleProfileUnscoped(t *testing.T) {
	s := keyScope("Doe, Jane\nBedroom Key: AB12\nLOANER: X15")
	set, err := newFilter().Extract(s, "Doe, Jane", "20990921", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"AB12", "X15"}, set.Values()); diff != "" {
		t.Errorf("key set mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_ReportModeIsolatesByIdentifier(t *testing.T) {
	s := keyScope(reportText())

	set, err := newFilter().Extract(s, "Doe, Jane", "11223344", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"AB12"}, set.Values()); diff != "" {
		t.Errorf("keys for 11223344 (-want +got):\n%s", diff)
	}

	set, err = NewFilter(labels, 300, 3).Extract(s, "Roe, Rick", "99887766", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"CD34"}, set.Values()); diff != "" {
		t.Errorf("keys for 99887766 (-want +got):\n%s", diff)
	}
}

func TestExtract_ReportModeCompactRowsStayIsolated(t *testing.T) {
	// Both rows fit inside a single proximity window. The window anchored on
	// the first identifier must stop at the second identifier instead of
	// running across it and collecting the next resident's key.
	s := keyScope("11223344 Doe, Jane Bedroom Key: AB12 99887766 Roe, Rick Bedroom Key: CD34")

	set, err := newFilter().Extract(s, "Doe, Jane", "11223344", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"AB12"}, set.Values()); diff != "" {
		t.Errorf("keys for 11223344 (-want +got):\n%s", diff)
	}

	set, err = newFilter().Extract(s, "Roe, Rick", "99887766", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"CD34"}, set.Values()); diff != "" {
		t.Errorf("keys for 99887766 (-want +got):\n%s", diff)
	}
}

func TestWindowMatches_TruncatesAtRepeatedAnchor(t *testing.T) {
	// A name-anchored report has no identifier column; the next occurrence
	// of the anchor itself marks the next row.
	f := newFilter()
	got := f.WindowMatches("Doe, Jane Key: AB12 Doe, Jane Key: CD34", "Doe, Jane")
	if diff := cmp.Diff([]string{"AB12", "CD34"}, got); diff != "" {
		t.Errorf("per-row tokens (-want +got):\n%s", diff)
	}
}

func TestExtract_ReportModeNameFallback(t *testing.T) {
	// Identifier column absent from this report layout; the display name
	// is the anchor instead.
	s := keyScope("Doe, Jane Bedroom Key: AB12" + strings.Repeat(" filler", 60) + "\nRoe, Rick Bedroom Key: CD34")
	set, err := newFilter().Extract(s, "Doe, Jane", "11223344", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"AB12"}, set.Values()); diff != "" {
		t.Errorf("name-anchored keys (-want +got):\n%s", diff)
	}
}

func TestExtract_ReportModeNeverFallsBackUnscoped(t *testing.T) {
	// The resident appears nowhere in the report: returning the unscoped
	// candidates would attribute someone else's keys to them.
	s := keyScope(reportText())
	_, err := newFilter().Extract(s, "Poe, Anna", "55667788", true)
	if !errors.Is(err, record.ErrNoKeysFound) {
		t.Errorf("err = %v, want ErrNoKeysFound", err)
	}
}

func TestExtract_WindowBoundsTheSearch(t *testing.T) {
	// A key match beyond the proximity window does not belong to the
	// anchored resident.
	far := "11223344 " + strings.Repeat("x", 300) + " Bedroom Key: AB12"
	_, err := newFilter().Extract(keyScope(far), "Doe, Jane", "11223344", true)
	if !errors.Is(err, record.ErrNoKeysFound) {
		t.Errorf("err = %v, want ErrNoKeysFound for a match outside the window", err)
	}
}

func TestExtract_TokenFilters(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"lowercase token", "Bedroom Key: 20aa130"},
		{"identifier echo", "Bedroom Key: 20990921"},
		{"email address", "Suite Key: J.DOE@EXAMPLE.EDU"},
		{"short fragment", "Key: AB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newFilter().Extract(keyScope(tt.text), "Doe, Jane", "20990921", false)
			if !errors.Is(err, record.ErrNoKeysFound) {
				t.Errorf("err = %v, want ErrNoKeysFound", err)
			}
		})
	}
}

func TestExtract_Deduplicates(t *testing.T) {
	s := keyScope("Bedroom Key: AB12\nBedroom Key: AB12")
	set, err := newFilter().Extract(s, "Doe, Jane", "20990921", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 1 {
		t.Errorf("set size = %d, want 1", len(set))
	}
}

func TestExtract_Idempotent(t *testing.T) {
	s := keyScope("Bedroom Key: AB12\nLOANER: X15")
	f := newFilter()

	first, err := f.Extract(s, "Doe, Jane", "20990921", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := f.Extract(s, "Doe, Jane", "20990921", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(first.Values(), second.Values()); diff != "" {
		t.Errorf("repeated extraction differs (-first +second):\n%s", diff)
	}
}

func TestWindowMatches_EveryAnchorOccurrenceOpensAWindow(t *testing.T) {
	f := NewFilter(labels, 30, 3)
	text := "11223344 Bedroom Key: AB12 ... 11223344 LOANER: X15"
	got := f.WindowMatches(text, "11223344")
	if len(got) != 2 {
		t.Errorf("WindowMatches = %v, want both anchored matches", got)
	}
}
