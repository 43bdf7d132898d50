// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"strings"
	"testing"
	"time"

	"desklog/internal/record"
)

func sampleRequest() Request {
	return Request{
		Resident: record.ResidentRecord{
			FullName:   "Doe, Jane",
			Identifier: "20990921",
			RoomCode:   "UWP-BECK-204a",
		},
		Staff: record.StaffIdentity{FullName: "Sam Porter"},
		When:  time.Date(2025, 9, 1, 15, 4, 0, 0, time.UTC),
	}
}

func TestPickupFormatter(t *testing.T) {
	got, err := Export("pickup", sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Sep 1 2025 3:04 PM - Package picked up by Doe, Jane (20990921, UWP-BECK-204a). Logged by Sam Porter."
	if got != want {
		t.Errorf("pickup line:\n got %q\nwant %q", got, want)
	}
}

func TestLockoutFormatter_WithKeys(t *testing.T) {
	req := sampleRequest()
	req.Keys = record.KeyCodeSet{}
	req.Keys.Add("X15")
	req.Keys.Add("AB12")

	got, err := Export("lockout", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Keys: AB12, X15.") {
		t.Errorf("expected sorted key list in %q", got)
	}
	if !strings.Contains(got, "Lockout key issued to Doe, Jane (20990921, UWP-BECK-204a)") {
		t.Errorf("missing resident block in %q", got)
	}
}

func TestLockoutFormatter_NoKeys(t *testing.T) {
	got, err := Export("lockout", sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Keys: none on file.") {
		t.Errorf("expected none-on-file marker in %q", got)
	}
}

func TestLabelFormatter(t *testing.T) {
	got, err := Export("label", sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Doe, Jane\nUWP-BECK-204a\n20990921"
	if got != want {
		t.Errorf("label block:\n got %q\nwant %q", got, want)
	}
}

func TestStaffPlaceholder(t *testing.T) {
	req := sampleRequest()
	req.Staff = record.StaffIdentity{}

	got, err := Export("pickup", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Logged by "+StaffPlaceholder+".") {
		t.Errorf("expected staff placeholder in %q", got)
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	if _, err := Export("csv", sampleRequest()); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestDefaultRegistry_AllFormatsRegistered(t *testing.T) {
	for _, name := range []string{"pickup", "lockout", "label"} {
		if _, ok := DefaultRegistry.Get(name); !ok {
			t.Errorf("formatter %q not registered", name)
		}
	}
}
