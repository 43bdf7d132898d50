// SPDX-License-Identifier: Apache-2.0

// Package formatters turns validated records into the literal clipboard
// strings the desk staff paste into the log. Formatting is pure string
// construction; clipboard I/O and the UI live with the host.
package formatters

import (
	"fmt"
	"strings"
	"time"

	"desklog/internal/record"
)

// StaffPlaceholder substitutes for the staff name when the analytics
// payload was absent.
const StaffPlaceholder = "Desk Staff"

// Request carries everything a formatter may need. Keys is nil for entries
// that do not involve key issuance.
type Request struct {
	Resident record.ResidentRecord
	Staff    record.StaffIdentity
	Keys     record.KeyCodeSet
	When     time.Time
}

// StaffName returns the staff name or the placeholder.
func (r Request) StaffName() string {
	if r.Staff.FullName == "" {
		return StaffPlaceholder
	}
	return r.Staff.FullName
}

// Formatter interface defines methods that all log formatters must implement
type Formatter interface {
	// Format renders the log string for the request
	Format(req Request) (string, error)

	// Name returns the name of the formatter (e.g., "pickup", "lockout")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names
func (r *Registry) List() []string {
	var names []string
	for name := range r.formatters {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the global formatter registry, preloaded with the
// three log formats.
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.Register(&PickupFormatter{})
	DefaultRegistry.Register(&LockoutFormatter{})
	DefaultRegistry.Register(&LabelFormatter{})
}

// Export renders a request with the named formatter from the default
// registry.
func Export(format string, req Request) (string, error) {
	formatter, exists := DefaultRegistry.Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(DefaultRegistry.List(), ", "))
	}
	return formatter.Format(req)
}
