package strategy

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// Status is the lifecycle state of a stored strategy.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusSubmitted Status = "Submitted"
	StatusActive    Status = "Active"
)

// IsValid returns true if the status is a known Status.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusActive:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// StatusFromString converts a string to Status, case-insensitively.
// Unknown values map to StatusDraft.
func StatusFromString(s string) Status {
	for _, st := range []Status{StatusDraft, StatusSubmitted, StatusActive} {
		if strings.EqualFold(s, string(st)) {
			return st
		}
	}
	return StatusDraft
}

// UntitledName names a strategy created with a blank name.
const UntitledName = "Untitled Strategy"

// DateLayout is the format of Stored.CreatedAt.
const DateLayout = "2006-01-02"

// Stored is a strategy as shown on the dashboard.
type Stored struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Slug        string `json:"slug" yaml:"slug,omitempty"`
	Status      Status `json:"status" yaml:"status"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
	Description string `json:"description" yaml:"description"`
}

// Normalize fills in derived fields and checks required ones.
func (s *Stored) Normalize() error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return fmt.Errorf("strategy %d: name is required", s.ID)
	}
	if s.Slug == "" {
		s.Slug = slug.Make(s.Name)
	}
	if s.Status == "" {
		s.Status = StatusDraft
	}
	if !s.Status.IsValid() {
		return fmt.Errorf("strategy %q: invalid status %q (must be Draft, Submitted, or Active)", s.Name, s.Status)
	}
	if s.CreatedAt != "" {
		if _, err := time.Parse(DateLayout, s.CreatedAt); err != nil {
			return fmt.Errorf("strategy %q: created_at must be YYYY-MM-DD: %w", s.Name, err)
		}
	}
	return nil
}

// FromDraft builds the dashboard record for a completed draft.
func FromDraft(id int, d Draft, status Status, now time.Time) Stored {
	name := strings.TrimSpace(d.Simulation.Name)
	if name == "" {
		name = UntitledName
	}
	return Stored{
		ID:          id,
		Name:        name,
		Slug:        slug.Make(name),
		Status:      status,
		CreatedAt:   now.Format(DateLayout),
		Description: d.Summary(),
	}
}

// Markdown renders the stored strategy for the detail pane.
func (s Stored) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Name)
	fmt.Fprintf(&b, "**Status:** %s  \n", s.Status)
	if s.CreatedAt != "" {
		fmt.Fprintf(&b, "**Created:** %s\n\n", s.CreatedAt)
	}
	if s.Description != "" {
		b.WriteString(s.Description)
		b.WriteString("\n")
	}
	return b.String()
}
