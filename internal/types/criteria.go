// Package types contains the shared data structures for resource discovery.
package types

import (
	"fmt"
	"time"
)

type (
	// SearchCriteria describes a single discovery request. Every field is
	// optional; an omitted criterion imposes no constraint. Criteria are
	// combined with AND semantics and are never mutated by the engine.
	SearchCriteria struct {
		ContentPattern  string     `json:"contentPattern,omitempty"`
		CaseSensitive   bool       `json:"caseSensitive,omitempty"`
		ResourcePattern string     `json:"resourcePattern,omitempty"`
		DateAfter       *time.Time `json:"dateAfter,omitempty"`
		DateBefore      *time.Time `json:"dateBefore,omitempty"`
		SizeMin         *int64     `json:"sizeMin,omitempty"`
		SizeMax         *int64     `json:"sizeMax,omitempty"`
	}

	// FileCandidate is one regular file yielded by the walker. RelPath
	// always uses forward slashes regardless of the host filesystem.
	FileCandidate struct {
		RelPath string
		AbsPath string
		Size    int64
		ModTime time.Time
	}
)

// ParseDate parses an ISO YYYY-MM-DD date string to UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}
