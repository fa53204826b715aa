package valueobjects

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityNormal Priority = "normal"
)

var validPriorities = map[Priority]bool{
	PriorityHigh:   true,
	PriorityMedium: true,
	PriorityNormal: true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func (p Priority) IsHigh() bool {
	return p == PriorityHigh
}

func (p Priority) IsMedium() bool {
	return p == PriorityMedium
}

func (p Priority) IsNormal() bool {
	return p == PriorityNormal
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

// PriorityFromCategory derives a priority from an analysis category.
// Categories mentioning urgency or complaints rank high, booking-related
// categories medium, everything else normal. Matching is case-sensitive
// against the lowercase category labels the analysis service emits.
func PriorityFromCategory(category string) Priority {
	if strings.Contains(category, "urgent") || strings.Contains(category, "complaint") {
		return PriorityHigh
	}
	if strings.Contains(category, "booking") {
		return PriorityMedium
	}
	return PriorityNormal
}
