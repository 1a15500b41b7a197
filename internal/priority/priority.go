// Package priority assigns a severity tier to a complaint from its free-text
// description and category label.
package priority

import "strings"

type Priority string

const (
	High   Priority = "High"
	Medium Priority = "Medium"
	Low    Priority = "Low"
)

var (
	highKeywords   = []string{"urgent", "emergency", "critical", "danger", "life", "death", "severe", "immediate"}
	highCategories = []string{"health", "safety", "water", "electricity"}
	mediumKeywords = []string{"problem", "issue", "broken", "damaged", "not working"}
)

// Classify returns the priority tier for a complaint. Keywords are matched as
// case-insensitive substrings of the description; the category must equal one
// of the high categories as a whole word, so "Water Supply" is not "water".
func Classify(description, category string) Priority {
	desc := strings.ToLower(description)

	if containsAny(desc, highKeywords) || isHighCategory(category) {
		return High
	}

	if containsAny(desc, mediumKeywords) {
		return Medium
	}

	return Low
}

// All lists the tiers from most to least severe.
func All() []Priority {
	return []Priority{High, Medium, Low}
}

func (p Priority) Valid() bool {
	switch p {
	case High, Medium, Low:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func isHighCategory(category string) bool {
	c := strings.ToLower(category)
	for _, hc := range highCategories {
		if c == hc {
			return true
		}
	}
	return false
}
