package ratelimit

import "strings"

// Class groups routes that share a budget.
type Class string

const (
	ClassGeneral  Class = "general"
	ClassAuth     Class = "auth"
	ClassHeavy    Class = "heavy"
	ClassRealtime Class = "realtime"
)

type rule struct {
	class    Class
	prefixes []string
}

// Classifier maps request paths to classes. Rules are checked in the order auth, heavy,
// realtime; anything unmatched is general.
type Classifier struct {
	rules []rule
}

// NewClassifier builds a Classifier from per-class path prefixes.
func NewClassifier(auth, heavy, realtime []string) *Classifier {
	return &Classifier{rules: []rule{
		{class: ClassAuth, prefixes: auth},
		{class: ClassHeavy, prefixes: heavy},
		{class: ClassRealtime, prefixes: realtime},
	}}
}

// Classify returns the class of path.
func (c *Classifier) Classify(path string) Class {
	for _, r := range c.rules {
		for _, prefix := range r.prefixes {
			if prefix != "" && strings.HasPrefix(path, prefix) {
				return r.class
			}
		}
	}
	return ClassGeneral
}
