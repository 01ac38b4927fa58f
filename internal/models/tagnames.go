package models

import "slices"

// UniqueTagNames drops duplicate names and keeps first-seen order.
// Names are compared exactly as given.
func UniqueTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// NormalizeTagNames returns the unique names sorted ascending
func NormalizeTagNames(names []string) []string {
	out := UniqueTagNames(names)
	slices.Sort(out)
	return out
}
