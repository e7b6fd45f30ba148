package idutil

import "strings"

// Upstream producers are inconsistent about UUID formatting: seeded question
// and cluster ids arrive sometimes hyphenated, sometimes compact. Lookups that
// key on those ids must try both forms before reporting absence.

// Compact strips all hyphens from id.
func Compact(id string) string {
	return strings.ReplaceAll(id, "-", "")
}

// Hyphenate converts a 32-char compact UUID to its hyphenated form.
// Anything that is not a compact UUID is returned unchanged.
func Hyphenate(id string) string {
	clean := Compact(id)
	if len(clean) != 32 {
		return id
	}
	return clean[:8] + "-" + clean[8:12] + "-" + clean[12:16] + "-" + clean[16:20] + "-" + clean[20:]
}

// Forms returns the distinct representations of id to try on lookup, the
// given form first.
func Forms(id string) []string {
	forms := []string{id}
	if compact := Compact(id); compact != id {
		forms = append(forms, compact)
	} else if hyphenated := Hyphenate(id); hyphenated != id {
		forms = append(forms, hyphenated)
	}
	return forms
}
