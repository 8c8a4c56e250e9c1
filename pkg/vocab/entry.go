// Package vocab is the read-only view over the vocabulary snapshot:
// headword/derivative lookup both directions plus family resolution.
package vocab

import "strings"

// Entry is one vocabulary row: a headword and its pipe-delimited
// derivative list, with optional dictionary metadata.
type Entry struct {
	ID            int64  `json:"id"`
	Headword      string `json:"headword"`
	Derivative    string `json:"derivative,omitempty"`
	Definition    string `json:"definition,omitempty"`
	Pronunciation string `json:"pronunciation,omitempty"`
	PartOfSpeech  string `json:"partofspeech,omitempty"`
}

// SplitDerivatives splits a raw pipe-delimited derivative column into
// trimmed, non-empty items, preserving order.
func SplitDerivatives(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, d := range strings.Split(raw, "|") {
		d = strings.TrimSpace(d)
		if d != "" {
			out = append(out, d)
		}
	}
	return out
}

// CountDerivatives returns the number of non-empty derivatives of e.
// A nil entry counts zero.
func CountDerivatives(e *Entry) int {
	if e == nil {
		return 0
	}
	return len(SplitDerivatives(e.Derivative))
}

// FamilyLabel renders the canonical family label for e:
// " headword | d1 | d2 " with the entry's derivative order reproduced,
// or " headword " when there are no derivatives.
func (e *Entry) FamilyLabel() string {
	derivs := SplitDerivatives(e.Derivative)
	if len(derivs) == 0 {
		return " " + e.Headword + " "
	}
	return " " + e.Headword + " | " + strings.Join(derivs, " | ") + " "
}

// HeadwordOf extracts the headword segment from a rendered family label.
// Empty input yields "".
func HeadwordOf(label string) string {
	seg, _, _ := strings.Cut(label, "|")
	return strings.TrimSpace(seg)
}
