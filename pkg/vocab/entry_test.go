package vocab

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitDerivatives(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"acts|acted|acting", []string{"acts", "acted", "acting"}},
		{" acts | acted ", []string{"acts", "acted"}},
		{"acts||acted", []string{"acts", "acted"}},
		{"", nil},
		{"   ", nil},
		{"|", nil},
		{"single", []string{"single"}},
	}
	for _, tt := range tests {
		got := SplitDerivatives(tt.raw)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitDerivatives(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestFamilyLabel(t *testing.T) {
	tests := []struct {
		entry Entry
		want  string
	}{
		{Entry{Headword: "act", Derivative: "acts|acted|acting"}, " act | acts | acted | acting "},
		{Entry{Headword: "act", Derivative: ""}, " act "},
		{Entry{Headword: "act", Derivative: "  "}, " act "},
		{Entry{Headword: "act", Derivative: " acts |  acted "}, " act | acts | acted "},
	}
	for _, tt := range tests {
		if got := tt.entry.FamilyLabel(); got != tt.want {
			t.Errorf("FamilyLabel(%+v) = %q, want %q", tt.entry, got, tt.want)
		}
	}
}

// Rendering a label and re-parsing its derivative segment reproduces the
// entry's derivative list.
func TestFamilyLabelRoundTrip(t *testing.T) {
	e := Entry{Headword: "act", Derivative: "acts|acted|acting"}
	label := e.FamilyLabel()

	if got := HeadwordOf(label); got != "act" {
		t.Fatalf("HeadwordOf(%q) = %q, want %q", label, got, "act")
	}
	_, rest, _ := strings.Cut(label, "|")
	got := SplitDerivatives(rest)
	want := []string{"acts", "acted", "acting"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round-trip derivatives = %v, want %v", got, want)
	}
}

func TestHeadwordOf(t *testing.T) {
	tests := []struct {
		label, want string
	}{
		{" act | acts | acted ", "act"},
		{" act ", "act"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := HeadwordOf(tt.label); got != tt.want {
			t.Errorf("HeadwordOf(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
