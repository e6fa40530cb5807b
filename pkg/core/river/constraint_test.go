package river

import (
	"slices"
	"testing"
)

func TestParseConstraints(t *testing.T) {
	tests := map[string]struct {
		in   string
		want Constraint
	}{
		"empty":              {"", 0},
		"line break":         {"br", LineBreak},
		"paragraph":          {"p", ParagraphBreak},
		"form field":         {"br tab hfill", LineBreak | TabStop | HFill},
		"extra whitespace":   {"  p\tcenter \n", ParagraphBreak | AlignCenter},
		"unknown ignored":    {"bogus tab", TabStop},
		"vtop is not p":      {"vtop", VAlignTop},
		"substring mismatch": {"tabs bravo", 0},
		"everything": {
			"br p tab hfill vfill left center right vtop vcenter",
			LineBreak | ParagraphBreak | TabStop | HFill | VFill |
				AlignLeft | AlignCenter | AlignRight | VAlignTop | VAlignCenter,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ParseConstraints(tt.in); got != tt.want {
				t.Errorf("ParseConstraints(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConstraintBreaksRow(t *testing.T) {
	tests := map[string]bool{
		"br":        true,
		"p":         true,
		"tab":       false,
		"vtop":      false,
		"hfill p":   true,
		"center br": true,
		"":          false,
	}
	for in, want := range tests {
		if got := ParseConstraints(in).BreaksRow(); got != want {
			t.Errorf("ParseConstraints(%q).BreaksRow() = %v, want %v", in, got, want)
		}
	}
}

func TestConstraintString(t *testing.T) {
	if got := ParseConstraints("hfill tab br").String(); got != "br tab hfill" {
		t.Errorf("String() = %q, want canonical order %q", got, "br tab hfill")
	}
	if got := Constraint(0).String(); got != "" {
		t.Errorf("String() of empty set = %q, want empty", got)
	}
}

func TestUnknownTokens(t *testing.T) {
	got := UnknownTokens("br wide tab tall")
	want := []string{"wide", "tall"}
	if !slices.Equal(got, want) {
		t.Errorf("UnknownTokens() = %v, want %v", got, want)
	}
	if got := UnknownTokens("br tab"); got != nil {
		t.Errorf("UnknownTokens() = %v, want nil", got)
	}
}

func TestAlignStateApply(t *testing.T) {
	tests := []struct {
		name  string
		from  alignState
		cons  string
		wantH Alignment
		wantV VAlignment
	}{
		{name: "no tokens keep state", from: alignState{Right, VTop}, cons: "br tab", wantH: Right, wantV: VTop},
		{name: "left wins over right", from: defaultAlign, cons: "right left", wantH: Left, wantV: VCenter},
		{name: "right wins over center", from: defaultAlign, cons: "center right", wantH: Right, wantV: VCenter},
		{name: "center", from: defaultAlign, cons: "center", wantH: Center, wantV: VCenter},
		{name: "vtop wins over vcenter", from: alignState{Center, VCenter}, cons: "vcenter vtop", wantH: Center, wantV: VTop},
		{name: "vcenter resets", from: alignState{Left, VTop}, cons: "vcenter", wantH: Left, wantV: VCenter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.apply(ParseConstraints(tt.cons))
			if got.h != tt.wantH || got.v != tt.wantV {
				t.Errorf("apply(%q) = {%v %v}, want {%v %v}", tt.cons, got.h, got.v, tt.wantH, tt.wantV)
			}
		})
	}
}
