package snapimport

import (
	"encoding/json"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input      string
		wantString string
		wantPlaces int32
	}{
		{input: "10", wantString: "10", wantPlaces: 0},
		{input: "10.50", wantString: "10.50", wantPlaces: 2},
		{input: "1,234.5", wantString: "1234.5", wantPlaces: 1},
		{input: " 2 500.000 ", wantString: "2500.000", wantPlaces: 3},
		{input: "-0.25", wantString: "-0.25", wantPlaces: 2},
		{input: "1e3", wantString: "1000", wantPlaces: 0},
		{input: "1.5e-3", wantString: "0.0015", wantPlaces: 4},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := ParseNumber(tt.input)
			if err != nil {
				t.Fatalf("ParseNumber(%q) unexpected error: %v", tt.input, err)
			}
			if got := n.String(); got != tt.wantString {
				t.Errorf("ParseNumber(%q).String() = %q, want %q", tt.input, got, tt.wantString)
			}
			if got := n.Places(); got != tt.wantPlaces {
				t.Errorf("ParseNumber(%q).Places() = %d, want %d", tt.input, got, tt.wantPlaces)
			}
		})
	}
}

func TestParseNumberInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "12abc", "£10", "NaN", "-", "1e-1000000", "1e50000000", "0.0000000000000000000001"} {
		if _, err := ParseNumber(input); err == nil {
			t.Errorf("ParseNumber(%q) expected an error", input)
		}
	}
}

func TestNumberArithmetic(t *testing.T) {
	a, b := MustParseNumber("12.5"), MustParseNumber("2")
	if got, want := a.Add(b).String(), "14.5"; got != want {
		t.Errorf("Add() = %q, want %q", got, want)
	}
	if got, want := a.Sub(b).String(), "10.5"; got != want {
		t.Errorf("Sub() = %q, want %q", got, want)
	}
	if got, want := a.Mul(b).String(), "25"; got != want {
		t.Errorf("Mul() = %q, want %q", got, want)
	}
	if q, ok := a.Div(b); !ok || q.String() != "6.25" {
		t.Errorf("Div() = %q, %v, want %q, true", q, ok, "6.25")
	}
	if _, ok := a.Div(N(0)); ok {
		t.Errorf("Div(0) ok = true, want false")
	}
	if got, want := MustParseNumber("2.345").Round(2).String(), "2.35"; got != want {
		t.Errorf("Round(2) = %q, want %q", got, want)
	}
	if got, want := MustParseNumber("7").Round(2).String(), "7.00"; got != want {
		t.Errorf("Round(2) = %q, want %q", got, want)
	}
	if !MustParseNumber("10").Equal(MustParseNumber("10.00")) {
		t.Errorf("10 and 10.00 should be equal")
	}
	if !MustParseNumber("80.004").EqualAt(MustParseNumber("80"), 2) {
		t.Errorf("80.004 and 80 should be equal at 2 places")
	}
}

func TestValueOf(t *testing.T) {
	// prices are in hundredths of the currency unit
	if got, want := valueOf(N(10), N(500)).String(), "50"; got != want {
		t.Errorf("valueOf(10, 500) = %q, want %q", got, want)
	}
	if u, ok := unitsOf(N(50), N(500)); !ok || u.String() != "10" {
		t.Errorf("unitsOf(50, 500) = %q, %v, want 10, true", u, ok)
	}
	if _, ok := priceOf(N(50), N(0)); ok {
		t.Errorf("priceOf(50, 0) ok = true, want false")
	}
}

func TestNumberJSON(t *testing.T) {
	n := MustParseNumber("1.50")
	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}
	if got, want := string(data), `"1.50"`; got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
	var back Number
	if err := json.Unmarshal([]byte(`2.250`), &back); err != nil {
		t.Fatalf("json.Unmarshal() unexpected error: %v", err)
	}
	if got, want := back.String(), "2.250"; got != want {
		t.Errorf("json.Unmarshal() = %q, want %q", got, want)
	}
}
