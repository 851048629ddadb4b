package providers

import (
	"encoding/json"
	"testing"
)

func TestLooseInt(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  int
		ok    bool
	}{
		{"float64", float64(3), 3, true},
		{"int", 7, 7, true},
		{"json number", json.Number("42"), 42, true},
		{"numeric string", "5", 5, true},
		{"padded string", " 12 ", 12, true},
		{"float string", "2.0", 2, true},
		{"word", "three", 0, false},
		{"empty string", "", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tc := range cases {
		got, ok := LooseInt(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("%s: LooseInt(%v) = (%d, %t), want (%d, %t)", tc.name, tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLooseID(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
		ok    bool
	}{
		{"string", "202", "202", true},
		{"padded string", " 202 ", "202", true},
		{"float64", float64(444), "444", true},
		{"json number", json.Number("524"), "524", true},
		{"empty string", "  ", "", false},
		{"nil", nil, "", false},
		{"map", map[string]any{}, "", false},
	}

	for _, tc := range cases {
		got, ok := LooseID(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("%s: LooseID(%v) = (%q, %t), want (%q, %t)", tc.name, tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !IsNumeric("202") || !IsNumeric(float64(1)) {
		t.Fatal("expected numeric values to report true")
	}
	if IsNumeric("CGY") || IsNumeric("") || IsNumeric(nil) {
		t.Fatal("expected non-numeric values to report false")
	}
}

func TestTruthy(t *testing.T) {
	for _, v := range []any{true, float64(1), 1, "1", json.Number("1")} {
		if !Truthy(v) {
			t.Fatalf("expected %v (%T) to be truthy", v, v)
		}
	}
	for _, v := range []any{false, float64(0), 0, "0", "", "true", nil} {
		if Truthy(v) {
			t.Fatalf("expected %v (%T) to be falsy", v, v)
		}
	}
}
