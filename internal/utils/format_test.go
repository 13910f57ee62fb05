package utils

import (
	"testing"
	"time"
)

func TestFormatGNF(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0 GNF"},
		{500, "500 GNF"},
		{50000, "50 000 GNF"},
		{1250000, "1 250 000 GNF"},
		{54999.6, "55 000 GNF"}, // arrondi au franc
		{-15000, "-15 000 GNF"},
	}

	for _, tt := range tests {
		if got := FormatGNF(tt.amount); got != tt.want {
			t.Errorf("FormatGNF(%v) = %q, attendu %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatDateFR(t *testing.T) {
	d := time.Date(2026, 8, 28, 19, 30, 0, 0, time.UTC)
	if got := FormatDateFR(d); got != "28/08/2026 19:30" {
		t.Errorf("FormatDateFR = %q", got)
	}
}

func TestFormatLongDateFR(t *testing.T) {
	// Le 14 février 2026 est un samedi.
	if got := FormatLongDateFR("2026-02-14"); got != "samedi 14 février 2026" {
		t.Errorf("FormatLongDateFR = %q", got)
	}
}

func TestFormatLongDateFREntreeInvalide(t *testing.T) {
	if got := FormatLongDateFR("pas-une-date"); got != "pas-une-date" {
		t.Errorf("une date illisible doit être renvoyée telle quelle, obtenu %q", got)
	}
}
