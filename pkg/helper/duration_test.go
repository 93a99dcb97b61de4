package helper

import "testing"

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{125.7, "2:05"},
		{45, "0:45"},
		{60, "1:00"},
		{0, "0:00"},
		{-3, "0:00"},
		{3725, "62:05"}, // saat yok, dakika büyümeye devam eder
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.seconds); got != tc.want {
			t.Fatalf("FormatDuration(%v) = %q, beklenen %q", tc.seconds, got, tc.want)
		}
	}
}

func TestParseBoolish(t *testing.T) {
	truthy := []string{"on", "ON", "true", "True", "1", " on "}
	for _, v := range truthy {
		if !ParseBoolish(v) {
			t.Fatalf("ParseBoolish(%q) false döndü", v)
		}
	}
	falsy := []string{"", "off", "false", "0", "evet"}
	for _, v := range falsy {
		if ParseBoolish(v) {
			t.Fatalf("ParseBoolish(%q) true döndü", v)
		}
	}
}
