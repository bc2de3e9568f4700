package models

import "testing"

func TestParseOutcomeEncodings(t *testing.T) {
	cases := []struct {
		raw  string
		want Outcome
	}{
		{"made", OutcomeMade},
		{"Made", OutcomeMade},
		{" MADE ", OutcomeMade},
		{"1", OutcomeMade},
		{"true", OutcomeMade},
		{"missed", OutcomeMissed},
		{"miss", OutcomeMissed},
		{"0", OutcomeMissed},
		{"false", OutcomeMissed},
	}
	for _, tc := range cases {
		got, err := ParseOutcome(tc.raw)
		if err != nil {
			t.Fatalf("ParseOutcome(%q) returned error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseOutcome(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestParseOutcomeRejectsUnknownEncoding(t *testing.T) {
	if _, err := ParseOutcome("banked"); err == nil {
		t.Fatal("expected an error for an unknown encoding")
	}
}

func TestOutcomeJSON(t *testing.T) {
	b, err := OutcomeMade.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"made"` {
		t.Fatalf("expected \"made\", got %s", b)
	}
}
