package investments

import (
	"encoding/json"
	"testing"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		money Money
		want  string
	}{
		{M(1234.5, "ILS"), "₪1,234.50"},
		{M(0, "ILS"), "₪0.00"},
		{M(-99.99, "ILS"), "-₪99.99"},
		{M(1000000, "USD"), "$1,000,000.00"},
	}
	for _, tc := range tests {
		if got := tc.money.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(0, "ILS").SignedString(); got != "-" {
		t.Errorf("zero SignedString() = %q, want %q", got, "-")
	}
	if got := M(10, "ILS").SignedString(); got != "+₪10.00" {
		t.Errorf("positive SignedString() = %q, want %q", got, "+₪10.00")
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(100, "ILS")
	b := M(40.5, "ILS")
	if got := a.Sub(b); !got.Equal(M(59.5, "ILS")) {
		t.Errorf("Sub = %v", got)
	}
	// the zero Money has a weak currency and adopts the other operand's.
	var zero Money
	if got := zero.Add(a); got.Currency() != "ILS" {
		t.Errorf("weak currency add: got currency %q, want ILS", got.Currency())
	}
}

func TestMoneyJSON(t *testing.T) {
	got, err := json.Marshal(M(1234.567, "ILS"))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"currency":"ILS","amount":1234.57}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(21).String(); got != "21.00%" {
		t.Errorf("String() = %q, want %q", got, "21.00%")
	}
	if got := AsPercent(0.21); !got.Equal(Percent(21)) {
		t.Errorf("AsPercent(0.21) = %v, want 21", got)
	}
	if got := AsPercent(-0.05).SignedString(); got != "-5.00%" {
		t.Errorf("SignedString() = %q, want %q", got, "-5.00%")
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString() = %q, want %q", got, "-")
	}
}

func TestInterestPolicy(t *testing.T) {
	for _, p := range []InterestPolicy{DeductBalanceOnly, DeductBalanceAndInterest} {
		got, err := ParseInterestPolicy(p.String())
		if err != nil {
			t.Fatalf("ParseInterestPolicy(%q): %v", p, err)
		}
		if got != p {
			t.Errorf("ParseInterestPolicy(%q) = %v, want %v", p, got, p)
		}
	}
	if _, err := ParseInterestPolicy("both"); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}
