package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsPlausibleEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "Aná@Example.com", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@domain", "two@@example.com", " ", ""}
	for _, email := range valid {
		if !IsPlausibleEmail(email) {
			t.Errorf("IsPlausibleEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsPlausibleEmail(email) {
			t.Errorf("IsPlausibleEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-03-01"); !ok {
		t.Error("IsValidDate(2024-03-01) = false, want true")
	}
	for _, bad := range []string{"", "01/03/2024", "2024-13-01", "not a date"} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email must contain @ and ."},
		{Field: "salary", Message: "salary must not be negative"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["email"] != "email must contain @ and ." {
		t.Errorf("ToMap()[email] = %q", m["email"])
	}
	if errs.Error() == "" {
		t.Error("Error() is empty")
	}
}
