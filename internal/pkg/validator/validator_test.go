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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidCNIC(t *testing.T) {
	valid := []string{"3520212345671", "35202-1234567-1", " 3520212345671 "}
	invalid := []string{"352021234567", "35202123456712", "35202-123456-11", "abc", ""}
	for _, cnic := range valid {
		if !IsValidCNIC(cnic) {
			t.Errorf("IsValidCNIC(%q) = false, want true", cnic)
		}
	}
	for _, cnic := range invalid {
		if IsValidCNIC(cnic) {
			t.Errorf("IsValidCNIC(%q) = true, want false", cnic)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:15", "13:07", "23:59"}
	invalid := []string{"24:00", "9:15", "09:60", "09:15:00", "", "noon"}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-01-05"); !ok {
		t.Error("IsValidDate(2026-01-05) = false, want true")
	}
	for _, s := range []string{"2026-13-01", "05-01-2026", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}
