package service

import "testing"

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"alice@example.com",
		"a.b+tag@sub.domain.co",
		"USER_99%x@host-name.io",
	}
	for _, e := range valid {
		if !validEmail(e) {
			t.Errorf("validEmail(%q) = false, want true", e)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"no-domain@",
		"no-tld@host",
		"spaces in@local.com",
		"trailing@dot.c",
	}
	for _, e := range invalid {
		if validEmail(e) {
			t.Errorf("validEmail(%q) = true, want false", e)
		}
	}
}

func TestValidPassword(t *testing.T) {
	t.Parallel()

	valid := []string{
		"Str0ng!pw",
		"aaaa1111&",
		"A1@A1@A1",
	}
	for _, p := range valid {
		if !validPassword(p) {
			t.Errorf("validPassword(%q) = false, want true", p)
		}
	}

	invalid := []string{
		"abc",        // too short
		"abcdefgh",   // no digit, no symbol
		"abcd1234",   // no symbol
		"abcd!!!!",   // no digit
		"12345678!",  // no letter
		"Str0ng pw!", // space is outside the allowed set
		"Str0ng#pw",  // # is outside the allowed set
	}
	for _, p := range invalid {
		if validPassword(p) {
			t.Errorf("validPassword(%q) = true, want false", p)
		}
	}
}
