package validation

import (
	"strings"
	"testing"
)

func strptr(s string) *string { return &s }

func validInput() UserInput {
	return UserInput{
		Name:                 "Example User",
		Email:                "user@example.com",
		Password:             "foobar",
		PasswordConfirmation: strptr("foobar"),
	}
}

func TestValidateUserAccepts(t *testing.T) {
	if errs := ValidateUser(validInput()); errs != nil {
		t.Fatalf("expected valid input, got %v", errs)
	}
}

func TestValidateUserName(t *testing.T) {
	in := validInput()
	in.Name = " "
	errs := ValidateUser(in)
	if errs == nil || len(errs.Fields["name"]) == 0 {
		t.Fatal("blank name should be invalid")
	}

	in = validInput()
	in.Name = strings.Repeat("a", 51)
	errs = ValidateUser(in)
	if errs == nil || len(errs.Fields["name"]) == 0 {
		t.Fatal("51-char name should be invalid")
	}

	in = validInput()
	in.Name = strings.Repeat("a", 50)
	if errs := ValidateUser(in); errs != nil {
		t.Fatalf("50-char name should be valid, got %v", errs)
	}
}

func TestValidateUserEmailFormats(t *testing.T) {
	invalid := []string{
		"user@lol,com",
		"user_at_lol.org",
		"exampe.lol@lol@teste.com",
		"teste@teste+manhoso.com",
		"foo@bar_baz.com",
	}
	for _, addr := range invalid {
		in := validInput()
		in.Email = addr
		if errs := ValidateUser(in); errs == nil {
			t.Errorf("address %q should be invalid", addr)
		}
	}

	valid := []string{
		"user@lol.COM",
		"A_US-ER@f.b.org",
		"first.lst@foo.jp",
		"a+b@baz.cn",
	}
	for _, addr := range valid {
		in := validInput()
		in.Email = addr
		if errs := ValidateUser(in); errs != nil {
			t.Errorf("address %q should be valid, got %v", addr, errs)
		}
	}
}

func TestValidateUserPassword(t *testing.T) {
	in := validInput()
	in.Password = "aaaaa"
	in.PasswordConfirmation = strptr("aaaaa")
	errs := ValidateUser(in)
	if errs == nil || len(errs.Fields["password"]) == 0 {
		t.Fatal("5-char password should be invalid")
	}

	in = validInput()
	in.PasswordConfirmation = strptr("mismatch")
	errs = ValidateUser(in)
	if errs == nil || len(errs.Fields["password_confirmation"]) == 0 {
		t.Fatal("mismatched confirmation should be invalid")
	}

	// A nil confirmation is a mismatch, never silently accepted.
	in = validInput()
	in.PasswordConfirmation = nil
	errs = ValidateUser(in)
	if errs == nil || len(errs.Fields["password_confirmation"]) == 0 {
		t.Fatal("nil confirmation should be invalid")
	}
}

func TestValidateUserCollectsAllViolations(t *testing.T) {
	in := UserInput{
		Name:                 " ",
		Email:                "not-an-email",
		Password:             "short",
		PasswordConfirmation: strptr("different"),
	}
	errs := ValidateUser(in)
	if errs == nil {
		t.Fatal("expected violations")
	}
	for _, field := range []string{"name", "email", "password", "password_confirmation"} {
		if len(errs.Fields[field]) == 0 {
			t.Errorf("expected a violation on %q, got %v", field, errs.Fields)
		}
	}
}
