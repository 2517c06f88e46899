package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/vastra/pkg/validate"
)

type reviewInput struct {
	Rating  int    `json:"rating"  validate:"required,integer,gte=1,lte=5"`
	Comment string `json:"comment" validate:"nullable,max=2000"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(reviewInput{Rating: 4, Comment: "solid product"})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(reviewInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["rating"]; !ok {
		t.Error("expected rating to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	if errs := validate.Struct(reviewInput{Rating: 6}); !validate.HasErrors(errs) {
		t.Error("expected rating > 5 to fail")
	}
	if errs := validate.Struct(reviewInput{Rating: 1}); validate.HasErrors(errs) {
		t.Errorf("expected rating 1 to pass, got: %v", errs)
	}
}

func TestInRuleKeepsMultiValueParams(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=pending,processed,shipped,max=20"`
	}
	if errs := validate.Struct(in{Status: "processed"}); validate.HasErrors(errs) {
		t.Errorf("expected processed to pass, got: %v", errs)
	}
	if errs := validate.Struct(in{Status: "bogus"}); !validate.HasErrors(errs) {
		t.Error("expected bogus status to fail the in rule")
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	type in struct {
		Site string `json:"site" validate:"nullable,min=5"`
	}
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable field to pass, got: %v", errs)
	}
	if errs := validate.Struct(in{Site: "abc"}); !validate.HasErrors(errs) {
		t.Error("expected short non-empty nullable field to fail min")
	}
}
