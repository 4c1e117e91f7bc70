package validator

import "testing"

func TestValidateUsesJSONFieldNames(t *testing.T) {
	type payload struct {
		Filename string `json:"filename" validate:"required"`
		Kind     string `json:"content_type" validate:"required,max=4"`
	}

	details := Validate(&payload{Kind: "too-long"})
	if details["filename"] != "This field is required" {
		t.Fatalf("unexpected filename message: %#v", details)
	}
	if details["content_type"] != "Value is too long (max: 4)" {
		t.Fatalf("unexpected content_type message: %#v", details)
	}

	if details := Validate(&payload{Filename: "x", Kind: "ok"}); details != nil {
		t.Fatalf("expected no errors, got %#v", details)
	}
}

func TestValidateVar(t *testing.T) {
	if msg := ValidateVar("", "required"); msg != "This field is required" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if msg := ValidateVar("not-a-uuid", "uuid"); msg != "Invalid UUID" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if msg := ValidateVar("0c7f9af0-9b53-4f0d-8f2e-62f0a8bba903", "required,uuid"); msg != "" {
		t.Fatalf("expected valid, got %q", msg)
	}
}
