package validator

import (
	"testing"

	"user-service/internal/domain/user"
)

func strPtr(s string) *string {
	return &s
}

func TestValidateStruct_EmailAcceptsLocalDomains(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ivan@test", true},
		{"ivan@test.com", true},
		{"ivan", false},
		{"@test", false},
		{"ivan@", false},
		{"iv an@test", false},
	}

	for _, tt := range tests {
		req := user.CreateUserRequest{Username: "ivan", Email: tt.email}
		err := ValidateStruct(req)
		if tt.valid && err != nil {
			t.Errorf("Expected %q to be accepted, got %v", tt.email, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("Expected %q to be rejected", tt.email)
		}
	}
}

func TestValidateStruct_UpdateNilFieldsSkipped(t *testing.T) {
	if err := ValidateStruct(user.UpdateUserRequest{}); err != nil {
		t.Errorf("Expected an empty update to pass validation, got %v", err)
	}
}

func TestValidateStruct_UpdateBlankFieldsRejected(t *testing.T) {
	if err := ValidateStruct(user.UpdateUserRequest{Username: strPtr("")}); err == nil {
		t.Error("Expected a blank username to be rejected")
	}
	if err := ValidateStruct(user.UpdateUserRequest{Email: strPtr("")}); err == nil {
		t.Error("Expected a blank email to be rejected")
	}
	if err := ValidateStruct(user.UpdateUserRequest{Email: strPtr("not-an-email")}); err == nil {
		t.Error("Expected a malformed email to be rejected")
	}
	if err := ValidateStruct(user.UpdateUserRequest{Username: strPtr("ivan")}); err != nil {
		t.Errorf("Expected a non-blank username to pass, got %v", err)
	}
}
