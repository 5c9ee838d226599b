package service

import (
	"testing"
	"time"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
)

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name      string
		req       models.RegisterRequest
		wantField string
	}{
		{
			name:      "missing email",
			req:       models.RegisterRequest{Password: "secret1", Name: "Ana"},
			wantField: "email",
		},
		{
			name:      "email without at sign",
			req:       models.RegisterRequest{Email: "ana.example.com", Password: "secret1", Name: "Ana"},
			wantField: "email",
		},
		{
			name:      "short password",
			req:       models.RegisterRequest{Email: "ana@example.com", Password: "abc", Name: "Ana"},
			wantField: "password",
		},
		{
			name:      "missing name",
			req:       models.RegisterRequest{Email: "ana@example.com", Password: "secret1"},
			wantField: "name",
		},
		{
			name:      "unknown avatar",
			req:       models.RegisterRequest{Email: "ana@example.com", Password: "secret1", Name: "Ana", Avatar: "goliath"},
			wantField: "avatar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRegister(&tt.req)
			if errs.Empty() {
				t.Fatal("expected validation errors, got none")
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("expected error on field %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidateRegisterNormalizesFields(t *testing.T) {
	req := models.RegisterRequest{
		Email:    "  Ana@Example.COM ",
		Password: "secret1",
		Name:     "  Ana  ",
	}
	errs := ValidateRegister(&req)
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if req.Email != "ana@example.com" {
		t.Errorf("email not normalized: %q", req.Email)
	}
	if req.Name != "Ana" {
		t.Errorf("name not trimmed: %q", req.Name)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, nil, nil, "test-secret", time.Hour)
	account := &models.Account{ID: "user-1", Email: "ana@example.com"}

	token, err := svc.signToken(account)
	if err != nil {
		t.Fatalf("signToken: %v", err)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("Email = %q, want ana@example.com", claims.Email)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	signer := NewAuthService(nil, nil, nil, "secret-a", time.Hour)
	verifier := NewAuthService(nil, nil, nil, "secret-b", time.Hour)

	token, err := signer.signToken(&models.Account{ID: "user-1"})
	if err != nil {
		t.Fatalf("signToken: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Error("expected parse failure with wrong secret")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	svc := NewAuthService(nil, nil, nil, "test-secret", -time.Minute)

	token, err := svc.signToken(&models.Account{ID: "user-1"})
	if err != nil {
		t.Fatalf("signToken: %v", err)
	}
	if _, err := svc.ParseToken(token); err == nil {
		t.Error("expected parse failure for expired token")
	}
}
