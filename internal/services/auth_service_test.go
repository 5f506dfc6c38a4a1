package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
	"tripify/internal/models/request_models"
	"tripify/pkg/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo)
	ctx := context.Background()

	token, err := svc.Register(ctx, request_models.SignUpRequest{
		Email:    "alice@example.com",
		Password: "password123",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token.AccessToken == "" || token.TokenType != "bearer" {
		t.Fatalf("unexpected token response: %+v", token)
	}

	stored, err := userRepo.FindByEmail(ctx, "alice@example.com")
	if err != nil || stored == nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if stored.PasswordHash == "password123" {
		t.Fatal("password stored in plaintext")
	}

	if _, err := svc.Login(ctx, request_models.LoginRequest{Email: "alice@example.com", Password: "password123"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo)
	ctx := context.Background()

	req := request_models.SignUpRequest{Email: "bob@example.com", Password: "password123", Name: "Bob"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestRegisterLosesInsertRace(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.createErr = gorm.ErrDuplicatedKey
	svc := NewAuthService(userRepo)

	_, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Email: "carol@example.com", Password: "password123", Name: "Carol",
	})
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists on duplicate key, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, request_models.SignUpRequest{
		Email: "dave@example.com", Password: "password123", Name: "Dave",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "dave@example.com", password: "wrong-password"},
		{name: "unknown email", email: "nobody@example.com", password: "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, request_models.LoginRequest{Email: tt.email, Password: tt.password})
			if !errors.Is(err, utils.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}
