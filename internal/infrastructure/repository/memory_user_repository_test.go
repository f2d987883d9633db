package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"user-service/internal/domain/user"
)

func TestMemoryUserRepository_Lookups(t *testing.T) {
	repo := NewMemoryUserRepository()
	u := user.NewUser("ivan", "ivan@test", user.NewDate(2018, time.January, 1))

	if err := repo.Save(context.Background(), u); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	byID, err := repo.FindByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if byID == nil || byID.ID != u.ID {
		t.Error("Expected FindByID to return the saved user")
	}

	byUsername, err := repo.FindByUsername(context.Background(), "ivan")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if byUsername == nil || byUsername.ID != u.ID {
		t.Error("Expected FindByUsername to return the saved user")
	}

	byEmail, err := repo.FindByEmail(context.Background(), "ivan@test")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if byEmail == nil || byEmail.ID != u.ID {
		t.Error("Expected FindByEmail to return the saved user")
	}

	missing, err := repo.FindByEmail(context.Background(), "ivan2@test")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if missing != nil {
		t.Error("Expected nil for an unknown email")
	}
}

func TestMemoryUserRepository_SaveRejectsDuplicates(t *testing.T) {
	repo := NewMemoryUserRepository()
	first := user.NewUser("ivan", "ivan@test", user.Date{})
	if err := repo.Save(context.Background(), first); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	dupUsername := user.NewUser("ivan", "other@test", user.Date{})
	if err := repo.Save(context.Background(), dupUsername); !errors.Is(err, user.ErrDataDuplicated) {
		t.Errorf("Expected ErrDataDuplicated for duplicate username, got %v", err)
	}

	dupEmail := user.NewUser("other", "ivan@test", user.Date{})
	if err := repo.Save(context.Background(), dupEmail); !errors.Is(err, user.ErrDataDuplicated) {
		t.Errorf("Expected ErrDataDuplicated for duplicate email, got %v", err)
	}
}

func TestMemoryUserRepository_SaveSelfUpdateIsNotAConflict(t *testing.T) {
	repo := NewMemoryUserRepository()
	u := user.NewUser("ivan", "ivan@test", user.Date{})
	if err := repo.Save(context.Background(), u); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Saving the same record again keeps its own username and email.
	if err := repo.Save(context.Background(), u); err != nil {
		t.Fatalf("Expected self-update to succeed, got %v", err)
	}
}

func TestMemoryUserRepository_Delete(t *testing.T) {
	repo := NewMemoryUserRepository()
	u := user.NewUser("ivan", "ivan@test", user.Date{})
	if err := repo.Save(context.Background(), u); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := repo.Delete(context.Background(), u); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	found, err := repo.FindByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if found != nil {
		t.Error("Expected the user to be gone after delete")
	}
}
