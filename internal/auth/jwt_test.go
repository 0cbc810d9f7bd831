package auth_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/launchjobs/jobboard-api/internal/auth"
)

func TestGenerateAndParseToken(t *testing.T) {
	userID := uuid.New()

	token, err := auth.GenerateToken(userID)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	got, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if got != userID {
		t.Errorf("ParseToken = %v, want %v", got, userID)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := auth.ParseToken("not-a-token")
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestParseToken_TamperedSignature(t *testing.T) {
	token, err := auth.GenerateToken(uuid.New())
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := auth.ParseToken(tampered); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
