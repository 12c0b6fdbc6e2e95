package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	a := NewJWTAuthenticator([]byte("super-secret"), "myflix-api", time.Hour)

	token, err := a.IssueToken("moviefan42")
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	username, err := a.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if username != "moviefan42" {
		t.Fatalf("username mismatch: got %q want %q", username, "moviefan42")
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	a := NewJWTAuthenticator([]byte("super-secret"), "myflix-api", -1*time.Second)

	token, err := a.IssueToken("moviefan42")
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if _, err := a.VerifyToken(token); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	issuing := NewJWTAuthenticator([]byte("right-secret"), "myflix-api", time.Hour)
	verifying := NewJWTAuthenticator([]byte("wrong-secret"), "myflix-api", time.Hour)

	token, err := issuing.IssueToken("moviefan42")
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if _, err := verifying.VerifyToken(token); err == nil {
		t.Fatalf("expected error for wrong secret, got nil")
	}
}

func TestVerifyToken_WrongIssuer(t *testing.T) {
	t.Parallel()

	issuing := NewJWTAuthenticator([]byte("super-secret"), "another-service", time.Hour)
	verifying := NewJWTAuthenticator([]byte("super-secret"), "myflix-api", time.Hour)

	token, err := issuing.IssueToken("moviefan42")
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if _, err := verifying.VerifyToken(token); err == nil {
		t.Fatalf("expected error for wrong issuer, got nil")
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	t.Parallel()

	a := NewJWTAuthenticator([]byte("super-secret"), "myflix-api", time.Hour)

	if _, err := a.VerifyToken("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
