package services

import (
	"errors"
	"testing"
	"time"
)

func newTokenService(ttl time.Duration) TokenService {
	return TokenService{
		Secret:     []byte("test-secret"),
		Issuer:     "elearn",
		TTL:        ttl,
		BcryptCost: 4,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTokenService(time.Hour)
	token, err := svc.CreateToken("user-1", "t@example.com", "TEACHER")
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}
	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if got := ClaimString(claims, "sub"); got != "user-1" {
		t.Errorf("sub = %q, want %q", got, "user-1")
	}
	if got := ClaimString(claims, "email"); got != "t@example.com" {
		t.Errorf("email = %q, want %q", got, "t@example.com")
	}
	if got := ClaimString(claims, "role"); got != "TEACHER" {
		t.Errorf("role = %q, want %q", got, "TEACHER")
	}
}

func TestParseTokenErrors(t *testing.T) {
	svc := newTokenService(time.Hour)
	valid, err := svc.CreateToken("user-1", "t@example.com", "TEACHER")
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}
	expiredSvc := newTokenService(-time.Hour)
	expired, err := expiredSvc.CreateToken("user-1", "t@example.com", "TEACHER")
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}
	otherSecret := TokenService{Secret: []byte("other"), Issuer: "elearn", TTL: time.Hour}
	misSigned, err := otherSecret.CreateToken("user-1", "t@example.com", "TEACHER")
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}
	otherIssuer := TokenService{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Hour}
	wrongIssuer, err := otherIssuer.CreateToken("user-1", "t@example.com", "TEACHER")
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty", token: "", wantErr: ErrInvalidToken},
		{name: "garbage", token: "not-a-token", wantErr: ErrInvalidToken},
		{name: "expired", token: expired, wantErr: ErrTokenExpired},
		{name: "wrong secret", token: misSigned, wantErr: ErrInvalidToken},
		{name: "wrong issuer", token: wrongIssuer, wantErr: ErrInvalidToken},
		{name: "valid", token: valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseToken() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	svc := newTokenService(time.Hour)
	hash, err := svc.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash equals raw password")
	}
	if !svc.VerifyPassword("s3cret", hash) {
		t.Error("VerifyPassword() rejected correct password")
	}
	if svc.VerifyPassword("wrong", hash) {
		t.Error("VerifyPassword() accepted wrong password")
	}

	second, err := svc.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == second {
		t.Error("two hashes of the same password are identical, salt missing")
	}
}
