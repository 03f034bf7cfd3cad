package crypto

import (
	"errors"
	"strings"
	"testing"
)

// cheapParams keeps the test suite fast; the format is the same.
var cheapParams = HashParams{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  8,
	KeyLength:   16,
}

func TestHashPasswordDefaultParamsFormat(t *testing.T) {
	hash, err := HashPassword("Tr0ub4dor&3", DefaultHashParams())
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("HashPassword() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("HashPassword() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[2] != "v=19" {
		t.Errorf("HashPassword() version = %q, want %q", parts[2], "v=19")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("HashPassword() params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	password, err := Generate(20, all...)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	hash, err := HashPassword(password, cheapParams)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if !strings.Contains(hash, "$m=1024,t=1,p=1$") {
		t.Errorf("HashPassword() did not encode custom params: %q", hash)
	}

	match, err := VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword() unexpected error: %v", err)
	}
	if !match {
		t.Error("VerifyPassword() returned false for the hashed password")
	}

	match, err = VerifyPassword(password+"x", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() unexpected error: %v", err)
	}
	if match {
		t.Error("VerifyPassword() returned true for a different password")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	hash1, err := HashPassword("same-password", cheapParams)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	hash2, err := HashPassword("same-password", cheapParams)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if hash1 == hash2 {
		t.Error("HashPassword() produced identical hashes for same password")
	}
}

func TestHashPasswordRejectsZeroParams(t *testing.T) {
	_, err := HashPassword("pw", HashParams{})
	if !errors.Is(err, ErrInvalidHashParams) {
		t.Errorf("HashPassword() error = %v, want %v", err, ErrInvalidHashParams)
	}
}

func TestVerifyPasswordInvalidHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{"garbage", "invalid-hash-format", ErrInvalidHashFormat},
		{"wrong algorithm", "$argon2i$v=19$m=1024,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5", ErrInvalidHashFormat},
		{"wrong version", "$argon2id$v=16$m=1024,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5", ErrIncompatibleVersion},
		{"bad params", "$argon2id$v=19$m=x,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5", ErrInvalidHashFormat},
		{"zero iterations", "$argon2id$v=19$m=1024,t=0,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5", ErrInvalidHashFormat},
		{"bad salt", "$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5a2V5a2V5a2V5", ErrInvalidHashFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyPassword("password", tt.encoded)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("VerifyPassword() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
