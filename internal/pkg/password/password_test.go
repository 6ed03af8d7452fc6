package password

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("nanda-devi-7816")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !Verify("nanda-devi-7816", hash) {
		t.Fatal("expected password to verify")
	}
	if Verify("nanda-devi-7817", hash) {
		t.Fatal("expected wrong password to fail")
	}
}

func TestHashRejectsLength(t *testing.T) {
	if _, err := Hash("short"); !errors.Is(err, ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}
	if _, err := Hash(strings.Repeat("a", MaxLength+1)); !errors.Is(err, ErrTooLong) {
		t.Fatalf("expected ErrTooLong, got %v", err)
	}
}
