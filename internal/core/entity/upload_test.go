package entity

import (
	"testing"
	"time"
)

func TestFilingUpload_IsExpired(t *testing.T) {
	u := NewFilingUpload("court-1", "case-1", UploadPurposeFiling, "key", "exhibit.pdf", "application/pdf", 1024, "attorney-1")
	if u.IsExpired() {
		t.Fatal("freshly staged upload should not be expired")
	}

	u.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	if !u.IsExpired() {
		t.Fatal("upload past its expiry window should be expired")
	}
}

func TestFilingUpload_Finalize(t *testing.T) {
	u := NewFilingUpload("court-1", "case-1", UploadPurposeFiling, "key", "exhibit.pdf", "application/pdf", 1024, "attorney-1")

	if err := u.Finalize("abc123"); err != nil {
		t.Fatalf("Finalize: unexpected error: %v", err)
	}
	if !u.Finalized || u.Checksum != "abc123" || u.FinalizedAt == nil {
		t.Fatalf("Finalize did not update state correctly: %+v", u)
	}

	if err := u.Finalize("def456"); err != ErrUploadAlreadyFinal {
		t.Fatalf("expected ErrUploadAlreadyFinal finalizing twice, got %v", err)
	}
}

func TestFilingUpload_Finalize_Expired(t *testing.T) {
	u := NewFilingUpload("court-1", "case-1", UploadPurposeAttachment, "key", "exhibit.pdf", "application/pdf", 1024, "attorney-1")
	u.ExpiresAt = time.Now().UTC().Add(-time.Minute)

	if err := u.Finalize("abc123"); err != ErrUploadExpired {
		t.Fatalf("expected ErrUploadExpired, got %v", err)
	}
}
