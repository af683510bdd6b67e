package entity

import "testing"

func TestDocument_VisibleTo(t *testing.T) {
	cases := []struct {
		name  string
		level SealingLevel
		role  Role
		want  bool
	}{
		{"public visible to anyone", SealingLevelPublic, RolePublic, true},
		{"court-only hidden from public", SealingLevelSealedCourtOnly, RolePublic, false},
		{"court-only hidden from attorney", SealingLevelSealedCourtOnly, RoleAttorney, false},
		{"court-only visible to clerk", SealingLevelSealedCourtOnly, RoleClerk, true},
		{"court-only visible to judge", SealingLevelSealedCourtOnly, RoleJudge, true},
		{"case-participants visible to attorney", SealingLevelSealedCaseParticipants, RoleAttorney, true},
		{"case-participants hidden from public", SealingLevelSealedCaseParticipants, RolePublic, false},
		{"attorneys-only hidden from clerk", SealingLevelSealedAttorneysOnly, RoleClerk, false},
		{"attorneys-only visible to attorney", SealingLevelSealedAttorneysOnly, RoleAttorney, true},
		{"attorneys-only visible to admin", SealingLevelSealedAttorneysOnly, RoleAdmin, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			doc := &Document{SealingLevel: c.level}
			if got := doc.VisibleTo(c.role); got != c.want {
				t.Errorf("VisibleTo(%s) at level %s = %v, want %v", c.role, c.level, got, c.want)
			}
		})
	}
}

func TestDocument_SealUnseal(t *testing.T) {
	doc := NewDocument("court-1", "case-1", "Motion to Dismiss", DocumentTypeMotion, "key", "checksum", "application/pdf", 100, "attorney-1")

	if err := doc.Seal(SealingLevelSealedCourtOnly, "PRIVACY", nil); err != nil {
		t.Fatalf("Seal: unexpected error: %v", err)
	}
	if !doc.IsSealed || doc.SealingLevel != SealingLevelSealedCourtOnly {
		t.Fatalf("Seal did not apply: sealed=%v level=%s", doc.IsSealed, doc.SealingLevel)
	}

	if err := doc.Seal(SealingLevelSealedCourtOnly, "PRIVACY", nil); err != ErrDocumentAlreadySealed {
		t.Fatalf("expected ErrDocumentAlreadySealed re-sealing at the same level, got %v", err)
	}

	if err := doc.Unseal(); err != nil {
		t.Fatalf("Unseal: unexpected error: %v", err)
	}
	if doc.IsSealed || doc.SealingLevel != SealingLevelPublic {
		t.Fatalf("Unseal did not reset: sealed=%v level=%s", doc.IsSealed, doc.SealingLevel)
	}

	if err := doc.Unseal(); err != ErrDocumentNotSealed {
		t.Fatalf("expected ErrDocumentNotSealed on an already-public document, got %v", err)
	}
}

func TestDocument_MarkReplacedBy(t *testing.T) {
	doc := NewDocument("court-1", "case-1", "Original Brief", DocumentTypeBrief, "key", "checksum", "application/pdf", 100, "attorney-1")

	if err := doc.MarkReplacedBy("doc-2"); err != nil {
		t.Fatalf("MarkReplacedBy: unexpected error: %v", err)
	}
	if doc.ReplacedByDocumentID == nil || *doc.ReplacedByDocumentID != "doc-2" {
		t.Fatalf("ReplacedByDocumentID not set correctly: %v", doc.ReplacedByDocumentID)
	}

	if err := doc.MarkReplacedBy("doc-3"); err != ErrDocumentAlreadyReplacedOther {
		t.Fatalf("expected ErrDocumentAlreadyReplacedOther on a second replacement, got %v", err)
	}
}

func TestDocument_Strike(t *testing.T) {
	doc := NewDocument("court-1", "case-1", "Exhibit A", DocumentTypeExhibit, "key", "checksum", "application/pdf", 100, "clerk-1")

	if err := doc.Strike(); err != nil {
		t.Fatalf("Strike: unexpected error: %v", err)
	}
	if !doc.IsStricken {
		t.Fatal("Strike did not set IsStricken")
	}
	if err := doc.Strike(); err != ErrDocumentAlreadyStruck {
		t.Fatalf("expected ErrDocumentAlreadyStruck, got %v", err)
	}
}
