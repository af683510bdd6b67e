package entity

import "testing"

func TestDocketEntry_VisibleTo(t *testing.T) {
	cases := []struct {
		level SealingLevel
		role  Role
		want  bool
	}{
		{SealingLevelPublic, RolePublic, true},
		{SealingLevelSealedCourtOnly, RolePublic, false},
		{SealingLevelSealedCourtOnly, RoleJudge, true},
		{SealingLevelSealedCaseParticipants, RoleAttorney, true},
		{SealingLevelSealedAttorneysOnly, RoleClerk, false},
		{SealingLevelSealedAttorneysOnly, RoleAttorney, true},
	}
	for _, c := range cases {
		e := &DocketEntry{SealingLevel: c.level}
		if got := e.VisibleTo(c.role); got != c.want {
			t.Errorf("VisibleTo(%s) at %s = %v, want %v", c.role, c.level, got, c.want)
		}
	}
}

func TestDocketEntry_Validate(t *testing.T) {
	valid := NewDocketEntry("court-1", "case-1", 1, EntryTypeFiling, "Motion to Dismiss", "clerk-1")
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid entry to pass, got %v", err)
	}

	missingActor := NewDocketEntry("court-1", "case-1", 1, EntryTypeFiling, "Motion to Dismiss", "")
	if err := missingActor.Validate(); err != ErrRequiredField {
		t.Fatalf("expected ErrRequiredField for missing enteredBy, got %v", err)
	}

	badType := NewDocketEntry("court-1", "case-1", 1, EntryType("NOT_A_TYPE"), "Motion to Dismiss", "clerk-1")
	if err := badType.Validate(); err != ErrInvalidEntryType {
		t.Fatalf("expected ErrInvalidEntryType, got %v", err)
	}
}

func TestDocketEntry_LinkDocument(t *testing.T) {
	e := NewDocketEntry("court-1", "case-1", 1, EntryTypeFiling, "Motion to Dismiss", "clerk-1")
	e.LinkDocument("doc-1")
	if e.DocumentID == nil || *e.DocumentID != "doc-1" {
		t.Fatalf("LinkDocument did not set DocumentID: %v", e.DocumentID)
	}
}
