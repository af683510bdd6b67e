package entity

import "testing"

func TestParty_IsActive(t *testing.T) {
	p := NewParty("court-1", "case-1", "Jane Doe", PartyTypeIndividual, PartyRolePlaintiff)
	if !p.IsActive() {
		t.Fatal("freshly created party should be active")
	}

	p.Status = PartyStatusDismissed
	if p.IsActive() {
		t.Fatal("dismissed party should not be active")
	}
}

func TestParty_Validate(t *testing.T) {
	valid := NewParty("court-1", "case-1", "Jane Doe", PartyTypeIndividual, PartyRolePlaintiff)
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid party to pass, got %v", err)
	}

	missingName := NewParty("court-1", "case-1", "", PartyTypeIndividual, PartyRolePlaintiff)
	if err := missingName.Validate(); err != ErrRequiredField {
		t.Fatalf("expected ErrRequiredField for missing name, got %v", err)
	}

	badType := NewParty("court-1", "case-1", "Jane Doe", PartyType("NOT_A_TYPE"), PartyRolePlaintiff)
	if err := badType.Validate(); err != ErrInvalidPartyType {
		t.Fatalf("expected ErrInvalidPartyType, got %v", err)
	}

	badRole := NewParty("court-1", "case-1", "Jane Doe", PartyTypeIndividual, PartyRole("NOT_A_ROLE"))
	if err := badRole.Validate(); err != ErrInvalidPartyRole {
		t.Fatalf("expected ErrInvalidPartyRole, got %v", err)
	}
}

func TestRepresentation_IsActiveAndWithdraw(t *testing.T) {
	r := &Representation{
		CourtID:    "court-1",
		CaseID:     "case-1",
		PartyID:    "party-1",
		AttorneyID: "attorney-1",
	}
	if !r.IsActive() {
		t.Fatal("representation without EndedAt should be active")
	}

	r.Withdraw()
	if r.IsActive() {
		t.Fatal("representation should not be active after Withdraw")
	}
	if r.EndedAt == nil {
		t.Fatal("Withdraw should set EndedAt")
	}
}
