package entity

import "testing"

func TestCaseStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to CaseStatus
		want     bool
	}{
		{CaseStatusOpen, CaseStatusStayed, true},
		{CaseStatusOpen, CaseStatusClosed, true},
		{CaseStatusOpen, CaseStatusReopened, false},
		{CaseStatusStayed, CaseStatusOpen, true},
		{CaseStatusStayed, CaseStatusClosed, true},
		{CaseStatusClosed, CaseStatusReopened, true},
		{CaseStatusClosed, CaseStatusOpen, false},
		{CaseStatusReopened, CaseStatusClosed, true},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s.CanTransitionTo(%s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestCase_TransitionTo_SetsClosedAt(t *testing.T) {
	c := NewCase("court-1", "1:24-cv-00123", "Smith v. Jones", CaseTypeCivil)

	if err := c.TransitionTo(CaseStatusClosed); err != nil {
		t.Fatalf("TransitionTo(CLOSED): unexpected error: %v", err)
	}
	if c.ClosedAt == nil {
		t.Fatal("ClosedAt should be set after closing a case")
	}

	if err := c.TransitionTo(CaseStatusReopened); err != nil {
		t.Fatalf("TransitionTo(REOPENED): unexpected error: %v", err)
	}
	if c.ClosedAt != nil {
		t.Fatal("ClosedAt should be cleared after reopening a case")
	}
}

func TestCase_TransitionTo_Invalid(t *testing.T) {
	c := NewCase("court-1", "1:24-cv-00123", "Smith v. Jones", CaseTypeCivil)
	if err := c.TransitionTo(CaseStatusReopened); err != ErrInvalidCaseStatus {
		t.Fatalf("expected ErrInvalidCaseStatus reopening an already-open case, got %v", err)
	}
}

func TestCase_Validate(t *testing.T) {
	valid := NewCase("court-1", "1:24-cv-00123", "Smith v. Jones", CaseTypeCivil)
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid case to pass validation, got %v", err)
	}

	missingNumber := NewCase("court-1", "", "Smith v. Jones", CaseTypeCivil)
	if err := missingNumber.Validate(); err != ErrRequiredField {
		t.Fatalf("expected ErrRequiredField for missing case number, got %v", err)
	}

	badType := NewCase("court-1", "1:24-cv-00123", "Smith v. Jones", CaseType("NOT_A_TYPE"))
	if err := badType.Validate(); err != ErrInvalidCaseType {
		t.Fatalf("expected ErrInvalidCaseType, got %v", err)
	}
}
