package entity

import "testing"

func TestFilingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to FilingStatus
		want     bool
	}{
		{FilingStatusPending, FilingStatusFiled, true},
		{FilingStatusPending, FilingStatusRejected, true},
		{FilingStatusPending, FilingStatusAccepted, false},
		{FilingStatusFiled, FilingStatusUnderReview, true},
		{FilingStatusFiled, FilingStatusAccepted, false},
		{FilingStatusUnderReview, FilingStatusAccepted, true},
		{FilingStatusUnderReview, FilingStatusRejected, true},
		{FilingStatusUnderReview, FilingStatusReturned, true},
		{FilingStatusReturned, FilingStatusPending, true},
		{FilingStatusReturned, FilingStatusAccepted, false},
		{FilingStatusAccepted, FilingStatusPending, false},
		{FilingStatusRejected, FilingStatusPending, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s.CanTransitionTo(%s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestFilingStatus_IsTerminal(t *testing.T) {
	terminal := []FilingStatus{FilingStatusAccepted, FilingStatusRejected}
	nonTerminal := []FilingStatus{FilingStatusPending, FilingStatusFiled, FilingStatusUnderReview, FilingStatusReturned}

	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range nonTerminal {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestFiling_Lifecycle(t *testing.T) {
	f := NewFiling("court-1", "case-1", FilingTypeMotion, "attorney-1")
	if f.Status != FilingStatusPending {
		t.Fatalf("new filing should start PENDING, got %s", f.Status)
	}

	if err := f.MarkFiled("doc-1", "entry-1"); err != nil {
		t.Fatalf("MarkFiled: unexpected error: %v", err)
	}
	if f.Status != FilingStatusFiled || f.DocumentID == nil || f.DocketEntryID == nil {
		t.Fatalf("MarkFiled did not update state correctly: %+v", f)
	}

	if err := f.FlagForReview(); err != nil {
		t.Fatalf("FlagForReview: unexpected error: %v", err)
	}

	if err := f.Accept(); err != nil {
		t.Fatalf("Accept: unexpected error: %v", err)
	}
	if !f.Status.IsTerminal() {
		t.Fatalf("expected terminal status after Accept, got %s", f.Status)
	}

	if err := f.Reject(nil); err != ErrInvalidFilingStatus {
		t.Fatalf("expected ErrInvalidFilingStatus rejecting an already-accepted filing, got %v", err)
	}
}

func TestFiling_ReturnAndResubmit(t *testing.T) {
	f := NewFiling("court-1", "case-1", FilingTypeMotion, "attorney-1")
	_ = f.MarkFiled("doc-1", "entry-1")
	_ = f.FlagForReview()

	issues := []byte(`{"missing": "certificate of service"}`)
	if err := f.Return(issues); err != nil {
		t.Fatalf("Return: unexpected error: %v", err)
	}
	if f.Status != FilingStatusReturned {
		t.Fatalf("expected RETURNED, got %s", f.Status)
	}

	if err := f.Resubmit(); err != nil {
		t.Fatalf("Resubmit: unexpected error: %v", err)
	}
	if f.Status != FilingStatusPending {
		t.Fatalf("expected PENDING after resubmit, got %s", f.Status)
	}
}
