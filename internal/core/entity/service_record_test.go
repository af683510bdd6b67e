package entity

import "testing"

func TestServiceRecord_Complete(t *testing.T) {
	r := NewServiceRecord("court-1", "case-1", "doc-1", "party-1", ServiceMethodNEF)
	if r.Attempts != 0 || r.Successful {
		t.Fatalf("freshly seeded record should be pending, got %+v", r)
	}

	cert := "Certificate of Service filed electronically."
	r.Complete("clerk-1", &cert)

	if r.Attempts != 1 {
		t.Errorf("Complete should increment Attempts, got %d", r.Attempts)
	}
	if !r.Successful {
		t.Error("Complete should mark Successful")
	}
	if r.ServedBy != "clerk-1" {
		t.Errorf("ServedBy = %q, want clerk-1", r.ServedBy)
	}
	if !r.ProofOfServiceFiled || r.CertificateText == nil || *r.CertificateText != cert {
		t.Errorf("Complete with certificate should set ProofOfServiceFiled and CertificateText, got %+v", r)
	}
}

func TestServiceRecord_Complete_NoCertificate(t *testing.T) {
	r := NewServiceRecord("court-1", "case-1", "doc-1", "party-1", ServiceMethodMail)
	r.Complete("clerk-1", nil)

	if r.ProofOfServiceFiled {
		t.Error("Complete without a certificate should not set ProofOfServiceFiled")
	}
	if r.CertificateText != nil {
		t.Error("Complete without a certificate should leave CertificateText nil")
	}
}

func TestServiceRecord_RecordFailedAttempt(t *testing.T) {
	r := NewServiceRecord("court-1", "case-1", "doc-1", "party-1", ServiceMethodNEF)
	r.RecordFailedAttempt()
	r.RecordFailedAttempt()

	if r.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", r.Attempts)
	}
	if r.Successful {
		t.Error("RecordFailedAttempt should not mark Successful")
	}
}

func TestNef_MarkDeliveredAndFailed(t *testing.T) {
	n := NewNef("court-1", "case-1", "filing-1", "entry-1", "<html></html>", []NefRecipient{
		{Name: "Jane Doe"},
	})
	if n.Status != NefStatusPending {
		t.Fatalf("new NEF should start pending, got %s", n.Status)
	}

	n.MarkDelivered()
	if n.Status != NefStatusDelivered || n.DeliveredAt == nil {
		t.Fatalf("MarkDelivered did not update state correctly: %+v", n)
	}

	failed := NewNef("court-1", "case-1", "filing-2", "entry-2", "<html></html>", nil)
	failed.MarkFailed()
	if failed.Status != NefStatusFailed {
		t.Fatalf("MarkFailed should set Status to failed, got %s", failed.Status)
	}
}
