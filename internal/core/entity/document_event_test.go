package entity

import "testing"

func TestNewDocumentEvent(t *testing.T) {
	detail := map[string]string{"level": string(SealingLevelSealedCourtOnly)}
	e := NewDocumentEvent("court-1", "case-1", "doc-1", DocumentEventSealed, "clerk-1", detail)

	if e.CourtID != "court-1" || e.CaseID != "case-1" || e.DocumentID != "doc-1" {
		t.Fatalf("NewDocumentEvent did not set identifiers correctly: %+v", e)
	}
	if e.EventType != DocumentEventSealed {
		t.Errorf("EventType = %s, want %s", e.EventType, DocumentEventSealed)
	}
	if e.Actor != "clerk-1" {
		t.Errorf("Actor = %q, want clerk-1", e.Actor)
	}
	if e.Detail["level"] != string(SealingLevelSealedCourtOnly) {
		t.Errorf("Detail not preserved: %+v", e.Detail)
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}
