package entity

import "testing"

func TestEntryTypeForDocumentType(t *testing.T) {
	cases := []struct {
		docType DocumentType
		want    EntryType
	}{
		{DocumentTypeComplaint, EntryTypeFiling},
		{DocumentTypeMotion, EntryTypeFiling},
		{DocumentTypeExhibit, EntryTypeMinuteEntry},
		{DocumentTypeOrder, EntryTypeOrder},
		{DocumentTypeNotice, EntryTypeNotice},
	}
	for _, c := range cases {
		got, err := EntryTypeForDocumentType(c.docType)
		if err != nil {
			t.Fatalf("EntryTypeForDocumentType(%s): unexpected error: %v", c.docType, err)
		}
		if got != c.want {
			t.Errorf("EntryTypeForDocumentType(%s) = %s, want %s", c.docType, got, c.want)
		}
	}
}

func TestEntryTypeForDocumentType_Unmapped(t *testing.T) {
	if _, err := EntryTypeForDocumentType(DocumentType("NOT_A_TYPE")); err != ErrInvalidDocumentType {
		t.Fatalf("expected ErrInvalidDocumentType, got %v", err)
	}
}

func TestFilingTypeForDocumentType(t *testing.T) {
	cases := []struct {
		docType DocumentType
		want    FilingType
	}{
		{DocumentTypeComplaint, FilingTypeInitial},
		{DocumentTypeAnswer, FilingTypeResponsive},
		{DocumentTypeMotion, FilingTypeMotion},
		{DocumentTypeStipulation, FilingTypeJointFiling},
	}
	for _, c := range cases {
		got, err := FilingTypeForDocumentType(c.docType)
		if err != nil {
			t.Fatalf("FilingTypeForDocumentType(%s): unexpected error: %v", c.docType, err)
		}
		if got != c.want {
			t.Errorf("FilingTypeForDocumentType(%s) = %s, want %s", c.docType, got, c.want)
		}
	}
}

func TestFilingTypeForDocumentType_UnmappedDocumentType(t *testing.T) {
	// Exhibits, transcripts, orders, judgments, and notices are never the
	// lead document of a Filing.
	for _, dt := range []DocumentType{DocumentTypeExhibit, DocumentTypeTranscript, DocumentTypeOrder, DocumentTypeJudgment, DocumentTypeNotice} {
		if _, err := FilingTypeForDocumentType(dt); err != ErrDocumentTypeFilingUnmap {
			t.Errorf("FilingTypeForDocumentType(%s): expected ErrDocumentTypeFilingUnmap, got %v", dt, err)
		}
	}
}
