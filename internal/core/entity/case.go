package entity

import "time"

// Case is a docketed matter within a Court. CaseNumber is the clerk-assigned
// human-readable identifier (e.g. "1:24-cv-00123"), distinct from ID.
type Case struct {
	ID           string     `json:"id"`
	CourtID      string     `json:"courtId"`
	CaseNumber   string     `json:"caseNumber"`
	Title        string     `json:"title"`
	CaseType     CaseType   `json:"caseType"`
	Status       CaseStatus `json:"status"`
	AssignedJudge *string   `json:"assignedJudge,omitempty"`
	FiledAt      time.Time  `json:"filedAt"`
	ClosedAt     *time.Time `json:"closedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// NewCase creates a new case in OPEN status.
func NewCase(courtID, caseNumber, title string, caseType CaseType) *Case {
	return &Case{
		CourtID:    courtID,
		CaseNumber: caseNumber,
		Title:      title,
		CaseType:   caseType,
		Status:     CaseStatusOpen,
		FiledAt:    time.Now().UTC(),
		CreatedAt:  time.Now().UTC(),
	}
}

// IsOpen reports whether the case currently accepts docket activity.
func (c *Case) IsOpen() bool {
	return c.Status == CaseStatusOpen || c.Status == CaseStatusReopened
}

// TransitionTo moves the case to target status, enforcing the lifecycle.
func (c *Case) TransitionTo(target CaseStatus) error {
	if !c.Status.CanTransitionTo(target) {
		return ErrInvalidCaseStatus
	}
	c.Status = target
	now := time.Now().UTC()
	if target == CaseStatusClosed {
		c.ClosedAt = &now
	} else {
		c.ClosedAt = nil
	}
	c.UpdatedAt = &now
	return nil
}

// Validate checks structural invariants independent of persistence.
func (c *Case) Validate() error {
	if c.CourtID == "" || c.CaseNumber == "" || c.Title == "" {
		return ErrRequiredField
	}
	if !c.CaseType.IsValid() {
		return ErrInvalidCaseType
	}
	if len(c.Title) > 500 {
		return ErrFieldTooLong
	}
	return nil
}
