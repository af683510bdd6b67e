package dto

import "github.com/fedcourts/docket-engine/internal/core/entity"

// PaginationMeta describes a page of a larger result set.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginationMeta computes a PaginationMeta from a total count and the
// page/perPage the caller requested.
func NewPaginationMeta(total int64, page, perPage int) PaginationMeta {
	totalPages := int(total) / perPage
	if int(total)%perPage > 0 {
		totalPages++
	}
	return PaginationMeta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ErrorResponse is the shape returned for every non-validation error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// NewErrorResponse wraps a domain error for the client.
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}

// ValidationIssueResponse is a single field-level validation finding.
type ValidationIssueResponse struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// ValidationErrorResponse carries every issue found while validating a
// filing, so the filer sees the whole list in one round trip instead of
// one field at a time.
type ValidationErrorResponse struct {
	Error  string                    `json:"error"`
	Issues []ValidationIssueResponse `json:"issues"`
}

// NewValidationErrorResponse converts a ValidationError into its response DTO.
func NewValidationErrorResponse(verr *entity.ValidationError) ValidationErrorResponse {
	issues := make([]ValidationIssueResponse, len(verr.Issues))
	for i, issue := range verr.Issues {
		issues[i] = ValidationIssueResponse{
			Field:    issue.Field,
			Message:  issue.Message,
			Severity: string(issue.Severity),
		}
	}
	return ValidationErrorResponse{
		Error:  verr.Error(),
		Issues: issues,
	}
}
