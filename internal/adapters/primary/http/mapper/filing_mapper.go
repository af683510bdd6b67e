package mapper

import (
	"encoding/json"

	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/dto"
	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// FilingToResponse converts a Filing entity to a response DTO.
func FilingToResponse(f *entity.Filing) *dto.FilingResponse {
	var issues []dto.ValidationIssueResponse
	if len(f.ValidationIssues) > 0 {
		var entityIssues []entity.ValidationIssue
		if err := json.Unmarshal(f.ValidationIssues, &entityIssues); err == nil {
			issues = make([]dto.ValidationIssueResponse, len(entityIssues))
			for i, issue := range entityIssues {
				issues[i] = dto.ValidationIssueResponse{
					Field:    issue.Field,
					Message:  issue.Message,
					Severity: string(issue.Severity),
				}
			}
		}
	}
	return &dto.FilingResponse{
		ID:               f.ID,
		CourtID:          f.CourtID,
		CaseID:           f.CaseID,
		FilingType:       string(f.FilingType),
		FiledBy:          f.FiledBy,
		FiledDate:        f.FiledDate,
		Status:           string(f.Status),
		ValidationIssues: issues,
		DocumentID:       f.DocumentID,
		DocketEntryID:    f.DocketEntryID,
		CreatedAt:        f.CreatedAt,
	}
}

// FilingListItemToResponse converts a FilingListItem entity to a response DTO.
func FilingListItemToResponse(f *entity.FilingListItem) *dto.FilingListItemResponse {
	return &dto.FilingListItemResponse{
		ID:            f.ID,
		FilingType:    string(f.FilingType),
		FiledBy:       f.FiledBy,
		FiledDate:     f.FiledDate,
		Status:        string(f.Status),
		DocumentID:    f.DocumentID,
		DocketEntryID: f.DocketEntryID,
		CreatedAt:     f.CreatedAt,
	}
}

// FilingListItemsToResponses converts a slice of FilingListItem entities.
func FilingListItemsToResponses(items []*entity.FilingListItem) []*dto.FilingListItemResponse {
	out := make([]*dto.FilingListItemResponse, len(items))
	for i, item := range items {
		out[i] = FilingListItemToResponse(item)
	}
	return out
}

// ValidateFilingRequestToCommand converts a validate request to a usecase command.
func ValidateFilingRequestToCommand(courtID, caseID string, req dto.ValidateFilingRequest, filedBy string) usecase.ValidateFilingCommand {
	var sealingLevel *entity.SealingLevel
	if req.SealingLevel != nil {
		level := entity.SealingLevel(*req.SealingLevel)
		sealingLevel = &level
	}
	return usecase.ValidateFilingCommand{
		CourtID:      courtID,
		CaseID:       caseID,
		FilingType:   entity.FilingType(req.FilingType),
		DocumentType: entity.DocumentType(req.DocumentType),
		FiledBy:      filedBy,
		UploadID:     req.UploadID,
		IsSealed:     req.IsSealed,
		SealingLevel: sealingLevel,
		ReasonCode:   req.ReasonCode,
	}
}

// SubmitFilingRequestToCommand converts a submit request to a usecase command.
func SubmitFilingRequestToCommand(courtID, caseID string, req dto.SubmitFilingRequest, filedBy string) usecase.SubmitFilingCommand {
	var sealingLevel *entity.SealingLevel
	if req.SealingLevel != nil {
		level := entity.SealingLevel(*req.SealingLevel)
		sealingLevel = &level
	}
	return usecase.SubmitFilingCommand{
		CourtID:      courtID,
		CaseID:       caseID,
		DocumentType: entity.DocumentType(req.DocumentType),
		Title:        req.Title,
		FiledBy:      filedBy,
		UploadID:     req.UploadID,
		IsSealed:     req.IsSealed,
		SealingLevel: sealingLevel,
		ReasonCode:   req.ReasonCode,
	}
}

// RejectFilingRequestToIssues converts a reject request's wire issues to
// entity validation issues.
func RejectFilingRequestToIssues(req dto.RejectFilingRequest) []entity.ValidationIssue {
	issues := make([]entity.ValidationIssue, len(req.Issues))
	for i, issue := range req.Issues {
		issues[i] = entity.ValidationIssue{
			Field:    issue.Field,
			Message:  issue.Message,
			Severity: entity.ValidationSeverity(issue.Severity),
		}
	}
	return issues
}

// FilingListRequestToFilters converts a list request to port filters.
func FilingListRequestToFilters(req dto.FilingListRequest) port.FilingFilters {
	offset := (req.Page - 1) * req.PerPage
	filters := port.FilingFilters{
		Limit:  req.PerPage,
		Offset: offset,
	}
	if req.Status != "" {
		status := entity.FilingStatus(req.Status)
		filters.Status = &status
	}
	if req.FilingType != "" {
		filingType := entity.FilingType(req.FilingType)
		filters.FilingType = &filingType
	}
	if req.FiledBy != "" {
		filters.FiledBy = &req.FiledBy
	}
	return filters
}

// FilingsToPaginatedResponse converts filings to a paginated response. See
// DocketEntriesToPaginatedResponse for why Total is page-relative.
func FilingsToPaginatedResponse(items []*entity.FilingListItem, page, perPage, offset int) *dto.PaginatedFilingResponse {
	total := int64(offset + len(items))
	return &dto.PaginatedFilingResponse{
		Data:       FilingListItemsToResponses(items),
		Pagination: dto.NewPaginationMeta(total, page, perPage),
	}
}
