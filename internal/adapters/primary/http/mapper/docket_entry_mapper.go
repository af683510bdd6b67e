package mapper

import (
	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/dto"
	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// DocketEntryToResponse converts a DocketEntry entity to a response DTO.
func DocketEntryToResponse(e *entity.DocketEntry) *dto.DocketEntryResponse {
	return &dto.DocketEntryResponse{
		ID:                  e.ID,
		CourtID:             e.CourtID,
		CaseID:              e.CaseID,
		EntryNumber:         e.EntryNumber,
		EntryType:           string(e.EntryType),
		Description:         e.Description,
		DocumentID:          e.DocumentID,
		EnteredBy:           e.EnteredBy,
		EntryDate:           e.EntryDate,
		IsSealed:            e.IsSealed,
		IsExParte:           e.IsExParte,
		SealingLevel:        string(e.SealingLevel),
		RelatedEntryNumbers: e.RelatedEntryNumbers,
		ServiceListPartyIDs: e.ServiceListPartyIDs,
		CreatedAt:           e.CreatedAt,
	}
}

// DocketEntriesToResponses converts a slice of DocketEntry entities.
func DocketEntriesToResponses(entries []*entity.DocketEntry) []*dto.DocketEntryResponse {
	out := make([]*dto.DocketEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = DocketEntryToResponse(e)
	}
	return out
}

// CreateDocketEntryRequestToCommand converts a create request to a usecase command.
func CreateDocketEntryRequestToCommand(courtID, caseID string, req dto.CreateDocketEntryRequest, enteredBy string) usecase.CreateDocketEntryCommand {
	return usecase.CreateDocketEntryCommand{
		CourtID:     courtID,
		CaseID:      caseID,
		EntryType:   entity.EntryType(req.EntryType),
		Description: req.Description,
		EnteredBy:   enteredBy,
	}
}

// DocketEntryListRequestToFilters converts a list request to port filters.
func DocketEntryListRequestToFilters(req dto.DocketEntryListRequest) port.DocketEntryFilters {
	offset := (req.Page - 1) * req.PerPage
	filters := port.DocketEntryFilters{
		Sealed: req.Sealed,
		Search: req.Search,
		Limit:  req.PerPage,
		Offset: offset,
	}
	if req.EntryType != "" {
		entryType := entity.EntryType(req.EntryType)
		filters.EntryType = &entryType
	}
	return filters
}

// DocketEntrySearchRequestToFilters converts a search request to port filters.
func DocketEntrySearchRequestToFilters(req dto.DocketEntrySearchRequest) port.DocketEntrySearchFilters {
	offset := (req.Page - 1) * req.PerPage
	filters := port.DocketEntrySearchFilters{
		CaseID: req.CaseID,
		Text:   req.Text,
		Limit:  req.PerPage,
		Offset: offset,
	}
	if req.EntryType != "" {
		entryType := entity.EntryType(req.EntryType)
		filters.EntryType = &entryType
	}
	return filters
}

// DocketEntriesToPaginatedResponse converts entries to a paginated response.
// Total is the offset plus the rows returned in this page: list filters are not
// backed by a separate COUNT query, so callers paging past a full page see
// TotalPages grow as they go rather than up front.
func DocketEntriesToPaginatedResponse(entries []*entity.DocketEntry, page, perPage, offset int) *dto.PaginatedDocketEntryResponse {
	total := int64(offset + len(entries))
	return &dto.PaginatedDocketEntryResponse{
		Data:       DocketEntriesToResponses(entries),
		Pagination: dto.NewPaginationMeta(total, page, perPage),
	}
}

// DocketStatisticsToResponse converts statistics to a response DTO.
func DocketStatisticsToResponse(stats *entity.DocketStatistics) *dto.DocketStatisticsResponse {
	byType := make(map[string]int, len(stats.ByEntryType))
	for k, v := range stats.ByEntryType {
		byType[string(k)] = v
	}
	return &dto.DocketStatisticsResponse{
		CaseID:        stats.CaseID,
		TotalEntries:  stats.TotalEntries,
		SealedEntries: stats.SealedEntries,
		ByEntryType:   byType,
	}
}

// DocketSheetToResponse converts a docket sheet projection to a response DTO.
func DocketSheetToResponse(sheet *entity.DocketSheet) *dto.DocketSheetResponse {
	return &dto.DocketSheetResponse{
		Case:    CaseToResponse(sheet.Case),
		Entries: DocketEntriesToResponses(sheet.Entries),
		Parties: PartiesToResponses(sheet.Parties),
	}
}
