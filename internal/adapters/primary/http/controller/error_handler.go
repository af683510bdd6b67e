package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/dto"
	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// respondError sends an error response.
func respondError(ctx *gin.Context, statusCode int, err error) {
	ctx.JSON(statusCode, dto.NewErrorResponse(err))
}

// HandleError maps domain errors to HTTP status codes. This is the
// centralized error handler every controller funnels into so the mapping
// lives in exactly one place.
func HandleError(ctx *gin.Context, err error) {
	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(validationErr))
		return
	}

	var statusCode int

	switch {
	// 404 Not Found
	case errors.Is(err, entity.ErrCourtNotFound),
		errors.Is(err, entity.ErrCaseNotFound),
		errors.Is(err, entity.ErrDocketEntryNotFound),
		errors.Is(err, entity.ErrDocumentNotFound),
		errors.Is(err, entity.ErrAttachmentNotFound),
		errors.Is(err, entity.ErrUploadNotFound),
		errors.Is(err, entity.ErrFilingNotFound),
		errors.Is(err, entity.ErrPartyNotFound),
		errors.Is(err, entity.ErrRepresentationNotFound),
		errors.Is(err, entity.ErrServiceRecordNotFound),
		errors.Is(err, entity.ErrNefNotFound),
		errors.Is(err, entity.ErrRecordNotFound):
		statusCode = http.StatusNotFound

	// 409 Conflict
	case errors.Is(err, entity.ErrCaseAlreadyExists),
		errors.Is(err, entity.ErrDuplicateEntryDocument),
		errors.Is(err, entity.ErrDocketEntryHasFilings),
		errors.Is(err, entity.ErrDocumentAlreadySealed),
		errors.Is(err, entity.ErrDocumentNotSealed),
		errors.Is(err, entity.ErrDocumentAlreadyStruck),
		errors.Is(err, entity.ErrDocumentStruck),
		errors.Is(err, entity.ErrDocumentAlreadyReplacedOther),
		errors.Is(err, entity.ErrReplacementChainCycle),
		errors.Is(err, entity.ErrAttachmentAlreadyPromoted),
		errors.Is(err, entity.ErrUploadAlreadyFinal),
		errors.Is(err, entity.ErrFilingAlreadySubmitted),
		errors.Is(err, entity.ErrEntryNumberConflict),
		errors.Is(err, entity.ErrNefAlreadyDelivered):
		statusCode = http.StatusConflict

	// 400 Bad Request
	case errors.Is(err, entity.ErrRequiredField),
		errors.Is(err, entity.ErrFieldTooLong),
		errors.Is(err, entity.ErrInvalidUUID),
		errors.Is(err, entity.ErrInvalidCaseType),
		errors.Is(err, entity.ErrInvalidCaseStatus),
		errors.Is(err, entity.ErrCaseClosed),
		errors.Is(err, entity.ErrInvalidEntryType),
		errors.Is(err, entity.ErrInvalidDocumentType),
		errors.Is(err, entity.ErrInvalidSealingLevel),
		errors.Is(err, entity.ErrSealingVisibilityDenied),
		errors.Is(err, entity.ErrUploadNotFinalized),
		errors.Is(err, entity.ErrUploadExpired),
		errors.Is(err, entity.ErrUploadSizeExceeded),
		errors.Is(err, entity.ErrUploadContentTypeNA),
		errors.Is(err, entity.ErrUploadObjectMissing),
		errors.Is(err, entity.ErrFilingValidationFailed),
		errors.Is(err, entity.ErrFilingRejected),
		errors.Is(err, entity.ErrInvalidFilingStatus),
		errors.Is(err, entity.ErrInvalidFilingType),
		errors.Is(err, entity.ErrDocumentTypeFilingUnmap),
		errors.Is(err, entity.ErrInvalidPartyType),
		errors.Is(err, entity.ErrInvalidPartyRole),
		errors.Is(err, entity.ErrInvalidPartyStatus),
		errors.Is(err, entity.ErrInvalidServiceMethod),
		errors.Is(err, entity.ErrNoNefRecipients),
		errors.Is(err, entity.ErrUnknownEventKind),
		errors.Is(err, entity.ErrMissingCourtDistrict):
		statusCode = http.StatusBadRequest

	// 403 Forbidden
	case errors.Is(err, entity.ErrForbidden),
		errors.Is(err, entity.ErrInsufficientRole),
		errors.Is(err, entity.ErrCourtAccessDenied):
		statusCode = http.StatusForbidden

	// 401 Unauthorized
	case errors.Is(err, entity.ErrUnauthorized),
		errors.Is(err, entity.ErrInvalidToken),
		errors.Is(err, entity.ErrTokenExpired),
		errors.Is(err, entity.ErrMissingToken):
		statusCode = http.StatusUnauthorized

	// 500 Internal Server Error
	default:
		statusCode = http.StatusInternalServerError
		slog.Error("unhandled error", slog.Any("error", err))
	}

	respondError(ctx, statusCode, err)
}
