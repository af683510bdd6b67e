package entity

import "errors"

// Authentication and authorization errors.
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("access denied")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrMissingToken     = errors.New("missing authorization token")
	ErrInsufficientRole = errors.New("insufficient role permissions")
)

// Tenant (court) context errors.
var (
	ErrMissingCourtDistrict = errors.New("missing X-Court-District header")
	ErrCourtNotFound        = errors.New("court not found")
	ErrCourtAccessDenied    = errors.New("court access denied")
)

// Case errors.
var (
	ErrCaseNotFound      = errors.New("case not found")
	ErrCaseAlreadyExists = errors.New("case already exists")
	ErrCaseClosed        = errors.New("case is closed")
	ErrInvalidCaseType   = errors.New("invalid case type")
	ErrInvalidCaseStatus = errors.New("invalid case status")
)

// Docket entry errors.
var (
	ErrDocketEntryNotFound    = errors.New("docket entry not found")
	ErrInvalidEntryType       = errors.New("invalid docket entry type")
	ErrEntryNumberConflict    = errors.New("docket entry number conflict")
	ErrDuplicateEntryDocument = errors.New("document already linked to this docket entry")
	ErrDocketEntryHasFilings  = errors.New("docket entry has a linked filing and cannot be deleted")
)

// Document and sealing errors.
var (
	ErrDocumentNotFound             = errors.New("document not found")
	ErrInvalidDocumentType          = errors.New("invalid document type")
	ErrInvalidSealingLevel          = errors.New("invalid sealing level")
	ErrDocumentAlreadySealed        = errors.New("document is already sealed")
	ErrDocumentNotSealed            = errors.New("document is not sealed")
	ErrDocumentAlreadyStruck        = errors.New("document has already been struck")
	ErrDocumentStruck               = errors.New("document has been struck from the record")
	ErrReplacementChainCycle        = errors.New("document replacement would create a cycle")
	ErrSealingVisibilityDenied      = errors.New("requester role cannot view this sealed document")
	ErrAttachmentNotFound           = errors.New("docket attachment not found")
	ErrAttachmentAlreadyPromoted    = errors.New("attachment has already been promoted to a document")
	ErrDocumentAlreadyReplacedOther = errors.New("document has already been replaced by another document")
)

// Upload staging errors.
var (
	ErrUploadNotFound      = errors.New("upload not found")
	ErrUploadAlreadyFinal  = errors.New("upload has already been finalized")
	ErrUploadNotFinalized  = errors.New("upload has not been finalized")
	ErrUploadExpired       = errors.New("upload staging window has expired")
	ErrUploadSizeExceeded  = errors.New("upload exceeds the configured size limit")
	ErrUploadContentTypeNA = errors.New("unsupported content type for upload")
	ErrUploadObjectMissing = errors.New("staged object was not found in storage")
)

// Filing submission errors.
var (
	ErrFilingNotFound          = errors.New("filing not found")
	ErrFilingAlreadySubmitted  = errors.New("filing has already been submitted")
	ErrFilingValidationFailed  = errors.New("filing failed validation")
	ErrFilingRejected          = errors.New("filing has been rejected")
	ErrInvalidFilingStatus     = errors.New("invalid filing status")
	ErrInvalidFilingType       = errors.New("invalid filing type")
	ErrDocumentTypeFilingUnmap = errors.New("document type has no corresponding filing type mapping")
)

// Party and representation errors.
var (
	ErrPartyNotFound          = errors.New("party not found")
	ErrInvalidPartyType       = errors.New("invalid party type")
	ErrInvalidPartyRole       = errors.New("invalid party role")
	ErrInvalidPartyStatus     = errors.New("invalid party status")
	ErrRepresentationNotFound = errors.New("representation not found")
)

// Service record and NEF errors.
var (
	ErrServiceRecordNotFound = errors.New("service record not found")
	ErrInvalidServiceMethod  = errors.New("invalid service method")
	ErrNefNotFound           = errors.New("NEF not found")
	ErrNefAlreadyDelivered   = errors.New("NEF has already been delivered")
	ErrNoNefRecipients       = errors.New("no eligible recipients for NEF delivery")
)

// Event façade errors.
var (
	ErrUnknownEventKind = errors.New("unknown event kind")
)

// Validation errors.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrRequiredField    = errors.New("required field is missing")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrInvalidUUID      = errors.New("invalid UUID format")
)

// Database errors.
var (
	ErrDatabaseQuery  = errors.New("database query error")
	ErrRecordNotFound = errors.New("record not found")
)
