package constants

import "strings"

// DocumentType is the declared kind of an uploaded document.
type DocumentType string

const (
	DocIDFront         DocumentType = "ID_FRONT"
	DocIDBack          DocumentType = "ID_BACK"
	DocTaxRegistry     DocumentType = "TAX_REGISTRY"
	DocCommerceLicense DocumentType = "COMMERCE_LICENSE"
	DocOther           DocumentType = "OTHER"
)

// DocumentTypes holds the allowed document types for uploads.
var DocumentTypes = []DocumentType{DocIDFront, DocIDBack, DocTaxRegistry, DocCommerceLicense, DocOther}

func (d DocumentType) IsValid() bool {
	for _, t := range DocumentTypes {
		if d == t {
			return true
		}
	}
	return false
}

func DocumentTypeStrings() []string {
	out := make([]string, 0, len(DocumentTypes))
	for _, t := range DocumentTypes {
		out = append(out, string(t))
	}
	return out
}

// ExtractionStatus is the canonical status of a document's extraction run,
// persisted on request_document rows.
type ExtractionStatus string

const (
	ExtractionPending    ExtractionStatus = "PENDING"
	ExtractionProcessing ExtractionStatus = "PROCESSING"
	ExtractionCompleted  ExtractionStatus = "COMPLETED"
	ExtractionFailed     ExtractionStatus = "FAILED"
	ExtractionIncorrect  ExtractionStatus = "INCORRECT"
	ExtractionUnreadable ExtractionStatus = "UNREADABLE"
)

var ExtractionStatuses = []ExtractionStatus{
	ExtractionPending, ExtractionProcessing, ExtractionCompleted,
	ExtractionFailed, ExtractionIncorrect, ExtractionUnreadable,
}

func ExtractionStatusStrings() []string {
	out := make([]string, 0, len(ExtractionStatuses))
	for _, s := range ExtractionStatuses {
		out = append(out, string(s))
	}
	return out
}

// TaskStatus is the poll-able status of an async extraction task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskProcessing TaskStatus = "PROCESSING"
	TaskSuccess    TaskStatus = "SUCCESS"
	TaskIncorrect  TaskStatus = "INCORRECT"
	TaskUnreadable TaskStatus = "UNREADABLE"
	TaskFailed     TaskStatus = "FAILED"
)

// IsTerminal reports whether polling may stop for this status.
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case TaskSuccess, TaskIncorrect, TaskUnreadable, TaskFailed:
		return true
	}
	return false
}

// ReviewStatus is the reviewer verdict on a child record.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewApproved ReviewStatus = "APPROVED"
	ReviewVerified ReviewStatus = "VERIFIED" // references use VERIFIED instead of APPROVED
	ReviewRejected ReviewStatus = "REJECTED"
)

var ReviewStatuses = []ReviewStatus{ReviewPending, ReviewApproved, ReviewVerified, ReviewRejected}

// IsSettled reports whether the child counts as terminally approved/verified.
func (s ReviewStatus) IsSettled() bool {
	return s == ReviewApproved || s == ReviewVerified
}

func ReviewStatusStrings() []string {
	out := make([]string, 0, len(ReviewStatuses))
	for _, s := range ReviewStatuses {
		out = append(out, string(s))
	}
	return out
}

// AllowedExtensions holds the accepted upload extensions.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// FileTypes holds the allowed source formats for extraction.
var FileTypes = []string{"PDF", "IMAGE"}

const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a source format, or "".
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png", "tif", "tiff":
		return IMAGE
	default:
		return ""
	}
}
