package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmonzon-gt/distribuidores/constants"
)

// Request is the staging record for a distributor application, used for data
// transfer between layers.
type Request struct {
	ID               uuid.UUID              `json:"id"`
	State            constants.RequestState `json:"state"`
	AssignedReviewer *uuid.UUID             `json:"assigned_reviewer,omitempty"`

	// Identity / fiscal / banking fields. Most stay empty until extraction
	// or the applicant fills them in.
	BusinessName string `json:"business_name"`
	OwnerName    string `json:"owner_name,omitempty"`
	NIT          string `json:"nit,omitempty"`
	DPI          string `json:"dpi,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Department   string `json:"department,omitempty"`
	Municipality string `json:"municipality,omitempty"`
	BankName     string `json:"bank_name,omitempty"`
	BankAccount  string `json:"bank_account,omitempty"`

	// ExtractedData accumulates structured fields per document type.
	ExtractedData map[string]map[string]string `json:"extracted_data,omitempty"`
	MatchScore    *int                         `json:"match_score,omitempty"`

	Deleted   bool      `json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RequestDocument is one uploaded document attached to a request. At most one
// live row exists per (request, document type).
type RequestDocument struct {
	ID               uuid.UUID                  `json:"id"`
	RequestID        uuid.UUID                  `json:"request_id"`
	DocumentType     constants.DocumentType     `json:"document_type"`
	ExtractionStatus constants.ExtractionStatus `json:"extraction_status"`
	RawText          string                     `json:"raw_text,omitempty"`
	StructuredFields map[string]string          `json:"structured_fields,omitempty"`
	Score            int                        `json:"score"`
	ReviewStatus     constants.ReviewStatus     `json:"review_status"`
	ReviewNotes      string                     `json:"review_notes,omitempty"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

// RequestBranch is a commercial establishment declared by (or scraped for)
// the applicant.
type RequestBranch struct {
	ID           uuid.UUID              `json:"id"`
	RequestID    uuid.UUID              `json:"request_id"`
	Name         string                 `json:"name"`
	Address      string                 `json:"address,omitempty"`
	Department   string                 `json:"department,omitempty"`
	Municipality string                 `json:"municipality,omitempty"`
	Zone         string                 `json:"zone,omitempty"`
	Status       string                 `json:"status,omitempty"`
	StartDate    string                 `json:"start_date,omitempty"`
	ReviewStatus constants.ReviewStatus `json:"review_status"`
	ReviewNotes  string                 `json:"review_notes,omitempty"`
}

// RequestReference is a commercial/personal reference to be verified.
type RequestReference struct {
	ID           uuid.UUID              `json:"id"`
	RequestID    uuid.UUID              `json:"request_id"`
	Name         string                 `json:"name"`
	Relationship string                 `json:"relationship,omitempty"`
	Phone        string                 `json:"phone,omitempty"`
	ReviewStatus constants.ReviewStatus `json:"review_status"`
	ReviewNotes  string                 `json:"review_notes,omitempty"`
}

// RequestRevision is an immutable reviewer comment on a named field or
// section. Append-only; a later revision supersedes, never mutates.
type RequestRevision struct {
	ID          uuid.UUID  `json:"id"`
	RequestID   uuid.UUID  `json:"request_id"`
	Section     string     `json:"section"`
	Approved    bool       `json:"approved"`
	Observation string     `json:"observation,omitempty"`
	Actor       *uuid.UUID `json:"actor,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Children bundles the reviewer-visible sub-records of a request for
// readiness checks.
type Children struct {
	Documents  []RequestDocument
	Branches   []RequestBranch
	References []RequestReference
	Revisions  []RequestRevision
}
