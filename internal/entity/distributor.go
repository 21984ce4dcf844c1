package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmonzon-gt/distribuidores/constants"
)

// Distributor is the production record a request graduates into. A request
// graduates into at most one distributor; RequestID keeps the trace back.
type Distributor struct {
	ID           uuid.UUID `json:"id"`
	RequestID    uuid.UUID `json:"request_id"`
	BusinessName string    `json:"business_name"`
	OwnerName    string    `json:"owner_name,omitempty"`
	NIT          string    `json:"nit,omitempty"`
	DPI          string    `json:"dpi,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Department   string    `json:"department,omitempty"`
	Municipality string    `json:"municipality,omitempty"`
	BankName     string    `json:"bank_name,omitempty"`
	BankAccount  string    `json:"bank_account,omitempty"`
	Deleted      bool      `json:"deleted"`
	CreatedAt    time.Time `json:"created_at"`
}

// DistributorDocument mirrors an approved RequestDocument.
type DistributorDocument struct {
	ID               uuid.UUID              `json:"id"`
	DistributorID    uuid.UUID              `json:"distributor_id"`
	DocumentType     constants.DocumentType `json:"document_type"`
	RawText          string                 `json:"raw_text,omitempty"`
	StructuredFields map[string]string      `json:"structured_fields,omitempty"`
}

// DistributorBranch mirrors an approved RequestBranch.
type DistributorBranch struct {
	ID            uuid.UUID `json:"id"`
	DistributorID uuid.UUID `json:"distributor_id"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	Department    string    `json:"department,omitempty"`
	Municipality  string    `json:"municipality,omitempty"`
	Zone          string    `json:"zone,omitempty"`
	Status        string    `json:"status,omitempty"`
	StartDate     string    `json:"start_date,omitempty"`
}

// DistributorReference mirrors a verified RequestReference.
type DistributorReference struct {
	ID            uuid.UUID `json:"id"`
	DistributorID uuid.UUID `json:"distributor_id"`
	Name          string    `json:"name"`
	Relationship  string    `json:"relationship,omitempty"`
	Phone         string    `json:"phone,omitempty"`
}
