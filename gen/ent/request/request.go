// Code generated by ent, DO NOT EDIT.

package request

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the request type in the database.
	Label = "request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldAssignedReviewer holds the string denoting the assigned_reviewer field in the database.
	FieldAssignedReviewer = "assigned_reviewer"
	// FieldBusinessName holds the string denoting the business_name field in the database.
	FieldBusinessName = "business_name"
	// FieldOwnerName holds the string denoting the owner_name field in the database.
	FieldOwnerName = "owner_name"
	// FieldNit holds the string denoting the nit field in the database.
	FieldNit = "nit"
	// FieldDpi holds the string denoting the dpi field in the database.
	FieldDpi = "dpi"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldDepartment holds the string denoting the department field in the database.
	FieldDepartment = "department"
	// FieldMunicipality holds the string denoting the municipality field in the database.
	FieldMunicipality = "municipality"
	// FieldBankName holds the string denoting the bank_name field in the database.
	FieldBankName = "bank_name"
	// FieldBankAccount holds the string denoting the bank_account field in the database.
	FieldBankAccount = "bank_account"
	// FieldExtractedData holds the string denoting the extracted_data field in the database.
	FieldExtractedData = "extracted_data"
	// FieldMatchScore holds the string denoting the match_score field in the database.
	FieldMatchScore = "match_score"
	// FieldDeleted holds the string denoting the deleted field in the database.
	FieldDeleted = "deleted"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// EdgeBranches holds the string denoting the branches edge name in mutations.
	EdgeBranches = "branches"
	// EdgeReferences holds the string denoting the references edge name in mutations.
	EdgeReferences = "references"
	// EdgeRevisions holds the string denoting the revisions edge name in mutations.
	EdgeRevisions = "revisions"
	// EdgeTracking holds the string denoting the tracking edge name in mutations.
	EdgeTracking = "tracking"
	// EdgeDistributor holds the string denoting the distributor edge name in mutations.
	EdgeDistributor = "distributor"
	// Table holds the table name of the request in the database.
	Table = "requests"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "request_documents"
	// DocumentsInverseTable is the table name for the RequestDocument entity.
	// It exists in this package in order to avoid circular dependency with the "requestdocument" package.
	DocumentsInverseTable = "request_documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "request_id"
	// BranchesTable is the table that holds the branches relation/edge.
	BranchesTable = "request_branches"
	// BranchesInverseTable is the table name for the RequestBranch entity.
	// It exists in this package in order to avoid circular dependency with the "requestbranch" package.
	BranchesInverseTable = "request_branches"
	// BranchesColumn is the table column denoting the branches relation/edge.
	BranchesColumn = "request_id"
	// ReferencesTable is the table that holds the references relation/edge.
	ReferencesTable = "request_references"
	// ReferencesInverseTable is the table name for the RequestReference entity.
	// It exists in this package in order to avoid circular dependency with the "requestreference" package.
	ReferencesInverseTable = "request_references"
	// ReferencesColumn is the table column denoting the references relation/edge.
	ReferencesColumn = "request_id"
	// RevisionsTable is the table that holds the revisions relation/edge.
	RevisionsTable = "request_revisions"
	// RevisionsInverseTable is the table name for the RequestRevision entity.
	// It exists in this package in order to avoid circular dependency with the "requestrevision" package.
	RevisionsInverseTable = "request_revisions"
	// RevisionsColumn is the table column denoting the revisions relation/edge.
	RevisionsColumn = "request_id"
	// TrackingTable is the table that holds the tracking relation/edge.
	TrackingTable = "tracking_entries"
	// TrackingInverseTable is the table name for the TrackingEntry entity.
	// It exists in this package in order to avoid circular dependency with the "trackingentry" package.
	TrackingInverseTable = "tracking_entries"
	// TrackingColumn is the table column denoting the tracking relation/edge.
	TrackingColumn = "request_id"
	// DistributorTable is the table that holds the distributor relation/edge.
	DistributorTable = "distributors"
	// DistributorInverseTable is the table name for the Distributor entity.
	// It exists in this package in order to avoid circular dependency with the "distributor" package.
	DistributorInverseTable = "distributors"
	// DistributorColumn is the table column denoting the distributor relation/edge.
	DistributorColumn = "request_id"
)

// Columns holds all SQL columns for request fields.
var Columns = []string{
	FieldID,
	FieldState,
	FieldAssignedReviewer,
	FieldBusinessName,
	FieldOwnerName,
	FieldNit,
	FieldDpi,
	FieldEmail,
	FieldPhone,
	FieldAddress,
	FieldDepartment,
	FieldMunicipality,
	FieldBankName,
	FieldBankAccount,
	FieldExtractedData,
	FieldMatchScore,
	FieldDeleted,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultState holds the default value on creation for the "state" field.
	DefaultState string
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// BusinessNameValidator is a validator for the "business_name" field. It is called by the builders before save.
	BusinessNameValidator func(string) error
	// DefaultDeleted holds the default value on creation for the "deleted" field.
	DefaultDeleted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Request queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByAssignedReviewer orders the results by the assigned_reviewer field.
func ByAssignedReviewer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedReviewer, opts...).ToFunc()
}

// ByBusinessName orders the results by the business_name field.
func ByBusinessName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessName, opts...).ToFunc()
}

// ByOwnerName orders the results by the owner_name field.
func ByOwnerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerName, opts...).ToFunc()
}

// ByNit orders the results by the nit field.
func ByNit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNit, opts...).ToFunc()
}

// ByDpi orders the results by the dpi field.
func ByDpi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDpi, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByDepartment orders the results by the department field.
func ByDepartment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepartment, opts...).ToFunc()
}

// ByMunicipality orders the results by the municipality field.
func ByMunicipality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMunicipality, opts...).ToFunc()
}

// ByBankName orders the results by the bank_name field.
func ByBankName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBankName, opts...).ToFunc()
}

// ByBankAccount orders the results by the bank_account field.
func ByBankAccount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBankAccount, opts...).ToFunc()
}

// ByMatchScore orders the results by the match_score field.
func ByMatchScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchScore, opts...).ToFunc()
}

// ByDeleted orders the results by the deleted field.
func ByDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeleted, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBranchesCount orders the results by branches count.
func ByBranchesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBranchesStep(), opts...)
	}
}

// ByBranches orders the results by branches terms.
func ByBranches(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBranchesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReferencesCount orders the results by references count.
func ByReferencesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReferencesStep(), opts...)
	}
}

// ByReferences orders the results by references terms.
func ByReferences(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReferencesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRevisionsCount orders the results by revisions count.
func ByRevisionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRevisionsStep(), opts...)
	}
}

// ByRevisions orders the results by revisions terms.
func ByRevisions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRevisionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTrackingCount orders the results by tracking count.
func ByTrackingCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTrackingStep(), opts...)
	}
}

// ByTracking orders the results by tracking terms.
func ByTracking(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTrackingStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDistributorField orders the results by distributor field.
func ByDistributorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDistributorStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
func newBranchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BranchesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BranchesTable, BranchesColumn),
	)
}
func newReferencesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReferencesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReferencesTable, ReferencesColumn),
	)
}
func newRevisionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RevisionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RevisionsTable, RevisionsColumn),
	)
}
func newTrackingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TrackingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TrackingTable, TrackingColumn),
	)
}
func newDistributorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DistributorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, DistributorTable, DistributorColumn),
	)
}
