// Code generated by ent, DO NOT EDIT.

package distributordocument

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the distributordocument type in the database.
	Label = "distributor_document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDistributorID holds the string denoting the distributor_id field in the database.
	FieldDistributorID = "distributor_id"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldStructuredFields holds the string denoting the structured_fields field in the database.
	FieldStructuredFields = "structured_fields"
	// EdgeDistributor holds the string denoting the distributor edge name in mutations.
	EdgeDistributor = "distributor"
	// Table holds the table name of the distributordocument in the database.
	Table = "distributor_documents"
	// DistributorTable is the table that holds the distributor relation/edge.
	DistributorTable = "distributor_documents"
	// DistributorInverseTable is the table name for the Distributor entity.
	// It exists in this package in order to avoid circular dependency with the "distributor" package.
	DistributorInverseTable = "distributors"
	// DistributorColumn is the table column denoting the distributor relation/edge.
	DistributorColumn = "distributor_id"
)

// Columns holds all SQL columns for distributordocument fields.
var Columns = []string{
	FieldID,
	FieldDistributorID,
	FieldDocumentType,
	FieldRawText,
	FieldStructuredFields,
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
	// DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	DocumentTypeValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DistributorDocument queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDistributorID orders the results by the distributor_id field.
func ByDistributorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistributorID, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByDistributorField orders the results by distributor field.
func ByDistributorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDistributorStep(), sql.OrderByField(field, opts...))
	}
}
func newDistributorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DistributorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DistributorTable, DistributorColumn),
	)
}
