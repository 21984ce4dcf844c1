// Code generated by ent, DO NOT EDIT.

package distributorreference

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the distributorreference type in the database.
	Label = "distributor_reference"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDistributorID holds the string denoting the distributor_id field in the database.
	FieldDistributorID = "distributor_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRelationship holds the string denoting the relationship field in the database.
	FieldRelationship = "relationship"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// EdgeDistributor holds the string denoting the distributor edge name in mutations.
	EdgeDistributor = "distributor"
	// Table holds the table name of the distributorreference in the database.
	Table = "distributor_references"
	// DistributorTable is the table that holds the distributor relation/edge.
	DistributorTable = "distributor_references"
	// DistributorInverseTable is the table name for the Distributor entity.
	// It exists in this package in order to avoid circular dependency with the "distributor" package.
	DistributorInverseTable = "distributors"
	// DistributorColumn is the table column denoting the distributor relation/edge.
	DistributorColumn = "distributor_id"
)

// Columns holds all SQL columns for distributorreference fields.
var Columns = []string{
	FieldID,
	FieldDistributorID,
	FieldName,
	FieldRelationship,
	FieldPhone,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DistributorReference queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDistributorID orders the results by the distributor_id field.
func ByDistributorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistributorID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByRelationship orders the results by the relationship field.
func ByRelationship(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationship, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
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
