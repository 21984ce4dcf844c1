// Code generated by ent, DO NOT EDIT.

package distributorbranch

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the distributorbranch type in the database.
	Label = "distributor_branch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDistributorID holds the string denoting the distributor_id field in the database.
	FieldDistributorID = "distributor_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldDepartment holds the string denoting the department field in the database.
	FieldDepartment = "department"
	// FieldMunicipality holds the string denoting the municipality field in the database.
	FieldMunicipality = "municipality"
	// FieldZone holds the string denoting the zone field in the database.
	FieldZone = "zone"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// EdgeDistributor holds the string denoting the distributor edge name in mutations.
	EdgeDistributor = "distributor"
	// Table holds the table name of the distributorbranch in the database.
	Table = "distributor_branches"
	// DistributorTable is the table that holds the distributor relation/edge.
	DistributorTable = "distributor_branches"
	// DistributorInverseTable is the table name for the Distributor entity.
	// It exists in this package in order to avoid circular dependency with the "distributor" package.
	DistributorInverseTable = "distributors"
	// DistributorColumn is the table column denoting the distributor relation/edge.
	DistributorColumn = "distributor_id"
)

// Columns holds all SQL columns for distributorbranch fields.
var Columns = []string{
	FieldID,
	FieldDistributorID,
	FieldName,
	FieldAddress,
	FieldDepartment,
	FieldMunicipality,
	FieldZone,
	FieldStatus,
	FieldStartDate,
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

// OrderOption defines the ordering options for the DistributorBranch queries.
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

// ByZone orders the results by the zone field.
func ByZone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZone, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
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
