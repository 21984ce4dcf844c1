// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributor"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorbranch"
)

// DistributorBranch is the model entity for the DistributorBranch schema.
type DistributorBranch struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DistributorID holds the value of the "distributor_id" field.
	DistributorID uuid.UUID `json:"distributor_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// Department holds the value of the "department" field.
	Department string `json:"department,omitempty"`
	// Municipality holds the value of the "municipality" field.
	Municipality string `json:"municipality,omitempty"`
	// Zone holds the value of the "zone" field.
	Zone string `json:"zone,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate string `json:"start_date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DistributorBranchQuery when eager-loading is set.
	Edges        DistributorBranchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DistributorBranchEdges holds the relations/edges for other nodes in the graph.
type DistributorBranchEdges struct {
	// Distributor holds the value of the distributor edge.
	Distributor *Distributor `json:"distributor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DistributorOrErr returns the Distributor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DistributorBranchEdges) DistributorOrErr() (*Distributor, error) {
	if e.Distributor != nil {
		return e.Distributor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: distributor.Label}
	}
	return nil, &NotLoadedError{edge: "distributor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DistributorBranch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case distributorbranch.FieldName, distributorbranch.FieldAddress, distributorbranch.FieldDepartment, distributorbranch.FieldMunicipality, distributorbranch.FieldZone, distributorbranch.FieldStatus, distributorbranch.FieldStartDate:
			values[i] = new(sql.NullString)
		case distributorbranch.FieldID, distributorbranch.FieldDistributorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DistributorBranch fields.
func (_m *DistributorBranch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case distributorbranch.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case distributorbranch.FieldDistributorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field distributor_id", values[i])
			} else if value != nil {
				_m.DistributorID = *value
			}
		case distributorbranch.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case distributorbranch.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case distributorbranch.FieldDepartment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field department", values[i])
			} else if value.Valid {
				_m.Department = value.String
			}
		case distributorbranch.FieldMunicipality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field municipality", values[i])
			} else if value.Valid {
				_m.Municipality = value.String
			}
		case distributorbranch.FieldZone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zone", values[i])
			} else if value.Valid {
				_m.Zone = value.String
			}
		case distributorbranch.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case distributorbranch.FieldStartDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DistributorBranch.
// This includes values selected through modifiers, order, etc.
func (_m *DistributorBranch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDistributor queries the "distributor" edge of the DistributorBranch entity.
func (_m *DistributorBranch) QueryDistributor() *DistributorQuery {
	return NewDistributorBranchClient(_m.config).QueryDistributor(_m)
}

// Update returns a builder for updating this DistributorBranch.
// Note that you need to call DistributorBranch.Unwrap() before calling this method if this DistributorBranch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DistributorBranch) Update() *DistributorBranchUpdateOne {
	return NewDistributorBranchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DistributorBranch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DistributorBranch) Unwrap() *DistributorBranch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DistributorBranch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DistributorBranch) String() string {
	var builder strings.Builder
	builder.WriteString("DistributorBranch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("distributor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DistributorID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("department=")
	builder.WriteString(_m.Department)
	builder.WriteString(", ")
	builder.WriteString("municipality=")
	builder.WriteString(_m.Municipality)
	builder.WriteString(", ")
	builder.WriteString("zone=")
	builder.WriteString(_m.Zone)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(_m.StartDate)
	builder.WriteByte(')')
	return builder.String()
}

// DistributorBranches is a parsable slice of DistributorBranch.
type DistributorBranches []*DistributorBranch
