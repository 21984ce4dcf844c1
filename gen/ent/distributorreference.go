// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributor"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorreference"
)

// DistributorReference is the model entity for the DistributorReference schema.
type DistributorReference struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DistributorID holds the value of the "distributor_id" field.
	DistributorID uuid.UUID `json:"distributor_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Relationship holds the value of the "relationship" field.
	Relationship string `json:"relationship,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone string `json:"phone,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DistributorReferenceQuery when eager-loading is set.
	Edges        DistributorReferenceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DistributorReferenceEdges holds the relations/edges for other nodes in the graph.
type DistributorReferenceEdges struct {
	// Distributor holds the value of the distributor edge.
	Distributor *Distributor `json:"distributor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DistributorOrErr returns the Distributor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DistributorReferenceEdges) DistributorOrErr() (*Distributor, error) {
	if e.Distributor != nil {
		return e.Distributor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: distributor.Label}
	}
	return nil, &NotLoadedError{edge: "distributor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DistributorReference) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case distributorreference.FieldName, distributorreference.FieldRelationship, distributorreference.FieldPhone:
			values[i] = new(sql.NullString)
		case distributorreference.FieldID, distributorreference.FieldDistributorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DistributorReference fields.
func (_m *DistributorReference) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case distributorreference.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case distributorreference.FieldDistributorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field distributor_id", values[i])
			} else if value != nil {
				_m.DistributorID = *value
			}
		case distributorreference.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case distributorreference.FieldRelationship:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relationship", values[i])
			} else if value.Valid {
				_m.Relationship = value.String
			}
		case distributorreference.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DistributorReference.
// This includes values selected through modifiers, order, etc.
func (_m *DistributorReference) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDistributor queries the "distributor" edge of the DistributorReference entity.
func (_m *DistributorReference) QueryDistributor() *DistributorQuery {
	return NewDistributorReferenceClient(_m.config).QueryDistributor(_m)
}

// Update returns a builder for updating this DistributorReference.
// Note that you need to call DistributorReference.Unwrap() before calling this method if this DistributorReference
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DistributorReference) Update() *DistributorReferenceUpdateOne {
	return NewDistributorReferenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DistributorReference entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DistributorReference) Unwrap() *DistributorReference {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DistributorReference is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DistributorReference) String() string {
	var builder strings.Builder
	builder.WriteString("DistributorReference(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("distributor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DistributorID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("relationship=")
	builder.WriteString(_m.Relationship)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteByte(')')
	return builder.String()
}

// DistributorReferences is a parsable slice of DistributorReference.
type DistributorReferences []*DistributorReference
