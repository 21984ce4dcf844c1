// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributor"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributordocument"
)

// DistributorDocument is the model entity for the DistributorDocument schema.
type DistributorDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DistributorID holds the value of the "distributor_id" field.
	DistributorID uuid.UUID `json:"distributor_id,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// StructuredFields holds the value of the "structured_fields" field.
	StructuredFields map[string]string `json:"structured_fields,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DistributorDocumentQuery when eager-loading is set.
	Edges        DistributorDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DistributorDocumentEdges holds the relations/edges for other nodes in the graph.
type DistributorDocumentEdges struct {
	// Distributor holds the value of the distributor edge.
	Distributor *Distributor `json:"distributor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DistributorOrErr returns the Distributor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DistributorDocumentEdges) DistributorOrErr() (*Distributor, error) {
	if e.Distributor != nil {
		return e.Distributor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: distributor.Label}
	}
	return nil, &NotLoadedError{edge: "distributor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DistributorDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case distributordocument.FieldStructuredFields:
			values[i] = new([]byte)
		case distributordocument.FieldDocumentType, distributordocument.FieldRawText:
			values[i] = new(sql.NullString)
		case distributordocument.FieldID, distributordocument.FieldDistributorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DistributorDocument fields.
func (_m *DistributorDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case distributordocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case distributordocument.FieldDistributorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field distributor_id", values[i])
			} else if value != nil {
				_m.DistributorID = *value
			}
		case distributordocument.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case distributordocument.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case distributordocument.FieldStructuredFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field structured_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StructuredFields); err != nil {
					return fmt.Errorf("unmarshal field structured_fields: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DistributorDocument.
// This includes values selected through modifiers, order, etc.
func (_m *DistributorDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDistributor queries the "distributor" edge of the DistributorDocument entity.
func (_m *DistributorDocument) QueryDistributor() *DistributorQuery {
	return NewDistributorDocumentClient(_m.config).QueryDistributor(_m)
}

// Update returns a builder for updating this DistributorDocument.
// Note that you need to call DistributorDocument.Unwrap() before calling this method if this DistributorDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DistributorDocument) Update() *DistributorDocumentUpdateOne {
	return NewDistributorDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DistributorDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DistributorDocument) Unwrap() *DistributorDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DistributorDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DistributorDocument) String() string {
	var builder strings.Builder
	builder.WriteString("DistributorDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("distributor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DistributorID))
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("structured_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.StructuredFields))
	builder.WriteByte(')')
	return builder.String()
}

// DistributorDocuments is a parsable slice of DistributorDocument.
type DistributorDocuments []*DistributorDocument
