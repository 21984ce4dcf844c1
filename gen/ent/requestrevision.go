// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/request"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestrevision"
)

// RequestRevision is the model entity for the RequestRevision schema.
type RequestRevision struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID uuid.UUID `json:"request_id,omitempty"`
	// Section holds the value of the "section" field.
	Section string `json:"section,omitempty"`
	// Approved holds the value of the "approved" field.
	Approved bool `json:"approved,omitempty"`
	// Observation holds the value of the "observation" field.
	Observation string `json:"observation,omitempty"`
	// Actor holds the value of the "actor" field.
	Actor *uuid.UUID `json:"actor,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RequestRevisionQuery when eager-loading is set.
	Edges        RequestRevisionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RequestRevisionEdges holds the relations/edges for other nodes in the graph.
type RequestRevisionEdges struct {
	// Request holds the value of the request edge.
	Request *Request `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RequestRevisionEdges) RequestOrErr() (*Request, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: request.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RequestRevision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case requestrevision.FieldActor:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case requestrevision.FieldApproved:
			values[i] = new(sql.NullBool)
		case requestrevision.FieldSection, requestrevision.FieldObservation:
			values[i] = new(sql.NullString)
		case requestrevision.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case requestrevision.FieldID, requestrevision.FieldRequestID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RequestRevision fields.
func (_m *RequestRevision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case requestrevision.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case requestrevision.FieldRequestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value != nil {
				_m.RequestID = *value
			}
		case requestrevision.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				_m.Section = value.String
			}
		case requestrevision.FieldApproved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field approved", values[i])
			} else if value.Valid {
				_m.Approved = value.Bool
			}
		case requestrevision.FieldObservation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field observation", values[i])
			} else if value.Valid {
				_m.Observation = value.String
			}
		case requestrevision.FieldActor:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field actor", values[i])
			} else if value.Valid {
				_m.Actor = new(uuid.UUID)
				*_m.Actor = *value.S.(*uuid.UUID)
			}
		case requestrevision.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RequestRevision.
// This includes values selected through modifiers, order, etc.
func (_m *RequestRevision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the RequestRevision entity.
func (_m *RequestRevision) QueryRequest() *RequestQuery {
	return NewRequestRevisionClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this RequestRevision.
// Note that you need to call RequestRevision.Unwrap() before calling this method if this RequestRevision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RequestRevision) Update() *RequestRevisionUpdateOne {
	return NewRequestRevisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RequestRevision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RequestRevision) Unwrap() *RequestRevision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RequestRevision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RequestRevision) String() string {
	var builder strings.Builder
	builder.WriteString("RequestRevision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestID))
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(_m.Section)
	builder.WriteString(", ")
	builder.WriteString("approved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Approved))
	builder.WriteString(", ")
	builder.WriteString("observation=")
	builder.WriteString(_m.Observation)
	builder.WriteString(", ")
	if v := _m.Actor; v != nil {
		builder.WriteString("actor=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RequestRevisions is a parsable slice of RequestRevision.
type RequestRevisions []*RequestRevision
