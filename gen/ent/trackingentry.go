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
	"github.com/jmonzon-gt/distribuidores/gen/ent/trackingentry"
)

// TrackingEntry is the model entity for the TrackingEntry schema.
type TrackingEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID uuid.UUID `json:"request_id,omitempty"`
	// PreviousState holds the value of the "previous_state" field.
	PreviousState string `json:"previous_state,omitempty"`
	// NewState holds the value of the "new_state" field.
	NewState string `json:"new_state,omitempty"`
	// Actor holds the value of the "actor" field.
	Actor *uuid.UUID `json:"actor,omitempty"`
	// Comment holds the value of the "comment" field.
	Comment string `json:"comment,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TrackingEntryQuery when eager-loading is set.
	Edges        TrackingEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TrackingEntryEdges holds the relations/edges for other nodes in the graph.
type TrackingEntryEdges struct {
	// Request holds the value of the request edge.
	Request *Request `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TrackingEntryEdges) RequestOrErr() (*Request, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: request.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrackingEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trackingentry.FieldActor:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case trackingentry.FieldPreviousState, trackingentry.FieldNewState, trackingentry.FieldComment:
			values[i] = new(sql.NullString)
		case trackingentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case trackingentry.FieldID, trackingentry.FieldRequestID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrackingEntry fields.
func (_m *TrackingEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trackingentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case trackingentry.FieldRequestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value != nil {
				_m.RequestID = *value
			}
		case trackingentry.FieldPreviousState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field previous_state", values[i])
			} else if value.Valid {
				_m.PreviousState = value.String
			}
		case trackingentry.FieldNewState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_state", values[i])
			} else if value.Valid {
				_m.NewState = value.String
			}
		case trackingentry.FieldActor:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field actor", values[i])
			} else if value.Valid {
				_m.Actor = new(uuid.UUID)
				*_m.Actor = *value.S.(*uuid.UUID)
			}
		case trackingentry.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = value.String
			}
		case trackingentry.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TrackingEntry.
// This includes values selected through modifiers, order, etc.
func (_m *TrackingEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the TrackingEntry entity.
func (_m *TrackingEntry) QueryRequest() *RequestQuery {
	return NewTrackingEntryClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this TrackingEntry.
// Note that you need to call TrackingEntry.Unwrap() before calling this method if this TrackingEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrackingEntry) Update() *TrackingEntryUpdateOne {
	return NewTrackingEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrackingEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrackingEntry) Unwrap() *TrackingEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrackingEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrackingEntry) String() string {
	var builder strings.Builder
	builder.WriteString("TrackingEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestID))
	builder.WriteString(", ")
	builder.WriteString("previous_state=")
	builder.WriteString(_m.PreviousState)
	builder.WriteString(", ")
	builder.WriteString("new_state=")
	builder.WriteString(_m.NewState)
	builder.WriteString(", ")
	if v := _m.Actor; v != nil {
		builder.WriteString("actor=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("comment=")
	builder.WriteString(_m.Comment)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrackingEntries is a parsable slice of TrackingEntry.
type TrackingEntries []*TrackingEntry
