// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributor"
	"github.com/jmonzon-gt/distribuidores/gen/ent/request"
)

// Request is the model entity for the Request schema.
type Request struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// AssignedReviewer holds the value of the "assigned_reviewer" field.
	AssignedReviewer *uuid.UUID `json:"assigned_reviewer,omitempty"`
	// BusinessName holds the value of the "business_name" field.
	BusinessName string `json:"business_name,omitempty"`
	// OwnerName holds the value of the "owner_name" field.
	OwnerName string `json:"owner_name,omitempty"`
	// Nit holds the value of the "nit" field.
	Nit string `json:"nit,omitempty"`
	// Dpi holds the value of the "dpi" field.
	Dpi string `json:"dpi,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone string `json:"phone,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// Department holds the value of the "department" field.
	Department string `json:"department,omitempty"`
	// Municipality holds the value of the "municipality" field.
	Municipality string `json:"municipality,omitempty"`
	// BankName holds the value of the "bank_name" field.
	BankName string `json:"bank_name,omitempty"`
	// BankAccount holds the value of the "bank_account" field.
	BankAccount string `json:"bank_account,omitempty"`
	// ExtractedData holds the value of the "extracted_data" field.
	ExtractedData map[string]map[string]string `json:"extracted_data,omitempty"`
	// MatchScore holds the value of the "match_score" field.
	MatchScore *int `json:"match_score,omitempty"`
	// Deleted holds the value of the "deleted" field.
	Deleted bool `json:"deleted,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RequestQuery when eager-loading is set.
	Edges        RequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RequestEdges holds the relations/edges for other nodes in the graph.
type RequestEdges struct {
	// Documents holds the value of the documents edge.
	Documents []*RequestDocument `json:"documents,omitempty"`
	// Branches holds the value of the branches edge.
	Branches []*RequestBranch `json:"branches,omitempty"`
	// References holds the value of the references edge.
	References []*RequestReference `json:"references,omitempty"`
	// Revisions holds the value of the revisions edge.
	Revisions []*RequestRevision `json:"revisions,omitempty"`
	// Tracking holds the value of the tracking edge.
	Tracking []*TrackingEntry `json:"tracking,omitempty"`
	// Distributor holds the value of the distributor edge.
	Distributor *Distributor `json:"distributor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) DocumentsOrErr() ([]*RequestDocument, error) {
	if e.loadedTypes[0] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// BranchesOrErr returns the Branches value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) BranchesOrErr() ([]*RequestBranch, error) {
	if e.loadedTypes[1] {
		return e.Branches, nil
	}
	return nil, &NotLoadedError{edge: "branches"}
}

// ReferencesOrErr returns the References value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) ReferencesOrErr() ([]*RequestReference, error) {
	if e.loadedTypes[2] {
		return e.References, nil
	}
	return nil, &NotLoadedError{edge: "references"}
}

// RevisionsOrErr returns the Revisions value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) RevisionsOrErr() ([]*RequestRevision, error) {
	if e.loadedTypes[3] {
		return e.Revisions, nil
	}
	return nil, &NotLoadedError{edge: "revisions"}
}

// TrackingOrErr returns the Tracking value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) TrackingOrErr() ([]*TrackingEntry, error) {
	if e.loadedTypes[4] {
		return e.Tracking, nil
	}
	return nil, &NotLoadedError{edge: "tracking"}
}

// DistributorOrErr returns the Distributor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RequestEdges) DistributorOrErr() (*Distributor, error) {
	if e.Distributor != nil {
		return e.Distributor, nil
	} else if e.loadedTypes[5] {
		return nil, &NotFoundError{label: distributor.Label}
	}
	return nil, &NotLoadedError{edge: "distributor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Request) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case request.FieldAssignedReviewer:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case request.FieldExtractedData:
			values[i] = new([]byte)
		case request.FieldDeleted:
			values[i] = new(sql.NullBool)
		case request.FieldMatchScore:
			values[i] = new(sql.NullInt64)
		case request.FieldState, request.FieldBusinessName, request.FieldOwnerName, request.FieldNit, request.FieldDpi, request.FieldEmail, request.FieldPhone, request.FieldAddress, request.FieldDepartment, request.FieldMunicipality, request.FieldBankName, request.FieldBankAccount:
			values[i] = new(sql.NullString)
		case request.FieldCreatedAt, request.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case request.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Request fields.
func (_m *Request) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case request.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case request.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case request.FieldAssignedReviewer:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_reviewer", values[i])
			} else if value.Valid {
				_m.AssignedReviewer = new(uuid.UUID)
				*_m.AssignedReviewer = *value.S.(*uuid.UUID)
			}
		case request.FieldBusinessName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_name", values[i])
			} else if value.Valid {
				_m.BusinessName = value.String
			}
		case request.FieldOwnerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_name", values[i])
			} else if value.Valid {
				_m.OwnerName = value.String
			}
		case request.FieldNit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nit", values[i])
			} else if value.Valid {
				_m.Nit = value.String
			}
		case request.FieldDpi:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dpi", values[i])
			} else if value.Valid {
				_m.Dpi = value.String
			}
		case request.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case request.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case request.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case request.FieldDepartment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field department", values[i])
			} else if value.Valid {
				_m.Department = value.String
			}
		case request.FieldMunicipality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field municipality", values[i])
			} else if value.Valid {
				_m.Municipality = value.String
			}
		case request.FieldBankName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_name", values[i])
			} else if value.Valid {
				_m.BankName = value.String
			}
		case request.FieldBankAccount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_account", values[i])
			} else if value.Valid {
				_m.BankAccount = value.String
			}
		case request.FieldExtractedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedData); err != nil {
					return fmt.Errorf("unmarshal field extracted_data: %w", err)
				}
			}
		case request.FieldMatchScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field match_score", values[i])
			} else if value.Valid {
				_m.MatchScore = new(int)
				*_m.MatchScore = int(value.Int64)
			}
		case request.FieldDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field deleted", values[i])
			} else if value.Valid {
				_m.Deleted = value.Bool
			}
		case request.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case request.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Request.
// This includes values selected through modifiers, order, etc.
func (_m *Request) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocuments queries the "documents" edge of the Request entity.
func (_m *Request) QueryDocuments() *RequestDocumentQuery {
	return NewRequestClient(_m.config).QueryDocuments(_m)
}

// QueryBranches queries the "branches" edge of the Request entity.
func (_m *Request) QueryBranches() *RequestBranchQuery {
	return NewRequestClient(_m.config).QueryBranches(_m)
}

// QueryReferences queries the "references" edge of the Request entity.
func (_m *Request) QueryReferences() *RequestReferenceQuery {
	return NewRequestClient(_m.config).QueryReferences(_m)
}

// QueryRevisions queries the "revisions" edge of the Request entity.
func (_m *Request) QueryRevisions() *RequestRevisionQuery {
	return NewRequestClient(_m.config).QueryRevisions(_m)
}

// QueryTracking queries the "tracking" edge of the Request entity.
func (_m *Request) QueryTracking() *TrackingEntryQuery {
	return NewRequestClient(_m.config).QueryTracking(_m)
}

// QueryDistributor queries the "distributor" edge of the Request entity.
func (_m *Request) QueryDistributor() *DistributorQuery {
	return NewRequestClient(_m.config).QueryDistributor(_m)
}

// Update returns a builder for updating this Request.
// Note that you need to call Request.Unwrap() before calling this method if this Request
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Request) Update() *RequestUpdateOne {
	return NewRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Request entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Request) Unwrap() *Request {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Request is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Request) String() string {
	var builder strings.Builder
	builder.WriteString("Request(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	if v := _m.AssignedReviewer; v != nil {
		builder.WriteString("assigned_reviewer=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("business_name=")
	builder.WriteString(_m.BusinessName)
	builder.WriteString(", ")
	builder.WriteString("owner_name=")
	builder.WriteString(_m.OwnerName)
	builder.WriteString(", ")
	builder.WriteString("nit=")
	builder.WriteString(_m.Nit)
	builder.WriteString(", ")
	builder.WriteString("dpi=")
	builder.WriteString(_m.Dpi)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
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
	builder.WriteString("bank_name=")
	builder.WriteString(_m.BankName)
	builder.WriteString(", ")
	builder.WriteString("bank_account=")
	builder.WriteString(_m.BankAccount)
	builder.WriteString(", ")
	builder.WriteString("extracted_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedData))
	builder.WriteString(", ")
	if v := _m.MatchScore; v != nil {
		builder.WriteString("match_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deleted))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Requests is a parsable slice of Request.
type Requests []*Request
