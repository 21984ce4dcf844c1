// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributor"
	"github.com/jmonzon-gt/distribuidores/gen/ent/request"
)

// Distributor is the model entity for the Distributor schema.
type Distributor struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID uuid.UUID `json:"request_id,omitempty"`
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
	// Deleted holds the value of the "deleted" field.
	Deleted bool `json:"deleted,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DistributorQuery when eager-loading is set.
	Edges        DistributorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DistributorEdges holds the relations/edges for other nodes in the graph.
type DistributorEdges struct {
	// Request holds the value of the request edge.
	Request *Request `json:"request,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*DistributorDocument `json:"documents,omitempty"`
	// Branches holds the value of the branches edge.
	Branches []*DistributorBranch `json:"branches,omitempty"`
	// References holds the value of the references edge.
	References []*DistributorReference `json:"references,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DistributorEdges) RequestOrErr() (*Request, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: request.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e DistributorEdges) DocumentsOrErr() ([]*DistributorDocument, error) {
	if e.loadedTypes[1] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// BranchesOrErr returns the Branches value or an error if the edge
// was not loaded in eager-loading.
func (e DistributorEdges) BranchesOrErr() ([]*DistributorBranch, error) {
	if e.loadedTypes[2] {
		return e.Branches, nil
	}
	return nil, &NotLoadedError{edge: "branches"}
}

// ReferencesOrErr returns the References value or an error if the edge
// was not loaded in eager-loading.
func (e DistributorEdges) ReferencesOrErr() ([]*DistributorReference, error) {
	if e.loadedTypes[3] {
		return e.References, nil
	}
	return nil, &NotLoadedError{edge: "references"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Distributor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case distributor.FieldDeleted:
			values[i] = new(sql.NullBool)
		case distributor.FieldBusinessName, distributor.FieldOwnerName, distributor.FieldNit, distributor.FieldDpi, distributor.FieldEmail, distributor.FieldPhone, distributor.FieldAddress, distributor.FieldDepartment, distributor.FieldMunicipality, distributor.FieldBankName, distributor.FieldBankAccount:
			values[i] = new(sql.NullString)
		case distributor.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case distributor.FieldID, distributor.FieldRequestID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Distributor fields.
func (_m *Distributor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case distributor.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case distributor.FieldRequestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value != nil {
				_m.RequestID = *value
			}
		case distributor.FieldBusinessName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_name", values[i])
			} else if value.Valid {
				_m.BusinessName = value.String
			}
		case distributor.FieldOwnerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_name", values[i])
			} else if value.Valid {
				_m.OwnerName = value.String
			}
		case distributor.FieldNit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nit", values[i])
			} else if value.Valid {
				_m.Nit = value.String
			}
		case distributor.FieldDpi:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dpi", values[i])
			} else if value.Valid {
				_m.Dpi = value.String
			}
		case distributor.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case distributor.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case distributor.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case distributor.FieldDepartment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field department", values[i])
			} else if value.Valid {
				_m.Department = value.String
			}
		case distributor.FieldMunicipality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field municipality", values[i])
			} else if value.Valid {
				_m.Municipality = value.String
			}
		case distributor.FieldBankName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_name", values[i])
			} else if value.Valid {
				_m.BankName = value.String
			}
		case distributor.FieldBankAccount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_account", values[i])
			} else if value.Valid {
				_m.BankAccount = value.String
			}
		case distributor.FieldDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field deleted", values[i])
			} else if value.Valid {
				_m.Deleted = value.Bool
			}
		case distributor.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Distributor.
// This includes values selected through modifiers, order, etc.
func (_m *Distributor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the Distributor entity.
func (_m *Distributor) QueryRequest() *RequestQuery {
	return NewDistributorClient(_m.config).QueryRequest(_m)
}

// QueryDocuments queries the "documents" edge of the Distributor entity.
func (_m *Distributor) QueryDocuments() *DistributorDocumentQuery {
	return NewDistributorClient(_m.config).QueryDocuments(_m)
}

// QueryBranches queries the "branches" edge of the Distributor entity.
func (_m *Distributor) QueryBranches() *DistributorBranchQuery {
	return NewDistributorClient(_m.config).QueryBranches(_m)
}

// QueryReferences queries the "references" edge of the Distributor entity.
func (_m *Distributor) QueryReferences() *DistributorReferenceQuery {
	return NewDistributorClient(_m.config).QueryReferences(_m)
}

// Update returns a builder for updating this Distributor.
// Note that you need to call Distributor.Unwrap() before calling this method if this Distributor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Distributor) Update() *DistributorUpdateOne {
	return NewDistributorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Distributor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Distributor) Unwrap() *Distributor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Distributor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Distributor) String() string {
	var builder strings.Builder
	builder.WriteString("Distributor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestID))
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
	builder.WriteString("deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deleted))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Distributors is a parsable slice of Distributor.
type Distributors []*Distributor
