// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributor"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
	"github.com/jmonzon-gt/distribuidores/gen/ent/request"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestbranch"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestdocument"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestreference"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestrevision"
	"github.com/jmonzon-gt/distribuidores/gen/ent/trackingentry"
)

// RequestUpdate is the builder for updating Request entities.
type RequestUpdate struct {
	config
	hooks    []Hook
	mutation *RequestMutation
}

// Where appends a list predicates to the RequestUpdate builder.
func (_u *RequestUpdate) Where(ps ...predicate.Request) *RequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *RequestUpdate) SetState(v string) *RequestUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableState(v *string) *RequestUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAssignedReviewer sets the "assigned_reviewer" field.
func (_u *RequestUpdate) SetAssignedReviewer(v uuid.UUID) *RequestUpdate {
	_u.mutation.SetAssignedReviewer(v)
	return _u
}

// SetNillableAssignedReviewer sets the "assigned_reviewer" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableAssignedReviewer(v *uuid.UUID) *RequestUpdate {
	if v != nil {
		_u.SetAssignedReviewer(*v)
	}
	return _u
}

// ClearAssignedReviewer clears the value of the "assigned_reviewer" field.
func (_u *RequestUpdate) ClearAssignedReviewer() *RequestUpdate {
	_u.mutation.ClearAssignedReviewer()
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *RequestUpdate) SetBusinessName(v string) *RequestUpdate {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableBusinessName(v *string) *RequestUpdate {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetOwnerName sets the "owner_name" field.
func (_u *RequestUpdate) SetOwnerName(v string) *RequestUpdate {
	_u.mutation.SetOwnerName(v)
	return _u
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableOwnerName(v *string) *RequestUpdate {
	if v != nil {
		_u.SetOwnerName(*v)
	}
	return _u
}

// ClearOwnerName clears the value of the "owner_name" field.
func (_u *RequestUpdate) ClearOwnerName() *RequestUpdate {
	_u.mutation.ClearOwnerName()
	return _u
}

// SetNit sets the "nit" field.
func (_u *RequestUpdate) SetNit(v string) *RequestUpdate {
	_u.mutation.SetNit(v)
	return _u
}

// SetNillableNit sets the "nit" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableNit(v *string) *RequestUpdate {
	if v != nil {
		_u.SetNit(*v)
	}
	return _u
}

// ClearNit clears the value of the "nit" field.
func (_u *RequestUpdate) ClearNit() *RequestUpdate {
	_u.mutation.ClearNit()
	return _u
}

// SetDpi sets the "dpi" field.
func (_u *RequestUpdate) SetDpi(v string) *RequestUpdate {
	_u.mutation.SetDpi(v)
	return _u
}

// SetNillableDpi sets the "dpi" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableDpi(v *string) *RequestUpdate {
	if v != nil {
		_u.SetDpi(*v)
	}
	return _u
}

// ClearDpi clears the value of the "dpi" field.
func (_u *RequestUpdate) ClearDpi() *RequestUpdate {
	_u.mutation.ClearDpi()
	return _u
}

// SetEmail sets the "email" field.
func (_u *RequestUpdate) SetEmail(v string) *RequestUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableEmail(v *string) *RequestUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *RequestUpdate) ClearEmail() *RequestUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *RequestUpdate) SetPhone(v string) *RequestUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *RequestUpdate) SetNillablePhone(v *string) *RequestUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *RequestUpdate) ClearPhone() *RequestUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *RequestUpdate) SetAddress(v string) *RequestUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableAddress(v *string) *RequestUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *RequestUpdate) ClearAddress() *RequestUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *RequestUpdate) SetDepartment(v string) *RequestUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableDepartment(v *string) *RequestUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *RequestUpdate) ClearDepartment() *RequestUpdate {
	_u.mutation.ClearDepartment()
	return _u
}

// SetMunicipality sets the "municipality" field.
func (_u *RequestUpdate) SetMunicipality(v string) *RequestUpdate {
	_u.mutation.SetMunicipality(v)
	return _u
}

// SetNillableMunicipality sets the "municipality" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableMunicipality(v *string) *RequestUpdate {
	if v != nil {
		_u.SetMunicipality(*v)
	}
	return _u
}

// ClearMunicipality clears the value of the "municipality" field.
func (_u *RequestUpdate) ClearMunicipality() *RequestUpdate {
	_u.mutation.ClearMunicipality()
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *RequestUpdate) SetBankName(v string) *RequestUpdate {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableBankName(v *string) *RequestUpdate {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *RequestUpdate) ClearBankName() *RequestUpdate {
	_u.mutation.ClearBankName()
	return _u
}

// SetBankAccount sets the "bank_account" field.
func (_u *RequestUpdate) SetBankAccount(v string) *RequestUpdate {
	_u.mutation.SetBankAccount(v)
	return _u
}

// SetNillableBankAccount sets the "bank_account" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableBankAccount(v *string) *RequestUpdate {
	if v != nil {
		_u.SetBankAccount(*v)
	}
	return _u
}

// ClearBankAccount clears the value of the "bank_account" field.
func (_u *RequestUpdate) ClearBankAccount() *RequestUpdate {
	_u.mutation.ClearBankAccount()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *RequestUpdate) SetExtractedData(v map[string]map[string]string) *RequestUpdate {
	_u.mutation.SetExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *RequestUpdate) ClearExtractedData() *RequestUpdate {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetMatchScore sets the "match_score" field.
func (_u *RequestUpdate) SetMatchScore(v int) *RequestUpdate {
	_u.mutation.ResetMatchScore()
	_u.mutation.SetMatchScore(v)
	return _u
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableMatchScore(v *int) *RequestUpdate {
	if v != nil {
		_u.SetMatchScore(*v)
	}
	return _u
}

// AddMatchScore adds value to the "match_score" field.
func (_u *RequestUpdate) AddMatchScore(v int) *RequestUpdate {
	_u.mutation.AddMatchScore(v)
	return _u
}

// ClearMatchScore clears the value of the "match_score" field.
func (_u *RequestUpdate) ClearMatchScore() *RequestUpdate {
	_u.mutation.ClearMatchScore()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *RequestUpdate) SetDeleted(v bool) *RequestUpdate {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableDeleted(v *bool) *RequestUpdate {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestUpdate) SetUpdatedAt(v time.Time) *RequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the RequestDocument entity by IDs.
func (_u *RequestUpdate) AddDocumentIDs(ids ...uuid.UUID) *RequestUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the RequestDocument entity.
func (_u *RequestUpdate) AddDocuments(v ...*RequestDocument) *RequestUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddBranchIDs adds the "branches" edge to the RequestBranch entity by IDs.
func (_u *RequestUpdate) AddBranchIDs(ids ...uuid.UUID) *RequestUpdate {
	_u.mutation.AddBranchIDs(ids...)
	return _u
}

// AddBranches adds the "branches" edges to the RequestBranch entity.
func (_u *RequestUpdate) AddBranches(v ...*RequestBranch) *RequestUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBranchIDs(ids...)
}

// AddReferenceIDs adds the "references" edge to the RequestReference entity by IDs.
func (_u *RequestUpdate) AddReferenceIDs(ids ...uuid.UUID) *RequestUpdate {
	_u.mutation.AddReferenceIDs(ids...)
	return _u
}

// AddReferences adds the "references" edges to the RequestReference entity.
func (_u *RequestUpdate) AddReferences(v ...*RequestReference) *RequestUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferenceIDs(ids...)
}

// AddRevisionIDs adds the "revisions" edge to the RequestRevision entity by IDs.
func (_u *RequestUpdate) AddRevisionIDs(ids ...uuid.UUID) *RequestUpdate {
	_u.mutation.AddRevisionIDs(ids...)
	return _u
}

// AddRevisions adds the "revisions" edges to the RequestRevision entity.
func (_u *RequestUpdate) AddRevisions(v ...*RequestRevision) *RequestUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRevisionIDs(ids...)
}

// AddTrackingIDs adds the "tracking" edge to the TrackingEntry entity by IDs.
func (_u *RequestUpdate) AddTrackingIDs(ids ...uuid.UUID) *RequestUpdate {
	_u.mutation.AddTrackingIDs(ids...)
	return _u
}

// AddTracking adds the "tracking" edges to the TrackingEntry entity.
func (_u *RequestUpdate) AddTracking(v ...*TrackingEntry) *RequestUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrackingIDs(ids...)
}

// SetDistributorID sets the "distributor" edge to the Distributor entity by ID.
func (_u *RequestUpdate) SetDistributorID(id uuid.UUID) *RequestUpdate {
	_u.mutation.SetDistributorID(id)
	return _u
}

// SetNillableDistributorID sets the "distributor" edge to the Distributor entity by ID if the given value is not nil.
func (_u *RequestUpdate) SetNillableDistributorID(id *uuid.UUID) *RequestUpdate {
	if id != nil {
		_u = _u.SetDistributorID(*id)
	}
	return _u
}

// SetDistributor sets the "distributor" edge to the Distributor entity.
func (_u *RequestUpdate) SetDistributor(v *Distributor) *RequestUpdate {
	return _u.SetDistributorID(v.ID)
}

// Mutation returns the RequestMutation object of the builder.
func (_u *RequestUpdate) Mutation() *RequestMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the RequestDocument entity.
func (_u *RequestUpdate) ClearDocuments() *RequestUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to RequestDocument entities by IDs.
func (_u *RequestUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *RequestUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to RequestDocument entities.
func (_u *RequestUpdate) RemoveDocuments(v ...*RequestDocument) *RequestUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearBranches clears all "branches" edges to the RequestBranch entity.
func (_u *RequestUpdate) ClearBranches() *RequestUpdate {
	_u.mutation.ClearBranches()
	return _u
}

// RemoveBranchIDs removes the "branches" edge to RequestBranch entities by IDs.
func (_u *RequestUpdate) RemoveBranchIDs(ids ...uuid.UUID) *RequestUpdate {
	_u.mutation.RemoveBranchIDs(ids...)
	return _u
}

// RemoveBranches removes "branches" edges to RequestBranch entities.
func (_u *RequestUpdate) RemoveBranches(v ...*RequestBranch) *RequestUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBranchIDs(ids...)
}

// ClearReferences clears all "references" edges to the RequestReference entity.
func (_u *RequestUpdate) ClearReferences() *RequestUpdate {
	_u.mutation.ClearReferences()
	return _u
}

// RemoveReferenceIDs removes the "references" edge to RequestReference entities by IDs.
func (_u *RequestUpdate) RemoveReferenceIDs(ids ...uuid.UUID) *RequestUpdate {
	_u.mutation.RemoveReferenceIDs(ids...)
	return _u
}

// RemoveReferences removes "references" edges to RequestReference entities.
func (_u *RequestUpdate) RemoveReferences(v ...*RequestReference) *RequestUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferenceIDs(ids...)
}

// ClearRevisions clears all "revisions" edges to the RequestRevision entity.
func (_u *RequestUpdate) ClearRevisions() *RequestUpdate {
	_u.mutation.ClearRevisions()
	return _u
}

// RemoveRevisionIDs removes the "revisions" edge to RequestRevision entities by IDs.
func (_u *RequestUpdate) RemoveRevisionIDs(ids ...uuid.UUID) *RequestUpdate {
	_u.mutation.RemoveRevisionIDs(ids...)
	return _u
}

// RemoveRevisions removes "revisions" edges to RequestRevision entities.
func (_u *RequestUpdate) RemoveRevisions(v ...*RequestRevision) *RequestUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRevisionIDs(ids...)
}

// ClearTracking clears all "tracking" edges to the TrackingEntry entity.
func (_u *RequestUpdate) ClearTracking() *RequestUpdate {
	_u.mutation.ClearTracking()
	return _u
}

// RemoveTrackingIDs removes the "tracking" edge to TrackingEntry entities by IDs.
func (_u *RequestUpdate) RemoveTrackingIDs(ids ...uuid.UUID) *RequestUpdate {
	_u.mutation.RemoveTrackingIDs(ids...)
	return _u
}

// RemoveTracking removes "tracking" edges to TrackingEntry entities.
func (_u *RequestUpdate) RemoveTracking(v ...*TrackingEntry) *RequestUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrackingIDs(ids...)
}

// ClearDistributor clears the "distributor" edge to the Distributor entity.
func (_u *RequestUpdate) ClearDistributor() *RequestUpdate {
	_u.mutation.ClearDistributor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := request.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := request.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Request.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BusinessName(); ok {
		if err := request.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "Request.business_name": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(request.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedReviewer(); ok {
		_spec.SetField(request.FieldAssignedReviewer, field.TypeUUID, value)
	}
	if _u.mutation.AssignedReviewerCleared() {
		_spec.ClearField(request.FieldAssignedReviewer, field.TypeUUID)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(request.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerName(); ok {
		_spec.SetField(request.FieldOwnerName, field.TypeString, value)
	}
	if _u.mutation.OwnerNameCleared() {
		_spec.ClearField(request.FieldOwnerName, field.TypeString)
	}
	if value, ok := _u.mutation.Nit(); ok {
		_spec.SetField(request.FieldNit, field.TypeString, value)
	}
	if _u.mutation.NitCleared() {
		_spec.ClearField(request.FieldNit, field.TypeString)
	}
	if value, ok := _u.mutation.Dpi(); ok {
		_spec.SetField(request.FieldDpi, field.TypeString, value)
	}
	if _u.mutation.DpiCleared() {
		_spec.ClearField(request.FieldDpi, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(request.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(request.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(request.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(request.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(request.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(request.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(request.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(request.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Municipality(); ok {
		_spec.SetField(request.FieldMunicipality, field.TypeString, value)
	}
	if _u.mutation.MunicipalityCleared() {
		_spec.ClearField(request.FieldMunicipality, field.TypeString)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(request.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(request.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.BankAccount(); ok {
		_spec.SetField(request.FieldBankAccount, field.TypeString, value)
	}
	if _u.mutation.BankAccountCleared() {
		_spec.ClearField(request.FieldBankAccount, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(request.FieldExtractedData, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(request.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.MatchScore(); ok {
		_spec.SetField(request.FieldMatchScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMatchScore(); ok {
		_spec.AddField(request.FieldMatchScore, field.TypeInt, value)
	}
	if _u.mutation.MatchScoreCleared() {
		_spec.ClearField(request.FieldMatchScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(request.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(request.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.DocumentsTable,
			Columns: []string{request.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestdocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.DocumentsTable,
			Columns: []string{request.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.DocumentsTable,
			Columns: []string{request.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.BranchesTable,
			Columns: []string{request.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestbranch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBranchesIDs(); len(nodes) > 0 && !_u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.BranchesTable,
			Columns: []string{request.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestbranch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.BranchesTable,
			Columns: []string{request.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestbranch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.ReferencesTable,
			Columns: []string{request.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestreference.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferencesIDs(); len(nodes) > 0 && !_u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.ReferencesTable,
			Columns: []string{request.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.ReferencesTable,
			Columns: []string{request.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.RevisionsTable,
			Columns: []string{request.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestrevision.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRevisionsIDs(); len(nodes) > 0 && !_u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.RevisionsTable,
			Columns: []string{request.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestrevision.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RevisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.RevisionsTable,
			Columns: []string{request.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestrevision.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrackingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TrackingTable,
			Columns: []string{request.TrackingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrackingIDs(); len(nodes) > 0 && !_u.mutation.TrackingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TrackingTable,
			Columns: []string{request.TrackingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TrackingTable,
			Columns: []string{request.TrackingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DistributorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   request.DistributorTable,
			Columns: []string{request.DistributorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DistributorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   request.DistributorTable,
			Columns: []string{request.DistributorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestUpdateOne is the builder for updating a single Request entity.
type RequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestMutation
}

// SetState sets the "state" field.
func (_u *RequestUpdateOne) SetState(v string) *RequestUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableState(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAssignedReviewer sets the "assigned_reviewer" field.
func (_u *RequestUpdateOne) SetAssignedReviewer(v uuid.UUID) *RequestUpdateOne {
	_u.mutation.SetAssignedReviewer(v)
	return _u
}

// SetNillableAssignedReviewer sets the "assigned_reviewer" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableAssignedReviewer(v *uuid.UUID) *RequestUpdateOne {
	if v != nil {
		_u.SetAssignedReviewer(*v)
	}
	return _u
}

// ClearAssignedReviewer clears the value of the "assigned_reviewer" field.
func (_u *RequestUpdateOne) ClearAssignedReviewer() *RequestUpdateOne {
	_u.mutation.ClearAssignedReviewer()
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *RequestUpdateOne) SetBusinessName(v string) *RequestUpdateOne {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableBusinessName(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetOwnerName sets the "owner_name" field.
func (_u *RequestUpdateOne) SetOwnerName(v string) *RequestUpdateOne {
	_u.mutation.SetOwnerName(v)
	return _u
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableOwnerName(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetOwnerName(*v)
	}
	return _u
}

// ClearOwnerName clears the value of the "owner_name" field.
func (_u *RequestUpdateOne) ClearOwnerName() *RequestUpdateOne {
	_u.mutation.ClearOwnerName()
	return _u
}

// SetNit sets the "nit" field.
func (_u *RequestUpdateOne) SetNit(v string) *RequestUpdateOne {
	_u.mutation.SetNit(v)
	return _u
}

// SetNillableNit sets the "nit" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableNit(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetNit(*v)
	}
	return _u
}

// ClearNit clears the value of the "nit" field.
func (_u *RequestUpdateOne) ClearNit() *RequestUpdateOne {
	_u.mutation.ClearNit()
	return _u
}

// SetDpi sets the "dpi" field.
func (_u *RequestUpdateOne) SetDpi(v string) *RequestUpdateOne {
	_u.mutation.SetDpi(v)
	return _u
}

// SetNillableDpi sets the "dpi" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableDpi(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetDpi(*v)
	}
	return _u
}

// ClearDpi clears the value of the "dpi" field.
func (_u *RequestUpdateOne) ClearDpi() *RequestUpdateOne {
	_u.mutation.ClearDpi()
	return _u
}

// SetEmail sets the "email" field.
func (_u *RequestUpdateOne) SetEmail(v string) *RequestUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableEmail(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *RequestUpdateOne) ClearEmail() *RequestUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *RequestUpdateOne) SetPhone(v string) *RequestUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillablePhone(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *RequestUpdateOne) ClearPhone() *RequestUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *RequestUpdateOne) SetAddress(v string) *RequestUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableAddress(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *RequestUpdateOne) ClearAddress() *RequestUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *RequestUpdateOne) SetDepartment(v string) *RequestUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableDepartment(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *RequestUpdateOne) ClearDepartment() *RequestUpdateOne {
	_u.mutation.ClearDepartment()
	return _u
}

// SetMunicipality sets the "municipality" field.
func (_u *RequestUpdateOne) SetMunicipality(v string) *RequestUpdateOne {
	_u.mutation.SetMunicipality(v)
	return _u
}

// SetNillableMunicipality sets the "municipality" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableMunicipality(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetMunicipality(*v)
	}
	return _u
}

// ClearMunicipality clears the value of the "municipality" field.
func (_u *RequestUpdateOne) ClearMunicipality() *RequestUpdateOne {
	_u.mutation.ClearMunicipality()
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *RequestUpdateOne) SetBankName(v string) *RequestUpdateOne {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableBankName(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *RequestUpdateOne) ClearBankName() *RequestUpdateOne {
	_u.mutation.ClearBankName()
	return _u
}

// SetBankAccount sets the "bank_account" field.
func (_u *RequestUpdateOne) SetBankAccount(v string) *RequestUpdateOne {
	_u.mutation.SetBankAccount(v)
	return _u
}

// SetNillableBankAccount sets the "bank_account" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableBankAccount(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetBankAccount(*v)
	}
	return _u
}

// ClearBankAccount clears the value of the "bank_account" field.
func (_u *RequestUpdateOne) ClearBankAccount() *RequestUpdateOne {
	_u.mutation.ClearBankAccount()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *RequestUpdateOne) SetExtractedData(v map[string]map[string]string) *RequestUpdateOne {
	_u.mutation.SetExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *RequestUpdateOne) ClearExtractedData() *RequestUpdateOne {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetMatchScore sets the "match_score" field.
func (_u *RequestUpdateOne) SetMatchScore(v int) *RequestUpdateOne {
	_u.mutation.ResetMatchScore()
	_u.mutation.SetMatchScore(v)
	return _u
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableMatchScore(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetMatchScore(*v)
	}
	return _u
}

// AddMatchScore adds value to the "match_score" field.
func (_u *RequestUpdateOne) AddMatchScore(v int) *RequestUpdateOne {
	_u.mutation.AddMatchScore(v)
	return _u
}

// ClearMatchScore clears the value of the "match_score" field.
func (_u *RequestUpdateOne) ClearMatchScore() *RequestUpdateOne {
	_u.mutation.ClearMatchScore()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *RequestUpdateOne) SetDeleted(v bool) *RequestUpdateOne {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableDeleted(v *bool) *RequestUpdateOne {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestUpdateOne) SetUpdatedAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the RequestDocument entity by IDs.
func (_u *RequestUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *RequestUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the RequestDocument entity.
func (_u *RequestUpdateOne) AddDocuments(v ...*RequestDocument) *RequestUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddBranchIDs adds the "branches" edge to the RequestBranch entity by IDs.
func (_u *RequestUpdateOne) AddBranchIDs(ids ...uuid.UUID) *RequestUpdateOne {
	_u.mutation.AddBranchIDs(ids...)
	return _u
}

// AddBranches adds the "branches" edges to the RequestBranch entity.
func (_u *RequestUpdateOne) AddBranches(v ...*RequestBranch) *RequestUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBranchIDs(ids...)
}

// AddReferenceIDs adds the "references" edge to the RequestReference entity by IDs.
func (_u *RequestUpdateOne) AddReferenceIDs(ids ...uuid.UUID) *RequestUpdateOne {
	_u.mutation.AddReferenceIDs(ids...)
	return _u
}

// AddReferences adds the "references" edges to the RequestReference entity.
func (_u *RequestUpdateOne) AddReferences(v ...*RequestReference) *RequestUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferenceIDs(ids...)
}

// AddRevisionIDs adds the "revisions" edge to the RequestRevision entity by IDs.
func (_u *RequestUpdateOne) AddRevisionIDs(ids ...uuid.UUID) *RequestUpdateOne {
	_u.mutation.AddRevisionIDs(ids...)
	return _u
}

// AddRevisions adds the "revisions" edges to the RequestRevision entity.
func (_u *RequestUpdateOne) AddRevisions(v ...*RequestRevision) *RequestUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRevisionIDs(ids...)
}

// AddTrackingIDs adds the "tracking" edge to the TrackingEntry entity by IDs.
func (_u *RequestUpdateOne) AddTrackingIDs(ids ...uuid.UUID) *RequestUpdateOne {
	_u.mutation.AddTrackingIDs(ids...)
	return _u
}

// AddTracking adds the "tracking" edges to the TrackingEntry entity.
func (_u *RequestUpdateOne) AddTracking(v ...*TrackingEntry) *RequestUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrackingIDs(ids...)
}

// SetDistributorID sets the "distributor" edge to the Distributor entity by ID.
func (_u *RequestUpdateOne) SetDistributorID(id uuid.UUID) *RequestUpdateOne {
	_u.mutation.SetDistributorID(id)
	return _u
}

// SetNillableDistributorID sets the "distributor" edge to the Distributor entity by ID if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableDistributorID(id *uuid.UUID) *RequestUpdateOne {
	if id != nil {
		_u = _u.SetDistributorID(*id)
	}
	return _u
}

// SetDistributor sets the "distributor" edge to the Distributor entity.
func (_u *RequestUpdateOne) SetDistributor(v *Distributor) *RequestUpdateOne {
	return _u.SetDistributorID(v.ID)
}

// Mutation returns the RequestMutation object of the builder.
func (_u *RequestUpdateOne) Mutation() *RequestMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the RequestDocument entity.
func (_u *RequestUpdateOne) ClearDocuments() *RequestUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to RequestDocument entities by IDs.
func (_u *RequestUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *RequestUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to RequestDocument entities.
func (_u *RequestUpdateOne) RemoveDocuments(v ...*RequestDocument) *RequestUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearBranches clears all "branches" edges to the RequestBranch entity.
func (_u *RequestUpdateOne) ClearBranches() *RequestUpdateOne {
	_u.mutation.ClearBranches()
	return _u
}

// RemoveBranchIDs removes the "branches" edge to RequestBranch entities by IDs.
func (_u *RequestUpdateOne) RemoveBranchIDs(ids ...uuid.UUID) *RequestUpdateOne {
	_u.mutation.RemoveBranchIDs(ids...)
	return _u
}

// RemoveBranches removes "branches" edges to RequestBranch entities.
func (_u *RequestUpdateOne) RemoveBranches(v ...*RequestBranch) *RequestUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBranchIDs(ids...)
}

// ClearReferences clears all "references" edges to the RequestReference entity.
func (_u *RequestUpdateOne) ClearReferences() *RequestUpdateOne {
	_u.mutation.ClearReferences()
	return _u
}

// RemoveReferenceIDs removes the "references" edge to RequestReference entities by IDs.
func (_u *RequestUpdateOne) RemoveReferenceIDs(ids ...uuid.UUID) *RequestUpdateOne {
	_u.mutation.RemoveReferenceIDs(ids...)
	return _u
}

// RemoveReferences removes "references" edges to RequestReference entities.
func (_u *RequestUpdateOne) RemoveReferences(v ...*RequestReference) *RequestUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferenceIDs(ids...)
}

// ClearRevisions clears all "revisions" edges to the RequestRevision entity.
func (_u *RequestUpdateOne) ClearRevisions() *RequestUpdateOne {
	_u.mutation.ClearRevisions()
	return _u
}

// RemoveRevisionIDs removes the "revisions" edge to RequestRevision entities by IDs.
func (_u *RequestUpdateOne) RemoveRevisionIDs(ids ...uuid.UUID) *RequestUpdateOne {
	_u.mutation.RemoveRevisionIDs(ids...)
	return _u
}

// RemoveRevisions removes "revisions" edges to RequestRevision entities.
func (_u *RequestUpdateOne) RemoveRevisions(v ...*RequestRevision) *RequestUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRevisionIDs(ids...)
}

// ClearTracking clears all "tracking" edges to the TrackingEntry entity.
func (_u *RequestUpdateOne) ClearTracking() *RequestUpdateOne {
	_u.mutation.ClearTracking()
	return _u
}

// RemoveTrackingIDs removes the "tracking" edge to TrackingEntry entities by IDs.
func (_u *RequestUpdateOne) RemoveTrackingIDs(ids ...uuid.UUID) *RequestUpdateOne {
	_u.mutation.RemoveTrackingIDs(ids...)
	return _u
}

// RemoveTracking removes "tracking" edges to TrackingEntry entities.
func (_u *RequestUpdateOne) RemoveTracking(v ...*TrackingEntry) *RequestUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrackingIDs(ids...)
}

// ClearDistributor clears the "distributor" edge to the Distributor entity.
func (_u *RequestUpdateOne) ClearDistributor() *RequestUpdateOne {
	_u.mutation.ClearDistributor()
	return _u
}

// Where appends a list predicates to the RequestUpdate builder.
func (_u *RequestUpdateOne) Where(ps ...predicate.Request) *RequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestUpdateOne) Select(field string, fields ...string) *RequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Request entity.
func (_u *RequestUpdateOne) Save(ctx context.Context) (*Request, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestUpdateOne) SaveX(ctx context.Context) *Request {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := request.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := request.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Request.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BusinessName(); ok {
		if err := request.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "Request.business_name": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestUpdateOne) sqlSave(ctx context.Context) (_node *Request, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Request.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, request.FieldID)
		for _, f := range fields {
			if !request.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != request.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(request.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedReviewer(); ok {
		_spec.SetField(request.FieldAssignedReviewer, field.TypeUUID, value)
	}
	if _u.mutation.AssignedReviewerCleared() {
		_spec.ClearField(request.FieldAssignedReviewer, field.TypeUUID)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(request.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerName(); ok {
		_spec.SetField(request.FieldOwnerName, field.TypeString, value)
	}
	if _u.mutation.OwnerNameCleared() {
		_spec.ClearField(request.FieldOwnerName, field.TypeString)
	}
	if value, ok := _u.mutation.Nit(); ok {
		_spec.SetField(request.FieldNit, field.TypeString, value)
	}
	if _u.mutation.NitCleared() {
		_spec.ClearField(request.FieldNit, field.TypeString)
	}
	if value, ok := _u.mutation.Dpi(); ok {
		_spec.SetField(request.FieldDpi, field.TypeString, value)
	}
	if _u.mutation.DpiCleared() {
		_spec.ClearField(request.FieldDpi, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(request.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(request.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(request.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(request.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(request.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(request.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(request.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(request.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Municipality(); ok {
		_spec.SetField(request.FieldMunicipality, field.TypeString, value)
	}
	if _u.mutation.MunicipalityCleared() {
		_spec.ClearField(request.FieldMunicipality, field.TypeString)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(request.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(request.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.BankAccount(); ok {
		_spec.SetField(request.FieldBankAccount, field.TypeString, value)
	}
	if _u.mutation.BankAccountCleared() {
		_spec.ClearField(request.FieldBankAccount, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(request.FieldExtractedData, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(request.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.MatchScore(); ok {
		_spec.SetField(request.FieldMatchScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMatchScore(); ok {
		_spec.AddField(request.FieldMatchScore, field.TypeInt, value)
	}
	if _u.mutation.MatchScoreCleared() {
		_spec.ClearField(request.FieldMatchScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(request.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(request.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.DocumentsTable,
			Columns: []string{request.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestdocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.DocumentsTable,
			Columns: []string{request.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.DocumentsTable,
			Columns: []string{request.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.BranchesTable,
			Columns: []string{request.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestbranch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBranchesIDs(); len(nodes) > 0 && !_u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.BranchesTable,
			Columns: []string{request.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestbranch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.BranchesTable,
			Columns: []string{request.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestbranch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.ReferencesTable,
			Columns: []string{request.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestreference.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferencesIDs(); len(nodes) > 0 && !_u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.ReferencesTable,
			Columns: []string{request.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.ReferencesTable,
			Columns: []string{request.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.RevisionsTable,
			Columns: []string{request.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestrevision.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRevisionsIDs(); len(nodes) > 0 && !_u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.RevisionsTable,
			Columns: []string{request.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestrevision.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RevisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.RevisionsTable,
			Columns: []string{request.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestrevision.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrackingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TrackingTable,
			Columns: []string{request.TrackingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrackingIDs(); len(nodes) > 0 && !_u.mutation.TrackingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TrackingTable,
			Columns: []string{request.TrackingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TrackingTable,
			Columns: []string{request.TrackingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DistributorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   request.DistributorTable,
			Columns: []string{request.DistributorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DistributorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   request.DistributorTable,
			Columns: []string{request.DistributorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Request{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
