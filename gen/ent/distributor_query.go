// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributor"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorbranch"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributordocument"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorreference"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
	"github.com/jmonzon-gt/distribuidores/gen/ent/request"
)

// DistributorQuery is the builder for querying Distributor entities.
type DistributorQuery struct {
	config
	ctx            *QueryContext
	order          []distributor.OrderOption
	inters         []Interceptor
	predicates     []predicate.Distributor
	withRequest    *RequestQuery
	withDocuments  *DistributorDocumentQuery
	withBranches   *DistributorBranchQuery
	withReferences *DistributorReferenceQuery
	modifiers      []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DistributorQuery builder.
func (_q *DistributorQuery) Where(ps ...predicate.Distributor) *DistributorQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DistributorQuery) Limit(limit int) *DistributorQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DistributorQuery) Offset(offset int) *DistributorQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DistributorQuery) Unique(unique bool) *DistributorQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DistributorQuery) Order(o ...distributor.OrderOption) *DistributorQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRequest chains the current query on the "request" edge.
func (_q *DistributorQuery) QueryRequest() *RequestQuery {
	query := (&RequestClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(distributor.Table, distributor.FieldID, selector),
			sqlgraph.To(request.Table, request.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, distributor.RequestTable, distributor.RequestColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDocuments chains the current query on the "documents" edge.
func (_q *DistributorQuery) QueryDocuments() *DistributorDocumentQuery {
	query := (&DistributorDocumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(distributor.Table, distributor.FieldID, selector),
			sqlgraph.To(distributordocument.Table, distributordocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, distributor.DocumentsTable, distributor.DocumentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBranches chains the current query on the "branches" edge.
func (_q *DistributorQuery) QueryBranches() *DistributorBranchQuery {
	query := (&DistributorBranchClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(distributor.Table, distributor.FieldID, selector),
			sqlgraph.To(distributorbranch.Table, distributorbranch.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, distributor.BranchesTable, distributor.BranchesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryReferences chains the current query on the "references" edge.
func (_q *DistributorQuery) QueryReferences() *DistributorReferenceQuery {
	query := (&DistributorReferenceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(distributor.Table, distributor.FieldID, selector),
			sqlgraph.To(distributorreference.Table, distributorreference.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, distributor.ReferencesTable, distributor.ReferencesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Distributor entity from the query.
// Returns a *NotFoundError when no Distributor was found.
func (_q *DistributorQuery) First(ctx context.Context) (*Distributor, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{distributor.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DistributorQuery) FirstX(ctx context.Context) *Distributor {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Distributor ID from the query.
// Returns a *NotFoundError when no Distributor ID was found.
func (_q *DistributorQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{distributor.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DistributorQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Distributor entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Distributor entity is found.
// Returns a *NotFoundError when no Distributor entities are found.
func (_q *DistributorQuery) Only(ctx context.Context) (*Distributor, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{distributor.Label}
	default:
		return nil, &NotSingularError{distributor.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DistributorQuery) OnlyX(ctx context.Context) *Distributor {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Distributor ID in the query.
// Returns a *NotSingularError when more than one Distributor ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DistributorQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{distributor.Label}
	default:
		err = &NotSingularError{distributor.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DistributorQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Distributors.
func (_q *DistributorQuery) All(ctx context.Context) ([]*Distributor, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Distributor, *DistributorQuery]()
	return withInterceptors[[]*Distributor](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DistributorQuery) AllX(ctx context.Context) []*Distributor {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Distributor IDs.
func (_q *DistributorQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(distributor.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DistributorQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DistributorQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DistributorQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DistributorQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DistributorQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DistributorQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DistributorQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DistributorQuery) Clone() *DistributorQuery {
	if _q == nil {
		return nil
	}
	return &DistributorQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]distributor.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.Distributor{}, _q.predicates...),
		withRequest:    _q.withRequest.Clone(),
		withDocuments:  _q.withDocuments.Clone(),
		withBranches:   _q.withBranches.Clone(),
		withReferences: _q.withReferences.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRequest tells the query-builder to eager-load the nodes that are connected to
// the "request" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DistributorQuery) WithRequest(opts ...func(*RequestQuery)) *DistributorQuery {
	query := (&RequestClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRequest = query
	return _q
}

// WithDocuments tells the query-builder to eager-load the nodes that are connected to
// the "documents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DistributorQuery) WithDocuments(opts ...func(*DistributorDocumentQuery)) *DistributorQuery {
	query := (&DistributorDocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocuments = query
	return _q
}

// WithBranches tells the query-builder to eager-load the nodes that are connected to
// the "branches" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DistributorQuery) WithBranches(opts ...func(*DistributorBranchQuery)) *DistributorQuery {
	query := (&DistributorBranchClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBranches = query
	return _q
}

// WithReferences tells the query-builder to eager-load the nodes that are connected to
// the "references" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DistributorQuery) WithReferences(opts ...func(*DistributorReferenceQuery)) *DistributorQuery {
	query := (&DistributorReferenceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withReferences = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		RequestID uuid.UUID `json:"request_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Distributor.Query().
//		GroupBy(distributor.FieldRequestID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DistributorQuery) GroupBy(field string, fields ...string) *DistributorGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DistributorGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = distributor.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		RequestID uuid.UUID `json:"request_id,omitempty"`
//	}
//
//	client.Distributor.Query().
//		Select(distributor.FieldRequestID).
//		Scan(ctx, &v)
func (_q *DistributorQuery) Select(fields ...string) *DistributorSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DistributorSelect{DistributorQuery: _q}
	sbuild.label = distributor.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DistributorSelect configured with the given aggregations.
func (_q *DistributorQuery) Aggregate(fns ...AggregateFunc) *DistributorSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DistributorQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !distributor.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *DistributorQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Distributor, error) {
	var (
		nodes       = []*Distributor{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withRequest != nil,
			_q.withDocuments != nil,
			_q.withBranches != nil,
			_q.withReferences != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Distributor).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Distributor{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withRequest; query != nil {
		if err := _q.loadRequest(ctx, query, nodes, nil,
			func(n *Distributor, e *Request) { n.Edges.Request = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDocuments; query != nil {
		if err := _q.loadDocuments(ctx, query, nodes,
			func(n *Distributor) { n.Edges.Documents = []*DistributorDocument{} },
			func(n *Distributor, e *DistributorDocument) { n.Edges.Documents = append(n.Edges.Documents, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBranches; query != nil {
		if err := _q.loadBranches(ctx, query, nodes,
			func(n *Distributor) { n.Edges.Branches = []*DistributorBranch{} },
			func(n *Distributor, e *DistributorBranch) { n.Edges.Branches = append(n.Edges.Branches, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withReferences; query != nil {
		if err := _q.loadReferences(ctx, query, nodes,
			func(n *Distributor) { n.Edges.References = []*DistributorReference{} },
			func(n *Distributor, e *DistributorReference) { n.Edges.References = append(n.Edges.References, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DistributorQuery) loadRequest(ctx context.Context, query *RequestQuery, nodes []*Distributor, init func(*Distributor), assign func(*Distributor, *Request)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Distributor)
	for i := range nodes {
		fk := nodes[i].RequestID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(request.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "request_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *DistributorQuery) loadDocuments(ctx context.Context, query *DistributorDocumentQuery, nodes []*Distributor, init func(*Distributor), assign func(*Distributor, *DistributorDocument)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Distributor)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(distributordocument.FieldDistributorID)
	}
	query.Where(predicate.DistributorDocument(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(distributor.DocumentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DistributorID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "distributor_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DistributorQuery) loadBranches(ctx context.Context, query *DistributorBranchQuery, nodes []*Distributor, init func(*Distributor), assign func(*Distributor, *DistributorBranch)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Distributor)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(distributorbranch.FieldDistributorID)
	}
	query.Where(predicate.DistributorBranch(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(distributor.BranchesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DistributorID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "distributor_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DistributorQuery) loadReferences(ctx context.Context, query *DistributorReferenceQuery, nodes []*Distributor, init func(*Distributor), assign func(*Distributor, *DistributorReference)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Distributor)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(distributorreference.FieldDistributorID)
	}
	query.Where(predicate.DistributorReference(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(distributor.ReferencesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DistributorID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "distributor_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DistributorQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DistributorQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(distributor.Table, distributor.Columns, sqlgraph.NewFieldSpec(distributor.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, distributor.FieldID)
		for i := range fields {
			if fields[i] != distributor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRequest != nil {
			_spec.Node.AddColumnOnce(distributor.FieldRequestID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *DistributorQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(distributor.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = distributor.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *DistributorQuery) ForUpdate(opts ...sql.LockOption) *DistributorQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *DistributorQuery) ForShare(opts ...sql.LockOption) *DistributorQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// DistributorGroupBy is the group-by builder for Distributor entities.
type DistributorGroupBy struct {
	selector
	build *DistributorQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DistributorGroupBy) Aggregate(fns ...AggregateFunc) *DistributorGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DistributorGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DistributorQuery, *DistributorGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DistributorGroupBy) sqlScan(ctx context.Context, root *DistributorQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DistributorSelect is the builder for selecting fields of Distributor entities.
type DistributorSelect struct {
	*DistributorQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DistributorSelect) Aggregate(fns ...AggregateFunc) *DistributorSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DistributorSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DistributorQuery, *DistributorSelect](ctx, _s.DistributorQuery, _s, _s.inters, v)
}

func (_s *DistributorSelect) sqlScan(ctx context.Context, root *DistributorQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
