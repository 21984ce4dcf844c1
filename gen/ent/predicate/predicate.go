// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Distributor is the predicate function for distributor builders.
type Distributor func(*sql.Selector)

// DistributorBranch is the predicate function for distributorbranch builders.
type DistributorBranch func(*sql.Selector)

// DistributorDocument is the predicate function for distributordocument builders.
type DistributorDocument func(*sql.Selector)

// DistributorReference is the predicate function for distributorreference builders.
type DistributorReference func(*sql.Selector)

// Request is the predicate function for request builders.
type Request func(*sql.Selector)

// RequestBranch is the predicate function for requestbranch builders.
type RequestBranch func(*sql.Selector)

// RequestDocument is the predicate function for requestdocument builders.
type RequestDocument func(*sql.Selector)

// RequestReference is the predicate function for requestreference builders.
type RequestReference func(*sql.Selector)

// RequestRevision is the predicate function for requestrevision builders.
type RequestRevision func(*sql.Selector)

// TrackingEntry is the predicate function for trackingentry builders.
type TrackingEntry func(*sql.Selector)
