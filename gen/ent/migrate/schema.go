// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DistributorsColumns holds the columns for the "distributors" table.
	DistributorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "business_name", Type: field.TypeString},
		{Name: "owner_name", Type: field.TypeString, Nullable: true},
		{Name: "nit", Type: field.TypeString, Nullable: true},
		{Name: "dpi", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "department", Type: field.TypeString, Nullable: true},
		{Name: "municipality", Type: field.TypeString, Nullable: true},
		{Name: "bank_name", Type: field.TypeString, Nullable: true},
		{Name: "bank_account", Type: field.TypeString, Nullable: true},
		{Name: "deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeUUID, Unique: true},
	}
	// DistributorsTable holds the schema information for the "distributors" table.
	DistributorsTable = &schema.Table{
		Name:       "distributors",
		Columns:    DistributorsColumns,
		PrimaryKey: []*schema.Column{DistributorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "distributors_requests_distributor",
				Columns:    []*schema.Column{DistributorsColumns[14]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "distributor_business_name",
				Unique:  false,
				Columns: []*schema.Column{DistributorsColumns[1]},
			},
			{
				Name:    "distributor_deleted",
				Unique:  false,
				Columns: []*schema.Column{DistributorsColumns[12]},
			},
			{
				Name:    "distributor_nit",
				Unique:  true,
				Columns: []*schema.Column{DistributorsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted = false",
				},
			},
			{
				Name:    "distributor_dpi",
				Unique:  true,
				Columns: []*schema.Column{DistributorsColumns[4]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted = false",
				},
			},
			{
				Name:    "distributor_email",
				Unique:  true,
				Columns: []*schema.Column{DistributorsColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted = false",
				},
			},
		},
	}
	// DistributorBranchesColumns holds the columns for the "distributor_branches" table.
	DistributorBranchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "department", Type: field.TypeString, Nullable: true},
		{Name: "municipality", Type: field.TypeString, Nullable: true},
		{Name: "zone", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "start_date", Type: field.TypeString, Nullable: true},
		{Name: "distributor_id", Type: field.TypeUUID},
	}
	// DistributorBranchesTable holds the schema information for the "distributor_branches" table.
	DistributorBranchesTable = &schema.Table{
		Name:       "distributor_branches",
		Columns:    DistributorBranchesColumns,
		PrimaryKey: []*schema.Column{DistributorBranchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "distributor_branches_distributors_branches",
				Columns:    []*schema.Column{DistributorBranchesColumns[8]},
				RefColumns: []*schema.Column{DistributorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "distributorbranch_distributor_id",
				Unique:  false,
				Columns: []*schema.Column{DistributorBranchesColumns[8]},
			},
		},
	}
	// DistributorDocumentsColumns holds the columns for the "distributor_documents" table.
	DistributorDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_type", Type: field.TypeString},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "structured_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "distributor_id", Type: field.TypeUUID},
	}
	// DistributorDocumentsTable holds the schema information for the "distributor_documents" table.
	DistributorDocumentsTable = &schema.Table{
		Name:       "distributor_documents",
		Columns:    DistributorDocumentsColumns,
		PrimaryKey: []*schema.Column{DistributorDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "distributor_documents_distributors_documents",
				Columns:    []*schema.Column{DistributorDocumentsColumns[4]},
				RefColumns: []*schema.Column{DistributorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "distributordocument_distributor_id_document_type",
				Unique:  true,
				Columns: []*schema.Column{DistributorDocumentsColumns[4], DistributorDocumentsColumns[1]},
			},
		},
	}
	// DistributorReferencesColumns holds the columns for the "distributor_references" table.
	DistributorReferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "relationship", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "distributor_id", Type: field.TypeUUID},
	}
	// DistributorReferencesTable holds the schema information for the "distributor_references" table.
	DistributorReferencesTable = &schema.Table{
		Name:       "distributor_references",
		Columns:    DistributorReferencesColumns,
		PrimaryKey: []*schema.Column{DistributorReferencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "distributor_references_distributors_references",
				Columns:    []*schema.Column{DistributorReferencesColumns[4]},
				RefColumns: []*schema.Column{DistributorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "distributorreference_distributor_id",
				Unique:  false,
				Columns: []*schema.Column{DistributorReferencesColumns[4]},
			},
		},
	}
	// RequestsColumns holds the columns for the "requests" table.
	RequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "state", Type: field.TypeString, Default: "PENDIENTE"},
		{Name: "assigned_reviewer", Type: field.TypeUUID, Nullable: true},
		{Name: "business_name", Type: field.TypeString},
		{Name: "owner_name", Type: field.TypeString, Nullable: true},
		{Name: "nit", Type: field.TypeString, Nullable: true},
		{Name: "dpi", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "department", Type: field.TypeString, Nullable: true},
		{Name: "municipality", Type: field.TypeString, Nullable: true},
		{Name: "bank_name", Type: field.TypeString, Nullable: true},
		{Name: "bank_account", Type: field.TypeString, Nullable: true},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "match_score", Type: field.TypeInt, Nullable: true},
		{Name: "deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RequestsTable holds the schema information for the "requests" table.
	RequestsTable = &schema.Table{
		Name:       "requests",
		Columns:    RequestsColumns,
		PrimaryKey: []*schema.Column{RequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "request_state_deleted",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[1], RequestsColumns[16]},
			},
			{
				Name:    "request_assigned_reviewer",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[2]},
			},
			{
				Name:    "request_nit",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[5]},
			},
		},
	}
	// RequestBranchesColumns holds the columns for the "request_branches" table.
	RequestBranchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "department", Type: field.TypeString, Nullable: true},
		{Name: "municipality", Type: field.TypeString, Nullable: true},
		{Name: "zone", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "start_date", Type: field.TypeString, Nullable: true},
		{Name: "review_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "review_notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeUUID},
	}
	// RequestBranchesTable holds the schema information for the "request_branches" table.
	RequestBranchesTable = &schema.Table{
		Name:       "request_branches",
		Columns:    RequestBranchesColumns,
		PrimaryKey: []*schema.Column{RequestBranchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "request_branches_requests_branches",
				Columns:    []*schema.Column{RequestBranchesColumns[11]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "requestbranch_request_id",
				Unique:  false,
				Columns: []*schema.Column{RequestBranchesColumns[11]},
			},
		},
	}
	// RequestDocumentsColumns holds the columns for the "request_documents" table.
	RequestDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_type", Type: field.TypeString},
		{Name: "extraction_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "structured_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "review_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "review_notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeUUID},
	}
	// RequestDocumentsTable holds the schema information for the "request_documents" table.
	RequestDocumentsTable = &schema.Table{
		Name:       "request_documents",
		Columns:    RequestDocumentsColumns,
		PrimaryKey: []*schema.Column{RequestDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "request_documents_requests_documents",
				Columns:    []*schema.Column{RequestDocumentsColumns[10]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "requestdocument_request_id_document_type",
				Unique:  true,
				Columns: []*schema.Column{RequestDocumentsColumns[10], RequestDocumentsColumns[1]},
			},
		},
	}
	// RequestReferencesColumns holds the columns for the "request_references" table.
	RequestReferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "relationship", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "review_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "review_notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeUUID},
	}
	// RequestReferencesTable holds the schema information for the "request_references" table.
	RequestReferencesTable = &schema.Table{
		Name:       "request_references",
		Columns:    RequestReferencesColumns,
		PrimaryKey: []*schema.Column{RequestReferencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "request_references_requests_references",
				Columns:    []*schema.Column{RequestReferencesColumns[7]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "requestreference_request_id",
				Unique:  false,
				Columns: []*schema.Column{RequestReferencesColumns[7]},
			},
		},
	}
	// RequestRevisionsColumns holds the columns for the "request_revisions" table.
	RequestRevisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "section", Type: field.TypeString},
		{Name: "approved", Type: field.TypeBool},
		{Name: "observation", Type: field.TypeString, Nullable: true},
		{Name: "actor", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeUUID},
	}
	// RequestRevisionsTable holds the schema information for the "request_revisions" table.
	RequestRevisionsTable = &schema.Table{
		Name:       "request_revisions",
		Columns:    RequestRevisionsColumns,
		PrimaryKey: []*schema.Column{RequestRevisionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "request_revisions_requests_revisions",
				Columns:    []*schema.Column{RequestRevisionsColumns[6]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "requestrevision_request_id_section_created_at",
				Unique:  false,
				Columns: []*schema.Column{RequestRevisionsColumns[6], RequestRevisionsColumns[1], RequestRevisionsColumns[5]},
			},
		},
	}
	// TrackingEntriesColumns holds the columns for the "tracking_entries" table.
	TrackingEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "previous_state", Type: field.TypeString},
		{Name: "new_state", Type: field.TypeString},
		{Name: "actor", Type: field.TypeUUID, Nullable: true},
		{Name: "comment", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeUUID},
	}
	// TrackingEntriesTable holds the schema information for the "tracking_entries" table.
	TrackingEntriesTable = &schema.Table{
		Name:       "tracking_entries",
		Columns:    TrackingEntriesColumns,
		PrimaryKey: []*schema.Column{TrackingEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tracking_entries_requests_tracking",
				Columns:    []*schema.Column{TrackingEntriesColumns[6]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trackingentry_request_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TrackingEntriesColumns[6], TrackingEntriesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DistributorsTable,
		DistributorBranchesTable,
		DistributorDocumentsTable,
		DistributorReferencesTable,
		RequestsTable,
		RequestBranchesTable,
		RequestDocumentsTable,
		RequestReferencesTable,
		RequestRevisionsTable,
		TrackingEntriesTable,
	}
)

func init() {
	DistributorsTable.ForeignKeys[0].RefTable = RequestsTable
	DistributorsTable.Annotation = &entsql.Annotation{
		Table: "distributors",
	}
	DistributorBranchesTable.ForeignKeys[0].RefTable = DistributorsTable
	DistributorBranchesTable.Annotation = &entsql.Annotation{
		Table: "distributor_branches",
	}
	DistributorDocumentsTable.ForeignKeys[0].RefTable = DistributorsTable
	DistributorDocumentsTable.Annotation = &entsql.Annotation{
		Table: "distributor_documents",
	}
	DistributorReferencesTable.ForeignKeys[0].RefTable = DistributorsTable
	DistributorReferencesTable.Annotation = &entsql.Annotation{
		Table: "distributor_references",
	}
	RequestsTable.Annotation = &entsql.Annotation{
		Table: "requests",
	}
	RequestBranchesTable.ForeignKeys[0].RefTable = RequestsTable
	RequestBranchesTable.Annotation = &entsql.Annotation{
		Table: "request_branches",
	}
	RequestDocumentsTable.ForeignKeys[0].RefTable = RequestsTable
	RequestDocumentsTable.Annotation = &entsql.Annotation{
		Table: "request_documents",
	}
	RequestReferencesTable.ForeignKeys[0].RefTable = RequestsTable
	RequestReferencesTable.Annotation = &entsql.Annotation{
		Table: "request_references",
	}
	RequestRevisionsTable.ForeignKeys[0].RefTable = RequestsTable
	RequestRevisionsTable.Annotation = &entsql.Annotation{
		Table: "request_revisions",
	}
	TrackingEntriesTable.ForeignKeys[0].RefTable = RequestsTable
	TrackingEntriesTable.Annotation = &entsql.Annotation{
		Table: "tracking_entries",
	}
}
