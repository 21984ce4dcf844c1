// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/db/ent/schema"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributor"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorbranch"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributordocument"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorreference"
	"github.com/jmonzon-gt/distribuidores/gen/ent/request"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestbranch"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestdocument"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestreference"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestrevision"
	"github.com/jmonzon-gt/distribuidores/gen/ent/trackingentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	distributorFields := schema.Distributor{}.Fields()
	_ = distributorFields
	// distributorDescBusinessName is the schema descriptor for business_name field.
	distributorDescBusinessName := distributorFields[2].Descriptor()
	// distributor.BusinessNameValidator is a validator for the "business_name" field. It is called by the builders before save.
	distributor.BusinessNameValidator = distributorDescBusinessName.Validators[0].(func(string) error)
	// distributorDescDeleted is the schema descriptor for deleted field.
	distributorDescDeleted := distributorFields[13].Descriptor()
	// distributor.DefaultDeleted holds the default value on creation for the deleted field.
	distributor.DefaultDeleted = distributorDescDeleted.Default.(bool)
	// distributorDescCreatedAt is the schema descriptor for created_at field.
	distributorDescCreatedAt := distributorFields[14].Descriptor()
	// distributor.DefaultCreatedAt holds the default value on creation for the created_at field.
	distributor.DefaultCreatedAt = distributorDescCreatedAt.Default.(func() time.Time)
	// distributorDescID is the schema descriptor for id field.
	distributorDescID := distributorFields[0].Descriptor()
	// distributor.DefaultID holds the default value on creation for the id field.
	distributor.DefaultID = distributorDescID.Default.(func() uuid.UUID)
	distributorbranchFields := schema.DistributorBranch{}.Fields()
	_ = distributorbranchFields
	// distributorbranchDescName is the schema descriptor for name field.
	distributorbranchDescName := distributorbranchFields[2].Descriptor()
	// distributorbranch.NameValidator is a validator for the "name" field. It is called by the builders before save.
	distributorbranch.NameValidator = distributorbranchDescName.Validators[0].(func(string) error)
	// distributorbranchDescID is the schema descriptor for id field.
	distributorbranchDescID := distributorbranchFields[0].Descriptor()
	// distributorbranch.DefaultID holds the default value on creation for the id field.
	distributorbranch.DefaultID = distributorbranchDescID.Default.(func() uuid.UUID)
	distributordocumentFields := schema.DistributorDocument{}.Fields()
	_ = distributordocumentFields
	// distributordocumentDescDocumentType is the schema descriptor for document_type field.
	distributordocumentDescDocumentType := distributordocumentFields[2].Descriptor()
	// distributordocument.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	distributordocument.DocumentTypeValidator = func() func(string) error {
		validators := distributordocumentDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// distributordocumentDescID is the schema descriptor for id field.
	distributordocumentDescID := distributordocumentFields[0].Descriptor()
	// distributordocument.DefaultID holds the default value on creation for the id field.
	distributordocument.DefaultID = distributordocumentDescID.Default.(func() uuid.UUID)
	distributorreferenceFields := schema.DistributorReference{}.Fields()
	_ = distributorreferenceFields
	// distributorreferenceDescName is the schema descriptor for name field.
	distributorreferenceDescName := distributorreferenceFields[2].Descriptor()
	// distributorreference.NameValidator is a validator for the "name" field. It is called by the builders before save.
	distributorreference.NameValidator = distributorreferenceDescName.Validators[0].(func(string) error)
	// distributorreferenceDescID is the schema descriptor for id field.
	distributorreferenceDescID := distributorreferenceFields[0].Descriptor()
	// distributorreference.DefaultID holds the default value on creation for the id field.
	distributorreference.DefaultID = distributorreferenceDescID.Default.(func() uuid.UUID)
	requestFields := schema.Request{}.Fields()
	_ = requestFields
	// requestDescState is the schema descriptor for state field.
	requestDescState := requestFields[1].Descriptor()
	// request.DefaultState holds the default value on creation for the state field.
	request.DefaultState = requestDescState.Default.(string)
	// request.StateValidator is a validator for the "state" field. It is called by the builders before save.
	request.StateValidator = requestDescState.Validators[0].(func(string) error)
	// requestDescBusinessName is the schema descriptor for business_name field.
	requestDescBusinessName := requestFields[3].Descriptor()
	// request.BusinessNameValidator is a validator for the "business_name" field. It is called by the builders before save.
	request.BusinessNameValidator = requestDescBusinessName.Validators[0].(func(string) error)
	// requestDescDeleted is the schema descriptor for deleted field.
	requestDescDeleted := requestFields[16].Descriptor()
	// request.DefaultDeleted holds the default value on creation for the deleted field.
	request.DefaultDeleted = requestDescDeleted.Default.(bool)
	// requestDescCreatedAt is the schema descriptor for created_at field.
	requestDescCreatedAt := requestFields[17].Descriptor()
	// request.DefaultCreatedAt holds the default value on creation for the created_at field.
	request.DefaultCreatedAt = requestDescCreatedAt.Default.(func() time.Time)
	// requestDescUpdatedAt is the schema descriptor for updated_at field.
	requestDescUpdatedAt := requestFields[18].Descriptor()
	// request.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	request.DefaultUpdatedAt = requestDescUpdatedAt.Default.(func() time.Time)
	// request.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	request.UpdateDefaultUpdatedAt = requestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// requestDescID is the schema descriptor for id field.
	requestDescID := requestFields[0].Descriptor()
	// request.DefaultID holds the default value on creation for the id field.
	request.DefaultID = requestDescID.Default.(func() uuid.UUID)
	requestbranchFields := schema.RequestBranch{}.Fields()
	_ = requestbranchFields
	// requestbranchDescName is the schema descriptor for name field.
	requestbranchDescName := requestbranchFields[2].Descriptor()
	// requestbranch.NameValidator is a validator for the "name" field. It is called by the builders before save.
	requestbranch.NameValidator = requestbranchDescName.Validators[0].(func(string) error)
	// requestbranchDescReviewStatus is the schema descriptor for review_status field.
	requestbranchDescReviewStatus := requestbranchFields[9].Descriptor()
	// requestbranch.DefaultReviewStatus holds the default value on creation for the review_status field.
	requestbranch.DefaultReviewStatus = requestbranchDescReviewStatus.Default.(string)
	// requestbranch.ReviewStatusValidator is a validator for the "review_status" field. It is called by the builders before save.
	requestbranch.ReviewStatusValidator = requestbranchDescReviewStatus.Validators[0].(func(string) error)
	// requestbranchDescCreatedAt is the schema descriptor for created_at field.
	requestbranchDescCreatedAt := requestbranchFields[11].Descriptor()
	// requestbranch.DefaultCreatedAt holds the default value on creation for the created_at field.
	requestbranch.DefaultCreatedAt = requestbranchDescCreatedAt.Default.(func() time.Time)
	// requestbranchDescID is the schema descriptor for id field.
	requestbranchDescID := requestbranchFields[0].Descriptor()
	// requestbranch.DefaultID holds the default value on creation for the id field.
	requestbranch.DefaultID = requestbranchDescID.Default.(func() uuid.UUID)
	requestdocumentFields := schema.RequestDocument{}.Fields()
	_ = requestdocumentFields
	// requestdocumentDescDocumentType is the schema descriptor for document_type field.
	requestdocumentDescDocumentType := requestdocumentFields[2].Descriptor()
	// requestdocument.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	requestdocument.DocumentTypeValidator = func() func(string) error {
		validators := requestdocumentDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// requestdocumentDescExtractionStatus is the schema descriptor for extraction_status field.
	requestdocumentDescExtractionStatus := requestdocumentFields[3].Descriptor()
	// requestdocument.DefaultExtractionStatus holds the default value on creation for the extraction_status field.
	requestdocument.DefaultExtractionStatus = requestdocumentDescExtractionStatus.Default.(string)
	// requestdocument.ExtractionStatusValidator is a validator for the "extraction_status" field. It is called by the builders before save.
	requestdocument.ExtractionStatusValidator = requestdocumentDescExtractionStatus.Validators[0].(func(string) error)
	// requestdocumentDescScore is the schema descriptor for score field.
	requestdocumentDescScore := requestdocumentFields[6].Descriptor()
	// requestdocument.DefaultScore holds the default value on creation for the score field.
	requestdocument.DefaultScore = requestdocumentDescScore.Default.(int)
	// requestdocumentDescReviewStatus is the schema descriptor for review_status field.
	requestdocumentDescReviewStatus := requestdocumentFields[7].Descriptor()
	// requestdocument.DefaultReviewStatus holds the default value on creation for the review_status field.
	requestdocument.DefaultReviewStatus = requestdocumentDescReviewStatus.Default.(string)
	// requestdocument.ReviewStatusValidator is a validator for the "review_status" field. It is called by the builders before save.
	requestdocument.ReviewStatusValidator = requestdocumentDescReviewStatus.Validators[0].(func(string) error)
	// requestdocumentDescCreatedAt is the schema descriptor for created_at field.
	requestdocumentDescCreatedAt := requestdocumentFields[9].Descriptor()
	// requestdocument.DefaultCreatedAt holds the default value on creation for the created_at field.
	requestdocument.DefaultCreatedAt = requestdocumentDescCreatedAt.Default.(func() time.Time)
	// requestdocumentDescUpdatedAt is the schema descriptor for updated_at field.
	requestdocumentDescUpdatedAt := requestdocumentFields[10].Descriptor()
	// requestdocument.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	requestdocument.DefaultUpdatedAt = requestdocumentDescUpdatedAt.Default.(func() time.Time)
	// requestdocument.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	requestdocument.UpdateDefaultUpdatedAt = requestdocumentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// requestdocumentDescID is the schema descriptor for id field.
	requestdocumentDescID := requestdocumentFields[0].Descriptor()
	// requestdocument.DefaultID holds the default value on creation for the id field.
	requestdocument.DefaultID = requestdocumentDescID.Default.(func() uuid.UUID)
	requestreferenceFields := schema.RequestReference{}.Fields()
	_ = requestreferenceFields
	// requestreferenceDescName is the schema descriptor for name field.
	requestreferenceDescName := requestreferenceFields[2].Descriptor()
	// requestreference.NameValidator is a validator for the "name" field. It is called by the builders before save.
	requestreference.NameValidator = requestreferenceDescName.Validators[0].(func(string) error)
	// requestreferenceDescReviewStatus is the schema descriptor for review_status field.
	requestreferenceDescReviewStatus := requestreferenceFields[5].Descriptor()
	// requestreference.DefaultReviewStatus holds the default value on creation for the review_status field.
	requestreference.DefaultReviewStatus = requestreferenceDescReviewStatus.Default.(string)
	// requestreference.ReviewStatusValidator is a validator for the "review_status" field. It is called by the builders before save.
	requestreference.ReviewStatusValidator = requestreferenceDescReviewStatus.Validators[0].(func(string) error)
	// requestreferenceDescCreatedAt is the schema descriptor for created_at field.
	requestreferenceDescCreatedAt := requestreferenceFields[7].Descriptor()
	// requestreference.DefaultCreatedAt holds the default value on creation for the created_at field.
	requestreference.DefaultCreatedAt = requestreferenceDescCreatedAt.Default.(func() time.Time)
	// requestreferenceDescID is the schema descriptor for id field.
	requestreferenceDescID := requestreferenceFields[0].Descriptor()
	// requestreference.DefaultID holds the default value on creation for the id field.
	requestreference.DefaultID = requestreferenceDescID.Default.(func() uuid.UUID)
	requestrevisionFields := schema.RequestRevision{}.Fields()
	_ = requestrevisionFields
	// requestrevisionDescSection is the schema descriptor for section field.
	requestrevisionDescSection := requestrevisionFields[2].Descriptor()
	// requestrevision.SectionValidator is a validator for the "section" field. It is called by the builders before save.
	requestrevision.SectionValidator = requestrevisionDescSection.Validators[0].(func(string) error)
	// requestrevisionDescCreatedAt is the schema descriptor for created_at field.
	requestrevisionDescCreatedAt := requestrevisionFields[6].Descriptor()
	// requestrevision.DefaultCreatedAt holds the default value on creation for the created_at field.
	requestrevision.DefaultCreatedAt = requestrevisionDescCreatedAt.Default.(func() time.Time)
	// requestrevisionDescID is the schema descriptor for id field.
	requestrevisionDescID := requestrevisionFields[0].Descriptor()
	// requestrevision.DefaultID holds the default value on creation for the id field.
	requestrevision.DefaultID = requestrevisionDescID.Default.(func() uuid.UUID)
	trackingentryFields := schema.TrackingEntry{}.Fields()
	_ = trackingentryFields
	// trackingentryDescPreviousState is the schema descriptor for previous_state field.
	trackingentryDescPreviousState := trackingentryFields[2].Descriptor()
	// trackingentry.PreviousStateValidator is a validator for the "previous_state" field. It is called by the builders before save.
	trackingentry.PreviousStateValidator = func() func(string) error {
		validators := trackingentryDescPreviousState.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(previous_state string) error {
			for _, fn := range fns {
				if err := fn(previous_state); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// trackingentryDescNewState is the schema descriptor for new_state field.
	trackingentryDescNewState := trackingentryFields[3].Descriptor()
	// trackingentry.NewStateValidator is a validator for the "new_state" field. It is called by the builders before save.
	trackingentry.NewStateValidator = func() func(string) error {
		validators := trackingentryDescNewState.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(new_state string) error {
			for _, fn := range fns {
				if err := fn(new_state); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// trackingentryDescCreatedAt is the schema descriptor for created_at field.
	trackingentryDescCreatedAt := trackingentryFields[6].Descriptor()
	// trackingentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	trackingentry.DefaultCreatedAt = trackingentryDescCreatedAt.Default.(func() time.Time)
	// trackingentryDescID is the schema descriptor for id field.
	trackingentryDescID := trackingentryFields[0].Descriptor()
	// trackingentry.DefaultID holds the default value on creation for the id field.
	trackingentry.DefaultID = trackingentryDescID.Default.(func() uuid.UUID)
}
