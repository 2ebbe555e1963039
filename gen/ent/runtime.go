// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/recluta/recluta-backend/db/ent/schema"
	"github.com/recluta/recluta-backend/gen/ent/cvrecord"
	"github.com/recluta/recluta-backend/gen/ent/offer"
	"github.com/recluta/recluta-backend/gen/ent/offerapplication"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cvrecordFields := schema.CVRecord{}.Fields()
	_ = cvrecordFields
	// cvrecordDescURL is the schema descriptor for url field.
	cvrecordDescURL := cvrecordFields[1].Descriptor()
	// cvrecord.URLValidator is a validator for the "url" field. It is called by the builders before save.
	cvrecord.URLValidator = cvrecordDescURL.Validators[0].(func(string) error)
	// cvrecordDescExtension is the schema descriptor for extension field.
	cvrecordDescExtension := cvrecordFields[2].Descriptor()
	// cvrecord.ExtensionValidator is a validator for the "extension" field. It is called by the builders before save.
	cvrecord.ExtensionValidator = func() func(string) error {
		validators := cvrecordDescExtension.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(extension string) error {
			for _, fn := range fns {
				if err := fn(extension); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// cvrecordDescCreatedAt is the schema descriptor for created_at field.
	cvrecordDescCreatedAt := cvrecordFields[12].Descriptor()
	// cvrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	cvrecord.DefaultCreatedAt = cvrecordDescCreatedAt.Default.(func() time.Time)
	// cvrecordDescUpdatedAt is the schema descriptor for updated_at field.
	cvrecordDescUpdatedAt := cvrecordFields[13].Descriptor()
	// cvrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cvrecord.DefaultUpdatedAt = cvrecordDescUpdatedAt.Default.(func() time.Time)
	// cvrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cvrecord.UpdateDefaultUpdatedAt = cvrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	offerFields := schema.Offer{}.Fields()
	_ = offerFields
	// offerDescName is the schema descriptor for name field.
	offerDescName := offerFields[1].Descriptor()
	// offer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	offer.NameValidator = offerDescName.Validators[0].(func(string) error)
	// offerDescCity is the schema descriptor for city field.
	offerDescCity := offerFields[2].Descriptor()
	// offer.CityValidator is a validator for the "city" field. It is called by the builders before save.
	offer.CityValidator = offerDescCity.Validators[0].(func(string) error)
	// offerDescAgeRange is the schema descriptor for age_range field.
	offerDescAgeRange := offerFields[3].Descriptor()
	// offer.AgeRangeValidator is a validator for the "age_range" field. It is called by the builders before save.
	offer.AgeRangeValidator = offerDescAgeRange.Validators[0].(func(string) error)
	// offerDescGender is the schema descriptor for gender field.
	offerDescGender := offerFields[4].Descriptor()
	// offer.GenderValidator is a validator for the "gender" field. It is called by the builders before save.
	offer.GenderValidator = offerDescGender.Validators[0].(func(string) error)
	// offerDescExperienceYears is the schema descriptor for experience_years field.
	offerDescExperienceYears := offerFields[5].Descriptor()
	// offer.ExperienceYearsValidator is a validator for the "experience_years" field. It is called by the builders before save.
	offer.ExperienceYearsValidator = offerDescExperienceYears.Validators[0].(func(int) error)
	// offerDescActive is the schema descriptor for active field.
	offerDescActive := offerFields[7].Descriptor()
	// offer.DefaultActive holds the default value on creation for the active field.
	offer.DefaultActive = offerDescActive.Default.(bool)
	// offerDescCreatedAt is the schema descriptor for created_at field.
	offerDescCreatedAt := offerFields[8].Descriptor()
	// offer.DefaultCreatedAt holds the default value on creation for the created_at field.
	offer.DefaultCreatedAt = offerDescCreatedAt.Default.(func() time.Time)
	// offerDescUpdatedAt is the schema descriptor for updated_at field.
	offerDescUpdatedAt := offerFields[9].Descriptor()
	// offer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	offer.DefaultUpdatedAt = offerDescUpdatedAt.Default.(func() time.Time)
	// offer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	offer.UpdateDefaultUpdatedAt = offerDescUpdatedAt.UpdateDefault.(func() time.Time)
	offerapplicationFields := schema.OfferApplication{}.Fields()
	_ = offerapplicationFields
	// offerapplicationDescStatus is the schema descriptor for status field.
	offerapplicationDescStatus := offerapplicationFields[2].Descriptor()
	// offerapplication.DefaultStatus holds the default value on creation for the status field.
	offerapplication.DefaultStatus = offerapplicationDescStatus.Default.(string)
	// offerapplication.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	offerapplication.StatusValidator = offerapplicationDescStatus.Validators[0].(func(string) error)
	// offerapplicationDescCreatedAt is the schema descriptor for created_at field.
	offerapplicationDescCreatedAt := offerapplicationFields[5].Descriptor()
	// offerapplication.DefaultCreatedAt holds the default value on creation for the created_at field.
	offerapplication.DefaultCreatedAt = offerapplicationDescCreatedAt.Default.(func() time.Time)
	// offerapplicationDescUpdatedAt is the schema descriptor for updated_at field.
	offerapplicationDescUpdatedAt := offerapplicationFields[6].Descriptor()
	// offerapplication.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	offerapplication.DefaultUpdatedAt = offerapplicationDescUpdatedAt.Default.(func() time.Time)
	// offerapplication.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	offerapplication.UpdateDefaultUpdatedAt = offerapplicationDescUpdatedAt.UpdateDefault.(func() time.Time)
}
