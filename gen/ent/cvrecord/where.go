// Code generated by ent, DO NOT EDIT.

package cvrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recluta/recluta-backend/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCompanyID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldURL, v))
}

// Extension applies equality check predicate on the "extension" field. It's identical to ExtensionEQ.
func Extension(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldExtension, v))
}

// CvText applies equality check predicate on the "cv_text" field. It's identical to CvTextEQ.
func CvText(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCvText, v))
}

// CandidateName applies equality check predicate on the "candidate_name" field. It's identical to CandidateNameEQ.
func CandidateName(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCandidateName, v))
}

// CandidateDni applies equality check predicate on the "candidate_dni" field. It's identical to CandidateDniEQ.
func CandidateDni(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCandidateDni, v))
}

// CandidateDniType applies equality check predicate on the "candidate_dni_type" field. It's identical to CandidateDniTypeEQ.
func CandidateDniType(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCandidateDniType, v))
}

// CandidateCity applies equality check predicate on the "candidate_city" field. It's identical to CandidateCityEQ.
func CandidateCity(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCandidateCity, v))
}

// CandidatePhone applies equality check predicate on the "candidate_phone" field. It's identical to CandidatePhoneEQ.
func CandidatePhone(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCandidatePhone, v))
}

// CandidateMail applies equality check predicate on the "candidate_mail" field. It's identical to CandidateMailEQ.
func CandidateMail(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCandidateMail, v))
}

// BackgroundCheck applies equality check predicate on the "background_check" field. It's identical to BackgroundCheckEQ.
func BackgroundCheck(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldBackgroundCheck, v))
}

// BackgroundDate applies equality check predicate on the "background_date" field. It's identical to BackgroundDateEQ.
func BackgroundDate(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldBackgroundDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v int) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLTE(FieldCompanyID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContainsFold(FieldURL, v))
}

// ExtensionEQ applies the EQ predicate on the "extension" field.
func ExtensionEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldExtension, v))
}

// ExtensionNEQ applies the NEQ predicate on the "extension" field.
func ExtensionNEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNEQ(FieldExtension, v))
}

// ExtensionIn applies the In predicate on the "extension" field.
func ExtensionIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIn(FieldExtension, vs...))
}

// ExtensionNotIn applies the NotIn predicate on the "extension" field.
func ExtensionNotIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotIn(FieldExtension, vs...))
}

// ExtensionGT applies the GT predicate on the "extension" field.
func ExtensionGT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGT(FieldExtension, v))
}

// ExtensionGTE applies the GTE predicate on the "extension" field.
func ExtensionGTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGTE(FieldExtension, v))
}

// ExtensionLT applies the LT predicate on the "extension" field.
func ExtensionLT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLT(FieldExtension, v))
}

// ExtensionLTE applies the LTE predicate on the "extension" field.
func ExtensionLTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLTE(FieldExtension, v))
}

// ExtensionContains applies the Contains predicate on the "extension" field.
func ExtensionContains(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContains(FieldExtension, v))
}

// ExtensionHasPrefix applies the HasPrefix predicate on the "extension" field.
func ExtensionHasPrefix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasPrefix(FieldExtension, v))
}

// ExtensionHasSuffix applies the HasSuffix predicate on the "extension" field.
func ExtensionHasSuffix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasSuffix(FieldExtension, v))
}

// ExtensionEqualFold applies the EqualFold predicate on the "extension" field.
func ExtensionEqualFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEqualFold(FieldExtension, v))
}

// ExtensionContainsFold applies the ContainsFold predicate on the "extension" field.
func ExtensionContainsFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContainsFold(FieldExtension, v))
}

// CvTextEQ applies the EQ predicate on the "cv_text" field.
func CvTextEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCvText, v))
}

// CvTextNEQ applies the NEQ predicate on the "cv_text" field.
func CvTextNEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNEQ(FieldCvText, v))
}

// CvTextIn applies the In predicate on the "cv_text" field.
func CvTextIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIn(FieldCvText, vs...))
}

// CvTextNotIn applies the NotIn predicate on the "cv_text" field.
func CvTextNotIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotIn(FieldCvText, vs...))
}

// CvTextGT applies the GT predicate on the "cv_text" field.
func CvTextGT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGT(FieldCvText, v))
}

// CvTextGTE applies the GTE predicate on the "cv_text" field.
func CvTextGTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGTE(FieldCvText, v))
}

// CvTextLT applies the LT predicate on the "cv_text" field.
func CvTextLT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLT(FieldCvText, v))
}

// CvTextLTE applies the LTE predicate on the "cv_text" field.
func CvTextLTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLTE(FieldCvText, v))
}

// CvTextContains applies the Contains predicate on the "cv_text" field.
func CvTextContains(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContains(FieldCvText, v))
}

// CvTextHasPrefix applies the HasPrefix predicate on the "cv_text" field.
func CvTextHasPrefix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasPrefix(FieldCvText, v))
}

// CvTextHasSuffix applies the HasSuffix predicate on the "cv_text" field.
func CvTextHasSuffix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasSuffix(FieldCvText, v))
}

// CvTextIsNil applies the IsNil predicate on the "cv_text" field.
func CvTextIsNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIsNull(FieldCvText))
}

// CvTextNotNil applies the NotNil predicate on the "cv_text" field.
func CvTextNotNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotNull(FieldCvText))
}

// CvTextEqualFold applies the EqualFold predicate on the "cv_text" field.
func CvTextEqualFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEqualFold(FieldCvText, v))
}

// CvTextContainsFold applies the ContainsFold predicate on the "cv_text" field.
func CvTextContainsFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContainsFold(FieldCvText, v))
}

// CandidateNameEQ applies the EQ predicate on the "candidate_name" field.
func CandidateNameEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCandidateName, v))
}

// CandidateNameNEQ applies the NEQ predicate on the "candidate_name" field.
func CandidateNameNEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNEQ(FieldCandidateName, v))
}

// CandidateNameIn applies the In predicate on the "candidate_name" field.
func CandidateNameIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIn(FieldCandidateName, vs...))
}

// CandidateNameNotIn applies the NotIn predicate on the "candidate_name" field.
func CandidateNameNotIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotIn(FieldCandidateName, vs...))
}

// CandidateNameGT applies the GT predicate on the "candidate_name" field.
func CandidateNameGT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGT(FieldCandidateName, v))
}

// CandidateNameGTE applies the GTE predicate on the "candidate_name" field.
func CandidateNameGTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGTE(FieldCandidateName, v))
}

// CandidateNameLT applies the LT predicate on the "candidate_name" field.
func CandidateNameLT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLT(FieldCandidateName, v))
}

// CandidateNameLTE applies the LTE predicate on the "candidate_name" field.
func CandidateNameLTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLTE(FieldCandidateName, v))
}

// CandidateNameContains applies the Contains predicate on the "candidate_name" field.
func CandidateNameContains(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContains(FieldCandidateName, v))
}

// CandidateNameHasPrefix applies the HasPrefix predicate on the "candidate_name" field.
func CandidateNameHasPrefix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasPrefix(FieldCandidateName, v))
}

// CandidateNameHasSuffix applies the HasSuffix predicate on the "candidate_name" field.
func CandidateNameHasSuffix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasSuffix(FieldCandidateName, v))
}

// CandidateNameIsNil applies the IsNil predicate on the "candidate_name" field.
func CandidateNameIsNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIsNull(FieldCandidateName))
}

// CandidateNameNotNil applies the NotNil predicate on the "candidate_name" field.
func CandidateNameNotNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotNull(FieldCandidateName))
}

// CandidateNameEqualFold applies the EqualFold predicate on the "candidate_name" field.
func CandidateNameEqualFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEqualFold(FieldCandidateName, v))
}

// CandidateNameContainsFold applies the ContainsFold predicate on the "candidate_name" field.
func CandidateNameContainsFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContainsFold(FieldCandidateName, v))
}

// CandidateDniEQ applies the EQ predicate on the "candidate_dni" field.
func CandidateDniEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCandidateDni, v))
}

// CandidateDniNEQ applies the NEQ predicate on the "candidate_dni" field.
func CandidateDniNEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNEQ(FieldCandidateDni, v))
}

// CandidateDniIn applies the In predicate on the "candidate_dni" field.
func CandidateDniIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIn(FieldCandidateDni, vs...))
}

// CandidateDniNotIn applies the NotIn predicate on the "candidate_dni" field.
func CandidateDniNotIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotIn(FieldCandidateDni, vs...))
}

// CandidateDniGT applies the GT predicate on the "candidate_dni" field.
func CandidateDniGT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGT(FieldCandidateDni, v))
}

// CandidateDniGTE applies the GTE predicate on the "candidate_dni" field.
func CandidateDniGTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGTE(FieldCandidateDni, v))
}

// CandidateDniLT applies the LT predicate on the "candidate_dni" field.
func CandidateDniLT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLT(FieldCandidateDni, v))
}

// CandidateDniLTE applies the LTE predicate on the "candidate_dni" field.
func CandidateDniLTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLTE(FieldCandidateDni, v))
}

// CandidateDniContains applies the Contains predicate on the "candidate_dni" field.
func CandidateDniContains(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContains(FieldCandidateDni, v))
}

// CandidateDniHasPrefix applies the HasPrefix predicate on the "candidate_dni" field.
func CandidateDniHasPrefix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasPrefix(FieldCandidateDni, v))
}

// CandidateDniHasSuffix applies the HasSuffix predicate on the "candidate_dni" field.
func CandidateDniHasSuffix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasSuffix(FieldCandidateDni, v))
}

// CandidateDniIsNil applies the IsNil predicate on the "candidate_dni" field.
func CandidateDniIsNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIsNull(FieldCandidateDni))
}

// CandidateDniNotNil applies the NotNil predicate on the "candidate_dni" field.
func CandidateDniNotNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotNull(FieldCandidateDni))
}

// CandidateDniEqualFold applies the EqualFold predicate on the "candidate_dni" field.
func CandidateDniEqualFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEqualFold(FieldCandidateDni, v))
}

// CandidateDniContainsFold applies the ContainsFold predicate on the "candidate_dni" field.
func CandidateDniContainsFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContainsFold(FieldCandidateDni, v))
}

// CandidateDniTypeEQ applies the EQ predicate on the "candidate_dni_type" field.
func CandidateDniTypeEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCandidateDniType, v))
}

// CandidateDniTypeNEQ applies the NEQ predicate on the "candidate_dni_type" field.
func CandidateDniTypeNEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNEQ(FieldCandidateDniType, v))
}

// CandidateDniTypeIn applies the In predicate on the "candidate_dni_type" field.
func CandidateDniTypeIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIn(FieldCandidateDniType, vs...))
}

// CandidateDniTypeNotIn applies the NotIn predicate on the "candidate_dni_type" field.
func CandidateDniTypeNotIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotIn(FieldCandidateDniType, vs...))
}

// CandidateDniTypeGT applies the GT predicate on the "candidate_dni_type" field.
func CandidateDniTypeGT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGT(FieldCandidateDniType, v))
}

// CandidateDniTypeGTE applies the GTE predicate on the "candidate_dni_type" field.
func CandidateDniTypeGTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGTE(FieldCandidateDniType, v))
}

// CandidateDniTypeLT applies the LT predicate on the "candidate_dni_type" field.
func CandidateDniTypeLT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLT(FieldCandidateDniType, v))
}

// CandidateDniTypeLTE applies the LTE predicate on the "candidate_dni_type" field.
func CandidateDniTypeLTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLTE(FieldCandidateDniType, v))
}

// CandidateDniTypeContains applies the Contains predicate on the "candidate_dni_type" field.
func CandidateDniTypeContains(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContains(FieldCandidateDniType, v))
}

// CandidateDniTypeHasPrefix applies the HasPrefix predicate on the "candidate_dni_type" field.
func CandidateDniTypeHasPrefix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasPrefix(FieldCandidateDniType, v))
}

// CandidateDniTypeHasSuffix applies the HasSuffix predicate on the "candidate_dni_type" field.
func CandidateDniTypeHasSuffix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasSuffix(FieldCandidateDniType, v))
}

// CandidateDniTypeIsNil applies the IsNil predicate on the "candidate_dni_type" field.
func CandidateDniTypeIsNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIsNull(FieldCandidateDniType))
}

// CandidateDniTypeNotNil applies the NotNil predicate on the "candidate_dni_type" field.
func CandidateDniTypeNotNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotNull(FieldCandidateDniType))
}

// CandidateDniTypeEqualFold applies the EqualFold predicate on the "candidate_dni_type" field.
func CandidateDniTypeEqualFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEqualFold(FieldCandidateDniType, v))
}

// CandidateDniTypeContainsFold applies the ContainsFold predicate on the "candidate_dni_type" field.
func CandidateDniTypeContainsFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContainsFold(FieldCandidateDniType, v))
}

// CandidateCityEQ applies the EQ predicate on the "candidate_city" field.
func CandidateCityEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCandidateCity, v))
}

// CandidateCityNEQ applies the NEQ predicate on the "candidate_city" field.
func CandidateCityNEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNEQ(FieldCandidateCity, v))
}

// CandidateCityIn applies the In predicate on the "candidate_city" field.
func CandidateCityIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIn(FieldCandidateCity, vs...))
}

// CandidateCityNotIn applies the NotIn predicate on the "candidate_city" field.
func CandidateCityNotIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotIn(FieldCandidateCity, vs...))
}

// CandidateCityGT applies the GT predicate on the "candidate_city" field.
func CandidateCityGT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGT(FieldCandidateCity, v))
}

// CandidateCityGTE applies the GTE predicate on the "candidate_city" field.
func CandidateCityGTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGTE(FieldCandidateCity, v))
}

// CandidateCityLT applies the LT predicate on the "candidate_city" field.
func CandidateCityLT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLT(FieldCandidateCity, v))
}

// CandidateCityLTE applies the LTE predicate on the "candidate_city" field.
func CandidateCityLTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLTE(FieldCandidateCity, v))
}

// CandidateCityContains applies the Contains predicate on the "candidate_city" field.
func CandidateCityContains(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContains(FieldCandidateCity, v))
}

// CandidateCityHasPrefix applies the HasPrefix predicate on the "candidate_city" field.
func CandidateCityHasPrefix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasPrefix(FieldCandidateCity, v))
}

// CandidateCityHasSuffix applies the HasSuffix predicate on the "candidate_city" field.
func CandidateCityHasSuffix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasSuffix(FieldCandidateCity, v))
}

// CandidateCityIsNil applies the IsNil predicate on the "candidate_city" field.
func CandidateCityIsNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIsNull(FieldCandidateCity))
}

// CandidateCityNotNil applies the NotNil predicate on the "candidate_city" field.
func CandidateCityNotNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotNull(FieldCandidateCity))
}

// CandidateCityEqualFold applies the EqualFold predicate on the "candidate_city" field.
func CandidateCityEqualFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEqualFold(FieldCandidateCity, v))
}

// CandidateCityContainsFold applies the ContainsFold predicate on the "candidate_city" field.
func CandidateCityContainsFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContainsFold(FieldCandidateCity, v))
}

// CandidatePhoneEQ applies the EQ predicate on the "candidate_phone" field.
func CandidatePhoneEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCandidatePhone, v))
}

// CandidatePhoneNEQ applies the NEQ predicate on the "candidate_phone" field.
func CandidatePhoneNEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNEQ(FieldCandidatePhone, v))
}

// CandidatePhoneIn applies the In predicate on the "candidate_phone" field.
func CandidatePhoneIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIn(FieldCandidatePhone, vs...))
}

// CandidatePhoneNotIn applies the NotIn predicate on the "candidate_phone" field.
func CandidatePhoneNotIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotIn(FieldCandidatePhone, vs...))
}

// CandidatePhoneGT applies the GT predicate on the "candidate_phone" field.
func CandidatePhoneGT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGT(FieldCandidatePhone, v))
}

// CandidatePhoneGTE applies the GTE predicate on the "candidate_phone" field.
func CandidatePhoneGTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGTE(FieldCandidatePhone, v))
}

// CandidatePhoneLT applies the LT predicate on the "candidate_phone" field.
func CandidatePhoneLT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLT(FieldCandidatePhone, v))
}

// CandidatePhoneLTE applies the LTE predicate on the "candidate_phone" field.
func CandidatePhoneLTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLTE(FieldCandidatePhone, v))
}

// CandidatePhoneContains applies the Contains predicate on the "candidate_phone" field.
func CandidatePhoneContains(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContains(FieldCandidatePhone, v))
}

// CandidatePhoneHasPrefix applies the HasPrefix predicate on the "candidate_phone" field.
func CandidatePhoneHasPrefix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasPrefix(FieldCandidatePhone, v))
}

// CandidatePhoneHasSuffix applies the HasSuffix predicate on the "candidate_phone" field.
func CandidatePhoneHasSuffix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasSuffix(FieldCandidatePhone, v))
}

// CandidatePhoneIsNil applies the IsNil predicate on the "candidate_phone" field.
func CandidatePhoneIsNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIsNull(FieldCandidatePhone))
}

// CandidatePhoneNotNil applies the NotNil predicate on the "candidate_phone" field.
func CandidatePhoneNotNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotNull(FieldCandidatePhone))
}

// CandidatePhoneEqualFold applies the EqualFold predicate on the "candidate_phone" field.
func CandidatePhoneEqualFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEqualFold(FieldCandidatePhone, v))
}

// CandidatePhoneContainsFold applies the ContainsFold predicate on the "candidate_phone" field.
func CandidatePhoneContainsFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContainsFold(FieldCandidatePhone, v))
}

// CandidateMailEQ applies the EQ predicate on the "candidate_mail" field.
func CandidateMailEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCandidateMail, v))
}

// CandidateMailNEQ applies the NEQ predicate on the "candidate_mail" field.
func CandidateMailNEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNEQ(FieldCandidateMail, v))
}

// CandidateMailIn applies the In predicate on the "candidate_mail" field.
func CandidateMailIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIn(FieldCandidateMail, vs...))
}

// CandidateMailNotIn applies the NotIn predicate on the "candidate_mail" field.
func CandidateMailNotIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotIn(FieldCandidateMail, vs...))
}

// CandidateMailGT applies the GT predicate on the "candidate_mail" field.
func CandidateMailGT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGT(FieldCandidateMail, v))
}

// CandidateMailGTE applies the GTE predicate on the "candidate_mail" field.
func CandidateMailGTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGTE(FieldCandidateMail, v))
}

// CandidateMailLT applies the LT predicate on the "candidate_mail" field.
func CandidateMailLT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLT(FieldCandidateMail, v))
}

// CandidateMailLTE applies the LTE predicate on the "candidate_mail" field.
func CandidateMailLTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLTE(FieldCandidateMail, v))
}

// CandidateMailContains applies the Contains predicate on the "candidate_mail" field.
func CandidateMailContains(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContains(FieldCandidateMail, v))
}

// CandidateMailHasPrefix applies the HasPrefix predicate on the "candidate_mail" field.
func CandidateMailHasPrefix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasPrefix(FieldCandidateMail, v))
}

// CandidateMailHasSuffix applies the HasSuffix predicate on the "candidate_mail" field.
func CandidateMailHasSuffix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasSuffix(FieldCandidateMail, v))
}

// CandidateMailIsNil applies the IsNil predicate on the "candidate_mail" field.
func CandidateMailIsNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIsNull(FieldCandidateMail))
}

// CandidateMailNotNil applies the NotNil predicate on the "candidate_mail" field.
func CandidateMailNotNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotNull(FieldCandidateMail))
}

// CandidateMailEqualFold applies the EqualFold predicate on the "candidate_mail" field.
func CandidateMailEqualFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEqualFold(FieldCandidateMail, v))
}

// CandidateMailContainsFold applies the ContainsFold predicate on the "candidate_mail" field.
func CandidateMailContainsFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContainsFold(FieldCandidateMail, v))
}

// BackgroundCheckEQ applies the EQ predicate on the "background_check" field.
func BackgroundCheckEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldBackgroundCheck, v))
}

// BackgroundCheckNEQ applies the NEQ predicate on the "background_check" field.
func BackgroundCheckNEQ(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNEQ(FieldBackgroundCheck, v))
}

// BackgroundCheckIn applies the In predicate on the "background_check" field.
func BackgroundCheckIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIn(FieldBackgroundCheck, vs...))
}

// BackgroundCheckNotIn applies the NotIn predicate on the "background_check" field.
func BackgroundCheckNotIn(vs ...string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotIn(FieldBackgroundCheck, vs...))
}

// BackgroundCheckGT applies the GT predicate on the "background_check" field.
func BackgroundCheckGT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGT(FieldBackgroundCheck, v))
}

// BackgroundCheckGTE applies the GTE predicate on the "background_check" field.
func BackgroundCheckGTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGTE(FieldBackgroundCheck, v))
}

// BackgroundCheckLT applies the LT predicate on the "background_check" field.
func BackgroundCheckLT(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLT(FieldBackgroundCheck, v))
}

// BackgroundCheckLTE applies the LTE predicate on the "background_check" field.
func BackgroundCheckLTE(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLTE(FieldBackgroundCheck, v))
}

// BackgroundCheckContains applies the Contains predicate on the "background_check" field.
func BackgroundCheckContains(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContains(FieldBackgroundCheck, v))
}

// BackgroundCheckHasPrefix applies the HasPrefix predicate on the "background_check" field.
func BackgroundCheckHasPrefix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasPrefix(FieldBackgroundCheck, v))
}

// BackgroundCheckHasSuffix applies the HasSuffix predicate on the "background_check" field.
func BackgroundCheckHasSuffix(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldHasSuffix(FieldBackgroundCheck, v))
}

// BackgroundCheckIsNil applies the IsNil predicate on the "background_check" field.
func BackgroundCheckIsNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIsNull(FieldBackgroundCheck))
}

// BackgroundCheckNotNil applies the NotNil predicate on the "background_check" field.
func BackgroundCheckNotNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotNull(FieldBackgroundCheck))
}

// BackgroundCheckEqualFold applies the EqualFold predicate on the "background_check" field.
func BackgroundCheckEqualFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEqualFold(FieldBackgroundCheck, v))
}

// BackgroundCheckContainsFold applies the ContainsFold predicate on the "background_check" field.
func BackgroundCheckContainsFold(v string) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldContainsFold(FieldBackgroundCheck, v))
}

// BackgroundDateEQ applies the EQ predicate on the "background_date" field.
func BackgroundDateEQ(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldBackgroundDate, v))
}

// BackgroundDateNEQ applies the NEQ predicate on the "background_date" field.
func BackgroundDateNEQ(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNEQ(FieldBackgroundDate, v))
}

// BackgroundDateIn applies the In predicate on the "background_date" field.
func BackgroundDateIn(vs ...time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIn(FieldBackgroundDate, vs...))
}

// BackgroundDateNotIn applies the NotIn predicate on the "background_date" field.
func BackgroundDateNotIn(vs ...time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotIn(FieldBackgroundDate, vs...))
}

// BackgroundDateGT applies the GT predicate on the "background_date" field.
func BackgroundDateGT(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGT(FieldBackgroundDate, v))
}

// BackgroundDateGTE applies the GTE predicate on the "background_date" field.
func BackgroundDateGTE(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGTE(FieldBackgroundDate, v))
}

// BackgroundDateLT applies the LT predicate on the "background_date" field.
func BackgroundDateLT(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLT(FieldBackgroundDate, v))
}

// BackgroundDateLTE applies the LTE predicate on the "background_date" field.
func BackgroundDateLTE(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLTE(FieldBackgroundDate, v))
}

// BackgroundDateIsNil applies the IsNil predicate on the "background_date" field.
func BackgroundDateIsNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIsNull(FieldBackgroundDate))
}

// BackgroundDateNotNil applies the NotNil predicate on the "background_date" field.
func BackgroundDateNotNil() predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotNull(FieldBackgroundDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CVRecord {
	return predicate.CVRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApplications applies the HasEdge predicate on the "applications" edge.
func HasApplications() predicate.CVRecord {
	return predicate.CVRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApplicationsTable, ApplicationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationsWith applies the HasEdge predicate on the "applications" edge with a given conditions (other predicates).
func HasApplicationsWith(preds ...predicate.OfferApplication) predicate.CVRecord {
	return predicate.CVRecord(func(s *sql.Selector) {
		step := newApplicationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CVRecord) predicate.CVRecord {
	return predicate.CVRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CVRecord) predicate.CVRecord {
	return predicate.CVRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CVRecord) predicate.CVRecord {
	return predicate.CVRecord(sql.NotPredicates(p))
}
