// Code generated by ent, DO NOT EDIT.

package cvrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the cvrecord type in the database.
	Label = "cv_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldExtension holds the string denoting the extension field in the database.
	FieldExtension = "extension"
	// FieldCvText holds the string denoting the cv_text field in the database.
	FieldCvText = "cv_text"
	// FieldCandidateName holds the string denoting the candidate_name field in the database.
	FieldCandidateName = "candidate_name"
	// FieldCandidateDni holds the string denoting the candidate_dni field in the database.
	FieldCandidateDni = "candidate_dni"
	// FieldCandidateDniType holds the string denoting the candidate_dni_type field in the database.
	FieldCandidateDniType = "candidate_dni_type"
	// FieldCandidateCity holds the string denoting the candidate_city field in the database.
	FieldCandidateCity = "candidate_city"
	// FieldCandidatePhone holds the string denoting the candidate_phone field in the database.
	FieldCandidatePhone = "candidate_phone"
	// FieldCandidateMail holds the string denoting the candidate_mail field in the database.
	FieldCandidateMail = "candidate_mail"
	// FieldBackgroundCheck holds the string denoting the background_check field in the database.
	FieldBackgroundCheck = "background_check"
	// FieldBackgroundDate holds the string denoting the background_date field in the database.
	FieldBackgroundDate = "background_date"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeApplications holds the string denoting the applications edge name in mutations.
	EdgeApplications = "applications"
	// Table holds the table name of the cvrecord in the database.
	Table = "cv_records"
	// ApplicationsTable is the table that holds the applications relation/edge.
	ApplicationsTable = "offer_applications"
	// ApplicationsInverseTable is the table name for the OfferApplication entity.
	// It exists in this package in order to avoid circular dependency with the "offerapplication" package.
	ApplicationsInverseTable = "offer_applications"
	// ApplicationsColumn is the table column denoting the applications relation/edge.
	ApplicationsColumn = "cv_record_id"
)

// Columns holds all SQL columns for cvrecord fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldURL,
	FieldExtension,
	FieldCvText,
	FieldCandidateName,
	FieldCandidateDni,
	FieldCandidateDniType,
	FieldCandidateCity,
	FieldCandidatePhone,
	FieldCandidateMail,
	FieldBackgroundCheck,
	FieldBackgroundDate,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// URLValidator is a validator for the "url" field. It is called by the builders before save.
	URLValidator func(string) error
	// ExtensionValidator is a validator for the "extension" field. It is called by the builders before save.
	ExtensionValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the CVRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByExtension orders the results by the extension field.
func ByExtension(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtension, opts...).ToFunc()
}

// ByCvText orders the results by the cv_text field.
func ByCvText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCvText, opts...).ToFunc()
}

// ByCandidateName orders the results by the candidate_name field.
func ByCandidateName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateName, opts...).ToFunc()
}

// ByCandidateDni orders the results by the candidate_dni field.
func ByCandidateDni(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateDni, opts...).ToFunc()
}

// ByCandidateDniType orders the results by the candidate_dni_type field.
func ByCandidateDniType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateDniType, opts...).ToFunc()
}

// ByCandidateCity orders the results by the candidate_city field.
func ByCandidateCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateCity, opts...).ToFunc()
}

// ByCandidatePhone orders the results by the candidate_phone field.
func ByCandidatePhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidatePhone, opts...).ToFunc()
}

// ByCandidateMail orders the results by the candidate_mail field.
func ByCandidateMail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateMail, opts...).ToFunc()
}

// ByBackgroundCheck orders the results by the background_check field.
func ByBackgroundCheck(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackgroundCheck, opts...).ToFunc()
}

// ByBackgroundDate orders the results by the background_date field.
func ByBackgroundDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackgroundDate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByApplicationsCount orders the results by applications count.
func ByApplicationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newApplicationsStep(), opts...)
	}
}

// ByApplications orders the results by applications terms.
func ByApplications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApplicationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newApplicationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApplicationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ApplicationsTable, ApplicationsColumn),
	)
}
