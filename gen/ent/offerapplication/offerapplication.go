// Code generated by ent, DO NOT EDIT.

package offerapplication

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the offerapplication type in the database.
	Label = "offer_application"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCvRecordID holds the string denoting the cv_record_id field in the database.
	FieldCvRecordID = "cv_record_id"
	// FieldOfferID holds the string denoting the offer_id field in the database.
	FieldOfferID = "offer_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAiResponse holds the string denoting the ai_response field in the database.
	FieldAiResponse = "ai_response"
	// FieldResponseScore holds the string denoting the response_score field in the database.
	FieldResponseScore = "response_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCvRecord holds the string denoting the cv_record edge name in mutations.
	EdgeCvRecord = "cv_record"
	// EdgeOffer holds the string denoting the offer edge name in mutations.
	EdgeOffer = "offer"
	// Table holds the table name of the offerapplication in the database.
	Table = "offer_applications"
	// CvRecordTable is the table that holds the cv_record relation/edge.
	CvRecordTable = "offer_applications"
	// CvRecordInverseTable is the table name for the CVRecord entity.
	// It exists in this package in order to avoid circular dependency with the "cvrecord" package.
	CvRecordInverseTable = "cv_records"
	// CvRecordColumn is the table column denoting the cv_record relation/edge.
	CvRecordColumn = "cv_record_id"
	// OfferTable is the table that holds the offer relation/edge.
	OfferTable = "offer_applications"
	// OfferInverseTable is the table name for the Offer entity.
	// It exists in this package in order to avoid circular dependency with the "offer" package.
	OfferInverseTable = "offers"
	// OfferColumn is the table column denoting the offer relation/edge.
	OfferColumn = "offer_id"
)

// Columns holds all SQL columns for offerapplication fields.
var Columns = []string{
	FieldID,
	FieldCvRecordID,
	FieldOfferID,
	FieldStatus,
	FieldAiResponse,
	FieldResponseScore,
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
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the OfferApplication queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCvRecordID orders the results by the cv_record_id field.
func ByCvRecordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCvRecordID, opts...).ToFunc()
}

// ByOfferID orders the results by the offer_id field.
func ByOfferID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOfferID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAiResponse orders the results by the ai_response field.
func ByAiResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiResponse, opts...).ToFunc()
}

// ByResponseScore orders the results by the response_score field.
func ByResponseScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCvRecordField orders the results by cv_record field.
func ByCvRecordField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCvRecordStep(), sql.OrderByField(field, opts...))
	}
}

// ByOfferField orders the results by offer field.
func ByOfferField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOfferStep(), sql.OrderByField(field, opts...))
	}
}
func newCvRecordStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CvRecordInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CvRecordTable, CvRecordColumn),
	)
}
func newOfferStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OfferInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OfferTable, OfferColumn),
	)
}
