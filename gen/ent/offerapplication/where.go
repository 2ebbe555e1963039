// Code generated by ent, DO NOT EDIT.

package offerapplication

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recluta/recluta-backend/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldLTE(FieldID, id))
}

// CvRecordID applies equality check predicate on the "cv_record_id" field. It's identical to CvRecordIDEQ.
func CvRecordID(v int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldCvRecordID, v))
}

// OfferID applies equality check predicate on the "offer_id" field. It's identical to OfferIDEQ.
func OfferID(v int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldOfferID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldStatus, v))
}

// AiResponse applies equality check predicate on the "ai_response" field. It's identical to AiResponseEQ.
func AiResponse(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldAiResponse, v))
}

// ResponseScore applies equality check predicate on the "response_score" field. It's identical to ResponseScoreEQ.
func ResponseScore(v float64) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldResponseScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldUpdatedAt, v))
}

// CvRecordIDEQ applies the EQ predicate on the "cv_record_id" field.
func CvRecordIDEQ(v int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldCvRecordID, v))
}

// CvRecordIDNEQ applies the NEQ predicate on the "cv_record_id" field.
func CvRecordIDNEQ(v int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNEQ(FieldCvRecordID, v))
}

// CvRecordIDIn applies the In predicate on the "cv_record_id" field.
func CvRecordIDIn(vs ...int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldIn(FieldCvRecordID, vs...))
}

// CvRecordIDNotIn applies the NotIn predicate on the "cv_record_id" field.
func CvRecordIDNotIn(vs ...int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNotIn(FieldCvRecordID, vs...))
}

// OfferIDEQ applies the EQ predicate on the "offer_id" field.
func OfferIDEQ(v int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldOfferID, v))
}

// OfferIDNEQ applies the NEQ predicate on the "offer_id" field.
func OfferIDNEQ(v int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNEQ(FieldOfferID, v))
}

// OfferIDIn applies the In predicate on the "offer_id" field.
func OfferIDIn(vs ...int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldIn(FieldOfferID, vs...))
}

// OfferIDNotIn applies the NotIn predicate on the "offer_id" field.
func OfferIDNotIn(vs ...int) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNotIn(FieldOfferID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldContainsFold(FieldStatus, v))
}

// AiResponseEQ applies the EQ predicate on the "ai_response" field.
func AiResponseEQ(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldAiResponse, v))
}

// AiResponseNEQ applies the NEQ predicate on the "ai_response" field.
func AiResponseNEQ(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNEQ(FieldAiResponse, v))
}

// AiResponseIn applies the In predicate on the "ai_response" field.
func AiResponseIn(vs ...string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldIn(FieldAiResponse, vs...))
}

// AiResponseNotIn applies the NotIn predicate on the "ai_response" field.
func AiResponseNotIn(vs ...string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNotIn(FieldAiResponse, vs...))
}

// AiResponseGT applies the GT predicate on the "ai_response" field.
func AiResponseGT(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldGT(FieldAiResponse, v))
}

// AiResponseGTE applies the GTE predicate on the "ai_response" field.
func AiResponseGTE(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldGTE(FieldAiResponse, v))
}

// AiResponseLT applies the LT predicate on the "ai_response" field.
func AiResponseLT(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldLT(FieldAiResponse, v))
}

// AiResponseLTE applies the LTE predicate on the "ai_response" field.
func AiResponseLTE(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldLTE(FieldAiResponse, v))
}

// AiResponseContains applies the Contains predicate on the "ai_response" field.
func AiResponseContains(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldContains(FieldAiResponse, v))
}

// AiResponseHasPrefix applies the HasPrefix predicate on the "ai_response" field.
func AiResponseHasPrefix(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldHasPrefix(FieldAiResponse, v))
}

// AiResponseHasSuffix applies the HasSuffix predicate on the "ai_response" field.
func AiResponseHasSuffix(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldHasSuffix(FieldAiResponse, v))
}

// AiResponseIsNil applies the IsNil predicate on the "ai_response" field.
func AiResponseIsNil() predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldIsNull(FieldAiResponse))
}

// AiResponseNotNil applies the NotNil predicate on the "ai_response" field.
func AiResponseNotNil() predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNotNull(FieldAiResponse))
}

// AiResponseEqualFold applies the EqualFold predicate on the "ai_response" field.
func AiResponseEqualFold(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEqualFold(FieldAiResponse, v))
}

// AiResponseContainsFold applies the ContainsFold predicate on the "ai_response" field.
func AiResponseContainsFold(v string) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldContainsFold(FieldAiResponse, v))
}

// ResponseScoreEQ applies the EQ predicate on the "response_score" field.
func ResponseScoreEQ(v float64) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldResponseScore, v))
}

// ResponseScoreNEQ applies the NEQ predicate on the "response_score" field.
func ResponseScoreNEQ(v float64) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNEQ(FieldResponseScore, v))
}

// ResponseScoreIn applies the In predicate on the "response_score" field.
func ResponseScoreIn(vs ...float64) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldIn(FieldResponseScore, vs...))
}

// ResponseScoreNotIn applies the NotIn predicate on the "response_score" field.
func ResponseScoreNotIn(vs ...float64) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNotIn(FieldResponseScore, vs...))
}

// ResponseScoreGT applies the GT predicate on the "response_score" field.
func ResponseScoreGT(v float64) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldGT(FieldResponseScore, v))
}

// ResponseScoreGTE applies the GTE predicate on the "response_score" field.
func ResponseScoreGTE(v float64) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldGTE(FieldResponseScore, v))
}

// ResponseScoreLT applies the LT predicate on the "response_score" field.
func ResponseScoreLT(v float64) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldLT(FieldResponseScore, v))
}

// ResponseScoreLTE applies the LTE predicate on the "response_score" field.
func ResponseScoreLTE(v float64) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldLTE(FieldResponseScore, v))
}

// ResponseScoreIsNil applies the IsNil predicate on the "response_score" field.
func ResponseScoreIsNil() predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldIsNull(FieldResponseScore))
}

// ResponseScoreNotNil applies the NotNil predicate on the "response_score" field.
func ResponseScoreNotNil() predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNotNull(FieldResponseScore))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.OfferApplication {
	return predicate.OfferApplication(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCvRecord applies the HasEdge predicate on the "cv_record" edge.
func HasCvRecord() predicate.OfferApplication {
	return predicate.OfferApplication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CvRecordTable, CvRecordColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCvRecordWith applies the HasEdge predicate on the "cv_record" edge with a given conditions (other predicates).
func HasCvRecordWith(preds ...predicate.CVRecord) predicate.OfferApplication {
	return predicate.OfferApplication(func(s *sql.Selector) {
		step := newCvRecordStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOffer applies the HasEdge predicate on the "offer" edge.
func HasOffer() predicate.OfferApplication {
	return predicate.OfferApplication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OfferTable, OfferColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOfferWith applies the HasEdge predicate on the "offer" edge with a given conditions (other predicates).
func HasOfferWith(preds ...predicate.Offer) predicate.OfferApplication {
	return predicate.OfferApplication(func(s *sql.Selector) {
		step := newOfferStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OfferApplication) predicate.OfferApplication {
	return predicate.OfferApplication(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OfferApplication) predicate.OfferApplication {
	return predicate.OfferApplication(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OfferApplication) predicate.OfferApplication {
	return predicate.OfferApplication(sql.NotPredicates(p))
}
