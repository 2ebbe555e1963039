package schema

import (
	"errors"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/recluta/recluta-backend/constants"
)

var errInvalidStatus = errors.New("invalid application status")

type OfferApplication struct{ ent.Schema }

func (OfferApplication) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "offer_applications"},
	}
}

func (OfferApplication) Fields() []ent.Field {
	return []ent.Field{
		// explicit FKs so we can define the composite unique index
		field.Int("cv_record_id"),
		field.Int("offer_id"),
		field.String("status").
			Default(string(constants.StatusPending)).
			Validate(func(s string) error {
				if constants.ValidStatus(s) {
					return nil
				}
				return errInvalidStatus
			}),
		field.String("ai_response").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("response_score").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (OfferApplication) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY applications -> ONE cv record
		edge.From("cv_record", CVRecord.Type).
			Ref("applications").
			Field("cv_record_id").
			Required().
			Unique(),
		// MANY applications -> ONE offer
		edge.From("offer", Offer.Type).
			Ref("applications").
			Field("offer_id").
			Required().
			Unique(),
	}
}

func (OfferApplication) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cv_record_id", "offer_id").Unique(),
		index.Fields("offer_id", "status"),
	}
}
