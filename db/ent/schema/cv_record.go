package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/recluta/recluta-backend/constants"
	"github.com/recluta/recluta-backend/db/ent/schema/utils"
)

type CVRecord struct{ ent.Schema }

func (CVRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "cv_records"},
	}
}

func (CVRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int("company_id"),
		field.String("url").NotEmpty(),
		field.String("extension").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("cv_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// Fields extracted by the scoring step. Written only by the batch
		// coordinator; the background-check poller never touches them.
		field.String("candidate_name").Optional().Nillable(),
		field.String("candidate_dni").Optional().Nillable(),
		field.String("candidate_dni_type").Optional().Nillable(),
		field.String("candidate_city").Optional().Nillable(),
		field.String("candidate_phone").Optional().Nillable(),
		field.String("candidate_mail").Optional().Nillable(),
		// Background-check fields. Written only by the poller.
		field.String("background_check").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("background_date").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CVRecord) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE record -> MANY applications
		edge.To("applications", OfferApplication.Type),
	}
}

func (CVRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id"),
		index.Fields("company_id", "created_at"),
	}
}
