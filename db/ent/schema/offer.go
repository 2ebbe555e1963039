package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type Offer struct{ ent.Schema }

func (Offer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "offers"},
	}
}

func (Offer) Fields() []ent.Field {
	return []ent.Field{
		field.Int("company_id"),
		field.String("name").NotEmpty(),
		// Mandatory disqualification variables for the scoring prompt.
		field.String("city").NotEmpty(),
		field.String("age_range").NotEmpty(), // e.g. "25-40"
		field.String("gender").NotEmpty(),
		field.Int("experience_years").NonNegative(),
		field.JSON("skills", []string{}),
		field.Bool("active").Default(true),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Offer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("applications", OfferApplication.Type),
	}
}

func (Offer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "active"),
	}
}
