// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CvRecordsColumns holds the columns for the "cv_records" table.
	CvRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "company_id", Type: field.TypeInt},
		{Name: "url", Type: field.TypeString},
		{Name: "extension", Type: field.TypeString},
		{Name: "cv_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "candidate_name", Type: field.TypeString, Nullable: true},
		{Name: "candidate_dni", Type: field.TypeString, Nullable: true},
		{Name: "candidate_dni_type", Type: field.TypeString, Nullable: true},
		{Name: "candidate_city", Type: field.TypeString, Nullable: true},
		{Name: "candidate_phone", Type: field.TypeString, Nullable: true},
		{Name: "candidate_mail", Type: field.TypeString, Nullable: true},
		{Name: "background_check", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "background_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CvRecordsTable holds the schema information for the "cv_records" table.
	CvRecordsTable = &schema.Table{
		Name:       "cv_records",
		Columns:    CvRecordsColumns,
		PrimaryKey: []*schema.Column{CvRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cvrecord_company_id",
				Unique:  false,
				Columns: []*schema.Column{CvRecordsColumns[1]},
			},
			{
				Name:    "cvrecord_company_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CvRecordsColumns[1], CvRecordsColumns[13]},
			},
		},
	}
	// OffersColumns holds the columns for the "offers" table.
	OffersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "company_id", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "city", Type: field.TypeString},
		{Name: "age_range", Type: field.TypeString},
		{Name: "gender", Type: field.TypeString},
		{Name: "experience_years", Type: field.TypeInt},
		{Name: "skills", Type: field.TypeJSON},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OffersTable holds the schema information for the "offers" table.
	OffersTable = &schema.Table{
		Name:       "offers",
		Columns:    OffersColumns,
		PrimaryKey: []*schema.Column{OffersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "offer_company_id_active",
				Unique:  false,
				Columns: []*schema.Column{OffersColumns[1], OffersColumns[8]},
			},
		},
	}
	// OfferApplicationsColumns holds the columns for the "offer_applications" table.
	OfferApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "ai_response", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "response_score", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "cv_record_id", Type: field.TypeInt},
		{Name: "offer_id", Type: field.TypeInt},
	}
	// OfferApplicationsTable holds the schema information for the "offer_applications" table.
	OfferApplicationsTable = &schema.Table{
		Name:       "offer_applications",
		Columns:    OfferApplicationsColumns,
		PrimaryKey: []*schema.Column{OfferApplicationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "offer_applications_cv_records_applications",
				Columns:    []*schema.Column{OfferApplicationsColumns[6]},
				RefColumns: []*schema.Column{CvRecordsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "offer_applications_offers_applications",
				Columns:    []*schema.Column{OfferApplicationsColumns[7]},
				RefColumns: []*schema.Column{OffersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "offerapplication_cv_record_id_offer_id",
				Unique:  true,
				Columns: []*schema.Column{OfferApplicationsColumns[6], OfferApplicationsColumns[7]},
			},
			{
				Name:    "offerapplication_offer_id_status",
				Unique:  false,
				Columns: []*schema.Column{OfferApplicationsColumns[7], OfferApplicationsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CvRecordsTable,
		OffersTable,
		OfferApplicationsTable,
	}
)

func init() {
	CvRecordsTable.Annotation = &entsql.Annotation{
		Table: "cv_records",
	}
	OffersTable.Annotation = &entsql.Annotation{
		Table: "offers",
	}
	OfferApplicationsTable.ForeignKeys[0].RefTable = CvRecordsTable
	OfferApplicationsTable.ForeignKeys[1].RefTable = OffersTable
	OfferApplicationsTable.Annotation = &entsql.Annotation{
		Table: "offer_applications",
	}
}
