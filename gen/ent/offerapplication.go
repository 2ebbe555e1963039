// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recluta/recluta-backend/gen/ent/cvrecord"
	"github.com/recluta/recluta-backend/gen/ent/offer"
	"github.com/recluta/recluta-backend/gen/ent/offerapplication"
)

// OfferApplication is the model entity for the OfferApplication schema.
type OfferApplication struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CvRecordID holds the value of the "cv_record_id" field.
	CvRecordID int `json:"cv_record_id,omitempty"`
	// OfferID holds the value of the "offer_id" field.
	OfferID int `json:"offer_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// AiResponse holds the value of the "ai_response" field.
	AiResponse *string `json:"ai_response,omitempty"`
	// ResponseScore holds the value of the "response_score" field.
	ResponseScore *float64 `json:"response_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OfferApplicationQuery when eager-loading is set.
	Edges        OfferApplicationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OfferApplicationEdges holds the relations/edges for other nodes in the graph.
type OfferApplicationEdges struct {
	// CvRecord holds the value of the cv_record edge.
	CvRecord *CVRecord `json:"cv_record,omitempty"`
	// Offer holds the value of the offer edge.
	Offer *Offer `json:"offer,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CvRecordOrErr returns the CvRecord value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OfferApplicationEdges) CvRecordOrErr() (*CVRecord, error) {
	if e.CvRecord != nil {
		return e.CvRecord, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: cvrecord.Label}
	}
	return nil, &NotLoadedError{edge: "cv_record"}
}

// OfferOrErr returns the Offer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OfferApplicationEdges) OfferOrErr() (*Offer, error) {
	if e.Offer != nil {
		return e.Offer, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: offer.Label}
	}
	return nil, &NotLoadedError{edge: "offer"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OfferApplication) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case offerapplication.FieldResponseScore:
			values[i] = new(sql.NullFloat64)
		case offerapplication.FieldID, offerapplication.FieldCvRecordID, offerapplication.FieldOfferID:
			values[i] = new(sql.NullInt64)
		case offerapplication.FieldStatus, offerapplication.FieldAiResponse:
			values[i] = new(sql.NullString)
		case offerapplication.FieldCreatedAt, offerapplication.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OfferApplication fields.
func (_m *OfferApplication) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case offerapplication.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case offerapplication.FieldCvRecordID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cv_record_id", values[i])
			} else if value.Valid {
				_m.CvRecordID = int(value.Int64)
			}
		case offerapplication.FieldOfferID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field offer_id", values[i])
			} else if value.Valid {
				_m.OfferID = int(value.Int64)
			}
		case offerapplication.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case offerapplication.FieldAiResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_response", values[i])
			} else if value.Valid {
				_m.AiResponse = new(string)
				*_m.AiResponse = value.String
			}
		case offerapplication.FieldResponseScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field response_score", values[i])
			} else if value.Valid {
				_m.ResponseScore = new(float64)
				*_m.ResponseScore = value.Float64
			}
		case offerapplication.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case offerapplication.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OfferApplication.
// This includes values selected through modifiers, order, etc.
func (_m *OfferApplication) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCvRecord queries the "cv_record" edge of the OfferApplication entity.
func (_m *OfferApplication) QueryCvRecord() *CVRecordQuery {
	return NewOfferApplicationClient(_m.config).QueryCvRecord(_m)
}

// QueryOffer queries the "offer" edge of the OfferApplication entity.
func (_m *OfferApplication) QueryOffer() *OfferQuery {
	return NewOfferApplicationClient(_m.config).QueryOffer(_m)
}

// Update returns a builder for updating this OfferApplication.
// Note that you need to call OfferApplication.Unwrap() before calling this method if this OfferApplication
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OfferApplication) Update() *OfferApplicationUpdateOne {
	return NewOfferApplicationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OfferApplication entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OfferApplication) Unwrap() *OfferApplication {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OfferApplication is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OfferApplication) String() string {
	var builder strings.Builder
	builder.WriteString("OfferApplication(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("cv_record_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CvRecordID))
	builder.WriteString(", ")
	builder.WriteString("offer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OfferID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.AiResponse; v != nil {
		builder.WriteString("ai_response=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResponseScore; v != nil {
		builder.WriteString("response_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OfferApplications is a parsable slice of OfferApplication.
type OfferApplications []*OfferApplication
