// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recluta/recluta-backend/gen/ent/cvrecord"
)

// CVRecord is the model entity for the CVRecord schema.
type CVRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID int `json:"company_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Extension holds the value of the "extension" field.
	Extension string `json:"extension,omitempty"`
	// CvText holds the value of the "cv_text" field.
	CvText *string `json:"cv_text,omitempty"`
	// CandidateName holds the value of the "candidate_name" field.
	CandidateName *string `json:"candidate_name,omitempty"`
	// CandidateDni holds the value of the "candidate_dni" field.
	CandidateDni *string `json:"candidate_dni,omitempty"`
	// CandidateDniType holds the value of the "candidate_dni_type" field.
	CandidateDniType *string `json:"candidate_dni_type,omitempty"`
	// CandidateCity holds the value of the "candidate_city" field.
	CandidateCity *string `json:"candidate_city,omitempty"`
	// CandidatePhone holds the value of the "candidate_phone" field.
	CandidatePhone *string `json:"candidate_phone,omitempty"`
	// CandidateMail holds the value of the "candidate_mail" field.
	CandidateMail *string `json:"candidate_mail,omitempty"`
	// BackgroundCheck holds the value of the "background_check" field.
	BackgroundCheck *string `json:"background_check,omitempty"`
	// BackgroundDate holds the value of the "background_date" field.
	BackgroundDate *time.Time `json:"background_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CVRecordQuery when eager-loading is set.
	Edges        CVRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CVRecordEdges holds the relations/edges for other nodes in the graph.
type CVRecordEdges struct {
	// Applications holds the value of the applications edge.
	Applications []*OfferApplication `json:"applications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ApplicationsOrErr returns the Applications value or an error if the edge
// was not loaded in eager-loading.
func (e CVRecordEdges) ApplicationsOrErr() ([]*OfferApplication, error) {
	if e.loadedTypes[0] {
		return e.Applications, nil
	}
	return nil, &NotLoadedError{edge: "applications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CVRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cvrecord.FieldID, cvrecord.FieldCompanyID:
			values[i] = new(sql.NullInt64)
		case cvrecord.FieldURL, cvrecord.FieldExtension, cvrecord.FieldCvText, cvrecord.FieldCandidateName, cvrecord.FieldCandidateDni, cvrecord.FieldCandidateDniType, cvrecord.FieldCandidateCity, cvrecord.FieldCandidatePhone, cvrecord.FieldCandidateMail, cvrecord.FieldBackgroundCheck:
			values[i] = new(sql.NullString)
		case cvrecord.FieldBackgroundDate, cvrecord.FieldCreatedAt, cvrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CVRecord fields.
func (_m *CVRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cvrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cvrecord.FieldCompanyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = int(value.Int64)
			}
		case cvrecord.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case cvrecord.FieldExtension:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extension", values[i])
			} else if value.Valid {
				_m.Extension = value.String
			}
		case cvrecord.FieldCvText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cv_text", values[i])
			} else if value.Valid {
				_m.CvText = new(string)
				*_m.CvText = value.String
			}
		case cvrecord.FieldCandidateName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_name", values[i])
			} else if value.Valid {
				_m.CandidateName = new(string)
				*_m.CandidateName = value.String
			}
		case cvrecord.FieldCandidateDni:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_dni", values[i])
			} else if value.Valid {
				_m.CandidateDni = new(string)
				*_m.CandidateDni = value.String
			}
		case cvrecord.FieldCandidateDniType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_dni_type", values[i])
			} else if value.Valid {
				_m.CandidateDniType = new(string)
				*_m.CandidateDniType = value.String
			}
		case cvrecord.FieldCandidateCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_city", values[i])
			} else if value.Valid {
				_m.CandidateCity = new(string)
				*_m.CandidateCity = value.String
			}
		case cvrecord.FieldCandidatePhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_phone", values[i])
			} else if value.Valid {
				_m.CandidatePhone = new(string)
				*_m.CandidatePhone = value.String
			}
		case cvrecord.FieldCandidateMail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_mail", values[i])
			} else if value.Valid {
				_m.CandidateMail = new(string)
				*_m.CandidateMail = value.String
			}
		case cvrecord.FieldBackgroundCheck:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field background_check", values[i])
			} else if value.Valid {
				_m.BackgroundCheck = new(string)
				*_m.BackgroundCheck = value.String
			}
		case cvrecord.FieldBackgroundDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field background_date", values[i])
			} else if value.Valid {
				_m.BackgroundDate = new(time.Time)
				*_m.BackgroundDate = value.Time
			}
		case cvrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case cvrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CVRecord.
// This includes values selected through modifiers, order, etc.
func (_m *CVRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplications queries the "applications" edge of the CVRecord entity.
func (_m *CVRecord) QueryApplications() *OfferApplicationQuery {
	return NewCVRecordClient(_m.config).QueryApplications(_m)
}

// Update returns a builder for updating this CVRecord.
// Note that you need to call CVRecord.Unwrap() before calling this method if this CVRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CVRecord) Update() *CVRecordUpdateOne {
	return NewCVRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CVRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CVRecord) Unwrap() *CVRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CVRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CVRecord) String() string {
	var builder strings.Builder
	builder.WriteString("CVRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("extension=")
	builder.WriteString(_m.Extension)
	builder.WriteString(", ")
	if v := _m.CvText; v != nil {
		builder.WriteString("cv_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CandidateName; v != nil {
		builder.WriteString("candidate_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CandidateDni; v != nil {
		builder.WriteString("candidate_dni=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CandidateDniType; v != nil {
		builder.WriteString("candidate_dni_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CandidateCity; v != nil {
		builder.WriteString("candidate_city=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CandidatePhone; v != nil {
		builder.WriteString("candidate_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CandidateMail; v != nil {
		builder.WriteString("candidate_mail=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BackgroundCheck; v != nil {
		builder.WriteString("background_check=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BackgroundDate; v != nil {
		builder.WriteString("background_date=")
		builder.WriteString(v.Format(time.ANSIC))
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

// CVRecords is a parsable slice of CVRecord.
type CVRecords []*CVRecord
