// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recluta/recluta-backend/gen/ent/cvrecord"
	"github.com/recluta/recluta-backend/gen/ent/offer"
	"github.com/recluta/recluta-backend/gen/ent/offerapplication"
	"github.com/recluta/recluta-backend/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCVRecord         = "CVRecord"
	TypeOffer            = "Offer"
	TypeOfferApplication = "OfferApplication"
)

// CVRecordMutation represents an operation that mutates the CVRecord nodes in the graph.
type CVRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	company_id          *int
	addcompany_id       *int
	url                 *string
	extension           *string
	cv_text             *string
	candidate_name      *string
	candidate_dni       *string
	candidate_dni_type  *string
	candidate_city      *string
	candidate_phone     *string
	candidate_mail      *string
	background_check    *string
	background_date     *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	applications        map[int]struct{}
	removedapplications map[int]struct{}
	clearedapplications bool
	done                bool
	oldValue            func(context.Context) (*CVRecord, error)
	predicates          []predicate.CVRecord
}

var _ ent.Mutation = (*CVRecordMutation)(nil)

// cvrecordOption allows management of the mutation configuration using functional options.
type cvrecordOption func(*CVRecordMutation)

// newCVRecordMutation creates new mutation for the CVRecord entity.
func newCVRecordMutation(c config, op Op, opts ...cvrecordOption) *CVRecordMutation {
	m := &CVRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeCVRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCVRecordID sets the ID field of the mutation.
func withCVRecordID(id int) cvrecordOption {
	return func(m *CVRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *CVRecord
		)
		m.oldValue = func(ctx context.Context) (*CVRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CVRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCVRecord sets the old CVRecord of the mutation.
func withCVRecord(node *CVRecord) cvrecordOption {
	return func(m *CVRecordMutation) {
		m.oldValue = func(context.Context) (*CVRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CVRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CVRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CVRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CVRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CVRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *CVRecordMutation) SetCompanyID(i int) {
	m.company_id = &i
	m.addcompany_id = nil
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *CVRecordMutation) CompanyID() (r int, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the CVRecord entity.
// If the CVRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVRecordMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// AddCompanyID adds i to the "company_id" field.
func (m *CVRecordMutation) AddCompanyID(i int) {
	if m.addcompany_id != nil {
		*m.addcompany_id += i
	} else {
		m.addcompany_id = &i
	}
}

// AddedCompanyID returns the value that was added to the "company_id" field in this mutation.
func (m *CVRecordMutation) AddedCompanyID() (r int, exists bool) {
	v := m.addcompany_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *CVRecordMutation) ResetCompanyID() {
	m.company_id = nil
	m.addcompany_id = nil
}

// SetURL sets the "url" field.
func (m *CVRecordMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *CVRecordMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the CVRecord entity.
// If the CVRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVRecordMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *CVRecordMutation) ResetURL() {
	m.url = nil
}

// SetExtension sets the "extension" field.
func (m *CVRecordMutation) SetExtension(s string) {
	m.extension = &s
}

// Extension returns the value of the "extension" field in the mutation.
func (m *CVRecordMutation) Extension() (r string, exists bool) {
	v := m.extension
	if v == nil {
		return
	}
	return *v, true
}

// OldExtension returns the old "extension" field's value of the CVRecord entity.
// If the CVRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVRecordMutation) OldExtension(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtension is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtension requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtension: %w", err)
	}
	return oldValue.Extension, nil
}

// ResetExtension resets all changes to the "extension" field.
func (m *CVRecordMutation) ResetExtension() {
	m.extension = nil
}

// SetCvText sets the "cv_text" field.
func (m *CVRecordMutation) SetCvText(s string) {
	m.cv_text = &s
}

// CvText returns the value of the "cv_text" field in the mutation.
func (m *CVRecordMutation) CvText() (r string, exists bool) {
	v := m.cv_text
	if v == nil {
		return
	}
	return *v, true
}

// OldCvText returns the old "cv_text" field's value of the CVRecord entity.
// If the CVRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVRecordMutation) OldCvText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCvText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCvText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCvText: %w", err)
	}
	return oldValue.CvText, nil
}

// ClearCvText clears the value of the "cv_text" field.
func (m *CVRecordMutation) ClearCvText() {
	m.cv_text = nil
	m.clearedFields[cvrecord.FieldCvText] = struct{}{}
}

// CvTextCleared returns if the "cv_text" field was cleared in this mutation.
func (m *CVRecordMutation) CvTextCleared() bool {
	_, ok := m.clearedFields[cvrecord.FieldCvText]
	return ok
}

// ResetCvText resets all changes to the "cv_text" field.
func (m *CVRecordMutation) ResetCvText() {
	m.cv_text = nil
	delete(m.clearedFields, cvrecord.FieldCvText)
}

// SetCandidateName sets the "candidate_name" field.
func (m *CVRecordMutation) SetCandidateName(s string) {
	m.candidate_name = &s
}

// CandidateName returns the value of the "candidate_name" field in the mutation.
func (m *CVRecordMutation) CandidateName() (r string, exists bool) {
	v := m.candidate_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateName returns the old "candidate_name" field's value of the CVRecord entity.
// If the CVRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVRecordMutation) OldCandidateName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateName: %w", err)
	}
	return oldValue.CandidateName, nil
}

// ClearCandidateName clears the value of the "candidate_name" field.
func (m *CVRecordMutation) ClearCandidateName() {
	m.candidate_name = nil
	m.clearedFields[cvrecord.FieldCandidateName] = struct{}{}
}

// CandidateNameCleared returns if the "candidate_name" field was cleared in this mutation.
func (m *CVRecordMutation) CandidateNameCleared() bool {
	_, ok := m.clearedFields[cvrecord.FieldCandidateName]
	return ok
}

// ResetCandidateName resets all changes to the "candidate_name" field.
func (m *CVRecordMutation) ResetCandidateName() {
	m.candidate_name = nil
	delete(m.clearedFields, cvrecord.FieldCandidateName)
}

// SetCandidateDni sets the "candidate_dni" field.
func (m *CVRecordMutation) SetCandidateDni(s string) {
	m.candidate_dni = &s
}

// CandidateDni returns the value of the "candidate_dni" field in the mutation.
func (m *CVRecordMutation) CandidateDni() (r string, exists bool) {
	v := m.candidate_dni
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateDni returns the old "candidate_dni" field's value of the CVRecord entity.
// If the CVRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVRecordMutation) OldCandidateDni(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateDni is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateDni requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateDni: %w", err)
	}
	return oldValue.CandidateDni, nil
}

// ClearCandidateDni clears the value of the "candidate_dni" field.
func (m *CVRecordMutation) ClearCandidateDni() {
	m.candidate_dni = nil
	m.clearedFields[cvrecord.FieldCandidateDni] = struct{}{}
}

// CandidateDniCleared returns if the "candidate_dni" field was cleared in this mutation.
func (m *CVRecordMutation) CandidateDniCleared() bool {
	_, ok := m.clearedFields[cvrecord.FieldCandidateDni]
	return ok
}

// ResetCandidateDni resets all changes to the "candidate_dni" field.
func (m *CVRecordMutation) ResetCandidateDni() {
	m.candidate_dni = nil
	delete(m.clearedFields, cvrecord.FieldCandidateDni)
}

// SetCandidateDniType sets the "candidate_dni_type" field.
func (m *CVRecordMutation) SetCandidateDniType(s string) {
	m.candidate_dni_type = &s
}

// CandidateDniType returns the value of the "candidate_dni_type" field in the mutation.
func (m *CVRecordMutation) CandidateDniType() (r string, exists bool) {
	v := m.candidate_dni_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateDniType returns the old "candidate_dni_type" field's value of the CVRecord entity.
// If the CVRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVRecordMutation) OldCandidateDniType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateDniType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateDniType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateDniType: %w", err)
	}
	return oldValue.CandidateDniType, nil
}

// ClearCandidateDniType clears the value of the "candidate_dni_type" field.
func (m *CVRecordMutation) ClearCandidateDniType() {
	m.candidate_dni_type = nil
	m.clearedFields[cvrecord.FieldCandidateDniType] = struct{}{}
}

// CandidateDniTypeCleared returns if the "candidate_dni_type" field was cleared in this mutation.
func (m *CVRecordMutation) CandidateDniTypeCleared() bool {
	_, ok := m.clearedFields[cvrecord.FieldCandidateDniType]
	return ok
}

// ResetCandidateDniType resets all changes to the "candidate_dni_type" field.
func (m *CVRecordMutation) ResetCandidateDniType() {
	m.candidate_dni_type = nil
	delete(m.clearedFields, cvrecord.FieldCandidateDniType)
}

// SetCandidateCity sets the "candidate_city" field.
func (m *CVRecordMutation) SetCandidateCity(s string) {
	m.candidate_city = &s
}

// CandidateCity returns the value of the "candidate_city" field in the mutation.
func (m *CVRecordMutation) CandidateCity() (r string, exists bool) {
	v := m.candidate_city
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateCity returns the old "candidate_city" field's value of the CVRecord entity.
// If the CVRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVRecordMutation) OldCandidateCity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateCity: %w", err)
	}
	return oldValue.CandidateCity, nil
}

// ClearCandidateCity clears the value of the "candidate_city" field.
func (m *CVRecordMutation) ClearCandidateCity() {
	m.candidate_city = nil
	m.clearedFields[cvrecord.FieldCandidateCity] = struct{}{}
}

// CandidateCityCleared returns if the "candidate_city" field was cleared in this mutation.
func (m *CVRecordMutation) CandidateCityCleared() bool {
	_, ok := m.clearedFields[cvrecord.FieldCandidateCity]
	return ok
}

// ResetCandidateCity resets all changes to the "candidate_city" field.
func (m *CVRecordMutation) ResetCandidateCity() {
	m.candidate_city = nil
	delete(m.clearedFields, cvrecord.FieldCandidateCity)
}

// SetCandidatePhone sets the "candidate_phone" field.
func (m *CVRecordMutation) SetCandidatePhone(s string) {
	m.candidate_phone = &s
}

// CandidatePhone returns the value of the "candidate_phone" field in the mutation.
func (m *CVRecordMutation) CandidatePhone() (r string, exists bool) {
	v := m.candidate_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidatePhone returns the old "candidate_phone" field's value of the CVRecord entity.
// If the CVRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVRecordMutation) OldCandidatePhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidatePhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidatePhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidatePhone: %w", err)
	}
	return oldValue.CandidatePhone, nil
}

// ClearCandidatePhone clears the value of the "candidate_phone" field.
func (m *CVRecordMutation) ClearCandidatePhone() {
	m.candidate_phone = nil
	m.clearedFields[cvrecord.FieldCandidatePhone] = struct{}{}
}

// CandidatePhoneCleared returns if the "candidate_phone" field was cleared in this mutation.
func (m *CVRecordMutation) CandidatePhoneCleared() bool {
	_, ok := m.clearedFields[cvrecord.FieldCandidatePhone]
	return ok
}

// ResetCandidatePhone resets all changes to the "candidate_phone" field.
func (m *CVRecordMutation) ResetCandidatePhone() {
	m.candidate_phone = nil
	delete(m.clearedFields, cvrecord.FieldCandidatePhone)
}

// SetCandidateMail sets the "candidate_mail" field.
func (m *CVRecordMutation) SetCandidateMail(s string) {
	m.candidate_mail = &s
}

// CandidateMail returns the value of the "candidate_mail" field in the mutation.
func (m *CVRecordMutation) CandidateMail() (r string, exists bool) {
	v := m.candidate_mail
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateMail returns the old "candidate_mail" field's value of the CVRecord entity.
// If the CVRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVRecordMutation) OldCandidateMail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateMail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateMail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateMail: %w", err)
	}
	return oldValue.CandidateMail, nil
}

// ClearCandidateMail clears the value of the "candidate_mail" field.
func (m *CVRecordMutation) ClearCandidateMail() {
	m.candidate_mail = nil
	m.clearedFields[cvrecord.FieldCandidateMail] = struct{}{}
}

// CandidateMailCleared returns if the "candidate_mail" field was cleared in this mutation.
func (m *CVRecordMutation) CandidateMailCleared() bool {
	_, ok := m.clearedFields[cvrecord.FieldCandidateMail]
	return ok
}

// ResetCandidateMail resets all changes to the "candidate_mail" field.
func (m *CVRecordMutation) ResetCandidateMail() {
	m.candidate_mail = nil
	delete(m.clearedFields, cvrecord.FieldCandidateMail)
}

// SetBackgroundCheck sets the "background_check" field.
func (m *CVRecordMutation) SetBackgroundCheck(s string) {
	m.background_check = &s
}

// BackgroundCheck returns the value of the "background_check" field in the mutation.
func (m *CVRecordMutation) BackgroundCheck() (r string, exists bool) {
	v := m.background_check
	if v == nil {
		return
	}
	return *v, true
}

// OldBackgroundCheck returns the old "background_check" field's value of the CVRecord entity.
// If the CVRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVRecordMutation) OldBackgroundCheck(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackgroundCheck is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackgroundCheck requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackgroundCheck: %w", err)
	}
	return oldValue.BackgroundCheck, nil
}

// ClearBackgroundCheck clears the value of the "background_check" field.
func (m *CVRecordMutation) ClearBackgroundCheck() {
	m.background_check = nil
	m.clearedFields[cvrecord.FieldBackgroundCheck] = struct{}{}
}

// BackgroundCheckCleared returns if the "background_check" field was cleared in this mutation.
func (m *CVRecordMutation) BackgroundCheckCleared() bool {
	_, ok := m.clearedFields[cvrecord.FieldBackgroundCheck]
	return ok
}

// ResetBackgroundCheck resets all changes to the "background_check" field.
func (m *CVRecordMutation) ResetBackgroundCheck() {
	m.background_check = nil
	delete(m.clearedFields, cvrecord.FieldBackgroundCheck)
}

// SetBackgroundDate sets the "background_date" field.
func (m *CVRecordMutation) SetBackgroundDate(t time.Time) {
	m.background_date = &t
}

// BackgroundDate returns the value of the "background_date" field in the mutation.
func (m *CVRecordMutation) BackgroundDate() (r time.Time, exists bool) {
	v := m.background_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBackgroundDate returns the old "background_date" field's value of the CVRecord entity.
// If the CVRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVRecordMutation) OldBackgroundDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackgroundDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackgroundDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackgroundDate: %w", err)
	}
	return oldValue.BackgroundDate, nil
}

// ClearBackgroundDate clears the value of the "background_date" field.
func (m *CVRecordMutation) ClearBackgroundDate() {
	m.background_date = nil
	m.clearedFields[cvrecord.FieldBackgroundDate] = struct{}{}
}

// BackgroundDateCleared returns if the "background_date" field was cleared in this mutation.
func (m *CVRecordMutation) BackgroundDateCleared() bool {
	_, ok := m.clearedFields[cvrecord.FieldBackgroundDate]
	return ok
}

// ResetBackgroundDate resets all changes to the "background_date" field.
func (m *CVRecordMutation) ResetBackgroundDate() {
	m.background_date = nil
	delete(m.clearedFields, cvrecord.FieldBackgroundDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *CVRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CVRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CVRecord entity.
// If the CVRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CVRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CVRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CVRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CVRecord entity.
// If the CVRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CVRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddApplicationIDs adds the "applications" edge to the OfferApplication entity by ids.
func (m *CVRecordMutation) AddApplicationIDs(ids ...int) {
	if m.applications == nil {
		m.applications = make(map[int]struct{})
	}
	for i := range ids {
		m.applications[ids[i]] = struct{}{}
	}
}

// ClearApplications clears the "applications" edge to the OfferApplication entity.
func (m *CVRecordMutation) ClearApplications() {
	m.clearedapplications = true
}

// ApplicationsCleared reports if the "applications" edge to the OfferApplication entity was cleared.
func (m *CVRecordMutation) ApplicationsCleared() bool {
	return m.clearedapplications
}

// RemoveApplicationIDs removes the "applications" edge to the OfferApplication entity by IDs.
func (m *CVRecordMutation) RemoveApplicationIDs(ids ...int) {
	if m.removedapplications == nil {
		m.removedapplications = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.applications, ids[i])
		m.removedapplications[ids[i]] = struct{}{}
	}
}

// RemovedApplications returns the removed IDs of the "applications" edge to the OfferApplication entity.
func (m *CVRecordMutation) RemovedApplicationsIDs() (ids []int) {
	for id := range m.removedapplications {
		ids = append(ids, id)
	}
	return
}

// ApplicationsIDs returns the "applications" edge IDs in the mutation.
func (m *CVRecordMutation) ApplicationsIDs() (ids []int) {
	for id := range m.applications {
		ids = append(ids, id)
	}
	return
}

// ResetApplications resets all changes to the "applications" edge.
func (m *CVRecordMutation) ResetApplications() {
	m.applications = nil
	m.clearedapplications = false
	m.removedapplications = nil
}

// Where appends a list predicates to the CVRecordMutation builder.
func (m *CVRecordMutation) Where(ps ...predicate.CVRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CVRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CVRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CVRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CVRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CVRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CVRecord).
func (m *CVRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CVRecordMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.company_id != nil {
		fields = append(fields, cvrecord.FieldCompanyID)
	}
	if m.url != nil {
		fields = append(fields, cvrecord.FieldURL)
	}
	if m.extension != nil {
		fields = append(fields, cvrecord.FieldExtension)
	}
	if m.cv_text != nil {
		fields = append(fields, cvrecord.FieldCvText)
	}
	if m.candidate_name != nil {
		fields = append(fields, cvrecord.FieldCandidateName)
	}
	if m.candidate_dni != nil {
		fields = append(fields, cvrecord.FieldCandidateDni)
	}
	if m.candidate_dni_type != nil {
		fields = append(fields, cvrecord.FieldCandidateDniType)
	}
	if m.candidate_city != nil {
		fields = append(fields, cvrecord.FieldCandidateCity)
	}
	if m.candidate_phone != nil {
		fields = append(fields, cvrecord.FieldCandidatePhone)
	}
	if m.candidate_mail != nil {
		fields = append(fields, cvrecord.FieldCandidateMail)
	}
	if m.background_check != nil {
		fields = append(fields, cvrecord.FieldBackgroundCheck)
	}
	if m.background_date != nil {
		fields = append(fields, cvrecord.FieldBackgroundDate)
	}
	if m.created_at != nil {
		fields = append(fields, cvrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, cvrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CVRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cvrecord.FieldCompanyID:
		return m.CompanyID()
	case cvrecord.FieldURL:
		return m.URL()
	case cvrecord.FieldExtension:
		return m.Extension()
	case cvrecord.FieldCvText:
		return m.CvText()
	case cvrecord.FieldCandidateName:
		return m.CandidateName()
	case cvrecord.FieldCandidateDni:
		return m.CandidateDni()
	case cvrecord.FieldCandidateDniType:
		return m.CandidateDniType()
	case cvrecord.FieldCandidateCity:
		return m.CandidateCity()
	case cvrecord.FieldCandidatePhone:
		return m.CandidatePhone()
	case cvrecord.FieldCandidateMail:
		return m.CandidateMail()
	case cvrecord.FieldBackgroundCheck:
		return m.BackgroundCheck()
	case cvrecord.FieldBackgroundDate:
		return m.BackgroundDate()
	case cvrecord.FieldCreatedAt:
		return m.CreatedAt()
	case cvrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CVRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cvrecord.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case cvrecord.FieldURL:
		return m.OldURL(ctx)
	case cvrecord.FieldExtension:
		return m.OldExtension(ctx)
	case cvrecord.FieldCvText:
		return m.OldCvText(ctx)
	case cvrecord.FieldCandidateName:
		return m.OldCandidateName(ctx)
	case cvrecord.FieldCandidateDni:
		return m.OldCandidateDni(ctx)
	case cvrecord.FieldCandidateDniType:
		return m.OldCandidateDniType(ctx)
	case cvrecord.FieldCandidateCity:
		return m.OldCandidateCity(ctx)
	case cvrecord.FieldCandidatePhone:
		return m.OldCandidatePhone(ctx)
	case cvrecord.FieldCandidateMail:
		return m.OldCandidateMail(ctx)
	case cvrecord.FieldBackgroundCheck:
		return m.OldBackgroundCheck(ctx)
	case cvrecord.FieldBackgroundDate:
		return m.OldBackgroundDate(ctx)
	case cvrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cvrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CVRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CVRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cvrecord.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case cvrecord.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case cvrecord.FieldExtension:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtension(v)
		return nil
	case cvrecord.FieldCvText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCvText(v)
		return nil
	case cvrecord.FieldCandidateName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateName(v)
		return nil
	case cvrecord.FieldCandidateDni:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateDni(v)
		return nil
	case cvrecord.FieldCandidateDniType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateDniType(v)
		return nil
	case cvrecord.FieldCandidateCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateCity(v)
		return nil
	case cvrecord.FieldCandidatePhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidatePhone(v)
		return nil
	case cvrecord.FieldCandidateMail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateMail(v)
		return nil
	case cvrecord.FieldBackgroundCheck:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackgroundCheck(v)
		return nil
	case cvrecord.FieldBackgroundDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackgroundDate(v)
		return nil
	case cvrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cvrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CVRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CVRecordMutation) AddedFields() []string {
	var fields []string
	if m.addcompany_id != nil {
		fields = append(fields, cvrecord.FieldCompanyID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CVRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cvrecord.FieldCompanyID:
		return m.AddedCompanyID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CVRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cvrecord.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompanyID(v)
		return nil
	}
	return fmt.Errorf("unknown CVRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CVRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cvrecord.FieldCvText) {
		fields = append(fields, cvrecord.FieldCvText)
	}
	if m.FieldCleared(cvrecord.FieldCandidateName) {
		fields = append(fields, cvrecord.FieldCandidateName)
	}
	if m.FieldCleared(cvrecord.FieldCandidateDni) {
		fields = append(fields, cvrecord.FieldCandidateDni)
	}
	if m.FieldCleared(cvrecord.FieldCandidateDniType) {
		fields = append(fields, cvrecord.FieldCandidateDniType)
	}
	if m.FieldCleared(cvrecord.FieldCandidateCity) {
		fields = append(fields, cvrecord.FieldCandidateCity)
	}
	if m.FieldCleared(cvrecord.FieldCandidatePhone) {
		fields = append(fields, cvrecord.FieldCandidatePhone)
	}
	if m.FieldCleared(cvrecord.FieldCandidateMail) {
		fields = append(fields, cvrecord.FieldCandidateMail)
	}
	if m.FieldCleared(cvrecord.FieldBackgroundCheck) {
		fields = append(fields, cvrecord.FieldBackgroundCheck)
	}
	if m.FieldCleared(cvrecord.FieldBackgroundDate) {
		fields = append(fields, cvrecord.FieldBackgroundDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CVRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CVRecordMutation) ClearField(name string) error {
	switch name {
	case cvrecord.FieldCvText:
		m.ClearCvText()
		return nil
	case cvrecord.FieldCandidateName:
		m.ClearCandidateName()
		return nil
	case cvrecord.FieldCandidateDni:
		m.ClearCandidateDni()
		return nil
	case cvrecord.FieldCandidateDniType:
		m.ClearCandidateDniType()
		return nil
	case cvrecord.FieldCandidateCity:
		m.ClearCandidateCity()
		return nil
	case cvrecord.FieldCandidatePhone:
		m.ClearCandidatePhone()
		return nil
	case cvrecord.FieldCandidateMail:
		m.ClearCandidateMail()
		return nil
	case cvrecord.FieldBackgroundCheck:
		m.ClearBackgroundCheck()
		return nil
	case cvrecord.FieldBackgroundDate:
		m.ClearBackgroundDate()
		return nil
	}
	return fmt.Errorf("unknown CVRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CVRecordMutation) ResetField(name string) error {
	switch name {
	case cvrecord.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case cvrecord.FieldURL:
		m.ResetURL()
		return nil
	case cvrecord.FieldExtension:
		m.ResetExtension()
		return nil
	case cvrecord.FieldCvText:
		m.ResetCvText()
		return nil
	case cvrecord.FieldCandidateName:
		m.ResetCandidateName()
		return nil
	case cvrecord.FieldCandidateDni:
		m.ResetCandidateDni()
		return nil
	case cvrecord.FieldCandidateDniType:
		m.ResetCandidateDniType()
		return nil
	case cvrecord.FieldCandidateCity:
		m.ResetCandidateCity()
		return nil
	case cvrecord.FieldCandidatePhone:
		m.ResetCandidatePhone()
		return nil
	case cvrecord.FieldCandidateMail:
		m.ResetCandidateMail()
		return nil
	case cvrecord.FieldBackgroundCheck:
		m.ResetBackgroundCheck()
		return nil
	case cvrecord.FieldBackgroundDate:
		m.ResetBackgroundDate()
		return nil
	case cvrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cvrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CVRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CVRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.applications != nil {
		edges = append(edges, cvrecord.EdgeApplications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CVRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cvrecord.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.applications))
		for id := range m.applications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CVRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedapplications != nil {
		edges = append(edges, cvrecord.EdgeApplications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CVRecordMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case cvrecord.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.removedapplications))
		for id := range m.removedapplications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CVRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplications {
		edges = append(edges, cvrecord.EdgeApplications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CVRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case cvrecord.EdgeApplications:
		return m.clearedapplications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CVRecordMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CVRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CVRecordMutation) ResetEdge(name string) error {
	switch name {
	case cvrecord.EdgeApplications:
		m.ResetApplications()
		return nil
	}
	return fmt.Errorf("unknown CVRecord edge %s", name)
}

// OfferMutation represents an operation that mutates the Offer nodes in the graph.
type OfferMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	company_id          *int
	addcompany_id       *int
	name                *string
	city                *string
	age_range           *string
	gender              *string
	experience_years    *int
	addexperience_years *int
	skills              *[]string
	appendskills        []string
	active              *bool
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	applications        map[int]struct{}
	removedapplications map[int]struct{}
	clearedapplications bool
	done                bool
	oldValue            func(context.Context) (*Offer, error)
	predicates          []predicate.Offer
}

var _ ent.Mutation = (*OfferMutation)(nil)

// offerOption allows management of the mutation configuration using functional options.
type offerOption func(*OfferMutation)

// newOfferMutation creates new mutation for the Offer entity.
func newOfferMutation(c config, op Op, opts ...offerOption) *OfferMutation {
	m := &OfferMutation{
		config:        c,
		op:            op,
		typ:           TypeOffer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOfferID sets the ID field of the mutation.
func withOfferID(id int) offerOption {
	return func(m *OfferMutation) {
		var (
			err   error
			once  sync.Once
			value *Offer
		)
		m.oldValue = func(ctx context.Context) (*Offer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Offer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOffer sets the old Offer of the mutation.
func withOffer(node *Offer) offerOption {
	return func(m *OfferMutation) {
		m.oldValue = func(context.Context) (*Offer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OfferMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OfferMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OfferMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OfferMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Offer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *OfferMutation) SetCompanyID(i int) {
	m.company_id = &i
	m.addcompany_id = nil
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *OfferMutation) CompanyID() (r int, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldCompanyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// AddCompanyID adds i to the "company_id" field.
func (m *OfferMutation) AddCompanyID(i int) {
	if m.addcompany_id != nil {
		*m.addcompany_id += i
	} else {
		m.addcompany_id = &i
	}
}

// AddedCompanyID returns the value that was added to the "company_id" field in this mutation.
func (m *OfferMutation) AddedCompanyID() (r int, exists bool) {
	v := m.addcompany_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *OfferMutation) ResetCompanyID() {
	m.company_id = nil
	m.addcompany_id = nil
}

// SetName sets the "name" field.
func (m *OfferMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *OfferMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *OfferMutation) ResetName() {
	m.name = nil
}

// SetCity sets the "city" field.
func (m *OfferMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *OfferMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ResetCity resets all changes to the "city" field.
func (m *OfferMutation) ResetCity() {
	m.city = nil
}

// SetAgeRange sets the "age_range" field.
func (m *OfferMutation) SetAgeRange(s string) {
	m.age_range = &s
}

// AgeRange returns the value of the "age_range" field in the mutation.
func (m *OfferMutation) AgeRange() (r string, exists bool) {
	v := m.age_range
	if v == nil {
		return
	}
	return *v, true
}

// OldAgeRange returns the old "age_range" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldAgeRange(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgeRange is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgeRange requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgeRange: %w", err)
	}
	return oldValue.AgeRange, nil
}

// ResetAgeRange resets all changes to the "age_range" field.
func (m *OfferMutation) ResetAgeRange() {
	m.age_range = nil
}

// SetGender sets the "gender" field.
func (m *OfferMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *OfferMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldGender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ResetGender resets all changes to the "gender" field.
func (m *OfferMutation) ResetGender() {
	m.gender = nil
}

// SetExperienceYears sets the "experience_years" field.
func (m *OfferMutation) SetExperienceYears(i int) {
	m.experience_years = &i
	m.addexperience_years = nil
}

// ExperienceYears returns the value of the "experience_years" field in the mutation.
func (m *OfferMutation) ExperienceYears() (r int, exists bool) {
	v := m.experience_years
	if v == nil {
		return
	}
	return *v, true
}

// OldExperienceYears returns the old "experience_years" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldExperienceYears(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperienceYears is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperienceYears requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperienceYears: %w", err)
	}
	return oldValue.ExperienceYears, nil
}

// AddExperienceYears adds i to the "experience_years" field.
func (m *OfferMutation) AddExperienceYears(i int) {
	if m.addexperience_years != nil {
		*m.addexperience_years += i
	} else {
		m.addexperience_years = &i
	}
}

// AddedExperienceYears returns the value that was added to the "experience_years" field in this mutation.
func (m *OfferMutation) AddedExperienceYears() (r int, exists bool) {
	v := m.addexperience_years
	if v == nil {
		return
	}
	return *v, true
}

// ResetExperienceYears resets all changes to the "experience_years" field.
func (m *OfferMutation) ResetExperienceYears() {
	m.experience_years = nil
	m.addexperience_years = nil
}

// SetSkills sets the "skills" field.
func (m *OfferMutation) SetSkills(s []string) {
	m.skills = &s
	m.appendskills = nil
}

// Skills returns the value of the "skills" field in the mutation.
func (m *OfferMutation) Skills() (r []string, exists bool) {
	v := m.skills
	if v == nil {
		return
	}
	return *v, true
}

// OldSkills returns the old "skills" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldSkills(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkills: %w", err)
	}
	return oldValue.Skills, nil
}

// AppendSkills adds s to the "skills" field.
func (m *OfferMutation) AppendSkills(s []string) {
	m.appendskills = append(m.appendskills, s...)
}

// AppendedSkills returns the list of values that were appended to the "skills" field in this mutation.
func (m *OfferMutation) AppendedSkills() ([]string, bool) {
	if len(m.appendskills) == 0 {
		return nil, false
	}
	return m.appendskills, true
}

// ResetSkills resets all changes to the "skills" field.
func (m *OfferMutation) ResetSkills() {
	m.skills = nil
	m.appendskills = nil
}

// SetActive sets the "active" field.
func (m *OfferMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *OfferMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *OfferMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OfferMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OfferMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OfferMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OfferMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OfferMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Offer entity.
// If the Offer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OfferMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddApplicationIDs adds the "applications" edge to the OfferApplication entity by ids.
func (m *OfferMutation) AddApplicationIDs(ids ...int) {
	if m.applications == nil {
		m.applications = make(map[int]struct{})
	}
	for i := range ids {
		m.applications[ids[i]] = struct{}{}
	}
}

// ClearApplications clears the "applications" edge to the OfferApplication entity.
func (m *OfferMutation) ClearApplications() {
	m.clearedapplications = true
}

// ApplicationsCleared reports if the "applications" edge to the OfferApplication entity was cleared.
func (m *OfferMutation) ApplicationsCleared() bool {
	return m.clearedapplications
}

// RemoveApplicationIDs removes the "applications" edge to the OfferApplication entity by IDs.
func (m *OfferMutation) RemoveApplicationIDs(ids ...int) {
	if m.removedapplications == nil {
		m.removedapplications = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.applications, ids[i])
		m.removedapplications[ids[i]] = struct{}{}
	}
}

// RemovedApplications returns the removed IDs of the "applications" edge to the OfferApplication entity.
func (m *OfferMutation) RemovedApplicationsIDs() (ids []int) {
	for id := range m.removedapplications {
		ids = append(ids, id)
	}
	return
}

// ApplicationsIDs returns the "applications" edge IDs in the mutation.
func (m *OfferMutation) ApplicationsIDs() (ids []int) {
	for id := range m.applications {
		ids = append(ids, id)
	}
	return
}

// ResetApplications resets all changes to the "applications" edge.
func (m *OfferMutation) ResetApplications() {
	m.applications = nil
	m.clearedapplications = false
	m.removedapplications = nil
}

// Where appends a list predicates to the OfferMutation builder.
func (m *OfferMutation) Where(ps ...predicate.Offer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OfferMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OfferMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Offer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OfferMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OfferMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Offer).
func (m *OfferMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OfferMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.company_id != nil {
		fields = append(fields, offer.FieldCompanyID)
	}
	if m.name != nil {
		fields = append(fields, offer.FieldName)
	}
	if m.city != nil {
		fields = append(fields, offer.FieldCity)
	}
	if m.age_range != nil {
		fields = append(fields, offer.FieldAgeRange)
	}
	if m.gender != nil {
		fields = append(fields, offer.FieldGender)
	}
	if m.experience_years != nil {
		fields = append(fields, offer.FieldExperienceYears)
	}
	if m.skills != nil {
		fields = append(fields, offer.FieldSkills)
	}
	if m.active != nil {
		fields = append(fields, offer.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, offer.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, offer.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OfferMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case offer.FieldCompanyID:
		return m.CompanyID()
	case offer.FieldName:
		return m.Name()
	case offer.FieldCity:
		return m.City()
	case offer.FieldAgeRange:
		return m.AgeRange()
	case offer.FieldGender:
		return m.Gender()
	case offer.FieldExperienceYears:
		return m.ExperienceYears()
	case offer.FieldSkills:
		return m.Skills()
	case offer.FieldActive:
		return m.Active()
	case offer.FieldCreatedAt:
		return m.CreatedAt()
	case offer.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OfferMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case offer.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case offer.FieldName:
		return m.OldName(ctx)
	case offer.FieldCity:
		return m.OldCity(ctx)
	case offer.FieldAgeRange:
		return m.OldAgeRange(ctx)
	case offer.FieldGender:
		return m.OldGender(ctx)
	case offer.FieldExperienceYears:
		return m.OldExperienceYears(ctx)
	case offer.FieldSkills:
		return m.OldSkills(ctx)
	case offer.FieldActive:
		return m.OldActive(ctx)
	case offer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case offer.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Offer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OfferMutation) SetField(name string, value ent.Value) error {
	switch name {
	case offer.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case offer.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case offer.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case offer.FieldAgeRange:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgeRange(v)
		return nil
	case offer.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case offer.FieldExperienceYears:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperienceYears(v)
		return nil
	case offer.FieldSkills:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkills(v)
		return nil
	case offer.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case offer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case offer.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Offer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OfferMutation) AddedFields() []string {
	var fields []string
	if m.addcompany_id != nil {
		fields = append(fields, offer.FieldCompanyID)
	}
	if m.addexperience_years != nil {
		fields = append(fields, offer.FieldExperienceYears)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OfferMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case offer.FieldCompanyID:
		return m.AddedCompanyID()
	case offer.FieldExperienceYears:
		return m.AddedExperienceYears()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OfferMutation) AddField(name string, value ent.Value) error {
	switch name {
	case offer.FieldCompanyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompanyID(v)
		return nil
	case offer.FieldExperienceYears:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExperienceYears(v)
		return nil
	}
	return fmt.Errorf("unknown Offer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OfferMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OfferMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OfferMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Offer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OfferMutation) ResetField(name string) error {
	switch name {
	case offer.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case offer.FieldName:
		m.ResetName()
		return nil
	case offer.FieldCity:
		m.ResetCity()
		return nil
	case offer.FieldAgeRange:
		m.ResetAgeRange()
		return nil
	case offer.FieldGender:
		m.ResetGender()
		return nil
	case offer.FieldExperienceYears:
		m.ResetExperienceYears()
		return nil
	case offer.FieldSkills:
		m.ResetSkills()
		return nil
	case offer.FieldActive:
		m.ResetActive()
		return nil
	case offer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case offer.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Offer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OfferMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.applications != nil {
		edges = append(edges, offer.EdgeApplications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OfferMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case offer.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.applications))
		for id := range m.applications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OfferMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedapplications != nil {
		edges = append(edges, offer.EdgeApplications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OfferMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case offer.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.removedapplications))
		for id := range m.removedapplications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OfferMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplications {
		edges = append(edges, offer.EdgeApplications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OfferMutation) EdgeCleared(name string) bool {
	switch name {
	case offer.EdgeApplications:
		return m.clearedapplications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OfferMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Offer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OfferMutation) ResetEdge(name string) error {
	switch name {
	case offer.EdgeApplications:
		m.ResetApplications()
		return nil
	}
	return fmt.Errorf("unknown Offer edge %s", name)
}

// OfferApplicationMutation represents an operation that mutates the OfferApplication nodes in the graph.
type OfferApplicationMutation struct {
	config
	op                Op
	typ               string
	id                *int
	status            *string
	ai_response       *string
	response_score    *float64
	addresponse_score *float64
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	cv_record         *int
	clearedcv_record  bool
	offer             *int
	clearedoffer      bool
	done              bool
	oldValue          func(context.Context) (*OfferApplication, error)
	predicates        []predicate.OfferApplication
}

var _ ent.Mutation = (*OfferApplicationMutation)(nil)

// offerapplicationOption allows management of the mutation configuration using functional options.
type offerapplicationOption func(*OfferApplicationMutation)

// newOfferApplicationMutation creates new mutation for the OfferApplication entity.
func newOfferApplicationMutation(c config, op Op, opts ...offerapplicationOption) *OfferApplicationMutation {
	m := &OfferApplicationMutation{
		config:        c,
		op:            op,
		typ:           TypeOfferApplication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOfferApplicationID sets the ID field of the mutation.
func withOfferApplicationID(id int) offerapplicationOption {
	return func(m *OfferApplicationMutation) {
		var (
			err   error
			once  sync.Once
			value *OfferApplication
		)
		m.oldValue = func(ctx context.Context) (*OfferApplication, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OfferApplication.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOfferApplication sets the old OfferApplication of the mutation.
func withOfferApplication(node *OfferApplication) offerapplicationOption {
	return func(m *OfferApplicationMutation) {
		m.oldValue = func(context.Context) (*OfferApplication, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OfferApplicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OfferApplicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OfferApplicationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OfferApplicationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OfferApplication.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCvRecordID sets the "cv_record_id" field.
func (m *OfferApplicationMutation) SetCvRecordID(i int) {
	m.cv_record = &i
}

// CvRecordID returns the value of the "cv_record_id" field in the mutation.
func (m *OfferApplicationMutation) CvRecordID() (r int, exists bool) {
	v := m.cv_record
	if v == nil {
		return
	}
	return *v, true
}

// OldCvRecordID returns the old "cv_record_id" field's value of the OfferApplication entity.
// If the OfferApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferApplicationMutation) OldCvRecordID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCvRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCvRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCvRecordID: %w", err)
	}
	return oldValue.CvRecordID, nil
}

// ResetCvRecordID resets all changes to the "cv_record_id" field.
func (m *OfferApplicationMutation) ResetCvRecordID() {
	m.cv_record = nil
}

// SetOfferID sets the "offer_id" field.
func (m *OfferApplicationMutation) SetOfferID(i int) {
	m.offer = &i
}

// OfferID returns the value of the "offer_id" field in the mutation.
func (m *OfferApplicationMutation) OfferID() (r int, exists bool) {
	v := m.offer
	if v == nil {
		return
	}
	return *v, true
}

// OldOfferID returns the old "offer_id" field's value of the OfferApplication entity.
// If the OfferApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferApplicationMutation) OldOfferID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOfferID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOfferID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOfferID: %w", err)
	}
	return oldValue.OfferID, nil
}

// ResetOfferID resets all changes to the "offer_id" field.
func (m *OfferApplicationMutation) ResetOfferID() {
	m.offer = nil
}

// SetStatus sets the "status" field.
func (m *OfferApplicationMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *OfferApplicationMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the OfferApplication entity.
// If the OfferApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferApplicationMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OfferApplicationMutation) ResetStatus() {
	m.status = nil
}

// SetAiResponse sets the "ai_response" field.
func (m *OfferApplicationMutation) SetAiResponse(s string) {
	m.ai_response = &s
}

// AiResponse returns the value of the "ai_response" field in the mutation.
func (m *OfferApplicationMutation) AiResponse() (r string, exists bool) {
	v := m.ai_response
	if v == nil {
		return
	}
	return *v, true
}

// OldAiResponse returns the old "ai_response" field's value of the OfferApplication entity.
// If the OfferApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferApplicationMutation) OldAiResponse(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiResponse: %w", err)
	}
	return oldValue.AiResponse, nil
}

// ClearAiResponse clears the value of the "ai_response" field.
func (m *OfferApplicationMutation) ClearAiResponse() {
	m.ai_response = nil
	m.clearedFields[offerapplication.FieldAiResponse] = struct{}{}
}

// AiResponseCleared returns if the "ai_response" field was cleared in this mutation.
func (m *OfferApplicationMutation) AiResponseCleared() bool {
	_, ok := m.clearedFields[offerapplication.FieldAiResponse]
	return ok
}

// ResetAiResponse resets all changes to the "ai_response" field.
func (m *OfferApplicationMutation) ResetAiResponse() {
	m.ai_response = nil
	delete(m.clearedFields, offerapplication.FieldAiResponse)
}

// SetResponseScore sets the "response_score" field.
func (m *OfferApplicationMutation) SetResponseScore(f float64) {
	m.response_score = &f
	m.addresponse_score = nil
}

// ResponseScore returns the value of the "response_score" field in the mutation.
func (m *OfferApplicationMutation) ResponseScore() (r float64, exists bool) {
	v := m.response_score
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseScore returns the old "response_score" field's value of the OfferApplication entity.
// If the OfferApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferApplicationMutation) OldResponseScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseScore: %w", err)
	}
	return oldValue.ResponseScore, nil
}

// AddResponseScore adds f to the "response_score" field.
func (m *OfferApplicationMutation) AddResponseScore(f float64) {
	if m.addresponse_score != nil {
		*m.addresponse_score += f
	} else {
		m.addresponse_score = &f
	}
}

// AddedResponseScore returns the value that was added to the "response_score" field in this mutation.
func (m *OfferApplicationMutation) AddedResponseScore() (r float64, exists bool) {
	v := m.addresponse_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearResponseScore clears the value of the "response_score" field.
func (m *OfferApplicationMutation) ClearResponseScore() {
	m.response_score = nil
	m.addresponse_score = nil
	m.clearedFields[offerapplication.FieldResponseScore] = struct{}{}
}

// ResponseScoreCleared returns if the "response_score" field was cleared in this mutation.
func (m *OfferApplicationMutation) ResponseScoreCleared() bool {
	_, ok := m.clearedFields[offerapplication.FieldResponseScore]
	return ok
}

// ResetResponseScore resets all changes to the "response_score" field.
func (m *OfferApplicationMutation) ResetResponseScore() {
	m.response_score = nil
	m.addresponse_score = nil
	delete(m.clearedFields, offerapplication.FieldResponseScore)
}

// SetCreatedAt sets the "created_at" field.
func (m *OfferApplicationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OfferApplicationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OfferApplication entity.
// If the OfferApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferApplicationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OfferApplicationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OfferApplicationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OfferApplicationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the OfferApplication entity.
// If the OfferApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfferApplicationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OfferApplicationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCvRecord clears the "cv_record" edge to the CVRecord entity.
func (m *OfferApplicationMutation) ClearCvRecord() {
	m.clearedcv_record = true
	m.clearedFields[offerapplication.FieldCvRecordID] = struct{}{}
}

// CvRecordCleared reports if the "cv_record" edge to the CVRecord entity was cleared.
func (m *OfferApplicationMutation) CvRecordCleared() bool {
	return m.clearedcv_record
}

// CvRecordIDs returns the "cv_record" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CvRecordID instead. It exists only for internal usage by the builders.
func (m *OfferApplicationMutation) CvRecordIDs() (ids []int) {
	if id := m.cv_record; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCvRecord resets all changes to the "cv_record" edge.
func (m *OfferApplicationMutation) ResetCvRecord() {
	m.cv_record = nil
	m.clearedcv_record = false
}

// ClearOffer clears the "offer" edge to the Offer entity.
func (m *OfferApplicationMutation) ClearOffer() {
	m.clearedoffer = true
	m.clearedFields[offerapplication.FieldOfferID] = struct{}{}
}

// OfferCleared reports if the "offer" edge to the Offer entity was cleared.
func (m *OfferApplicationMutation) OfferCleared() bool {
	return m.clearedoffer
}

// OfferIDs returns the "offer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OfferID instead. It exists only for internal usage by the builders.
func (m *OfferApplicationMutation) OfferIDs() (ids []int) {
	if id := m.offer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOffer resets all changes to the "offer" edge.
func (m *OfferApplicationMutation) ResetOffer() {
	m.offer = nil
	m.clearedoffer = false
}

// Where appends a list predicates to the OfferApplicationMutation builder.
func (m *OfferApplicationMutation) Where(ps ...predicate.OfferApplication) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OfferApplicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OfferApplicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OfferApplication, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OfferApplicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OfferApplicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OfferApplication).
func (m *OfferApplicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OfferApplicationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.cv_record != nil {
		fields = append(fields, offerapplication.FieldCvRecordID)
	}
	if m.offer != nil {
		fields = append(fields, offerapplication.FieldOfferID)
	}
	if m.status != nil {
		fields = append(fields, offerapplication.FieldStatus)
	}
	if m.ai_response != nil {
		fields = append(fields, offerapplication.FieldAiResponse)
	}
	if m.response_score != nil {
		fields = append(fields, offerapplication.FieldResponseScore)
	}
	if m.created_at != nil {
		fields = append(fields, offerapplication.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, offerapplication.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OfferApplicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case offerapplication.FieldCvRecordID:
		return m.CvRecordID()
	case offerapplication.FieldOfferID:
		return m.OfferID()
	case offerapplication.FieldStatus:
		return m.Status()
	case offerapplication.FieldAiResponse:
		return m.AiResponse()
	case offerapplication.FieldResponseScore:
		return m.ResponseScore()
	case offerapplication.FieldCreatedAt:
		return m.CreatedAt()
	case offerapplication.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OfferApplicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case offerapplication.FieldCvRecordID:
		return m.OldCvRecordID(ctx)
	case offerapplication.FieldOfferID:
		return m.OldOfferID(ctx)
	case offerapplication.FieldStatus:
		return m.OldStatus(ctx)
	case offerapplication.FieldAiResponse:
		return m.OldAiResponse(ctx)
	case offerapplication.FieldResponseScore:
		return m.OldResponseScore(ctx)
	case offerapplication.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case offerapplication.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OfferApplication field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OfferApplicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case offerapplication.FieldCvRecordID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCvRecordID(v)
		return nil
	case offerapplication.FieldOfferID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOfferID(v)
		return nil
	case offerapplication.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case offerapplication.FieldAiResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiResponse(v)
		return nil
	case offerapplication.FieldResponseScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseScore(v)
		return nil
	case offerapplication.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case offerapplication.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OfferApplication field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OfferApplicationMutation) AddedFields() []string {
	var fields []string
	if m.addresponse_score != nil {
		fields = append(fields, offerapplication.FieldResponseScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OfferApplicationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case offerapplication.FieldResponseScore:
		return m.AddedResponseScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OfferApplicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case offerapplication.FieldResponseScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseScore(v)
		return nil
	}
	return fmt.Errorf("unknown OfferApplication numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OfferApplicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(offerapplication.FieldAiResponse) {
		fields = append(fields, offerapplication.FieldAiResponse)
	}
	if m.FieldCleared(offerapplication.FieldResponseScore) {
		fields = append(fields, offerapplication.FieldResponseScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OfferApplicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OfferApplicationMutation) ClearField(name string) error {
	switch name {
	case offerapplication.FieldAiResponse:
		m.ClearAiResponse()
		return nil
	case offerapplication.FieldResponseScore:
		m.ClearResponseScore()
		return nil
	}
	return fmt.Errorf("unknown OfferApplication nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OfferApplicationMutation) ResetField(name string) error {
	switch name {
	case offerapplication.FieldCvRecordID:
		m.ResetCvRecordID()
		return nil
	case offerapplication.FieldOfferID:
		m.ResetOfferID()
		return nil
	case offerapplication.FieldStatus:
		m.ResetStatus()
		return nil
	case offerapplication.FieldAiResponse:
		m.ResetAiResponse()
		return nil
	case offerapplication.FieldResponseScore:
		m.ResetResponseScore()
		return nil
	case offerapplication.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case offerapplication.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown OfferApplication field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OfferApplicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cv_record != nil {
		edges = append(edges, offerapplication.EdgeCvRecord)
	}
	if m.offer != nil {
		edges = append(edges, offerapplication.EdgeOffer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OfferApplicationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case offerapplication.EdgeCvRecord:
		if id := m.cv_record; id != nil {
			return []ent.Value{*id}
		}
	case offerapplication.EdgeOffer:
		if id := m.offer; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OfferApplicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OfferApplicationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OfferApplicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcv_record {
		edges = append(edges, offerapplication.EdgeCvRecord)
	}
	if m.clearedoffer {
		edges = append(edges, offerapplication.EdgeOffer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OfferApplicationMutation) EdgeCleared(name string) bool {
	switch name {
	case offerapplication.EdgeCvRecord:
		return m.clearedcv_record
	case offerapplication.EdgeOffer:
		return m.clearedoffer
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OfferApplicationMutation) ClearEdge(name string) error {
	switch name {
	case offerapplication.EdgeCvRecord:
		m.ClearCvRecord()
		return nil
	case offerapplication.EdgeOffer:
		m.ClearOffer()
		return nil
	}
	return fmt.Errorf("unknown OfferApplication unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OfferApplicationMutation) ResetEdge(name string) error {
	switch name {
	case offerapplication.EdgeCvRecord:
		m.ResetCvRecord()
		return nil
	case offerapplication.EdgeOffer:
		m.ResetOffer()
		return nil
	}
	return fmt.Errorf("unknown OfferApplication edge %s", name)
}
