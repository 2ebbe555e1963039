// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recluta/recluta-backend/gen/ent/cvrecord"
	"github.com/recluta/recluta-backend/gen/ent/offerapplication"
	"github.com/recluta/recluta-backend/gen/ent/predicate"
)

// CVRecordUpdate is the builder for updating CVRecord entities.
type CVRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CVRecordMutation
}

// Where appends a list predicates to the CVRecordUpdate builder.
func (_u *CVRecordUpdate) Where(ps ...predicate.CVRecord) *CVRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *CVRecordUpdate) SetCompanyID(v int) *CVRecordUpdate {
	_u.mutation.ResetCompanyID()
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *CVRecordUpdate) SetNillableCompanyID(v *int) *CVRecordUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// AddCompanyID adds value to the "company_id" field.
func (_u *CVRecordUpdate) AddCompanyID(v int) *CVRecordUpdate {
	_u.mutation.AddCompanyID(v)
	return _u
}

// SetURL sets the "url" field.
func (_u *CVRecordUpdate) SetURL(v string) *CVRecordUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CVRecordUpdate) SetNillableURL(v *string) *CVRecordUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetExtension sets the "extension" field.
func (_u *CVRecordUpdate) SetExtension(v string) *CVRecordUpdate {
	_u.mutation.SetExtension(v)
	return _u
}

// SetNillableExtension sets the "extension" field if the given value is not nil.
func (_u *CVRecordUpdate) SetNillableExtension(v *string) *CVRecordUpdate {
	if v != nil {
		_u.SetExtension(*v)
	}
	return _u
}

// SetCvText sets the "cv_text" field.
func (_u *CVRecordUpdate) SetCvText(v string) *CVRecordUpdate {
	_u.mutation.SetCvText(v)
	return _u
}

// SetNillableCvText sets the "cv_text" field if the given value is not nil.
func (_u *CVRecordUpdate) SetNillableCvText(v *string) *CVRecordUpdate {
	if v != nil {
		_u.SetCvText(*v)
	}
	return _u
}

// ClearCvText clears the value of the "cv_text" field.
func (_u *CVRecordUpdate) ClearCvText() *CVRecordUpdate {
	_u.mutation.ClearCvText()
	return _u
}

// SetCandidateName sets the "candidate_name" field.
func (_u *CVRecordUpdate) SetCandidateName(v string) *CVRecordUpdate {
	_u.mutation.SetCandidateName(v)
	return _u
}

// SetNillableCandidateName sets the "candidate_name" field if the given value is not nil.
func (_u *CVRecordUpdate) SetNillableCandidateName(v *string) *CVRecordUpdate {
	if v != nil {
		_u.SetCandidateName(*v)
	}
	return _u
}

// ClearCandidateName clears the value of the "candidate_name" field.
func (_u *CVRecordUpdate) ClearCandidateName() *CVRecordUpdate {
	_u.mutation.ClearCandidateName()
	return _u
}

// SetCandidateDni sets the "candidate_dni" field.
func (_u *CVRecordUpdate) SetCandidateDni(v string) *CVRecordUpdate {
	_u.mutation.SetCandidateDni(v)
	return _u
}

// SetNillableCandidateDni sets the "candidate_dni" field if the given value is not nil.
func (_u *CVRecordUpdate) SetNillableCandidateDni(v *string) *CVRecordUpdate {
	if v != nil {
		_u.SetCandidateDni(*v)
	}
	return _u
}

// ClearCandidateDni clears the value of the "candidate_dni" field.
func (_u *CVRecordUpdate) ClearCandidateDni() *CVRecordUpdate {
	_u.mutation.ClearCandidateDni()
	return _u
}

// SetCandidateDniType sets the "candidate_dni_type" field.
func (_u *CVRecordUpdate) SetCandidateDniType(v string) *CVRecordUpdate {
	_u.mutation.SetCandidateDniType(v)
	return _u
}

// SetNillableCandidateDniType sets the "candidate_dni_type" field if the given value is not nil.
func (_u *CVRecordUpdate) SetNillableCandidateDniType(v *string) *CVRecordUpdate {
	if v != nil {
		_u.SetCandidateDniType(*v)
	}
	return _u
}

// ClearCandidateDniType clears the value of the "candidate_dni_type" field.
func (_u *CVRecordUpdate) ClearCandidateDniType() *CVRecordUpdate {
	_u.mutation.ClearCandidateDniType()
	return _u
}

// SetCandidateCity sets the "candidate_city" field.
func (_u *CVRecordUpdate) SetCandidateCity(v string) *CVRecordUpdate {
	_u.mutation.SetCandidateCity(v)
	return _u
}

// SetNillableCandidateCity sets the "candidate_city" field if the given value is not nil.
func (_u *CVRecordUpdate) SetNillableCandidateCity(v *string) *CVRecordUpdate {
	if v != nil {
		_u.SetCandidateCity(*v)
	}
	return _u
}

// ClearCandidateCity clears the value of the "candidate_city" field.
func (_u *CVRecordUpdate) ClearCandidateCity() *CVRecordUpdate {
	_u.mutation.ClearCandidateCity()
	return _u
}

// SetCandidatePhone sets the "candidate_phone" field.
func (_u *CVRecordUpdate) SetCandidatePhone(v string) *CVRecordUpdate {
	_u.mutation.SetCandidatePhone(v)
	return _u
}

// SetNillableCandidatePhone sets the "candidate_phone" field if the given value is not nil.
func (_u *CVRecordUpdate) SetNillableCandidatePhone(v *string) *CVRecordUpdate {
	if v != nil {
		_u.SetCandidatePhone(*v)
	}
	return _u
}

// ClearCandidatePhone clears the value of the "candidate_phone" field.
func (_u *CVRecordUpdate) ClearCandidatePhone() *CVRecordUpdate {
	_u.mutation.ClearCandidatePhone()
	return _u
}

// SetCandidateMail sets the "candidate_mail" field.
func (_u *CVRecordUpdate) SetCandidateMail(v string) *CVRecordUpdate {
	_u.mutation.SetCandidateMail(v)
	return _u
}

// SetNillableCandidateMail sets the "candidate_mail" field if the given value is not nil.
func (_u *CVRecordUpdate) SetNillableCandidateMail(v *string) *CVRecordUpdate {
	if v != nil {
		_u.SetCandidateMail(*v)
	}
	return _u
}

// ClearCandidateMail clears the value of the "candidate_mail" field.
func (_u *CVRecordUpdate) ClearCandidateMail() *CVRecordUpdate {
	_u.mutation.ClearCandidateMail()
	return _u
}

// SetBackgroundCheck sets the "background_check" field.
func (_u *CVRecordUpdate) SetBackgroundCheck(v string) *CVRecordUpdate {
	_u.mutation.SetBackgroundCheck(v)
	return _u
}

// SetNillableBackgroundCheck sets the "background_check" field if the given value is not nil.
func (_u *CVRecordUpdate) SetNillableBackgroundCheck(v *string) *CVRecordUpdate {
	if v != nil {
		_u.SetBackgroundCheck(*v)
	}
	return _u
}

// ClearBackgroundCheck clears the value of the "background_check" field.
func (_u *CVRecordUpdate) ClearBackgroundCheck() *CVRecordUpdate {
	_u.mutation.ClearBackgroundCheck()
	return _u
}

// SetBackgroundDate sets the "background_date" field.
func (_u *CVRecordUpdate) SetBackgroundDate(v time.Time) *CVRecordUpdate {
	_u.mutation.SetBackgroundDate(v)
	return _u
}

// SetNillableBackgroundDate sets the "background_date" field if the given value is not nil.
func (_u *CVRecordUpdate) SetNillableBackgroundDate(v *time.Time) *CVRecordUpdate {
	if v != nil {
		_u.SetBackgroundDate(*v)
	}
	return _u
}

// ClearBackgroundDate clears the value of the "background_date" field.
func (_u *CVRecordUpdate) ClearBackgroundDate() *CVRecordUpdate {
	_u.mutation.ClearBackgroundDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CVRecordUpdate) SetUpdatedAt(v time.Time) *CVRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddApplicationIDs adds the "applications" edge to the OfferApplication entity by IDs.
func (_u *CVRecordUpdate) AddApplicationIDs(ids ...int) *CVRecordUpdate {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the OfferApplication entity.
func (_u *CVRecordUpdate) AddApplications(v ...*OfferApplication) *CVRecordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// Mutation returns the CVRecordMutation object of the builder.
func (_u *CVRecordUpdate) Mutation() *CVRecordMutation {
	return _u.mutation
}

// ClearApplications clears all "applications" edges to the OfferApplication entity.
func (_u *CVRecordUpdate) ClearApplications() *CVRecordUpdate {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to OfferApplication entities by IDs.
func (_u *CVRecordUpdate) RemoveApplicationIDs(ids ...int) *CVRecordUpdate {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to OfferApplication entities.
func (_u *CVRecordUpdate) RemoveApplications(v ...*OfferApplication) *CVRecordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CVRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CVRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CVRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CVRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CVRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cvrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CVRecordUpdate) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := cvrecord.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "CVRecord.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Extension(); ok {
		if err := cvrecord.ExtensionValidator(v); err != nil {
			return &ValidationError{Name: "extension", err: fmt.Errorf(`ent: validator failed for field "CVRecord.extension": %w`, err)}
		}
	}
	return nil
}

func (_u *CVRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cvrecord.Table, cvrecord.Columns, sqlgraph.NewFieldSpec(cvrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(cvrecord.FieldCompanyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompanyID(); ok {
		_spec.AddField(cvrecord.FieldCompanyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(cvrecord.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Extension(); ok {
		_spec.SetField(cvrecord.FieldExtension, field.TypeString, value)
	}
	if value, ok := _u.mutation.CvText(); ok {
		_spec.SetField(cvrecord.FieldCvText, field.TypeString, value)
	}
	if _u.mutation.CvTextCleared() {
		_spec.ClearField(cvrecord.FieldCvText, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateName(); ok {
		_spec.SetField(cvrecord.FieldCandidateName, field.TypeString, value)
	}
	if _u.mutation.CandidateNameCleared() {
		_spec.ClearField(cvrecord.FieldCandidateName, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateDni(); ok {
		_spec.SetField(cvrecord.FieldCandidateDni, field.TypeString, value)
	}
	if _u.mutation.CandidateDniCleared() {
		_spec.ClearField(cvrecord.FieldCandidateDni, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateDniType(); ok {
		_spec.SetField(cvrecord.FieldCandidateDniType, field.TypeString, value)
	}
	if _u.mutation.CandidateDniTypeCleared() {
		_spec.ClearField(cvrecord.FieldCandidateDniType, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateCity(); ok {
		_spec.SetField(cvrecord.FieldCandidateCity, field.TypeString, value)
	}
	if _u.mutation.CandidateCityCleared() {
		_spec.ClearField(cvrecord.FieldCandidateCity, field.TypeString)
	}
	if value, ok := _u.mutation.CandidatePhone(); ok {
		_spec.SetField(cvrecord.FieldCandidatePhone, field.TypeString, value)
	}
	if _u.mutation.CandidatePhoneCleared() {
		_spec.ClearField(cvrecord.FieldCandidatePhone, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateMail(); ok {
		_spec.SetField(cvrecord.FieldCandidateMail, field.TypeString, value)
	}
	if _u.mutation.CandidateMailCleared() {
		_spec.ClearField(cvrecord.FieldCandidateMail, field.TypeString)
	}
	if value, ok := _u.mutation.BackgroundCheck(); ok {
		_spec.SetField(cvrecord.FieldBackgroundCheck, field.TypeString, value)
	}
	if _u.mutation.BackgroundCheckCleared() {
		_spec.ClearField(cvrecord.FieldBackgroundCheck, field.TypeString)
	}
	if value, ok := _u.mutation.BackgroundDate(); ok {
		_spec.SetField(cvrecord.FieldBackgroundDate, field.TypeTime, value)
	}
	if _u.mutation.BackgroundDateCleared() {
		_spec.ClearField(cvrecord.FieldBackgroundDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cvrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cvrecord.ApplicationsTable,
			Columns: []string{cvrecord.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(offerapplication.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cvrecord.ApplicationsTable,
			Columns: []string{cvrecord.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(offerapplication.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cvrecord.ApplicationsTable,
			Columns: []string{cvrecord.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(offerapplication.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cvrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CVRecordUpdateOne is the builder for updating a single CVRecord entity.
type CVRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CVRecordMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *CVRecordUpdateOne) SetCompanyID(v int) *CVRecordUpdateOne {
	_u.mutation.ResetCompanyID()
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *CVRecordUpdateOne) SetNillableCompanyID(v *int) *CVRecordUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// AddCompanyID adds value to the "company_id" field.
func (_u *CVRecordUpdateOne) AddCompanyID(v int) *CVRecordUpdateOne {
	_u.mutation.AddCompanyID(v)
	return _u
}

// SetURL sets the "url" field.
func (_u *CVRecordUpdateOne) SetURL(v string) *CVRecordUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CVRecordUpdateOne) SetNillableURL(v *string) *CVRecordUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetExtension sets the "extension" field.
func (_u *CVRecordUpdateOne) SetExtension(v string) *CVRecordUpdateOne {
	_u.mutation.SetExtension(v)
	return _u
}

// SetNillableExtension sets the "extension" field if the given value is not nil.
func (_u *CVRecordUpdateOne) SetNillableExtension(v *string) *CVRecordUpdateOne {
	if v != nil {
		_u.SetExtension(*v)
	}
	return _u
}

// SetCvText sets the "cv_text" field.
func (_u *CVRecordUpdateOne) SetCvText(v string) *CVRecordUpdateOne {
	_u.mutation.SetCvText(v)
	return _u
}

// SetNillableCvText sets the "cv_text" field if the given value is not nil.
func (_u *CVRecordUpdateOne) SetNillableCvText(v *string) *CVRecordUpdateOne {
	if v != nil {
		_u.SetCvText(*v)
	}
	return _u
}

// ClearCvText clears the value of the "cv_text" field.
func (_u *CVRecordUpdateOne) ClearCvText() *CVRecordUpdateOne {
	_u.mutation.ClearCvText()
	return _u
}

// SetCandidateName sets the "candidate_name" field.
func (_u *CVRecordUpdateOne) SetCandidateName(v string) *CVRecordUpdateOne {
	_u.mutation.SetCandidateName(v)
	return _u
}

// SetNillableCandidateName sets the "candidate_name" field if the given value is not nil.
func (_u *CVRecordUpdateOne) SetNillableCandidateName(v *string) *CVRecordUpdateOne {
	if v != nil {
		_u.SetCandidateName(*v)
	}
	return _u
}

// ClearCandidateName clears the value of the "candidate_name" field.
func (_u *CVRecordUpdateOne) ClearCandidateName() *CVRecordUpdateOne {
	_u.mutation.ClearCandidateName()
	return _u
}

// SetCandidateDni sets the "candidate_dni" field.
func (_u *CVRecordUpdateOne) SetCandidateDni(v string) *CVRecordUpdateOne {
	_u.mutation.SetCandidateDni(v)
	return _u
}

// SetNillableCandidateDni sets the "candidate_dni" field if the given value is not nil.
func (_u *CVRecordUpdateOne) SetNillableCandidateDni(v *string) *CVRecordUpdateOne {
	if v != nil {
		_u.SetCandidateDni(*v)
	}
	return _u
}

// ClearCandidateDni clears the value of the "candidate_dni" field.
func (_u *CVRecordUpdateOne) ClearCandidateDni() *CVRecordUpdateOne {
	_u.mutation.ClearCandidateDni()
	return _u
}

// SetCandidateDniType sets the "candidate_dni_type" field.
func (_u *CVRecordUpdateOne) SetCandidateDniType(v string) *CVRecordUpdateOne {
	_u.mutation.SetCandidateDniType(v)
	return _u
}

// SetNillableCandidateDniType sets the "candidate_dni_type" field if the given value is not nil.
func (_u *CVRecordUpdateOne) SetNillableCandidateDniType(v *string) *CVRecordUpdateOne {
	if v != nil {
		_u.SetCandidateDniType(*v)
	}
	return _u
}

// ClearCandidateDniType clears the value of the "candidate_dni_type" field.
func (_u *CVRecordUpdateOne) ClearCandidateDniType() *CVRecordUpdateOne {
	_u.mutation.ClearCandidateDniType()
	return _u
}

// SetCandidateCity sets the "candidate_city" field.
func (_u *CVRecordUpdateOne) SetCandidateCity(v string) *CVRecordUpdateOne {
	_u.mutation.SetCandidateCity(v)
	return _u
}

// SetNillableCandidateCity sets the "candidate_city" field if the given value is not nil.
func (_u *CVRecordUpdateOne) SetNillableCandidateCity(v *string) *CVRecordUpdateOne {
	if v != nil {
		_u.SetCandidateCity(*v)
	}
	return _u
}

// ClearCandidateCity clears the value of the "candidate_city" field.
func (_u *CVRecordUpdateOne) ClearCandidateCity() *CVRecordUpdateOne {
	_u.mutation.ClearCandidateCity()
	return _u
}

// SetCandidatePhone sets the "candidate_phone" field.
func (_u *CVRecordUpdateOne) SetCandidatePhone(v string) *CVRecordUpdateOne {
	_u.mutation.SetCandidatePhone(v)
	return _u
}

// SetNillableCandidatePhone sets the "candidate_phone" field if the given value is not nil.
func (_u *CVRecordUpdateOne) SetNillableCandidatePhone(v *string) *CVRecordUpdateOne {
	if v != nil {
		_u.SetCandidatePhone(*v)
	}
	return _u
}

// ClearCandidatePhone clears the value of the "candidate_phone" field.
func (_u *CVRecordUpdateOne) ClearCandidatePhone() *CVRecordUpdateOne {
	_u.mutation.ClearCandidatePhone()
	return _u
}

// SetCandidateMail sets the "candidate_mail" field.
func (_u *CVRecordUpdateOne) SetCandidateMail(v string) *CVRecordUpdateOne {
	_u.mutation.SetCandidateMail(v)
	return _u
}

// SetNillableCandidateMail sets the "candidate_mail" field if the given value is not nil.
func (_u *CVRecordUpdateOne) SetNillableCandidateMail(v *string) *CVRecordUpdateOne {
	if v != nil {
		_u.SetCandidateMail(*v)
	}
	return _u
}

// ClearCandidateMail clears the value of the "candidate_mail" field.
func (_u *CVRecordUpdateOne) ClearCandidateMail() *CVRecordUpdateOne {
	_u.mutation.ClearCandidateMail()
	return _u
}

// SetBackgroundCheck sets the "background_check" field.
func (_u *CVRecordUpdateOne) SetBackgroundCheck(v string) *CVRecordUpdateOne {
	_u.mutation.SetBackgroundCheck(v)
	return _u
}

// SetNillableBackgroundCheck sets the "background_check" field if the given value is not nil.
func (_u *CVRecordUpdateOne) SetNillableBackgroundCheck(v *string) *CVRecordUpdateOne {
	if v != nil {
		_u.SetBackgroundCheck(*v)
	}
	return _u
}

// ClearBackgroundCheck clears the value of the "background_check" field.
func (_u *CVRecordUpdateOne) ClearBackgroundCheck() *CVRecordUpdateOne {
	_u.mutation.ClearBackgroundCheck()
	return _u
}

// SetBackgroundDate sets the "background_date" field.
func (_u *CVRecordUpdateOne) SetBackgroundDate(v time.Time) *CVRecordUpdateOne {
	_u.mutation.SetBackgroundDate(v)
	return _u
}

// SetNillableBackgroundDate sets the "background_date" field if the given value is not nil.
func (_u *CVRecordUpdateOne) SetNillableBackgroundDate(v *time.Time) *CVRecordUpdateOne {
	if v != nil {
		_u.SetBackgroundDate(*v)
	}
	return _u
}

// ClearBackgroundDate clears the value of the "background_date" field.
func (_u *CVRecordUpdateOne) ClearBackgroundDate() *CVRecordUpdateOne {
	_u.mutation.ClearBackgroundDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CVRecordUpdateOne) SetUpdatedAt(v time.Time) *CVRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddApplicationIDs adds the "applications" edge to the OfferApplication entity by IDs.
func (_u *CVRecordUpdateOne) AddApplicationIDs(ids ...int) *CVRecordUpdateOne {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the OfferApplication entity.
func (_u *CVRecordUpdateOne) AddApplications(v ...*OfferApplication) *CVRecordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// Mutation returns the CVRecordMutation object of the builder.
func (_u *CVRecordUpdateOne) Mutation() *CVRecordMutation {
	return _u.mutation
}

// ClearApplications clears all "applications" edges to the OfferApplication entity.
func (_u *CVRecordUpdateOne) ClearApplications() *CVRecordUpdateOne {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to OfferApplication entities by IDs.
func (_u *CVRecordUpdateOne) RemoveApplicationIDs(ids ...int) *CVRecordUpdateOne {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to OfferApplication entities.
func (_u *CVRecordUpdateOne) RemoveApplications(v ...*OfferApplication) *CVRecordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// Where appends a list predicates to the CVRecordUpdate builder.
func (_u *CVRecordUpdateOne) Where(ps ...predicate.CVRecord) *CVRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CVRecordUpdateOne) Select(field string, fields ...string) *CVRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CVRecord entity.
func (_u *CVRecordUpdateOne) Save(ctx context.Context) (*CVRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CVRecordUpdateOne) SaveX(ctx context.Context) *CVRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CVRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CVRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CVRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cvrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CVRecordUpdateOne) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := cvrecord.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "CVRecord.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Extension(); ok {
		if err := cvrecord.ExtensionValidator(v); err != nil {
			return &ValidationError{Name: "extension", err: fmt.Errorf(`ent: validator failed for field "CVRecord.extension": %w`, err)}
		}
	}
	return nil
}

func (_u *CVRecordUpdateOne) sqlSave(ctx context.Context) (_node *CVRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cvrecord.Table, cvrecord.Columns, sqlgraph.NewFieldSpec(cvrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CVRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cvrecord.FieldID)
		for _, f := range fields {
			if !cvrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cvrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(cvrecord.FieldCompanyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompanyID(); ok {
		_spec.AddField(cvrecord.FieldCompanyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(cvrecord.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Extension(); ok {
		_spec.SetField(cvrecord.FieldExtension, field.TypeString, value)
	}
	if value, ok := _u.mutation.CvText(); ok {
		_spec.SetField(cvrecord.FieldCvText, field.TypeString, value)
	}
	if _u.mutation.CvTextCleared() {
		_spec.ClearField(cvrecord.FieldCvText, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateName(); ok {
		_spec.SetField(cvrecord.FieldCandidateName, field.TypeString, value)
	}
	if _u.mutation.CandidateNameCleared() {
		_spec.ClearField(cvrecord.FieldCandidateName, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateDni(); ok {
		_spec.SetField(cvrecord.FieldCandidateDni, field.TypeString, value)
	}
	if _u.mutation.CandidateDniCleared() {
		_spec.ClearField(cvrecord.FieldCandidateDni, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateDniType(); ok {
		_spec.SetField(cvrecord.FieldCandidateDniType, field.TypeString, value)
	}
	if _u.mutation.CandidateDniTypeCleared() {
		_spec.ClearField(cvrecord.FieldCandidateDniType, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateCity(); ok {
		_spec.SetField(cvrecord.FieldCandidateCity, field.TypeString, value)
	}
	if _u.mutation.CandidateCityCleared() {
		_spec.ClearField(cvrecord.FieldCandidateCity, field.TypeString)
	}
	if value, ok := _u.mutation.CandidatePhone(); ok {
		_spec.SetField(cvrecord.FieldCandidatePhone, field.TypeString, value)
	}
	if _u.mutation.CandidatePhoneCleared() {
		_spec.ClearField(cvrecord.FieldCandidatePhone, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateMail(); ok {
		_spec.SetField(cvrecord.FieldCandidateMail, field.TypeString, value)
	}
	if _u.mutation.CandidateMailCleared() {
		_spec.ClearField(cvrecord.FieldCandidateMail, field.TypeString)
	}
	if value, ok := _u.mutation.BackgroundCheck(); ok {
		_spec.SetField(cvrecord.FieldBackgroundCheck, field.TypeString, value)
	}
	if _u.mutation.BackgroundCheckCleared() {
		_spec.ClearField(cvrecord.FieldBackgroundCheck, field.TypeString)
	}
	if value, ok := _u.mutation.BackgroundDate(); ok {
		_spec.SetField(cvrecord.FieldBackgroundDate, field.TypeTime, value)
	}
	if _u.mutation.BackgroundDateCleared() {
		_spec.ClearField(cvrecord.FieldBackgroundDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cvrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cvrecord.ApplicationsTable,
			Columns: []string{cvrecord.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(offerapplication.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cvrecord.ApplicationsTable,
			Columns: []string{cvrecord.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(offerapplication.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cvrecord.ApplicationsTable,
			Columns: []string{cvrecord.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(offerapplication.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CVRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cvrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
