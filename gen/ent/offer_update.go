// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/recluta/recluta-backend/gen/ent/offer"
	"github.com/recluta/recluta-backend/gen/ent/offerapplication"
	"github.com/recluta/recluta-backend/gen/ent/predicate"
)

// OfferUpdate is the builder for updating Offer entities.
type OfferUpdate struct {
	config
	hooks    []Hook
	mutation *OfferMutation
}

// Where appends a list predicates to the OfferUpdate builder.
func (_u *OfferUpdate) Where(ps ...predicate.Offer) *OfferUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *OfferUpdate) SetCompanyID(v int) *OfferUpdate {
	_u.mutation.ResetCompanyID()
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableCompanyID(v *int) *OfferUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// AddCompanyID adds value to the "company_id" field.
func (_u *OfferUpdate) AddCompanyID(v int) *OfferUpdate {
	_u.mutation.AddCompanyID(v)
	return _u
}

// SetName sets the "name" field.
func (_u *OfferUpdate) SetName(v string) *OfferUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableName(v *string) *OfferUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *OfferUpdate) SetCity(v string) *OfferUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableCity(v *string) *OfferUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetAgeRange sets the "age_range" field.
func (_u *OfferUpdate) SetAgeRange(v string) *OfferUpdate {
	_u.mutation.SetAgeRange(v)
	return _u
}

// SetNillableAgeRange sets the "age_range" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableAgeRange(v *string) *OfferUpdate {
	if v != nil {
		_u.SetAgeRange(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *OfferUpdate) SetGender(v string) *OfferUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableGender(v *string) *OfferUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *OfferUpdate) SetExperienceYears(v int) *OfferUpdate {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableExperienceYears(v *int) *OfferUpdate {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *OfferUpdate) AddExperienceYears(v int) *OfferUpdate {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetSkills sets the "skills" field.
func (_u *OfferUpdate) SetSkills(v []string) *OfferUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *OfferUpdate) AppendSkills(v []string) *OfferUpdate {
	_u.mutation.AppendSkills(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *OfferUpdate) SetActive(v bool) *OfferUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *OfferUpdate) SetNillableActive(v *bool) *OfferUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OfferUpdate) SetUpdatedAt(v time.Time) *OfferUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddApplicationIDs adds the "applications" edge to the OfferApplication entity by IDs.
func (_u *OfferUpdate) AddApplicationIDs(ids ...int) *OfferUpdate {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the OfferApplication entity.
func (_u *OfferUpdate) AddApplications(v ...*OfferApplication) *OfferUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// Mutation returns the OfferMutation object of the builder.
func (_u *OfferUpdate) Mutation() *OfferMutation {
	return _u.mutation
}

// ClearApplications clears all "applications" edges to the OfferApplication entity.
func (_u *OfferUpdate) ClearApplications() *OfferUpdate {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to OfferApplication entities by IDs.
func (_u *OfferUpdate) RemoveApplicationIDs(ids ...int) *OfferUpdate {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to OfferApplication entities.
func (_u *OfferUpdate) RemoveApplications(v ...*OfferApplication) *OfferUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OfferUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OfferUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OfferUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OfferUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OfferUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := offer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OfferUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := offer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Offer.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := offer.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Offer.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgeRange(); ok {
		if err := offer.AgeRangeValidator(v); err != nil {
			return &ValidationError{Name: "age_range", err: fmt.Errorf(`ent: validator failed for field "Offer.age_range": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := offer.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Offer.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := offer.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`ent: validator failed for field "Offer.experience_years": %w`, err)}
		}
	}
	return nil
}

func (_u *OfferUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(offer.Table, offer.Columns, sqlgraph.NewFieldSpec(offer.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(offer.FieldCompanyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompanyID(); ok {
		_spec.AddField(offer.FieldCompanyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(offer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(offer.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgeRange(); ok {
		_spec.SetField(offer.FieldAgeRange, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(offer.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(offer.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(offer.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(offer.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, offer.FieldSkills, value)
		})
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(offer.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(offer.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   offer.ApplicationsTable,
			Columns: []string{offer.ApplicationsColumn},
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
			Table:   offer.ApplicationsTable,
			Columns: []string{offer.ApplicationsColumn},
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
			Table:   offer.ApplicationsTable,
			Columns: []string{offer.ApplicationsColumn},
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
			err = &NotFoundError{offer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OfferUpdateOne is the builder for updating a single Offer entity.
type OfferUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OfferMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *OfferUpdateOne) SetCompanyID(v int) *OfferUpdateOne {
	_u.mutation.ResetCompanyID()
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableCompanyID(v *int) *OfferUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// AddCompanyID adds value to the "company_id" field.
func (_u *OfferUpdateOne) AddCompanyID(v int) *OfferUpdateOne {
	_u.mutation.AddCompanyID(v)
	return _u
}

// SetName sets the "name" field.
func (_u *OfferUpdateOne) SetName(v string) *OfferUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableName(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *OfferUpdateOne) SetCity(v string) *OfferUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableCity(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetAgeRange sets the "age_range" field.
func (_u *OfferUpdateOne) SetAgeRange(v string) *OfferUpdateOne {
	_u.mutation.SetAgeRange(v)
	return _u
}

// SetNillableAgeRange sets the "age_range" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableAgeRange(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetAgeRange(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *OfferUpdateOne) SetGender(v string) *OfferUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableGender(v *string) *OfferUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *OfferUpdateOne) SetExperienceYears(v int) *OfferUpdateOne {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableExperienceYears(v *int) *OfferUpdateOne {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *OfferUpdateOne) AddExperienceYears(v int) *OfferUpdateOne {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetSkills sets the "skills" field.
func (_u *OfferUpdateOne) SetSkills(v []string) *OfferUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *OfferUpdateOne) AppendSkills(v []string) *OfferUpdateOne {
	_u.mutation.AppendSkills(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *OfferUpdateOne) SetActive(v bool) *OfferUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *OfferUpdateOne) SetNillableActive(v *bool) *OfferUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OfferUpdateOne) SetUpdatedAt(v time.Time) *OfferUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddApplicationIDs adds the "applications" edge to the OfferApplication entity by IDs.
func (_u *OfferUpdateOne) AddApplicationIDs(ids ...int) *OfferUpdateOne {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the OfferApplication entity.
func (_u *OfferUpdateOne) AddApplications(v ...*OfferApplication) *OfferUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// Mutation returns the OfferMutation object of the builder.
func (_u *OfferUpdateOne) Mutation() *OfferMutation {
	return _u.mutation
}

// ClearApplications clears all "applications" edges to the OfferApplication entity.
func (_u *OfferUpdateOne) ClearApplications() *OfferUpdateOne {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to OfferApplication entities by IDs.
func (_u *OfferUpdateOne) RemoveApplicationIDs(ids ...int) *OfferUpdateOne {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to OfferApplication entities.
func (_u *OfferUpdateOne) RemoveApplications(v ...*OfferApplication) *OfferUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// Where appends a list predicates to the OfferUpdate builder.
func (_u *OfferUpdateOne) Where(ps ...predicate.Offer) *OfferUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OfferUpdateOne) Select(field string, fields ...string) *OfferUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Offer entity.
func (_u *OfferUpdateOne) Save(ctx context.Context) (*Offer, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OfferUpdateOne) SaveX(ctx context.Context) *Offer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OfferUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OfferUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OfferUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := offer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OfferUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := offer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Offer.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := offer.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Offer.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgeRange(); ok {
		if err := offer.AgeRangeValidator(v); err != nil {
			return &ValidationError{Name: "age_range", err: fmt.Errorf(`ent: validator failed for field "Offer.age_range": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := offer.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Offer.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := offer.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`ent: validator failed for field "Offer.experience_years": %w`, err)}
		}
	}
	return nil
}

func (_u *OfferUpdateOne) sqlSave(ctx context.Context) (_node *Offer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(offer.Table, offer.Columns, sqlgraph.NewFieldSpec(offer.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Offer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, offer.FieldID)
		for _, f := range fields {
			if !offer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != offer.FieldID {
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
		_spec.SetField(offer.FieldCompanyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompanyID(); ok {
		_spec.AddField(offer.FieldCompanyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(offer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(offer.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgeRange(); ok {
		_spec.SetField(offer.FieldAgeRange, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(offer.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(offer.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(offer.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(offer.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, offer.FieldSkills, value)
		})
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(offer.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(offer.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   offer.ApplicationsTable,
			Columns: []string{offer.ApplicationsColumn},
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
			Table:   offer.ApplicationsTable,
			Columns: []string{offer.ApplicationsColumn},
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
			Table:   offer.ApplicationsTable,
			Columns: []string{offer.ApplicationsColumn},
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
	_node = &Offer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{offer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
