// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recluta/recluta-backend/gen/ent/cvrecord"
	"github.com/recluta/recluta-backend/gen/ent/offerapplication"
)

// CVRecordCreate is the builder for creating a CVRecord entity.
type CVRecordCreate struct {
	config
	mutation *CVRecordMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *CVRecordCreate) SetCompanyID(v int) *CVRecordCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *CVRecordCreate) SetURL(v string) *CVRecordCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetExtension sets the "extension" field.
func (_c *CVRecordCreate) SetExtension(v string) *CVRecordCreate {
	_c.mutation.SetExtension(v)
	return _c
}

// SetCvText sets the "cv_text" field.
func (_c *CVRecordCreate) SetCvText(v string) *CVRecordCreate {
	_c.mutation.SetCvText(v)
	return _c
}

// SetNillableCvText sets the "cv_text" field if the given value is not nil.
func (_c *CVRecordCreate) SetNillableCvText(v *string) *CVRecordCreate {
	if v != nil {
		_c.SetCvText(*v)
	}
	return _c
}

// SetCandidateName sets the "candidate_name" field.
func (_c *CVRecordCreate) SetCandidateName(v string) *CVRecordCreate {
	_c.mutation.SetCandidateName(v)
	return _c
}

// SetNillableCandidateName sets the "candidate_name" field if the given value is not nil.
func (_c *CVRecordCreate) SetNillableCandidateName(v *string) *CVRecordCreate {
	if v != nil {
		_c.SetCandidateName(*v)
	}
	return _c
}

// SetCandidateDni sets the "candidate_dni" field.
func (_c *CVRecordCreate) SetCandidateDni(v string) *CVRecordCreate {
	_c.mutation.SetCandidateDni(v)
	return _c
}

// SetNillableCandidateDni sets the "candidate_dni" field if the given value is not nil.
func (_c *CVRecordCreate) SetNillableCandidateDni(v *string) *CVRecordCreate {
	if v != nil {
		_c.SetCandidateDni(*v)
	}
	return _c
}

// SetCandidateDniType sets the "candidate_dni_type" field.
func (_c *CVRecordCreate) SetCandidateDniType(v string) *CVRecordCreate {
	_c.mutation.SetCandidateDniType(v)
	return _c
}

// SetNillableCandidateDniType sets the "candidate_dni_type" field if the given value is not nil.
func (_c *CVRecordCreate) SetNillableCandidateDniType(v *string) *CVRecordCreate {
	if v != nil {
		_c.SetCandidateDniType(*v)
	}
	return _c
}

// SetCandidateCity sets the "candidate_city" field.
func (_c *CVRecordCreate) SetCandidateCity(v string) *CVRecordCreate {
	_c.mutation.SetCandidateCity(v)
	return _c
}

// SetNillableCandidateCity sets the "candidate_city" field if the given value is not nil.
func (_c *CVRecordCreate) SetNillableCandidateCity(v *string) *CVRecordCreate {
	if v != nil {
		_c.SetCandidateCity(*v)
	}
	return _c
}

// SetCandidatePhone sets the "candidate_phone" field.
func (_c *CVRecordCreate) SetCandidatePhone(v string) *CVRecordCreate {
	_c.mutation.SetCandidatePhone(v)
	return _c
}

// SetNillableCandidatePhone sets the "candidate_phone" field if the given value is not nil.
func (_c *CVRecordCreate) SetNillableCandidatePhone(v *string) *CVRecordCreate {
	if v != nil {
		_c.SetCandidatePhone(*v)
	}
	return _c
}

// SetCandidateMail sets the "candidate_mail" field.
func (_c *CVRecordCreate) SetCandidateMail(v string) *CVRecordCreate {
	_c.mutation.SetCandidateMail(v)
	return _c
}

// SetNillableCandidateMail sets the "candidate_mail" field if the given value is not nil.
func (_c *CVRecordCreate) SetNillableCandidateMail(v *string) *CVRecordCreate {
	if v != nil {
		_c.SetCandidateMail(*v)
	}
	return _c
}

// SetBackgroundCheck sets the "background_check" field.
func (_c *CVRecordCreate) SetBackgroundCheck(v string) *CVRecordCreate {
	_c.mutation.SetBackgroundCheck(v)
	return _c
}

// SetNillableBackgroundCheck sets the "background_check" field if the given value is not nil.
func (_c *CVRecordCreate) SetNillableBackgroundCheck(v *string) *CVRecordCreate {
	if v != nil {
		_c.SetBackgroundCheck(*v)
	}
	return _c
}

// SetBackgroundDate sets the "background_date" field.
func (_c *CVRecordCreate) SetBackgroundDate(v time.Time) *CVRecordCreate {
	_c.mutation.SetBackgroundDate(v)
	return _c
}

// SetNillableBackgroundDate sets the "background_date" field if the given value is not nil.
func (_c *CVRecordCreate) SetNillableBackgroundDate(v *time.Time) *CVRecordCreate {
	if v != nil {
		_c.SetBackgroundDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CVRecordCreate) SetCreatedAt(v time.Time) *CVRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CVRecordCreate) SetNillableCreatedAt(v *time.Time) *CVRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CVRecordCreate) SetUpdatedAt(v time.Time) *CVRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CVRecordCreate) SetNillableUpdatedAt(v *time.Time) *CVRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddApplicationIDs adds the "applications" edge to the OfferApplication entity by IDs.
func (_c *CVRecordCreate) AddApplicationIDs(ids ...int) *CVRecordCreate {
	_c.mutation.AddApplicationIDs(ids...)
	return _c
}

// AddApplications adds the "applications" edges to the OfferApplication entity.
func (_c *CVRecordCreate) AddApplications(v ...*OfferApplication) *CVRecordCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApplicationIDs(ids...)
}

// Mutation returns the CVRecordMutation object of the builder.
func (_c *CVRecordCreate) Mutation() *CVRecordMutation {
	return _c.mutation
}

// Save creates the CVRecord in the database.
func (_c *CVRecordCreate) Save(ctx context.Context) (*CVRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CVRecordCreate) SaveX(ctx context.Context) *CVRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CVRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CVRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CVRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cvrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cvrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CVRecordCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "CVRecord.company_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "CVRecord.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := cvrecord.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "CVRecord.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Extension(); !ok {
		return &ValidationError{Name: "extension", err: errors.New(`ent: missing required field "CVRecord.extension"`)}
	}
	if v, ok := _c.mutation.Extension(); ok {
		if err := cvrecord.ExtensionValidator(v); err != nil {
			return &ValidationError{Name: "extension", err: fmt.Errorf(`ent: validator failed for field "CVRecord.extension": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CVRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CVRecord.updated_at"`)}
	}
	return nil
}

func (_c *CVRecordCreate) sqlSave(ctx context.Context) (*CVRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CVRecordCreate) createSpec() (*CVRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &CVRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cvrecord.Table, sqlgraph.NewFieldSpec(cvrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(cvrecord.FieldCompanyID, field.TypeInt, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(cvrecord.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Extension(); ok {
		_spec.SetField(cvrecord.FieldExtension, field.TypeString, value)
		_node.Extension = value
	}
	if value, ok := _c.mutation.CvText(); ok {
		_spec.SetField(cvrecord.FieldCvText, field.TypeString, value)
		_node.CvText = &value
	}
	if value, ok := _c.mutation.CandidateName(); ok {
		_spec.SetField(cvrecord.FieldCandidateName, field.TypeString, value)
		_node.CandidateName = &value
	}
	if value, ok := _c.mutation.CandidateDni(); ok {
		_spec.SetField(cvrecord.FieldCandidateDni, field.TypeString, value)
		_node.CandidateDni = &value
	}
	if value, ok := _c.mutation.CandidateDniType(); ok {
		_spec.SetField(cvrecord.FieldCandidateDniType, field.TypeString, value)
		_node.CandidateDniType = &value
	}
	if value, ok := _c.mutation.CandidateCity(); ok {
		_spec.SetField(cvrecord.FieldCandidateCity, field.TypeString, value)
		_node.CandidateCity = &value
	}
	if value, ok := _c.mutation.CandidatePhone(); ok {
		_spec.SetField(cvrecord.FieldCandidatePhone, field.TypeString, value)
		_node.CandidatePhone = &value
	}
	if value, ok := _c.mutation.CandidateMail(); ok {
		_spec.SetField(cvrecord.FieldCandidateMail, field.TypeString, value)
		_node.CandidateMail = &value
	}
	if value, ok := _c.mutation.BackgroundCheck(); ok {
		_spec.SetField(cvrecord.FieldBackgroundCheck, field.TypeString, value)
		_node.BackgroundCheck = &value
	}
	if value, ok := _c.mutation.BackgroundDate(); ok {
		_spec.SetField(cvrecord.FieldBackgroundDate, field.TypeTime, value)
		_node.BackgroundDate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cvrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cvrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ApplicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CVRecordCreateBulk is the builder for creating many CVRecord entities in bulk.
type CVRecordCreateBulk struct {
	config
	err      error
	builders []*CVRecordCreate
}

// Save creates the CVRecord entities in the database.
func (_c *CVRecordCreateBulk) Save(ctx context.Context) ([]*CVRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CVRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CVRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CVRecordCreateBulk) SaveX(ctx context.Context) []*CVRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CVRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CVRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
