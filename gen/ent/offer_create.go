// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recluta/recluta-backend/gen/ent/offer"
	"github.com/recluta/recluta-backend/gen/ent/offerapplication"
)

// OfferCreate is the builder for creating a Offer entity.
type OfferCreate struct {
	config
	mutation *OfferMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *OfferCreate) SetCompanyID(v int) *OfferCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *OfferCreate) SetName(v string) *OfferCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCity sets the "city" field.
func (_c *OfferCreate) SetCity(v string) *OfferCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetAgeRange sets the "age_range" field.
func (_c *OfferCreate) SetAgeRange(v string) *OfferCreate {
	_c.mutation.SetAgeRange(v)
	return _c
}

// SetGender sets the "gender" field.
func (_c *OfferCreate) SetGender(v string) *OfferCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetExperienceYears sets the "experience_years" field.
func (_c *OfferCreate) SetExperienceYears(v int) *OfferCreate {
	_c.mutation.SetExperienceYears(v)
	return _c
}

// SetSkills sets the "skills" field.
func (_c *OfferCreate) SetSkills(v []string) *OfferCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *OfferCreate) SetActive(v bool) *OfferCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *OfferCreate) SetNillableActive(v *bool) *OfferCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OfferCreate) SetCreatedAt(v time.Time) *OfferCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OfferCreate) SetNillableCreatedAt(v *time.Time) *OfferCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OfferCreate) SetUpdatedAt(v time.Time) *OfferCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OfferCreate) SetNillableUpdatedAt(v *time.Time) *OfferCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddApplicationIDs adds the "applications" edge to the OfferApplication entity by IDs.
func (_c *OfferCreate) AddApplicationIDs(ids ...int) *OfferCreate {
	_c.mutation.AddApplicationIDs(ids...)
	return _c
}

// AddApplications adds the "applications" edges to the OfferApplication entity.
func (_c *OfferCreate) AddApplications(v ...*OfferApplication) *OfferCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApplicationIDs(ids...)
}

// Mutation returns the OfferMutation object of the builder.
func (_c *OfferCreate) Mutation() *OfferMutation {
	return _c.mutation
}

// Save creates the Offer in the database.
func (_c *OfferCreate) Save(ctx context.Context) (*Offer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OfferCreate) SaveX(ctx context.Context) *Offer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OfferCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OfferCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OfferCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := offer.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := offer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := offer.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OfferCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Offer.company_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Offer.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := offer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Offer.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required field "Offer.city"`)}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := offer.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Offer.city": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgeRange(); !ok {
		return &ValidationError{Name: "age_range", err: errors.New(`ent: missing required field "Offer.age_range"`)}
	}
	if v, ok := _c.mutation.AgeRange(); ok {
		if err := offer.AgeRangeValidator(v); err != nil {
			return &ValidationError{Name: "age_range", err: fmt.Errorf(`ent: validator failed for field "Offer.age_range": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Gender(); !ok {
		return &ValidationError{Name: "gender", err: errors.New(`ent: missing required field "Offer.gender"`)}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := offer.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Offer.gender": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExperienceYears(); !ok {
		return &ValidationError{Name: "experience_years", err: errors.New(`ent: missing required field "Offer.experience_years"`)}
	}
	if v, ok := _c.mutation.ExperienceYears(); ok {
		if err := offer.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`ent: validator failed for field "Offer.experience_years": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skills(); !ok {
		return &ValidationError{Name: "skills", err: errors.New(`ent: missing required field "Offer.skills"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Offer.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Offer.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Offer.updated_at"`)}
	}
	return nil
}

func (_c *OfferCreate) sqlSave(ctx context.Context) (*Offer, error) {
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

func (_c *OfferCreate) createSpec() (*Offer, *sqlgraph.CreateSpec) {
	var (
		_node = &Offer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(offer.Table, sqlgraph.NewFieldSpec(offer.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(offer.FieldCompanyID, field.TypeInt, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(offer.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(offer.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.AgeRange(); ok {
		_spec.SetField(offer.FieldAgeRange, field.TypeString, value)
		_node.AgeRange = value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(offer.FieldGender, field.TypeString, value)
		_node.Gender = value
	}
	if value, ok := _c.mutation.ExperienceYears(); ok {
		_spec.SetField(offer.FieldExperienceYears, field.TypeInt, value)
		_node.ExperienceYears = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(offer.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(offer.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(offer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(offer.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ApplicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OfferCreateBulk is the builder for creating many Offer entities in bulk.
type OfferCreateBulk struct {
	config
	err      error
	builders []*OfferCreate
}

// Save creates the Offer entities in the database.
func (_c *OfferCreateBulk) Save(ctx context.Context) ([]*Offer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Offer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OfferMutation)
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
func (_c *OfferCreateBulk) SaveX(ctx context.Context) []*Offer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OfferCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OfferCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
