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
	"github.com/recluta/recluta-backend/gen/ent/offer"
	"github.com/recluta/recluta-backend/gen/ent/offerapplication"
)

// OfferApplicationCreate is the builder for creating a OfferApplication entity.
type OfferApplicationCreate struct {
	config
	mutation *OfferApplicationMutation
	hooks    []Hook
}

// SetCvRecordID sets the "cv_record_id" field.
func (_c *OfferApplicationCreate) SetCvRecordID(v int) *OfferApplicationCreate {
	_c.mutation.SetCvRecordID(v)
	return _c
}

// SetOfferID sets the "offer_id" field.
func (_c *OfferApplicationCreate) SetOfferID(v int) *OfferApplicationCreate {
	_c.mutation.SetOfferID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OfferApplicationCreate) SetStatus(v string) *OfferApplicationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OfferApplicationCreate) SetNillableStatus(v *string) *OfferApplicationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAiResponse sets the "ai_response" field.
func (_c *OfferApplicationCreate) SetAiResponse(v string) *OfferApplicationCreate {
	_c.mutation.SetAiResponse(v)
	return _c
}

// SetNillableAiResponse sets the "ai_response" field if the given value is not nil.
func (_c *OfferApplicationCreate) SetNillableAiResponse(v *string) *OfferApplicationCreate {
	if v != nil {
		_c.SetAiResponse(*v)
	}
	return _c
}

// SetResponseScore sets the "response_score" field.
func (_c *OfferApplicationCreate) SetResponseScore(v float64) *OfferApplicationCreate {
	_c.mutation.SetResponseScore(v)
	return _c
}

// SetNillableResponseScore sets the "response_score" field if the given value is not nil.
func (_c *OfferApplicationCreate) SetNillableResponseScore(v *float64) *OfferApplicationCreate {
	if v != nil {
		_c.SetResponseScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OfferApplicationCreate) SetCreatedAt(v time.Time) *OfferApplicationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OfferApplicationCreate) SetNillableCreatedAt(v *time.Time) *OfferApplicationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OfferApplicationCreate) SetUpdatedAt(v time.Time) *OfferApplicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OfferApplicationCreate) SetNillableUpdatedAt(v *time.Time) *OfferApplicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCvRecord sets the "cv_record" edge to the CVRecord entity.
func (_c *OfferApplicationCreate) SetCvRecord(v *CVRecord) *OfferApplicationCreate {
	return _c.SetCvRecordID(v.ID)
}

// SetOffer sets the "offer" edge to the Offer entity.
func (_c *OfferApplicationCreate) SetOffer(v *Offer) *OfferApplicationCreate {
	return _c.SetOfferID(v.ID)
}

// Mutation returns the OfferApplicationMutation object of the builder.
func (_c *OfferApplicationCreate) Mutation() *OfferApplicationMutation {
	return _c.mutation
}

// Save creates the OfferApplication in the database.
func (_c *OfferApplicationCreate) Save(ctx context.Context) (*OfferApplication, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OfferApplicationCreate) SaveX(ctx context.Context) *OfferApplication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OfferApplicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OfferApplicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OfferApplicationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := offerapplication.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := offerapplication.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := offerapplication.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OfferApplicationCreate) check() error {
	if _, ok := _c.mutation.CvRecordID(); !ok {
		return &ValidationError{Name: "cv_record_id", err: errors.New(`ent: missing required field "OfferApplication.cv_record_id"`)}
	}
	if _, ok := _c.mutation.OfferID(); !ok {
		return &ValidationError{Name: "offer_id", err: errors.New(`ent: missing required field "OfferApplication.offer_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "OfferApplication.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := offerapplication.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OfferApplication.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OfferApplication.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "OfferApplication.updated_at"`)}
	}
	if len(_c.mutation.CvRecordIDs()) == 0 {
		return &ValidationError{Name: "cv_record", err: errors.New(`ent: missing required edge "OfferApplication.cv_record"`)}
	}
	if len(_c.mutation.OfferIDs()) == 0 {
		return &ValidationError{Name: "offer", err: errors.New(`ent: missing required edge "OfferApplication.offer"`)}
	}
	return nil
}

func (_c *OfferApplicationCreate) sqlSave(ctx context.Context) (*OfferApplication, error) {
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

func (_c *OfferApplicationCreate) createSpec() (*OfferApplication, *sqlgraph.CreateSpec) {
	var (
		_node = &OfferApplication{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(offerapplication.Table, sqlgraph.NewFieldSpec(offerapplication.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(offerapplication.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AiResponse(); ok {
		_spec.SetField(offerapplication.FieldAiResponse, field.TypeString, value)
		_node.AiResponse = &value
	}
	if value, ok := _c.mutation.ResponseScore(); ok {
		_spec.SetField(offerapplication.FieldResponseScore, field.TypeFloat64, value)
		_node.ResponseScore = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(offerapplication.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(offerapplication.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CvRecordIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   offerapplication.CvRecordTable,
			Columns: []string{offerapplication.CvRecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cvrecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CvRecordID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OfferIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   offerapplication.OfferTable,
			Columns: []string{offerapplication.OfferColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(offer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OfferID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OfferApplicationCreateBulk is the builder for creating many OfferApplication entities in bulk.
type OfferApplicationCreateBulk struct {
	config
	err      error
	builders []*OfferApplicationCreate
}

// Save creates the OfferApplication entities in the database.
func (_c *OfferApplicationCreateBulk) Save(ctx context.Context) ([]*OfferApplication, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OfferApplication, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OfferApplicationMutation)
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
func (_c *OfferApplicationCreateBulk) SaveX(ctx context.Context) []*OfferApplication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OfferApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OfferApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
