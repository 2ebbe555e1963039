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
	"github.com/recluta/recluta-backend/gen/ent/offer"
	"github.com/recluta/recluta-backend/gen/ent/offerapplication"
	"github.com/recluta/recluta-backend/gen/ent/predicate"
)

// OfferApplicationUpdate is the builder for updating OfferApplication entities.
type OfferApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *OfferApplicationMutation
}

// Where appends a list predicates to the OfferApplicationUpdate builder.
func (_u *OfferApplicationUpdate) Where(ps ...predicate.OfferApplication) *OfferApplicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCvRecordID sets the "cv_record_id" field.
func (_u *OfferApplicationUpdate) SetCvRecordID(v int) *OfferApplicationUpdate {
	_u.mutation.SetCvRecordID(v)
	return _u
}

// SetNillableCvRecordID sets the "cv_record_id" field if the given value is not nil.
func (_u *OfferApplicationUpdate) SetNillableCvRecordID(v *int) *OfferApplicationUpdate {
	if v != nil {
		_u.SetCvRecordID(*v)
	}
	return _u
}

// SetOfferID sets the "offer_id" field.
func (_u *OfferApplicationUpdate) SetOfferID(v int) *OfferApplicationUpdate {
	_u.mutation.SetOfferID(v)
	return _u
}

// SetNillableOfferID sets the "offer_id" field if the given value is not nil.
func (_u *OfferApplicationUpdate) SetNillableOfferID(v *int) *OfferApplicationUpdate {
	if v != nil {
		_u.SetOfferID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OfferApplicationUpdate) SetStatus(v string) *OfferApplicationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OfferApplicationUpdate) SetNillableStatus(v *string) *OfferApplicationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAiResponse sets the "ai_response" field.
func (_u *OfferApplicationUpdate) SetAiResponse(v string) *OfferApplicationUpdate {
	_u.mutation.SetAiResponse(v)
	return _u
}

// SetNillableAiResponse sets the "ai_response" field if the given value is not nil.
func (_u *OfferApplicationUpdate) SetNillableAiResponse(v *string) *OfferApplicationUpdate {
	if v != nil {
		_u.SetAiResponse(*v)
	}
	return _u
}

// ClearAiResponse clears the value of the "ai_response" field.
func (_u *OfferApplicationUpdate) ClearAiResponse() *OfferApplicationUpdate {
	_u.mutation.ClearAiResponse()
	return _u
}

// SetResponseScore sets the "response_score" field.
func (_u *OfferApplicationUpdate) SetResponseScore(v float64) *OfferApplicationUpdate {
	_u.mutation.ResetResponseScore()
	_u.mutation.SetResponseScore(v)
	return _u
}

// SetNillableResponseScore sets the "response_score" field if the given value is not nil.
func (_u *OfferApplicationUpdate) SetNillableResponseScore(v *float64) *OfferApplicationUpdate {
	if v != nil {
		_u.SetResponseScore(*v)
	}
	return _u
}

// AddResponseScore adds value to the "response_score" field.
func (_u *OfferApplicationUpdate) AddResponseScore(v float64) *OfferApplicationUpdate {
	_u.mutation.AddResponseScore(v)
	return _u
}

// ClearResponseScore clears the value of the "response_score" field.
func (_u *OfferApplicationUpdate) ClearResponseScore() *OfferApplicationUpdate {
	_u.mutation.ClearResponseScore()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OfferApplicationUpdate) SetUpdatedAt(v time.Time) *OfferApplicationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCvRecord sets the "cv_record" edge to the CVRecord entity.
func (_u *OfferApplicationUpdate) SetCvRecord(v *CVRecord) *OfferApplicationUpdate {
	return _u.SetCvRecordID(v.ID)
}

// SetOffer sets the "offer" edge to the Offer entity.
func (_u *OfferApplicationUpdate) SetOffer(v *Offer) *OfferApplicationUpdate {
	return _u.SetOfferID(v.ID)
}

// Mutation returns the OfferApplicationMutation object of the builder.
func (_u *OfferApplicationUpdate) Mutation() *OfferApplicationMutation {
	return _u.mutation
}

// ClearCvRecord clears the "cv_record" edge to the CVRecord entity.
func (_u *OfferApplicationUpdate) ClearCvRecord() *OfferApplicationUpdate {
	_u.mutation.ClearCvRecord()
	return _u
}

// ClearOffer clears the "offer" edge to the Offer entity.
func (_u *OfferApplicationUpdate) ClearOffer() *OfferApplicationUpdate {
	_u.mutation.ClearOffer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OfferApplicationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OfferApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OfferApplicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OfferApplicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OfferApplicationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := offerapplication.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OfferApplicationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := offerapplication.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OfferApplication.status": %w`, err)}
		}
	}
	if _u.mutation.CvRecordCleared() && len(_u.mutation.CvRecordIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OfferApplication.cv_record"`)
	}
	if _u.mutation.OfferCleared() && len(_u.mutation.OfferIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OfferApplication.offer"`)
	}
	return nil
}

func (_u *OfferApplicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(offerapplication.Table, offerapplication.Columns, sqlgraph.NewFieldSpec(offerapplication.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(offerapplication.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiResponse(); ok {
		_spec.SetField(offerapplication.FieldAiResponse, field.TypeString, value)
	}
	if _u.mutation.AiResponseCleared() {
		_spec.ClearField(offerapplication.FieldAiResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseScore(); ok {
		_spec.SetField(offerapplication.FieldResponseScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseScore(); ok {
		_spec.AddField(offerapplication.FieldResponseScore, field.TypeFloat64, value)
	}
	if _u.mutation.ResponseScoreCleared() {
		_spec.ClearField(offerapplication.FieldResponseScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(offerapplication.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CvRecordCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CvRecordIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OfferCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OfferIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{offerapplication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OfferApplicationUpdateOne is the builder for updating a single OfferApplication entity.
type OfferApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OfferApplicationMutation
}

// SetCvRecordID sets the "cv_record_id" field.
func (_u *OfferApplicationUpdateOne) SetCvRecordID(v int) *OfferApplicationUpdateOne {
	_u.mutation.SetCvRecordID(v)
	return _u
}

// SetNillableCvRecordID sets the "cv_record_id" field if the given value is not nil.
func (_u *OfferApplicationUpdateOne) SetNillableCvRecordID(v *int) *OfferApplicationUpdateOne {
	if v != nil {
		_u.SetCvRecordID(*v)
	}
	return _u
}

// SetOfferID sets the "offer_id" field.
func (_u *OfferApplicationUpdateOne) SetOfferID(v int) *OfferApplicationUpdateOne {
	_u.mutation.SetOfferID(v)
	return _u
}

// SetNillableOfferID sets the "offer_id" field if the given value is not nil.
func (_u *OfferApplicationUpdateOne) SetNillableOfferID(v *int) *OfferApplicationUpdateOne {
	if v != nil {
		_u.SetOfferID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OfferApplicationUpdateOne) SetStatus(v string) *OfferApplicationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OfferApplicationUpdateOne) SetNillableStatus(v *string) *OfferApplicationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAiResponse sets the "ai_response" field.
func (_u *OfferApplicationUpdateOne) SetAiResponse(v string) *OfferApplicationUpdateOne {
	_u.mutation.SetAiResponse(v)
	return _u
}

// SetNillableAiResponse sets the "ai_response" field if the given value is not nil.
func (_u *OfferApplicationUpdateOne) SetNillableAiResponse(v *string) *OfferApplicationUpdateOne {
	if v != nil {
		_u.SetAiResponse(*v)
	}
	return _u
}

// ClearAiResponse clears the value of the "ai_response" field.
func (_u *OfferApplicationUpdateOne) ClearAiResponse() *OfferApplicationUpdateOne {
	_u.mutation.ClearAiResponse()
	return _u
}

// SetResponseScore sets the "response_score" field.
func (_u *OfferApplicationUpdateOne) SetResponseScore(v float64) *OfferApplicationUpdateOne {
	_u.mutation.ResetResponseScore()
	_u.mutation.SetResponseScore(v)
	return _u
}

// SetNillableResponseScore sets the "response_score" field if the given value is not nil.
func (_u *OfferApplicationUpdateOne) SetNillableResponseScore(v *float64) *OfferApplicationUpdateOne {
	if v != nil {
		_u.SetResponseScore(*v)
	}
	return _u
}

// AddResponseScore adds value to the "response_score" field.
func (_u *OfferApplicationUpdateOne) AddResponseScore(v float64) *OfferApplicationUpdateOne {
	_u.mutation.AddResponseScore(v)
	return _u
}

// ClearResponseScore clears the value of the "response_score" field.
func (_u *OfferApplicationUpdateOne) ClearResponseScore() *OfferApplicationUpdateOne {
	_u.mutation.ClearResponseScore()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OfferApplicationUpdateOne) SetUpdatedAt(v time.Time) *OfferApplicationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCvRecord sets the "cv_record" edge to the CVRecord entity.
func (_u *OfferApplicationUpdateOne) SetCvRecord(v *CVRecord) *OfferApplicationUpdateOne {
	return _u.SetCvRecordID(v.ID)
}

// SetOffer sets the "offer" edge to the Offer entity.
func (_u *OfferApplicationUpdateOne) SetOffer(v *Offer) *OfferApplicationUpdateOne {
	return _u.SetOfferID(v.ID)
}

// Mutation returns the OfferApplicationMutation object of the builder.
func (_u *OfferApplicationUpdateOne) Mutation() *OfferApplicationMutation {
	return _u.mutation
}

// ClearCvRecord clears the "cv_record" edge to the CVRecord entity.
func (_u *OfferApplicationUpdateOne) ClearCvRecord() *OfferApplicationUpdateOne {
	_u.mutation.ClearCvRecord()
	return _u
}

// ClearOffer clears the "offer" edge to the Offer entity.
func (_u *OfferApplicationUpdateOne) ClearOffer() *OfferApplicationUpdateOne {
	_u.mutation.ClearOffer()
	return _u
}

// Where appends a list predicates to the OfferApplicationUpdate builder.
func (_u *OfferApplicationUpdateOne) Where(ps ...predicate.OfferApplication) *OfferApplicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OfferApplicationUpdateOne) Select(field string, fields ...string) *OfferApplicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OfferApplication entity.
func (_u *OfferApplicationUpdateOne) Save(ctx context.Context) (*OfferApplication, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OfferApplicationUpdateOne) SaveX(ctx context.Context) *OfferApplication {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OfferApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OfferApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OfferApplicationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := offerapplication.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OfferApplicationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := offerapplication.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OfferApplication.status": %w`, err)}
		}
	}
	if _u.mutation.CvRecordCleared() && len(_u.mutation.CvRecordIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OfferApplication.cv_record"`)
	}
	if _u.mutation.OfferCleared() && len(_u.mutation.OfferIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OfferApplication.offer"`)
	}
	return nil
}

func (_u *OfferApplicationUpdateOne) sqlSave(ctx context.Context) (_node *OfferApplication, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(offerapplication.Table, offerapplication.Columns, sqlgraph.NewFieldSpec(offerapplication.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OfferApplication.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, offerapplication.FieldID)
		for _, f := range fields {
			if !offerapplication.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != offerapplication.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(offerapplication.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiResponse(); ok {
		_spec.SetField(offerapplication.FieldAiResponse, field.TypeString, value)
	}
	if _u.mutation.AiResponseCleared() {
		_spec.ClearField(offerapplication.FieldAiResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseScore(); ok {
		_spec.SetField(offerapplication.FieldResponseScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseScore(); ok {
		_spec.AddField(offerapplication.FieldResponseScore, field.TypeFloat64, value)
	}
	if _u.mutation.ResponseScoreCleared() {
		_spec.ClearField(offerapplication.FieldResponseScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(offerapplication.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CvRecordCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CvRecordIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OfferCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OfferIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OfferApplication{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{offerapplication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
