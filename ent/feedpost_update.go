// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/techniq-app/techniq/ent/feedpost"
	"github.com/techniq-app/techniq/ent/predicate"
)

// FeedPostUpdate is the builder for updating FeedPost entities.
type FeedPostUpdate struct {
	config
	hooks    []Hook
	mutation *FeedPostMutation
}

// Where appends a list predicates to the FeedPostUpdate builder.
func (_u *FeedPostUpdate) Where(ps ...predicate.FeedPost) *FeedPostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPostID sets the "post_id" field.
func (_u *FeedPostUpdate) SetPostID(v string) *FeedPostUpdate {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *FeedPostUpdate) SetNillablePostID(v *string) *FeedPostUpdate {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *FeedPostUpdate) SetAuthor(v string) *FeedPostUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *FeedPostUpdate) SetNillableAuthor(v *string) *FeedPostUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *FeedPostUpdate) SetKind(v string) *FeedPostUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *FeedPostUpdate) SetNillableKind(v *string) *FeedPostUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *FeedPostUpdate) SetBody(v string) *FeedPostUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *FeedPostUpdate) SetNillableBody(v *string) *FeedPostUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetLikes sets the "likes" field.
func (_u *FeedPostUpdate) SetLikes(v int) *FeedPostUpdate {
	_u.mutation.ResetLikes()
	_u.mutation.SetLikes(v)
	return _u
}

// SetNillableLikes sets the "likes" field if the given value is not nil.
func (_u *FeedPostUpdate) SetNillableLikes(v *int) *FeedPostUpdate {
	if v != nil {
		_u.SetLikes(*v)
	}
	return _u
}

// AddLikes adds value to the "likes" field.
func (_u *FeedPostUpdate) AddLikes(v int) *FeedPostUpdate {
	_u.mutation.AddLikes(v)
	return _u
}

// Mutation returns the FeedPostMutation object of the builder.
func (_u *FeedPostUpdate) Mutation() *FeedPostMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedPostUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedPostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedPostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedPostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedPostUpdate) check() error {
	if v, ok := _u.mutation.PostID(); ok {
		if err := feedpost.PostIDValidator(v); err != nil {
			return &ValidationError{Name: "post_id", err: fmt.Errorf(`ent: validator failed for field "FeedPost.post_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Author(); ok {
		if err := feedpost.AuthorValidator(v); err != nil {
			return &ValidationError{Name: "author", err: fmt.Errorf(`ent: validator failed for field "FeedPost.author": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := feedpost.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "FeedPost.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := feedpost.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "FeedPost.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Likes(); ok {
		if err := feedpost.LikesValidator(v); err != nil {
			return &ValidationError{Name: "likes", err: fmt.Errorf(`ent: validator failed for field "FeedPost.likes": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedPostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedpost.Table, feedpost.Columns, sqlgraph.NewFieldSpec(feedpost.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PostID(); ok {
		_spec.SetField(feedpost.FieldPostID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(feedpost.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(feedpost.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(feedpost.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Likes(); ok {
		_spec.SetField(feedpost.FieldLikes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLikes(); ok {
		_spec.AddField(feedpost.FieldLikes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedPostUpdateOne is the builder for updating a single FeedPost entity.
type FeedPostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedPostMutation
}

// SetPostID sets the "post_id" field.
func (_u *FeedPostUpdateOne) SetPostID(v string) *FeedPostUpdateOne {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *FeedPostUpdateOne) SetNillablePostID(v *string) *FeedPostUpdateOne {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *FeedPostUpdateOne) SetAuthor(v string) *FeedPostUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *FeedPostUpdateOne) SetNillableAuthor(v *string) *FeedPostUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *FeedPostUpdateOne) SetKind(v string) *FeedPostUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *FeedPostUpdateOne) SetNillableKind(v *string) *FeedPostUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *FeedPostUpdateOne) SetBody(v string) *FeedPostUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *FeedPostUpdateOne) SetNillableBody(v *string) *FeedPostUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetLikes sets the "likes" field.
func (_u *FeedPostUpdateOne) SetLikes(v int) *FeedPostUpdateOne {
	_u.mutation.ResetLikes()
	_u.mutation.SetLikes(v)
	return _u
}

// SetNillableLikes sets the "likes" field if the given value is not nil.
func (_u *FeedPostUpdateOne) SetNillableLikes(v *int) *FeedPostUpdateOne {
	if v != nil {
		_u.SetLikes(*v)
	}
	return _u
}

// AddLikes adds value to the "likes" field.
func (_u *FeedPostUpdateOne) AddLikes(v int) *FeedPostUpdateOne {
	_u.mutation.AddLikes(v)
	return _u
}

// Mutation returns the FeedPostMutation object of the builder.
func (_u *FeedPostUpdateOne) Mutation() *FeedPostMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedPostUpdate builder.
func (_u *FeedPostUpdateOne) Where(ps ...predicate.FeedPost) *FeedPostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedPostUpdateOne) Select(field string, fields ...string) *FeedPostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedPost entity.
func (_u *FeedPostUpdateOne) Save(ctx context.Context) (*FeedPost, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedPostUpdateOne) SaveX(ctx context.Context) *FeedPost {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedPostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedPostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedPostUpdateOne) check() error {
	if v, ok := _u.mutation.PostID(); ok {
		if err := feedpost.PostIDValidator(v); err != nil {
			return &ValidationError{Name: "post_id", err: fmt.Errorf(`ent: validator failed for field "FeedPost.post_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Author(); ok {
		if err := feedpost.AuthorValidator(v); err != nil {
			return &ValidationError{Name: "author", err: fmt.Errorf(`ent: validator failed for field "FeedPost.author": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := feedpost.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "FeedPost.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := feedpost.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "FeedPost.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Likes(); ok {
		if err := feedpost.LikesValidator(v); err != nil {
			return &ValidationError{Name: "likes", err: fmt.Errorf(`ent: validator failed for field "FeedPost.likes": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedPostUpdateOne) sqlSave(ctx context.Context) (_node *FeedPost, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedpost.Table, feedpost.Columns, sqlgraph.NewFieldSpec(feedpost.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedPost.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedpost.FieldID)
		for _, f := range fields {
			if !feedpost.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedpost.FieldID {
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
	if value, ok := _u.mutation.PostID(); ok {
		_spec.SetField(feedpost.FieldPostID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(feedpost.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(feedpost.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(feedpost.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Likes(); ok {
		_spec.SetField(feedpost.FieldLikes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLikes(); ok {
		_spec.AddField(feedpost.FieldLikes, field.TypeInt, value)
	}
	_node = &FeedPost{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
