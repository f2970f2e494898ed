// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/techniq-app/techniq/ent/feedpost"
)

// FeedPostCreate is the builder for creating a FeedPost entity.
type FeedPostCreate struct {
	config
	mutation *FeedPostMutation
	hooks    []Hook
}

// SetPostID sets the "post_id" field.
func (_c *FeedPostCreate) SetPostID(v string) *FeedPostCreate {
	_c.mutation.SetPostID(v)
	return _c
}

// SetAuthor sets the "author" field.
func (_c *FeedPostCreate) SetAuthor(v string) *FeedPostCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *FeedPostCreate) SetKind(v string) *FeedPostCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *FeedPostCreate) SetBody(v string) *FeedPostCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetLikes sets the "likes" field.
func (_c *FeedPostCreate) SetLikes(v int) *FeedPostCreate {
	_c.mutation.SetLikes(v)
	return _c
}

// SetNillableLikes sets the "likes" field if the given value is not nil.
func (_c *FeedPostCreate) SetNillableLikes(v *int) *FeedPostCreate {
	if v != nil {
		_c.SetLikes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeedPostCreate) SetCreatedAt(v time.Time) *FeedPostCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeedPostCreate) SetNillableCreatedAt(v *time.Time) *FeedPostCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the FeedPostMutation object of the builder.
func (_c *FeedPostCreate) Mutation() *FeedPostMutation {
	return _c.mutation
}

// Save creates the FeedPost in the database.
func (_c *FeedPostCreate) Save(ctx context.Context) (*FeedPost, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedPostCreate) SaveX(ctx context.Context) *FeedPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedPostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedPostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedPostCreate) defaults() {
	if _, ok := _c.mutation.Likes(); !ok {
		v := feedpost.DefaultLikes
		_c.mutation.SetLikes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feedpost.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedPostCreate) check() error {
	if _, ok := _c.mutation.PostID(); !ok {
		return &ValidationError{Name: "post_id", err: errors.New(`ent: missing required field "FeedPost.post_id"`)}
	}
	if v, ok := _c.mutation.PostID(); ok {
		if err := feedpost.PostIDValidator(v); err != nil {
			return &ValidationError{Name: "post_id", err: fmt.Errorf(`ent: validator failed for field "FeedPost.post_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Author(); !ok {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required field "FeedPost.author"`)}
	}
	if v, ok := _c.mutation.Author(); ok {
		if err := feedpost.AuthorValidator(v); err != nil {
			return &ValidationError{Name: "author", err: fmt.Errorf(`ent: validator failed for field "FeedPost.author": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "FeedPost.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := feedpost.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "FeedPost.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "FeedPost.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := feedpost.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "FeedPost.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Likes(); !ok {
		return &ValidationError{Name: "likes", err: errors.New(`ent: missing required field "FeedPost.likes"`)}
	}
	if v, ok := _c.mutation.Likes(); ok {
		if err := feedpost.LikesValidator(v); err != nil {
			return &ValidationError{Name: "likes", err: fmt.Errorf(`ent: validator failed for field "FeedPost.likes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FeedPost.created_at"`)}
	}
	return nil
}

func (_c *FeedPostCreate) sqlSave(ctx context.Context) (*FeedPost, error) {
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

func (_c *FeedPostCreate) createSpec() (*FeedPost, *sqlgraph.CreateSpec) {
	var (
		_node = &FeedPost{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedpost.Table, sqlgraph.NewFieldSpec(feedpost.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PostID(); ok {
		_spec.SetField(feedpost.FieldPostID, field.TypeString, value)
		_node.PostID = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(feedpost.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(feedpost.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(feedpost.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Likes(); ok {
		_spec.SetField(feedpost.FieldLikes, field.TypeInt, value)
		_node.Likes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feedpost.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// FeedPostCreateBulk is the builder for creating many FeedPost entities in bulk.
type FeedPostCreateBulk struct {
	config
	err      error
	builders []*FeedPostCreate
}

// Save creates the FeedPost entities in the database.
func (_c *FeedPostCreateBulk) Save(ctx context.Context) ([]*FeedPost, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeedPost, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedPostMutation)
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
func (_c *FeedPostCreateBulk) SaveX(ctx context.Context) []*FeedPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedPostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedPostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
