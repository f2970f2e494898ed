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
	"github.com/techniq-app/techniq/ent/coinevent"
	"github.com/techniq-app/techniq/ent/drillevent"
	"github.com/techniq-app/techniq/ent/feedpost"
	"github.com/techniq-app/techniq/ent/llmrequestevent"
	"github.com/techniq-app/techniq/ent/playerstate"
	"github.com/techniq-app/techniq/ent/predicate"
	"github.com/techniq-app/techniq/ent/schema"
	"github.com/techniq-app/techniq/ent/sessionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCoinEvent       = "CoinEvent"
	TypeDrillEvent      = "DrillEvent"
	TypeFeedPost        = "FeedPost"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypePlayerState     = "PlayerState"
	TypeSessionEvent    = "SessionEvent"
)

// CoinEventMutation represents an operation that mutates the CoinEvent nodes in the graph.
type CoinEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	amount           *int64
	addamount        *int64
	direction        *string
	reason           *string
	balance_after    *int64
	addbalance_after *int64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*CoinEvent, error)
	predicates       []predicate.CoinEvent
}

var _ ent.Mutation = (*CoinEventMutation)(nil)

// coineventOption allows management of the mutation configuration using functional options.
type coineventOption func(*CoinEventMutation)

// newCoinEventMutation creates new mutation for the CoinEvent entity.
func newCoinEventMutation(c config, op Op, opts ...coineventOption) *CoinEventMutation {
	m := &CoinEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCoinEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCoinEventID sets the ID field of the mutation.
func withCoinEventID(id int) coineventOption {
	return func(m *CoinEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CoinEvent
		)
		m.oldValue = func(ctx context.Context) (*CoinEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CoinEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCoinEvent sets the old CoinEvent of the mutation.
func withCoinEvent(node *CoinEvent) coineventOption {
	return func(m *CoinEventMutation) {
		m.oldValue = func(context.Context) (*CoinEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CoinEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CoinEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CoinEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CoinEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CoinEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *CoinEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *CoinEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the CoinEvent entity.
// If the CoinEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoinEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *CoinEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *CoinEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *CoinEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *CoinEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *CoinEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the CoinEvent entity.
// If the CoinEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoinEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *CoinEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAmount sets the "amount" field.
func (m *CoinEventMutation) SetAmount(i int64) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *CoinEventMutation) Amount() (r int64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the CoinEvent entity.
// If the CoinEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoinEventMutation) OldAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *CoinEventMutation) AddAmount(i int64) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *CoinEventMutation) AddedAmount() (r int64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *CoinEventMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetDirection sets the "direction" field.
func (m *CoinEventMutation) SetDirection(s string) {
	m.direction = &s
}

// Direction returns the value of the "direction" field in the mutation.
func (m *CoinEventMutation) Direction() (r string, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the CoinEvent entity.
// If the CoinEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoinEventMutation) OldDirection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *CoinEventMutation) ResetDirection() {
	m.direction = nil
}

// SetReason sets the "reason" field.
func (m *CoinEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *CoinEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the CoinEvent entity.
// If the CoinEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoinEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *CoinEventMutation) ResetReason() {
	m.reason = nil
}

// SetBalanceAfter sets the "balance_after" field.
func (m *CoinEventMutation) SetBalanceAfter(i int64) {
	m.balance_after = &i
	m.addbalance_after = nil
}

// BalanceAfter returns the value of the "balance_after" field in the mutation.
func (m *CoinEventMutation) BalanceAfter() (r int64, exists bool) {
	v := m.balance_after
	if v == nil {
		return
	}
	return *v, true
}

// OldBalanceAfter returns the old "balance_after" field's value of the CoinEvent entity.
// If the CoinEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoinEventMutation) OldBalanceAfter(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalanceAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalanceAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalanceAfter: %w", err)
	}
	return oldValue.BalanceAfter, nil
}

// AddBalanceAfter adds i to the "balance_after" field.
func (m *CoinEventMutation) AddBalanceAfter(i int64) {
	if m.addbalance_after != nil {
		*m.addbalance_after += i
	} else {
		m.addbalance_after = &i
	}
}

// AddedBalanceAfter returns the value that was added to the "balance_after" field in this mutation.
func (m *CoinEventMutation) AddedBalanceAfter() (r int64, exists bool) {
	v := m.addbalance_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalanceAfter resets all changes to the "balance_after" field.
func (m *CoinEventMutation) ResetBalanceAfter() {
	m.balance_after = nil
	m.addbalance_after = nil
}

// Where appends a list predicates to the CoinEventMutation builder.
func (m *CoinEventMutation) Where(ps ...predicate.CoinEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CoinEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CoinEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CoinEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CoinEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CoinEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CoinEvent).
func (m *CoinEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CoinEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, coinevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, coinevent.FieldTimestamp)
	}
	if m.amount != nil {
		fields = append(fields, coinevent.FieldAmount)
	}
	if m.direction != nil {
		fields = append(fields, coinevent.FieldDirection)
	}
	if m.reason != nil {
		fields = append(fields, coinevent.FieldReason)
	}
	if m.balance_after != nil {
		fields = append(fields, coinevent.FieldBalanceAfter)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CoinEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case coinevent.FieldSequence:
		return m.Sequence()
	case coinevent.FieldTimestamp:
		return m.Timestamp()
	case coinevent.FieldAmount:
		return m.Amount()
	case coinevent.FieldDirection:
		return m.Direction()
	case coinevent.FieldReason:
		return m.Reason()
	case coinevent.FieldBalanceAfter:
		return m.BalanceAfter()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CoinEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case coinevent.FieldSequence:
		return m.OldSequence(ctx)
	case coinevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case coinevent.FieldAmount:
		return m.OldAmount(ctx)
	case coinevent.FieldDirection:
		return m.OldDirection(ctx)
	case coinevent.FieldReason:
		return m.OldReason(ctx)
	case coinevent.FieldBalanceAfter:
		return m.OldBalanceAfter(ctx)
	}
	return nil, fmt.Errorf("unknown CoinEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoinEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case coinevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case coinevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case coinevent.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case coinevent.FieldDirection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case coinevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case coinevent.FieldBalanceAfter:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalanceAfter(v)
		return nil
	}
	return fmt.Errorf("unknown CoinEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CoinEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, coinevent.FieldSequence)
	}
	if m.addamount != nil {
		fields = append(fields, coinevent.FieldAmount)
	}
	if m.addbalance_after != nil {
		fields = append(fields, coinevent.FieldBalanceAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CoinEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case coinevent.FieldSequence:
		return m.AddedSequence()
	case coinevent.FieldAmount:
		return m.AddedAmount()
	case coinevent.FieldBalanceAfter:
		return m.AddedBalanceAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoinEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case coinevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case coinevent.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case coinevent.FieldBalanceAfter:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalanceAfter(v)
		return nil
	}
	return fmt.Errorf("unknown CoinEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CoinEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CoinEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CoinEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CoinEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CoinEventMutation) ResetField(name string) error {
	switch name {
	case coinevent.FieldSequence:
		m.ResetSequence()
		return nil
	case coinevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case coinevent.FieldAmount:
		m.ResetAmount()
		return nil
	case coinevent.FieldDirection:
		m.ResetDirection()
		return nil
	case coinevent.FieldReason:
		m.ResetReason()
		return nil
	case coinevent.FieldBalanceAfter:
		m.ResetBalanceAfter()
		return nil
	}
	return fmt.Errorf("unknown CoinEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CoinEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CoinEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CoinEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CoinEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CoinEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CoinEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CoinEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CoinEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CoinEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CoinEvent edge %s", name)
}

// DrillEventMutation represents an operation that mutates the DrillEvent nodes in the graph.
type DrillEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	name             *string
	skill_type       *string
	position         *string
	difficulty       *int
	adddifficulty    *int
	duration_mins    *int
	addduration_mins *int
	source           *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*DrillEvent, error)
	predicates       []predicate.DrillEvent
}

var _ ent.Mutation = (*DrillEventMutation)(nil)

// drilleventOption allows management of the mutation configuration using functional options.
type drilleventOption func(*DrillEventMutation)

// newDrillEventMutation creates new mutation for the DrillEvent entity.
func newDrillEventMutation(c config, op Op, opts ...drilleventOption) *DrillEventMutation {
	m := &DrillEventMutation{
		config:        c,
		op:            op,
		typ:           TypeDrillEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDrillEventID sets the ID field of the mutation.
func withDrillEventID(id int) drilleventOption {
	return func(m *DrillEventMutation) {
		var (
			err   error
			once  sync.Once
			value *DrillEvent
		)
		m.oldValue = func(ctx context.Context) (*DrillEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DrillEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDrillEvent sets the old DrillEvent of the mutation.
func withDrillEvent(node *DrillEvent) drilleventOption {
	return func(m *DrillEventMutation) {
		m.oldValue = func(context.Context) (*DrillEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DrillEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DrillEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DrillEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DrillEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DrillEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *DrillEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *DrillEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *DrillEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *DrillEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *DrillEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *DrillEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *DrillEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *DrillEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetName sets the "name" field.
func (m *DrillEventMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DrillEventMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *DrillEventMutation) ResetName() {
	m.name = nil
}

// SetSkillType sets the "skill_type" field.
func (m *DrillEventMutation) SetSkillType(s string) {
	m.skill_type = &s
}

// SkillType returns the value of the "skill_type" field in the mutation.
func (m *DrillEventMutation) SkillType() (r string, exists bool) {
	v := m.skill_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillType returns the old "skill_type" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldSkillType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillType: %w", err)
	}
	return oldValue.SkillType, nil
}

// ResetSkillType resets all changes to the "skill_type" field.
func (m *DrillEventMutation) ResetSkillType() {
	m.skill_type = nil
}

// SetPosition sets the "position" field.
func (m *DrillEventMutation) SetPosition(s string) {
	m.position = &s
}

// Position returns the value of the "position" field in the mutation.
func (m *DrillEventMutation) Position() (r string, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldPosition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// ResetPosition resets all changes to the "position" field.
func (m *DrillEventMutation) ResetPosition() {
	m.position = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *DrillEventMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *DrillEventMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *DrillEventMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *DrillEventMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *DrillEventMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetDurationMins sets the "duration_mins" field.
func (m *DrillEventMutation) SetDurationMins(i int) {
	m.duration_mins = &i
	m.addduration_mins = nil
}

// DurationMins returns the value of the "duration_mins" field in the mutation.
func (m *DrillEventMutation) DurationMins() (r int, exists bool) {
	v := m.duration_mins
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMins returns the old "duration_mins" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldDurationMins(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMins is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMins requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMins: %w", err)
	}
	return oldValue.DurationMins, nil
}

// AddDurationMins adds i to the "duration_mins" field.
func (m *DrillEventMutation) AddDurationMins(i int) {
	if m.addduration_mins != nil {
		*m.addduration_mins += i
	} else {
		m.addduration_mins = &i
	}
}

// AddedDurationMins returns the value that was added to the "duration_mins" field in this mutation.
func (m *DrillEventMutation) AddedDurationMins() (r int, exists bool) {
	v := m.addduration_mins
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMins resets all changes to the "duration_mins" field.
func (m *DrillEventMutation) ResetDurationMins() {
	m.duration_mins = nil
	m.addduration_mins = nil
}

// SetSource sets the "source" field.
func (m *DrillEventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *DrillEventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the DrillEvent entity.
// If the DrillEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrillEventMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *DrillEventMutation) ResetSource() {
	m.source = nil
}

// Where appends a list predicates to the DrillEventMutation builder.
func (m *DrillEventMutation) Where(ps ...predicate.DrillEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DrillEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DrillEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DrillEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DrillEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DrillEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DrillEvent).
func (m *DrillEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DrillEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, drillevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, drillevent.FieldTimestamp)
	}
	if m.name != nil {
		fields = append(fields, drillevent.FieldName)
	}
	if m.skill_type != nil {
		fields = append(fields, drillevent.FieldSkillType)
	}
	if m.position != nil {
		fields = append(fields, drillevent.FieldPosition)
	}
	if m.difficulty != nil {
		fields = append(fields, drillevent.FieldDifficulty)
	}
	if m.duration_mins != nil {
		fields = append(fields, drillevent.FieldDurationMins)
	}
	if m.source != nil {
		fields = append(fields, drillevent.FieldSource)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DrillEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case drillevent.FieldSequence:
		return m.Sequence()
	case drillevent.FieldTimestamp:
		return m.Timestamp()
	case drillevent.FieldName:
		return m.Name()
	case drillevent.FieldSkillType:
		return m.SkillType()
	case drillevent.FieldPosition:
		return m.Position()
	case drillevent.FieldDifficulty:
		return m.Difficulty()
	case drillevent.FieldDurationMins:
		return m.DurationMins()
	case drillevent.FieldSource:
		return m.Source()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DrillEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case drillevent.FieldSequence:
		return m.OldSequence(ctx)
	case drillevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case drillevent.FieldName:
		return m.OldName(ctx)
	case drillevent.FieldSkillType:
		return m.OldSkillType(ctx)
	case drillevent.FieldPosition:
		return m.OldPosition(ctx)
	case drillevent.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case drillevent.FieldDurationMins:
		return m.OldDurationMins(ctx)
	case drillevent.FieldSource:
		return m.OldSource(ctx)
	}
	return nil, fmt.Errorf("unknown DrillEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DrillEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case drillevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case drillevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case drillevent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case drillevent.FieldSkillType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillType(v)
		return nil
	case drillevent.FieldPosition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case drillevent.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case drillevent.FieldDurationMins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMins(v)
		return nil
	case drillevent.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	}
	return fmt.Errorf("unknown DrillEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DrillEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, drillevent.FieldSequence)
	}
	if m.adddifficulty != nil {
		fields = append(fields, drillevent.FieldDifficulty)
	}
	if m.addduration_mins != nil {
		fields = append(fields, drillevent.FieldDurationMins)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DrillEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case drillevent.FieldSequence:
		return m.AddedSequence()
	case drillevent.FieldDifficulty:
		return m.AddedDifficulty()
	case drillevent.FieldDurationMins:
		return m.AddedDurationMins()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DrillEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case drillevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case drillevent.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case drillevent.FieldDurationMins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMins(v)
		return nil
	}
	return fmt.Errorf("unknown DrillEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DrillEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DrillEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DrillEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DrillEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DrillEventMutation) ResetField(name string) error {
	switch name {
	case drillevent.FieldSequence:
		m.ResetSequence()
		return nil
	case drillevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case drillevent.FieldName:
		m.ResetName()
		return nil
	case drillevent.FieldSkillType:
		m.ResetSkillType()
		return nil
	case drillevent.FieldPosition:
		m.ResetPosition()
		return nil
	case drillevent.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case drillevent.FieldDurationMins:
		m.ResetDurationMins()
		return nil
	case drillevent.FieldSource:
		m.ResetSource()
		return nil
	}
	return fmt.Errorf("unknown DrillEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DrillEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DrillEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DrillEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DrillEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DrillEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DrillEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DrillEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DrillEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DrillEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DrillEvent edge %s", name)
}

// FeedPostMutation represents an operation that mutates the FeedPost nodes in the graph.
type FeedPostMutation struct {
	config
	op            Op
	typ           string
	id            *int
	post_id       *string
	author        *string
	kind          *string
	body          *string
	likes         *int
	addlikes      *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FeedPost, error)
	predicates    []predicate.FeedPost
}

var _ ent.Mutation = (*FeedPostMutation)(nil)

// feedpostOption allows management of the mutation configuration using functional options.
type feedpostOption func(*FeedPostMutation)

// newFeedPostMutation creates new mutation for the FeedPost entity.
func newFeedPostMutation(c config, op Op, opts ...feedpostOption) *FeedPostMutation {
	m := &FeedPostMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedPost,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedPostID sets the ID field of the mutation.
func withFeedPostID(id int) feedpostOption {
	return func(m *FeedPostMutation) {
		var (
			err   error
			once  sync.Once
			value *FeedPost
		)
		m.oldValue = func(ctx context.Context) (*FeedPost, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeedPost.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedPost sets the old FeedPost of the mutation.
func withFeedPost(node *FeedPost) feedpostOption {
	return func(m *FeedPostMutation) {
		m.oldValue = func(context.Context) (*FeedPost, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedPostMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedPostMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedPostMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedPostMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeedPost.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPostID sets the "post_id" field.
func (m *FeedPostMutation) SetPostID(s string) {
	m.post_id = &s
}

// PostID returns the value of the "post_id" field in the mutation.
func (m *FeedPostMutation) PostID() (r string, exists bool) {
	v := m.post_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPostID returns the old "post_id" field's value of the FeedPost entity.
// If the FeedPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedPostMutation) OldPostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostID: %w", err)
	}
	return oldValue.PostID, nil
}

// ResetPostID resets all changes to the "post_id" field.
func (m *FeedPostMutation) ResetPostID() {
	m.post_id = nil
}

// SetAuthor sets the "author" field.
func (m *FeedPostMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *FeedPostMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the FeedPost entity.
// If the FeedPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedPostMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ResetAuthor resets all changes to the "author" field.
func (m *FeedPostMutation) ResetAuthor() {
	m.author = nil
}

// SetKind sets the "kind" field.
func (m *FeedPostMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *FeedPostMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the FeedPost entity.
// If the FeedPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedPostMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *FeedPostMutation) ResetKind() {
	m.kind = nil
}

// SetBody sets the "body" field.
func (m *FeedPostMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *FeedPostMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the FeedPost entity.
// If the FeedPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedPostMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *FeedPostMutation) ResetBody() {
	m.body = nil
}

// SetLikes sets the "likes" field.
func (m *FeedPostMutation) SetLikes(i int) {
	m.likes = &i
	m.addlikes = nil
}

// Likes returns the value of the "likes" field in the mutation.
func (m *FeedPostMutation) Likes() (r int, exists bool) {
	v := m.likes
	if v == nil {
		return
	}
	return *v, true
}

// OldLikes returns the old "likes" field's value of the FeedPost entity.
// If the FeedPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedPostMutation) OldLikes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLikes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLikes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLikes: %w", err)
	}
	return oldValue.Likes, nil
}

// AddLikes adds i to the "likes" field.
func (m *FeedPostMutation) AddLikes(i int) {
	if m.addlikes != nil {
		*m.addlikes += i
	} else {
		m.addlikes = &i
	}
}

// AddedLikes returns the value that was added to the "likes" field in this mutation.
func (m *FeedPostMutation) AddedLikes() (r int, exists bool) {
	v := m.addlikes
	if v == nil {
		return
	}
	return *v, true
}

// ResetLikes resets all changes to the "likes" field.
func (m *FeedPostMutation) ResetLikes() {
	m.likes = nil
	m.addlikes = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedPostMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedPostMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FeedPost entity.
// If the FeedPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedPostMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FeedPostMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the FeedPostMutation builder.
func (m *FeedPostMutation) Where(ps ...predicate.FeedPost) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedPostMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedPostMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeedPost, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedPostMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedPostMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeedPost).
func (m *FeedPostMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedPostMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.post_id != nil {
		fields = append(fields, feedpost.FieldPostID)
	}
	if m.author != nil {
		fields = append(fields, feedpost.FieldAuthor)
	}
	if m.kind != nil {
		fields = append(fields, feedpost.FieldKind)
	}
	if m.body != nil {
		fields = append(fields, feedpost.FieldBody)
	}
	if m.likes != nil {
		fields = append(fields, feedpost.FieldLikes)
	}
	if m.created_at != nil {
		fields = append(fields, feedpost.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedPostMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedpost.FieldPostID:
		return m.PostID()
	case feedpost.FieldAuthor:
		return m.Author()
	case feedpost.FieldKind:
		return m.Kind()
	case feedpost.FieldBody:
		return m.Body()
	case feedpost.FieldLikes:
		return m.Likes()
	case feedpost.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedPostMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedpost.FieldPostID:
		return m.OldPostID(ctx)
	case feedpost.FieldAuthor:
		return m.OldAuthor(ctx)
	case feedpost.FieldKind:
		return m.OldKind(ctx)
	case feedpost.FieldBody:
		return m.OldBody(ctx)
	case feedpost.FieldLikes:
		return m.OldLikes(ctx)
	case feedpost.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FeedPost field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedPostMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedpost.FieldPostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostID(v)
		return nil
	case feedpost.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case feedpost.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case feedpost.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case feedpost.FieldLikes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLikes(v)
		return nil
	case feedpost.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FeedPost field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedPostMutation) AddedFields() []string {
	var fields []string
	if m.addlikes != nil {
		fields = append(fields, feedpost.FieldLikes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedPostMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feedpost.FieldLikes:
		return m.AddedLikes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedPostMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feedpost.FieldLikes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLikes(v)
		return nil
	}
	return fmt.Errorf("unknown FeedPost numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedPostMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedPostMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedPostMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FeedPost nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedPostMutation) ResetField(name string) error {
	switch name {
	case feedpost.FieldPostID:
		m.ResetPostID()
		return nil
	case feedpost.FieldAuthor:
		m.ResetAuthor()
		return nil
	case feedpost.FieldKind:
		m.ResetKind()
		return nil
	case feedpost.FieldBody:
		m.ResetBody()
		return nil
	case feedpost.FieldLikes:
		m.ResetLikes()
		return nil
	case feedpost.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FeedPost field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedPostMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedPostMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedPostMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedPostMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedPostMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedPostMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedPostMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FeedPost unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedPostMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FeedPost edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// PlayerStateMutation represents an operation that mutates the PlayerState nodes in the graph.
type PlayerStateMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	total_experience       *int64
	addtotal_experience    *int64
	level                  *int
	addlevel               *int
	current_streak_days    *int
	addcurrent_streak_days *int
	longest_streak_days    *int
	addlongest_streak_days *int
	streak_freezes         *int
	addstreak_freezes      *int
	last_activity_date     *time.Time
	last_session_id        *string
	coin_balance           *int64
	addcoin_balance        *int64
	total_coins_earned     *int64
	addtotal_coins_earned  *int64
	owned_items            *[]string
	appendowned_items      []string
	achievements           *[]string
	appendachievements     []string
	position               *string
	experience_level       *string
	training_goals         *[]string
	appendtraining_goals   []string
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*PlayerState, error)
	predicates             []predicate.PlayerState
}

var _ ent.Mutation = (*PlayerStateMutation)(nil)

// playerstateOption allows management of the mutation configuration using functional options.
type playerstateOption func(*PlayerStateMutation)

// newPlayerStateMutation creates new mutation for the PlayerState entity.
func newPlayerStateMutation(c config, op Op, opts ...playerstateOption) *PlayerStateMutation {
	m := &PlayerStateMutation{
		config:        c,
		op:            op,
		typ:           TypePlayerState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlayerStateID sets the ID field of the mutation.
func withPlayerStateID(id int) playerstateOption {
	return func(m *PlayerStateMutation) {
		var (
			err   error
			once  sync.Once
			value *PlayerState
		)
		m.oldValue = func(ctx context.Context) (*PlayerState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlayerState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlayerState sets the old PlayerState of the mutation.
func withPlayerState(node *PlayerState) playerstateOption {
	return func(m *PlayerStateMutation) {
		m.oldValue = func(context.Context) (*PlayerState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlayerStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlayerStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlayerStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlayerStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlayerState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTotalExperience sets the "total_experience" field.
func (m *PlayerStateMutation) SetTotalExperience(i int64) {
	m.total_experience = &i
	m.addtotal_experience = nil
}

// TotalExperience returns the value of the "total_experience" field in the mutation.
func (m *PlayerStateMutation) TotalExperience() (r int64, exists bool) {
	v := m.total_experience
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalExperience returns the old "total_experience" field's value of the PlayerState entity.
// If the PlayerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerStateMutation) OldTotalExperience(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalExperience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalExperience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalExperience: %w", err)
	}
	return oldValue.TotalExperience, nil
}

// AddTotalExperience adds i to the "total_experience" field.
func (m *PlayerStateMutation) AddTotalExperience(i int64) {
	if m.addtotal_experience != nil {
		*m.addtotal_experience += i
	} else {
		m.addtotal_experience = &i
	}
}

// AddedTotalExperience returns the value that was added to the "total_experience" field in this mutation.
func (m *PlayerStateMutation) AddedTotalExperience() (r int64, exists bool) {
	v := m.addtotal_experience
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalExperience resets all changes to the "total_experience" field.
func (m *PlayerStateMutation) ResetTotalExperience() {
	m.total_experience = nil
	m.addtotal_experience = nil
}

// SetLevel sets the "level" field.
func (m *PlayerStateMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *PlayerStateMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the PlayerState entity.
// If the PlayerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerStateMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *PlayerStateMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *PlayerStateMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *PlayerStateMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetCurrentStreakDays sets the "current_streak_days" field.
func (m *PlayerStateMutation) SetCurrentStreakDays(i int) {
	m.current_streak_days = &i
	m.addcurrent_streak_days = nil
}

// CurrentStreakDays returns the value of the "current_streak_days" field in the mutation.
func (m *PlayerStateMutation) CurrentStreakDays() (r int, exists bool) {
	v := m.current_streak_days
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStreakDays returns the old "current_streak_days" field's value of the PlayerState entity.
// If the PlayerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerStateMutation) OldCurrentStreakDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStreakDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStreakDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStreakDays: %w", err)
	}
	return oldValue.CurrentStreakDays, nil
}

// AddCurrentStreakDays adds i to the "current_streak_days" field.
func (m *PlayerStateMutation) AddCurrentStreakDays(i int) {
	if m.addcurrent_streak_days != nil {
		*m.addcurrent_streak_days += i
	} else {
		m.addcurrent_streak_days = &i
	}
}

// AddedCurrentStreakDays returns the value that was added to the "current_streak_days" field in this mutation.
func (m *PlayerStateMutation) AddedCurrentStreakDays() (r int, exists bool) {
	v := m.addcurrent_streak_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStreakDays resets all changes to the "current_streak_days" field.
func (m *PlayerStateMutation) ResetCurrentStreakDays() {
	m.current_streak_days = nil
	m.addcurrent_streak_days = nil
}

// SetLongestStreakDays sets the "longest_streak_days" field.
func (m *PlayerStateMutation) SetLongestStreakDays(i int) {
	m.longest_streak_days = &i
	m.addlongest_streak_days = nil
}

// LongestStreakDays returns the value of the "longest_streak_days" field in the mutation.
func (m *PlayerStateMutation) LongestStreakDays() (r int, exists bool) {
	v := m.longest_streak_days
	if v == nil {
		return
	}
	return *v, true
}

// OldLongestStreakDays returns the old "longest_streak_days" field's value of the PlayerState entity.
// If the PlayerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerStateMutation) OldLongestStreakDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongestStreakDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongestStreakDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongestStreakDays: %w", err)
	}
	return oldValue.LongestStreakDays, nil
}

// AddLongestStreakDays adds i to the "longest_streak_days" field.
func (m *PlayerStateMutation) AddLongestStreakDays(i int) {
	if m.addlongest_streak_days != nil {
		*m.addlongest_streak_days += i
	} else {
		m.addlongest_streak_days = &i
	}
}

// AddedLongestStreakDays returns the value that was added to the "longest_streak_days" field in this mutation.
func (m *PlayerStateMutation) AddedLongestStreakDays() (r int, exists bool) {
	v := m.addlongest_streak_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongestStreakDays resets all changes to the "longest_streak_days" field.
func (m *PlayerStateMutation) ResetLongestStreakDays() {
	m.longest_streak_days = nil
	m.addlongest_streak_days = nil
}

// SetStreakFreezes sets the "streak_freezes" field.
func (m *PlayerStateMutation) SetStreakFreezes(i int) {
	m.streak_freezes = &i
	m.addstreak_freezes = nil
}

// StreakFreezes returns the value of the "streak_freezes" field in the mutation.
func (m *PlayerStateMutation) StreakFreezes() (r int, exists bool) {
	v := m.streak_freezes
	if v == nil {
		return
	}
	return *v, true
}

// OldStreakFreezes returns the old "streak_freezes" field's value of the PlayerState entity.
// If the PlayerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerStateMutation) OldStreakFreezes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreakFreezes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreakFreezes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreakFreezes: %w", err)
	}
	return oldValue.StreakFreezes, nil
}

// AddStreakFreezes adds i to the "streak_freezes" field.
func (m *PlayerStateMutation) AddStreakFreezes(i int) {
	if m.addstreak_freezes != nil {
		*m.addstreak_freezes += i
	} else {
		m.addstreak_freezes = &i
	}
}

// AddedStreakFreezes returns the value that was added to the "streak_freezes" field in this mutation.
func (m *PlayerStateMutation) AddedStreakFreezes() (r int, exists bool) {
	v := m.addstreak_freezes
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreakFreezes resets all changes to the "streak_freezes" field.
func (m *PlayerStateMutation) ResetStreakFreezes() {
	m.streak_freezes = nil
	m.addstreak_freezes = nil
}

// SetLastActivityDate sets the "last_activity_date" field.
func (m *PlayerStateMutation) SetLastActivityDate(t time.Time) {
	m.last_activity_date = &t
}

// LastActivityDate returns the value of the "last_activity_date" field in the mutation.
func (m *PlayerStateMutation) LastActivityDate() (r time.Time, exists bool) {
	v := m.last_activity_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityDate returns the old "last_activity_date" field's value of the PlayerState entity.
// If the PlayerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerStateMutation) OldLastActivityDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityDate: %w", err)
	}
	return oldValue.LastActivityDate, nil
}

// ClearLastActivityDate clears the value of the "last_activity_date" field.
func (m *PlayerStateMutation) ClearLastActivityDate() {
	m.last_activity_date = nil
	m.clearedFields[playerstate.FieldLastActivityDate] = struct{}{}
}

// LastActivityDateCleared returns if the "last_activity_date" field was cleared in this mutation.
func (m *PlayerStateMutation) LastActivityDateCleared() bool {
	_, ok := m.clearedFields[playerstate.FieldLastActivityDate]
	return ok
}

// ResetLastActivityDate resets all changes to the "last_activity_date" field.
func (m *PlayerStateMutation) ResetLastActivityDate() {
	m.last_activity_date = nil
	delete(m.clearedFields, playerstate.FieldLastActivityDate)
}

// SetLastSessionID sets the "last_session_id" field.
func (m *PlayerStateMutation) SetLastSessionID(s string) {
	m.last_session_id = &s
}

// LastSessionID returns the value of the "last_session_id" field in the mutation.
func (m *PlayerStateMutation) LastSessionID() (r string, exists bool) {
	v := m.last_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSessionID returns the old "last_session_id" field's value of the PlayerState entity.
// If the PlayerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerStateMutation) OldLastSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSessionID: %w", err)
	}
	return oldValue.LastSessionID, nil
}

// ResetLastSessionID resets all changes to the "last_session_id" field.
func (m *PlayerStateMutation) ResetLastSessionID() {
	m.last_session_id = nil
}

// SetCoinBalance sets the "coin_balance" field.
func (m *PlayerStateMutation) SetCoinBalance(i int64) {
	m.coin_balance = &i
	m.addcoin_balance = nil
}

// CoinBalance returns the value of the "coin_balance" field in the mutation.
func (m *PlayerStateMutation) CoinBalance() (r int64, exists bool) {
	v := m.coin_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldCoinBalance returns the old "coin_balance" field's value of the PlayerState entity.
// If the PlayerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerStateMutation) OldCoinBalance(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoinBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoinBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoinBalance: %w", err)
	}
	return oldValue.CoinBalance, nil
}

// AddCoinBalance adds i to the "coin_balance" field.
func (m *PlayerStateMutation) AddCoinBalance(i int64) {
	if m.addcoin_balance != nil {
		*m.addcoin_balance += i
	} else {
		m.addcoin_balance = &i
	}
}

// AddedCoinBalance returns the value that was added to the "coin_balance" field in this mutation.
func (m *PlayerStateMutation) AddedCoinBalance() (r int64, exists bool) {
	v := m.addcoin_balance
	if v == nil {
		return
	}
	return *v, true
}

// ResetCoinBalance resets all changes to the "coin_balance" field.
func (m *PlayerStateMutation) ResetCoinBalance() {
	m.coin_balance = nil
	m.addcoin_balance = nil
}

// SetTotalCoinsEarned sets the "total_coins_earned" field.
func (m *PlayerStateMutation) SetTotalCoinsEarned(i int64) {
	m.total_coins_earned = &i
	m.addtotal_coins_earned = nil
}

// TotalCoinsEarned returns the value of the "total_coins_earned" field in the mutation.
func (m *PlayerStateMutation) TotalCoinsEarned() (r int64, exists bool) {
	v := m.total_coins_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCoinsEarned returns the old "total_coins_earned" field's value of the PlayerState entity.
// If the PlayerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerStateMutation) OldTotalCoinsEarned(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCoinsEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCoinsEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCoinsEarned: %w", err)
	}
	return oldValue.TotalCoinsEarned, nil
}

// AddTotalCoinsEarned adds i to the "total_coins_earned" field.
func (m *PlayerStateMutation) AddTotalCoinsEarned(i int64) {
	if m.addtotal_coins_earned != nil {
		*m.addtotal_coins_earned += i
	} else {
		m.addtotal_coins_earned = &i
	}
}

// AddedTotalCoinsEarned returns the value that was added to the "total_coins_earned" field in this mutation.
func (m *PlayerStateMutation) AddedTotalCoinsEarned() (r int64, exists bool) {
	v := m.addtotal_coins_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCoinsEarned resets all changes to the "total_coins_earned" field.
func (m *PlayerStateMutation) ResetTotalCoinsEarned() {
	m.total_coins_earned = nil
	m.addtotal_coins_earned = nil
}

// SetOwnedItems sets the "owned_items" field.
func (m *PlayerStateMutation) SetOwnedItems(s []string) {
	m.owned_items = &s
	m.appendowned_items = nil
}

// OwnedItems returns the value of the "owned_items" field in the mutation.
func (m *PlayerStateMutation) OwnedItems() (r []string, exists bool) {
	v := m.owned_items
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnedItems returns the old "owned_items" field's value of the PlayerState entity.
// If the PlayerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerStateMutation) OldOwnedItems(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnedItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnedItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnedItems: %w", err)
	}
	return oldValue.OwnedItems, nil
}

// AppendOwnedItems adds s to the "owned_items" field.
func (m *PlayerStateMutation) AppendOwnedItems(s []string) {
	m.appendowned_items = append(m.appendowned_items, s...)
}

// AppendedOwnedItems returns the list of values that were appended to the "owned_items" field in this mutation.
func (m *PlayerStateMutation) AppendedOwnedItems() ([]string, bool) {
	if len(m.appendowned_items) == 0 {
		return nil, false
	}
	return m.appendowned_items, true
}

// ClearOwnedItems clears the value of the "owned_items" field.
func (m *PlayerStateMutation) ClearOwnedItems() {
	m.owned_items = nil
	m.appendowned_items = nil
	m.clearedFields[playerstate.FieldOwnedItems] = struct{}{}
}

// OwnedItemsCleared returns if the "owned_items" field was cleared in this mutation.
func (m *PlayerStateMutation) OwnedItemsCleared() bool {
	_, ok := m.clearedFields[playerstate.FieldOwnedItems]
	return ok
}

// ResetOwnedItems resets all changes to the "owned_items" field.
func (m *PlayerStateMutation) ResetOwnedItems() {
	m.owned_items = nil
	m.appendowned_items = nil
	delete(m.clearedFields, playerstate.FieldOwnedItems)
}

// SetAchievements sets the "achievements" field.
func (m *PlayerStateMutation) SetAchievements(s []string) {
	m.achievements = &s
	m.appendachievements = nil
}

// Achievements returns the value of the "achievements" field in the mutation.
func (m *PlayerStateMutation) Achievements() (r []string, exists bool) {
	v := m.achievements
	if v == nil {
		return
	}
	return *v, true
}

// OldAchievements returns the old "achievements" field's value of the PlayerState entity.
// If the PlayerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerStateMutation) OldAchievements(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAchievements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAchievements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAchievements: %w", err)
	}
	return oldValue.Achievements, nil
}

// AppendAchievements adds s to the "achievements" field.
func (m *PlayerStateMutation) AppendAchievements(s []string) {
	m.appendachievements = append(m.appendachievements, s...)
}

// AppendedAchievements returns the list of values that were appended to the "achievements" field in this mutation.
func (m *PlayerStateMutation) AppendedAchievements() ([]string, bool) {
	if len(m.appendachievements) == 0 {
		return nil, false
	}
	return m.appendachievements, true
}

// ClearAchievements clears the value of the "achievements" field.
func (m *PlayerStateMutation) ClearAchievements() {
	m.achievements = nil
	m.appendachievements = nil
	m.clearedFields[playerstate.FieldAchievements] = struct{}{}
}

// AchievementsCleared returns if the "achievements" field was cleared in this mutation.
func (m *PlayerStateMutation) AchievementsCleared() bool {
	_, ok := m.clearedFields[playerstate.FieldAchievements]
	return ok
}

// ResetAchievements resets all changes to the "achievements" field.
func (m *PlayerStateMutation) ResetAchievements() {
	m.achievements = nil
	m.appendachievements = nil
	delete(m.clearedFields, playerstate.FieldAchievements)
}

// SetPosition sets the "position" field.
func (m *PlayerStateMutation) SetPosition(s string) {
	m.position = &s
}

// Position returns the value of the "position" field in the mutation.
func (m *PlayerStateMutation) Position() (r string, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the PlayerState entity.
// If the PlayerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerStateMutation) OldPosition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// ResetPosition resets all changes to the "position" field.
func (m *PlayerStateMutation) ResetPosition() {
	m.position = nil
}

// SetExperienceLevel sets the "experience_level" field.
func (m *PlayerStateMutation) SetExperienceLevel(s string) {
	m.experience_level = &s
}

// ExperienceLevel returns the value of the "experience_level" field in the mutation.
func (m *PlayerStateMutation) ExperienceLevel() (r string, exists bool) {
	v := m.experience_level
	if v == nil {
		return
	}
	return *v, true
}

// OldExperienceLevel returns the old "experience_level" field's value of the PlayerState entity.
// If the PlayerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerStateMutation) OldExperienceLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperienceLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperienceLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperienceLevel: %w", err)
	}
	return oldValue.ExperienceLevel, nil
}

// ResetExperienceLevel resets all changes to the "experience_level" field.
func (m *PlayerStateMutation) ResetExperienceLevel() {
	m.experience_level = nil
}

// SetTrainingGoals sets the "training_goals" field.
func (m *PlayerStateMutation) SetTrainingGoals(s []string) {
	m.training_goals = &s
	m.appendtraining_goals = nil
}

// TrainingGoals returns the value of the "training_goals" field in the mutation.
func (m *PlayerStateMutation) TrainingGoals() (r []string, exists bool) {
	v := m.training_goals
	if v == nil {
		return
	}
	return *v, true
}

// OldTrainingGoals returns the old "training_goals" field's value of the PlayerState entity.
// If the PlayerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerStateMutation) OldTrainingGoals(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrainingGoals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrainingGoals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrainingGoals: %w", err)
	}
	return oldValue.TrainingGoals, nil
}

// AppendTrainingGoals adds s to the "training_goals" field.
func (m *PlayerStateMutation) AppendTrainingGoals(s []string) {
	m.appendtraining_goals = append(m.appendtraining_goals, s...)
}

// AppendedTrainingGoals returns the list of values that were appended to the "training_goals" field in this mutation.
func (m *PlayerStateMutation) AppendedTrainingGoals() ([]string, bool) {
	if len(m.appendtraining_goals) == 0 {
		return nil, false
	}
	return m.appendtraining_goals, true
}

// ClearTrainingGoals clears the value of the "training_goals" field.
func (m *PlayerStateMutation) ClearTrainingGoals() {
	m.training_goals = nil
	m.appendtraining_goals = nil
	m.clearedFields[playerstate.FieldTrainingGoals] = struct{}{}
}

// TrainingGoalsCleared returns if the "training_goals" field was cleared in this mutation.
func (m *PlayerStateMutation) TrainingGoalsCleared() bool {
	_, ok := m.clearedFields[playerstate.FieldTrainingGoals]
	return ok
}

// ResetTrainingGoals resets all changes to the "training_goals" field.
func (m *PlayerStateMutation) ResetTrainingGoals() {
	m.training_goals = nil
	m.appendtraining_goals = nil
	delete(m.clearedFields, playerstate.FieldTrainingGoals)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PlayerStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PlayerStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PlayerState entity.
// If the PlayerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PlayerStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PlayerStateMutation builder.
func (m *PlayerStateMutation) Where(ps ...predicate.PlayerState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlayerStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlayerStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlayerState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlayerStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlayerStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlayerState).
func (m *PlayerStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlayerStateMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.total_experience != nil {
		fields = append(fields, playerstate.FieldTotalExperience)
	}
	if m.level != nil {
		fields = append(fields, playerstate.FieldLevel)
	}
	if m.current_streak_days != nil {
		fields = append(fields, playerstate.FieldCurrentStreakDays)
	}
	if m.longest_streak_days != nil {
		fields = append(fields, playerstate.FieldLongestStreakDays)
	}
	if m.streak_freezes != nil {
		fields = append(fields, playerstate.FieldStreakFreezes)
	}
	if m.last_activity_date != nil {
		fields = append(fields, playerstate.FieldLastActivityDate)
	}
	if m.last_session_id != nil {
		fields = append(fields, playerstate.FieldLastSessionID)
	}
	if m.coin_balance != nil {
		fields = append(fields, playerstate.FieldCoinBalance)
	}
	if m.total_coins_earned != nil {
		fields = append(fields, playerstate.FieldTotalCoinsEarned)
	}
	if m.owned_items != nil {
		fields = append(fields, playerstate.FieldOwnedItems)
	}
	if m.achievements != nil {
		fields = append(fields, playerstate.FieldAchievements)
	}
	if m.position != nil {
		fields = append(fields, playerstate.FieldPosition)
	}
	if m.experience_level != nil {
		fields = append(fields, playerstate.FieldExperienceLevel)
	}
	if m.training_goals != nil {
		fields = append(fields, playerstate.FieldTrainingGoals)
	}
	if m.updated_at != nil {
		fields = append(fields, playerstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlayerStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case playerstate.FieldTotalExperience:
		return m.TotalExperience()
	case playerstate.FieldLevel:
		return m.Level()
	case playerstate.FieldCurrentStreakDays:
		return m.CurrentStreakDays()
	case playerstate.FieldLongestStreakDays:
		return m.LongestStreakDays()
	case playerstate.FieldStreakFreezes:
		return m.StreakFreezes()
	case playerstate.FieldLastActivityDate:
		return m.LastActivityDate()
	case playerstate.FieldLastSessionID:
		return m.LastSessionID()
	case playerstate.FieldCoinBalance:
		return m.CoinBalance()
	case playerstate.FieldTotalCoinsEarned:
		return m.TotalCoinsEarned()
	case playerstate.FieldOwnedItems:
		return m.OwnedItems()
	case playerstate.FieldAchievements:
		return m.Achievements()
	case playerstate.FieldPosition:
		return m.Position()
	case playerstate.FieldExperienceLevel:
		return m.ExperienceLevel()
	case playerstate.FieldTrainingGoals:
		return m.TrainingGoals()
	case playerstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlayerStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case playerstate.FieldTotalExperience:
		return m.OldTotalExperience(ctx)
	case playerstate.FieldLevel:
		return m.OldLevel(ctx)
	case playerstate.FieldCurrentStreakDays:
		return m.OldCurrentStreakDays(ctx)
	case playerstate.FieldLongestStreakDays:
		return m.OldLongestStreakDays(ctx)
	case playerstate.FieldStreakFreezes:
		return m.OldStreakFreezes(ctx)
	case playerstate.FieldLastActivityDate:
		return m.OldLastActivityDate(ctx)
	case playerstate.FieldLastSessionID:
		return m.OldLastSessionID(ctx)
	case playerstate.FieldCoinBalance:
		return m.OldCoinBalance(ctx)
	case playerstate.FieldTotalCoinsEarned:
		return m.OldTotalCoinsEarned(ctx)
	case playerstate.FieldOwnedItems:
		return m.OldOwnedItems(ctx)
	case playerstate.FieldAchievements:
		return m.OldAchievements(ctx)
	case playerstate.FieldPosition:
		return m.OldPosition(ctx)
	case playerstate.FieldExperienceLevel:
		return m.OldExperienceLevel(ctx)
	case playerstate.FieldTrainingGoals:
		return m.OldTrainingGoals(ctx)
	case playerstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PlayerState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlayerStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case playerstate.FieldTotalExperience:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalExperience(v)
		return nil
	case playerstate.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case playerstate.FieldCurrentStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStreakDays(v)
		return nil
	case playerstate.FieldLongestStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongestStreakDays(v)
		return nil
	case playerstate.FieldStreakFreezes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreakFreezes(v)
		return nil
	case playerstate.FieldLastActivityDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityDate(v)
		return nil
	case playerstate.FieldLastSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSessionID(v)
		return nil
	case playerstate.FieldCoinBalance:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoinBalance(v)
		return nil
	case playerstate.FieldTotalCoinsEarned:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCoinsEarned(v)
		return nil
	case playerstate.FieldOwnedItems:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnedItems(v)
		return nil
	case playerstate.FieldAchievements:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAchievements(v)
		return nil
	case playerstate.FieldPosition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case playerstate.FieldExperienceLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperienceLevel(v)
		return nil
	case playerstate.FieldTrainingGoals:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrainingGoals(v)
		return nil
	case playerstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PlayerState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlayerStateMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_experience != nil {
		fields = append(fields, playerstate.FieldTotalExperience)
	}
	if m.addlevel != nil {
		fields = append(fields, playerstate.FieldLevel)
	}
	if m.addcurrent_streak_days != nil {
		fields = append(fields, playerstate.FieldCurrentStreakDays)
	}
	if m.addlongest_streak_days != nil {
		fields = append(fields, playerstate.FieldLongestStreakDays)
	}
	if m.addstreak_freezes != nil {
		fields = append(fields, playerstate.FieldStreakFreezes)
	}
	if m.addcoin_balance != nil {
		fields = append(fields, playerstate.FieldCoinBalance)
	}
	if m.addtotal_coins_earned != nil {
		fields = append(fields, playerstate.FieldTotalCoinsEarned)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlayerStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case playerstate.FieldTotalExperience:
		return m.AddedTotalExperience()
	case playerstate.FieldLevel:
		return m.AddedLevel()
	case playerstate.FieldCurrentStreakDays:
		return m.AddedCurrentStreakDays()
	case playerstate.FieldLongestStreakDays:
		return m.AddedLongestStreakDays()
	case playerstate.FieldStreakFreezes:
		return m.AddedStreakFreezes()
	case playerstate.FieldCoinBalance:
		return m.AddedCoinBalance()
	case playerstate.FieldTotalCoinsEarned:
		return m.AddedTotalCoinsEarned()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlayerStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case playerstate.FieldTotalExperience:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalExperience(v)
		return nil
	case playerstate.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	case playerstate.FieldCurrentStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStreakDays(v)
		return nil
	case playerstate.FieldLongestStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongestStreakDays(v)
		return nil
	case playerstate.FieldStreakFreezes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreakFreezes(v)
		return nil
	case playerstate.FieldCoinBalance:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoinBalance(v)
		return nil
	case playerstate.FieldTotalCoinsEarned:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCoinsEarned(v)
		return nil
	}
	return fmt.Errorf("unknown PlayerState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlayerStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(playerstate.FieldLastActivityDate) {
		fields = append(fields, playerstate.FieldLastActivityDate)
	}
	if m.FieldCleared(playerstate.FieldOwnedItems) {
		fields = append(fields, playerstate.FieldOwnedItems)
	}
	if m.FieldCleared(playerstate.FieldAchievements) {
		fields = append(fields, playerstate.FieldAchievements)
	}
	if m.FieldCleared(playerstate.FieldTrainingGoals) {
		fields = append(fields, playerstate.FieldTrainingGoals)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlayerStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlayerStateMutation) ClearField(name string) error {
	switch name {
	case playerstate.FieldLastActivityDate:
		m.ClearLastActivityDate()
		return nil
	case playerstate.FieldOwnedItems:
		m.ClearOwnedItems()
		return nil
	case playerstate.FieldAchievements:
		m.ClearAchievements()
		return nil
	case playerstate.FieldTrainingGoals:
		m.ClearTrainingGoals()
		return nil
	}
	return fmt.Errorf("unknown PlayerState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlayerStateMutation) ResetField(name string) error {
	switch name {
	case playerstate.FieldTotalExperience:
		m.ResetTotalExperience()
		return nil
	case playerstate.FieldLevel:
		m.ResetLevel()
		return nil
	case playerstate.FieldCurrentStreakDays:
		m.ResetCurrentStreakDays()
		return nil
	case playerstate.FieldLongestStreakDays:
		m.ResetLongestStreakDays()
		return nil
	case playerstate.FieldStreakFreezes:
		m.ResetStreakFreezes()
		return nil
	case playerstate.FieldLastActivityDate:
		m.ResetLastActivityDate()
		return nil
	case playerstate.FieldLastSessionID:
		m.ResetLastSessionID()
		return nil
	case playerstate.FieldCoinBalance:
		m.ResetCoinBalance()
		return nil
	case playerstate.FieldTotalCoinsEarned:
		m.ResetTotalCoinsEarned()
		return nil
	case playerstate.FieldOwnedItems:
		m.ResetOwnedItems()
		return nil
	case playerstate.FieldAchievements:
		m.ResetAchievements()
		return nil
	case playerstate.FieldPosition:
		m.ResetPosition()
		return nil
	case playerstate.FieldExperienceLevel:
		m.ResetExperienceLevel()
		return nil
	case playerstate.FieldTrainingGoals:
		m.ResetTrainingGoals()
		return nil
	case playerstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PlayerState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlayerStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlayerStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlayerStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlayerStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlayerStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlayerStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlayerStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PlayerState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlayerStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PlayerState edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	session_id            *string
	activity_date         *time.Time
	intensity             *int
	addintensity          *int
	exercise_count        *int
	addexercise_count     *int
	all_completed         *bool
	rating                *int
	addrating             *int
	notes                 *string
	duration_secs         *int
	addduration_secs      *int
	experience_awarded    *int64
	addexperience_awarded *int64
	exercises             *[]schema.ExerciseResult
	appendexercises       []schema.ExerciseResult
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*SessionEvent, error)
	predicates            []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetActivityDate sets the "activity_date" field.
func (m *SessionEventMutation) SetActivityDate(t time.Time) {
	m.activity_date = &t
}

// ActivityDate returns the value of the "activity_date" field in the mutation.
func (m *SessionEventMutation) ActivityDate() (r time.Time, exists bool) {
	v := m.activity_date
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityDate returns the old "activity_date" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldActivityDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityDate: %w", err)
	}
	return oldValue.ActivityDate, nil
}

// ResetActivityDate resets all changes to the "activity_date" field.
func (m *SessionEventMutation) ResetActivityDate() {
	m.activity_date = nil
}

// SetIntensity sets the "intensity" field.
func (m *SessionEventMutation) SetIntensity(i int) {
	m.intensity = &i
	m.addintensity = nil
}

// Intensity returns the value of the "intensity" field in the mutation.
func (m *SessionEventMutation) Intensity() (r int, exists bool) {
	v := m.intensity
	if v == nil {
		return
	}
	return *v, true
}

// OldIntensity returns the old "intensity" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldIntensity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntensity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntensity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntensity: %w", err)
	}
	return oldValue.Intensity, nil
}

// AddIntensity adds i to the "intensity" field.
func (m *SessionEventMutation) AddIntensity(i int) {
	if m.addintensity != nil {
		*m.addintensity += i
	} else {
		m.addintensity = &i
	}
}

// AddedIntensity returns the value that was added to the "intensity" field in this mutation.
func (m *SessionEventMutation) AddedIntensity() (r int, exists bool) {
	v := m.addintensity
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntensity resets all changes to the "intensity" field.
func (m *SessionEventMutation) ResetIntensity() {
	m.intensity = nil
	m.addintensity = nil
}

// SetExerciseCount sets the "exercise_count" field.
func (m *SessionEventMutation) SetExerciseCount(i int) {
	m.exercise_count = &i
	m.addexercise_count = nil
}

// ExerciseCount returns the value of the "exercise_count" field in the mutation.
func (m *SessionEventMutation) ExerciseCount() (r int, exists bool) {
	v := m.exercise_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseCount returns the old "exercise_count" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldExerciseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseCount: %w", err)
	}
	return oldValue.ExerciseCount, nil
}

// AddExerciseCount adds i to the "exercise_count" field.
func (m *SessionEventMutation) AddExerciseCount(i int) {
	if m.addexercise_count != nil {
		*m.addexercise_count += i
	} else {
		m.addexercise_count = &i
	}
}

// AddedExerciseCount returns the value that was added to the "exercise_count" field in this mutation.
func (m *SessionEventMutation) AddedExerciseCount() (r int, exists bool) {
	v := m.addexercise_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetExerciseCount resets all changes to the "exercise_count" field.
func (m *SessionEventMutation) ResetExerciseCount() {
	m.exercise_count = nil
	m.addexercise_count = nil
}

// SetAllCompleted sets the "all_completed" field.
func (m *SessionEventMutation) SetAllCompleted(b bool) {
	m.all_completed = &b
}

// AllCompleted returns the value of the "all_completed" field in the mutation.
func (m *SessionEventMutation) AllCompleted() (r bool, exists bool) {
	v := m.all_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldAllCompleted returns the old "all_completed" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAllCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllCompleted: %w", err)
	}
	return oldValue.AllCompleted, nil
}

// ResetAllCompleted resets all changes to the "all_completed" field.
func (m *SessionEventMutation) ResetAllCompleted() {
	m.all_completed = nil
}

// SetRating sets the "rating" field.
func (m *SessionEventMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *SessionEventMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *SessionEventMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *SessionEventMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *SessionEventMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetNotes sets the "notes" field.
func (m *SessionEventMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *SessionEventMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ResetNotes resets all changes to the "notes" field.
func (m *SessionEventMutation) ResetNotes() {
	m.notes = nil
}

// SetDurationSecs sets the "duration_secs" field.
func (m *SessionEventMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *SessionEventMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *SessionEventMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *SessionEventMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *SessionEventMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// SetExperienceAwarded sets the "experience_awarded" field.
func (m *SessionEventMutation) SetExperienceAwarded(i int64) {
	m.experience_awarded = &i
	m.addexperience_awarded = nil
}

// ExperienceAwarded returns the value of the "experience_awarded" field in the mutation.
func (m *SessionEventMutation) ExperienceAwarded() (r int64, exists bool) {
	v := m.experience_awarded
	if v == nil {
		return
	}
	return *v, true
}

// OldExperienceAwarded returns the old "experience_awarded" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldExperienceAwarded(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperienceAwarded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperienceAwarded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperienceAwarded: %w", err)
	}
	return oldValue.ExperienceAwarded, nil
}

// AddExperienceAwarded adds i to the "experience_awarded" field.
func (m *SessionEventMutation) AddExperienceAwarded(i int64) {
	if m.addexperience_awarded != nil {
		*m.addexperience_awarded += i
	} else {
		m.addexperience_awarded = &i
	}
}

// AddedExperienceAwarded returns the value that was added to the "experience_awarded" field in this mutation.
func (m *SessionEventMutation) AddedExperienceAwarded() (r int64, exists bool) {
	v := m.addexperience_awarded
	if v == nil {
		return
	}
	return *v, true
}

// ResetExperienceAwarded resets all changes to the "experience_awarded" field.
func (m *SessionEventMutation) ResetExperienceAwarded() {
	m.experience_awarded = nil
	m.addexperience_awarded = nil
}

// SetExercises sets the "exercises" field.
func (m *SessionEventMutation) SetExercises(sr []schema.ExerciseResult) {
	m.exercises = &sr
	m.appendexercises = nil
}

// Exercises returns the value of the "exercises" field in the mutation.
func (m *SessionEventMutation) Exercises() (r []schema.ExerciseResult, exists bool) {
	v := m.exercises
	if v == nil {
		return
	}
	return *v, true
}

// OldExercises returns the old "exercises" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldExercises(ctx context.Context) (v []schema.ExerciseResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExercises is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExercises requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExercises: %w", err)
	}
	return oldValue.Exercises, nil
}

// AppendExercises adds sr to the "exercises" field.
func (m *SessionEventMutation) AppendExercises(sr []schema.ExerciseResult) {
	m.appendexercises = append(m.appendexercises, sr...)
}

// AppendedExercises returns the list of values that were appended to the "exercises" field in this mutation.
func (m *SessionEventMutation) AppendedExercises() ([]schema.ExerciseResult, bool) {
	if len(m.appendexercises) == 0 {
		return nil, false
	}
	return m.appendexercises, true
}

// ClearExercises clears the value of the "exercises" field.
func (m *SessionEventMutation) ClearExercises() {
	m.exercises = nil
	m.appendexercises = nil
	m.clearedFields[sessionevent.FieldExercises] = struct{}{}
}

// ExercisesCleared returns if the "exercises" field was cleared in this mutation.
func (m *SessionEventMutation) ExercisesCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldExercises]
	return ok
}

// ResetExercises resets all changes to the "exercises" field.
func (m *SessionEventMutation) ResetExercises() {
	m.exercises = nil
	m.appendexercises = nil
	delete(m.clearedFields, sessionevent.FieldExercises)
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.activity_date != nil {
		fields = append(fields, sessionevent.FieldActivityDate)
	}
	if m.intensity != nil {
		fields = append(fields, sessionevent.FieldIntensity)
	}
	if m.exercise_count != nil {
		fields = append(fields, sessionevent.FieldExerciseCount)
	}
	if m.all_completed != nil {
		fields = append(fields, sessionevent.FieldAllCompleted)
	}
	if m.rating != nil {
		fields = append(fields, sessionevent.FieldRating)
	}
	if m.notes != nil {
		fields = append(fields, sessionevent.FieldNotes)
	}
	if m.duration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	if m.experience_awarded != nil {
		fields = append(fields, sessionevent.FieldExperienceAwarded)
	}
	if m.exercises != nil {
		fields = append(fields, sessionevent.FieldExercises)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.Sequence()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldActivityDate:
		return m.ActivityDate()
	case sessionevent.FieldIntensity:
		return m.Intensity()
	case sessionevent.FieldExerciseCount:
		return m.ExerciseCount()
	case sessionevent.FieldAllCompleted:
		return m.AllCompleted()
	case sessionevent.FieldRating:
		return m.Rating()
	case sessionevent.FieldNotes:
		return m.Notes()
	case sessionevent.FieldDurationSecs:
		return m.DurationSecs()
	case sessionevent.FieldExperienceAwarded:
		return m.ExperienceAwarded()
	case sessionevent.FieldExercises:
		return m.Exercises()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSequence:
		return m.OldSequence(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldActivityDate:
		return m.OldActivityDate(ctx)
	case sessionevent.FieldIntensity:
		return m.OldIntensity(ctx)
	case sessionevent.FieldExerciseCount:
		return m.OldExerciseCount(ctx)
	case sessionevent.FieldAllCompleted:
		return m.OldAllCompleted(ctx)
	case sessionevent.FieldRating:
		return m.OldRating(ctx)
	case sessionevent.FieldNotes:
		return m.OldNotes(ctx)
	case sessionevent.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	case sessionevent.FieldExperienceAwarded:
		return m.OldExperienceAwarded(ctx)
	case sessionevent.FieldExercises:
		return m.OldExercises(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldActivityDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityDate(v)
		return nil
	case sessionevent.FieldIntensity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntensity(v)
		return nil
	case sessionevent.FieldExerciseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseCount(v)
		return nil
	case sessionevent.FieldAllCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllCompleted(v)
		return nil
	case sessionevent.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case sessionevent.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	case sessionevent.FieldExperienceAwarded:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperienceAwarded(v)
		return nil
	case sessionevent.FieldExercises:
		v, ok := value.([]schema.ExerciseResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExercises(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.addintensity != nil {
		fields = append(fields, sessionevent.FieldIntensity)
	}
	if m.addexercise_count != nil {
		fields = append(fields, sessionevent.FieldExerciseCount)
	}
	if m.addrating != nil {
		fields = append(fields, sessionevent.FieldRating)
	}
	if m.addduration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	if m.addexperience_awarded != nil {
		fields = append(fields, sessionevent.FieldExperienceAwarded)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.AddedSequence()
	case sessionevent.FieldIntensity:
		return m.AddedIntensity()
	case sessionevent.FieldExerciseCount:
		return m.AddedExerciseCount()
	case sessionevent.FieldRating:
		return m.AddedRating()
	case sessionevent.FieldDurationSecs:
		return m.AddedDurationSecs()
	case sessionevent.FieldExperienceAwarded:
		return m.AddedExperienceAwarded()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case sessionevent.FieldIntensity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntensity(v)
		return nil
	case sessionevent.FieldExerciseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExerciseCount(v)
		return nil
	case sessionevent.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	case sessionevent.FieldExperienceAwarded:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExperienceAwarded(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionevent.FieldExercises) {
		fields = append(fields, sessionevent.FieldExercises)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	switch name {
	case sessionevent.FieldExercises:
		m.ClearExercises()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldActivityDate:
		m.ResetActivityDate()
		return nil
	case sessionevent.FieldIntensity:
		m.ResetIntensity()
		return nil
	case sessionevent.FieldExerciseCount:
		m.ResetExerciseCount()
		return nil
	case sessionevent.FieldAllCompleted:
		m.ResetAllCompleted()
		return nil
	case sessionevent.FieldRating:
		m.ResetRating()
		return nil
	case sessionevent.FieldNotes:
		m.ResetNotes()
		return nil
	case sessionevent.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	case sessionevent.FieldExperienceAwarded:
		m.ResetExperienceAwarded()
		return nil
	case sessionevent.FieldExercises:
		m.ResetExercises()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}
