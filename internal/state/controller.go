package state

import (
	"context"
	"fmt"
	"net/http"

	"portalsync/internal/gateway"
)

// Controller owns one Collection and is its only writer. Every operation
// issues exactly one gateway call and settles the collection with the
// server-returned payload; the caller's draft is never stored directly.
// Failures are written into the collection's error state rather than left to
// crash the observing view, and additionally returned for callers that want
// them.
type Controller[T Record] struct {
	gw       *gateway.Client
	resource string
	col      *Collection[T]
}

func NewController[T Record](gw *gateway.Client, resource string) *Controller[T] {
	return &Controller[T]{
		gw:       gw,
		resource: resource,
		col:      NewCollection[T](),
	}
}

// All returns a snapshot of the collection.
func (c *Controller[T]) All() []T { return c.col.All() }

// Get returns the locally held record with the given identifier.
func (c *Controller[T]) Get(id string) (T, bool) { return c.col.Get(id) }

// Status returns the collection's load phase.
func (c *Controller[T]) Status() Phase { return c.col.Status() }

// Err returns the last recorded failure message.
func (c *Controller[T]) Err() string { return c.col.Err() }

// Len returns the number of locally held records.
func (c *Controller[T]) Len() int { return c.col.Len() }

// LoadAll fetches the full collection. Safe to re-invoke at any time: the
// later response wins, and a response that raced a mutation is merged by
// identifier instead of replacing wholesale.
func (c *Controller[T]) LoadAll(ctx context.Context) error {
	issued := c.col.beginLoad()
	var records []T
	if _, err := c.gw.DoJSON(ctx, http.MethodGet, c.resource, nil, &records); err != nil {
		c.col.failed(gateway.Reason(err))
		return err
	}
	c.col.fetchAllSucceeded(records, issued)
	return nil
}

// Create posts a draft and settles the collection with the server-returned
// record, which carries the server-assigned identifier. Nothing is inserted
// optimistically: a failed create leaves the collection untouched.
func (c *Controller[T]) Create(ctx context.Context, draft T) (T, error) {
	var created T
	decoded, err := c.gw.DoJSON(ctx, http.MethodPost, c.resource, draft, &created)
	if err != nil {
		c.col.failed(gateway.Reason(err))
		return created, err
	}
	if !decoded {
		err := fmt.Errorf("create %s: empty response", c.resource)
		c.col.failed(err.Error())
		return created, err
	}
	c.col.createSucceeded(created)
	return created, nil
}

// Update puts the full record. When the server answers with no content the
// submitted record is the authoritative result. An identifier unknown
// locally is dropped silently: the collection may simply not have been
// fetched yet.
func (c *Controller[T]) Update(ctx context.Context, rec T) (T, error) {
	var updated T
	decoded, err := c.gw.DoJSON(ctx, http.MethodPut, c.resource+"/"+rec.RecordID(), rec, &updated)
	if err != nil {
		c.col.failed(gateway.Reason(err))
		return updated, err
	}
	if !decoded {
		updated = rec
	}
	c.col.updateSucceeded(updated)
	return updated, nil
}

// Remove deletes by identifier. Local absence after settlement is a no-op.
func (c *Controller[T]) Remove(ctx context.Context, id string) error {
	if _, err := c.gw.DoJSON(ctx, http.MethodDelete, c.resource+"/"+id, nil, nil); err != nil {
		c.col.failed(gateway.Reason(err))
		return err
	}
	c.col.deleteSucceeded(id)
	return nil
}

// WorkflowController adds status transitions over named action endpoints to
// a Controller, guarded by the entity's transition table.
type WorkflowController[T WorkflowRecord] struct {
	*Controller[T]
	machine Machine
	actions map[string]string
}

func NewWorkflowController[T WorkflowRecord](gw *gateway.Client, resource string, machine Machine, actions map[string]string) *WorkflowController[T] {
	return &WorkflowController[T]{
		Controller: NewController[T](gw, resource),
		machine:    machine,
		actions:    actions,
	}
}

// Machine returns the entity's transition table.
func (c *WorkflowController[T]) Machine() Machine { return c.machine }

// Transition moves the record to the target status via its dedicated action
// endpoint. Illegal transitions are rejected locally before any network
// call. The server response is authoritative for the resulting status, so a
// server-side side effect can land a different status than requested.
func (c *WorkflowController[T]) Transition(ctx context.Context, id, target string) error {
	rec, ok := c.col.Get(id)
	if !ok {
		// Benign eventual-consistency lag, not a fault.
		return nil
	}
	if err := c.machine.Check(rec.RecordStatus(), target); err != nil {
		return err
	}
	action, ok := c.actions[target]
	if !ok {
		return fmt.Errorf("%w: no action endpoint for %s", ErrInvalidTransition, target)
	}

	var updated T
	decoded, err := c.gw.DoJSON(ctx, http.MethodPost, c.resource+"/"+id+"/"+action, nil, &updated)
	if err != nil {
		c.col.failed(gateway.Reason(err))
		return err
	}
	if !decoded {
		err := fmt.Errorf("transition %s/%s: empty response", c.resource, action)
		c.col.failed(err.Error())
		return err
	}
	c.col.updateSucceeded(updated)
	return nil
}
