package prediction

import (
	"context"
	"sync"
	"sync/atomic"

	apperrors "github.com/lesotho-gov/healthcost/internal/shared/errors"
)

// Controller owns the submission state for one form instance: the in-flight
// flag and the last settled outcome. The single-flight gate makes a double
// submit structurally unable to issue two upstream calls; the second one is
// rejected with a conflict.
type Controller struct {
	client    *Client
	presenter *Presenter

	inFlight atomic.Bool

	mu   sync.Mutex
	last *View
}

// NewController creates a controller for one form instance
func NewController(client *Client, presenter *Presenter) *Controller {
	return &Controller{client: client, presenter: presenter}
}

// Submit runs one built payload through the prediction pipeline and returns
// the rendered view. The in-flight flag is cleared exactly once per call,
// whatever the outcome. Nothing persists across submissions beyond the last
// rendered view.
func (c *Controller) Submit(ctx context.Context, payload any) (View, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return View{}, apperrors.Conflict("a submission is already in flight")
	}
	defer c.inFlight.Store(false)

	est, err := c.client.Predict(ctx, payload)
	if err != nil {
		view := c.presenter.Failure(err)
		c.setLast(view)
		return view, err
	}

	view := c.presenter.Success(est)
	c.setLast(view)
	return view, nil
}

// InFlight reports whether a submission is currently pending
func (c *Controller) InFlight() bool {
	return c.inFlight.Load()
}

// LastView returns the most recent settled outcome, if any
func (c *Controller) LastView() (View, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return View{}, false
	}
	return *c.last, true
}

func (c *Controller) setLast(view View) {
	c.mu.Lock()
	c.last = &view
	c.mu.Unlock()
}
