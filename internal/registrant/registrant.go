// Package registrant implements the listener registration primitives every
// notification category is built on: an ordered multi-registrant List and a
// single occupant Slot.
package registrant

import (
	"reflect"

	"github.com/LeoCommon/modemcore/pkg/log"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Notification is what a Handler receives for every fired event
type Notification struct {
	// Token is the opaque correlation value passed at registration time
	Token any
	// UserContext is the caller supplied context passed at registration time
	UserContext any

	Result any
	Err    error
}

// Handler receives notifications. Implementations are compared by identity
// for removal, so they must be pointers.
type Handler interface {
	Notify(n Notification)
}

type funcHandler struct {
	fn func(n Notification)
}

func (f *funcHandler) Notify(n Notification) {
	f.fn(n)
}

// NewHandler wraps fn in a pointer handler with a stable identity
func NewHandler(fn func(n Notification)) Handler {
	return &funcHandler{fn: fn}
}

// Registrant ties a handler to its token and user context
type Registrant struct {
	id          uuid.UUID
	handler     Handler
	token       any
	userContext any

	// set once the registrant left its list or slot, pending deliveries are dropped
	removed atomic.Bool
}

func New(h Handler, token any, userContext any) *Registrant {
	if h == nil {
		log.Panic("implementation mistake, nil handler registered")
	}

	// Value handlers can hold uncomparable dynamic fields, removal would panic
	if reflect.TypeOf(h).Kind() != reflect.Pointer {
		log.Panic("implementation mistake, handler is not a pointer", zap.String("type", reflect.TypeOf(h).String()))
	}

	return &Registrant{
		id:          uuid.New(),
		handler:     h,
		token:       token,
		userContext: userContext,
	}
}

func (r *Registrant) ID() uuid.UUID {
	return r.id
}

func (r *Registrant) Handler() Handler {
	return r.handler
}

func (r *Registrant) Token() any {
	return r.token
}

func (r *Registrant) UserContext() any {
	return r.userContext
}

// Removed reports whether the registrant was unregistered or replaced
func (r *Registrant) Removed() bool {
	return r.removed.Load()
}

func (r *Registrant) is(h Handler) bool {
	return r.handler == h
}

func (r *Registrant) notification(result any, err error) Notification {
	return Notification{
		Token:       r.token,
		UserContext: r.userContext,
		Result:      result,
		Err:         err,
	}
}
