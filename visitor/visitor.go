package visitor

import (
	"iter"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/ardnew/ars/ast"
	"github.com/ardnew/ars/kind"
	"github.com/ardnew/ars/log"
	"github.com/ardnew/ars/pkg"
)

// Handler produces the result for a node. It may recurse through v and may
// read or modify v's scope.
type Handler[S any] func(v *Visitor[S], n *ast.Node) (Result, error)

// Visitor dispatches nodes to handlers by kind.
//
// Registration is safe for concurrent use. The handler table lock is not held
// while a handler runs, so handlers may register other handlers.
type Visitor[S any] struct {
	mu       sync.RWMutex
	handlers map[kind.Kind]Handler[S]
	scope    *Scope[S]
	names    *kind.Table
	logger   log.Logger
}

type options struct {
	names  *kind.Table
	logger log.Logger
}

// Option configures a Visitor.
type Option func(*options)

// WithNames sets the table used to name kinds in log records and errors.
func WithNames(names *kind.Table) Option {
	return func(o *options) {
		o.names = names
	}
}

// WithLogger sets the logger used for trace output.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New returns a Visitor with no handlers and a new [Scope] holding scope.
func New[S any](scope S, opts ...Option) *Visitor[S] {
	return NewShared(NewScope(scope), opts...)
}

// NewShared returns a Visitor with no handlers that shares scope with any
// other visitor constructed from it.
func NewShared[S any](scope *Scope[S], opts ...Option) *Visitor[S] {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return &Visitor[S]{
		handlers: make(map[kind.Kind]Handler[S]),
		scope:    scope,
		names:    o.names,
		logger:   o.logger,
	}
}

// Register installs h as the handler for k, replacing any handler already
// registered for k. A nil h removes the handler.
func (v *Visitor[S]) Register(k kind.Kind, h Handler[S]) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if h == nil {
		delete(v.handlers, k)

		return
	}

	v.handlers[k] = h
}

// Registered reports whether a handler is installed for k.
func (v *Visitor[S]) Registered(k kind.Kind) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	_, ok := v.handlers[k]

	return ok
}

// Kinds returns the registered kinds in ascending order.
func (v *Visitor[S]) Kinds() iter.Seq[kind.Kind] {
	v.mu.RLock()
	keys := slices.Sorted(maps.Keys(v.handlers))
	v.mu.RUnlock()

	return slices.Values(keys)
}

// Scope returns the scope shared by v's handlers.
func (v *Visitor[S]) Scope() *Scope[S] { return v.scope }

// Visit calls the handler registered for n's kind and returns its result.
// It fails with an [*Error] if no handler is registered, and with an error
// wrapping [pkg.ErrVisit] if n is nil.
func (v *Visitor[S]) Visit(n *ast.Node) (Result, error) {
	if n == nil {
		return Result{}, pkg.ErrVisit.Wrapf("nil node")
	}

	v.mu.RLock()
	h, ok := v.handlers[n.Kind]
	v.mu.RUnlock()

	if !ok {
		return Result{}, &Error{Kind: n.Kind, Label: n.Label, names: v.names}
	}

	v.logger.Trace("visit",
		slog.String("kind", v.format(n.Kind)),
		slog.String("label", n.Label),
		slog.Int("children", n.Len()),
	)

	return h(v, n)
}

// VisitChildren visits each child of n in order and collects the results in
// a compound result. The first failure stops the traversal.
func (v *Visitor[S]) VisitChildren(n *ast.Node) (Result, error) {
	compound := Compound()

	for _, child := range n.Children {
		r, err := v.Visit(child)
		if err != nil {
			return Result{}, err
		}

		// Append cannot fail on a compound result.
		_ = compound.Append(r)
	}

	return compound, nil
}

func (v *Visitor[S]) format(k kind.Kind) string {
	if v.names != nil {
		return v.names.Format(k)
	}

	return k.String()
}
