package seqz

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Name identifies containers and operations in events, traces, and errors.
type Name = string

// Number constrains container elements to Go's numeric kinds.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Default suspension durations, used when a caller passes a non-positive
// delay to a suspending operation.
const (
	DefaultDelay       = 100 * time.Millisecond
	DefaultCreateDelay = 200 * time.Millisecond
)

// Operation names used in events, spans, and errors.
const (
	OpCreate            = Name("create")
	OpAdd               = Name("add")
	OpMultiply          = Name("multiply")
	OpFilterGreaterThan = Name("filter_greater_than")
	OpSort              = Name("sort")
	OpValues            = Name("values")
)

// Metric keys for Container observability.
const (
	ContainerTransformsTotal = metricz.Key("container.transforms.total")
	ContainerResultsTotal    = metricz.Key("container.results.total")
	ContainerDelayedTotal    = metricz.Key("container.delayed.total")
	ContainerLength          = metricz.Key("container.length")
)

// Span names for Container operations.
const (
	ContainerTransformSpan = tracez.Key("container.transform")
	ContainerDelaySpan     = tracez.Key("container.delay")
)

// Span tags for Container operations.
const (
	ContainerTagName    = tracez.Tag("container.name")
	ContainerTagOp      = tracez.Tag("container.op")
	ContainerTagLength  = tracez.Tag("container.length")
	ContainerTagDelayMs = tracez.Tag("container.delay_ms")
	ContainerTagSuccess = tracez.Tag("container.success")

	// Hook event keys.
	ContainerEventTransform = hookz.Key("container.transform")
	ContainerEventResult    = hookz.Key("container.result")
)

// ContainerEvent represents a container operation event.
// This is emitted via hookz whenever a transformation mutates the sequence
// or a result is read, allowing external systems to observe chain progress.
type ContainerEvent struct {
	Container Name          // Container name
	Op        Name          // Operation that ran
	Delayed   bool          // Whether the suspending variant ran
	Delay     time.Duration // Suspension duration (zero for immediate variants)
	LenBefore int           // Sequence length before the operation
	LenAfter  int           // Sequence length after the operation
	Timestamp time.Time     // When the event occurred
}

// Container owns an ordered sequence of numbers and exposes chainable
// transformation operations over it. Every transformation mutates the
// internal sequence in place and returns the same container, so calls
// compose fluently:
//
//	result := seqz.New("scores", 1, 2, 3).
//	    Add(5).
//	    Multiply(2).
//	    Values() // [12 14 16]
//
// Each transformation also has a suspending variant (AddAsync,
// MultiplyAsync, FilterGreaterThanAsync, ValuesAsync) that waits out a
// caller-specified delay before performing the identical mutation. The
// delay is a fixed minimum interval driven by the container's clock, never
// a deadline; the result of a suspending chain is always identical to the
// immediate chain with the same starting state. Sort is always immediate.
//
// The container never shares sequence storage: construction and Values
// both copy, and Clone produces a fully independent instance. Containers
// are internally synchronized, but a chain on a single instance is
// inherently ordered — issue the next call only after the previous one
// returns or resumes.
//
// # Observability
//
// Container provides observability through metrics, tracing, and events:
//
// Metrics:
//   - container.transforms.total: Counter of transformations applied
//   - container.results.total: Counter of result extractions
//   - container.delayed.total: Counter of suspending operations completed
//   - container.length: Gauge of current sequence length
//
// Traces:
//   - container.transform: Span for each transformation
//   - container.delay: Span for each suspension wait
//
// Events (via hooks):
//   - container.transform: Fired when a transformation mutates the sequence
//   - container.result: Fired when a result copy is read
//
// Example with hooks:
//
//	scores := seqz.New("scores", 5, 10, 15, 20, 25)
//
//	scores.OnTransform(func(ctx context.Context, event seqz.ContainerEvent) error {
//	    log.Printf("%s: %s %d -> %d elements", event.Container, event.Op,
//	        event.LenBefore, event.LenAfter)
//	    return nil
//	})
type Container[T Number] struct {
	values []T
	clock  clockz.Clock
	name   Name
	mu     sync.RWMutex

	// Observability
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[ContainerEvent]
}

// New creates a Container holding a defensive copy of the given values.
// Mutating the caller's slice afterward has no effect on the container.
func New[T Number](name Name, values ...T) *Container[T] {
	registry := metricz.New()

	registry.Counter(ContainerTransformsTotal)
	registry.Counter(ContainerResultsTotal)
	registry.Counter(ContainerDelayedTotal)
	registry.Gauge(ContainerLength)

	return &Container[T]{
		name:    name,
		values:  slices.Clone(values),
		metrics: registry,
		tracer:  tracez.New(),
		hooks:   hookz.New[ContainerEvent](),
	}
}

// NewDelayed creates a Container after waiting out the given delay,
// modeling deferred or remote initialization. A non-positive delay means
// DefaultCreateDelay. The returned container is identical to what New
// would have produced; the delay affects only completion timing. If ctx
// is canceled during the wait, NewDelayed returns a *Error[T] and no
// container.
func NewDelayed[T Number](ctx context.Context, name Name, delay time.Duration, values ...T) (*Container[T], error) {
	c := New(name, values...)
	if delay <= 0 {
		delay = DefaultCreateDelay
	}
	if err := c.wait(ctx, OpCreate, delay); err != nil {
		_ = c.Close() //nolint:errcheck
		return nil, err
	}
	return c, nil
}

// Add replaces each element e with e + value.
func (c *Container[T]) Add(value T) *Container[T] {
	return c.apply(context.Background(), OpAdd, 0, func(values []T) []T {
		for i := range values {
			values[i] += value
		}
		return values
	})
}

// Multiply replaces each element e with e * value.
func (c *Container[T]) Multiply(value T) *Container[T] {
	return c.apply(context.Background(), OpMultiply, 0, func(values []T) []T {
		for i := range values {
			values[i] *= value
		}
		return values
	})
}

// FilterGreaterThan retains only elements strictly greater than threshold,
// preserving their relative order.
func (c *Container[T]) FilterGreaterThan(threshold T) *Container[T] {
	return c.apply(context.Background(), OpFilterGreaterThan, 0, func(values []T) []T {
		return slices.DeleteFunc(values, func(e T) bool {
			return e <= threshold
		})
	})
}

// Sort reorders elements numerically, ascending or descending.
// Sort has no suspending variant; it is always immediate, even in the
// middle of a suspending chain.
func (c *Container[T]) Sort(ascending bool) *Container[T] {
	return c.apply(context.Background(), OpSort, 0, func(values []T) []T {
		if ascending {
			slices.Sort(values)
		} else {
			slices.SortFunc(values, func(a, b T) int {
				return cmp.Compare(b, a)
			})
		}
		return values
	})
}

// apply runs a transformation under the write lock and records it.
// The delay parameter is zero for immediate variants and carries the
// completed suspension duration for suspending ones.
func (c *Container[T]) apply(ctx context.Context, op Name, delay time.Duration, fn func([]T) []T) *Container[T] {
	ctx, span := c.tracer.StartSpan(ctx, ContainerTransformSpan)
	defer span.Finish()
	span.SetTag(ContainerTagName, string(c.name))
	span.SetTag(ContainerTagOp, string(op))

	c.mu.Lock()
	before := len(c.values)
	c.values = fn(c.values)
	after := len(c.values)
	c.mu.Unlock()

	c.metrics.Counter(ContainerTransformsTotal).Inc()
	if delay > 0 {
		c.metrics.Counter(ContainerDelayedTotal).Inc()
	}
	c.metrics.Gauge(ContainerLength).Set(float64(after))
	span.SetTag(ContainerTagLength, strconv.Itoa(after))
	span.SetTag(ContainerTagSuccess, "true")

	_ = c.hooks.Emit(ctx, ContainerEventTransform, ContainerEvent{ //nolint:errcheck
		Container: c.name,
		Op:        op,
		Delayed:   delay > 0,
		Delay:     delay,
		LenBefore: before,
		LenAfter:  after,
		Timestamp: time.Now(),
	})

	return c
}

// Values returns a defensive copy of the current sequence. The container
// is never mutated by reads, and mutating the returned slice has no
// effect on the container.
func (c *Container[T]) Values() []T {
	c.mu.RLock()
	out := slices.Clone(c.values)
	c.mu.RUnlock()

	c.metrics.Counter(ContainerResultsTotal).Inc()
	_ = c.hooks.Emit(context.Background(), ContainerEventResult, ContainerEvent{ //nolint:errcheck
		Container: c.name,
		Op:        OpValues,
		LenBefore: len(out),
		LenAfter:  len(out),
		Timestamp: time.Now(),
	})

	return out
}

// Len returns the current number of elements.
func (c *Container[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}

// Clone returns a new container with a copy of the current sequence.
// The clone shares no storage with the original; it inherits the clock
// but carries fresh observability state.
func (c *Container[T]) Clone() *Container[T] {
	c.mu.RLock()
	values := slices.Clone(c.values)
	clock := c.clock
	c.mu.RUnlock()

	clone := New(c.name, values...)
	clone.clock = clock
	return clone
}

// Name returns the name of this container.
func (c *Container[T]) Name() Name {
	return c.name
}

// String returns a compact debugging representation.
func (c *Container[T]) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fmt.Sprintf("Container[%s]%v", c.name, c.values)
}

// OnTransform registers a handler for transformation events.
// The handler is called asynchronously after each mutation completes.
func (c *Container[T]) OnTransform(handler func(context.Context, ContainerEvent) error) error {
	_, err := c.hooks.Hook(ContainerEventTransform, handler)
	return err
}

// OnResult registers a handler for result extraction events.
// The handler is called asynchronously after each read of Values.
func (c *Container[T]) OnResult(handler func(context.Context, ContainerEvent) error) error {
	_, err := c.hooks.Hook(ContainerEventResult, handler)
	return err
}

// Metrics returns the metrics registry for this container.
func (c *Container[T]) Metrics() *metricz.Registry {
	return c.metrics
}

// Tracer returns the tracer for this container.
func (c *Container[T]) Tracer() *tracez.Tracer {
	return c.tracer
}

// Close gracefully shuts down observability components.
func (c *Container[T]) Close() error {
	if c.tracer != nil {
		c.tracer.Close()
	}
	c.hooks.Close()
	return nil
}

// WithClock sets a custom clock for testing.
func (c *Container[T]) WithClock(clock clockz.Clock) *Container[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock = clock
	return c
}

// getClock returns the clock to use.
func (c *Container[T]) getClock() clockz.Clock {
	if c.clock == nil {
		return clockz.RealClock
	}
	return c.clock
}
