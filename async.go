package seqz

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"time"
)

// AddAsync waits out the given delay, then performs the identical mutation
// Add would perform and returns the same container. A non-positive delay
// means DefaultDelay. The delay is a fixed minimum interval before the
// chain resumes, not a deadline; the only error path is ctx cancellation
// during the wait, in which case the sequence is left untouched.
func (c *Container[T]) AddAsync(ctx context.Context, value T, delay time.Duration) (*Container[T], error) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if err := c.wait(ctx, OpAdd, delay); err != nil {
		return nil, err
	}
	return c.apply(ctx, OpAdd, delay, func(values []T) []T {
		for i := range values {
			values[i] += value
		}
		return values
	}), nil
}

// MultiplyAsync is the suspending variant of Multiply.
func (c *Container[T]) MultiplyAsync(ctx context.Context, value T, delay time.Duration) (*Container[T], error) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if err := c.wait(ctx, OpMultiply, delay); err != nil {
		return nil, err
	}
	return c.apply(ctx, OpMultiply, delay, func(values []T) []T {
		for i := range values {
			values[i] *= value
		}
		return values
	}), nil
}

// FilterGreaterThanAsync is the suspending variant of FilterGreaterThan.
func (c *Container[T]) FilterGreaterThanAsync(ctx context.Context, threshold T, delay time.Duration) (*Container[T], error) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if err := c.wait(ctx, OpFilterGreaterThan, delay); err != nil {
		return nil, err
	}
	return c.apply(ctx, OpFilterGreaterThan, delay, func(values []T) []T {
		return slices.DeleteFunc(values, func(e T) bool {
			return e <= threshold
		})
	}), nil
}

// ValuesAsync waits out the given delay, then returns a defensive copy of
// the sequence exactly as Values would. A non-positive delay means
// DefaultDelay.
func (c *Container[T]) ValuesAsync(ctx context.Context, delay time.Duration) ([]T, error) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if err := c.wait(ctx, OpValues, delay); err != nil {
		return nil, err
	}
	return c.Values(), nil
}

// wait blocks until the container's clock has elapsed the delay, yielding
// control at a single suspension point. Once the wait begins it always
// runs to completion unless ctx is canceled first.
func (c *Container[T]) wait(ctx context.Context, op Name, delay time.Duration) *Error[T] {
	c.mu.RLock()
	clock := c.getClock()
	c.mu.RUnlock()

	ctx, span := c.tracer.StartSpan(ctx, ContainerDelaySpan)
	defer span.Finish()
	span.SetTag(ContainerTagName, string(c.name))
	span.SetTag(ContainerTagOp, string(op))
	span.SetTag(ContainerTagDelayMs, strconv.FormatInt(delay.Milliseconds(), 10))

	start := time.Now()
	select {
	case <-clock.After(delay):
		span.SetTag(ContainerTagSuccess, "true")
		return nil
	case <-ctx.Done():
		span.SetTag(ContainerTagSuccess, "false")
		c.mu.RLock()
		snapshot := slices.Clone(c.values)
		c.mu.RUnlock()
		return &Error[T]{
			Err:       ctx.Err(),
			InputData: snapshot,
			Container: c.name,
			Op:        op,
			Duration:  time.Since(start),
			Timeout:   errors.Is(ctx.Err(), context.DeadlineExceeded),
			Canceled:  errors.Is(ctx.Err(), context.Canceled),
			Timestamp: time.Now(),
		}
	}
}
