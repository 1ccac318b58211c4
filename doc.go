// Package seqz provides a small, type-safe container for fluent numeric
// sequence transformations in Go.
//
// # Overview
//
// seqz wraps an ordered sequence of numbers in a Container that exposes
// chainable transformation operations (Add, Multiply, FilterGreaterThan,
// Sort) and result extraction (Values). Every transformation mutates the
// container in place and returns the same instance, so operations compose
// fluently without intermediate variables. Type safety comes from Go
// generics: Container[T] accepts any integer or float element type via the
// Number constraint, and non-numeric input is unrepresentable.
//
// # Core Concepts
//
//   - Container[T]: the only entity — a named, internally synchronized
//     wrapper around a sequence of numbers
//   - Immediate operations: mutate and return the container synchronously
//   - Suspending variants: the same operations prefixed with a clock-driven
//     wait (AddAsync, MultiplyAsync, FilterGreaterThanAsync, ValuesAsync,
//     NewDelayed), useful for modeling deferred completion in tests and
//     demonstrations
//
// Suspending variants take a context and a delay. The delay is a fixed
// minimum interval before the operation resumes, never a deadline, and has
// no effect on the produced values: a suspending chain always yields the
// same result as the immediate chain from the same starting state. The
// only error path is context cancellation during a wait. Sort is always
// immediate, even inside a suspending chain.
//
// # Usage Example
//
//	scores := seqz.New("scores", 5, 10, 15, 20, 25)
//	defer scores.Close()
//
//	result := scores.
//	    Add(5).
//	    Multiply(2).
//	    FilterGreaterThan(35).
//	    Sort(false).
//	    Values() // [60 50 40]
//
// And the suspending form of the same chain:
//
//	scores, err := seqz.NewDelayed[int](ctx, "scores", 200*time.Millisecond, 1, 2, 3)
//	if err != nil {
//	    return err
//	}
//	if _, err = scores.AddAsync(ctx, 5, 100*time.Millisecond); err != nil {
//	    return err
//	}
//	if _, err = scores.MultiplyAsync(ctx, 2, 100*time.Millisecond); err != nil {
//	    return err
//	}
//	result, err := scores.ValuesAsync(ctx, 100*time.Millisecond) // [12 14 16]
//
// # Isolation Guarantees
//
// Containers never share sequence storage: construction copies the input,
// Values returns a fresh copy, and Clone produces a fully independent
// instance. Independent containers run their chains concurrently with no
// coordination. A chain on a single container is inherently sequential —
// issue the next call only after the previous one returns or resumes.
//
// # Observability
//
// Each container carries its own metrics registry (metricz), tracer
// (tracez), and typed event hooks (hookz); suspension waits run through an
// injectable clock (clockz) so tests can advance time deterministically.
// See Container for the full key reference.
package seqz
