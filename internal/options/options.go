// Package options implements the generic functional-option pattern
// shared by the configurable entry points of the library.
package options

// Option configures a value of type T and may reject the setting.
type Option[T any] func(T) error

// NoError adapts a setter that cannot fail into an Option.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies opts to target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}
