package signals

import "reflect"

// Option configures a Signal or Computed at creation.
type Option[T any] func(*options[T])

type options[T any] struct {
	equals func(a, b T) bool
}

// WithEquals sets the equality rule used to decide whether a write or a
// recomputation changed the value; equal values notify nobody. The default
// is same-value equality for common comparable kinds with a
// reflect.DeepEqual fallback.
func WithEquals[T any](fn func(a, b T) bool) Option[T] {
	return func(o *options[T]) { o.equals = fn }
}

func buildOptions[T any](opts []Option[T]) options[T] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// equalsAny adapts the typed equality rule to the type-erased runtime.
func (o options[T]) equalsAny() func(a, b any) bool {
	eq := o.equals
	if eq == nil {
		eq = defaultEquals[T]
	}
	return func(a, b any) bool { return eq(as[T](a), as[T](b)) }
}

// defaultEquals compares with == for common comparable kinds and falls back
// to reflect.DeepEqual for slices, maps, structs and the rest.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		bv, ok := any(b).(int)
		return ok && av == bv
	case int32:
		bv, ok := any(b).(int32)
		return ok && av == bv
	case int64:
		bv, ok := any(b).(int64)
		return ok && av == bv
	case uint:
		bv, ok := any(b).(uint)
		return ok && av == bv
	case uint64:
		bv, ok := any(b).(uint64)
		return ok && av == bv
	case float32:
		bv, ok := any(b).(float32)
		return ok && av == bv
	case float64:
		bv, ok := any(b).(float64)
		return ok && av == bv
	case string:
		bv, ok := any(b).(string)
		return ok && av == bv
	case bool:
		bv, ok := any(b).(bool)
		return ok && av == bv
	default:
		return reflect.DeepEqual(a, b)
	}
}
