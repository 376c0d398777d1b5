package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputed(t *testing.T) {
	t.Run("derives value from signals", func(t *testing.T) {
		count := NewSignal(1)
		double := NewComputed(func() int { return count.Get() * 2 })
		plustwo := NewComputed(func() int { return double.Get() + 2 })

		assert.Equal(t, 2, double.Get())
		assert.Equal(t, 4, plustwo.Get())

		count.Set(10)
		assert.Equal(t, 20, double.Get())
		assert.Equal(t, 22, plustwo.Get())
	})

	t.Run("cold computed re-evaluates on each read", func(t *testing.T) {
		count := NewSignal(1)

		computes := 0
		double := NewComputed(func() int {
			computes++
			return count.Get() * 2
		})
		assert.Equal(t, 0, computes) // lazy until the first read

		assert.Equal(t, 2, double.Get())
		assert.Equal(t, 2, double.Get())
		assert.Equal(t, 2, computes) // no subscribers: the cache is only a hint

		count.Set(3) // nothing recomputes eagerly either
		assert.Equal(t, 2, computes)
		assert.Equal(t, 6, double.Get())
		assert.Equal(t, 3, computes)
	})

	t.Run("hot computed caches between reads", func(t *testing.T) {
		count := NewSignal(1)

		computes := 0
		double := NewComputed(func() int {
			computes++
			return count.Get() * 2
		})

		got := []int{}
		unsubscribe := double.Subscribe(func(v int) {
			got = append(got, v)
		})
		assert.Equal(t, 1, computes) // going hot evaluates eagerly

		assert.Equal(t, 2, double.Get())
		assert.Equal(t, 2, double.Get())
		assert.Equal(t, 1, computes)

		count.Set(2)
		assert.Equal(t, 2, computes)
		assert.Equal(t, []int{4}, got)

		unsubscribe()

		count.Set(3) // cold again: no eager recompute
		assert.Equal(t, 2, computes)
		assert.Equal(t, []int{4}, got)
		assert.Equal(t, 6, double.Get())
		assert.Equal(t, 3, computes)
	})

	t.Run("does not propagate when value unchanged", func(t *testing.T) {
		count := NewSignal(1)

		aRuns := 0
		a := NewComputed(func() int {
			aRuns++
			return count.Get() * 0 // always 0
		})

		bRuns := 0
		b := NewComputed(func() int {
			bRuns++
			return a.Get() + 1
		})

		effectRuns := 0
		NewEffect(func() {
			b.Get()
			effectRuns++
		})

		count.Set(10) // recomputes a, whose value did not change

		assert.Equal(t, 2, aRuns)
		assert.Equal(t, 1, bRuns)
		assert.Equal(t, 1, effectRuns)
	})

	t.Run("custom equality cuts propagation", func(t *testing.T) {
		count := NewSignal(1)
		parity := NewComputed(func() int { return count.Get() }, WithEquals(func(a, b int) bool {
			return a%2 == b%2
		}))

		runs := 0
		NewEffect(func() {
			parity.Get()
			runs++
		})

		count.Set(3) // same parity: no notification
		assert.Equal(t, 1, runs)

		count.Set(4)
		assert.Equal(t, 2, runs)
	})

	t.Run("drops stale dependencies between runs", func(t *testing.T) {
		useFirst := NewSignal(true)
		first := NewSignal("a")
		second := NewSignal("b")

		computes := 0
		pick := NewComputed(func() string {
			computes++
			if useFirst.Get() {
				return first.Get()
			}
			return second.Get()
		})

		unsubscribe := pick.Subscribe(func(string) {})
		defer unsubscribe()
		assert.Equal(t, 1, computes)

		second.Set("b2") // not a dependency of the last run
		assert.Equal(t, 1, computes)

		useFirst.Set(false)
		assert.Equal(t, 2, computes)
		assert.Equal(t, "b2", pick.Get())

		first.Set("a2") // dropped edge: no recompute
		assert.Equal(t, 2, computes)
	})

	t.Run("diamond recomputes once per change", func(t *testing.T) {
		count := NewSignal(1)

		computes := 0
		double := NewComputed(func() int {
			computes++
			return count.Get() * 2
		})

		e1Runs, e2Runs := 0, 0
		NewEffect(func() {
			double.Get()
			e1Runs++
		})
		NewEffect(func() {
			double.Get()
			e2Runs++
		})
		assert.Equal(t, 1, computes)

		count.Set(2)

		assert.Equal(t, 2, computes)
		assert.Equal(t, 2, e1Runs)
		assert.Equal(t, 2, e2Runs)
	})

	t.Run("effect reading a signal and a computed of it runs once", func(t *testing.T) {
		count := NewSignal(1)
		double := NewComputed(func() int { return count.Get() * 2 })

		got := [][2]int{}
		NewEffect(func() {
			got = append(got, [2]int{count.Get(), double.Get()})
		})

		count.Set(2)

		// never observes count and double out of sync
		assert.Equal(t, [][2]int{{1, 2}, {2, 4}}, got)
	})

	t.Run("peek does not subscribe", func(t *testing.T) {
		count := NewSignal(1)
		double := NewComputed(func() int { return count.Get() * 2 })

		runs := 0
		NewEffect(func() {
			double.Peek()
			runs++
		})

		count.Set(2)
		assert.Equal(t, 1, runs)
		assert.Equal(t, 4, double.Peek())
	})

	t.Run("self cycle panics", func(t *testing.T) {
		var loop *Computed[int]
		loop = NewComputed(func() int {
			return loop.Get() + 1
		})

		assert.PanicsWithError(t, ErrCycle.Error(), func() {
			loop.Get()
		})
	})

	t.Run("mutual cycle panics", func(t *testing.T) {
		var a, b *Computed[int]
		a = NewComputed(func() int { return b.Get() + 1 })
		b = NewComputed(func() int { return a.Get() + 1 })

		assert.PanicsWithError(t, ErrCycle.Error(), func() {
			a.Get()
		})
	})
}
