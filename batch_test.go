package signals

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatch(t *testing.T) {
	t.Run("coalesces multiple writes", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)

		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))
		})

		Batch(func() {
			count.Set(10)
			count.Set(20)
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"changed 0",
			"updated",
			"changed 20",
		}, log)
	})

	t.Run("coalesces across signals", func(t *testing.T) {
		count := NewSignal(0)
		double := NewSignal(0)

		runs := 0
		NewEffect(func() {
			count.Get()
			double.Get()
			runs++
		})

		Batch(func() {
			count.Set(10)
			double.Set(20)
		})

		assert.Equal(t, 2, runs)
	})

	t.Run("writes are visible inside the batch", func(t *testing.T) {
		count := NewSignal(1)
		double := NewComputed(func() int { return count.Get() * 2 })

		got := []int{}
		double.Subscribe(func(v int) {
			got = append(got, v)
		})

		Batch(func() {
			count.Set(2)
			assert.Equal(t, 2, count.Get())
			assert.Equal(t, 4, double.Get()) // read-your-writes

			count.Set(3)
		})

		// one settled delivery, not one per write
		assert.Equal(t, []int{6}, got)
	})

	t.Run("nested batches flush once", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)

		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))
		})

		Batch(func() {
			count.Set(10)
			Batch(func() {
				count.Set(20)
			})
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"changed 0",
			"updated",
			"changed 20",
		}, log)
	})

	t.Run("returns the callback's value", func(t *testing.T) {
		count := NewSignal(1)

		got := BatchValue(func() int {
			count.Set(2)
			return count.Get() * 10
		})

		assert.Equal(t, 20, got)
	})

	t.Run("flush forces settlement", func(t *testing.T) {
		count := NewSignal(0)

		runs := 0
		NewEffect(func() {
			count.Get()
			runs++
		})

		Batch(func() {
			count.Set(1)
			assert.Equal(t, 1, runs)

			Flush()
			assert.Equal(t, 2, runs)
		})

		// nothing left to settle at batch exit
		assert.Equal(t, 2, runs)

		Flush() // no pending work: a no-op
		assert.Equal(t, 2, runs)
	})
}
