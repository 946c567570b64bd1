package future

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFuture_AwaitReturnsTheFulfilledValue(t *testing.T) {
	promise, future := Create[int]()

	go promise.Fulfill(42)
	require.Equal(t, 42, future.Await())

	// Await is repeatable.
	require.Equal(t, 42, future.Await())
}

func TestFuture_OnlyTheFirstFulfillmentCounts(t *testing.T) {
	promise, future := Create[string]()
	promise.Fulfill("first")
	promise.Fulfill("second")
	require.Equal(t, "first", future.Await())
}

func TestFuture_ManyAwaitersSeeTheSameValue(t *testing.T) {
	promise, future := Create[int]()

	results := make(chan int, 10)
	for i := 0; i < 10; i++ {
		go func() {
			results <- future.Await()
		}()
	}
	promise.Fulfill(7)
	for i := 0; i < 10; i++ {
		require.Equal(t, 7, <-results)
	}
}
