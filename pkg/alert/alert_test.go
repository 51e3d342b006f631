package alert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaiseAndActive(t *testing.T) {
	n := NewNotifier(time.Minute)

	assert.Nil(t, n.Active())

	n.Raise("OUT_OF_STOCK", "Burger is out of stock")

	a := n.Active()
	require.NotNil(t, a)
	assert.Equal(t, "OUT_OF_STOCK", a.Kind)
	assert.Equal(t, "Burger is out of stock", a.Message)
	assert.WithinDuration(t, time.Now(), a.RaisedAt, time.Second)
}

func TestRaiseReplacesActiveAlert(t *testing.T) {
	n := NewNotifier(time.Minute)

	n.Raise("OUT_OF_STOCK", "first")
	n.Raise("INSUFFICIENT_STOCK", "second")

	a := n.Active()
	require.NotNil(t, a)
	assert.Equal(t, "second", a.Message)
}

func TestAlertExpiresAfterTTL(t *testing.T) {
	n := NewNotifier(20 * time.Millisecond)

	n.Raise("OUT_OF_STOCK", "transient")
	require.NotNil(t, n.Active())

	assert.Eventually(t, func() bool {
		return n.Active() == nil
	}, time.Second, 5*time.Millisecond)
}

func TestRaiseRestartsExpiryTimer(t *testing.T) {
	n := NewNotifier(60 * time.Millisecond)

	n.Raise("OUT_OF_STOCK", "first")
	time.Sleep(40 * time.Millisecond)
	n.Raise("OUT_OF_STOCK", "second")
	time.Sleep(40 * time.Millisecond)

	// 80ms after the first raise, but only 40ms after the second; the
	// replacement alert must still be visible.
	a := n.Active()
	require.NotNil(t, a)
	assert.Equal(t, "second", a.Message)
}

func TestClearDismissesImmediately(t *testing.T) {
	n := NewNotifier(time.Minute)

	n.Raise("OUT_OF_STOCK", "x")
	n.Clear()

	assert.Nil(t, n.Active())
}

func TestActiveReturnsCopy(t *testing.T) {
	n := NewNotifier(time.Minute)
	n.Raise("OUT_OF_STOCK", "x")

	a := n.Active()
	a.Message = "mutated"

	assert.Equal(t, "x", n.Active().Message)
}
