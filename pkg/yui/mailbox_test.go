package yui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMailboxHoldsOneEvent(t *testing.T) {
	m := newMailbox()
	assert.Equal(t, 0, m.len())

	first := NewGenericEvent("first")
	second := NewGenericEvent("second")
	assert.False(t, m.post(first))
	assert.True(t, m.post(second))
	assert.Equal(t, 1, m.len())

	assert.Same(t, second, m.take())
	assert.Nil(t, m.take())
	assert.Equal(t, 0, m.len())
}

func TestMailboxWait(t *testing.T) {
	m := newMailbox()
	wake := make(chan struct{}, 1)

	start := time.Now()
	assert.False(t, m.wait(start.Add(10*time.Millisecond), wake))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)

	go func() {
		time.Sleep(5 * time.Millisecond)
		m.post(NewCancelEvent())
	}()
	assert.True(t, m.wait(time.Time{}, wake))

	m.take()
	wake <- struct{}{}
	assert.False(t, m.wait(time.Time{}, wake), "woken without an event")
}

func TestEventSerialsIncrease(t *testing.T) {
	a := NewGenericEvent("a")
	b := NewGenericEvent("b")
	assert.Equal(t, -1, a.Column)
	assert.True(t, a.Serial.Compare(b.Serial) <= 0)
}
