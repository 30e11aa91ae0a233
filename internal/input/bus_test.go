package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestBus_SubscribeRelease(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := NewBus()
	var got []Key
	sub := bus.Subscribe(func(k Key) bool {
		got = append(got, k)
		return true
	})
	assert.Equal(t, 1, bus.Len())

	assert.True(t, bus.Publish(KeyNext))
	sub.Release()
	assert.Equal(t, 0, bus.Len())
	assert.False(t, bus.Publish(KeyNext))
	assert.Equal(t, []Key{KeyNext}, got)

	// Second release is a no-op.
	sub.Release()
	assert.Equal(t, 0, bus.Len())
}

func TestBus_ReleaseOnlyOwnSubscription(t *testing.T) {
	bus := NewBus()
	a := bus.Subscribe(func(Key) bool { return false })
	var bGot int
	bus.Subscribe(func(Key) bool { bGot++; return true })

	a.Release()
	assert.Equal(t, 1, bus.Len())
	assert.True(t, bus.Publish(KeyLast))
	assert.Equal(t, 1, bGot)
}

func TestBus_FirstConsumerWins(t *testing.T) {
	bus := NewBus()
	var second bool
	bus.Subscribe(func(Key) bool { return true })
	bus.Subscribe(func(Key) bool { second = true; return true })

	bus.Publish(KeyFirst)
	assert.False(t, second)
}

func TestBus_RepeatedMountsDoNotAccumulate(t *testing.T) {
	bus := NewBus()
	for i := 0; i < 50; i++ {
		s := bus.Subscribe(func(Key) bool { return true })
		s.Release()
	}
	assert.Equal(t, 0, bus.Len())
}

func TestFromTea(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want Key
		ok   bool
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, KeyNext, true},
		{tea.KeyMsg{Type: tea.KeySpace}, KeyNext, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, KeyPrevious, true},
		{tea.KeyMsg{Type: tea.KeyHome}, KeyFirst, true},
		{tea.KeyMsg{Type: tea.KeyEnd}, KeyLast, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, KeyLast, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, KeyNone, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, KeyNone, false},
	}
	for _, tt := range tests {
		got, ok := FromTea(tt.msg)
		assert.Equal(t, tt.want, got, tt.msg.String())
		assert.Equal(t, tt.ok, ok, tt.msg.String())
	}
}
