package observe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	N     int
	Items []string
}

func cloneCounter(c counter) counter {
	out := c
	out.Items = append([]string(nil), c.Items...)
	return out
}

func TestValue_UpdateNotifiesSubscribers(t *testing.T) {
	v := NewValue(counter{}, cloneCounter)

	var seen []int
	unsubscribe := v.Subscribe(func(c counter) {
		seen = append(seen, c.N)
	})

	v.Update(func(c *counter) { c.N = 1 })
	v.Update(func(c *counter) { c.N = 2 })
	unsubscribe()
	v.Update(func(c *counter) { c.N = 3 })

	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, 3, v.Get().N)
}

func TestValue_GetReturnsCopy(t *testing.T) {
	v := NewValue(counter{Items: []string{"a"}}, cloneCounter)

	got := v.Get()
	got.Items[0] = "mutated"

	require.Len(t, v.Get().Items, 1)
	assert.Equal(t, "a", v.Get().Items[0])
}

func TestValue_UnsubscribeIsIdempotent(t *testing.T) {
	v := NewValue(0, nil)

	calls := 0
	unsubscribe := v.Subscribe(func(int) { calls++ })
	unsubscribe()
	unsubscribe()

	v.Update(func(n *int) { *n = 5 })

	assert.Equal(t, 0, calls)
	assert.Equal(t, 5, v.Get())
}
