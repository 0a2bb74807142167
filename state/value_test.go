package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueState(t *testing.T) {
	in := ForKey("u1")
	value, err := Value(in, GlobalNamespace(), ValueDescriptor[string]{Key: "v"})
	assert.Nil(t, err)
	assert.True(t, value.Empty())
	_, ok := value.Value()
	assert.False(t, ok)

	value.Update("tt")
	v, ok := value.Value()
	assert.True(t, ok)
	assert.Equal(t, "tt", v)
	assert.False(t, value.Empty())

	value.Update("ttt")
	v, _ = value.Value()
	assert.Equal(t, "ttt", v)

	value.Clear()
	assert.True(t, value.Empty())
	v, ok = value.Value()
	assert.False(t, ok)
	assert.Equal(t, "", v)

	value.Update("t")
	assert.False(t, value.Empty())
}
