package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBagStateAppendOrder(t *testing.T) {
	in := ForKey("u1")
	bag, err := Bag(in, WindowNamespace(0, 100), BagDescriptor[int]{Key: "b"})
	assert.Nil(t, err)
	assert.True(t, bag.Empty())

	bag.Add(3)
	bag.Add(1)
	bag.Add(2)
	assert.Equal(t, []int{3, 1, 2}, bag.Read())
	assert.False(t, bag.Empty())
}

func TestBagStateStableReads(t *testing.T) {
	in := ForKey("u1")
	bag, _ := Bag(in, GlobalNamespace(), BagDescriptor[int]{Key: "b"})
	bag.Add(1)
	bag.Add(2)

	first := bag.Read()
	second := bag.Read()
	assert.True(t, &first[0] == &second[0])

	//a snapshot never observes later appends
	bag.Add(3)
	assert.Equal(t, []int{1, 2}, first)
	assert.Equal(t, []int{1, 2, 3}, bag.Read())
}

func TestBagStateClearKeepsSnapshots(t *testing.T) {
	in := ForKey("u1")
	bag, _ := Bag(in, WindowNamespace(0, 100), BagDescriptor[int]{Key: "b"})
	bag.Add(3)
	bag.Add(1)
	bag.Add(2)
	snapshot := bag.Read()

	bag.Clear()
	assert.Empty(t, bag.Read())
	assert.True(t, bag.Empty())
	assert.Equal(t, []int{3, 1, 2}, snapshot)

	bag.Add(4)
	assert.Equal(t, []int{4}, bag.Read())
	assert.Equal(t, []int{3, 1, 2}, snapshot)
}
