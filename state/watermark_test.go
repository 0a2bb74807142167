package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWatermarkStateEarliest(t *testing.T) {
	in := ForKey("u1")
	watermark, err := Watermark(in, WindowNamespace(0, 100),
		WatermarkDescriptor{Key: "w", OutputTimeFn: EarliestTime})
	assert.Nil(t, err)
	assert.True(t, watermark.Empty())
	_, ok := watermark.Hold()
	assert.False(t, ok)

	t1 := time.UnixMilli(2000)
	t2 := time.UnixMilli(1000)
	watermark.Add(t1)
	watermark.Add(t2)
	hold, ok := watermark.Hold()
	assert.True(t, ok)
	assert.Equal(t, t2, hold)

	watermark.Clear()
	assert.True(t, watermark.Empty())
	_, ok = watermark.Hold()
	assert.False(t, ok)

	//order does not matter
	watermark.Add(t2)
	watermark.Add(t1)
	hold, _ = watermark.Hold()
	assert.Equal(t, t2, hold)
}

func TestWatermarkStateLatest(t *testing.T) {
	in := ForKey("u1")
	watermark, err := Watermark(in, GlobalNamespace(),
		WatermarkDescriptor{Key: "w", OutputTimeFn: LatestTime})
	assert.Nil(t, err)

	watermark.Add(time.UnixMilli(1000))
	watermark.Add(time.UnixMilli(3000))
	watermark.Add(time.UnixMilli(2000))
	hold, ok := watermark.Hold()
	assert.True(t, ok)
	assert.Equal(t, time.UnixMilli(3000), hold)
}

func TestWatermarkStateRequiresFn(t *testing.T) {
	in := ForKey("u1")
	_, err := Watermark(in, GlobalNamespace(), WatermarkDescriptor{Key: "w"})
	assert.NotNil(t, err)
}
