package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparkline_ChangePercent(t *testing.T) {
	s := NewSparkline(20).SetData([]float64{100, 105, 110})
	assert.InDelta(t, 10.0, s.ChangePercent(), 0.001)

	assert.Equal(t, 0.0, NewSparkline(20).ChangePercent())
	assert.Equal(t, 0.0, NewSparkline(20).SetData([]float64{0, 5}).ChangePercent())
}

func TestSparkline_LastAndLen(t *testing.T) {
	s := NewSparkline(20).SetData([]float64{1, 2, 3})
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3.0, s.Last())
	assert.Equal(t, 0.0, NewSparkline(20).Last())
}

func TestSparkline_ResamplesLongSeries(t *testing.T) {
	data := make([]float64, 100)
	for i := range data {
		data[i] = float64(i)
	}
	out := resample(data, 10)
	assert.Len(t, out, 10)
	assert.Equal(t, 0.0, out[0])
	assert.Equal(t, 99.0, out[9])
}

func TestSparkline_ShortSeriesPassesThrough(t *testing.T) {
	data := []float64{1, 2, 3}
	assert.Equal(t, data, resample(data, 10))
}

func TestSparkline_FlatSeriesRenders(t *testing.T) {
	s := NewSparkline(5).SetData([]float64{7, 7, 7})
	assert.NotEmpty(t, s.View())
}
