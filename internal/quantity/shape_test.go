package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements(), "scalar shape")
	assert.Equal(t, 6, Shape{2, 3}.NumElements())
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 3}.Validate())
	require.Error(t, Shape{2, 0}.Validate())
	require.Error(t, Shape{-1}.Validate())
}

func TestShapeEqual(t *testing.T) {
	assert.True(t, Shape{2, 3}.Equal(Shape{2, 3}))
	assert.False(t, Shape{2, 3}.Equal(Shape{3, 2}))
	assert.False(t, Shape{2, 3}.Equal(Shape{2, 3, 1}))
}

func TestComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{5}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{name: "same shape", a: Shape{3, 5}, b: Shape{3, 5}, want: Shape{3, 5}},
		{name: "row broadcast", a: Shape{3, 1}, b: Shape{3, 5}, want: Shape{3, 5}, broadcast: true},
		{name: "rank extension", a: Shape{5}, b: Shape{3, 5}, want: Shape{3, 5}},
		{name: "scalar", a: Shape{}, b: Shape{2, 2}, want: Shape{2, 2}},
		{name: "incompatible", a: Shape{3, 4}, b: Shape{3, 5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, broadcast, err := BroadcastShapes(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.broadcast, broadcast)
		})
	}
}

func TestBroadcastIndex(t *testing.T) {
	out := Shape{2, 3}

	// Input (1, 3): the row repeats.
	in := Shape{1, 3}
	for i := 0; i < 6; i++ {
		assert.Equal(t, i%3, BroadcastIndex(i, out, in), "flat index %d", i)
	}

	// Input (2, 1): the column repeats.
	in = Shape{2, 1}
	for i := 0; i < 6; i++ {
		assert.Equal(t, i/3, BroadcastIndex(i, out, in), "flat index %d", i)
	}

	// Scalar input always maps to 0.
	for i := 0; i < 6; i++ {
		assert.Equal(t, 0, BroadcastIndex(i, out, Shape{}))
	}
}
