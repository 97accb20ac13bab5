package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewSource(t *testing.T) *ColumnDataSource {
	t.Helper()
	src, err := NewColumnDataSource(map[string][]any{
		"x": {10, 20, 30, 40, 50},
	})
	require.NoError(t, err)
	return src
}

func TestViewSelectsAllByDefault(t *testing.T) {
	v, err := NewView(viewSource(t))
	require.NoError(t, err)

	assert.Equal(t, 5, v.Cardinality())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, v.Rows())
}

func TestIndexFilter(t *testing.T) {
	v, err := NewView(viewSource(t), IndexFilter{0, 2, 4, 99, -1})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 4}, v.Rows())
	assert.True(t, v.Contains(2))
	assert.False(t, v.Contains(1))
	assert.False(t, v.Contains(-1))
}

func TestBooleanFilter(t *testing.T) {
	v, err := NewView(viewSource(t), BooleanFilter{true, false, true, false, true})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 4}, v.Rows())
}

func TestFiltersIntersect(t *testing.T) {
	v, err := NewView(viewSource(t),
		IndexFilter{0, 1, 2},
		BooleanFilter{false, true, true, true, true},
	)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, v.Rows())
}

func TestViewUnion(t *testing.T) {
	src := viewSource(t)

	a, err := NewView(src, IndexFilter{0})
	require.NoError(t, err)
	b, err := NewView(src, IndexFilter{4})
	require.NoError(t, err)

	require.NoError(t, a.Union(b))
	assert.Equal(t, []int{0, 4}, a.Rows())

	other, err := NewView(viewSource(t))
	require.NoError(t, err)
	assert.Error(t, a.Union(other))
}

func TestViewRequiresSource(t *testing.T) {
	_, err := NewView(nil)
	assert.Error(t, err)
}
