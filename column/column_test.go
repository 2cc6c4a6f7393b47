package column_test

import (
	"testing"

	"github.com/katalvlaran/tda/column"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// factories enumerates both Column implementations so every behavioral test
// below runs against each, guaranteeing the two representations stay
// semantically identical per spec.md §4.2.
var factories = map[string]func(n int) column.Column{
	"vector": func(n int) column.Column { return column.NewVectorColumns(n) },
	"bitmap": func(n int) column.Column { return column.NewBitmapColumns(n) },
}

func TestSetGetColumn(t *testing.T) {
	for name, make_ := range factories {
		t.Run(name, func(t *testing.T) {
			c := make_(3)
			require.NoError(t, c.SetColumn(1, []column.Index{2, 5, 9}))
			assert.Equal(t, []column.Index{2, 5, 9}, c.GetColumn(1))
			assert.Empty(t, c.GetColumn(0))
		})
	}
}

func TestMaximumIndex(t *testing.T) {
	for name, make_ := range factories {
		t.Run(name, func(t *testing.T) {
			c := make_(2)
			_, valid := c.MaximumIndex(0)
			assert.False(t, valid)

			require.NoError(t, c.SetColumn(0, []column.Index{1, 3, 7}))
			row, valid := c.MaximumIndex(0)
			assert.True(t, valid)
			assert.Equal(t, column.Index(7), row)
		})
	}
}

func TestAddColumnsXor(t *testing.T) {
	for name, make_ := range factories {
		t.Run(name, func(t *testing.T) {
			c := make_(2)
			require.NoError(t, c.SetColumn(0, []column.Index{1, 2, 3}))
			require.NoError(t, c.SetColumn(1, []column.Index{2, 3, 4}))
			require.NoError(t, c.AddColumns(0, 1))
			// {2,3} cancel; {1} from src, {4} from dst survive.
			assert.Equal(t, []column.Index{1, 4}, c.GetColumn(1))
			// src (column 0) is untouched.
			assert.Equal(t, []column.Index{1, 2, 3}, c.GetColumn(0))
		})
	}
}

func TestClearColumn(t *testing.T) {
	for name, make_ := range factories {
		t.Run(name, func(t *testing.T) {
			c := make_(1)
			require.NoError(t, c.SetColumn(0, []column.Index{1}))
			c.ClearColumn(0)
			assert.Empty(t, c.GetColumn(0))
			_, valid := c.MaximumIndex(0)
			assert.False(t, valid)
		})
	}
}

func TestDimAndMaxDim(t *testing.T) {
	for name, make_ := range factories {
		t.Run(name, func(t *testing.T) {
			c := make_(3)
			c.SetDim(0, 0)
			c.SetDim(1, 1)
			c.SetDim(2, 2)
			assert.Equal(t, 2, c.Dim(2))
			assert.Equal(t, 2, c.MaxDim())
		})
	}
}

func TestSetColumnRejectsUnsorted(t *testing.T) {
	for name, make_ := range factories {
		t.Run(name, func(t *testing.T) {
			c := make_(1)
			assert.ErrorIs(t, c.SetColumn(0, []column.Index{3, 1}), column.ErrUnsorted)
			assert.ErrorIs(t, c.SetColumn(0, []column.Index{1, 1}), column.ErrUnsorted)
		})
	}
}

func TestOutOfRange(t *testing.T) {
	for name, make_ := range factories {
		t.Run(name, func(t *testing.T) {
			c := make_(1)
			assert.ErrorIs(t, c.SetColumn(5, nil), column.ErrOutOfRange)
			assert.ErrorIs(t, c.AddColumns(0, 5), column.ErrOutOfRange)
		})
	}
}

func TestSetNumColumnsGrowShrink(t *testing.T) {
	for name, make_ := range factories {
		t.Run(name, func(t *testing.T) {
			c := make_(1)
			require.NoError(t, c.SetColumn(0, []column.Index{1}))
			c.SetNumColumns(3)
			assert.Equal(t, 3, c.NumColumns())
			assert.Equal(t, []column.Index{1}, c.GetColumn(0))
			c.SetNumColumns(1)
			assert.Equal(t, 1, c.NumColumns())
		})
	}
}
