package platform_test

import (
	platformerror "simple-list/internal/platform/error"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListIterator_Traversal(t *testing.T) {
	l := listOf("A", "B", "C")
	it := l.Iterator()

	require.False(t, it.HasPrevious())
	require.Equal(t, 0, it.NextIndex())
	require.Equal(t, -1, it.PreviousIndex())

	var got []string
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		got = append(got, v)
		require.Equal(t, len(got), it.NextIndex())
		require.Equal(t, len(got)-1, it.PreviousIndex())
	}
	require.Equal(t, []string{"A", "B", "C"}, got)

	_, err := it.Next()
	require.ErrorIs(t, err, platformerror.ErrEndOfSequence)
}

func TestListIterator_EmptyList(t *testing.T) {
	it := listOf().Iterator()
	require.False(t, it.HasNext())
	_, err := it.Next()
	require.ErrorIs(t, err, platformerror.ErrEndOfSequence)
}

func TestListIterator_IteratorAt(t *testing.T) {
	l := listOf("A", "B", "C", "D")
	it, err := l.IteratorAt(2)
	require.NoError(t, err)
	require.Equal(t, 2, it.NextIndex())

	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "C", v)

	// the starting position carries no pending edit
	it, err = l.IteratorAt(2)
	require.NoError(t, err)
	require.ErrorIs(t, it.Remove(), platformerror.ErrIllegalCursorState)
}

func TestListIterator_SetThenRemove(t *testing.T) {
	l := listOf("A", "B", "C")
	it, err := l.IteratorAt(0)
	require.NoError(t, err)

	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "A", v)
	require.Equal(t, 1, it.NextIndex())

	require.NoError(t, it.Set("X"))
	require.Equal(t, []string{"X", "B", "C"}, l.Values())

	v, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, "B", v)

	require.NoError(t, it.Remove())
	require.Equal(t, []string{"X", "C"}, l.Values())
	require.Equal(t, 2, l.Count())
	require.Equal(t, 1, it.NextIndex())

	v, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, "C", v)
}

func TestListIterator_EditsRequireFreshNext(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, values []string) error
	}{
		{
			name: "remove on fresh cursor",
			prepare: func(t *testing.T, values []string) error {
				return listOf(values...).Iterator().Remove()
			},
		},
		{
			name: "set on fresh cursor",
			prepare: func(t *testing.T, values []string) error {
				return listOf(values...).Iterator().Set("X")
			},
		},
		{
			name: "remove twice",
			prepare: func(t *testing.T, values []string) error {
				it := listOf(values...).Iterator()
				_, err := it.Next()
				require.NoError(t, err)
				require.NoError(t, it.Remove())
				return it.Remove()
			},
		},
		{
			name: "set twice",
			prepare: func(t *testing.T, values []string) error {
				it := listOf(values...).Iterator()
				_, err := it.Next()
				require.NoError(t, err)
				require.NoError(t, it.Set("X"))
				return it.Set("Y")
			},
		},
		{
			name: "remove after set",
			prepare: func(t *testing.T, values []string) error {
				it := listOf(values...).Iterator()
				_, err := it.Next()
				require.NoError(t, err)
				require.NoError(t, it.Set("X"))
				return it.Remove()
			},
		},
		{
			name: "set after remove",
			prepare: func(t *testing.T, values []string) error {
				it := listOf(values...).Iterator()
				_, err := it.Next()
				require.NoError(t, err)
				require.NoError(t, it.Remove())
				return it.Set("X")
			},
		},
		{
			name: "remove after add",
			prepare: func(t *testing.T, values []string) error {
				it := listOf(values...).Iterator()
				_, err := it.Next()
				require.NoError(t, err)
				it.Add("X")
				return it.Remove()
			},
		},
		{
			name: "set after add",
			prepare: func(t *testing.T, values []string) error {
				it := listOf(values...).Iterator()
				it.Add("X")
				return it.Set("Y")
			},
		},
		{
			name: "remove after failed next",
			prepare: func(t *testing.T, values []string) error {
				it := listOf().Iterator()
				_, err := it.Next()
				require.ErrorIs(t, err, platformerror.ErrEndOfSequence)
				return it.Remove()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prepare(t, []string{"A", "B", "C"})
			require.ErrorIs(t, err, platformerror.ErrIllegalCursorState)
		})
	}
}

func TestListIterator_PreviousIsUnsupported(t *testing.T) {
	l := listOf("A", "B")
	it := l.Iterator()

	_, err := it.Previous()
	require.ErrorIs(t, err, platformerror.ErrUnsupportedBackwardTraversal)

	_, err = it.Next()
	require.NoError(t, err)
	require.False(t, it.HasPrevious())
	_, err = it.Previous()
	require.ErrorIs(t, err, platformerror.ErrUnsupportedBackwardTraversal)

	// a failed Previous does not consume the pending edit
	require.NoError(t, it.Remove())
	require.Equal(t, []string{"B"}, l.Values())
}

func TestListIterator_RemoveEveryElement(t *testing.T) {
	l := listOf("A", "B", "C")
	it := l.Iterator()
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Remove())
		require.Equal(t, 0, it.NextIndex())
	}
	require.True(t, l.IsEmpty())
	require.Nil(t, l.Head())
	require.Equal(t, "", l.String())
}

func TestListIterator_RemoveLastAfterExhaustion(t *testing.T) {
	l := listOf("A", "B", "C")
	it := l.Iterator()
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
	}

	require.NoError(t, it.Remove())
	require.Equal(t, []string{"A", "B"}, l.Values())
	require.Equal(t, 2, it.NextIndex())

	// the cursor sits at the end and can still append
	it.Add("D")
	require.Equal(t, []string{"A", "B", "D"}, l.Values())
	require.False(t, it.HasNext())
}

func TestListIterator_SetAfterExhaustion(t *testing.T) {
	l := listOf("A", "B")
	it := l.Iterator()
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
	}
	require.NoError(t, it.Set("Z"))
	require.Equal(t, []string{"A", "Z"}, l.Values())
}

func TestListIterator_Add(t *testing.T) {
	l := listOf("A", "B")
	it := l.Iterator()

	it.Add("X")
	require.Equal(t, []string{"X", "A", "B"}, l.Values())
	require.Equal(t, 1, it.NextIndex())

	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "A", v)

	it.Add("Y")
	it.Add("Z")
	require.Equal(t, []string{"X", "A", "Y", "Z", "B"}, l.Values())
	require.Equal(t, 4, it.NextIndex())
	require.Equal(t, 5, l.Count())

	v, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, "B", v)

	it.Add("W")
	require.Equal(t, "X -> A -> Y -> Z -> B -> W", l.String())
	require.False(t, it.HasNext())
}

func TestListIterator_AddIntoEmptyList(t *testing.T) {
	l := listOf()
	it := l.Iterator()
	it.Add("A")
	it.Add("B")
	require.Equal(t, []string{"A", "B"}, l.Values())
	require.Equal(t, 2, l.Count())

	front, err := l.RemoveFront()
	require.NoError(t, err)
	require.Equal(t, "A", front)
}

func TestListIterator_AddIsReadableAtPreviousIndex(t *testing.T) {
	l := listOf("A", "B", "C")
	it, err := l.IteratorAt(1)
	require.NoError(t, err)

	it.Add("X")
	got, err := l.Get(it.PreviousIndex())
	require.NoError(t, err)
	require.Equal(t, "X", got)
}

func TestListIterator_AddAfterRemoveLinksPredecessor(t *testing.T) {
	l := listOf("A", "B", "C")
	it := l.Iterator()
	_, err := it.Next()
	require.NoError(t, err)
	_, err = it.Next()
	require.NoError(t, err)
	require.NoError(t, it.Remove())

	it.Add("X")
	require.Equal(t, []string{"A", "X", "C"}, l.Values())

	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "C", v)
	require.NoError(t, it.Remove())
	require.Equal(t, []string{"A", "X"}, l.Values())
}

func TestListIterator_RemoveHeadThenContinue(t *testing.T) {
	l := listOf("A", "B", "C")
	it := l.Iterator()
	_, err := it.Next()
	require.NoError(t, err)
	require.NoError(t, it.Remove())

	require.Equal(t, "B", l.Head().Value())
	it.Add("X")
	require.Equal(t, []string{"X", "B", "C"}, l.Values())
}
