package slider

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrevWrapsToLast(t *testing.T) {
	t.Parallel()

	s := New(3)
	require.Equal(t, 0, s.Index())
	require.Equal(t, 2, s.Prev())
	require.Equal(t, 1, s.Prev())
}

func TestNextThreeTimesReturnsToStart(t *testing.T) {
	t.Parallel()

	s := New(3)
	s.Next()
	s.Next()
	require.Equal(t, 0, s.Next())
}

func TestGotoNormalizes(t *testing.T) {
	t.Parallel()

	s := New(4)
	require.Equal(t, 2, s.Goto(2))
	require.Equal(t, 1, s.Goto(5))
	require.Equal(t, 3, s.Goto(-1))
}

func TestEmptySliderIsNoop(t *testing.T) {
	t.Parallel()

	s := New(0)
	require.Equal(t, 0, s.Next())
	require.Equal(t, 0, s.Prev())
	require.Equal(t, 0, s.Goto(7))
	_, advanced := s.Tick()
	require.False(t, advanced)
}

func TestZeroValueIsUsable(t *testing.T) {
	t.Parallel()

	var s Slider
	require.True(t, s.Running())
	require.Equal(t, 0, s.Next())
	s.Resume()
}

func TestTickRespectsPause(t *testing.T) {
	t.Parallel()

	s := New(2)
	require.True(t, s.Running(), "autoplay starts running")

	s.Pause()
	idx, advanced := s.Tick()
	require.False(t, advanced)
	require.Equal(t, 0, idx)

	s.Resume()
	idx, advanced = s.Tick()
	require.True(t, advanced)
	require.Equal(t, 1, idx)
}
