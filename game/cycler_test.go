package game_test

import (
	"testing"

	"github.com/ratel-online/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Next()
	assert.Equal(t, 2, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
}

func TestNext(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
}

func TestReverse(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 1, cycler.Direction())
	assert.Equal(t, -1, cycler.Reverse())
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	assert.Equal(t, 1, cycler.Reverse())
	assert.Equal(t, 3, cycler.Next())
}

func TestPeekAndAdvance(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 2, cycler.Peek(2))
	assert.Equal(t, 0, cycler.Current())
	assert.Equal(t, 2, cycler.Advance(2))
	cycler.Reverse()
	assert.Equal(t, 0, cycler.Advance(2))
	assert.Equal(t, 2, cycler.Advance(2))
	assert.Equal(t, 1, cycler.Peek(1))
}

func TestNormalizeStaysInRange(t *testing.T) {
	for size := 2; size <= 10; size++ {
		for index := -3 * size; index <= 3*size; index++ {
			normalized := game.Normalize(index, size)
			require.GreaterOrEqual(t, normalized, 0)
			require.Less(t, normalized, size)
			require.Equal(t, 0, (index-normalized)%size)
		}
	}
}
