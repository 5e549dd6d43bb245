package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/stackout/internal/core"
)

func testColors() core.ColorSource {
	return core.NewPalette(core.ColorRed, core.ColorGreen)
}

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout("t", "Test", []string{
		"#.3",
		"9",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, l.Cols)
	assert.Equal(t, 2, l.Rows)
	assert.Equal(t, 3, l.Blocks())
	assert.Equal(t, -1, l.Weight(0, 0))
	assert.Equal(t, 0, l.Weight(1, 0))
	assert.Equal(t, 3, l.Weight(2, 0))
	assert.Equal(t, 9, l.Weight(0, 1))
	assert.Equal(t, 0, l.Weight(2, 1), "short rows are padded")
	assert.Equal(t, 0, l.Weight(5, 5), "out of range reads as empty")
}

func TestParseLayoutErrors(t *testing.T) {
	_, err := ParseLayout("bad", "Bad", []string{"#?#"})
	assert.Error(t, err)

	_, err = ParseLayout("empty", "Empty", []string{"....", "  "})
	assert.Error(t, err)

	_, err = ParseLayout("none", "None", nil)
	assert.Error(t, err)
}

func TestLayoutByID(t *testing.T) {
	l, err := LayoutByID("pyramid")
	require.NoError(t, err)
	assert.Equal(t, "Pyramid", l.Name)

	_, err = LayoutByID("nope")
	assert.ErrorIs(t, err, ErrUnknownLayout)
}

func TestBuiltinLayoutsFitTheWorld(t *testing.T) {
	geom := DefaultOptions(1).Geometry
	ids := LayoutIDs()
	require.Equal(t, "classic", ids[0])

	for _, l := range BuiltinLayouts() {
		t.Run(l.ID, func(t *testing.T) {
			f := NewBlockField(l, geom, testColors())
			require.Equal(t, l.Blocks(), f.Len())

			for i := range f.Len() {
				b := f.Block(i)
				assert.GreaterOrEqual(t, b.X, 0.0)
				assert.LessOrEqual(t, b.X+b.W, 640.0)
				assert.Less(t, b.Y+b.H, 300.0, "blocks stay well above the paddle")
			}
		})
	}
}

func TestBlockFieldPoints(t *testing.T) {
	l, err := ParseLayout("t", "Test", []string{"#2"})
	require.NoError(t, err)
	f := NewBlockField(l, FieldGeometry{BlockW: 30, BlockH: 14, WorldW: 640, Points: 15}, testColors())

	assert.Equal(t, 15, f.Block(0).Points)
	assert.Equal(t, 20, f.Block(1).Points)
}

func TestBlockFieldEnableKeepsColors(t *testing.T) {
	l, err := ParseLayout("t", "Test", []string{"###"})
	require.NoError(t, err)
	f := NewBlockField(l, FieldGeometry{BlockW: 30, BlockH: 14, Gap: 2, WorldW: 640, Points: 10}, testColors())

	before := []core.RGB{f.Block(0).Color, f.Block(1).Color, f.Block(2).Color}
	assert.Equal(t, []core.RGB{core.ColorRed, core.ColorGreen, core.ColorRed}, before)

	for i := range f.Len() {
		_, ok := f.Hit(f.Block(i).Rect())
		require.True(t, ok)
	}
	require.Zero(t, f.Remaining())

	f.Enable()
	assert.Equal(t, 3, f.Remaining())
	for i, c := range before {
		assert.False(t, f.Destroyed(i))
		assert.Equal(t, c, f.Block(i).Color)
	}
}
