package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestFromTiles(t *testing.T) {
	is := is.New(t)
	b, err := FromTiles([]int{1, 8, 2, 0, 4, 3, 7, 6, 5})
	is.NoErr(err)
	is.Equal(b.Tile(0, 1), 8)
	is.Equal(b.Tile(1, 0), 0)
	is.Equal(b.Tile(2, 2), 5)
}

func TestFromTilesRejectsBadInput(t *testing.T) {
	is := is.New(t)
	cases := [][]int{
		{1, 2, 3},                            // too short
		{1, 2, 3, 4, 5, 6, 7, 8, 0, 0},      // too long
		{1, 1, 2, 3, 4, 5, 6, 7, 8},         // duplicate, no blank
		{1, 2, 3, 4, 5, 6, 7, 8, 9},         // out of range
		{-1, 2, 3, 4, 5, 6, 7, 8, 0},        // negative
		{0, 0, 1, 2, 3, 4, 5, 6, 7},         // duplicate blank
	}
	for _, c := range cases {
		_, err := FromTiles(c)
		is.True(errors.Is(err, ErrInvalidBoard))
	}
}

func TestFromRows(t *testing.T) {
	is := is.New(t)
	b, err := FromRows([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}})
	is.NoErr(err)
	is.True(b.Equals(Goal()))

	_, err = FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	is.True(errors.Is(err, ErrInvalidBoard))
	_, err = FromRows([][]int{{1, 2, 3}, {4, 5}, {6, 7, 8, 0}})
	is.True(errors.Is(err, ErrInvalidBoard))
}

func TestParse(t *testing.T) {
	is := is.New(t)
	b, err := Parse("1 8 2 0 4 3 7 6 5")
	is.NoErr(err)
	withCommas, err := Parse("1,8,2,0,4,3,7,6,5")
	is.NoErr(err)
	is.True(b.Equals(withCommas))

	_, err = Parse("1 8 2 0 4 3 7 6 x")
	is.True(errors.Is(err, ErrInvalidBoard))
	_, err = Parse("")
	is.True(errors.Is(err, ErrInvalidBoard))
}

func TestBlank(t *testing.T) {
	is := is.New(t)
	row, col := Goal().Blank()
	is.Equal(row, 2)
	is.Equal(col, 2)

	b, err := FromTiles([]int{1, 8, 2, 0, 4, 3, 7, 6, 5})
	is.NoErr(err)
	row, col = b.Blank()
	is.Equal(row, 1)
	is.Equal(col, 0)
}

func TestEqualsAndKeyAreContentDefined(t *testing.T) {
	is := is.New(t)
	a, err := FromTiles([]int{1, 8, 2, 0, 4, 3, 7, 6, 5})
	is.NoErr(err)
	b, err := Parse("1 8 2 0 4 3 7 6 5")
	is.NoErr(err)
	is.True(a.Equals(b))
	is.Equal(a.Key(), b.Key())
	is.True(!a.Equals(Goal()))
	is.True(a.Key() != Goal().Key())
}

func TestApplySlide(t *testing.T) {
	is := is.New(t)
	b, err := FromTiles([]int{1, 8, 2, 0, 4, 3, 7, 6, 5})
	is.NoErr(err)

	// Slide tile 1 down into the blank.
	next, err := b.ApplySlide(1, 0, 0, 0)
	is.NoErr(err)
	is.Equal(next.Tile(0, 0), 0)
	is.Equal(next.Tile(1, 0), 1)
	// The original board is untouched.
	is.Equal(b.Tile(0, 0), 1)
	is.Equal(b.Tile(1, 0), 0)
}

func TestApplySlideRejectsMisuse(t *testing.T) {
	is := is.New(t)
	b, err := FromTiles([]int{1, 8, 2, 0, 4, 3, 7, 6, 5})
	is.NoErr(err)

	// Not adjacent.
	_, err = b.ApplySlide(1, 0, 1, 2)
	is.True(errors.Is(err, ErrInvalidMove))
	// Diagonal.
	_, err = b.ApplySlide(1, 0, 0, 1)
	is.True(errors.Is(err, ErrInvalidMove))
	// Neither cell holds the blank.
	_, err = b.ApplySlide(0, 0, 0, 1)
	is.True(errors.Is(err, ErrInvalidMove))
	// Out of bounds.
	_, err = b.ApplySlide(1, 0, 1, -1)
	is.True(errors.Is(err, ErrInvalidMove))
}

func TestDisplay(t *testing.T) {
	is := is.New(t)
	b, err := FromTiles([]int{1, 8, 2, 0, 4, 3, 7, 6, 5})
	is.NoErr(err)
	is.Equal(b.ToDisplayText(), "1 8 2\n_ 4 3\n7 6 5\n")
	is.Equal(b.String(), "1,8,2|_,4,3|7,6,5")
	is.Equal(Goal().String(), "1,2,3|4,5,6|7,8,_")
}
