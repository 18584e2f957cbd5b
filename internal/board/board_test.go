package board

import (
	"math/rand"
	"testing"

	"github.com/matryer/is"
)

var microLayout = []string{
	"QPP     ",
	"        ",
	"        ",
	"        ",
	"        ",
	"        ",
	"        ",
	"        ",
}

var surroundedLayout = []string{
	"        ",
	"        ",
	"  PPP   ",
	"  PQP   ",
	"  PPP   ",
	"        ",
	"        ",
	"        ",
}

// scanNearest walks the ray one square at a time.
func scanNearest(b *Board, d Direction) Square {
	dRow, dCol := d.Step()
	for r, c := b.MoverRow()+dRow, b.MoverCol()+dCol; inBounds(r, c); r, c = r+dRow, c+dCol {
		if b.Occupied(r, c) {
			return NewSquare(r, c)
		}
	}
	return NoSquare
}

func randomBoard(rng *rand.Rand) Board {
	pawns := Bitboard(rng.Uint64() & rng.Uint64())
	mover := Square(rng.Intn(NumSquares))
	return NewBoard(pawns, mover)
}

func TestMicroLayout(t *testing.T) {
	is := is.New(t)
	b := MustParseLayout(microLayout, DefaultMarkers)

	is.Equal(b.PawnCount(), 2)
	moves := b.NextMoves()
	is.Equal(moves.Len(), 1)
	is.Equal(moves.Get(0), NewMove(0, 1)) // (0,2) is hidden behind (0,1)

	b.MoveTo(moves.Get(0).To())
	moves = b.NextMoves()
	is.Equal(moves.Len(), 1)
	is.Equal(moves.Get(0), NewMove(0, 2))
}

func TestZeroPawns(t *testing.T) {
	is := is.New(t)
	b := NewBoard(Empty, NewSquare(4, 4))
	moves := b.NextMoves()
	is.Equal(moves.Len(), 0)
	is.True(b.Empty())
}

func TestSurroundedMover(t *testing.T) {
	is := is.New(t)
	b := MustParseLayout(surroundedLayout, DefaultMarkers)

	moves := b.NextMoves()
	is.Equal(moves.Len(), 8)

	want := []Move{
		NewMove(3, 2), // W
		NewMove(3, 4), // E
		NewMove(2, 3), // N
		NewMove(4, 3), // S
		NewMove(2, 4), // NE
		NewMove(4, 4), // SE
		NewMove(4, 2), // SW
		NewMove(2, 2), // NW
	}
	is.Equal(moves.Slice(), want)
}

func TestDefaultLayoutFirstMoves(t *testing.T) {
	is := is.New(t)
	b := Default()

	is.Equal(b.PawnCount(), 16)
	is.Equal(b.Mover, NewSquare(0, 0))

	moves := b.NextMoves()
	is.Equal(moves.Slice(), []Move{NewMove(0, 1), NewMove(1, 0)})
}

func TestCornerRaysRunOffBoard(t *testing.T) {
	is := is.New(t)
	for _, sq := range []Square{NewSquare(0, 0), NewSquare(0, 7), NewSquare(7, 0), NewSquare(7, 7)} {
		empty := 0
		for d := West; d < NumDirections; d++ {
			if Ray(sq, d).Empty() {
				empty++
			}
		}
		is.Equal(empty, 5) // a corner only sees three rays
	}
}

func TestNextMovesMatchesScan(t *testing.T) {
	is := is.New(t)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		b := randomBoard(rng)
		moves := b.NextMoves()

		var want []Move
		for d := West; d < NumDirections; d++ {
			if sq := scanNearest(&b, d); sq != NoSquare {
				want = append(want, Move(sq))
			}
		}

		is.Equal(moves.Len(), len(want))
		for j := range want {
			is.Equal(moves.Get(j), want[j])
			is.True(moves.Contains(want[j]))
		}

		for d := West; d < NumDirections; d++ {
			m, ok := b.MoveIn(d)
			want := scanNearest(&b, d)
			is.Equal(ok, want != NoSquare)
			if ok {
				is.Equal(m.To(), want)
			}
		}
	}
}

func TestMoveInSurrounded(t *testing.T) {
	is := is.New(t)
	b := MustParseLayout(surroundedLayout, DefaultMarkers)

	got := map[string]Move{}
	for d := West; d < NumDirections; d++ {
		m, ok := b.MoveIn(d)
		is.True(ok)
		got[d.String()] = m
	}
	is.Equal(got, map[string]Move{
		"W": NewMove(3, 2), "E": NewMove(3, 4),
		"N": NewMove(2, 3), "S": NewMove(4, 3),
		"NE": NewMove(2, 4), "SE": NewMove(4, 4),
		"SW": NewMove(4, 2), "NW": NewMove(2, 2),
	})
	is.Equal(NumDirections.String(), "?")

	moves := b.NextMoves()
	is.True(!moves.Contains(NewMove(0, 0)))
}

func TestMoveToUnmove(t *testing.T) {
	is := is.New(t)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		b := randomBoard(rng)
		before := b
		moves := b.NextMoves()
		for _, m := range moves.Slice() {
			undo := b.MoveTo(m.To())

			is.Equal(b.PawnCount(), before.PawnCount()-1)
			is.True(!b.Pawns.IsSet(b.Mover))
			is.Equal(b.Pawns&^before.Pawns, Empty) // pawns are never added

			b.Unmove(m.To(), undo)
			is.Equal(b, before)
		}
	}
}

func TestApplyLeavesReceiver(t *testing.T) {
	is := is.New(t)
	b := Default()
	next := b.Apply(NewMove(0, 1))

	is.Equal(b, Default())
	is.Equal(next.Mover, NewSquare(0, 1))
	is.Equal(next.PawnCount(), 15)
}

func TestIsLegal(t *testing.T) {
	is := is.New(t)
	b := MustParseLayout(microLayout, DefaultMarkers)

	is.True(b.IsLegal(NewMove(0, 1)))
	is.True(!b.IsLegal(NewMove(0, 2)))
	is.True(!b.IsLegal(NewMove(5, 5)))
	is.True(!b.IsLegal(NoMove))
}

func TestOccupiedOutOfRangePanics(t *testing.T) {
	is := is.New(t)
	b := Default()
	defer func() {
		is.True(recover() != nil)
	}()
	b.Occupied(8, 0)
}

func TestSquareNotation(t *testing.T) {
	tests := []struct {
		row, col int
		name     string
	}{
		{0, 0, "a8"},
		{0, 7, "h8"},
		{7, 0, "a1"},
		{3, 4, "e5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			sq := NewSquare(tc.row, tc.col)
			is.Equal(sq.String(), tc.name)

			parsed, err := ParseSquare(tc.name)
			is.NoErr(err)
			is.Equal(parsed, sq)
		})
	}
}
