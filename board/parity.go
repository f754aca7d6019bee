package board

// InversionCount counts the ordered pairs of non-blank tiles that are
// out of order in the row-major flattening of b. A legal slide never
// changes the parity of this count, which is what makes the solvability
// pre-check sound.
func InversionCount(b Board) int {
	count := 0
	for i := 0; i < NumTiles; i++ {
		if b.tiles[i] == BlankTile {
			continue
		}
		for j := i + 1; j < NumTiles; j++ {
			if b.tiles[j] == BlankTile {
				continue
			}
			if b.tiles[i] > b.tiles[j] {
				count++
			}
		}
	}
	return count
}

// Solvable reports whether the canonical goal is reachable from b, along
// with b's inversion count. With the tiles ascending and the blank last,
// reachable means an even inversion count. If the goal ever becomes
// configurable this must compare the parities of both boards instead.
func Solvable(b Board) (bool, int) {
	inv := InversionCount(b)
	return inv%2 == 0, inv
}
