package mesh

import "fmt"

// Permutation is a bijective reindexing of an NumPtsX x NumPtsY logical
// point grid onto [0, NumPtsX*NumPtsY). Perm maps the row-major logical
// index to the storage index; Deperm is its inverse.
type Permutation struct {
	NumPtsX, NumPtsY int
	Perm, Deperm     []int
}

func checkBlockWidths(numPtsX, numPtsY, numBlocksX, numBlocksY, widthX,
	widthY int) (err error) {
	if widthX*numBlocksX+1 != numPtsX && numBlocksX != 1 {
		return fmt.Errorf("block width %d does not tile %d points in x over %d blocks",
			widthX, numPtsX, numBlocksX)
	}
	if widthY*numBlocksY+1 != numPtsY && numBlocksY != 1 {
		return fmt.Errorf("block width %d does not tile %d points in y over %d blocks",
			widthY, numPtsY, numBlocksY)
	}
	return
}

func newPermutation(numPtsX, numPtsY int, perm []int) (P *Permutation, err error) {
	P = &Permutation{
		NumPtsX: numPtsX,
		NumPtsY: numPtsY,
		Perm:    perm,
		Deperm:  make([]int, len(perm)),
	}
	// verify the bijection onto [0,n) while inverting
	seen := make([]bool, len(perm))
	for i, s := range perm {
		if s < 0 || s >= len(perm) {
			return nil, fmt.Errorf("permutation maps %d out of range: %d", i, s)
		}
		if seen[s] {
			return nil, fmt.Errorf("permutation assigns storage index %d twice", s)
		}
		seen[s] = true
		P.Deperm[s] = i
	}
	return
}

// NewSnailPermutation numbers points by spiraling clockwise within each of
// numBlocksX x numBlocksY equal blocks, visiting blocks in row-major order.
// The spiral prefers directions right, down, left, up in rotation, turning
// whenever the next cell would leave the grid, leave the current block, or
// hit an already-numbered cell.
func NewSnailPermutation(numPtsX, numPtsY, numBlocksX, numBlocksY int) (
	P *Permutation, err error) {
	widthX := numPtsX / numBlocksX
	widthY := numPtsY / numBlocksY
	if err = checkBlockWidths(numPtsX, numPtsY, numBlocksX, numBlocksY,
		widthX, widthY); err != nil {
		return
	}

	grid := make([]int, numPtsX*numPtsY)

	// initialize the grid to the negative block number
	for y := 0; y < numPtsY; y++ {
		for x := 0; x < numPtsX; x++ {
			grid[y*numPtsX+x] = -(maxInt((y-1)/widthY, 0)*numBlocksX +
				maxInt((x-1)/widthX, 0) + 1)
		}
	}

	// spiral around inside each block, replacing each value with a counter
	locX, locY := 0, 0
	dir := 0 // index into direction vectors
	dirListX := [4]int{1, 0, -1, 0}
	dirListY := [4]int{0, 1, 0, -1}

	for iter, block := 0, 0; iter < numPtsX*numPtsY; iter++ {
		grid[locY*numPtsX+locX] = iter
		dirIter := 0 // how many directions have we tried?
		// check the next location:
		// is it inside the grid? inside the current block?
		// have we tried all the directions?
		for (locX+dirListX[dir] < 0 ||
			locX+dirListX[dir] >= numPtsX ||
			locY+dirListY[dir] < 0 ||
			locY+dirListY[dir] >= numPtsY ||
			grid[(locY+dirListY[dir])*numPtsX+locX+dirListX[dir]] != -block-1) &&
			dirIter < 4 {
			dirIter++
			dir = (dir + 1) % 4
		}
		if dirIter < 3 { // normal continuation: spiral within block
			locX += dirListX[dir]
			locY += dirListY[dir]
		} else { // jump to next block
			block++
			dir = 0
			locX = (block % numBlocksX) * widthX
			if block%numBlocksX > 0 {
				locX++
			}
			locY = (block / numBlocksX) * widthY
			if block/numBlocksX > 0 {
				locY++
			}
		}
	}

	return newPermutation(numPtsX, numPtsY, grid)
}

// NewMuPermutation numbers the edges of each block in the same direction
// (e.g. left and right from top to bottom), then fills in the middle with
// same-direction stripes. Blocks are visited in row-major order; the very
// first point of the grid is numbered before any block processing.
func NewMuPermutation(numPtsX, numPtsY, numBlocksX, numBlocksY int) (
	P *Permutation, err error) {
	widthX := (numPtsX - 1) / numBlocksX
	widthY := (numPtsY - 1) / numBlocksY
	if err = checkBlockWidths(numPtsX, numPtsY, numBlocksX, numBlocksY,
		widthX, widthY); err != nil {
		return
	}

	perm := make([]int, numPtsX*numPtsY)
	linearize := func(x, y int) int {
		return y*numPtsX + x
	}

	cnt := 0
	perm[0] = cnt
	cnt++
	for blockY := 0; blockY < numBlocksY; blockY++ {
		for blockX := 0; blockX < numBlocksX; blockX++ {
			// the left edge, only for the first column of blocks
			if blockX == 0 {
				for dy := 1; dy < widthY+1; dy++ {
					perm[linearize(0, widthY*blockY+dy)] = cnt
					cnt++
				}
			}
			// across the top, only for the first row of blocks
			if blockY == 0 {
				for dx := 0; dx < widthX; dx++ {
					perm[linearize(blockX*widthX+1+dx, widthY*blockY)] = cnt
					cnt++
				}
			}
			// the right edge
			for dy := 0; dy < widthY; dy++ {
				perm[linearize(widthX*(blockX+1), widthY*blockY+1+dy)] = cnt
				cnt++
			}
			// the bottom edge
			for dx := 0; dx < widthX-1; dx++ {
				perm[linearize(widthX*blockX+1+dx, widthY*(blockY+1))] = cnt
				cnt++
			}
			// fill the middle
			for dy := 1; dy < widthY; dy++ {
				for dx := 1; dx < widthX; dx++ {
					perm[linearize(widthX*blockX+dx, widthY*blockY+dy)] = cnt
					cnt++
				}
			}
		}
	}
	if cnt != numPtsX*numPtsY {
		return nil, fmt.Errorf("mu permutation assigned %d of %d indices",
			cnt, numPtsX*numPtsY)
	}

	return newPermutation(numPtsX, numPtsY, perm)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
