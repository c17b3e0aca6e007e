package kinebox

import (
	"math"
	"sort"

	"github.com/akmonengine/kinebox/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// CellKey - coordinates of a cell in 3D space
type CellKey struct {
	X, Y, Z int
}

// Cell - list indices of the boxes overlapping a cell
type Cell struct {
	boxIndices []int
}

// SpatialGrid - uniform hashed grid, broad phase of the pure sweep
type SpatialGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int
}

// NewSpatialGrid creates a grid, numCells is rounded up to a power of two
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].boxIndices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert adds the box index to every cell its bounds occupy
func (sg *SpatialGrid) Insert(boxIndex int, bounds actor.AABB) {
	sg.forEachCell(bounds, func(cellIdx int) {
		sg.cells[cellIdx].boxIndices = append(sg.cells[cellIdx].boxIndices, boxIndex)
	})
}

func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].boxIndices = sg.cells[i].boxIndices[:0]
	}
}

func (sg *SpatialGrid) SortCells() {
	for i := range sg.cells {
		if len(sg.cells[i].boxIndices) > 1 {
			sort.Ints(sg.cells[i].boxIndices)
		}
	}
}

// Candidates returns, in ascending order and without duplicates, the indices
// of the boxes sharing at least one cell with bounds. boxCount is the number
// of inserted boxes. The querying index itself is part of the result.
func (sg *SpatialGrid) Candidates(boxIndex int, bounds actor.AABB, boxCount int) []int {
	seen := make([]bool, boxCount)
	seen[boxIndex] = true
	result := []int{boxIndex}

	sg.forEachCell(bounds, func(cellIdx int) {
		for _, other := range sg.cells[cellIdx].boxIndices {
			if seen[other] {
				continue
			}
			seen[other] = true
			result = append(result, other)
		}
	})

	sort.Ints(result)

	return result
}

func (sg *SpatialGrid) forEachCell(bounds actor.AABB, fn func(cellIdx int)) {
	minCell := sg.worldToCell(bounds.Min)
	maxCell := sg.worldToCell(bounds.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				fn(sg.hashCell(CellKey{x, y, z}))
			}
		}
	}
}

// worldToCell converts a world position into cell coordinates
func (sg *SpatialGrid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / sg.cellSize)),
		Y: int(math.Floor(pos.Y() / sg.cellSize)),
		Z: int(math.Floor(pos.Z() / sg.cellSize)),
	}
}

// hashCell maps a cell to an index of the cell array
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & sg.cellMask
}
