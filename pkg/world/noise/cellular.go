package noise

import "math"

// Cellular is a 3D Worley-style field: one feature point is hashed into each
// unit lattice cell and Sample returns the distance to the nearest feature
// point. Low values mean "inside a blob", which callers use for volcano cones
// and oil basins. No library in our dependency set provides cellular noise,
// so the lattice hashing is implemented here.
type Cellular struct {
	seed      int64
	frequency float64
}

// NewCellular creates a cellular distance field.
func NewCellular(seed int64, frequency float64) *Cellular {
	return &Cellular{seed: seed, frequency: frequency}
}

// Sample returns the nearest-feature distance at a point, clamped to [0,1].
// Distances are in lattice-cell units; 0 is exactly on a feature point.
func (c *Cellular) Sample(x, y, z float64) float64 {
	x *= c.frequency
	y *= c.frequency
	z *= c.frequency

	xi := int64(math.Floor(x))
	yi := int64(math.Floor(y))
	zi := int64(math.Floor(z))

	minDist := math.MaxFloat64
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				cx, cy, cz := xi+dx, yi+dy, zi+dz
				fx := float64(cx) + c.featureOffset(cx, cy, cz, 0)
				fy := float64(cy) + c.featureOffset(cx, cy, cz, 1)
				fz := float64(cz) + c.featureOffset(cx, cy, cz, 2)
				ddx, ddy, ddz := x-fx, y-fy, z-fz
				d := ddx*ddx + ddy*ddy + ddz*ddz
				if d < minDist {
					minDist = d
				}
			}
		}
	}

	dist := math.Sqrt(minDist)
	if dist > 1 {
		return 1
	}
	return dist
}

// featureOffset returns the feature point coordinate within a cell, in [0,1).
func (c *Cellular) featureOffset(x, y, z int64, axis uint64) float64 {
	h := uint64(x)*0x9E3779B185EBCA87 ^ uint64(y)*0xC2B2AE3D27D4EB4F ^ uint64(z)*0x165667B19E3779F9 ^ uint64(c.seed)
	h ^= axis * 0xFF51AFD7ED558CCD
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	return float64(h&0xFFFFFF) / float64(1<<24)
}
