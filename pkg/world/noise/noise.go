// Package noise provides the deterministic scalar fields the world model is
// built from: fractal (fBm) and ridged simplex fields, time-advected Perlin
// fields, and cellular fields over ℝ³. Every field is a pure function of its
// seed and parameters; identical construction yields bit-identical output.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Per-domain seed offsets. Each domain field is seeded base_seed + offset so
// the fields decorrelate while remaining reproducible from one world seed.
// Oil/cloud/weather/pressure reuse earlier offsets; the collisions are part
// of the fixed seeding table and are harmless because the colliding fields
// use different noise types or parameters.
const (
	OffsetTerrain  int64 = 0
	OffsetMoisture int64 = 1000
	OffsetTempVar  int64 = 2000
	OffsetWind     int64 = 3000
	OffsetRiver    int64 = 4000
	OffsetVolcano  int64 = 5000
	OffsetCoal     int64 = 6000
	OffsetIron     int64 = 7000
	OffsetOil      int64 = OffsetRiver
	OffsetCloud    int64 = OffsetVolcano
	OffsetWeather  int64 = OffsetCoal
	OffsetPressure int64 = OffsetIron
)

// To01 remaps a [-1,1] noise value into [0,1].
func To01(v float64) float64 {
	return (v + 1) * 0.5
}

// Fractal is a multi-octave simplex (fBm) field. Sample output is
// normalized into [-1,1] regardless of octave count.
type Fractal struct {
	src        opensimplex.Noise
	octaves    int
	lacunarity float64
	gain       float64
	frequency  float64
}

// NewFractal creates an fBm field over OpenSimplex noise.
func NewFractal(seed int64, frequency float64, octaves int, lacunarity, gain float64) *Fractal {
	if octaves < 1 {
		octaves = 1
	}
	return &Fractal{
		src:        opensimplex.New(seed),
		octaves:    octaves,
		lacunarity: lacunarity,
		gain:       gain,
		frequency:  frequency,
	}
}

// Sample evaluates the field at a point, returning a value in [-1,1].
func (f *Fractal) Sample(x, y, z float64) float64 {
	freq := f.frequency
	amp := 1.0
	sum := 0.0
	ampSum := 0.0
	for i := 0; i < f.octaves; i++ {
		sum += f.src.Eval3(x*freq, y*freq, z*freq) * amp
		ampSum += amp
		amp *= f.gain
		freq *= f.lacunarity
	}
	return sum / ampSum
}

// SampleOctave evaluates a single extra octave at a frequency multiple of the
// base frequency. Used for level-of-detail blending on top of Sample.
func (f *Fractal) SampleOctave(x, y, z, freqMul float64) float64 {
	freq := f.frequency * freqMul
	return f.src.Eval3(x*freq, y*freq, z*freq)
}

// Ridged is a multi-octave ridged simplex field producing sharp crests, used
// for vein-like structures. Sample output is in [0,1] with ridge lines near 1.
type Ridged struct {
	src        opensimplex.Noise
	octaves    int
	lacunarity float64
	gain       float64
	frequency  float64
}

// NewRidged creates a ridged multifractal field over OpenSimplex noise.
func NewRidged(seed int64, frequency float64, octaves int, lacunarity, gain float64) *Ridged {
	if octaves < 1 {
		octaves = 1
	}
	return &Ridged{
		src:        opensimplex.New(seed),
		octaves:    octaves,
		lacunarity: lacunarity,
		gain:       gain,
		frequency:  frequency,
	}
}

// Sample evaluates the field at a point, returning a value in [0,1].
func (r *Ridged) Sample(x, y, z float64) float64 {
	freq := r.frequency
	amp := 1.0
	sum := 0.0
	ampSum := 0.0
	for i := 0; i < r.octaves; i++ {
		n := 1 - math.Abs(r.src.Eval3(x*freq, y*freq, z*freq))
		sum += n * n * amp
		ampSum += amp
		amp *= r.gain
		freq *= r.lacunarity
	}
	return sum / ampSum
}

// advectScale converts hours into world-space drift distance. One hour of
// simulated time shifts the sampling point by 10 units.
const advectScale = 10.0

// Drift is a time-advected Perlin field for transient weather quantities.
// The time argument slides the sampling point along the z axis so the
// pattern drifts rather than mutates.
type Drift struct {
	p         *perlin.Perlin
	frequency float64
}

// NewDrift creates a time-advected Perlin field. alpha/beta follow go-perlin
// conventions (smoothing and frequency ratio between octaves).
func NewDrift(seed int64, frequency float64, octaves int32) *Drift {
	return &Drift{
		p:         perlin.NewPerlin(2, 2, octaves, seed),
		frequency: frequency,
	}
}

// Sample evaluates the field at a point and time, returning a value clamped
// to [-1,1].
func (d *Drift) Sample(x, y, z, hours float64) float64 {
	v := d.p.Noise3D(x*d.frequency, y*d.frequency, (z+hours*advectScale)*d.frequency)
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// Sample01 evaluates the field remapped into [0,1].
func (d *Drift) Sample01(x, y, z, hours float64) float64 {
	return To01(d.Sample(x, y, z, hours))
}
