package wildfire

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// noiseField samples the layered coherent noise the island is carved from.
// Three independent generators cover the broad continental shape, fine
// detail, and a slow elevation swell; sample output stays in [-1, 1].
type noiseField struct {
	broad     *perlin.Perlin
	detail    *perlin.Perlin
	elevation *perlin.Perlin
}

func newNoiseField(seed int64) *noiseField {
	return &noiseField{
		broad:     perlin.NewPerlin(2, 2, 4, seed),
		detail:    perlin.NewPerlin(2.5, 2, 1, seed+1),
		elevation: perlin.NewPerlin(2, 2, 2, seed+2),
	}
}

// sample expects normalized coordinates in [0, 1] (plus jitter) and returns a
// tanh-compressed composite of the three layers.
func (n *noiseField) sample(x, y float64) float64 {
	broad := n.broad.Noise2D(x*3, y*3)
	detail := n.detail.Noise2D(x*10, y*10)
	combined := broad*0.85 + detail*0.15
	elevation := n.elevation.Noise2D(x+50, y+50)
	return math.Tanh((combined + 0.3*elevation) * 1.2)
}
