package iconbuilder

import (
	"golang.org/x/image/draw"

	"folder-icon/internal/config"
)

// Interpolator maps a config resample name to its scaler.
// Unknown names select draw.CatmullRom.
func Interpolator(name string) draw.Interpolator {
	switch name {
	case config.ResampleNearest:
		return draw.NearestNeighbor
	case config.ResampleApproxBilinear:
		return draw.ApproxBiLinear
	case config.ResampleBilinear:
		return draw.BiLinear
	default:
		return draw.CatmullRom
	}
}
