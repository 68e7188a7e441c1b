package scene

import "github.com/achilleasa/lumen/types"

// Defines the reflectance parameters of a surface.
type Material struct {
	// Albedo. Also tints the emitted light.
	Color types.Vec3

	// Radiance multiplier; 0 means non-emissive.
	Emission float64

	// Blend weight between the dielectric and metallic layers.
	Metallic float64

	// Specular weight. Also used to derive the index of refraction used for
	// Fresnel weighting.
	Specular float64

	// 0 is a perfect mirror.
	Roughness float64

	// Carried for completeness; shading does not consume it.
	Transmission float64
}

// The default background material.
func Sky() Material {
	return Emissive(types.XYZ(0.2, 1.0, 0.8), 0.6)
}

// Create a light emitting material.
func Emissive(color types.Vec3, emission float64) Material {
	return Material{
		Color:    color,
		Emission: emission,
	}
}

// Create a fully metallic material.
func Metal(color types.Vec3, specular, roughness float64) Material {
	return Material{
		Color:     color,
		Metallic:  1,
		Specular:  specular,
		Roughness: roughness,
	}
}

// Create a non-metallic material.
func Dielectric(color types.Vec3, specular, roughness float64) Material {
	return Material{
		Color:     color,
		Specular:  specular,
		Roughness: roughness,
	}
}

// Get the light emitted by this material.
func (m Material) Radiance() types.Vec3 {
	return m.Color.Mul(m.Emission)
}
