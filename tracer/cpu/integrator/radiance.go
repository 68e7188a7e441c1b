package integrator

import (
	"math/rand"

	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/types"
)

// Per-call estimator state. The rng must not be shared between goroutines.
type pathState struct {
	sc  *scene.Scene
	rng *rand.Rand

	// Number of rays cast so far.
	casts int
}

// Estimate the radiance arriving along ray. Depth is the remaining bounce
// budget and branch the number of samples taken for each stochastic lobe.
// The rng must not be shared between goroutines.
func Radiance(sc *scene.Scene, ray types.Ray, depth, branch uint32, rng *rand.Rand) types.Vec3 {
	st := &pathState{sc: sc, rng: rng}
	return st.radiance(ray, depth, branch)
}

func (st *pathState) radiance(ray types.Ray, depth, branch uint32) types.Vec3 {
	ray.Direction = ray.Direction.Normalize()

	st.casts++
	hit, ok := Cast(st.sc, ray)
	if !ok {
		return st.sc.Background.Radiance()
	}

	// Out of bounces: no further paths are spawned so only the surface's own
	// emission remains, which is black for non-emissive surfaces.
	if depth == 0 {
		return hit.Material.Radiance()
	}
	if branch == 0 {
		branch = 1
	}

	mat := hit.Material
	position := ray.PointAt(hit.Distance)

	diffuse := st.diffuseTerm(position, hit.Normal, mat, depth, branch)
	specular := st.specularTerm(ray, position, hit.Normal, mat, depth, branch)

	fresnel := Fresnel(mat.Specular, -hit.Normal.Dot(ray.Direction))
	dielectric := specular.Mul(fresnel).Add(diffuse.Mul(1 - fresnel))
	metallic := specular.MulVec(mat.Color)

	return dielectric.Lerp(metallic, mat.Metallic).Add(mat.Radiance())
}

// Diffuse sub-paths are never split further.
func (st *pathState) diffuseTerm(position, normal types.Vec3, mat scene.Material, depth, branch uint32) types.Vec3 {
	var acc types.Vec3
	for i := uint32(0); i < branch; i++ {
		scatter := types.NewRay(position, normal.Add(RandomInUnitSphere(st.rng)))
		sample := st.radiance(scatter, depth-1, 1)
		acc = acc.Add(mat.Color.MulVec(sample))
	}
	return acc.Div(float64(branch))
}

// Mirrors take a single deterministic sample; rough surfaces perturb the
// reflection and halve the branch factor on each bounce.
func (st *pathState) specularTerm(ray types.Ray, position, normal types.Vec3, mat scene.Material, depth, branch uint32) types.Vec3 {
	reflected := ray.Direction.Reflect(normal)
	if mat.Roughness == 0 {
		return st.radiance(types.NewRay(position, reflected), depth-1, branch)
	}

	subBranch := branch / 2
	if subBranch < 1 {
		subBranch = 1
	}

	var acc types.Vec3
	for i := uint32(0); i < branch; i++ {
		dir := reflected.Add(RandomInUnitSphere(st.rng).Mul(mat.Roughness))
		acc = acc.Add(st.radiance(types.NewRay(position, dir), depth-1, subBranch))
	}
	return acc.Div(float64(branch))
}
