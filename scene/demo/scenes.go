package demo

import (
	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/types"
)

func init() {
	register("bulb", "yellow mandelbulb lit by a large spherical lamp", Bulb)
	register("shadow", "mirror mandelbulb casting a shadow on a chalk floor", Shadow)
	register("spheres", "traced and marched spheres next to a triangle on a plane", Spheres)
	register("lamp", "a single emissive sphere against a dim background", Lamp)
}

func Bulb(width, height uint32) (*scene.Scene, *scene.Camera) {
	cam := scene.NewCamera(
		types.XYZ(-2, 0.6, 4),
		types.XYZ(0, 0, 1),
		types.XYZ(0, 1, 0),
		20,
		width, height,
	)

	plastic := scene.Dielectric(types.XYZ(1, 1, 0.4), 0, 1)
	light := scene.Emissive(types.XYZ(1, 1, 1), 3)

	sc := scene.NewScene(scene.Sky())
	sc.AddTraceable(scene.NewSphere(types.XYZ(4, 4, 4), 4, light))
	sc.AddMarchable(scene.NewMandelbulb(types.Vec3{}, 8, 10, plastic))

	return sc, cam
}

func Shadow(width, height uint32) (*scene.Scene, *scene.Camera) {
	cam := scene.NewCamera(
		types.XYZ(0, 6.2, 0.1),
		types.XYZ(0, 1, 0),
		types.XYZ(0, 1, 0),
		60,
		width, height,
	)

	light := scene.Emissive(types.XYZ(1, 1, 1), 2)
	chalk := scene.Dielectric(types.XYZ(0.5, 0.5, 0.5), 0, 0.8)
	mirror := scene.Metal(types.XYZ(0.7, 0.7, 0.7), 0, 0.2)

	sc := scene.NewScene(scene.Emissive(types.XYZ(0.5, 0.5, 1), 0.2))
	sc.AddMarchable(scene.NewMandelbulb(types.XYZ(0, 1, 0), 8, 10, mirror))
	sc.AddTraceable(scene.NewSphere(types.XYZ(0, 1, 2), 0.5, light))
	sc.AddTraceable(scene.NewPlane(types.Vec3{}, types.XYZ(0, 1, 0), chalk))

	return sc, cam
}

func Spheres(width, height uint32) (*scene.Scene, *scene.Camera) {
	cam := scene.NewCamera(
		types.XYZ(0, 1.5, 6),
		types.XYZ(0, 0.5, 0),
		types.XYZ(0, 1, 0),
		45,
		width, height,
	)

	gold := scene.Metal(types.XYZ(0.9, 0.8, 0.5), 0, 0)
	brushed := scene.Metal(types.XYZ(0.8, 0.8, 0.8), 0, 0.4)
	red := scene.Dielectric(types.XYZ(0.9, 0.2, 0.2), 0.5, 0.6)
	floor := scene.Dielectric(types.XYZ(0.6, 0.6, 0.6), 0, 1)
	light := scene.Emissive(types.XYZ(1, 0.9, 0.8), 4)

	sc := scene.NewScene(scene.Sky())
	sc.AddTraceable(scene.NewSphere(types.XYZ(-1.2, 0.5, 0), 0.5, gold))
	sc.AddMarchable(scene.NewFieldSphere(types.XYZ(1.2, 0.5, 0), 0.5, red))
	sc.AddTraceable(scene.NewTriangle(
		types.XYZ(-0.6, 0, -1),
		types.XYZ(0.6, 0, -1),
		types.XYZ(0, 1.4, -1.2),
		brushed,
	))
	sc.AddTraceable(scene.NewSphere(types.XYZ(0, 4, 2), 1, light))
	sc.AddTraceable(scene.NewPlane(types.Vec3{}, types.XYZ(0, 1, 0), floor))

	return sc, cam
}

func Lamp(width, height uint32) (*scene.Scene, *scene.Camera) {
	cam := scene.NewCamera(
		types.XYZ(0, 0, 5),
		types.Vec3{},
		types.XYZ(0, 1, 0),
		40,
		width, height,
	)

	sc := scene.NewScene(scene.Emissive(types.XYZ(0.1, 0.2, 0.3), 1))
	sc.AddTraceable(scene.NewSphere(types.Vec3{}, 1, scene.Emissive(types.XYZ(1, 1, 1), 3)))

	return sc, cam
}
