package main

import (
	"math"

	"github.com/hschendel/stl"

	gear "github.com/mbrooker/gear-gen"
)

// gearMesh builds a preview mesh of the finished gear: the cross-section
// is approximated as alternating arcs at the outside and root radius,
// half an angular pitch each, joined by radial flanks, then extruded to
// the gear width along Z. Good enough to eyeball tooth count and
// proportions; it is not the true involute form the cutter leaves.
func gearMesh(dim gear.Dimensions, teeth int, width float64, arcSteps int) *stl.Solid {
	outer := dim.OutsideDiameter / 2
	root := dim.RootDiameter / 2
	pitch := dim.AngularPitch * math.Pi / 180

	// closed outline, one point per segment boundary
	var profile []stl.Vec3
	for i := 0; i < teeth; i++ {
		base := float64(i) * pitch
		for s := 0; s < arcSteps; s++ {
			a := base + pitch/2*float64(s)/float64(arcSteps)
			profile = append(profile, vec(outer*math.Cos(a), outer*math.Sin(a), 0))
		}
		for s := 0; s < arcSteps; s++ {
			a := base + pitch/2 + pitch/2*float64(s)/float64(arcSteps)
			profile = append(profile, vec(root*math.Cos(a), root*math.Sin(a), 0))
		}
	}

	solid := &stl.Solid{Name: "gear"}

	top := float32(width)
	for i := range profile {
		a := profile[i]
		b := profile[(i+1)%len(profile)]
		aTop := stl.Vec3{a[0], a[1], top}
		bTop := stl.Vec3{b[0], b[1], top}

		// side wall
		addTriangle(solid, a, b, bTop)
		addTriangle(solid, a, bTop, aTop)

		// end caps, fanned from the axis
		addTriangle(solid, b, a, vec(0, 0, 0))
		addTriangle(solid, aTop, bTop, stl.Vec3{0, 0, top})
	}

	return solid
}

func addTriangle(solid *stl.Solid, a, b, c stl.Vec3) {
	solid.AppendTriangle(stl.Triangle{
		Normal:   normal(a, b, c),
		Vertices: [3]stl.Vec3{a, b, c},
	})
}

// normal computes the facet normal from the winding order
func normal(a, b, c stl.Vec3) stl.Vec3 {
	ux := b[0] - a[0]
	uy := b[1] - a[1]
	uz := b[2] - a[2]
	vx := c[0] - a[0]
	vy := c[1] - a[1]
	vz := c[2] - a[2]

	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx

	length := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
	if length == 0 {
		return stl.Vec3{0, 0, 0}
	}
	return stl.Vec3{nx / length, ny / length, nz / length}
}

func vec(x, y, z float64) stl.Vec3 {
	return stl.Vec3{float32(x), float32(y), float32(z)}
}
