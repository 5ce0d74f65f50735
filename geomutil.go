package reactphysics3d

import (
	"math"

	"github.com/golang/geo/r3"
)

// AreParallelVectors reports whether v1 and v2 are parallel (including
// anti-parallel), up to a scale-invariant tolerance. Used to decline
// degenerate edge-edge and capsule-edge axis candidates.
func AreParallelVectors(v1, v2 r3.Vector) bool {
	cross := v1.Cross(v2)
	return cross.Dot(cross) < 1e-8*v1.Dot(v1)*v2.Dot(v2)+1e-12
}

// ClosestPointsBetweenSegments computes the closest points c1 on segment
// [p1,q1] and c2 on segment [p2,q2], following the standard clamped
// parametric approach (Ericson, Real-Time Collision Detection §5.1.9).
func ClosestPointsBetweenSegments(p1, q1, p2, q2 r3.Vector) (c1, c2 r3.Vector) {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	const eps = 1e-12
	var s, t float64

	if a <= eps && e <= eps {
		return p1, p2
	}
	if a <= eps {
		s = 0
		t = clamp01(f / e)
	} else {
		c := d1.Dot(r)
		if e <= eps {
			t = 0
			s = clamp01(-c / a)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b
			if denom != 0 {
				s = clamp01((b*f - c*e) / denom)
			} else {
				s = 0
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = clamp01(-c / a)
			} else if t > 1 {
				t = 1
				s = clamp01((b - c) / a)
			}
		}
	}
	c1 = p1.Add(d1.Mul(s))
	c2 = p2.Add(d2.Mul(t))
	return c1, c2
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Plane is a half-space boundary: the inside half-space is
// {x : (x-Point)·Normal <= 0}.
type Plane struct {
	Point  r3.Vector
	Normal r3.Vector
}

// ClipSegmentWithPlanes clips segment [p,q] against the intersection of the
// given half-spaces. It always returns two points; if the clipped region
// collapses to a single point or is empty, both returned points are equal
// (the nearest point of the degenerate interval).
func ClipSegmentWithPlanes(p, q r3.Vector, planes []Plane) (c1, c2 r3.Vector) {
	tMin, tMax := 0.0, 1.0
	d := q.Sub(p)

	for _, pl := range planes {
		fp := pl.Normal.Dot(p.Sub(pl.Point))
		denom := pl.Normal.Dot(d)
		if math.Abs(denom) < 1e-12 {
			if fp > 0 {
				// Segment lies entirely outside this half-space: collapse.
				tMax = tMin
			}
			continue
		}
		tCross := -fp / denom
		if denom > 0 {
			if tCross < tMax {
				tMax = tCross
			}
		} else {
			if tCross > tMin {
				tMin = tCross
			}
		}
	}

	if tMin > tMax {
		tMid := (tMin + tMax) / 2
		mid := p.Add(d.Mul(clamp01(tMid)))
		return mid, mid
	}
	return p.Add(d.Mul(tMin)), p.Add(d.Mul(tMax))
}

// ClipPolygonWithPlanes clips the convex polygon described by vertices
// (in order) against the intersection of the given half-spaces, using the
// Sutherland-Hodgman algorithm. It may return fewer vertices than the
// input, including zero if the polygon is clipped away entirely.
func ClipPolygonWithPlanes(vertices []r3.Vector, planes []Plane) []r3.Vector {
	output := append([]r3.Vector(nil), vertices...)
	for _, pl := range planes {
		if len(output) == 0 {
			break
		}
		input := output
		output = nil
		n := len(input)
		for i := 0; i < n; i++ {
			cur := input[i]
			prev := input[(i-1+n)%n]
			curInside := pl.Normal.Dot(cur.Sub(pl.Point)) <= 0
			prevInside := pl.Normal.Dot(prev.Sub(pl.Point)) <= 0
			if curInside != prevInside {
				output = append(output, segmentPlaneIntersection(prev, cur, pl))
			}
			if curInside {
				output = append(output, cur)
			}
		}
	}
	return output
}

func segmentPlaneIntersection(p, q r3.Vector, pl Plane) r3.Vector {
	d := q.Sub(p)
	denom := pl.Normal.Dot(d)
	if math.Abs(denom) < 1e-12 {
		return p
	}
	t := -pl.Normal.Dot(p.Sub(pl.Point)) / denom
	return p.Add(d.Mul(clamp01(t)))
}
