package nurbs

import "math"

// Box is an axis-aligned bounding box in any number of dimensions.
type Box struct {
	Min, Max Vec
}

// BoxOf returns the smallest box containing all of pts. It returns the zero
// Box if pts is empty.
func BoxOf(pts ...Vec) Box {
	if len(pts) == 0 {
		return Box{}
	}
	b := Box{Min: pts[0].Clone(), Max: pts[0].Clone()}
	for _, p := range pts[1:] {
		b = b.UnionPoint(p)
	}
	return b
}

// Dim returns the number of dimensions of the box.
func (b Box) Dim() int { return len(b.Min) }

// Size returns the extent of the box along each axis.
func (b Box) Size() Vec {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return b.Min.Midpoint(b.Max)
}

// UnionPoint returns the smallest box containing b and p.
func (b Box) UnionPoint(p Vec) Box {
	out := Box{Min: b.Min.Clone(), Max: b.Max.Clone()}
	for i, c := range p {
		out.Min[i] = math.Min(out.Min[i], c)
		out.Max[i] = math.Max(out.Max[i], c)
	}
	return out
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return b.UnionPoint(o.Min).UnionPoint(o.Max)
}

// Inflate returns b grown by d in every direction.
func (b Box) Inflate(d float64) Box {
	out := Box{Min: b.Min.Clone(), Max: b.Max.Clone()}
	for i := range out.Min {
		out.Min[i] -= d
		out.Max[i] += d
	}
	return out
}

// Contains reports whether p lies inside the box or on its boundary.
func (b Box) Contains(p Vec) bool {
	for i, c := range p {
		if c < b.Min[i] || c > b.Max[i] {
			return false
		}
	}
	return true
}
