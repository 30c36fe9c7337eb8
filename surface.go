package nurbs

import "fmt"

// ControlGrid is the rectangular control net of a tensor-product surface.
// Point (i, j) is the i'th control point in the u direction and the j'th in
// the v direction.
type ControlGrid struct {
	rows     [][]Vec
	rational bool
}

// NewControlGrid returns a non-rational control grid. All rows must have the
// same length and all points the same dimension.
func NewControlGrid(points [][]Vec) (ControlGrid, error) {
	if err := checkGrid(points); err != nil {
		return ControlGrid{}, err
	}
	rows := make([][]Vec, len(points))
	for i, row := range points {
		rows[i] = cloneVecs(row)
	}
	return ControlGrid{rows: rows}, nil
}

// NewRationalControlGrid returns a control grid whose points carry weights.
func NewRationalControlGrid(points [][]Vec, weights [][]float64) (ControlGrid, error) {
	if err := checkGrid(points); err != nil {
		return ControlGrid{}, err
	}
	if len(weights) != len(points) {
		return ControlGrid{}, fmt.Errorf("%w: %d weight rows for %d point rows", ErrWeight, len(weights), len(points))
	}
	rows := make([][]Vec, len(points))
	for i, row := range points {
		net, err := NewRationalControlNet(row, weights[i])
		if err != nil {
			return ControlGrid{}, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = net.rows
	}
	return ControlGrid{rows: rows, rational: true}, nil
}

func checkGrid(points [][]Vec) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: no control points", ErrDimension)
	}
	for i, row := range points {
		if len(row) != len(points[0]) {
			return fmt.Errorf("%w: row %d has %d points, want %d", ErrDimension, i, len(row), len(points[0]))
		}
	}
	var all []Vec
	for _, row := range points {
		all = append(all, row...)
	}
	return checkDims(all)
}

// Size returns the number of control points in the u and v directions.
func (g ControlGrid) Size() (nu, nv int) {
	return len(g.rows), len(g.rows[0])
}

func (g ControlGrid) Rational() bool { return g.rational }

func (g ControlGrid) Point(i, j int) Vec {
	if g.rational {
		return dehomogenize(g.rows[i][j])
	}
	return g.rows[i][j].Clone()
}

func (g ControlGrid) Weight(i, j int) float64 {
	if g.rational {
		r := g.rows[i][j]
		return r[len(r)-1]
	}
	return 1
}

// Surface is a tensor-product B-spline or NURBS surface.
type Surface struct {
	u, v KnotVector
	grid ControlGrid
}

// NewSurface returns the surface with knot vectors u and v over grid, whose
// size must match the knot vectors' control point counts.
func NewSurface(u, v KnotVector, grid ControlGrid) (Surface, error) {
	if u.IsZero() || v.IsZero() {
		return Surface{}, fmt.Errorf("%w: zero knot vector", ErrSizeMismatch)
	}
	nu, nv := grid.Size()
	if nu != u.NumControlPoints() || nv != v.NumControlPoints() {
		return Surface{}, fmt.Errorf("%w: %d×%d grid, knot vectors want %d×%d",
			ErrSizeMismatch, nu, nv, u.NumControlPoints(), v.NumControlPoints())
	}
	return Surface{u: u, v: v, grid: grid}, nil
}

func (s Surface) KnotsU() KnotVector { return s.u }
func (s Surface) KnotsV() KnotVector { return s.v }
func (s Surface) Grid() ControlGrid  { return s.grid }

// Domain returns the parameter ranges in both directions.
func (s Surface) Domain() (u0, u1, v0, v1 float64) {
	u0, u1 = s.u.Domain()
	v0, v1 = s.v.Domain()
	return u0, u1, v0, v1
}

// Eval returns the point of the surface at (u, v), evaluating each row of
// the grid as a curve in v and the resulting points as a curve in u.
func (s Surface) Eval(u, v float64) Vec {
	col := make([]Vec, len(s.grid.rows))
	for i, row := range s.grid.rows {
		col[i] = evaluate(s.v, netFromRows(row, s.grid.rational, s.v.periodic), v, 0)[0]
	}
	h := evaluate(s.u, netFromRows(col, s.grid.rational, s.u.periodic), u, 0)[0]
	if s.grid.rational {
		return dehomogenize(h)
	}
	return h
}

// BezierPatch is a tensor-product Bézier patch, parametrized over [0, 1]².
// U0, U1, V0 and V1 record the parameter ranges of the surface the patch was
// cut from.
type BezierPatch struct {
	Points  [][]Vec
	Weights [][]float64
	U0, U1  float64
	V0, V1  float64
}

func (p BezierPatch) Rational() bool { return p.Weights != nil }

// Eval evaluates the patch at (u, v).
func (p BezierPatch) Eval(u, v float64) Vec {
	col := make([]Vec, len(p.Points))
	for i, row := range p.Points {
		if p.Rational() {
			h := make([]Vec, len(row))
			for j, pt := range row {
				h[j] = homogenize(pt, p.Weights[i][j])
			}
			row = h
		}
		col[i] = deCasteljau(row, v)
	}
	h := deCasteljau(col, u)
	if p.Rational() {
		return dehomogenize(h)
	}
	return h
}

// Bezier decomposes the surface into Bézier patches, indexed first by the
// span in u and then by the span in v. The curve decomposition is applied to
// every column of the grid along u, and then to every row of the refined
// grid along v. Periodic directions are unrolled first.
func (s Surface) Bezier() [][]BezierPatch {
	pu, pv := s.u.degree, s.v.degree

	var rows [][]Vec
	for i := range s.u.nControl + periodicExtra(s.u) {
		src := s.grid.rows[i%s.u.nControl]
		rows = append(rows, netFromRows(src, false, s.v.periodic).unrolled(pv))
	}

	nv := len(rows[0])
	cols := make([][]Vec, nv)
	for j := range cols {
		cols[j] = make([]Vec, len(rows))
		for i := range rows {
			cols[j][i] = rows[i][j]
		}
	}
	ukv, cols := bezierRefine(s.u, cols)

	rows = make([][]Vec, ukv.nControl)
	for i := range rows {
		rows[i] = make([]Vec, nv)
		for j := range cols {
			rows[i][j] = cols[j][i]
		}
	}
	vkv, rows := bezierRefine(s.v, rows)

	var out [][]BezierPatch
	for uw := range bezierWindows(ukv) {
		var line []BezierPatch
		for vw := range bezierWindows(vkv) {
			patch := BezierPatch{U0: uw.t0, U1: uw.t1, V0: vw.t0, V1: vw.t1}
			patch.Points = make([][]Vec, pu+1)
			if s.grid.rational {
				patch.Weights = make([][]float64, pu+1)
			}
			for a := range pu + 1 {
				seg := bezierFromRows(rows[uw.first+a][vw.first:vw.first+pv+1], s.grid.rational, 0, 1)
				patch.Points[a] = seg.Points
				if s.grid.rational {
					patch.Weights[a] = seg.Weights
				}
			}
			line = append(line, patch)
		}
		out = append(out, line)
	}
	log().Debug("decomposed surface", "patches", len(out)*len(out[0]), "degree_u", pu, "degree_v", pv)
	return out
}

func periodicExtra(kv KnotVector) int {
	if kv.periodic {
		return kv.degree
	}
	return 0
}
