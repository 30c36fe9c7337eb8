package nurbs

// Split cuts the curve at t, which must lie strictly inside the domain.
//
// A non-periodic curve is split into two curves, the part before t and the
// part after it. Both are clamped at the cut, share the point at t as their
// common end point, and are reparametrized so that their domains start at
// zero: the front piece at t' corresponds to the original curve at t'+start,
// the rear piece at t' to the original curve at t'+t.
//
// A periodic curve is opened at t instead, producing a single non-periodic
// curve that starts and ends at the point at t and whose domain is [0,
// period].
//
// Knots are inserted at t until its multiplicity equals the degree; no
// resampling takes place.
func (c Curve) Split(t float64) []Curve {
	const op = "Split"
	start, end := c.Domain()
	tol := CurrentTolerance().Parameter
	if c.knots.periodic {
		t = c.knots.Wrap(t)
	} else if !(t > start+tol && t < end-tol) {
		fault(op, "split parameter %g not inside domain (%g, %g)", t, start, end)
	}

	t = c.knots.snap(t)

	p := c.knots.degree
	cur := c
	inserted := 0
	for cur.knots.MultiplicityOf(t) < p {
		cur = cur.InsertKnot(t)
		inserted++
	}
	log().Debug("split", "t", t, "inserted", inserted, "periodic", c.knots.periodic)

	if c.knots.periodic {
		return []Curve{cur.openAt(t)}
	}
	front, rear := cur.cutAt(t)
	return []Curve{front, rear}
}

// cutAt partitions a non-periodic curve whose knot t has multiplicity of at
// least the degree.
func (c Curve) cutAt(t float64) (Curve, Curve) {
	const op = "Split"
	kv := c.knots
	p := kv.degree
	tol := CurrentTolerance().Parameter
	slot := -1
	for i, v := range kv.values {
		if v-t > -tol && v-t < tol {
			slot = i
			break
		}
	}
	if slot <= 0 || slot == len(kv.values)-1 {
		fault(op, "no interior knot slot for %g in %s", t, kv)
	}
	prior := kv.mults[slot]

	nFront := 0
	for _, m := range kv.mults[:slot] {
		nFront += m
	}
	nRear := 0
	for _, m := range kv.mults[slot+1:] {
		nRear += m
	}
	rearStart := nFront - 1
	if prior > p {
		rearStart = nFront
	}

	start, _ := kv.Domain()
	cut := kv.values[slot]
	frontValues := make([]float64, slot+1)
	for i, v := range kv.values[:slot+1] {
		frontValues[i] = v - start
	}
	frontMults := append([]int(nil), kv.mults[:slot+1]...)
	frontMults[slot] = p + 1

	rearValues := make([]float64, len(kv.values)-slot)
	for i, v := range kv.values[slot:] {
		rearValues[i] = v - cut
	}
	rearMults := append([]int(nil), kv.mults[slot:]...)
	rearMults[0] = p + 1

	front := newCurve(op,
		mustKnotVector(op, p, frontValues, frontMults, nFront, false),
		cloneVecs(c.net.rows[:nFront]),
		c.net.rational)
	rear := newCurve(op,
		mustKnotVector(op, p, rearValues, rearMults, nRear, false),
		cloneVecs(c.net.rows[rearStart:rearStart+nRear]),
		c.net.rational)
	return front, rear
}

// openAt unrolls a periodic curve whose knot t has multiplicity equal to the
// degree into a clamped non-periodic curve covering one period starting at t.
func (c Curve) openAt(t float64) Curve {
	const op = "Split"
	kv := c.knots
	p, n := kv.degree, kv.nControl
	seg := kv.SegmentIndex(t)
	cut := kv.flat[seg+p]
	period := kv.Period()

	flat := make([]float64, 0, n+p+2)
	for range p + 1 {
		flat = append(flat, 0)
	}
	for i := seg + p + 1; i <= seg+n; i++ {
		flat = append(flat, kv.periodicKnot(i)-cut)
	}
	for range p + 1 {
		flat = append(flat, period)
	}
	values, mults := tabulate(flat, CurrentTolerance().Parameter)

	rows := make([]Vec, n+1)
	for j := range rows {
		rows[j] = c.net.row(seg + j).Clone()
	}
	return newCurve(op, mustKnotVector(op, p, values, mults, n+1, false), rows, c.net.rational)
}
