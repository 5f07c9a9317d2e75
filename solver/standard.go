// Package solver: standard-form assembly.
//
// The simplex core wants min cᵀx, Ax = b, x >= 0. Models arrive with
// arbitrary bounds, three relations and a free sense, so assembly rewrites
// variables and rows:
//
//	Stage 1 - columns: a finite lower bound shifts out (x = lb + x'), an
//	          upper-only bound mirrors (x = ub - x'), a free variable splits
//	          (x = x⁺ - x⁻). Finite upper bounds of shifted columns become
//	          extra <= rows on the column itself.
//	Stage 2 - rows: >= rows negate into <=; every <= row receives a unique
//	          slack column, which also keeps the row block full rank; = rows
//	          pass through.
//	Stage 3 - objective: Maximize negates into the minimize convention.
//
// Readback undoes Stage 1 so callers only ever see user variable space; the
// reported objective is recomputed from user values, which sidesteps all
// shift/negation constant bookkeeping.
//
// The conversion intentionally avoids gonum's lp.Convert: assembling
// directly keeps bounded variables out of the free-variable split that
// Convert applies wholesale, and sidesteps its known trouble with
// unbounded reformulations.

package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlopt/model"
)

// colKind tags how a model variable maps onto standard-form columns.
type colKind uint8

const (
	colShifted  colKind = iota // x = shift + x'[col]
	colMirrored                // x = shift - x'[col]
	colSplit                   // x = x'[col] - x'[neg]
)

// colRef is the per-variable column mapping.
type colRef struct {
	kind  colKind
	col   int
	neg   int // second column of a split variable
	shift float64
}

// standardForm is an assembled simplex instance plus everything needed to
// translate a solution back into user space.
type standardForm struct {
	c    []float64
	a    *mat.Dense
	b    []float64
	refs []colRef // indexed by model.Var
}

// assemble builds the standard form of m under the given bound vectors.
// Bounds are passed explicitly (not read from the model) so branch-and-bound
// can tighten its own copies per node. The model must already be validated;
// lo/hi must be well-ordered intervals.
func assemble(m *model.Model, lo, hi []float64) (*standardForm, error) {
	n := m.NumVars()

	// Stage 1 - column mapping and upper-bound rows.
	type boundRow struct {
		col   int
		width float64
	}
	refs := make([]colRef, n)
	var bounds []boundRow
	ncols := 0
	for j := 0; j < n; j++ {
		l, h := lo[j], hi[j]
		switch {
		case math.IsInf(l, -1) && math.IsInf(h, 1):
			refs[j] = colRef{kind: colSplit, col: ncols, neg: ncols + 1}
			ncols += 2
		case math.IsInf(l, -1):
			refs[j] = colRef{kind: colMirrored, col: ncols, shift: h}
			ncols++
		default:
			refs[j] = colRef{kind: colShifted, col: ncols, shift: l}
			ncols++
			if !math.IsInf(h, 1) {
				bounds = append(bounds, boundRow{col: ncols - 1, width: h - l})
			}
		}
	}

	// Stage 2 - rows in structural-column space.
	type denseRow struct {
		coef []float64
		rhs  float64
		le   bool
	}
	rows := make([]denseRow, 0, m.NumConstraints()+len(bounds))
	for i := 0; i < m.NumConstraints(); i++ {
		coef := make([]float64, ncols)
		rhs := m.RowRHS(i)
		for _, en := range m.RowEntries(i) {
			switch r := refs[en.Var]; r.kind {
			case colShifted:
				coef[r.col] += en.Coef
				rhs -= en.Coef * r.shift
			case colMirrored:
				coef[r.col] -= en.Coef
				rhs -= en.Coef * r.shift
			case colSplit:
				coef[r.col] += en.Coef
				coef[r.neg] -= en.Coef
			}
		}
		switch m.RowRelation(i) {
		case model.GE:
			floats.Scale(-1, coef)
			rows = append(rows, denseRow{coef: coef, rhs: -rhs, le: true})
		case model.EQ:
			rows = append(rows, denseRow{coef: coef, rhs: rhs, le: false})
		default: // model.LE
			rows = append(rows, denseRow{coef: coef, rhs: rhs, le: true})
		}
	}
	for _, br := range bounds {
		coef := make([]float64, ncols)
		coef[br.col] = 1
		rows = append(rows, denseRow{coef: coef, rhs: br.width, le: true})
	}

	// Zero-column guard: a structural column untouched by every row cannot
	// be priced by the simplex and gonum rejects the matrix outright.
	used := make([]bool, ncols)
	for _, r := range rows {
		for k, v := range r.coef {
			if v != 0 {
				used[k] = true
			}
		}
	}
	for j := 0; j < n; j++ {
		r := refs[j]
		if !used[r.col] || (r.kind == colSplit && !used[r.neg]) {
			return nil, fmt.Errorf("variable %q: %w", m.VarName(model.Var(j)), ErrZeroColumn)
		}
	}

	// Stage 3 - slack columns and the minimize-convention objective.
	nslack := 0
	for _, r := range rows {
		if r.le {
			nslack++
		}
	}
	total := ncols + nslack
	a := mat.NewDense(len(rows), total, nil)
	b := make([]float64, len(rows))
	slack := ncols
	for i, r := range rows {
		for k, v := range r.coef {
			if v != 0 {
				a.Set(i, k, v)
			}
		}
		b[i] = r.rhs
		if r.le {
			a.Set(i, slack, 1)
			slack++
		}
	}

	c0, _ := m.ObjectiveVector()
	c := make([]float64, total)
	for j := 0; j < n; j++ {
		cj := c0[j]
		if m.Sense() == model.Maximize {
			cj = -cj
		}
		switch r := refs[j]; r.kind {
		case colShifted:
			c[r.col] += cj
		case colMirrored:
			c[r.col] -= cj
		case colSplit:
			c[r.col] += cj
			c[r.neg] -= cj
		}
	}

	return &standardForm{c: c, a: a, b: b, refs: refs}, nil
}

// userX maps a standard-form point back to user variable space.
func (sf *standardForm) userX(xt []float64) []float64 {
	x := make([]float64, len(sf.refs))
	for j, r := range sf.refs {
		switch r.kind {
		case colShifted:
			x[j] = r.shift + xt[r.col]
		case colMirrored:
			x[j] = r.shift - xt[r.col]
		case colSplit:
			x[j] = xt[r.col] - xt[r.neg]
		}
	}
	return x
}

// userObjective evaluates the model objective at a user-space point,
// constant included, in the model's own sense.
func userObjective(m *model.Model, x []float64) float64 {
	c0, konst := m.ObjectiveVector()
	return round1e9(konst + floats.Dot(c0, x))
}

// round1e9 stabilizes accumulated floating-point drift to a 1e-9 grid so
// equal solutions print and compare identically across runs.
func round1e9(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}
