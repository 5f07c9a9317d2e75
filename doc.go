// Package lvlopt is your in-memory playground for building and solving
// mathematical optimization models — from linear programs to convex bet
// sizing and robust two-stage planning.
//
// 🚀 What is lvlopt?
//
//	A teaching-first optimization library that brings together:
//		• Modeling: named variables, bounds, integrality, linear expressions
//		• Solving: simplex-backed LP with branch-and-bound for integer vars
//		• Convex: log-barrier interior point for smooth constrained minima
//		• Production planning: the classic two-product LP, indexed & longhand
//		• Portfolio selection: chance-constrained SOCP, budget-uncertainty LP
//		• Kelly criterion: closed form, smooth solve, risk bound, Monte Carlo
//		• Robust planning: column-and-constraint generation over scenario pools
//
// ✨ Why choose lvlopt?
//
//   - Beginner-friendly – every solver mirrors a worked book chapter
//   - Deterministic – same inputs, same pivots, same answers, every run
//   - Pure Go – gonum under the hood, no cgo, no external solver installs
//   - Inspectable – sentinel errors, staged validation, per-variable lookup
//
// Under the hood, everything is organized under these subpackages:
//
//	model/      — variables, expressions, constraints & staged validation
//	solver/     — standard form, simplex, branch-and-bound
//	convex/     — log-barrier Newton for smooth convex programs
//	production/ —
//	portfolio/  — two selection models: chance-constrained & robust
//	kelly/      — bet sizing & wealth simulation
//	robust/     — two-stage planning under budgeted uncertainty
//
// Quick sketch:
//
//	max  c·x
//	s.t. A·x ≤ b,  x ≥ 0  (and x_j integral where you say so)
//
// Dive into examples/ for runnable scenarios and each subpackage's doc.go
// for the full tutorial treatment.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
