// Package shape implements the Shape variants from spec.md §3/§4.1:
// sphere, plane, triangle, and indexed triangle mesh. Shapes carry no
// material reference of their own — pairing a Shape with a BSDF is the
// job of Binding (see binding.go), per the ownership discipline in
// spec.md §9.
package shape

import "github.com/kjbrandt/raydiant/pkg/core"

// Shape answers ray intersection and bounding-box queries. Every
// variant must be safe for concurrent read-only use by many render
// workers.
type Shape interface {
	Intersect(ray core.Ray, tMin, tMax float64) (core.SurfaceInteraction, bool)
	Bounds() core.Bounds
}
