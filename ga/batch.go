package ga

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SandwichAll applies the versor v to every operand in xs, fanning the
// independent sandwich products across a bounded worker group. Results
// are positionally aligned with xs. Every product is pure, so workers
// share nothing but the read-only inputs.
func (al Algebra) SandwichAll(v Multivector, xs []Multivector) []Multivector {
	out := make([]Multivector, len(xs))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, x := range xs {
		i, x := i, x
		g.Go(func() error {
			out[i] = al.Sandwich(v, x)
			return nil
		})
	}
	g.Wait()
	return out
}
