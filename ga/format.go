package ga

import (
	"fmt"
	"math"
	"strings"
)

// Format renders v as a linear combination of labelled blades, e.g.
// "2.000x + 3.000yz". A blade's label concatenates the labels of its
// vectors in canonical order; a unit coefficient is abbreviated away and
// an empty sum renders as "0". Labels must cover the highest vector
// index present in v.
func Format(v Multivector, labels []string) string {
	var terms []string
	for _, b := range simplify(v) {
		terms = append(terms, formatTerm(b.Scalar, bladeLabel(b.Basis, labels)))
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

func bladeLabel(basis uint8, labels []string) string {
	var s strings.Builder
	for i := 0; i < MaxDim; i++ {
		if basis>>uint(i)&1 == 1 {
			s.WriteString(labels[i])
		}
	}
	return s.String()
}

func formatTerm(coefficient float64, base string) string {
	if base != "" && math.Abs(coefficient-1) <= Eps {
		return base
	}
	return fmt.Sprintf("%.3f%s", coefficient, base)
}
