package ga_test

import (
	"fmt"
	"log"
	"math"

	"dasa.cc/conformal/ga"
)

func Example() {
	al := ga.New(ga.Euclidean2)

	e1, err := al.BasisVector(0)
	if err != nil {
		log.Fatal(err)
	}

	// rotate e1 a quarter turn in the e1^e2 plane
	R := al.Rotor(math.Pi/2, 0b11)
	v := al.Sandwich(R, e1)

	fmt.Println(ga.Format(v, []string{"x", "y", "", "", "", "", "", ""}))
	// Output:
	// y
}

func ExampleFormat() {
	v := ga.Multivector{{Scalar: 2, Basis: 0b001}, {Scalar: 0.5, Basis: 0b011}}
	fmt.Println(ga.Format(v, []string{"x", "y", "z", "", "", "", "", ""}))
	// Output:
	// 2.000x + 0.500xy
}
