// Package synth implements a small, analytic geometry kernel over
// parametric solid primitives (blocks, cylindrical bores, fillets,
// chamfers, pockets, plate pairs). It satisfies the geomkernel.Shape
// contract without depending on any external B-rep engine, so the AAG
// builder and the recognizers can be exercised against known-good
// fixtures whose features and expected classifications are known in
// advance.
//
// Every primitive is assembled by a builder that registers faces and
// edges explicitly; there is no general solid-modeling boolean
// machinery here, only the fixture shapes the recognizers' reference
// scenarios need.
package synth
