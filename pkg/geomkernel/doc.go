// Package geomkernel defines the narrow capability set the AAG builder and
// recognizers need from a B-rep kernel. It is a pure, side-effect-free
// contract: no mutation, no hidden caches. The real kernel (STEP/IGES
// import, solid booleans, NURBS evaluation) lives outside this module;
// geomkernel only describes what callers may ask of it.
package geomkernel
