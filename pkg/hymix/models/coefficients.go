// Package models defines data structures for mixing-ratio estimation.
package models

// CoefficientSet holds the end-member coefficient rows.
// A and B always have the same length once built by the parser.
type CoefficientSet struct {
	// A is the end-member A coefficient row.
	A []float64 `json:"a"`
	// B is the end-member B coefficient row.
	B []float64 `json:"b"`
}

// N returns the number of coefficient positions.
func (c CoefficientSet) N() int {
	return len(c.A)
}

// Half splits both rows into their component and isotope halves.
// Callers must check that N is even first.
func (c CoefficientSet) Half() (component, isotope CoefficientSet) {
	m := c.N() / 2
	component = CoefficientSet{A: c.A[:m], B: c.B[:m]}
	isotope = CoefficientSet{A: c.A[m:], B: c.B[m:]}
	return component, isotope
}
