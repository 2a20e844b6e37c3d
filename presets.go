/*
 * presets.go, part of golatt.
 *
 * Copyright 2022 The golatt authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Convenience constructors for the usual lattice structures. They only fail on
//a zero lattice constant, so besides the error they are thin wrappers over
//NewLattice.

package latt

import "math"

//Chain returns a 1D chain lattice with spacing a.
func Chain(a float64) (*Lattice, error) {
	return NewLattice([][]float64{{a}})
}

//Square returns a 2D square lattice with spacing a.
func Square(a float64) (*Lattice, error) {
	return NewLattice([][]float64{{a, 0}, {0, a}})
}

//Rectangular returns a 2D rectangular lattice with spacings a1 and a2.
func Rectangular(a1, a2 float64) (*Lattice, error) {
	return NewLattice([][]float64{{a1, 0}, {0, a2}})
}

//Hexagonal returns a 2D hexagonal (triangular) lattice with spacing a.
func Hexagonal(a float64) (*Lattice, error) {
	s := math.Sqrt(3)
	return NewLattice([][]float64{
		{a / 2 * 3, a / 2 * s},
		{a / 2 * 3, -a / 2 * s},
	})
}

//SC returns a simple cubic lattice with spacing a.
func SC(a float64) (*Lattice, error) {
	return NewLattice([][]float64{{a, 0, 0}, {0, a, 0}, {0, 0, a}})
}

//FCC returns a face-centered cubic lattice with conventional-cell constant a.
func FCC(a float64) (*Lattice, error) {
	h := a / 2
	return NewLattice([][]float64{{h, h, 0}, {h, 0, h}, {0, h, h}})
}

//BCC returns a body-centered cubic lattice with conventional-cell constant a.
func BCC(a float64) (*Lattice, error) {
	h := a / 2
	return NewLattice([][]float64{{h, h, h}, {h, -h, h}, {-h, h, h}})
}
