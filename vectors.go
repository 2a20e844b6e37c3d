/*
 * vectors.go, part of golatt.
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

//vectors.go holds the vector algebra of the lattice: the linear transforms
//between lattice-index space and real space, and the reciprocal basis.

package latt

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//floorEps absorbs the rounding error of the inverse solve when a coordinate
//lands exactly on a cell boundary.
const floorEps = 1e-10

//Translate returns the real-space position reached by translating r by the
//integer lattice vector n, i.e. r + vectors*n. A nil r means the origin, so
//just the translation is returned. Pure, no side effects.
func (L *Lattice) Translate(n []int, r []float64) []float64 {
	t := mulVec(L.vectors, itof(n))
	if r != nil {
		floats.Add(t, r)
	}
	return t
}

//ITranslate is the inverse of Translate: it decomposes the real-space vector
//v into an integer translation vector n and the remainder r = v-Translate(n),
//which always lies inside the half-open fundamental cell at the origin. The
//integer part is the floor, not the nearest integer, which is what keeps the
//remainder inside the cell.
func (L *Lattice) ITranslate(v []float64) (n []int, r []float64) {
	itrans := mulVec(L.inv, v)
	n = make([]int, L.dim)
	for i, x := range itrans {
		//the tiny shift keeps solver noise at a cell boundary from
		//flooring into the previous cell
		n[i] = int(math.Floor(x + floorEps))
	}
	r = make([]float64, L.dim)
	copy(r, v)
	floats.Sub(r, L.Translate(n, nil))
	return n, r
}

//EstimateIndex returns the translation vector whose cell is nearest to the
//given global position, by rounding the solution of the inverse transform.
//Unlike ITranslate it does not assume pos is a lattice site, so it is the one
//to use on noisy coordinates.
func (L *Lattice) EstimateIndex(pos []float64) []int {
	itrans := mulVec(L.inv, pos)
	n := make([]int, L.dim)
	for i, x := range itrans {
		n[i] = int(math.Round(x))
	}
	return n
}

//GetPosition returns the real-space position of the site with atom index
//alpha in the unit cell at translation n. A nil n means the origin cell.
//It panics if alpha is out of range of the atomic basis.
func (L *Lattice) GetPosition(n []int, alpha int) []float64 {
	r := make([]float64, L.dim)
	copy(r, L.positions[alpha])
	if n == nil {
		return r
	}
	return L.Translate(n, r)
}

//TranslateCell returns the positions of all the sites of the unit cell at
//translation n, in atom-index order.
func (L *Lattice) TranslateCell(n []int) [][]float64 {
	ret := make([][]float64, len(L.atoms))
	for alpha := range L.atoms {
		ret[alpha] = L.GetPosition(n, alpha)
	}
	return ret
}

//Distance returns the Euclidean distance between the two given sites.
func (L *Lattice) Distance(idx0, idx1 Index) float64 {
	r0 := L.GetPosition(idx0.N, idx0.Alpha)
	r1 := L.GetPosition(idx1.N, idx1.Alpha)
	return floats.Distance(r0, r1, 2)
}

//ReciprocalVectors computes the reciprocal basis of the lattice. The basis is
//embedded in 3D space, padding the missing dimensions with an identity block,
//the standard cross-product construction scaled by 2*pi over the cell volume
//is applied, and the result is projected back down. Works for dimensions 1 to
//3; for a 1D chain it degenerates to 2*pi/a.
func (L *Lattice) ReciprocalVectors() *mat.Dense {
	if L.dim > 3 {
		panic(PanicMsg("goLatt: reciprocal vectors only available for lattices of dimension <=3"))
	}
	vecs := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	for i := 0; i < L.dim; i++ {
		for j := 0; j < L.dim; j++ {
			vecs.Set(i, j, L.vectors.At(i, j))
		}
	}
	a1 := vecs.RawRowView(0)
	a2 := vecs.RawRowView(1)
	a3 := vecs.RawRowView(2)
	factor := 2 * math.Pi / L.cellVolume
	b1 := cross(a2, a3)
	b2 := cross(a3, a1)
	b3 := cross(a1, a2)
	floats.Scale(factor, b1)
	floats.Scale(factor, b2)
	floats.Scale(factor, b3)
	rvecs := [3][]float64{b1, b2, b3}
	ret := mat.NewDense(L.dim, L.dim, nil)
	for i := 0; i < L.dim; i++ {
		for j := 0; j < L.dim; j++ {
			ret.Set(i, j, rvecs[i][j])
		}
	}
	return ret
}

//ReciprocalLattice returns the lattice in reciprocal space. The atomic basis
//is deep-copied over, and if the direct lattice had its shells computed the
//reciprocal one gets its own shells computed at the same count. Applying
//ReciprocalLattice twice recovers a lattice with the original basis matrix.
func (L *Lattice) ReciprocalLattice() (*Lattice, error) {
	latt, err := NewLatticeMatrix(L.ReciprocalVectors())
	if err != nil {
		return nil, errDecorate(err, "ReciprocalLattice")
	}
	for _, at := range L.atoms {
		latt.atoms = append(latt.atoms, at.Copy())
	}
	latt.positions = L.Positions()
	latt.nameCount = L.nameCount
	if L.nShells > 0 {
		if err := latt.CalculateDistances(L.nShells); err != nil {
			return nil, errDecorate(err, "ReciprocalLattice")
		}
	}
	return latt, nil
}

//mulVec returns M*v as a new slice.
func mulVec(M *mat.Dense, v []float64) []float64 {
	out := mat.NewVecDense(len(v), nil)
	out.MulVec(M, mat.NewVecDense(len(v), v))
	return out.RawVector().Data
}

//cross returns the cross product of the 3D vectors a and b.
func cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
