/*
 * latt.go, part of golatt.
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

package latt

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

const (
	//DistDecimals is the number of decimals to which every distance is rounded
	//before comparison. Distances that agree to this precision belong to the
	//same shell. It has to be the same constant in shell discovery and in
	//neighbour matching, or the two will disagree on shell membership.
	DistDecimals = 5
	//MinExpand is the minimum half-width, in unit cells, of the hypercube
	//searched for candidate neighbour images, whatever the shell count.
	MinExpand = 3
	//DefaultSearchPad is the default padding added to the shell index when
	//bounding the neighbour search around a site.
	DefaultSearchPad = 3
)

//Index is the canonical address of a site in the infinite lattice: an integer
//translation vector N, one coordinate per primitive vector, plus the index
//Alpha of the atom within the unit cell.
type Index struct {
	N     []int
	Alpha int
}

//Copy returns a deep copy of the index.
func (idx Index) Copy() Index {
	n := make([]int, len(idx.N))
	copy(n, idx.N)
	return Index{N: n, Alpha: idx.Alpha}
}

//Array returns the index flattened into a single integer slice, the
//translation vector followed by the atom index.
func (idx Index) Array() []int {
	ret := make([]int, len(idx.N)+1)
	copy(ret, idx.N)
	ret[len(idx.N)] = idx.Alpha
	return ret
}

func (idx Index) String() string {
	return fmt.Sprintf("(%v, %d)", idx.N, idx.Alpha)
}

//Lattice is a periodic lattice: a Bravais basis of primitive vectors plus an
//atomic basis decorating the unit cell. The distance-shell list and the
//neighbour table are cached state derived from the basis; they are owned by
//the lattice and rebuilt whenever the atomic basis or the shell count
//changes. A Lattice is not safe for concurrent mutation; make a Copy when an
//independent instance is needed.
type Lattice struct {
	dim        int
	vectors    *mat.Dense //primitive vectors as columns
	inv        *mat.Dense
	cellVolume float64
	atoms      []*Atom
	positions  [][]float64
	nShells    int
	distances  []float64
	neighbours [][][]Index //per atom, per shell, relative to the origin cell
	pad        int
	nameCount  int //counter for default atom names, scoped to this lattice
}

//NewLattice returns a lattice with the given primitive vectors, one vector
//per element of vectors. It fails if the vectors do not form a square,
//invertible matrix: linearly dependent vectors mean a degenerate basis and
//there is nothing sensible to build from one.
func NewLattice(vectors [][]float64) (*Lattice, error) {
	dim := len(vectors)
	if dim == 0 {
		return nil, Error{"no primitive vectors given", []string{"NewLattice"}, true}
	}
	V := mat.NewDense(dim, dim, nil)
	for i, v := range vectors {
		if len(v) != dim {
			return nil, Error{fmt.Sprintf("primitive vector %d has %d components, want %d", i, len(v), dim), []string{"NewLattice"}, true}
		}
		//vectors are stored as columns
		for j, x := range v {
			V.Set(j, i, x)
		}
	}
	L, err := NewLatticeMatrix(V)
	if err != nil {
		return nil, errDecorate(err, "NewLattice")
	}
	return L, nil
}

//NewLatticeMatrix returns a lattice whose basis matrix is a copy of V, whose
//columns are taken as the primitive vectors. Most callers want NewLattice;
//this one exists for restoring snapshots and for building the reciprocal
//lattice, where the stored matrix itself is the datum.
func NewLatticeMatrix(V mat.Matrix) (*Lattice, error) {
	r, c := V.Dims()
	if r != c {
		return nil, Error{fmt.Sprintf("basis matrix is %dx%d, want square", r, c), []string{"NewLatticeMatrix"}, true}
	}
	L := new(Lattice)
	L.dim = r
	L.vectors = mat.DenseCopyOf(V)
	L.inv = mat.NewDense(r, r, nil)
	if err := L.inv.Inverse(L.vectors); err != nil {
		return nil, Error{fmt.Sprintf("degenerate basis, primitive vectors are linearly dependent: %v", err), []string{"NewLatticeMatrix"}, true}
	}
	L.cellVolume = math.Abs(mat.Det(L.vectors))
	L.pad = DefaultSearchPad
	return L, nil
}

//Dim returns the dimension of the lattice.
func (L *Lattice) Dim() int { return L.dim }

//Len returns the number of atoms in the atomic basis.
func (L *Lattice) Len() int { return len(L.atoms) }

//Atom returns the atom at index alpha of the basis. It panics if alpha is out
//of range, as would a slice access.
func (L *Lattice) Atom(alpha int) *Atom { return L.atoms[alpha] }

//Vectors returns a copy of the basis matrix. Its columns are the primitive
//vectors.
func (L *Lattice) Vectors() *mat.Dense { return mat.DenseCopyOf(L.vectors) }

//CellVolume returns the volume (length, area) of the unit cell.
func (L *Lattice) CellVolume() float64 { return L.cellVolume }

//Origin returns the origin of the lattice, i.e. the zero vector.
func (L *Lattice) Origin() []float64 { return make([]float64, L.dim) }

//NShells returns the number of shells requested from the last distance
//calculation, 0 if none has been run.
func (L *Lattice) NShells() int { return L.nShells }

//Distances returns a copy of the current shell list: the unique site
//distances of the structure in ascending order, zero excluded.
func (L *Lattice) Distances() []float64 {
	ret := make([]float64, len(L.distances))
	copy(ret, L.distances)
	return ret
}

//Positions returns a copy of the in-cell positions of the atomic basis, in
//atom-index order.
func (L *Lattice) Positions() [][]float64 {
	ret := make([][]float64, len(L.positions))
	for i, p := range L.positions {
		ret[i] = make([]float64, len(p))
		copy(ret[i], p)
	}
	return ret
}

//SetSearchPadding sets the padding, in unit cells, added to the shell index
//when bounding the neighbour search. The default, DefaultSearchPad, is an
//empirical value that works for the usual structures; a basis with very
//anisotropic vector lengths can need more. It fails on values below 1.
func (L *Lattice) SetSearchPadding(pad int) error {
	if pad < 1 {
		return Error{fmt.Sprintf("search padding must be at least 1, got %d", pad), []string{"SetSearchPadding"}, true}
	}
	L.pad = pad
	return nil
}

//AddAtom appends an atom to the basis of the unit cell, at the given in-cell
//position, and returns the stored atom. A nil pos means the origin. A nil at
//gets a default atom, named from a counter local to this lattice. It fails,
//mutating nothing, if the exact position is already occupied. If shells is
//positive the distance shells and the neighbour table are recomputed with
//that shell count; if it is zero they are left alone and must be computed
//later with CalculateDistances.
func (L *Lattice) AddAtom(pos []float64, at *Atom, shells int) (*Atom, error) {
	if pos == nil {
		pos = make([]float64, L.dim)
	}
	if len(pos) != L.dim {
		return nil, Error{fmt.Sprintf("position has %d components, want %d", len(pos), L.dim), []string{"AddAtom"}, true}
	}
	for _, prev := range L.positions {
		if equalFloats(pos, prev) {
			return nil, Error{fmt.Sprintf("position %v already occupied", pos), []string{"AddAtom"}, true}
		}
	}
	if at == nil {
		at = NewAtom(strconv.Itoa(L.nameCount))
	}
	L.nameCount++
	p := make([]float64, L.dim)
	copy(p, pos)
	L.atoms = append(L.atoms, at)
	L.positions = append(L.positions, p)
	if shells > 0 {
		if err := L.CalculateDistances(shells); err != nil {
			return at, errDecorate(err, "AddAtom")
		}
	}
	return at, nil
}

//Copy returns a deep copy of the lattice. Basis, atoms, positions, shell list
//and neighbour table are all duplicated, so the copy can be mutated without
//touching the original.
func (L *Lattice) Copy() *Lattice {
	latt := new(Lattice)
	latt.dim = L.dim
	latt.vectors = mat.DenseCopyOf(L.vectors)
	latt.inv = mat.DenseCopyOf(L.inv)
	latt.cellVolume = L.cellVolume
	latt.pad = L.pad
	latt.nameCount = L.nameCount
	latt.nShells = L.nShells
	for _, at := range L.atoms {
		latt.atoms = append(latt.atoms, at.Copy())
	}
	latt.positions = L.Positions()
	latt.distances = L.Distances()
	latt.neighbours = L.Neighbours()
	return latt
}

//equalFloats returns whether a and b have the same length and exactly equal
//components. Duplicate-atom detection wants exact matches, no tolerance.
func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, x := range a {
		if x != b[i] {
			return false
		}
	}
	return true
}

func itof(n []int) []float64 {
	f := make([]float64, len(n))
	for i, x := range n {
		f[i] = float64(x)
	}
	return f
}

//roundTo rounds x to the given number of decimals.
func roundTo(x float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(x*shift) / shift
}
