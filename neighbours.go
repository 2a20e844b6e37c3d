/*
 * neighbours.go, part of golatt.
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

//neighbours.go holds the hard part of the library: discovering the distance
//shells of the structure and building the per-atom, per-shell neighbour
//table. The table stores indexes relative to the origin cell, so a single
//computation serves every unit cell of the infinite lattice.

package latt

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

//CalculateDistances finds the nShells lowest site-to-site distances of the
//structure and rebuilds the neighbour table at those shells. A non-positive
//nShells defaults to the number of atoms in the basis. It fails with a
//ConfigurationError if the atomic basis is empty.
//
//The search enumerates every image of the basis within a dense hypercube of
//unit cells of half-width max(nShells+1, MinExpand), so the work grows as
//(2*half+1)^dim times the squared atom count. That bound also means a very
//sparse or very anisotropic basis can yield fewer than nShells distinct
//distances; in that case the shell list is silently shorter than requested,
//and SetSearchPadding plus a rerun is the way out.
//
//All distances are rounded to DistDecimals decimals before deduplication.
//Solver noise collapses into one shell while genuinely distinct shells stay
//apart, as long as they differ by more than the rounding step.
func (L *Lattice) CalculateDistances(nShells int) error {
	if len(L.atoms) == 0 {
		return ConfigurationError{"no atoms in the lattice basis, cannot compute distances.", "Add atoms with AddAtom first.", []string{"CalculateDistances"}}
	}
	if nShells <= 0 {
		nShells = len(L.atoms)
	}
	half := nShells + 1
	if half < MinExpand {
		half = MinExpand
	}
	lo := make([]int, L.dim)
	hi := make([]int, L.dim)
	for d := 0; d < L.dim; d++ {
		lo[d], hi[d] = -half, half
	}
	seen := make(map[float64]bool)
	for _, nvec := range vrange(lo, hi) {
		for alpha := range L.atoms {
			img := L.GetPosition(nvec, alpha)
			for _, pos := range L.positions {
				seen[roundTo(floats.Distance(img, pos, 2), DistDecimals)] = true
			}
		}
	}
	dists := make([]float64, 0, len(seen))
	for d := range seen {
		if d != 0 {
			dists = append(dists, d)
		}
	}
	sort.Float64s(dists)
	if len(dists) > nShells {
		dists = dists[:nShells]
	}
	L.distances = dists
	L.nShells = nShells

	L.neighbours = make([][][]Index, len(L.atoms))
	for alpha := range L.atoms {
		shells := make([][]Index, len(L.distances))
		for i := range L.distances {
			found, err := L.CalculateNeighbours(nil, alpha, i)
			if err != nil {
				return errDecorate(err, "CalculateDistances")
			}
			shells[i] = found
		}
		L.neighbours[alpha] = shells
	}
	return nil
}

//CalculateNeighbours finds every site whose distance from the site (n, alpha)
//matches shell shellIdx, and returns their lattice indexes. A nil n means the
//origin cell. Candidates are taken from the hypercube of translations within
//shellIdx plus the search padding of n, crossed with every atom of the basis;
//a candidate matches when its distance, rounded to DistDecimals decimals,
//equals the shell distance. CalculateDistances must have been run first.
func (L *Lattice) CalculateNeighbours(n []int, alpha, shellIdx int) ([]Index, error) {
	if len(L.distances) == 0 {
		return nil, ConfigurationError{"lattice distances not computed.", "Use the shells argument of AddAtom or call CalculateDistances after adding the atoms.", []string{"CalculateNeighbours"}}
	}
	if shellIdx < 0 || shellIdx >= len(L.distances) {
		return nil, Error{fmt.Sprintf("shell index %d out of range, the lattice has %d shells", shellIdx, len(L.distances)), []string{"CalculateNeighbours"}, true}
	}
	if alpha < 0 || alpha >= len(L.atoms) {
		return nil, Error{fmt.Sprintf("atom index %d out of range, the basis has %d atoms", alpha, len(L.atoms)), []string{"CalculateNeighbours"}, true}
	}
	if n == nil {
		n = make([]int, L.dim)
	}
	target := L.distances[shellIdx]
	pos0 := L.GetPosition(n, alpha)
	offset := shellIdx + L.pad
	lo := make([]int, L.dim)
	hi := make([]int, L.dim)
	for d := 0; d < L.dim; d++ {
		lo[d], hi[d] = n[d]-offset, n[d]+offset
	}
	var found []Index
	for _, nvec := range vrange(lo, hi) {
		for beta := range L.atoms {
			d := floats.Distance(L.GetPosition(nvec, beta), pos0, 2)
			if roundTo(math.Abs(d-target), DistDecimals) == 0 {
				cp := make([]int, L.dim)
				copy(cp, nvec)
				found = append(found, Index{N: cp, Alpha: beta})
			}
		}
	}
	return found, nil
}

//NeighbourArrays is CalculateNeighbours with the result flattened into
//integer slices, the translation vector of each neighbour followed by its
//atom index.
func (L *Lattice) NeighbourArrays(n []int, alpha, shellIdx int) ([][]int, error) {
	idxs, err := L.CalculateNeighbours(n, alpha, shellIdx)
	if err != nil {
		return nil, errDecorate(err, "NeighbourArrays")
	}
	ret := make([][]int, len(idxs))
	for i, idx := range idxs {
		ret[i] = idx.Array()
	}
	return ret, nil
}

//GetNeighbours returns the sites at shell shellIdx of the given site, by
//translating the precomputed relative table; nothing is recomputed. It fails
//with a ConfigurationError if the neighbour table has not been built.
func (L *Lattice) GetNeighbours(idx Index, shellIdx int) ([]Index, error) {
	if L.neighbours == nil {
		return nil, ConfigurationError{"base neighbours not configured.", "Use the shells argument of AddAtom or call CalculateDistances after adding the atoms.", []string{"GetNeighbours"}}
	}
	if idx.Alpha < 0 || idx.Alpha >= len(L.neighbours) {
		return nil, Error{fmt.Sprintf("atom index %d out of range, the basis has %d atoms", idx.Alpha, len(L.atoms)), []string{"GetNeighbours"}, true}
	}
	if shellIdx < 0 || shellIdx >= len(L.neighbours[idx.Alpha]) {
		return nil, Error{fmt.Sprintf("shell index %d out of range, the lattice has %d shells", shellIdx, len(L.distances)), []string{"GetNeighbours"}, true}
	}
	rel := L.neighbours[idx.Alpha][shellIdx]
	transformed := make([]Index, len(rel))
	for i, r := range rel {
		t := r.Copy()
		for d := range t.N {
			t.N[d] += idx.N[d]
		}
		transformed[i] = t
	}
	return transformed, nil
}

//GetNeighbourVectors returns the real-space displacement vectors from atom
//alpha of the origin cell to each of its neighbours at shell shellIdx. With
//includeZero the zero vector is prepended, which is handy for hopping sums
//that include the on-site term. It fails with a ConfigurationError if the
//neighbour table has not been built.
func (L *Lattice) GetNeighbourVectors(alpha, shellIdx int, includeZero bool) ([][]float64, error) {
	if L.neighbours == nil {
		return nil, ConfigurationError{"base neighbours not configured.", "Use the shells argument of AddAtom or call CalculateDistances after adding the atoms.", []string{"GetNeighbourVectors"}}
	}
	if alpha < 0 || alpha >= len(L.neighbours) {
		return nil, Error{fmt.Sprintf("atom index %d out of range, the basis has %d atoms", alpha, len(L.atoms)), []string{"GetNeighbourVectors"}, true}
	}
	if shellIdx < 0 || shellIdx >= len(L.neighbours[alpha]) {
		return nil, Error{fmt.Sprintf("shell index %d out of range, the lattice has %d shells", shellIdx, len(L.distances)), []string{"GetNeighbourVectors"}, true}
	}
	pos0 := L.positions[alpha]
	var vectors [][]float64
	if includeZero {
		vectors = append(vectors, make([]float64, L.dim))
	}
	for _, idx := range L.neighbours[alpha][shellIdx] {
		v := L.GetPosition(idx.N, idx.Alpha)
		floats.Sub(v, pos0)
		vectors = append(vectors, v)
	}
	return vectors, nil
}

//Neighbours returns a deep copy of the relative neighbour table, indexed as
//[atom][shell][neighbour]. The translation vectors are relative to the origin
//cell. A nil return means the table has not been built.
func (L *Lattice) Neighbours() [][][]Index {
	if L.neighbours == nil {
		return nil
	}
	ret := make([][][]Index, len(L.neighbours))
	for a, shells := range L.neighbours {
		ret[a] = make([][]Index, len(shells))
		for s, idxs := range shells {
			ret[a][s] = make([]Index, len(idxs))
			for i, idx := range idxs {
				ret[a][s][i] = idx.Copy()
			}
		}
	}
	return ret
}

//RestoreShells overwrites the cached shell list and relative neighbour table
//with deep copies of the given ones. It exists for persistence: a restored
//lattice gets back the cached state of the one that was saved without paying
//for a recomputation. Any other use breaks the ownership of the cache by the
//lattice, so don't.
func (L *Lattice) RestoreShells(nShells int, distances []float64, neighbours [][][]Index) {
	L.nShells = nShells
	L.distances = make([]float64, len(distances))
	copy(L.distances, distances)
	if neighbours == nil {
		L.neighbours = nil
		return
	}
	L.neighbours = make([][][]Index, len(neighbours))
	for a, shells := range neighbours {
		L.neighbours[a] = make([][]Index, len(shells))
		for s, idxs := range shells {
			L.neighbours[a][s] = make([]Index, len(idxs))
			for i, idx := range idxs {
				L.neighbours[a][s][i] = idx.Copy()
			}
		}
	}
}

//vrange enumerates every integer vector whose d-th coordinate runs over the
//inclusive range [lo[d], hi[d]], in odometer order.
func vrange(lo, hi []int) [][]int {
	dim := len(lo)
	total := 1
	for d := 0; d < dim; d++ {
		total *= hi[d] - lo[d] + 1
	}
	ret := make([][]int, 0, total)
	cur := make([]int, dim)
	copy(cur, lo)
	for {
		v := make([]int, dim)
		copy(v, cur)
		ret = append(ret, v)
		d := dim - 1
		for d >= 0 {
			cur[d]++
			if cur[d] <= hi[d] {
				break
			}
			cur[d] = lo[d]
			d--
		}
		if d < 0 {
			return ret
		}
	}
}
