/*
 * carve.go, part of golatt.
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

import "github.com/bravais/golatt/shapes"

//SitesInShape carves a finite piece out of the infinite lattice: it returns
//the indexes of every site whose real-space position the shape contains. The
//candidate cells are found by mapping the corners of the shape's bounding box
//back to lattice coordinates with EstimateIndex and padding the resulting
//range by one cell, so no site on the boundary is missed. It fails with a
//ConfigurationError if the atomic basis is empty, and with a plain error if
//the shape's dimension does not match the lattice's.
func (L *Lattice) SitesInShape(s shapes.Shape) ([]Index, error) {
	if len(L.atoms) == 0 {
		return nil, ConfigurationError{"no atoms in the lattice basis, nothing to carve.", "Add atoms with AddAtom first.", []string{"SitesInShape"}}
	}
	if s.Dim() != L.dim {
		return nil, Error{"shape and lattice dimensions differ", []string{"SitesInShape"}, true}
	}
	lims := s.Limits()
	lo := make([]int, L.dim)
	hi := make([]int, L.dim)
	first := true
	//every corner of the bounding box, mapped to lattice coordinates,
	//stretches the candidate range
	for _, corner := range corners(lims) {
		n := L.EstimateIndex(corner)
		for d := 0; d < L.dim; d++ {
			if first || n[d] < lo[d] {
				lo[d] = n[d]
			}
			if first || n[d] > hi[d] {
				hi[d] = n[d]
			}
		}
		first = false
	}
	for d := 0; d < L.dim; d++ {
		lo[d]--
		hi[d]++
	}
	var sites []Index
	for _, nvec := range vrange(lo, hi) {
		for alpha := range L.atoms {
			if s.Contains(L.GetPosition(nvec, alpha)) {
				cp := make([]int, L.dim)
				copy(cp, nvec)
				sites = append(sites, Index{N: cp, Alpha: alpha})
			}
		}
	}
	return sites, nil
}

//corners returns the corner points of the axis-aligned box with the given
//per-dimension limits.
func corners(lims [][2]float64) [][]float64 {
	dim := len(lims)
	total := 1 << uint(dim)
	ret := make([][]float64, 0, total)
	for mask := 0; mask < total; mask++ {
		p := make([]float64, dim)
		for d := 0; d < dim; d++ {
			p[d] = lims[d][(mask>>uint(d))&1]
		}
		ret = append(ret, p)
	}
	return ret
}
