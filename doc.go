/*
 * doc.go, part of golatt.
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

/*Package latt is the main package of the goLatt library. It models periodic
crystal lattices: a Bravais basis of primitive vectors, an atomic basis
decorating the unit cell, and a precomputed table of neighbour shells that
answers "who is the k-th nearest neighbour of this site" in constant time.


	**goLatt capabilities**

    Lattices of any dimension, with convenience constructors for the common
	1D, 2D and 3D structures (chain, square, rectangular, hexagonal, simple
	cubic, fcc, bcc).

    Translation between lattice indexes (n, alpha) and real-space positions,
	in both directions, plus approximate index recovery for noisy coordinates.

    Reciprocal-lattice vectors and reciprocal-lattice construction.

    Discovery of the distance shells of the structure (nearest, next-nearest,
	and so on neighbour distances) and construction of a per-atom, per-shell
	neighbour table valid for any unit cell of the infinite lattice.

    Carving a finite piece out of the infinite lattice with the shapes in the
	shapes subpackage.

    JSON snapshot/restore of the whole lattice, optionally zstd-compressed on
	disk (lattjson subpackage), and plots of the unit cell (lattplot
	subpackage, uses the Plot part of Gonum).

goLatt uses the Gonum mat.Dense type for the basis matrix. The primitive
vectors are stored as the columns of that matrix, so position = pos(alpha) +
vectors*n for an integer translation vector n. Functions taking or returning
plain []float64 slices treat them as real-space coordinates of a single
point.*/
package latt
