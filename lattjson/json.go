/*
 * json.go, part of golatt.
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

/*Package lattjson snapshots a lattice to JSON and restores it back. The
snapshot is the full state: basis matrix, atomic basis, shell list and
neighbour table, so a restored lattice answers neighbour queries without
recomputing anything. Save and Load additionally run the JSON through zstd,
which makes the tables of large lattices cheap to keep around.*/
package lattjson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	latt "github.com/bravais/golatt"
	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

//A ready-to-serialize container for an atom of the basis, pairing the tag
//with its in-cell position.
type Atom struct {
	Name string
	Col  string
	Size float64
	Pos  []float64
}

//Lattice is the serializable snapshot of a full lattice. Vectors holds the
//basis matrix row-major; Neighbours holds, per atom and per shell, the
//flattened (translation..., atom index) form of each relative neighbour.
type Lattice struct {
	Dim        int
	Vectors    []float64
	Atoms      []Atom
	NShells    int
	Distances  []float64
	Neighbours [][][][]int
}

//An easily JSON-serializable error type.
type Error struct {
	deco     []string
	IsError  bool //If this is false (no error) all the other fields are at their zero values.
	Function string
	Message  string
}

//Error implements the error interface.
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the
//error, and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec != "" {
		J.deco = append(J.deco, dec)
	}
	return J.deco
}

//Critical is always true: a broken snapshot is not recoverable.
func (J *Error) Critical() bool { return true }

//NewError takes an error and the name of the function it came from, and
//builds a serializable error.
func NewError(function string, err error) *Error {
	return &Error{IsError: true, Function: function, Message: err.Error()}
}

//Snapshot builds the serializable container for L.
func Snapshot(L *latt.Lattice) *Lattice {
	J := new(Lattice)
	J.Dim = L.Dim()
	V := L.Vectors()
	J.Vectors = make([]float64, 0, J.Dim*J.Dim)
	for i := 0; i < J.Dim; i++ {
		J.Vectors = append(J.Vectors, V.RawRowView(i)...)
	}
	positions := L.Positions()
	for alpha := 0; alpha < L.Len(); alpha++ {
		at := L.Atom(alpha)
		J.Atoms = append(J.Atoms, Atom{Name: at.Name, Col: at.Col, Size: at.Size, Pos: positions[alpha]})
	}
	J.NShells = L.NShells()
	J.Distances = L.Distances()
	if table := L.Neighbours(); table != nil {
		J.Neighbours = make([][][][]int, len(table))
		for a, shells := range table {
			J.Neighbours[a] = make([][][]int, len(shells))
			for s, idxs := range shells {
				J.Neighbours[a][s] = make([][]int, len(idxs))
				for i, idx := range idxs {
					J.Neighbours[a][s][i] = idx.Array()
				}
			}
		}
	}
	return J
}

//Restore rebuilds a lattice from the snapshot. The cached shell list and
//neighbour table are restored as they were, not recomputed.
func (J *Lattice) Restore() (*latt.Lattice, *Error) {
	if len(J.Vectors) != J.Dim*J.Dim {
		return nil, NewError("Restore", fmt.Errorf("snapshot has %d matrix elements, want %d", len(J.Vectors), J.Dim*J.Dim))
	}
	L, err := latt.NewLatticeMatrix(mat.NewDense(J.Dim, J.Dim, J.Vectors))
	if err != nil {
		return nil, NewError("Restore", err)
	}
	for _, at := range J.Atoms {
		a := &latt.Atom{Name: at.Name, Col: at.Col, Size: at.Size}
		if _, err := L.AddAtom(at.Pos, a, 0); err != nil {
			return nil, NewError("Restore", err)
		}
	}
	var table [][][]latt.Index
	if J.Neighbours != nil {
		table = make([][][]latt.Index, len(J.Neighbours))
		for a, shells := range J.Neighbours {
			table[a] = make([][]latt.Index, len(shells))
			for s, idxs := range shells {
				table[a][s] = make([]latt.Index, len(idxs))
				for i, flat := range idxs {
					if len(flat) != J.Dim+1 {
						return nil, NewError("Restore", fmt.Errorf("neighbour entry has %d components, want %d", len(flat), J.Dim+1))
					}
					n := make([]int, J.Dim)
					copy(n, flat[:J.Dim])
					table[a][s][i] = latt.Index{N: n, Alpha: flat[J.Dim]}
				}
			}
		}
	}
	L.RestoreShells(J.NShells, J.Distances, table)
	return L, nil
}

//EncodeLattice writes the snapshot of L to out as JSON.
func EncodeLattice(L *latt.Lattice, out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(Snapshot(L)); err != nil {
		return NewError("EncodeLattice", err)
	}
	return nil
}

//DecodeLattice reads a JSON snapshot from in and rebuilds the lattice.
func DecodeLattice(in io.Reader) (*latt.Lattice, *Error) {
	J := new(Lattice)
	dec := json.NewDecoder(in)
	if err := dec.Decode(J); err != nil {
		return nil, NewError("DecodeLattice", err)
	}
	L, jerr := J.Restore()
	if jerr != nil {
		jerr.Decorate("DecodeLattice")
		return nil, jerr
	}
	return L, nil
}

//Save writes the zstd-compressed JSON snapshot of L to the given file.
func Save(L *latt.Lattice, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	h, err := zstd.NewWriter(f)
	if err != nil {
		return err
	}
	if jerr := EncodeLattice(L, h); jerr != nil {
		h.Close()
		jerr.Decorate("Save")
		return jerr
	}
	return h.Close()
}

//Load reads a lattice back from a file written by Save.
func Load(filename string) (*latt.Lattice, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	h, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer h.Close()
	L, jerr := DecodeLattice(h)
	if jerr != nil {
		jerr.Decorate("Load")
		return nil, jerr
	}
	return L, nil
}
