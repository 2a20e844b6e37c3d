/*
 * json_test.go, part of golatt.
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

package lattjson

import (
	"bytes"
	"path/filepath"
	"testing"

	latt "github.com/bravais/golatt"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func testLattice(Te *testing.T) *latt.Lattice {
	L, err := latt.Square(1)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := L.AddAtom(nil, latt.NewAtom("A"), 0); err != nil {
		Te.Fatal(err)
	}
	if _, err := L.AddAtom([]float64{0.5, 0.5}, latt.NewAtom("B"), 2); err != nil {
		Te.Fatal(err)
	}
	return L
}

//compare checks that the restored lattice carries the same state as the
//original, cached tables included.
func compare(Te *testing.T, orig, restored *latt.Lattice) {
	if restored.Dim() != orig.Dim() || restored.Len() != orig.Len() {
		Te.Fatalf("restored lattice has dim %d and %d atoms, want %d and %d",
			restored.Dim(), restored.Len(), orig.Dim(), orig.Len())
	}
	if !mat.EqualApprox(orig.Vectors(), restored.Vectors(), 1e-12) {
		Te.Error("restored basis matrix differs")
	}
	for alpha := 0; alpha < orig.Len(); alpha++ {
		if !orig.Atom(alpha).Equal(restored.Atom(alpha)) {
			Te.Errorf("atom %d differs: %v vs %v", alpha, orig.Atom(alpha), restored.Atom(alpha))
		}
	}
	op, rp := orig.Positions(), restored.Positions()
	for i := range op {
		if !floats.EqualApprox(op[i], rp[i], 1e-12) {
			Te.Errorf("position %d differs: %v vs %v", i, op[i], rp[i])
		}
	}
	if orig.NShells() != restored.NShells() {
		Te.Errorf("restored shell count %d, want %d", restored.NShells(), orig.NShells())
	}
	if !floats.EqualApprox(orig.Distances(), restored.Distances(), 1e-12) {
		Te.Errorf("restored shell list %v, want %v", restored.Distances(), orig.Distances())
	}
	//the restored table must answer queries without recomputation
	on, err := orig.GetNeighbours(latt.Index{N: []int{2, -1}, Alpha: 0}, 1)
	if err != nil {
		Te.Fatal(err)
	}
	rn, err := restored.GetNeighbours(latt.Index{N: []int{2, -1}, Alpha: 0}, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if len(on) != len(rn) {
		Te.Fatalf("restored table gives %d neighbours, want %d", len(rn), len(on))
	}
}

func TestEncodeDecode(Te *testing.T) {
	L := testLattice(Te)
	var buf bytes.Buffer
	if jerr := EncodeLattice(L, &buf); jerr != nil {
		Te.Fatal(jerr)
	}
	restored, jerr := DecodeLattice(&buf)
	if jerr != nil {
		Te.Fatal(jerr)
	}
	compare(Te, L, restored)
}

func TestSaveLoad(Te *testing.T) {
	L := testLattice(Te)
	file := filepath.Join(Te.TempDir(), "lattice.json.zst")
	if err := Save(L, file); err != nil {
		Te.Fatal(err)
	}
	restored, err := Load(file)
	if err != nil {
		Te.Fatal(err)
	}
	compare(Te, L, restored)
}

func TestDecodeGarbage(Te *testing.T) {
	_, jerr := DecodeLattice(bytes.NewBufferString("{\"Dim\": 2, \"Vectors\": [1]}"))
	if jerr == nil {
		Te.Fatal("a truncated snapshot should not decode")
	}
	if !jerr.IsError || jerr.Message == "" {
		Te.Errorf("malformed serializable error: %+v", jerr)
	}
}
