/*
 * atom.go, part of golatt.
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

import "fmt"

//Atom tags one site of the atomic basis. It carries only display metadata:
//the position lives in the lattice, addressed by the atom's index in the
//basis. Two atoms with the same name are the same kind of atom, whatever
//their other fields say, so name equality is the identity contract.
type Atom struct {
	Name string
	Col  string  //color for plots, empty means "let the plotter choose"
	Size float64 //marker size for plots
}

//NewAtom returns an atom with the given name and the default marker size.
func NewAtom(name string) *Atom {
	return &Atom{Name: name, Size: 10}
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Name = A.Name
	Newat.Col = A.Col
	Newat.Size = A.Size
	return Newat
}

//Equal returns whether A and B are the same kind of atom, i.e. whether
//their names match. All other fields are ignored.
func (A *Atom) Equal(B *Atom) bool {
	if A == nil || B == nil {
		return A == B
	}
	return A.Name == B.Name
}

func (A *Atom) String() string {
	return fmt.Sprintf("Atom(%s, %s, %g)", A.Name, A.Col, A.Size)
}
