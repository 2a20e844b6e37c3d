/*
 * plot_test.go, part of golatt.
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

/*This provides some tests for the plotting functions, in the form of little
functions with practical applications: they draw the square lattice cell and a
carved circle of it.*/

package lattplot

import (
	"os"
	"path/filepath"
	"testing"

	latt "github.com/bravais/golatt"
	"github.com/bravais/golatt/shapes"
)

func TestCell(Te *testing.T) {
	square, err := latt.Square(1)
	if err != nil {
		Te.Fatal(err)
	}
	at := latt.NewAtom("A")
	at.Col = "r"
	if _, err := square.AddAtom(nil, at, 0); err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "cell")
	if err := Cell(square, "Square lattice", name, false); err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Error("no plot file written:", err)
	}
	//and the reciprocal cell on top
	if err := Cell(square, "Square lattice, reciprocal", name, true); err != nil {
		Te.Error(err)
	}
}

func TestSites(Te *testing.T) {
	square, err := latt.Square(1)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := square.AddAtom(nil, nil, 0); err != nil {
		Te.Fatal(err)
	}
	sites, err := square.SitesInShape(shapes.NewCircle([]float64{0, 0}, 3))
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "sites")
	if err := Sites(square, sites, "Carved circle", name); err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Error("no plot file written:", err)
	}
}

func TestCell3DRefused(Te *testing.T) {
	sc, err := latt.SC(1)
	if err != nil {
		Te.Fatal(err)
	}
	sc.AddAtom(nil, nil, 0)
	if err := Cell(sc, "sc", "nowhere", false); err == nil {
		Te.Error("3D lattices cannot be drawn and should say so")
	}
}
