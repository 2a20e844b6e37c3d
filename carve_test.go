/*
 * carve_test.go, part of golatt.
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
	"testing"

	"github.com/bravais/golatt/shapes"
)

//A 2x2 box on the unit square lattice holds the 3x3 grid of sites, boundary
//included.
func TestSitesInBox(Te *testing.T) {
	square := must(Square(1))
	if _, err := square.AddAtom(nil, nil, 0); err != nil {
		Te.Fatal(err)
	}
	sites, err := square.SitesInShape(shapes.NewBox([]float64{2, 2}, nil))
	if err != nil {
		Te.Fatal(err)
	}
	if len(sites) != 9 {
		Te.Fatalf("wanted 9 sites in the box, got %d: %v", len(sites), sites)
	}
	for i := 0; i <= 2; i++ {
		for j := 0; j <= 2; j++ {
			if !hasNeighbour(sites, []int{i, j}, 0) {
				Te.Errorf("site (%d,%d) missing from the carved box", i, j)
			}
		}
	}
}

func TestSitesInCircle(Te *testing.T) {
	square := must(Square(1))
	if _, err := square.AddAtom(nil, nil, 0); err != nil {
		Te.Fatal(err)
	}
	//radius 1.1 around the origin: the center plus the 4 axis neighbours
	sites, err := square.SitesInShape(shapes.NewCircle([]float64{0, 0}, 1.1))
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("circle sites:", sites)
	if len(sites) != 5 {
		Te.Errorf("wanted 5 sites in the circle, got %d", len(sites))
	}
	if !hasNeighbour(sites, []int{0, 0}, 0) {
		Te.Error("the center site is missing")
	}
}

func TestSitesInShapeErrors(Te *testing.T) {
	square := must(Square(1))
	_, err := square.SitesInShape(shapes.NewBox([]float64{1, 1}, nil))
	if err == nil {
		Te.Error("carving an empty-basis lattice should fail")
	}
	if _, ok := err.(ConfigurationError); !ok {
		Te.Errorf("expected a ConfigurationError, got %T", err)
	}
	square.AddAtom(nil, nil, 0)
	if _, err := square.SitesInShape(shapes.NewBox([]float64{1}, nil)); err == nil {
		Te.Error("carving with a 1D shape on a 2D lattice should fail")
	}
}
