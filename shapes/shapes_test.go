/*
 * shapes_test.go, part of golatt.
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

package shapes

import "testing"

func TestBox(Te *testing.T) {
	b := NewBox([]float64{2, 1}, []float64{1, 1})
	if b.Dim() != 2 {
		Te.Errorf("wrong dimension %d", b.Dim())
	}
	lims := b.Limits()
	if lims[0] != [2]float64{1, 3} || lims[1] != [2]float64{1, 2} {
		Te.Errorf("wrong limits %v", lims)
	}
	for _, p := range [][]float64{{1, 1}, {3, 2}, {2, 1.5}} {
		if !b.Contains(p) {
			Te.Errorf("%v should be inside the box", p)
		}
	}
	for _, p := range [][]float64{{0.9, 1}, {3.1, 2}, {2, 2.5}} {
		if b.Contains(p) {
			Te.Errorf("%v should be outside the box", p)
		}
	}
}

func TestCircle(Te *testing.T) {
	c := NewCircle([]float64{1, 0}, 2)
	lims := c.Limits()
	if lims[0] != [2]float64{-1, 3} || lims[1] != [2]float64{-2, 2} {
		Te.Errorf("wrong limits %v", lims)
	}
	if !c.Contains([]float64{3, 0}) {
		Te.Error("the boundary belongs to the circle")
	}
	if c.Contains([]float64{3.0001, 0}) {
		Te.Error("points beyond the radius are outside")
	}
}

func TestDonut(Te *testing.T) {
	d := NewDonut([]float64{0, 0}, 2, 1)
	if !d.Contains([]float64{1.5, 0}) {
		Te.Error("the ring interior should be inside")
	}
	if d.Contains([]float64{0.5, 0}) {
		Te.Error("the hole should be outside")
	}
	if !d.Contains([]float64{1, 0}) || !d.Contains([]float64{2, 0}) {
		Te.Error("both boundaries belong to the donut")
	}
	if d.Contains([]float64{2.5, 0}) {
		Te.Error("points beyond the outer radius are outside")
	}
}

func TestCircle1D(Te *testing.T) {
	//a 1D "circle" is just an interval
	c := NewCircle([]float64{1}, 0.5)
	if !c.Contains([]float64{1.5}) || c.Contains([]float64{1.6}) {
		Te.Error("wrong 1D containment")
	}
}
