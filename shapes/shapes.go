/*
 * shapes.go, part of golatt.
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

/*Package shapes provides the finite regions used to carve a bounded piece out
of an infinite lattice. A shape only needs to report its bounding box and
answer containment queries; it knows nothing about lattices, and the lattice
core knows nothing about shapes beyond this interface. All boundaries are
inclusive.*/
package shapes

import "gonum.org/v1/gonum/floats"

//Shape is a finite region of real space.
type Shape interface {
	//Dim returns the dimension of the space the shape lives in.
	Dim() int
	//Limits returns the bounding box of the shape, a (min, max) pair per
	//dimension.
	Limits() [][2]float64
	//Contains reports whether the given point lies inside the shape.
	Contains(point []float64) bool
}

//Box is an axis-aligned box spanning size from its lower corner pos.
type Box struct {
	pos  []float64
	size []float64
}

//NewBox returns a box of the given size with its lower corner at pos. A nil
//pos means the origin.
func NewBox(size, pos []float64) *Box {
	if pos == nil {
		pos = make([]float64, len(size))
	}
	b := &Box{pos: make([]float64, len(size)), size: make([]float64, len(size))}
	copy(b.pos, pos)
	copy(b.size, size)
	return b
}

func (b *Box) Dim() int { return len(b.size) }

func (b *Box) Limits() [][2]float64 {
	lims := make([][2]float64, len(b.size))
	for d := range b.size {
		lims[d] = [2]float64{b.pos[d], b.pos[d] + b.size[d]}
	}
	return lims
}

func (b *Box) Contains(point []float64) bool {
	for d := range b.size {
		if point[d] < b.pos[d] || point[d] > b.pos[d]+b.size[d] {
			return false
		}
	}
	return true
}

//Circle is a filled sphere (disk, interval) around a center point.
type Circle struct {
	pos    []float64
	radius float64
}

//NewCircle returns a circle of the given radius centered at pos.
func NewCircle(pos []float64, radius float64) *Circle {
	c := &Circle{pos: make([]float64, len(pos)), radius: radius}
	copy(c.pos, pos)
	return c
}

func (c *Circle) Dim() int { return len(c.pos) }

func (c *Circle) Limits() [][2]float64 {
	lims := make([][2]float64, len(c.pos))
	for d := range c.pos {
		lims[d] = [2]float64{c.pos[d] - c.radius, c.pos[d] + c.radius}
	}
	return lims
}

func (c *Circle) Contains(point []float64) bool {
	return floats.Distance(point, c.pos, 2) <= c.radius
}

//Donut is a circle with a circular cut-out in the middle.
type Donut struct {
	pos    []float64
	router float64
	rinner float64
}

//NewDonut returns a donut centered at pos with the given outer and inner
//radii.
func NewDonut(pos []float64, router, rinner float64) *Donut {
	d := &Donut{pos: make([]float64, len(pos)), router: router, rinner: rinner}
	copy(d.pos, pos)
	return d
}

func (dn *Donut) Dim() int { return len(dn.pos) }

func (dn *Donut) Limits() [][2]float64 {
	lims := make([][2]float64, len(dn.pos))
	for d := range dn.pos {
		lims[d] = [2]float64{dn.pos[d] - dn.router, dn.pos[d] + dn.router}
	}
	return lims
}

func (dn *Donut) Contains(point []float64) bool {
	dist := floats.Distance(point, dn.pos, 2)
	return dn.rinner <= dist && dist <= dn.router
}
