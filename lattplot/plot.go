/*
 * plot.go, part of golatt.
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

/*Package lattplot draws lattices with gonum/plot. It is a read-only consumer
of the core: it takes basis vectors and atom positions and produces image
files, nothing flows back. Only 1D and 2D lattices can be drawn.*/
package lattplot

import (
	"fmt"
	"image/color"
	"math"

	latt "github.com/bravais/golatt"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//palette for atoms with no color of their own
var defcolors = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
}

func basicPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3*vg.Millimeter
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())
	return p
}

//point returns the 2D plot coordinates for a possibly 1D position.
func point(pos []float64) plotter.XY {
	xy := plotter.XY{X: pos[0]}
	if len(pos) > 1 {
		xy.Y = pos[1]
	}
	return xy
}

//Cell draws the unit cell of L: the basis vectors as lines from the origin
//and the atoms of the basis as markers, and saves the result as plotname.png.
//With reciprocal, the reciprocal vectors scaled down by 2*pi are drawn
//instead. Only dim<=2 lattices can be drawn; higher dimensions return an
//error.
func Cell(L *latt.Lattice, title, plotname string, reciprocal bool) error {
	if L.Dim() > 2 {
		return fmt.Errorf("can't plot a %dD lattice", L.Dim())
	}
	p := basicPlot(title)
	vecs := L.Vectors()
	if reciprocal {
		vecs = L.ReciprocalVectors()
		vecs.Scale(1/(2*math.Pi), vecs)
	}
	//one line per basis vector, from the origin to the vector tip.
	//the vectors are the columns of the matrix.
	for j := 0; j < L.Dim(); j++ {
		tip := plotter.XY{X: vecs.At(0, j)}
		if L.Dim() > 1 {
			tip.Y = vecs.At(1, j)
		}
		line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, tip})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("a%d", j+1), line)
	}
	for alpha := 0; alpha < L.Len(); alpha++ {
		s, err := plotter.NewScatter(plotter.XYs{point(L.GetPosition(nil, alpha))})
		if err != nil {
			return err
		}
		at := L.Atom(alpha)
		s.GlyphStyle.Color = atomColor(at, alpha)
		s.GlyphStyle.Radius = vg.Points(math.Max(at.Size/2, 2))
		p.Add(s)
		p.Legend.Add(at.Name, s)
	}
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}

//Sites draws the given sites of L as markers, one series per atom kind, and
//saves the result as plotname.png. Use it together with SitesInShape to look
//at a carved finite lattice.
func Sites(L *latt.Lattice, sites []latt.Index, title, plotname string) error {
	if L.Dim() > 2 {
		return fmt.Errorf("can't plot a %dD lattice", L.Dim())
	}
	p := basicPlot(title)
	perAtom := make(map[int]plotter.XYs)
	for _, idx := range sites {
		perAtom[idx.Alpha] = append(perAtom[idx.Alpha], point(L.GetPosition(idx.N, idx.Alpha)))
	}
	for alpha := 0; alpha < L.Len(); alpha++ {
		pts := perAtom[alpha]
		if pts == nil {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		at := L.Atom(alpha)
		s.GlyphStyle.Color = atomColor(at, alpha)
		p.Add(s)
		p.Legend.Add(at.Name, s)
	}
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}

//atomColor picks the atom's own color when it parses as one of the names we
//know, and a palette color from the atom index otherwise.
func atomColor(at *latt.Atom, alpha int) color.Color {
	switch at.Col {
	case "k", "black":
		return color.Black
	case "r", "red":
		return color.RGBA{R: 255, A: 255}
	case "g", "green":
		return color.RGBA{G: 170, A: 255}
	case "b", "blue":
		return color.RGBA{B: 255, A: 255}
	}
	return defcolors[alpha%len(defcolors)]
}
