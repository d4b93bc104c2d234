/*
 * geometry.go, part of motif-conformation-finder
 *
 * Copyright 2026 F. A. Lategan
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

//Package ic derives internal coordinates, i.e. bond lengths, bond angles
//and dihedral angles, from the Cartesian atom positions of protein
//residues, using a fixed per-amino-acid table of named atom chains.
package ic

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

//Things that are smaller than appzero are considered zero.
const appzero = 0.000000000001

const rad2deg = 180 / math.Pi

//Distance returns the distance between the points a and b.
func Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

//Angle returns the angle at b formed by the points a, b, c, in radians.
func Angle(a, b, c r3.Vec) float64 {
	v1 := r3.Sub(a, b)
	v2 := r3.Sub(c, b)
	normproduct := r3.Norm(v1) * r3.Norm(v2)
	argument := r3.Dot(v1, v2) / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.0
	}
	return angle
}

//Dihedral returns the dihedral between the points a, b, c, d, where the
//first plane is defined by abc and the second by bcd, in radians, in the
//range (-pi, pi].
func Dihedral(a, b, c, d r3.Vec) float64 {
	bma := r3.Sub(b, a)
	cmb := r3.Sub(c, b)
	dmc := r3.Sub(d, c)
	first := r3.Dot(r3.Scale(r3.Norm(cmb), bma), r3.Cross(cmb, dmc))
	v1 := r3.Cross(bma, cmb)
	v2 := r3.Cross(cmb, dmc)
	return math.Atan2(first, r3.Dot(v1, v2))
}
