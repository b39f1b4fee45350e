// seehuhn.de/go/paint - a scene-description language and rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package ppm writes images as binary portable pixmaps (P6), the external
// serializer format the scene renderer targets.
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// Encode writes img to w as a binary P6 PPM: the header "P6 W H 255\n"
// followed by W*H raw RGB triples in row-major order. The scene's Y axis
// grows upward, but PPM rows grow downward, so row 0 of the file is img's
// top row -- the Y axis is flipped here, once, at the serialization
// boundary.
func Encode(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6 %d %d 255\n", width, height); err != nil {
		return err
	}

	buf := make([]byte, 0, width*3)
	for fileRow := 0; fileRow < height; fileRow++ {
		y := bounds.Min.Y + (height - 1 - fileRow)
		buf = buf[:0]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			buf = append(buf, byte(r>>8), byte(g>>8), byte(b>>8))
		}
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}
