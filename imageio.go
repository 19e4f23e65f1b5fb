package rast

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// EncodePPM writes the pixmap as binary PPM (P6): the header
// "P6\n<width> <height>\n255\n" followed by one RGB byte triple per pixel.
// Alpha is dropped.
func EncodePPM(w io.Writer, p *Pixmap) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", p.Width(), p.Height()); err != nil {
		return err
	}
	for _, v := range p.Pix() {
		if _, err := bw.Write([]byte{uint8(v), uint8(v >> 8), uint8(v >> 16)}); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SavePPM writes the pixmap to a PPM file.
func SavePPM(path string, p *Pixmap) error {
	return saveWith(path, p, EncodePPM)
}

// EncodeBMP writes the pixmap as a BMP image. Alpha is dropped.
func EncodeBMP(w io.Writer, p *Pixmap) error {
	return bmp.Encode(w, p.ToImage())
}

// SaveBMP writes the pixmap to a BMP file.
func SaveBMP(path string, p *Pixmap) error {
	return saveWith(path, p, EncodeBMP)
}

// EncodePNG writes the pixmap as a PNG image, alpha included.
func EncodePNG(w io.Writer, p *Pixmap) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG writes the pixmap to a PNG file.
func SavePNG(path string, p *Pixmap) error {
	return saveWith(path, p, EncodePNG)
}

func saveWith(path string, p *Pixmap, encode func(io.Writer, *Pixmap) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
