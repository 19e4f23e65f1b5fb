package rast

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestEncodePPM_HeaderAndPayload(t *testing.T) {
	p := NewPixmap(2, 1)
	p.SetPixel(0, 0, RGBA(10, 20, 30, 255))
	p.SetPixel(1, 0, RGBA(40, 50, 60, 128))

	var buf bytes.Buffer
	if err := EncodePPM(&buf, p); err != nil {
		t.Fatalf("EncodePPM: %v", err)
	}

	header := []byte("P6\n2 1\n255\n")
	if !bytes.HasPrefix(buf.Bytes(), header) {
		t.Fatalf("header = %q", buf.Bytes()[:min(len(buf.Bytes()), len(header))])
	}
	payload := buf.Bytes()[len(header):]
	want := []byte{10, 20, 30, 40, 50, 60}
	if !bytes.Equal(payload, want) {
		t.Errorf("payload = %v, want %v", payload, want)
	}
}

func TestEncodeBMP_RoundTrip(t *testing.T) {
	p := NewPixmap(3, 2)
	p.Clear(RGB(10, 200, 30))
	p.SetPixel(2, 1, RGB(250, 1, 2))

	var buf bytes.Buffer
	if err := EncodeBMP(&buf, p); err != nil {
		t.Fatalf("EncodeBMP: %v", err)
	}

	img, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding produced BMP: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("decoded bounds = %v", img.Bounds())
	}
	r, g, b, _ := img.At(2, 1).RGBA()
	if uint8(r>>8) != 250 || uint8(g>>8) != 1 || uint8(b>>8) != 2 {
		t.Errorf("decoded pixel (2,1) = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	p := NewPixmap(2, 2)
	p.SetPixel(0, 0, RGBA(255, 0, 0, 255))

	var buf bytes.Buffer
	if err := EncodePNG(&buf, p); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding produced PNG: %v", err)
	}
	r, _, _, _ := img.At(0, 0).RGBA()
	if uint8(r>>8) != 255 {
		t.Errorf("decoded pixel (0,0) red = %d, want 255", r>>8)
	}
}

func TestSavePPM_WritesFile(t *testing.T) {
	p := NewPixmap(1, 1)
	p.SetPixel(0, 0, RGB(1, 2, 3))

	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := SavePPM(path, p); err != nil {
		t.Fatalf("SavePPM: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	want := append([]byte("P6\n1 1\n255\n"), 1, 2, 3)
	if !bytes.Equal(data, want) {
		t.Errorf("file contents = %v, want %v", data, want)
	}
}
