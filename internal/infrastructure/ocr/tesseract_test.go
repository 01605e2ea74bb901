package ocr

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os/exec"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"bacabot/internal/domain"
)

// ensureTesseractAvailable checks that the tesseract binary is reachable.
func ensureTesseractAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("tesseract"); err != nil {
		t.Skip("tesseract not installed in PATH")
	}
}

func TestTesseractEngineRecognize(t *testing.T) {
	ensureTesseractAvailable(t)

	img := image.NewRGBA(image.Rect(0, 0, 200, 80))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(10, 50),
	}
	d.DrawString("Halo Dunia")

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	e := NewTesseractEngine(map[string]string{"user_defined_dpi": "300"})
	text, err := e.Recognize(context.Background(), buf.Bytes(), "eng")
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	got := strings.ToLower(text)
	if !strings.Contains(got, "halo") || !strings.Contains(got, "dunia") {
		t.Fatalf("unexpected OCR output: %q", text)
	}
}

func TestTesseractEngineRejectsNonImage(t *testing.T) {
	e := NewTesseractEngine(nil)
	_, err := e.Recognize(context.Background(), []byte("bukan gambar"), "ind")
	if !errors.Is(err, domain.ErrUnsupportedImage) {
		t.Fatalf("Recognize() error = %v; want ErrUnsupportedImage", err)
	}
}

func TestTesseractEngineCanceled(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewTesseractEngine(nil).Recognize(ctx, buf.Bytes())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Recognize() error = %v; want context.Canceled", err)
	}
}
