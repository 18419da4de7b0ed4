package codec

import (
	"bytes"
	"testing"

	"github.com/ironsheep/pixel-pipeline/internal/pixel"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func newTestBuffer(t *testing.T) *pixel.Buffer {
	t.Helper()
	buf := pixel.NewBuffer(2, 2)
	buf.Set(0, 0, pixel.FromARGB(255, 10, 20, 30))
	buf.Set(1, 0, pixel.FromARGB(255, 200, 100, 50))
	buf.Set(0, 1, pixel.FromARGB(128, 0, 255, 0))
	buf.Set(1, 1, pixel.FromARGB(7, 1, 2, 3))
	return buf
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	buf := newTestBuffer(t)

	data, err := Encode(buf, PNG)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !bytes.HasPrefix(data, pngSignature) {
		t.Fatalf("Encode(PNG) did not produce PNG bytes, got prefix % x", data[:min(8, len(data))])
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Width() != buf.Width() || got.Height() != buf.Height() {
		t.Fatalf("Decode() size = %dx%d, want %dx%d", got.Width(), got.Height(), buf.Width(), buf.Height())
	}
	for x := 0; x < buf.Width(); x++ {
		for y := 0; y < buf.Height(); y++ {
			if got.Get(x, y) != buf.Get(x, y) {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got.Get(x, y), buf.Get(x, y))
			}
		}
	}
}

func TestEncodeFallsBackToPNG(t *testing.T) {
	buf := newTestBuffer(t)

	for _, f := range []Format{EMF, EXIF, ICO, WMF} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Encode(buf, f)
			if err != nil {
				t.Fatalf("Encode(%v) error = %v", f, err)
			}
			if !bytes.HasPrefix(data, pngSignature) {
				t.Errorf("Encode(%v) should fall back to PNG bytes", f)
			}
		})
	}
}

func TestEncodeNativeFormats(t *testing.T) {
	buf := newTestBuffer(t)

	for _, f := range []Format{BMP, GIF, JPEG, TIFF} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Encode(buf, f)
			if err != nil {
				t.Fatalf("Encode(%v) error = %v", f, err)
			}
			got, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got.Width() != 2 || got.Height() != 2 {
				t.Errorf("round trip size = %dx%d, want 2x2", got.Width(), got.Height())
			}
		})
	}
}

func TestDecodeInvalidData(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("Decode() expected error for invalid data, got nil")
	}
	if _, err := Decode(nil); err == nil {
		t.Error("Decode() expected error for empty data, got nil")
	}
}
