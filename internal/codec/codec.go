package codec

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-pipeline/internal/pixel"

	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
)

// Decode parses encoded image bytes into a pixel buffer. The format is
// detected from the data itself, not from any filename.
func Decode(data []byte) (*pixel.Buffer, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return pixel.FromImage(img), nil
}

// Encode serializes a pixel buffer into the given format's byte encoding.
func Encode(buf *pixel.Buffer, f Format) ([]byte, error) {
	var out bytes.Buffer
	if err := imaging.Encode(&out, buf.ToImage(), f.encoding()); err != nil {
		return nil, fmt.Errorf("failed to encode %s image: %w", f, err)
	}
	return out.Bytes(), nil
}
