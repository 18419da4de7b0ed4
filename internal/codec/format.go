package codec

import (
	"strings"

	"github.com/disintegration/imaging"
)

// Format identifies an image file format. The zero value is PNG, which is
// also the fallback for unrecognized extensions and for formats that have no
// native encoder.
type Format int

const (
	PNG Format = iota
	BMP
	EMF
	EXIF
	GIF
	ICO
	JPEG
	TIFF
	WMF
)

var formatNames = map[Format]string{
	PNG:  "PNG",
	BMP:  "BMP",
	EMF:  "EMF",
	EXIF: "EXIF",
	GIF:  "GIF",
	ICO:  "ICO",
	JPEG: "JPEG",
	TIFF: "TIFF",
	WMF:  "WMF",
}

var formatExts = map[string]Format{
	"png":  PNG,
	"bmp":  BMP,
	"emf":  EMF,
	"exif": EXIF,
	"gif":  GIF,
	"ico":  ICO,
	"jpg":  JPEG,
	"jpeg": JPEG,
	"jpe":  JPEG,
	"tif":  TIFF,
	"tiff": TIFF,
	"wmf":  WMF,
}

// FormatFromExtension maps a file extension to its Format. The leading dot
// is optional and case does not matter. Unknown extensions map to PNG.
func FormatFromExtension(ext string) Format {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if f, ok := formatExts[ext]; ok {
		return f
	}
	return PNG
}

// FormatFromPath is FormatFromExtension applied to the path's extension.
func FormatFromPath(path string) Format {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return PNG
	}
	return FormatFromExtension(path[i:])
}

// Extension returns the canonical file extension for the format, without
// the leading dot.
func (f Format) Extension() string {
	switch f {
	case BMP:
		return "bmp"
	case EMF:
		return "emf"
	case EXIF:
		return "exif"
	case GIF:
		return "gif"
	case ICO:
		return "ico"
	case JPEG:
		return "jpg"
	case TIFF:
		return "tif"
	case WMF:
		return "wmf"
	default:
		return "png"
	}
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "PNG"
}

// encoding selects the imaging encoder used for the format. EMF, EXIF, ICO
// and WMF have no Go encoder, so their output is written as PNG bytes.
func (f Format) encoding() imaging.Format {
	switch f {
	case BMP:
		return imaging.BMP
	case GIF:
		return imaging.GIF
	case JPEG:
		return imaging.JPEG
	case TIFF:
		return imaging.TIFF
	default:
		return imaging.PNG
	}
}
