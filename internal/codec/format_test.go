package codec

import "testing"

func TestFormatFromExtension(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want Format
	}{
		{"png lowercase", "png", PNG},
		{"png with dot", ".png", PNG},
		{"png uppercase", "PNG", PNG},
		{"jpg", "jpg", JPEG},
		{"jpeg", "jpeg", JPEG},
		{"jpe variant", "jpe", JPEG},
		{"jpg mixed case with dot", ".JpG", JPEG},
		{"tif", "tif", TIFF},
		{"tiff", "tiff", TIFF},
		{"bmp", "bmp", BMP},
		{"gif", "gif", GIF},
		{"ico", "ico", ICO},
		{"emf", "emf", EMF},
		{"wmf", "wmf", WMF},
		{"exif", "exif", EXIF},
		{"surrounding whitespace", " .gif ", GIF},
		{"unknown falls back to png", "webp", PNG},
		{"empty falls back to png", "", PNG},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFromExtension(tt.ext); got != tt.want {
				t.Errorf("FormatFromExtension(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Format
	}{
		{"simple file", "shot.bmp", BMP},
		{"nested path", "out/masks/alpha.TIF", TIFF},
		{"no extension", "README", PNG},
		{"trailing dot", "weird.", PNG},
		{"dots in directory", "v1.2/frame.gif", GIF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormatExtension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PNG, "png"},
		{BMP, "bmp"},
		{EMF, "emf"},
		{EXIF, "exif"},
		{GIF, "gif"},
		{ICO, "ico"},
		{JPEG, "jpg"},
		{TIFF, "tif"},
		{WMF, "wmf"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.Extension(); got != tt.want {
				t.Errorf("%v.Extension() = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	if got := JPEG.String(); got != "JPEG" {
		t.Errorf("JPEG.String() = %q, want %q", got, "JPEG")
	}
	if got := Format(99).String(); got != "PNG" {
		t.Errorf("Format(99).String() = %q, want %q", got, "PNG")
	}
}
