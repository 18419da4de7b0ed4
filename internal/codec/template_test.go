package codec

import "testing"

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		wantErr  bool
	}{
		{"single placeholder", "out/%s.png", false},
		{"placeholder only", "%s", false},
		{"literal percent alongside placeholder", "50%%-%s.png", false},
		{"no placeholder", "out/fixed.png", true},
		{"two placeholders", "%s/%s.png", true},
		{"wrong verb", "out/%d.png", true},
		{"extra verb next to placeholder", "%s-%v.png", true},
		{"escaped placeholder only", "out/%%s.png", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTemplate(tt.template)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTemplate(%q) error = %v, wantErr %v", tt.template, err, tt.wantErr)
			}
		})
	}
}

func TestExpandTemplate(t *testing.T) {
	got, err := ExpandTemplate("out/%s.png", "mask")
	if err != nil {
		t.Fatalf("ExpandTemplate() error = %v", err)
	}
	if want := "out/mask.png"; got != want {
		t.Errorf("ExpandTemplate() = %q, want %q", got, want)
	}

	if _, err := ExpandTemplate("out/fixed.png", "mask"); err == nil {
		t.Error("ExpandTemplate() expected error for template without placeholder")
	}
}

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		format Format
		want   string
	}{
		{"swap extension", "out/%s.jpg", PNG, "out/%s.png"},
		{"append when missing", "out/%s", JPEG, "out/%s.jpg"},
		{"keep matching extension", "shot.png", PNG, "shot.png"},
		{"only last extension swapped", "a.b.c.gif", TIFF, "a.b.c.tif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReplaceExt(tt.path, tt.format); got != tt.want {
				t.Errorf("ReplaceExt(%q, %v) = %q, want %q", tt.path, tt.format, got, tt.want)
			}
		})
	}
}
