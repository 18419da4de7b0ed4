package pixel

import "testing"

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in   string
		want Channel
	}{
		{"r", Red},
		{"g", Green},
		{"b", Blue},
		{"a", Alpha},
		{"rgb", RGB},
		{"R", Red},
		{"RGB", RGB},
		{"Rgb", RGB},
		{" a ", Alpha},
		{"", ChannelNone},
		{"x", ChannelNone},
		{"argb", ChannelNone},
		{"red", ChannelNone},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseChannel(tt.in); got != tt.want {
				t.Errorf("ParseChannel(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestChannelSingle(t *testing.T) {
	tests := []struct {
		ch   Channel
		want bool
	}{
		{Alpha, true},
		{Red, true},
		{Green, true},
		{Blue, true},
		{RGB, false},
		{ChannelARGB, false},
		{ChannelNone, false},
		{Red | Green, false},
	}

	for _, tt := range tests {
		if got := tt.ch.Single(); got != tt.want {
			t.Errorf("%v.Single(): got %v, want %v", tt.ch, got, tt.want)
		}
	}
}

func TestChannelHas(t *testing.T) {
	if !RGB.Has(Red) || !RGB.Has(Green) || !RGB.Has(Blue) {
		t.Error("RGB should contain each color channel")
	}
	if RGB.Has(Alpha) {
		t.Error("RGB should not contain Alpha")
	}
	if !ChannelARGB.Has(RGB) {
		t.Error("ChannelARGB should contain the whole RGB set")
	}
	if ChannelNone.Has(Red) {
		t.Error("ChannelNone should contain nothing")
	}
}

func TestChannelCount(t *testing.T) {
	tests := []struct {
		ch   Channel
		want int
	}{
		{ChannelNone, 0},
		{Green, 1},
		{Red | Blue, 2},
		{RGB, 3},
		{ChannelARGB, 4},
	}

	for _, tt := range tests {
		if got := tt.ch.Count(); got != tt.want {
			t.Errorf("%v.Count(): got %d, want %d", tt.ch, got, tt.want)
		}
	}
}

func TestChannelString(t *testing.T) {
	tests := []struct {
		ch   Channel
		want string
	}{
		{ChannelNone, "none"},
		{Alpha, "a"},
		{Red, "r"},
		{RGB, "rgb"},
		{ChannelARGB, "argb"},
		{Alpha | Blue, "ab"},
	}

	for _, tt := range tests {
		if got := tt.ch.String(); got != tt.want {
			t.Errorf("String: got %q, want %q", got, tt.want)
		}
	}
}
