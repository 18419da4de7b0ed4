package pipeline

import (
	"testing"

	"github.com/ironsheep/pixel-pipeline/internal/pixel"
)

func TestRegistryResolvePrimary(t *testing.T) {
	primary := pixel.NewBuffer(4, 3)
	reg := newRegistry(primary)

	if got := reg.resolve(""); got != primary {
		t.Error("resolve(\"\") should return the primary buffer")
	}
	if names := reg.names(); len(names) != 0 {
		t.Errorf("names() after primary resolve = %v, want empty", names)
	}
}

func TestRegistryLazyCreate(t *testing.T) {
	reg := newRegistry(pixel.NewBuffer(4, 3))

	buf := reg.resolve("mask")
	if buf.Width() != 4 || buf.Height() != 3 {
		t.Errorf("created buffer = %dx%d, want 4x3", buf.Width(), buf.Height())
	}
	if got := buf.Get(2, 1); got != 0 {
		t.Errorf("created buffer should be zero-filled, got %v", got)
	}
	if again := reg.resolve("mask"); again != buf {
		t.Error("second resolve of the same name should return the same buffer")
	}
}

func TestRegistryNamesCreationOrder(t *testing.T) {
	reg := newRegistry(pixel.NewBuffer(2, 2))

	reg.resolve("blue")
	reg.resolve("alpha")
	reg.resolve("blue") // already present, must not reorder
	reg.resolve("red")

	want := []string{"blue", "alpha", "red"}
	got := reg.names()
	if len(got) != len(want) {
		t.Fatalf("names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("names() = %v, want %v", got, want)
		}
	}

	// The returned slice is a copy.
	got[0] = "mutated"
	if reg.names()[0] != "blue" {
		t.Error("names() should return a copy of the creation order")
	}
}

func TestRegistryFreeAll(t *testing.T) {
	primary := pixel.NewBuffer(2, 2)
	reg := newRegistry(primary)
	named := reg.resolve("work")

	reg.freeAll()

	if primary.Width() != 0 || primary.Height() != 0 {
		t.Error("freeAll should free the primary buffer")
	}
	if named.Width() != 0 || named.Height() != 0 {
		t.Error("freeAll should free named buffers")
	}
}
