package backend

import (
	"testing"

	"github.com/gogpu/vrast/scene"
	"github.com/gogpu/vrast/tile"
)

func rect(x, y, w, h float32) []scene.Point {
	return []scene.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
}

func filledScene(w, h, tileSize, ss uint32) *scene.PackedScene {
	p := scene.NewPacker()
	p.Fill([][]scene.Point{rect(10, 10, float32(w)-20, float32(h)-20)}, scene.Color{R: 1, A: 1}, scene.FillRuleEvenOdd)
	ps := p.Build(w, h, tileSize, ss)
	tile.Bin(ps, &tile.Arena{})
	return ps
}

func TestCPUBackendName(t *testing.T) {
	b := NewCPUBackend()
	if b.Name() != "cpu" {
		t.Errorf("Name() = %q, want %q", b.Name(), "cpu")
	}
}

func TestCPUBackendInit(t *testing.T) {
	b := NewCPUBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	b.Close()
}

func TestCPUBackendRenderBeforeInit(t *testing.T) {
	b := NewCPUBackend()
	ps := filledScene(100, 100, 64, 1)
	if _, _, _, _, err := b.Render(ps); err != ErrNotInitialized {
		t.Errorf("Render() before Init() = %v, want ErrNotInitialized", err)
	}
}

func TestCPUBackendRender(t *testing.T) {
	b := NewCPUBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	ps := filledScene(100, 100, 64, 1)
	pixels, rowPitch, width, height, err := b.Render(ps)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if width != 100 || height != 100 || rowPitch != 400 {
		t.Errorf("dims = (%d,%d,%d), want (100,100,400)", width, height, rowPitch)
	}
	off := 50*rowPitch + 50*4
	if pixels[off] == 0 && pixels[off+3] == 0 {
		t.Error("Render() did not render any content at (50,50)")
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	// CPU backend is auto-registered via init()
	if !IsRegistered("cpu") {
		t.Error("cpu backend should be auto-registered")
	}

	b := Get("cpu")
	if b == nil {
		t.Fatal("Get(cpu) returned nil")
	}
	if b.Name() != "cpu" {
		t.Errorf("Get(cpu).Name() = %q, want %q", b.Name(), "cpu")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	b := Get("nonexistent")
	if b != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryAvailable(t *testing.T) {
	available := Available()
	found := false
	for _, name := range available {
		if name == "cpu" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Available() should include 'cpu'")
	}
}

func TestRegistryDefault(t *testing.T) {
	b := Default()
	if b == nil {
		t.Fatal("Default() returned nil")
	}
	// CPU should be the default when no GPU backend is registered.
	if b.Name() != "cpu" {
		t.Logf("Default() returned %q (may vary based on available backends)", b.Name())
	}
}

func TestRegistryMustDefault(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	b := MustDefault()
	if b == nil {
		t.Error("MustDefault() returned nil")
	}
}

func TestRegistryInitDefault(t *testing.T) {
	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault() error = %v", err)
	}
	if b == nil {
		t.Fatal("InitDefault() returned nil backend")
	}
	defer b.Close()
}

func TestRegistryUnregister(t *testing.T) {
	testFactory := func() RenderBackend {
		return &CPUBackend{}
	}
	Register("test-backend", testFactory)

	if !IsRegistered("test-backend") {
		t.Error("test-backend should be registered")
	}

	Unregister("test-backend")

	if IsRegistered("test-backend") {
		t.Error("test-backend should be unregistered")
	}
}

func TestRegistryIsRegistered(t *testing.T) {
	if !IsRegistered("cpu") {
		t.Error("cpu should be registered")
	}
	if IsRegistered("nonexistent") {
		t.Error("nonexistent should not be registered")
	}
}

func TestCPUBackendClose(t *testing.T) {
	b := NewCPUBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	b.Close()
	if _, _, _, _, err := b.Render(filledScene(10, 10, 64, 1)); err != ErrNotInitialized {
		t.Errorf("Render() after Close() = %v, want ErrNotInitialized", err)
	}
}

func BenchmarkCPUBackendRender(b *testing.B) {
	backend := NewCPUBackend()
	_ = backend.Init()
	defer backend.Close()

	ps := filledScene(800, 600, 64, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _, _ = backend.Render(ps)
	}
}
