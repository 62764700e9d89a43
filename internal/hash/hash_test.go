package hash

import (
	"testing"

	"github.com/gogpu/vrast/scene"
)

func rect(x, y, w float32) []scene.Point {
	return []scene.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + w}, {X: x, Y: y + w}}
}

func TestSceneHashDeterministic(t *testing.T) {
	build := func() *scene.PackedScene {
		p := scene.NewPacker()
		p.Fill([][]scene.Point{rect(0, 0, 10)}, scene.Color{R: 1, A: 1}, scene.FillRuleEvenOdd)
		return p.Build(100, 100, 64, 1)
	}
	h1 := Scene(build())
	h2 := Scene(build())
	if h1 != h2 {
		t.Errorf("Scene() hash not deterministic: %d != %d", h1, h2)
	}
}

func TestSceneHashDiffersOnContent(t *testing.T) {
	p1 := scene.NewPacker()
	p1.Fill([][]scene.Point{rect(0, 0, 10)}, scene.Color{R: 1, A: 1}, scene.FillRuleEvenOdd)
	ps1 := p1.Build(100, 100, 64, 1)

	p2 := scene.NewPacker()
	p2.Fill([][]scene.Point{rect(0, 0, 20)}, scene.Color{R: 1, A: 1}, scene.FillRuleEvenOdd)
	ps2 := p2.Build(100, 100, 64, 1)

	if Scene(ps1) == Scene(ps2) {
		t.Error("Scene() hash should differ for different geometry")
	}
}
