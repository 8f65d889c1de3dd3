package canopy

import (
	"math/rand/v2"
	"testing"
)

// setupBenchScene creates a Scene with n interactive rectangles laid out on a
// grid with some overlap.
func setupBenchScene(n int) *Scene {
	s := NewScene(SceneConfig{Width: 1280, Height: 720, QueueCapacity: 64})
	for i := 0; i < n; i++ {
		r := Rect{X: float64(i%40) * 30, Y: float64(i/40) * 30, Width: 45, Height: 45}
		if i%3 == 0 {
			s.PushLayer()
		}
		s.AddInteractive(rectShape(r), func(ClickContext) {})
	}
	return s
}

// --- Hit index ---

func benchmarkHitSearch(b *testing.B, n int) {
	h := NewHitIndex()
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < n; i++ {
		x, y := rng.Float64()*1280, rng.Float64()*720
		h.Insert(box(newID(), x, y, x+rng.Float64()*100, y+rng.Float64()*100))
	}
	var buf []ID
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = h.AppendSearch(buf[:0], AbsPoint{X: float64(i % 1280), Y: float64(i % 720)})
	}
}

func BenchmarkHitSearch_100(b *testing.B)   { benchmarkHitSearch(b, 100) }
func BenchmarkHitSearch_1000(b *testing.B)  { benchmarkHitSearch(b, 1000) }
func BenchmarkHitSearch_10000(b *testing.B) { benchmarkHitSearch(b, 10000) }

func BenchmarkHitIndex_InsertRemove(b *testing.B) {
	h := NewHitIndex()
	for i := 0; i < 1000; i++ {
		x := float64(i)
		h.Insert(box(newID(), x, x, x+10, x+10))
	}
	id := newID()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x := float64(i % 1000)
		h.Insert(box(id, x, x, x+5, x+5))
		h.Remove(id)
	}
}

// --- Store ---

func BenchmarkStore_AddRemove(b *testing.B) {
	for _, mode := range []StoreMode{StoreOrdered, StoreUnordered} {
		b.Run(mode.String(), func(b *testing.B) {
			s := NewStore(mode)
			for i := 0; i < 1000; i++ {
				s.AddAt(&stub{"x"}, i%8)
			}
			obj := &stub{"y"}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				id := s.AddAt(obj, i%8)
				s.Remove(id)
			}
		})
	}
}

// --- Dispatch ---

func BenchmarkHandleInput_1000Objects(b *testing.B) {
	s := setupBenchScene(1000)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.InjectClick(float64(i%1200), float64(i%700))
		s.HandleInput()
	}
}
