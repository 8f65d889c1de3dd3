package canopy

import "testing"

func TestGameShellLayout(t *testing.T) {
	s := NewScene(SceneConfig{Width: 640, Height: 480})
	g := &gameShell{scene: s}

	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"unchanged", 640, 480, 640, 480},
		{"resized", 800, 600, 800, 600},
		{"minimized", 0, 0, 800, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := g.Layout(tt.w, tt.h)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Layout(%d, %d) = (%d, %d), want (%d, %d)", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
			}
			if vp := s.Viewport(); vp.Width != tt.wantW || vp.Height != tt.wantH {
				t.Errorf("Viewport = %v", vp)
			}
		})
	}
}

func TestSetUpdateFunc(t *testing.T) {
	s := NewScene(SceneConfig{})
	called := 0
	s.SetUpdateFunc(func() error { called++; return nil })
	if s.updateFunc == nil {
		t.Fatal("update func not stored")
	}
	_ = s.updateFunc()
	if called != 1 {
		t.Errorf("called = %d", called)
	}
}
