package canopy

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestScreenshotName(t *testing.T) {
	tests := []struct {
		label string
		frame uint64
		want  string
	}{
		{"hello", 1, "hello-f000001.png"},
		{"after-click", 42, "after-click-f000042.png"},
		{"frame.01", 7, "frame.01-f000007.png"},
		{"has spaces", 3, "has_spaces-f000003.png"},
		{"path/to/thing", 3, "path_to_thing-f000003.png"},
		{"special!@#$%", 3, "special_____-f000003.png"},
		{"", 9, "frame-f000009.png"},
		{"   ", 9, "frame-f000009.png"},
	}
	for _, tt := range tests {
		if got := screenshotName(tt.label, tt.frame); got != tt.want {
			t.Errorf("screenshotName(%q, %d) = %q, want %q", tt.label, tt.frame, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s := NewScene(SceneConfig{})
	s.Screenshot("a")
	s.Screenshot("b")
	if len(s.screenshots) != 2 || s.screenshots[0] != "a" || s.screenshots[1] != "b" {
		t.Errorf("queue = %v, want [a b]", s.screenshots)
	}
}

func TestSaveCapture(t *testing.T) {
	s := NewScene(SceneConfig{})
	s.ScreenshotDir = filepath.Join(t.TempDir(), "shots")
	s.frame = 5
	s.Screenshot("one")
	s.Screenshot("two")

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 128, G: 64, A: 128}) // premultiplied, half alpha
	img.SetRGBA(1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	s.saveCapture(img)

	if len(s.screenshots) != 0 {
		t.Errorf("queue not emptied: %v", s.screenshots)
	}
	for _, name := range []string{"one-f000005.png", "two-f000005.png"} {
		f, err := os.Open(filepath.Join(s.ScreenshotDir, name))
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		decoded, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		got := color.NRGBAModel.Convert(decoded.At(0, 0)).(color.NRGBA)
		if got.A != 128 || got.R < 254 || got.G < 126 || got.G > 128 || got.B != 0 {
			t.Errorf("%s pixel = %+v, want straight alpha ~{255 127 0 128}", name, got)
		}
		if got := decoded.At(1, 0); got != (color.NRGBA{255, 255, 255, 255}) {
			t.Errorf("%s opaque pixel = %v", name, got)
		}
	}
}

func TestSaveCapture_NoLabelsWritesNothing(t *testing.T) {
	s := NewScene(SceneConfig{})
	s.ScreenshotDir = filepath.Join(t.TempDir(), "shots")
	s.saveCapture(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	entries, _ := os.ReadDir(s.ScreenshotDir)
	if len(entries) != 0 {
		t.Errorf("wrote %d files with no labels queued", len(entries))
	}
}
