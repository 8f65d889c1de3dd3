package canopy

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// defaultScreenshotDir is where Screenshot writes when ScreenshotDir is empty.
const defaultScreenshotDir = "screenshots"

// Screenshot asks for the next drawn frame to be saved as
// <ScreenshotDir>/<label>-f<frame>.png. Several labels queued before one Draw
// share a single capture of that frame.
func (s *Scene) Screenshot(label string) {
	s.screenshots = append(s.screenshots, label)
}

// Frame returns the number of frames drawn so far.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// captureFrame reads the finished frame back once and saves it for every
// pending label. Pixels land in a buffer reused across captures.
func (s *Scene) captureFrame(screen *ebiten.Image) {
	if len(s.screenshots) == 0 {
		return
	}
	b := screen.Bounds()
	if s.capture == nil || s.capture.Rect.Dx() != b.Dx() || s.capture.Rect.Dy() != b.Dy() {
		s.capture = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	screen.ReadPixels(s.capture.Pix)
	s.saveCapture(s.capture)
}

// saveCapture writes img under every pending label and empties the queue.
// Failures are logged; the frame loop never stops for a screenshot.
func (s *Scene) saveCapture(img *image.RGBA) {
	labels := s.screenshots
	s.screenshots = s.screenshots[:0]

	dir := s.ScreenshotDir
	if dir == "" {
		dir = defaultScreenshotDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		Logger().Warn("canopy: screenshot dir", "dir", dir, "err", err)
		return
	}

	// img holds premultiplied pixels; the encoder converts to straight alpha.
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		Logger().Warn("canopy: screenshot encode", "frame", s.frame, "err", err)
		return
	}
	for _, label := range labels {
		path := filepath.Join(dir, screenshotName(label, s.frame))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			Logger().Warn("canopy: screenshot write", "path", path, "err", err)
			continue
		}
		Logger().Info("canopy: screenshot written", "path", path)
	}
}

// screenshotName builds the file name for label at frame. Characters outside
// [A-Za-z0-9.-] become underscores; a blank label becomes "frame".
func screenshotName(label string, frame uint64) string {
	label = strings.TrimSpace(label)
	if label == "" {
		label = "frame"
	}
	label = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
	return fmt.Sprintf("%s-f%06d.png", label, frame)
}
