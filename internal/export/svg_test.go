package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCurveToSVG(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, -1, 2, 0}

	svg := CurveToSVG(xs, ys, 640, 360, "#00ff00")
	if svg == "" {
		t.Fatal("CurveToSVG returned empty output")
	}
	if !strings.Contains(svg, `width="640" height="360"`) {
		t.Error("missing dimensions")
	}
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("missing stroke color")
	}
	if !strings.Contains(svg, "<path") {
		t.Error("missing path element")
	}
	// One move plus three line segments.
	if got := strings.Count(svg, " L"); got != 3 {
		t.Errorf("line segments = %d, want 3", got)
	}
}

func TestCurveToSVGTooFewPoints(t *testing.T) {
	if svg := CurveToSVG([]float64{1}, []float64{1}, 100, 100, "#fff"); svg != "" {
		t.Error("expected empty output for a single point")
	}
	if svg := CurveToSVG(nil, nil, 100, 100, "#fff"); svg != "" {
		t.Error("expected empty output for no points")
	}
}

func TestCurveToSVGFlatSeries(t *testing.T) {
	// Zero vertical range must not divide by zero.
	xs := []float64{0, 1, 2}
	ys := []float64{5, 5, 5}
	if svg := CurveToSVG(xs, ys, 100, 100, "#fff"); svg == "" {
		t.Fatal("flat series should still render")
	}
}

func TestWriteCurveSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.svg")
	if err := WriteCurveSVG(path, []float64{0, 1, 2}, []float64{3, 1, 2}, 320, 240, "#ff0000"); err != nil {
		t.Fatalf("WriteCurveSVG() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "<?xml") {
		t.Error("file does not start with an XML declaration")
	}
}
