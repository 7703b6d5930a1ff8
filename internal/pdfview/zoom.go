package pdfview

type FitMode int

const (
	// FitWidth scales the page to fill the viewport width.
	FitWidth FitMode = iota
	// FitPage scales the page so the whole page is visible.
	FitPage
)

const (
	MinZoom = 0.25
	MaxZoom = 4.0
)

// FitZoom computes the zoom factor for a page inside a viewport. Degenerate
// page or viewport sizes yield 1. The result is clamped to [MinZoom, MaxZoom].
func FitZoom(viewportW, viewportH, pageW, pageH float64, mode FitMode) float64 {
	if viewportW <= 0 || viewportH <= 0 || pageW <= 0 || pageH <= 0 {
		return 1
	}

	zoom := viewportW / pageW
	if mode == FitPage {
		if byHeight := viewportH / pageH; byHeight < zoom {
			zoom = byHeight
		}
	}
	return ClampZoom(zoom)
}

// ClampZoom bounds an explicit zoom factor to the supported range.
func ClampZoom(zoom float64) float64 {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}
