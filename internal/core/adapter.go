package core

import "math"

// ScreenAdapter converts between design coordinates (the fixed resolution
// scenes are laid out in) and screen coordinates (terminal cells).
//
// The design area is scaled uniformly to fit the screen and centered, so
// the aspect ratio is preserved and any leftover space becomes margins.
type ScreenAdapter struct {
	designW, designH float64
	screenW, screenH float64

	scale            float64
	offsetX, offsetY float64

	safeInsets Insets
}

// Insets are per-edge margins in screen cells.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// NewScreenAdapter creates an adapter for the given design and screen sizes.
func NewScreenAdapter(designW, designH, screenW, screenH float64) *ScreenAdapter {
	a := &ScreenAdapter{
		designW: math.Max(designW, 1),
		designH: math.Max(designH, 1),
	}
	a.Resize(screenW, screenH)
	return a
}

// Resize recomputes scale and offsets for a new screen size.
func (a *ScreenAdapter) Resize(screenW, screenH float64) {
	a.screenW = math.Max(screenW, 0)
	a.screenH = math.Max(screenH, 0)

	scaleX := a.screenW / a.designW
	scaleY := a.screenH / a.designH
	a.scale = math.Min(scaleX, scaleY)

	a.offsetX = (a.screenW - a.designW*a.scale) / 2
	a.offsetY = (a.screenH - a.designH*a.scale) / 2
}

// SetSafeInsets reserves screen edges (status bars, notches) that
// interactive content should avoid.
func (a *ScreenAdapter) SetSafeInsets(in Insets) {
	a.safeInsets = in
}

// ToScreen converts a design point to screen coordinates.
func (a *ScreenAdapter) ToScreen(x, y float64) Vec2 {
	return Vec2{
		X: x*a.scale + a.offsetX,
		Y: y*a.scale + a.offsetY,
	}
}

// ToDesign converts a screen point to design coordinates.
func (a *ScreenAdapter) ToDesign(x, y float64) Vec2 {
	if a.scale == 0 {
		return Vec2{}
	}
	return Vec2{
		X: (x - a.offsetX) / a.scale,
		Y: (y - a.offsetY) / a.scale,
	}
}

// ToScreenSize converts a design length to screen cells.
func (a *ScreenAdapter) ToScreenSize(size float64) float64 {
	return size * a.scale
}

// ToDesignSize converts a screen length to design units.
func (a *ScreenAdapter) ToDesignSize(size float64) float64 {
	if a.scale == 0 {
		return 0
	}
	return size / a.scale
}

// ScreenWidth returns the screen width in cells.
func (a *ScreenAdapter) ScreenWidth() float64 { return a.screenW }

// ScreenHeight returns the screen height in cells.
func (a *ScreenAdapter) ScreenHeight() float64 { return a.screenH }

// DesignWidth returns the design width.
func (a *ScreenAdapter) DesignWidth() float64 { return a.designW }

// DesignHeight returns the design height.
func (a *ScreenAdapter) DesignHeight() float64 { return a.designH }

// Scale returns the uniform design-to-screen scale factor.
func (a *ScreenAdapter) Scale() float64 { return a.scale }

// DesignBounds returns the full design area.
func (a *ScreenAdapter) DesignBounds() Rect {
	return NewRect(0, 0, a.designW, a.designH)
}

// SafeArea returns the screen area not covered by the safe insets.
func (a *ScreenAdapter) SafeArea() Rect {
	in := a.safeInsets
	return NewRect(0, 0, a.screenW, a.screenH).Inset(in.Top, in.Right, in.Bottom, in.Left)
}

// IsInSafeArea reports whether a screen point lies inside the safe area.
func (a *ScreenAdapter) IsInSafeArea(x, y float64) bool {
	return a.SafeArea().Contains(x, y)
}
