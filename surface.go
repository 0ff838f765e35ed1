package plot

import (
	"image"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/draw"
)

// Surface is the drawing area a plot anchors to, in millimeters with the origin bottom-left. On the vector backend it is only a coordinate frame to flush retained nodes into; on the raster backend it owns the live raster image and a same-sized buffer copy used to avoid a visible flash during interactive resize.
type Surface struct {
	width, height float64
	resolution    canvas.Resolution

	img      *image.RGBA
	buf      *image.RGBA
	bufValid bool
}

// NewSurface returns a surface of the given size in millimeters at 1 dot per millimeter.
func NewSurface(width, height float64) *Surface {
	return &Surface{width: width, height: height, resolution: canvas.DPMM(1.0)}
}

// SetResolution sets the raster resolution. Any existing raster image is released.
func (s *Surface) SetResolution(resolution canvas.Resolution) {
	s.resolution = resolution
	s.releaseRaster()
}

// Size returns the surface size in millimeters.
func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}

// Bounds returns the surface bounds in its own coordinate frame.
func (s *Surface) Bounds() Rect {
	return Rect{0.0, 0.0, s.width, s.height}
}

// Resize changes the surface size. While a valid raster buffer exists, the live image is first blitted 1:1 into the buffer and scaled back after the resize, so intermediate frames show scaled content instead of a blank flash; a full redraw must still follow to correct the scaling artifacts.
func (s *Surface) Resize(width, height float64) {
	if width == s.width && height == s.height {
		return
	}
	blit := s.img != nil && s.buf != nil && s.bufValid
	if blit {
		draw.Draw(s.buf, s.img.Bounds(), s.img, image.Point{}, draw.Src)
	}
	s.width = width
	s.height = height
	if s.img != nil {
		old := s.buf
		s.img = image.NewRGBA(s.rasterRect())
		s.buf = image.NewRGBA(s.rasterRect())
		if blit {
			draw.ApproxBiLinear.Scale(s.img, s.img.Bounds(), old, old.Bounds(), draw.Src, nil)
		}
		// the buffer copy no longer matches the live size; the scheduled redraw refreshes it
		s.bufValid = false
	}
}

// Draw flushes the retained nodes of the given drawers to a canvas context.
func (s *Surface) Draw(ctx *canvas.Context, drawers ...*Drawer) {
	for _, d := range drawers {
		d.renderTo(ctx)
	}
}

func (s *Surface) rasterRect() image.Rectangle {
	dpmm := s.resolution.DPMM()
	return image.Rect(0, 0, int(s.width*dpmm+0.5), int(s.height*dpmm+0.5))
}

// ensureRaster lazily creates the raster image and its same-sized buffer.
func (s *Surface) ensureRaster() {
	if s.img == nil {
		s.img = image.NewRGBA(s.rasterRect())
		s.buf = image.NewRGBA(s.rasterRect())
		s.bufValid = false
	}
}

// releaseRaster drops the raster image and buffer.
func (s *Surface) releaseRaster() {
	s.img = nil
	s.buf = nil
	s.bufValid = false
}

// hasRaster returns true if a usable, non-degenerate raster image exists.
func (s *Surface) hasRaster() bool {
	return s.img != nil && !s.img.Bounds().Empty()
}

// Image returns the live raster image, or nil on the vector backend.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// clearRaster clears the live raster image and invalidates the buffer copy.
func (s *Surface) clearRaster() {
	if s.img == nil {
		return
	}
	clear(s.img.Pix)
	s.bufValid = false
}

// markBufferValid records that the buffer copy matches the live image.
func (s *Surface) markBufferValid() {
	if s.img != nil && s.buf != nil {
		draw.Draw(s.buf, s.img.Bounds(), s.img, image.Point{}, draw.Src)
		s.bufValid = true
	}
}
