package plot

import (
	"image/color"
	"testing"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/test"
)

func TestSurfaceResize(t *testing.T) {
	s := NewSurface(10.0, 20.0)
	test.T(t, s.Bounds(), Rect{0.0, 0.0, 10.0, 20.0})

	s.Resize(30.0, 40.0)
	w, h := s.Size()
	test.Float(t, w, 30.0)
	test.Float(t, h, 40.0)
	test.That(t, s.Image() == nil) // the vector backend keeps no raster
}

func TestSurfaceRasterResize(t *testing.T) {
	s := NewSurface(10.0, 10.0)
	s.ensureRaster()
	test.That(t, s.hasRaster())

	s.img.Set(5, 5, color.RGBA{255, 0, 0, 255})
	s.markBufferValid()
	s.Resize(20.0, 20.0)
	test.T(t, s.Image().Bounds().Dx(), 20)

	// the scaled-up old content fills the frame until the redraw lands
	nonzero := false
	for _, px := range s.Image().Pix {
		if px != 0 {
			nonzero = true
			break
		}
	}
	test.That(t, nonzero)
	test.That(t, !s.bufValid)
}

func TestSurfaceResizeWithoutBuffer(t *testing.T) {
	s := NewSurface(10.0, 10.0)
	s.ensureRaster() // never painted, buffer never validated
	s.Resize(20.0, 20.0)
	test.T(t, s.Image().Bounds().Dx(), 20)
	for _, px := range s.Image().Pix {
		test.T(t, px, uint8(0))
	}
}

func TestSurfaceClearRaster(t *testing.T) {
	s := NewSurface(10.0, 10.0)
	s.ensureRaster()
	s.img.Set(1, 1, color.RGBA{255, 255, 255, 255})
	s.markBufferValid()

	s.clearRaster()
	_, _, _, a := s.img.At(1, 1).RGBA()
	test.T(t, a, uint32(0))
	test.That(t, !s.bufValid)
}

func TestSurfaceVectorFlush(t *testing.T) {
	p, sched := newPlot()
	p.BindProperty(ChannelX, field("x"), nil)
	p.BindProperty(ChannelY, field("y"), nil)
	ds := NewDataset(record{"x": 10.0, "y": 10.0})
	p.AddDataset(ds)
	surface := NewSurface(50.0, 50.0)
	p.Anchor(surface)
	sched.run()

	c := canvas.New(50.0, 50.0)
	ctx := canvas.NewContext(c)
	p.Draw(ctx)
	surface.Draw(ctx, p.drawers[ds])
}
