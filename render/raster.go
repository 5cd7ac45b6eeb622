package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle
const kappa = 0.5522847498

// RasterSurface rasterizes draw calls into an RGBA image with anti-aliasing
type RasterSurface struct {
	img   *image.RGBA
	scale float64
	rast  *vector.Rasterizer
}

// NewRasterSurface creates an image of worldW*scale x worldH*scale pixels
func NewRasterSurface(worldW, worldH, scale float64) *RasterSurface {
	w := int(math.Ceil(worldW * scale))
	h := int(math.Ceil(worldH * scale))
	return &RasterSurface{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		scale: scale,
		rast:  vector.NewRasterizer(w, h),
	}
}

// Image returns the backing image, valid until the next draw call
func (rs *RasterSurface) Image() *image.RGBA {
	return rs.img
}

func (rs *RasterSurface) Clear(r Rect) {
	px := image.Rect(
		int(math.Floor(r.X*rs.scale)), int(math.Floor(r.Y*rs.scale)),
		int(math.Ceil((r.X+r.W)*rs.scale)), int(math.Ceil((r.Y+r.H)*rs.scale)),
	)
	draw.Draw(rs.img, px.Intersect(rs.img.Bounds()), image.NewUniform(ColorBackground), image.Point{}, draw.Src)
}

func (rs *RasterSurface) FillRect(r Rect, c color.Color) {
	s := float32(rs.scale)
	x0, y0 := float32(r.X)*s, float32(r.Y)*s
	x1, y1 := float32(r.X+r.W)*s, float32(r.Y+r.H)*s

	rs.begin()
	rs.rast.MoveTo(x0, y0)
	rs.rast.LineTo(x1, y0)
	rs.rast.LineTo(x1, y1)
	rs.rast.LineTo(x0, y1)
	rs.rast.ClosePath()
	rs.paint(c)
}

func (rs *RasterSurface) FillCircle(cx, cy, radius float64, c color.Color) {
	s := float32(rs.scale)
	x, y, r := float32(cx)*s, float32(cy)*s, float32(radius)*s
	k := r * kappa

	rs.begin()
	rs.rast.MoveTo(x+r, y)
	rs.rast.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
	rs.rast.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
	rs.rast.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
	rs.rast.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
	rs.rast.ClosePath()
	rs.paint(c)
}

func (rs *RasterSurface) begin() {
	b := rs.img.Bounds()
	rs.rast.Reset(b.Dx(), b.Dy())
}

func (rs *RasterSurface) paint(c color.Color) {
	rs.rast.DrawOp = draw.Over
	rs.rast.Draw(rs.img, rs.img.Bounds(), image.NewUniform(c), image.Point{})
}

// EncodePNG writes the current image as PNG
func (rs *RasterSurface) EncodePNG(w io.Writer) error {
	return png.Encode(w, rs.img)
}
