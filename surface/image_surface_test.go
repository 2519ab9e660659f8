// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nonnontrivial/mutpoint"
)

func rgbaAt(img image.Image, x, y int) (r, g, b uint8) {
	cr, cg, cb, _ := img.At(x, y).RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)
}

func TestImageSurfaceChart(t *testing.T) {
	var out bytes.Buffer
	s := NewImageSurface(&out, 0)

	c := mutpoint.NewChart(mutpoint.Series{{X: 0, Y: 0}, {X: 1, Y: 5}})
	require.NoError(t, c.Render(s, mutpoint.Line{}))

	img, err := png.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 500, 300), img.Bounds())

	r, g, b := rgbaAt(img, 5, 5)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b}, "background")

	r, _, _ = rgbaAt(img, 250, 150)
	assert.Less(t, r, uint8(128), "line pixel should be dark")

	assert.Equal(t, img.Bounds(), s.Image().Bounds())
}

func TestImageSurfaceBackgroundAndScale(t *testing.T) {
	s := NewImageSurface(nil, 2)
	require.NoError(t, s.Begin(mutpoint.Document{Width: 20, Height: 10, Background: "#ff0000"}))
	require.NoError(t, s.End())

	img := s.Image()
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())
	r, g, b := rgbaAt(img, 39, 19)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
}

func TestImageSurfaceFillAndClip(t *testing.T) {
	s := NewImageSurface(nil, 1)
	require.NoError(t, s.Begin(mutpoint.Document{Width: 40, Height: 40}))

	square := mutpoint.BuildPath().Rect(0, 0, 40, 40).Build()
	s.PushClip(mutpoint.Rect{Max: mutpoint.Pt(40, 20)})
	s.DrawPath(square, mutpoint.PathStyle{Fill: "#0000ff"}, mutpoint.Identity())
	s.PopClip()
	require.NoError(t, s.End())

	img := s.Image()
	r, g, b := rgbaAt(img, 20, 10)
	assert.Equal(t, [3]uint8{0, 0, 255}, [3]uint8{r, g, b}, "inside clip")
	r, g, b = rgbaAt(img, 20, 30)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b}, "outside clip")
}

func TestImageSurfaceAxes(t *testing.T) {
	c := mutpoint.NewChart(mutpoint.Series{{X: 0, Y: 1}, {X: 4, Y: 3}},
		mutpoint.WithMargin(mutpoint.Margin{Left: 40, Right: 10, Top: 10, Bottom: 30}))
	s := NewImageSurface(nil, 1)
	require.NoError(t, c.Render(s, mutpoint.Grid{}, mutpoint.Line{Curve: mutpoint.CurveNatural}, mutpoint.XAxis{}, mutpoint.YAxis{}))
	assert.NotNil(t, s.Image())
}

func TestImageSurfaceNotBegun(t *testing.T) {
	s := NewImageSurface(nil, 1)
	s.DrawPath(mutpoint.BuildPath().HLine(0, 1, 0).Build(), mutpoint.PathStyle{Fill: "#000"}, mutpoint.Identity())
	s.DrawText(mutpoint.Text{Value: "x"}, mutpoint.Identity())
	assert.ErrorIs(t, s.End(), ErrNotBegun)
	assert.ErrorIs(t, s.Begin(mutpoint.Document{Width: -1, Height: 1}), ErrInvalidSize)
}
