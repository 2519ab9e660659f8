// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the output backends for mutpoint charts.
//
// Every backend implements mutpoint.Surface, so the same chart renders to
// any of them:
//
//   - SVGSurface: SVG markup, written on End
//   - ImageSurface: PNG raster drawn with gogpu/gg
//   - TermSurface: braille cells for terminals, optionally colored with lipgloss
//
// # Registry
//
// Backends register under a name and a priority. The built-ins are "svg"
// (100), "png" (50) and "term" (10):
//
//	s, err := surface.NewSurfaceByName("png", surface.Options{Writer: f})
//	if err != nil {
//	    return err
//	}
//	err = chart.Render(s, line, xAxis, yAxis)
//
// Third-party backends call Register from an init function.
//
// # Writers
//
// Options.Writer is optional. Each surface also keeps its last finished
// document in memory: SVGSurface.Bytes, ImageSurface.Image and
// TermSurface.Lines.
//
// Surfaces are not safe for concurrent use; create one per render pass or
// reuse one sequentially.
package surface
