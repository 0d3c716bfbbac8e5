// Package lsys generates 2D polyline paths from Lindenmayer systems.
//
// # Overview
//
// lsys is a small generative-geometry engine in two stages: a
// deterministic, context-free L-system string rewriter, and a turtle
// interpreter that walks the rewritten symbol string into an ordered
// sequence of points. The output is a plain polyline; stroking,
// rasterization and export are left to whatever consumes the path.
//
// # Quick Start
//
//	import "github.com/gogpu/lsys"
//
//	// Trace a catalog preset.
//	path, err := lsys.Trace(context.Background(), "dragon")
//
//	// Or run the pipeline by hand.
//	s, err := lsys.Expand(ctx, "FX", lsys.Rules{'X': "X+YF+", 'Y': "-FX-Y"}, 10, 0)
//	prog := lsys.Compile(s, 90, 1, 0)
//	path := lsys.Run(prog)
//
// # Coordinate System
//
// The turtle starts at the origin heading along +X. Angles are in
// degrees and increase counter-clockwise. The Y axis is not flipped;
// consumers targeting screen coordinates can apply a Matrix.
//
// # Symbols
//
// The drawing alphabet is fixed: A, B and F move the turtle forward,
// + turns left, - turns right, and every other symbol is a silent
// non-terminal. See Compile for details.
package lsys
