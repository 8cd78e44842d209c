// Package viz draws planeview scenes in the terminal.
//
// Scenes are rasterised by a [Renderer] onto a braille [Canvas] (2x4 dots
// per character cell, one colour per cell) through an orbiting perspective
// [Camera]. Two surfaces present the canvas:
//
//   - [LiveModel]: a Bubble Tea program with a stats panel and a phi chart
//   - [Plain]: full-screen ANSI redraws written to any io.Writer
//
// # Key Bindings (live view)
//
//	←/→  - Orbit around the Z axis
//	↑/↓  - Tilt
//	+/-  - Zoom
//	T    - Cycle themes
//	?    - Toggle help
//	Q    - Quit
package viz
