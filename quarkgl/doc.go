// Package quarkgl is the software 3D pipeline used by the orrery.
//
// Everything is rasterized on the CPU into a caller-provided Target; no GPU is involved.
//
// Pipeline (fixed):
//
//	Vertex transform → Primitive assembly → Rasterization → Surface shading → Depth-tested write.
//
// The transform stage maps local vertices through model/view/projection/viewport matrices
// (github.com/go-gl/mathgl/mgl32, column-major). The rasterizer scans the triangle's integer
// bounding box with edge functions and interpolates color, world normal, world position and
// depth barycentrically. Surface shaders are pure functions of screen position and time.
//
// A Renderer keeps scratch buffers between draws and avoids allocations in the hot path once
// it has warmed up.
package quarkgl
