// Package geometry holds the planar primitives shared by every stage of the
// point matching pipeline.
//
// 🚀 What lives here?
//
//	• Point              – an immutable 2D coordinate (gonum r2.Vec).
//	• Distance           – true Euclidean distance between two points.
//	• DistanceMagnitude  – squared distance; cheaper and monotone in Distance.
//	• Instance           – the source set (size a) and target set (size b).
//	• SourceID/TargetID  – typed per-side indices used inside the engine.
//	• Vertex             – the flat index in [0, a+b) used at the I/O boundary.
//
// Vertex layout:
//
//	 0 ........ a-1 | a ........ a+b-1
//	    sources     |     targets
//
// Conversions between the flat and the typed index spaces happen only through
// Instance (SourceVertex, TargetVertex, Side), so cross-side mixups surface as
// compile errors rather than silent off-by-a bugs.
package geometry
