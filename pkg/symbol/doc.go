// Package symbol defines the authored data model of a sigil symbol and the
// attachment point lookup used to compose symbols with each other.
//
// # Overview
//
// A [Definition] is a named tree of [Element] values (SVG-like groups and
// paths) with a bounding box, optional attachment point [Specs], and opaque
// [Metadata]. Definitions are produced by an authoring step, loaded through
// package io or a registry, and treated as immutable afterwards.
//
// # Placeholder Colors
//
// Authored elements may use [StrokeReplacementColor] or [FillReplacementColor]
// instead of a literal color. The renderer in package scene swaps them for the
// caller's colors, so a single symbol can be drawn in any palette.
//
// # Attachment Points
//
// Specs map an [AttachmentPointType] to an ordered list of [PointWithNormal].
// [GetAttachmentPoint] returns a point or an [*AttachmentPointError];
// [SafeGetAttachmentPoint] logs that error and returns nil instead:
//
//	tip, err := symbol.GetAttachmentPoint(def, "tip", 0)
//	if err != nil {
//	    return err
//	}
//
//	if p, err := symbol.SafeGetAttachmentPoint(def, symbol.Tail, 1); err != nil {
//	    return err // only unexpected failures reach here
//	} else if p != nil {
//	    place(child, *p)
//	}
package symbol
