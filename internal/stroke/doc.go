// Package stroke expands a flattened polyline into a set of fillable
// outline polygons: one quad per segment, plus a join polygon at every
// interior vertex and, for open polylines, a cap polygon at each end.
//
// # Line Caps
//
//   - LineCapButt: no additional geometry, the segment quads already end
//     flush with the polyline's endpoints
//   - LineCapRound: a half-disk fan of radius width/2
//   - LineCapSquare: a rectangle extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - LineJoinMiter: the two offset edges are intersected to a point;
//     falls back to a bevel join if the miter tip would exceed
//     width/2 * max(1, miterLimit) from the joint
//   - LineJoinRound: a fan of triangles spanning the turn, at most
//     pi/12 radians per step
//   - LineJoinBevel: a single triangle across the corner
//
// Joints where consecutive segment directions are parallel (the cross
// product of their directions is within epsilon of zero) emit no join
// geometry since the adjoining quads already cover the corner.
package stroke
