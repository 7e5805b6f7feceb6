// Package cuboid builds a rectangular prism out of six transformed panels.
//
// The container is the box's center plane along the depth axis. Front and
// back are pushed half the depth away from it in opposite directions; left,
// right, top and bottom are exactly as thick as the depth and hinge on the
// container edge they are flush with, so they meet the front and back planes.
// The result only looks three-dimensional when some ancestor of the container
// declares a perspective.
package cuboid
