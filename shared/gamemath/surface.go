package gamemath

import "github.com/go-gl/mathgl/mgl64"

// SnapAboveSurface returns pos moved vertically so a sphere of radius rests
// on a surface whose top is at surfaceY.
func SnapAboveSurface(pos mgl64.Vec3, surfaceY, radius float64) mgl64.Vec3 {
	return mgl64.Vec3{pos.X(), surfaceY + radius, pos.Z()}
}

// CircleOverlapsRect reports whether a circle at (cx, cy) touches the
// axis-aligned rectangle [minX,maxX]x[minY,maxY].
func CircleOverlapsRect(cx, cy, r, minX, minY, maxX, maxY float64) bool {
	nx := clamp(cx, minX, maxX)
	ny := clamp(cy, minY, maxY)
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= r*r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
