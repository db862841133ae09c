package iconbuilder

import "image"

// CropRect returns the largest square centered inside bounds.
//
// A landscape image keeps its full height and is trimmed equally left and
// right; a portrait (or already square) image keeps its full width and is
// trimmed top and bottom. Odd leftovers go to the right/bottom edge.
func CropRect(bounds image.Rectangle) image.Rectangle {
	w, h := bounds.Dx(), bounds.Dy()
	if w > h {
		x := bounds.Min.X + (w-h)/2
		return image.Rect(x, bounds.Min.Y, x+h, bounds.Max.Y)
	}
	y := bounds.Min.Y + (h-w)/2
	return image.Rect(bounds.Min.X, y, bounds.Max.X, y+w)
}
