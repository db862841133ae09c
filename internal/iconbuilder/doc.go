// Package iconbuilder turns an arbitrary raster image into a multi-resolution
// Windows icon file.
//
// The source is center-cropped to a square on its shorter side, scaled to each
// of the standard icon sizes and written next to the source image:
//
//	b := iconbuilder.New(draw.CatmullRom)
//	icon := b.Build(`C:\Photos\Holiday\beach.jpg`)
//	// icon == `C:\Photos\Holiday\beach.ico`, or `beach (1).ico` if that exists
//
// Build never returns an error. Any failure is logged and reported as an empty
// path, which callers treat as "nothing to do".
package iconbuilder
