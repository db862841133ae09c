package iconbuilder

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration

	"folder-icon/internal/fsutil"
	"folder-icon/internal/logger"
)

// Sizes are the square edge lengths, in pixels, stored in every generated icon.
var Sizes = []int{256, 128, 96, 64, 48, 32, 24, 16}

// Builder creates .ico files from raster images.
type Builder struct {
	interp draw.Interpolator
}

// New returns a Builder that scales with interp.
// A nil interp selects draw.CatmullRom.
func New(interp draw.Interpolator) *Builder {
	if interp == nil {
		interp = draw.CatmullRom
	}
	return &Builder{interp: interp}
}

// Build converts the image at filename into an icon stored in the same
// directory and returns the icon's path. It returns "" when filename does not
// exist or any step fails; failures are logged with their cause.
func (b *Builder) Build(filename string) string {
	if !fsutil.FileExists(filename) {
		logger.Debug("[DEBUG] Icon source %s does not exist\n", filename)
		return ""
	}

	out, err := b.build(filename)
	if err != nil {
		logger.Error("Could not create icon\n")
		logger.Error("%v\n", err)
		return ""
	}
	logger.Info("[INFO] Created icon %s\n", out)
	return out
}

func (b *Builder) build(filename string) (string, error) {
	label := fsutil.BaseNameWithoutExt(filename)
	dir := fsutil.WithTrailingSeparator(filepath.Dir(filename))

	src, err := imaging.Open(filename)
	if err != nil {
		return "", fmt.Errorf("failed to load %s: %w", filename, err)
	}
	if src.Bounds().Empty() {
		return "", fmt.Errorf("image %s has no pixels", filename)
	}

	crop := imaging.Crop(src, CropRect(src.Bounds()))
	logger.Debug("[DEBUG] Cropped %s from %v to %dx%d\n", filename, src.Bounds().Size(), crop.Bounds().Dx(), crop.Bounds().Dy())

	images := b.Scale(crop)

	name := UniqueIconPath(dir, label)
	if err := save(name, images); err != nil {
		return "", err
	}
	return name, nil
}

// Scale renders square into every entry of Sizes, largest first.
func (b *Builder) Scale(square image.Image) []image.Image {
	images := make([]image.Image, 0, len(Sizes))
	for _, size := range Sizes {
		dst := image.NewNRGBA(image.Rect(0, 0, size, size))
		b.interp.Scale(dst, dst.Bounds(), square, square.Bounds(), draw.Src, nil)
		images = append(images, dst)
	}
	return images
}

// save encodes images as one ICO container at name.
// A partially written file is removed on failure.
func save(name string, images []image.Image) (err error) {
	out, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
		if err != nil {
			_ = os.Remove(name)
		}
	}()

	if err := ico.EncodeAll(out, images); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return nil
}
