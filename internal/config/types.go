package config

// Resample names accepted by the `resample` key.
const (
	ResampleCatmullRom     = "catmull-rom"
	ResampleBilinear       = "bilinear"
	ResampleApproxBilinear = "approx-bilinear"
	ResampleNearest        = "nearest"
)

// DefaultFolderType is written as FolderType= in the [ViewState] section.
const DefaultFolderType = "Pictures"

// Config is the structure loaded from config.yaml.
// - FolderType: value of FolderType= in desktop.ini (e.g., Pictures, Documents, Music).
// - Resample: interpolator used when scaling the cropped image to icon sizes.
// - Debug: enables debug logging without passing --debug.
type Config struct {
	FolderType string `yaml:"folder_type"`
	Resample   string `yaml:"resample"`
	Debug      bool   `yaml:"debug"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		FolderType: DefaultFolderType,
		Resample:   ResampleCatmullRom,
	}
}
