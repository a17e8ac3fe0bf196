package gridmap

import (
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"gopkg.in/yaml.v3"

	"go.viam.com/nav/naverrors"
)

// MapManifest pairs a grayscale raster path with the geometry needed to
// place it in the world frame: {origin: [x, y, theta], resolution}, the ROS
// map_server convention.
type MapManifest struct {
	ImagePath   string
	OriginX     float64
	OriginY     float64
	OriginTheta float64
	Resolution  float64
}

// LoadPGM loads the grayscale raster named by manifest.ImagePath and builds
// a GridMap[uint8] with each pixel becoming Value(uint8), row-major, origin
// at the manifest's bottom-left world position. Despite the name it accepts
// any format imaging.Open recognises, not only PGM; the name matches the
// map files this loader was written against.
func LoadPGM(manifest MapManifest) (*GridMap[uint8], error) {
	img, err := imaging.Open(manifest.ImagePath)
	if err != nil {
		return nil, naverrors.IO(err)
	}
	return mapFromImage(img, manifest)
}

func mapFromImage(img image.Image, manifest MapManifest) (*GridMap[uint8], error) {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())
	if width == 0 || height == 0 {
		return nil, naverrors.Parse("map image has zero extent")
	}

	min := NewPosition(manifest.OriginX, manifest.OriginY)
	max := NewPosition(
		manifest.OriginX+float64(width)*manifest.Resolution,
		manifest.OriginY+float64(height)*manifest.Resolution,
	)
	m := New[uint8](min, max, manifest.Resolution)

	for y := uint(0); y < height; y++ {
		// Raster row 0 is the top of the image; grid row 0 is the world-frame
		// minimum Y, so flip vertically on load.
		srcY := int(height - 1 - y)
		for x := uint(0); x < width; x++ {
			r, _, _, _ := gray.At(bounds.Min.X+int(x), bounds.Min.Y+srcY).RGBA()
			v := uint8(r >> 8)
			m.SetValue(Grid{X: x, Y: y}, v)
		}
	}
	return m, nil
}

// rosYAML mirrors the ROS map_server yaml manifest shape:
//
//	image: floor.png
//	resolution: 0.05
//	origin: [0.0, 0.0, 0.0]
type rosYAML struct {
	Image      string     `yaml:"image"`
	Resolution float64    `yaml:"resolution"`
	Origin     [3]float64 `yaml:"origin"`
}

// LoadROSYAML reads a ROS map_server-style yaml manifest from disk and
// resolves its image path relative to the manifest's own directory,
// returning a MapManifest ready for LoadPGM.
func LoadROSYAML(path string) (MapManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MapManifest{}, naverrors.IO(err)
	}
	var raw rosYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return MapManifest{}, naverrors.Parsef("manifest %s: %v", path, err)
	}
	imagePath := raw.Image
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(filepath.Dir(path), imagePath)
	}
	return MapManifest{
		ImagePath:   imagePath,
		Resolution:  raw.Resolution,
		OriginX:     raw.Origin[0],
		OriginY:     raw.Origin[1],
		OriginTheta: raw.Origin[2],
	}, nil
}
