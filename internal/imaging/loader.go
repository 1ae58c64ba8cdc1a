package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"io/fs"
	"os"
	"sync"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// cachedImage is a decoded raster plus what we learned about the source
// encoding before it was converted to RGBA.
type cachedImage struct {
	raster     *Raster
	format     string
	hasAlpha   bool
	colorDepth string
}

// ImageCache provides thread-safe caching of decoded rasters keyed by path.
//
// Once an image is loaded, subsequent Load() calls for the same path return
// the cached raster without disk I/O. Rasters are immutable, so a cached
// raster can be shared between concurrent tool calls; every operation on it
// allocates its own output and intermediate buffers.
//
// Cached rasters remain in memory until removed via Evict() or Clear().
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*cachedImage
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*cachedImage),
	}
}

// Load retrieves a raster from the cache or decodes it from disk.
//
// Supported formats are PNG, JPEG, GIF (first frame), BMP, TIFF and WebP.
//
// # Errors
//
//   - *InputError if path is empty or the file does not exist
//   - *DecodeError if the file is not a decodable image
//   - a wrapped I/O error for any other open/read failure
func (c *ImageCache) Load(path string) (*Raster, error) {
	entry, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return entry.raster, nil
}

func (c *ImageCache) load(path string) (*cachedImage, error) {
	if path == "" {
		return nil, inputErrorf("no image selected")
	}

	c.mu.RLock()
	if entry, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return entry, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, inputErrorf("image not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	entry, err := decode(f)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = entry
	c.mu.Unlock()

	return entry, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*cachedImage)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
// If the path is not cached, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// DecodeRaster decodes raw image bytes into a Raster and reports the
// detected format name ("png", "jpeg", ...).
func DecodeRaster(data []byte) (*Raster, string, error) {
	if len(data) == 0 {
		return nil, "", inputErrorf("no image data")
	}
	entry, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	return entry.raster, entry.format, nil
}

func decode(r io.Reader) (*cachedImage, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	raster, err := NewRaster(img)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	entry := &cachedImage{raster: raster, format: format, colorDepth: "8-bit"}
	switch t := img.(type) {
	case *image.RGBA, *image.NRGBA:
		entry.hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		entry.hasAlpha = true
		entry.colorDepth = "16-bit"
	case *image.Gray16:
		entry.colorDepth = "16-bit"
	case *image.Paletted:
		entry.hasAlpha = palettedHasAlpha(t)
	}
	return entry, nil
}

func palettedHasAlpha(p *image.Paletted) bool {
	for _, c := range p.Palette {
		if _, _, _, a := c.RGBA(); a != 0xffff {
			return true
		}
	}
	return false
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoder that recognized the file: "png", "jpeg", "gif",
	// "bmp", "tiff" or "webp".
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the source encoding carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// HasTransparency indicates whether at least one pixel is fully
	// transparent, i.e. whether image_visual_center will accept the image.
	HasTransparency bool `json:"has_transparency"`

	// TransparentPixels is the number of pixels with alpha == 0.
	TransparentPixels int `json:"transparent_pixels"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and returns its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	entry, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	transparent := CountTransparent(entry.raster)
	return &ImageInfo{
		Width:             entry.raster.Width(),
		Height:            entry.raster.Height(),
		Format:            entry.format,
		ColorDepth:        entry.colorDepth,
		HasAlpha:          entry.hasAlpha,
		HasTransparency:   transparent > 0,
		TransparentPixels: transparent,
		FileSizeBytes:     stat.Size(),
	}, nil
}
