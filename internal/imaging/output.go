package imaging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// TransparentName derives the output file name for a color-keyed image:
// "logo.jpg" becomes "transparent_logo.png". Directory components are
// dropped. PNG is always used because it preserves alpha.
func TransparentName(name string) string {
	base := filepath.Base(name)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return "transparent_" + base + ".png"
}

// EncodePNG encodes r as PNG.
func EncodePNG(r *Raster) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, r.img, imaging.PNG); err != nil {
		return nil, &InternalError{Op: "encode png", Err: err}
	}
	return buf.Bytes(), nil
}

// SaveTransparent writes r as PNG into dir under TransparentName(name) and
// returns the full path written. dir is created if it does not exist.
func SaveTransparent(r *Raster, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &InternalError{Op: "create output dir", Err: err}
	}
	path := filepath.Join(dir, TransparentName(name))
	if err := imaging.Save(r.img, path); err != nil {
		return "", &InternalError{Op: "save image", Err: err}
	}
	return path, nil
}

// SaveUpload writes raw image bytes into dir under the base name of name and
// returns the full path written. The bytes are stored unchanged, so the file
// keeps its original encoding.
func SaveUpload(data []byte, dir, name string) (string, error) {
	base := filepath.Base(name)
	if name == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return "", inputErrorf("invalid file name %q", name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &InternalError{Op: "create upload dir", Err: err}
	}
	path := filepath.Join(dir, base)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &InternalError{Op: "write upload", Err: err}
	}
	return path, nil
}
