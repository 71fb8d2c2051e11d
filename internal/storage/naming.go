package storage

import (
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Object key prefixes inside the bucket
const (
	PrefixPhotos      = "fotos"
	PrefixAttachments = "adjuntos"
	PrefixQuotes      = "presupuestos"
)

// ObjectKey builds a collision-resistant key: prefix/<slug of base>-<uuid><ext>.
// The extension is lower-cased and kept only when it looks like one.
func ObjectKey(prefix, base, ext string) string {
	name := slug.Make(strings.TrimSuffix(base, path.Ext(base)))
	if len(name) > 60 {
		name = strings.Trim(name[:60], "-")
	}
	id := uuid.NewString()
	if name != "" {
		id = name + "-" + id
	}
	return path.Join(prefix, id+cleanExt(ext))
}

func cleanExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if len(ext) > 6 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
