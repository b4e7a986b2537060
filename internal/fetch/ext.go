package fetch

import (
	"mime"
	"strings"
)

var extByType = map[string]string{
	"image/png":                ".png",
	"image/jpeg":               ".jpg",
	"image/jpg":                ".jpg",
	"image/gif":                ".gif",
	"image/webp":               ".webp",
	"image/svg+xml":            ".svg",
	"image/x-icon":             ".ico",
	"image/vnd.microsoft.icon": ".ico",
	"image/avif":               ".avif",
}

// ExtensionFor maps a Content-Type header value to a file extension.
// Parameters such as charset are ignored. Unknown or missing types map to
// DefaultExt.
func ExtensionFor(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return DefaultExt
	}
	if ext, ok := extByType[strings.ToLower(mediaType)]; ok {
		return ext
	}
	return DefaultExt
}
