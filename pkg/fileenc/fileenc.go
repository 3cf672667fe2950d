// pkg/fileenc/fileenc.go
// Encoding file lokal: baca file, hasilkan base64 + content type.
// Tidak ada network call di package ini.

package fileenc

import (
	"encoding/base64"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

type EncodedFile struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	SizeBytes   int    `json:"size_bytes"`
	Base64      string `json:"base64"`
}

// DetectContentType menebak content type dari ekstensi dulu, lalu sniffing isi.
// Fallback terakhir: application/octet-stream.
func DetectContentType(name string, data []byte) string {
	if ext := strings.ToLower(filepath.Ext(name)); ext != "" {
		if ct := mime.TypeByExtension(ext); ct != "" {
			return ct
		}
	}
	if len(data) > 0 {
		return http.DetectContentType(data)
	}
	return "application/octet-stream"
}

// Encode membaca file dari path dan mengembalikan representasi base64-nya.
func Encode(path string) (EncodedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EncodedFile{}, err
	}
	name := filepath.Base(path)
	return EncodedFile{
		Name:        name,
		ContentType: DetectContentType(name, data),
		SizeBytes:   len(data),
		Base64:      base64.StdEncoding.EncodeToString(data),
	}, nil
}

// KindOfURL menebak jenis block media yang cocok untuk sebuah URL eksternal:
// "image", "video", atau "embed" bila tidak dikenali.
func KindOfURL(url string) string {
	clean := url
	if i := strings.IndexAny(clean, "?#"); i >= 0 {
		clean = clean[:i]
	}
	switch strings.ToLower(filepath.Ext(clean)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".bmp":
		return "image"
	case ".mp4", ".mov", ".webm", ".mkv", ".avi":
		return "video"
	default:
		return "embed"
	}
}
