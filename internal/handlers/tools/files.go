// internal/handlers/tools/files.go
// Tool file: encode file lokal jadi base64+MIME, dan tempel file URL
// sebagai block (jenis block ditebak dari ekstensi URL).

package tools

import (
	"net/http"
	"strings"

	"github.com/L1xux/notion-agent/pkg/blocks"
	"github.com/L1xux/notion-agent/pkg/fileenc"
)

type encodeFileReq struct {
	FilePath string `json:"file_path"`
}

func EncodeFileHandler(w http.ResponseWriter, r *http.Request) {
	var in encodeFileReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if strings.TrimSpace(in.FilePath) == "" {
		writeFail(w, "file_path is required")
		return
	}

	enc, err := fileenc.Encode(in.FilePath)
	if err != nil {
		writeFailErr(w, "encode_file", err)
		return
	}
	writeOK(w, enc)
}

type appendFileBlockReq struct {
	PageID  string `json:"page_id"`
	FileURL string `json:"file_url"`
	Caption string `json:"caption,omitempty"`
}

// AppendFileBlockHandler memilih image/video/embed berdasarkan ekstensi URL.
func AppendFileBlockHandler(w http.ResponseWriter, r *http.Request) {
	var in appendFileBlockReq
	if err := decodeParams(r, &in); err != nil {
		writeFail(w, "invalid params: "+err.Error())
		return
	}
	if !requireURL(w, "file_url", in.FileURL) {
		return
	}

	url := strings.TrimSpace(in.FileURL)
	switch fileenc.KindOfURL(url) {
	case "image":
		appendToPage(w, r, "append_file_block", in.PageID, blocks.Image(url, in.Caption))
	case "video":
		appendToPage(w, r, "append_file_block", in.PageID, blocks.Video(url, in.Caption))
	default:
		appendToPage(w, r, "append_file_block", in.PageID, blocks.Embed(url, in.Caption))
	}
}
