package httpclient

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
)

// FormData is a multipart payload. Passing it as a body sends it as-is with
// the multipart boundary content type instead of JSON.
type FormData struct {
	parts []formPart
}

type formPart struct {
	name     string
	filename string
	value    string
	reader   io.Reader
}

func NewFormData() *FormData {
	return &FormData{}
}

func (f *FormData) AddField(name, value string) *FormData {
	f.parts = append(f.parts, formPart{name: name, value: value})
	return f
}

// AddFile appends a file part. The part content type is derived from the
// filename extension.
func (f *FormData) AddFile(name, filename string, r io.Reader) *FormData {
	f.parts = append(f.parts, formPart{name: name, filename: filename, reader: r})
	return f
}

// Len returns the number of parts.
func (f *FormData) Len() int {
	return len(f.parts)
}

func (f *FormData) encode() (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for _, part := range f.parts {
		if part.reader == nil {
			if err := writer.WriteField(part.name, part.value); err != nil {
				return nil, "", fmt.Errorf("write form field %s: %w", part.name, err)
			}
			continue
		}

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, part.name, filepath.Base(part.filename)))
		contentType := mime.TypeByExtension(filepath.Ext(part.filename))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		w, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("create form file %s: %w", part.name, err)
		}
		if _, err := io.Copy(w, part.reader); err != nil {
			return nil, "", fmt.Errorf("copy form file %s: %w", part.name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return buf, writer.FormDataContentType(), nil
}
