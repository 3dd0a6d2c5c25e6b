package handler

import (
	"bytes"
	"mime/multipart"
)

// newMultipart writes a multipart form with the given text fields and
// returns the content type for the request header.
func newMultipart(buf *bytes.Buffer, fields map[string]string) string {
	writer := multipart.NewWriter(buf)
	for key, value := range fields {
		writer.WriteField(key, value)
	}
	writer.Close()
	return writer.FormDataContentType()
}

// newMultipartWithFile additionally attaches a file part.
func newMultipartWithFile(buf *bytes.Buffer, fields map[string]string, fileField, filename string, content []byte) string {
	writer := multipart.NewWriter(buf)
	for key, value := range fields {
		writer.WriteField(key, value)
	}
	part, _ := writer.CreateFormFile(fileField, filename)
	part.Write(content)
	writer.Close()
	return writer.FormDataContentType()
}
