package api

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
)

// File is one part of a multipart upload.
type File struct {
	// FieldName defaults to "file".
	FieldName string
	FileName  string
	Content   io.Reader
}

// Upload streams file and fields to path as multipart/form-data and decodes
// the response into out. The request carries the multipart content type
// instead of application/json.
func (c *Client) Upload(ctx context.Context, path string, file File, fields map[string]string, out any) error {
	if file.FieldName == "" {
		file.FieldName = "file"
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	req, err := c.NewRequest(ctx, http.MethodPost, path, nil, pr, mw.FormDataContentType())
	if err != nil {
		pr.Close()
		return requestError(err)
	}

	go func() {
		pw.CloseWithError(writeMultipart(mw, file, fields))
	}()

	err = c.send(req, out)
	// unblock the writer if the request ended before the body was consumed
	pr.Close()
	return err
}

func writeMultipart(mw *multipart.Writer, file File, fields map[string]string) error {
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return err
		}
	}

	part, err := mw.CreateFormFile(file.FieldName, file.FileName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return err
	}

	return mw.Close()
}
