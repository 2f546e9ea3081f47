package canvas

import (
	"bytes"
	"fmt"
	"mime/multipart"

	"github.com/edukit/go-canvas/pkg/formenc"
)

// multipartBody renders fields into a multipart/form-data payload. Field
// order is preserved and names may repeat, which the append form
// ("path[]" once per element) relies on.
func multipartBody(fields []formenc.Field) (*body, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := w.WriteField(f.Name, f.Contents); err != nil {
			return nil, fmt.Errorf("failed to write form field %q: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form body: %w", err)
	}

	return &body{contentType: w.FormDataContentType(), data: buf.Bytes()}, nil
}
