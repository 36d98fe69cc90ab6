package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strconv"
)

// Attachment is a binary file part sent with a multipart create or update.
type Attachment struct {
	Field   string
	Name    string
	Content []byte
}

// Form accumulates multipart fields using the backend's encoding rules:
// booleans as "0"/"1", structured values as JSON strings.
type Form struct {
	fields [][2]string
	file   *Attachment
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) Set(name, value string) *Form {
	f.fields = append(f.fields, [2]string{name, value})
	return f
}

// SetOptional skips empty values so partial updates only touch the fields
// the caller actually provided.
func (f *Form) SetOptional(name, value string) *Form {
	if value == "" {
		return f
	}
	return f.Set(name, value)
}

func (f *Form) SetBool(name string, v bool) *Form {
	if v {
		return f.Set(name, "1")
	}
	return f.Set(name, "0")
}

func (f *Form) SetInt(name string, v int) *Form {
	return f.Set(name, strconv.Itoa(v))
}

// SetJSON serializes a structured value (e.g. a bio) as a JSON string field.
func (f *Form) SetJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s field: %w", name, err)
	}
	f.Set(name, string(data))
	return nil
}

func (f *Form) SetFile(a *Attachment) *Form {
	f.file = a
	return f
}

func (f *Form) encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, field := range f.fields {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return nil, "", err
		}
	}
	if f.file != nil {
		part, err := w.CreateFormFile(f.file.Field, f.file.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.file.Content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}
