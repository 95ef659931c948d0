package draft

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// StepAnnotation is one entry of the steps text part. WithFile tells the
// receiver that this step's image follows in the step_photos file list: the
// Kth true flag pairs with the Kth file part. Files are never indexed
// explicitly, so the encoder must emit both lists in the same pass.
type StepAnnotation struct {
	Text     string `json:"text"`
	WithFile bool   `json:"with_file"`
}

// Submission is an encoded multipart request body ready for dispatch.
type Submission struct {
	Body        []byte
	ContentType string
}

// Encode serializes the draft into the multipart shape the recipe service
// consumes:
//
//   - text parts: title, description (omitted when empty), topic
//   - ingredients: one JSON text part, rows with empty names dropped, order
//     preserved
//   - steps: one JSON text part of StepAnnotation, steps with empty trimmed
//     text dropped, order preserved
//   - step_photos: repeated file part, one entry per retained step that
//     carries a new upload, in step order
//   - photo: single optional file part for a newly chosen cover
//
// Steps whose image slot holds a remote URL contribute with_file=false and
// no file part; the server keeps their existing image.
func (d *Draft) Encode() (*Submission, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("title", d.Title); err != nil {
		return nil, fmt.Errorf("draft: encode title: %w", err)
	}
	if d.Description != "" {
		if err := mw.WriteField("description", d.Description); err != nil {
			return nil, fmt.Errorf("draft: encode description: %w", err)
		}
	}
	if err := mw.WriteField("topic", string(d.Topic)); err != nil {
		return nil, fmt.Errorf("draft: encode topic: %w", err)
	}

	ingredients := make([]Ingredient, 0, len(d.Ingredients))
	for _, row := range d.Ingredients {
		if strings.TrimSpace(row.Name) == "" {
			continue
		}
		ingredients = append(ingredients, row)
	}
	if err := writeJSONField(mw, "ingredients", ingredients); err != nil {
		return nil, err
	}

	// One pass builds the annotations and collects the files so the
	// positional pairing cannot drift.
	annotations := make([]StepAnnotation, 0, len(d.Steps))
	var files []string
	for _, s := range d.Steps {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		withFile := s.Image.NewUpload()
		annotations = append(annotations, StepAnnotation{Text: s.Text, WithFile: withFile})
		if withFile {
			files = append(files, s.Image.File)
		}
	}
	if err := writeJSONField(mw, "steps", annotations); err != nil {
		return nil, err
	}
	for _, path := range files {
		if err := writeFilePart(mw, "step_photos", path); err != nil {
			return nil, err
		}
	}

	if d.Cover.NewUpload() {
		if err := writeFilePart(mw, "photo", d.Cover.File); err != nil {
			return nil, err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("draft: close multipart: %w", err)
	}
	return &Submission{Body: buf.Bytes(), ContentType: mw.FormDataContentType()}, nil
}

func writeJSONField(mw *multipart.Writer, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("draft: marshal %s: %w", name, err)
	}
	if err := mw.WriteField(name, string(data)); err != nil {
		return fmt.Errorf("draft: encode %s: %w", name, err)
	}
	return nil
}

func writeFilePart(mw *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("draft: open %s: %w", path, err)
	}
	defer f.Close()

	part, err := mw.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("draft: create %s part: %w", field, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("draft: copy %s: %w", path, err)
	}
	return nil
}
