package draft

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/cookbook/internal/models"
)

// imageExts are the upload types the service accepts.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Validate checks the draft against the submission rules. A failing draft
// must not be encoded or dispatched; no request is sent for it.
func (d *Draft) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Title, validation.Required, validation.Length(1, 150)),
		validation.Field(&d.Topic, validation.By(validTopic)),
		validation.Field(&d.Ingredients, validation.By(hasIngredient)),
		validation.Field(&d.Steps, validation.By(hasStep)),
		validation.Field(&d.Cover, validation.By(validImage)),
	)
}

func validTopic(v any) error {
	t := v.(models.Topic)
	if !t.Valid() {
		return fmt.Errorf("must be one of %v", models.Topics())
	}
	return nil
}

// hasIngredient requires at least one row with a non-empty name. Rows with
// empty names are dropped by the encoder, so one filled row is the real
// minimum.
func hasIngredient(v any) error {
	for _, row := range v.([]Ingredient) {
		if strings.TrimSpace(row.Name) != "" {
			return nil
		}
	}
	return fmt.Errorf("at least one ingredient is required")
}

// hasStep requires at least one step with non-empty text, and checks every
// attached image along the way.
func hasStep(v any) error {
	steps := v.([]Step)
	filled := false
	for i, s := range steps {
		if strings.TrimSpace(s.Text) != "" {
			filled = true
		}
		if err := validImage(s.Image); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	if !filled {
		return fmt.Errorf("at least one step is required")
	}
	return nil
}

// validImage checks a new-upload slot: the file must exist on disk and carry
// an accepted image extension. Empty and remote slots pass untouched.
func validImage(v any) error {
	ref := v.(ImageRef)
	if !ref.NewUpload() {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(ref.File))
	if !imageExts[ext] {
		return fmt.Errorf("unsupported image type %q", ext)
	}
	if _, err := os.Stat(ref.File); err != nil {
		return fmt.Errorf("image file %s: %w", ref.File, err)
	}
	return nil
}
