package draft

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/cookbook/internal/models"
)

func validDraft(t *testing.T) *Draft {
	t.Helper()
	d := New()
	d.Title = "Omelette"
	_ = d.SetIngredientName(0, "eggs")
	_ = d.SetStepText(0, "Whisk and fry.")
	return d
}

func TestValidateAccepts(t *testing.T) {
	if err := validDraft(t).Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateTitle(t *testing.T) {
	d := validDraft(t)
	d.Title = ""
	if err := d.Validate(); err == nil {
		t.Error("expected error for empty title")
	}

	d.Title = strings.Repeat("x", 151)
	if err := d.Validate(); err == nil {
		t.Error("expected error for overlong title")
	}
}

func TestValidateTopic(t *testing.T) {
	d := validDraft(t)
	d.Topic = models.Topic("brunch")
	if err := d.Validate(); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestValidateAcceptsEveryTopic(t *testing.T) {
	for _, topic := range models.Topics() {
		d := validDraft(t)
		d.Topic = topic
		if err := d.Validate(); err != nil {
			t.Errorf("topic %q rejected: %v", topic, err)
		}
	}
}

func TestValidateRequiresFilledIngredient(t *testing.T) {
	d := validDraft(t)
	_ = d.SetIngredientName(0, "   ")
	_ = d.SetIngredientQuantity(0, "3")
	if err := d.Validate(); err == nil {
		t.Error("whitespace-only ingredient names must not count")
	}
}

func TestValidateRequiresFilledStep(t *testing.T) {
	d := validDraft(t)
	_ = d.SetStepText(0, "  ")
	if err := d.Validate(); err == nil {
		t.Error("whitespace-only step text must not count")
	}
}

func TestValidateImageExtension(t *testing.T) {
	d := validDraft(t)
	_ = d.AttachStepImage(0, "notes.txt")
	err := d.Validate()
	if err == nil {
		t.Fatal("expected error for non-image extension")
	}
	if !strings.Contains(err.Error(), "step 1") {
		t.Errorf("error %q should name the offending step", err)
	}
}

func TestValidateImageMustExist(t *testing.T) {
	d := validDraft(t)
	d.AttachCover(filepath.Join(t.TempDir(), "missing.png"))
	if err := d.Validate(); err == nil {
		t.Error("expected error for missing cover file")
	}
}

func TestValidateRemoteImagesPass(t *testing.T) {
	d := validDraft(t)
	d.Cover = Remote("/media/cover.jpg")
	d.Steps[0].Image = Remote("/media/step.jpg")
	if err := d.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
