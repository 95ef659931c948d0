package draft

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/starford/cookbook/internal/models"
)

func fetchedRecipe() *models.Recipe {
	return &models.Recipe{
		ID:          42,
		Title:       "Ramen",
		Description: "From scratch.",
		Topic:       models.TopicDinner,
		PhotoPath:   "/media/ramen.jpg",
		CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Ingredients: []models.Ingredient{
			{Name: "noodles", Quantity: "200g"},
			{Name: "broth", Quantity: "1l"},
		},
		Steps: []models.Step{
			{OrderIndex: 3, Text: "Assemble."},
			{OrderIndex: 1, Text: "Make broth.", PhotoPath: "/media/broth.jpg"},
			{OrderIndex: 2, Text: "Cook noodles."},
		},
	}
}

func TestFromRecipe(t *testing.T) {
	d := FromRecipe(fetchedRecipe())

	if d.ID != 42 || !d.Editing() {
		t.Fatalf("ID = %d, Editing = %v", d.ID, d.Editing())
	}
	if d.Title != "Ramen" || d.Topic != models.TopicDinner {
		t.Errorf("scalars = %q %q", d.Title, d.Topic)
	}
	if d.Cover.URL != "/media/ramen.jpg" || d.Cover.NewUpload() {
		t.Errorf("cover = %+v, want remote", d.Cover)
	}

	wantOrder := []string{"Make broth.", "Cook noodles.", "Assemble."}
	if len(d.Steps) != len(wantOrder) {
		t.Fatalf("steps = %d, want %d", len(d.Steps), len(wantOrder))
	}
	for i, want := range wantOrder {
		if d.Steps[i].Text != want {
			t.Errorf("step %d = %q, want %q", i, d.Steps[i].Text, want)
		}
	}
	if d.Steps[0].Image.URL != "/media/broth.jpg" {
		t.Errorf("step 0 image = %+v", d.Steps[0].Image)
	}
	if !d.Steps[1].Image.None() {
		t.Errorf("step 1 image = %+v, want empty", d.Steps[1].Image)
	}
}

func TestFromRecipeSeedsEmptyLists(t *testing.T) {
	d := FromRecipe(&models.Recipe{ID: 7, Title: "Bare", Topic: models.TopicLunch})
	if len(d.Ingredients) != 1 || len(d.Steps) != 1 {
		t.Errorf("rows = %d/%d, want 1/1", len(d.Ingredients), len(d.Steps))
	}
}

// Re-encoding an untouched edit draft must not re-upload anything: every
// annotation says with_file=false and no file parts appear.
func TestUntouchedEditRoundTrip(t *testing.T) {
	d := FromRecipe(fetchedRecipe())
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	sub, err := d.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	parts := decodeParts(t, sub)

	for _, p := range parts {
		if p.filename != "" {
			t.Errorf("unexpected file part %s", p.field)
		}
	}

	var steps []StepAnnotation
	if err := json.Unmarshal([]byte(fieldValue(t, parts, "steps")), &steps); err != nil {
		t.Fatalf("steps json: %v", err)
	}
	for i, s := range steps {
		if s.WithFile {
			t.Errorf("step %d with_file = true, want false", i)
		}
	}

	var ingredients []Ingredient
	if err := json.Unmarshal([]byte(fieldValue(t, parts, "ingredients")), &ingredients); err != nil {
		t.Fatalf("ingredients json: %v", err)
	}
	if len(ingredients) != 2 || ingredients[0].Name != "noodles" {
		t.Errorf("ingredients = %+v", ingredients)
	}
}

// Replacing one step image mid-edit uploads exactly that file while the
// others stay remote.
func TestEditReplaceOneImage(t *testing.T) {
	repl := testImage(t, "broth-v2.jpg", "new-broth")

	d := FromRecipe(fetchedRecipe())
	if err := d.AttachStepImage(0, repl); err != nil {
		t.Fatalf("AttachStepImage: %v", err)
	}

	sub, err := d.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	parts := decodeParts(t, sub)

	var steps []StepAnnotation
	if err := json.Unmarshal([]byte(fieldValue(t, parts, "steps")), &steps); err != nil {
		t.Fatalf("steps json: %v", err)
	}
	if !steps[0].WithFile || steps[1].WithFile || steps[2].WithFile {
		t.Errorf("with_file flags = %v %v %v", steps[0].WithFile, steps[1].WithFile, steps[2].WithFile)
	}

	photos := fileParts(parts, "step_photos")
	if len(photos) != 1 || photos[0].value != "new-broth" {
		t.Errorf("photos = %+v", photos)
	}
}
