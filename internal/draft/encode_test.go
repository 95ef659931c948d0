package draft

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/cookbook/internal/models"
)

// part is one decoded multipart section, in wire order.
type part struct {
	field    string
	filename string
	value    string
}

func decodeParts(t *testing.T, sub *Submission) []part {
	t.Helper()
	_, params, err := mime.ParseMediaType(sub.ContentType)
	if err != nil {
		t.Fatalf("ParseMediaType: %v", err)
	}
	mr := multipart.NewReader(bytes.NewReader(sub.Body), params["boundary"])
	var parts []part
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			return parts
		}
		if err != nil {
			t.Fatalf("NextPart: %v", err)
		}
		data, err := io.ReadAll(p)
		if err != nil {
			t.Fatalf("read part: %v", err)
		}
		parts = append(parts, part{field: p.FormName(), filename: p.FileName(), value: string(data)})
	}
}

func fieldValue(t *testing.T, parts []part, name string) string {
	t.Helper()
	for _, p := range parts {
		if p.field == name && p.filename == "" {
			return p.value
		}
	}
	t.Fatalf("no %s field part", name)
	return ""
}

func fileParts(parts []part, field string) []part {
	var out []part
	for _, p := range parts {
		if p.field == field && p.filename != "" {
			out = append(out, p)
		}
	}
	return out
}

func testImage(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEncodeMinimal(t *testing.T) {
	d := New()
	d.Title = "Tea"
	_ = d.SetIngredientName(0, "tea bag")
	_ = d.SetStepText(0, "Pour hot water over the bag.")

	sub, err := d.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	parts := decodeParts(t, sub)

	if got := fieldValue(t, parts, "title"); got != "Tea" {
		t.Errorf("title = %q", got)
	}
	if got := fieldValue(t, parts, "topic"); got != "breakfast" {
		t.Errorf("topic = %q", got)
	}
	for _, p := range parts {
		if p.field == "description" {
			t.Error("empty description must be omitted")
		}
		if p.filename != "" {
			t.Errorf("unexpected file part %s", p.field)
		}
	}

	var steps []StepAnnotation
	if err := json.Unmarshal([]byte(fieldValue(t, parts, "steps")), &steps); err != nil {
		t.Fatalf("steps json: %v", err)
	}
	if len(steps) != 1 || steps[0].WithFile {
		t.Errorf("steps = %+v", steps)
	}
}

// Two-step tea recipe in the drinks topic: one step without an image, one
// with a newly chosen file. The single file must ride as the only
// step_photos entry, paired with the second annotation.
func TestEncodeTeaWithOneStepPhoto(t *testing.T) {
	imgA := testImage(t, "pour.jpg", "image-a")

	d := New()
	d.Title = "Tea"
	d.Topic = models.TopicDrinks
	_ = d.SetIngredientName(0, "water")
	_ = d.SetIngredientQuantity(0, "200ml")
	_ = d.SetStepText(0, "boil")
	d.AddStep()
	_ = d.SetStepText(1, "pour")
	_ = d.AttachStepImage(1, imgA)

	if err := d.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	sub, err := d.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	parts := decodeParts(t, sub)

	if got := fieldValue(t, parts, "topic"); got != "drinks" {
		t.Errorf("topic = %q, want drinks", got)
	}
	if got := fieldValue(t, parts, "steps"); got != `[{"text":"boil","with_file":false},{"text":"pour","with_file":true}]` {
		t.Errorf("steps = %s", got)
	}

	var ingredients []Ingredient
	if err := json.Unmarshal([]byte(fieldValue(t, parts, "ingredients")), &ingredients); err != nil {
		t.Fatalf("ingredients json: %v", err)
	}
	if len(ingredients) != 1 || ingredients[0].Name != "water" || ingredients[0].Quantity != "200ml" {
		t.Errorf("ingredients = %+v", ingredients)
	}

	photos := fileParts(parts, "step_photos")
	if len(photos) != 1 || photos[0].filename != "pour.jpg" || photos[0].value != "image-a" {
		t.Errorf("step_photos = %+v, want exactly image A", photos)
	}
}

func TestEncodeFieldOrder(t *testing.T) {
	d := New()
	d.Title = "Soup"
	d.Description = "Hearty."
	_ = d.SetIngredientName(0, "water")
	_ = d.SetStepText(0, "Boil.")

	sub, err := d.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	parts := decodeParts(t, sub)

	want := []string{"title", "description", "topic", "ingredients", "steps"}
	if len(parts) != len(want) {
		t.Fatalf("parts = %d, want %d", len(parts), len(want))
	}
	for i, name := range want {
		if parts[i].field != name {
			t.Errorf("part %d = %s, want %s", i, parts[i].field, name)
		}
	}
}

func TestEncodeDropsBlankRows(t *testing.T) {
	d := New()
	d.Title = "Salad"
	d.AddIngredient()
	d.AddIngredient()
	_ = d.SetIngredientName(1, "lettuce")
	_ = d.SetIngredientQuantity(2, "200g") // quantity without a name
	d.AddStep()
	_ = d.SetStepText(1, "Toss everything.")

	sub, err := d.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	parts := decodeParts(t, sub)

	var ingredients []Ingredient
	if err := json.Unmarshal([]byte(fieldValue(t, parts, "ingredients")), &ingredients); err != nil {
		t.Fatalf("ingredients json: %v", err)
	}
	if len(ingredients) != 1 || ingredients[0].Name != "lettuce" {
		t.Errorf("ingredients = %+v", ingredients)
	}

	var steps []StepAnnotation
	if err := json.Unmarshal([]byte(fieldValue(t, parts, "steps")), &steps); err != nil {
		t.Fatalf("steps json: %v", err)
	}
	if len(steps) != 1 || steps[0].Text != "Toss everything." {
		t.Errorf("steps = %+v", steps)
	}
}

// Step photos pair positionally: the Kth with_file=true annotation matches
// the Kth step_photos part. Interspersed image-free steps must not shift the
// pairing.
func TestEncodeStepFilePairing(t *testing.T) {
	first := testImage(t, "first.jpg", "file-one")
	fourth := testImage(t, "fourth.png", "file-two")

	d := New()
	d.Title = "Bread"
	_ = d.SetIngredientName(0, "flour")
	_ = d.SetStepText(0, "Mix.")
	_ = d.AttachStepImage(0, first)
	d.AddStep()
	_ = d.SetStepText(1, "Rest.")
	d.AddStep()
	_ = d.SetStepText(2, "Shape.")
	d.Steps[2].Image = Remote("/media/shape.jpg")
	d.AddStep()
	_ = d.SetStepText(3, "Bake.")
	_ = d.AttachStepImage(3, fourth)

	sub, err := d.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	parts := decodeParts(t, sub)

	var steps []StepAnnotation
	if err := json.Unmarshal([]byte(fieldValue(t, parts, "steps")), &steps); err != nil {
		t.Fatalf("steps json: %v", err)
	}
	wantFlags := []bool{true, false, false, true}
	if len(steps) != len(wantFlags) {
		t.Fatalf("steps = %d, want %d", len(steps), len(wantFlags))
	}
	for i, want := range wantFlags {
		if steps[i].WithFile != want {
			t.Errorf("step %d with_file = %v, want %v", i, steps[i].WithFile, want)
		}
	}

	photos := fileParts(parts, "step_photos")
	if len(photos) != 2 {
		t.Fatalf("step_photos = %d, want 2", len(photos))
	}
	if photos[0].filename != "first.jpg" || photos[0].value != "file-one" {
		t.Errorf("photo 0 = %s %q", photos[0].filename, photos[0].value)
	}
	if photos[1].filename != "fourth.png" || photos[1].value != "file-two" {
		t.Errorf("photo 1 = %s %q", photos[1].filename, photos[1].value)
	}
}

// A dropped blank step must not leave its file behind in the photo list.
func TestEncodeBlankStepDropsItsFile(t *testing.T) {
	stray := testImage(t, "stray.jpg", "stray")
	kept := testImage(t, "kept.jpg", "kept")

	d := New()
	d.Title = "Stew"
	_ = d.SetIngredientName(0, "beef")
	_ = d.AttachStepImage(0, stray) // text left empty
	d.AddStep()
	_ = d.SetStepText(1, "Simmer.")
	_ = d.AttachStepImage(1, kept)

	sub, err := d.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	parts := decodeParts(t, sub)

	photos := fileParts(parts, "step_photos")
	if len(photos) != 1 || photos[0].value != "kept" {
		t.Errorf("photos = %+v, want only the kept file", photos)
	}
}

func TestEncodeCover(t *testing.T) {
	cover := testImage(t, "cover.webp", "cover-bytes")

	d := New()
	d.Title = "Cake"
	d.Topic = models.TopicDinner
	_ = d.SetIngredientName(0, "eggs")
	_ = d.SetStepText(0, "Bake.")
	d.AttachCover(cover)

	sub, err := d.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	parts := decodeParts(t, sub)

	photos := fileParts(parts, "photo")
	if len(photos) != 1 || photos[0].filename != "cover.webp" || photos[0].value != "cover-bytes" {
		t.Errorf("photo parts = %+v", photos)
	}
}

func TestEncodeRemoteCoverUploadsNothing(t *testing.T) {
	d := New()
	d.Title = "Pie"
	_ = d.SetIngredientName(0, "apples")
	_ = d.SetStepText(0, "Bake.")
	d.Cover = Remote("/media/pie.jpg")

	sub, err := d.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for _, p := range decodeParts(t, sub) {
		if p.filename != "" {
			t.Errorf("unexpected file part %s", p.field)
		}
	}
}

func TestEncodeMissingFileFails(t *testing.T) {
	d := New()
	d.Title = "Ghost"
	_ = d.SetIngredientName(0, "air")
	_ = d.SetStepText(0, "Wave hands.")
	_ = d.AttachStepImage(0, filepath.Join(t.TempDir(), "gone.jpg"))

	if _, err := d.Encode(); err == nil {
		t.Error("expected error for missing image file")
	}
}
