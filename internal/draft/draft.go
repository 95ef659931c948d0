// Package draft holds the client-side, in-progress representation of a
// recipe being authored or edited, and turns it into the multipart request
// body the recipe service expects.
package draft

import (
	"errors"
	"fmt"

	"github.com/starford/cookbook/internal/models"
)

// ErrLastRow is returned when removing the last remaining row of a required
// list. Required lists keep a minimum of one visible row; emptiness is
// rejected here rather than at submit time.
var ErrLastRow = errors.New("draft: cannot remove the last remaining row")

// Ingredient is one ordered row of the ingredient list.
type Ingredient struct {
	Name     string `yaml:"name" json:"name"`
	Quantity string `yaml:"quantity" json:"quantity"`
}

// Step is one ordered cooking step. Its image slot travels with the row:
// removing the step removes the slot in the same operation.
type Step struct {
	Text  string   `yaml:"text"`
	Image ImageRef `yaml:"image,omitempty"`
}

// Draft aggregates everything the authoring form edits. ID is zero for a new
// recipe and carries the remote recipe id in edit mode, which decides whether
// submission targets the collection (POST) or the item (PUT).
type Draft struct {
	ID          int64        `yaml:"id,omitempty"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description,omitempty"`
	Topic       models.Topic `yaml:"topic"`
	Cover       ImageRef     `yaml:"cover,omitempty"`
	Ingredients []Ingredient `yaml:"ingredients"`
	Steps       []Step       `yaml:"steps"`
}

// New returns an empty draft seeded with one blank ingredient row and one
// blank step row, matching the initial state of the authoring form.
func New() *Draft {
	return &Draft{
		Topic:       models.TopicBreakfast,
		Ingredients: []Ingredient{{}},
		Steps:       []Step{{}},
	}
}

// Editing reports whether the draft targets an existing remote recipe.
func (d *Draft) Editing() bool {
	return d.ID > 0
}

// AddIngredient appends a blank ingredient row.
func (d *Draft) AddIngredient() {
	d.Ingredients = append(d.Ingredients, Ingredient{})
}

// SetIngredientName replaces the name of row i, leaving the quantity intact.
func (d *Draft) SetIngredientName(i int, name string) error {
	if err := d.checkIngredient(i); err != nil {
		return err
	}
	d.Ingredients[i].Name = name
	return nil
}

// SetIngredientQuantity replaces the quantity of row i, leaving the name
// intact.
func (d *Draft) SetIngredientQuantity(i int, quantity string) error {
	if err := d.checkIngredient(i); err != nil {
		return err
	}
	d.Ingredients[i].Quantity = quantity
	return nil
}

// RemoveIngredient deletes row i, shifting subsequent rows down. The last
// remaining row cannot be removed.
func (d *Draft) RemoveIngredient(i int) error {
	if err := d.checkIngredient(i); err != nil {
		return err
	}
	if len(d.Ingredients) == 1 {
		return ErrLastRow
	}
	d.Ingredients = append(d.Ingredients[:i], d.Ingredients[i+1:]...)
	return nil
}

// AddStep appends a blank step row.
func (d *Draft) AddStep() {
	d.Steps = append(d.Steps, Step{})
}

// SetStepText replaces the text of step i, leaving its image slot intact.
func (d *Draft) SetStepText(i int, text string) error {
	if err := d.checkStep(i); err != nil {
		return err
	}
	d.Steps[i].Text = text
	return nil
}

// AttachStepImage binds a freshly chosen local file to step i,
// unconditionally replacing whatever the slot held before (including a
// remote URL from edit mode).
func (d *Draft) AttachStepImage(i int, path string) error {
	if err := d.checkStep(i); err != nil {
		return err
	}
	d.Steps[i].Image.Attach(path)
	return nil
}

// ClearStepImage resets step i's image slot to empty. It never restores a
// previously replaced remote URL.
func (d *Draft) ClearStepImage(i int) error {
	if err := d.checkStep(i); err != nil {
		return err
	}
	d.Steps[i].Image.Clear()
	return nil
}

// RemoveStep deletes step i together with its image slot, shifting
// subsequent steps down. The last remaining step cannot be removed.
func (d *Draft) RemoveStep(i int) error {
	if err := d.checkStep(i); err != nil {
		return err
	}
	if len(d.Steps) == 1 {
		return ErrLastRow
	}
	d.Steps = append(d.Steps[:i], d.Steps[i+1:]...)
	return nil
}

// AttachCover binds a freshly chosen local file as the cover image.
func (d *Draft) AttachCover(path string) {
	d.Cover.Attach(path)
}

// ClearCover resets the cover image slot to empty.
func (d *Draft) ClearCover() {
	d.Cover.Clear()
}

func (d *Draft) checkIngredient(i int) error {
	if i < 0 || i >= len(d.Ingredients) {
		return fmt.Errorf("draft: ingredient index %d out of range (have %d)", i, len(d.Ingredients))
	}
	return nil
}

func (d *Draft) checkStep(i int) error {
	if i < 0 || i >= len(d.Steps) {
		return fmt.Errorf("draft: step index %d out of range (have %d)", i, len(d.Steps))
	}
	return nil
}
