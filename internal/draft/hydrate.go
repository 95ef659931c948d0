package draft

import (
	"sort"

	"github.com/starford/cookbook/internal/models"
)

// FromRecipe reverse-maps a fetched recipe into draft state for the edit
// flow. Ingredients and steps keep server order (steps sorted by their
// 1-based order_index); image slots holding a server-side URL start in the
// remote state, so re-encoding an untouched draft emits with_file=false
// everywhere and uploads nothing.
func FromRecipe(r *models.Recipe) *Draft {
	d := &Draft{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Topic:       r.Topic,
	}
	if r.PhotoPath != "" {
		d.Cover = Remote(r.PhotoPath)
	}

	d.Ingredients = make([]Ingredient, 0, len(r.Ingredients))
	for _, row := range r.Ingredients {
		d.Ingredients = append(d.Ingredients, Ingredient{Name: row.Name, Quantity: row.Quantity})
	}
	if len(d.Ingredients) == 0 {
		d.Ingredients = []Ingredient{{}}
	}

	steps := make([]models.Step, len(r.Steps))
	copy(steps, r.Steps)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].OrderIndex < steps[j].OrderIndex })

	d.Steps = make([]Step, 0, len(steps))
	for _, s := range steps {
		step := Step{Text: s.Text}
		if s.PhotoPath != "" {
			step.Image = Remote(s.PhotoPath)
		}
		d.Steps = append(d.Steps, step)
	}
	if len(d.Steps) == 0 {
		d.Steps = []Step{{}}
	}
	return d
}
