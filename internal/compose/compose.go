// Package compose runs the interactive terminal form that fills a recipe
// draft.
package compose

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/starford/cookbook/internal/draft"
	"github.com/starford/cookbook/internal/models"
)

// ErrCancelled is returned when the user aborts the form.
var ErrCancelled = errors.New("compose: cancelled")

func topicOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models.Topics()))
	for _, t := range models.Topics() {
		label := strings.ToUpper(string(t[0])) + string(t[1:])
		opts = append(opts, huh.NewOption(label, string(t)))
	}
	return opts
}

// Run edits the draft in place through an interactive form: scalar fields
// first, then one round per ingredient and step with an "add another"
// prompt. The draft is only modified on successful completion.
func Run(d *draft.Draft) error {
	work := *d
	work.Ingredients = append([]draft.Ingredient(nil), d.Ingredients...)
	work.Steps = append([]draft.Step(nil), d.Steps...)

	if err := runHeader(&work); err != nil {
		return err
	}
	if err := runIngredients(&work); err != nil {
		return err
	}
	if err := runSteps(&work); err != nil {
		return err
	}
	if err := runCover(&work); err != nil {
		return err
	}

	*d = work
	return nil
}

func runHeader(d *draft.Draft) error {
	topic := string(d.Topic)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("e.g. Shakshuka").
				Value(&d.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					if len([]rune(s)) > 150 {
						return fmt.Errorf("title must be 150 characters or less")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Placeholder("What makes this recipe worth cooking?").
				CharLimit(2000).
				Value(&d.Description),
			huh.NewSelect[string]().
				Title("Topic").
				Options(topicOptions()...).
				Value(&topic),
		),
	)
	if err := form.Run(); err != nil {
		return formErr(err)
	}
	d.Topic = models.Topic(topic)
	return nil
}

func runIngredients(d *draft.Draft) error {
	for i := 0; ; i++ {
		if i >= len(d.Ingredients) {
			d.AddIngredient()
		}
		row := &d.Ingredients[i]
		more := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(fmt.Sprintf("Ingredient %d", i+1)).
					Placeholder("e.g. eggs").
					Value(&row.Name),
				huh.NewInput().
					Title("Quantity").
					Placeholder("e.g. 4").
					Value(&row.Quantity),
				huh.NewConfirm().
					Title("Add another ingredient?").
					Value(&more),
			),
		)
		if err := form.Run(); err != nil {
			return formErr(err)
		}
		if !more {
			return nil
		}
	}
}

func runSteps(d *draft.Draft) error {
	for i := 0; ; i++ {
		if i >= len(d.Steps) {
			d.AddStep()
		}
		row := &d.Steps[i]
		image := row.Image.File
		more := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewText().
					Title(fmt.Sprintf("Step %d", i+1)).
					Placeholder("What to do at this step").
					Value(&row.Text),
				huh.NewInput().
					Title("Step photo (local path, optional)").
					Value(&image),
				huh.NewConfirm().
					Title("Add another step?").
					Value(&more),
			),
		)
		if err := form.Run(); err != nil {
			return formErr(err)
		}
		if image != "" {
			row.Image.Attach(image)
		} else if row.Image.NewUpload() {
			row.Image.Clear()
		}
		if !more {
			return nil
		}
	}
}

func runCover(d *draft.Draft) error {
	cover := d.Cover.File
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cover photo (local path, optional)").
				Value(&cover),
		),
	)
	if err := form.Run(); err != nil {
		return formErr(err)
	}
	if cover != "" {
		d.AttachCover(cover)
	} else if d.Cover.NewUpload() {
		d.ClearCover()
	}
	return nil
}

func formErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return fmt.Errorf("compose: form: %w", err)
}
