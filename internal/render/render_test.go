package render

import (
	"strings"
	"testing"
	"time"

	"github.com/starford/cookbook/internal/draft"
	"github.com/starford/cookbook/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func TestFeed(t *testing.T) {
	out := Feed([]models.Recipe{
		{
			ID: 1, Title: "Shakshuka", Topic: models.TopicBreakfast,
			Author:     &models.Author{Nickname: "mara"},
			LikesCount: 5, LikedByMe: boolPtr(true),
			CreatedAt: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
		},
	})
	for _, want := range []string{"#1", "Shakshuka", "breakfast", "mara", "♥ 5", "liked"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFeedEmpty(t *testing.T) {
	if out := Feed(nil); !strings.Contains(out, "no recipes") {
		t.Errorf("output = %q", out)
	}
}

func TestRecipeFull(t *testing.T) {
	r := &models.Recipe{
		ID: 3, Title: "Ramen", Topic: models.TopicDinner,
		Description: "From scratch.",
		Ingredients: []models.Ingredient{{Name: "noodles", Quantity: "200g"}},
		Steps: []models.Step{
			{OrderIndex: 1, Text: "Make broth.", PhotoPath: "/media/broth.jpg"},
			{OrderIndex: 2, Text: "Assemble."},
		},
	}
	out := Recipe(r, []models.Comment{
		{ID: 9, Author: models.Author{Email: "leo@example.com"}, Content: "Great"},
	})
	for _, want := range []string{
		"Ramen", "From scratch.", "noodles", "(200g)",
		"1. Make broth.", "/media/broth.jpg", "2. Assemble.",
		"Comments (1)", "leo@example.com", "Great",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestCommentsEmpty(t *testing.T) {
	out := Comments(nil)
	if !strings.Contains(out, "Comments (0)") || !strings.Contains(out, "none yet") {
		t.Errorf("output = %q", out)
	}
}

func TestProfile(t *testing.T) {
	p := &models.Profile{
		User: models.User{ID: 4, Email: "mara@example.com", Nickname: "mara", FullName: "Mara K"},
		Recipes: []models.Recipe{
			{ID: 1, Title: "Shakshuka", Topic: models.TopicBreakfast},
		},
	}
	out := Profile(p)
	for _, want := range []string{"mara", "mara@example.com", "Mara K", "Recipes (1)", "Shakshuka"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestDraftShowsImageStates(t *testing.T) {
	d := draft.New()
	d.ID = 42
	d.Title = "Ramen"
	_ = d.SetIngredientName(0, "noodles")
	_ = d.SetStepText(0, "Cook.")
	_ = d.AttachStepImage(0, "/tmp/cook.jpg")
	d.Cover = draft.Remote("/media/old.jpg")

	out := Draft("ramen-edit", d)
	for _, want := range []string{
		"ramen-edit", "editing recipe #42", "/tmp/cook.jpg", "/media/old.jpg (remote)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
