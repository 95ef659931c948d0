package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/starford/cookbook/internal/cache"
	"github.com/starford/cookbook/internal/draft"
	"github.com/starford/cookbook/internal/models"
)

const timeLayout = "2006-01-02 15:04"

// Feed renders a recipe listing, one block per recipe.
func Feed(recipes []models.Recipe) string {
	if len(recipes) == 0 {
		return mutedStyle.Render("no recipes")
	}
	var b strings.Builder
	for i, r := range recipes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(feedLine(r))
	}
	return b.String()
}

func feedLine(r models.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(fmt.Sprintf("#%d", r.ID)), headerStyle.Render(r.Title))
	author := ""
	if r.Author != nil {
		author = r.Author.DisplayName()
	}
	meta := fmt.Sprintf("%s · %s · %s", r.Topic, author, r.CreatedAt.Format(timeLayout))
	b.WriteString("  " + mutedStyle.Render(meta) + "\n")
	b.WriteString("  " + likes(r.LikesCount, r.LikedByMe != nil && *r.LikedByMe))
	if r.Description != "" {
		b.WriteString("\n  " + truncate(r.Description, 100))
	}
	b.WriteString("\n")
	return b.String()
}

// CachedFeed renders rows served from the local cache, marked as such.
func CachedFeed(rows []cache.Row, cachedAt time.Time) string {
	if len(rows) == 0 {
		return mutedStyle.Render("no cached recipes")
	}
	var b strings.Builder
	b.WriteString(mutedStyle.Render(fmt.Sprintf("(cached, last refreshed %s)", cachedAt.Local().Format(timeLayout))) + "\n\n")
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(fmt.Sprintf("#%d", row.ID)), headerStyle.Render(row.Title))
		meta := fmt.Sprintf("%s · %s · %s", row.Topic, row.AuthorName, row.CreatedAt.Format(timeLayout))
		b.WriteString("  " + mutedStyle.Render(meta) + "\n")
		b.WriteString("  " + likes(row.LikesCount, row.LikedByMe) + "\n")
	}
	return b.String()
}

// Recipe renders a single recipe in full, with comments when provided.
func Recipe(r *models.Recipe, comments []models.Comment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(fmt.Sprintf("#%d", r.ID)), headerStyle.Render(r.Title))
	author := ""
	if r.Author != nil {
		author = r.Author.DisplayName()
	}
	meta := fmt.Sprintf("%s · %s · %s", r.Topic, author, r.CreatedAt.Format(timeLayout))
	b.WriteString(mutedStyle.Render(meta) + "\n")
	b.WriteString(likes(r.LikesCount, r.LikedByMe != nil && *r.LikedByMe) + "\n")
	if r.PhotoPath != "" {
		b.WriteString(mutedStyle.Render("photo: "+r.PhotoPath) + "\n")
	}
	if r.Description != "" {
		b.WriteString("\n" + r.Description + "\n")
	}

	if len(r.Ingredients) > 0 {
		b.WriteString("\n" + headerStyle.Render("Ingredients") + "\n")
		for _, ing := range r.Ingredients {
			line := "  - " + ing.Name
			if ing.Quantity != "" {
				line += mutedStyle.Render(" (" + ing.Quantity + ")")
			}
			b.WriteString(line + "\n")
		}
	}

	if len(r.Steps) > 0 {
		b.WriteString("\n" + headerStyle.Render("Steps") + "\n")
		for _, st := range r.Steps {
			fmt.Fprintf(&b, "  %d. %s\n", st.OrderIndex, st.Text)
			if st.PhotoPath != "" {
				b.WriteString("     " + mutedStyle.Render("photo: "+st.PhotoPath) + "\n")
			}
		}
	}

	if comments != nil {
		b.WriteString("\n" + Comments(comments))
	}
	return b.String()
}

// Comments renders a comment list.
func Comments(comments []models.Comment) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Comments (%d)", len(comments))) + "\n")
	if len(comments) == 0 {
		b.WriteString(mutedStyle.Render("  none yet") + "\n")
		return b.String()
	}
	for _, c := range comments {
		meta := fmt.Sprintf("#%d %s · %s", c.ID, c.Author.DisplayName(), c.CreatedAt.Format(timeLayout))
		var perms []string
		if c.CanEdit {
			perms = append(perms, "editable")
		}
		if c.CanDelete {
			perms = append(perms, "deletable")
		}
		if len(perms) > 0 {
			meta += " · " + strings.Join(perms, ", ")
		}
		b.WriteString("  " + mutedStyle.Render(meta) + "\n")
		b.WriteString("  " + c.Content + "\n")
	}
	return b.String()
}

// Profile renders a user profile with their recipes.
func Profile(p *models.Profile) string {
	var b strings.Builder
	name := p.Nickname
	if name == "" {
		name = p.Email
	}
	b.WriteString(titleStyle.Render(name) + "\n")
	fmt.Fprintf(&b, "%s\n", mutedStyle.Render(fmt.Sprintf("id %d · %s", p.ID, p.Email)))
	if p.FullName != "" {
		b.WriteString(p.FullName + "\n")
	}
	if p.PhotoPath != "" {
		b.WriteString(mutedStyle.Render("avatar: "+p.PhotoPath) + "\n")
	}
	b.WriteString("\n" + headerStyle.Render(fmt.Sprintf("Recipes (%d)", len(p.Recipes))) + "\n")
	for _, r := range p.Recipes {
		fmt.Fprintf(&b, "  #%d %s %s\n", r.ID, r.Title, mutedStyle.Render(string(r.Topic)))
	}
	return b.String()
}

// Draft renders a local draft for inspection.
func Draft(name string, d *draft.Draft) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(name))
	if d.Editing() {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  (editing recipe #%d)", d.ID)))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render("Title:"), d.Title)
	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render("Topic:"), d.Topic)
	if d.Description != "" {
		fmt.Fprintf(&b, "%s %s\n", headerStyle.Render("Description:"), d.Description)
	}
	b.WriteString(headerStyle.Render("Cover:") + " " + imageLabel(d.Cover) + "\n")

	b.WriteString("\n" + headerStyle.Render("Ingredients") + "\n")
	for i, ing := range d.Ingredients {
		line := fmt.Sprintf("  %d. %s", i+1, ing.Name)
		if ing.Quantity != "" {
			line += mutedStyle.Render(" (" + ing.Quantity + ")")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + headerStyle.Render("Steps") + "\n")
	for i, st := range d.Steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, st.Text)
		if !st.Image.None() {
			b.WriteString("     " + mutedStyle.Render("image: "+imageLabel(st.Image)) + "\n")
		}
	}
	return b.String()
}

func imageLabel(ref draft.ImageRef) string {
	switch {
	case ref.NewUpload():
		return ref.File
	case ref.URL != "":
		return ref.URL + " (remote)"
	}
	return "none"
}

func likes(count int, likedByMe bool) string {
	s := fmt.Sprintf("♥ %d", count)
	if likedByMe {
		return likeStyle.Render(s + " (liked)")
	}
	return mutedStyle.Render(s)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
