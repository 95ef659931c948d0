package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/starford/cookbook/internal/apperr"
	"github.com/starford/cookbook/internal/draft"
	"github.com/starford/cookbook/internal/models"
)

// FeedQuery are the feed listing filters. Zero values are omitted from the
// request, so the service defaults apply.
type FeedQuery struct {
	Topic  models.Topic
	Order  string // "desc" (newest first) or "asc"
	Query  string // full-text search
	Limit  int
	Offset int
}

func (q FeedQuery) values() url.Values {
	v := url.Values{}
	if q.Topic != "" {
		v.Set("topic", string(q.Topic))
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	if q.Query != "" {
		v.Set("q", q.Query)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	return v
}

// Feed lists recipes with the given filters. The credential is attached when
// present so liked_by_me reflects the viewer.
func (c *Client) Feed(ctx context.Context, q FeedQuery) ([]models.Recipe, error) {
	var out []models.Recipe
	if err := c.getJSON(ctx, authOptional, "/recipes", q.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Popular lists recipes ordered by like count.
func (c *Client) Popular(ctx context.Context, limit, offset int) ([]models.Recipe, error) {
	q := FeedQuery{Limit: limit, Offset: offset}
	var out []models.Recipe
	if err := c.getJSON(ctx, authOptional, "/recipes/popular", q.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Recipe fetches a single recipe with its full ingredient and step lists.
func (c *Client) Recipe(ctx context.Context, id int64) (*models.Recipe, error) {
	var out models.Recipe
	if err := c.getJSON(ctx, authOptional, recipePath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecipeWithComments fetches a recipe and its comments concurrently.
func (c *Client) RecipeWithComments(ctx context.Context, id int64) (*models.Recipe, []models.Comment, error) {
	var (
		recipe   *models.Recipe
		comments []models.Comment
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := c.Recipe(gCtx, id)
		recipe = r
		return err
	})
	g.Go(func() error {
		cs, err := c.Comments(gCtx, id)
		comments = cs
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return recipe, comments, nil
}

// SubmitDraft validates and encodes the draft, then dispatches it: POST to
// the collection for a new recipe, PUT to the item when the draft carries a
// remote recipe id. An invalid draft or a missing credential fails before
// any request is sent. On failure the draft is left untouched for retry.
func (c *Client) SubmitDraft(ctx context.Context, d *draft.Draft) (*models.Recipe, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, err)
	}
	if _, err := c.token(authRequired); err != nil {
		return nil, err
	}

	sub, err := d.Encode()
	if err != nil {
		return nil, err
	}

	method, path := http.MethodPost, "/recipes"
	if d.Editing() {
		method, path = http.MethodPut, recipePath(d.ID)
	}

	var out models.Recipe
	if err := c.do(ctx, authRequired, method, path, nil, sub.ContentType, sub.Body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRecipe removes a recipe the current user authored.
func (c *Client) DeleteRecipe(ctx context.Context, id int64) error {
	return c.do(ctx, authRequired, http.MethodDelete, recipePath(id), nil, "", nil, nil)
}

// ToggleLike flips the current user's like on a recipe and returns the
// authoritative state.
func (c *Client) ToggleLike(ctx context.Context, id int64) (models.LikeResult, error) {
	var out models.LikeResult
	err := c.do(ctx, authRequired, http.MethodPost, recipePath(id)+"/like", nil, "", nil, &out)
	return out, err
}

func recipePath(id int64) string {
	return "/recipes/" + strconv.FormatInt(id, 10)
}
