package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/starford/cookbook/internal/models"
)

// Comments lists a recipe's comments. The credential is attached when
// present so can_edit/can_delete reflect the viewer.
func (c *Client) Comments(ctx context.Context, recipeID int64) ([]models.Comment, error) {
	var out []models.Comment
	if err := c.getJSON(ctx, authOptional, recipePath(recipeID)+"/comments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddComment posts a comment on a recipe.
func (c *Client) AddComment(ctx context.Context, recipeID int64, content string) (*models.Comment, error) {
	var out models.Comment
	form := url.Values{"content": {content}}
	if err := c.postForm(ctx, authRequired, http.MethodPost, recipePath(recipeID)+"/comments", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EditComment replaces the content of the user's own comment.
func (c *Client) EditComment(ctx context.Context, recipeID, commentID int64, content string) (*models.Comment, error) {
	var out models.Comment
	form := url.Values{"content": {content}}
	if err := c.postForm(ctx, authRequired, http.MethodPut, commentPath(recipeID, commentID), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment removes a comment. The service allows this for the comment
// author and for the recipe author.
func (c *Client) DeleteComment(ctx context.Context, recipeID, commentID int64) error {
	return c.do(ctx, authRequired, http.MethodDelete, commentPath(recipeID, commentID), nil, "", nil, nil)
}

func commentPath(recipeID, commentID int64) string {
	return recipePath(recipeID) + "/comments/" + strconv.FormatInt(commentID, 10)
}
