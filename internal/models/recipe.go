// Package models defines the wire types exchanged with the recipe service.
package models

import "time"

// Topic is the recipe category code.
type Topic string

// Topic codes accepted by the service.
const (
	TopicBreakfast  Topic = "breakfast"
	TopicLunch      Topic = "lunch"
	TopicDinner     Topic = "dinner"
	TopicDesserts   Topic = "desserts"
	TopicAppetizers Topic = "appetizers"
	TopicSalads     Topic = "salads"
	TopicSoups      Topic = "soups"
	TopicDrinks     Topic = "drinks"
	TopicBaking     Topic = "baking"
	TopicSnacks     Topic = "snacks"
	TopicVegetarian Topic = "vegetarian"
	TopicQuick      Topic = "quick"
)

// Topics lists every valid topic code, in the service's enum order.
func Topics() []Topic {
	return []Topic{
		TopicBreakfast, TopicLunch, TopicDinner,
		TopicDesserts, TopicAppetizers, TopicSalads,
		TopicSoups, TopicDrinks, TopicBaking,
		TopicSnacks, TopicVegetarian, TopicQuick,
	}
}

// Valid reports whether t is one of the known topic codes.
func (t Topic) Valid() bool {
	switch t {
	case TopicBreakfast, TopicLunch, TopicDinner,
		TopicDesserts, TopicAppetizers, TopicSalads,
		TopicSoups, TopicDrinks, TopicBaking,
		TopicSnacks, TopicVegetarian, TopicQuick:
		return true
	}
	return false
}

// Ingredient is one row of a recipe's ingredient list. Order is display order.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Step is one cooking step. OrderIndex is 1-based and carries the cooking
// sequence; PhotoPath, when present, is a server-side image URL.
type Step struct {
	OrderIndex int    `json:"order_index"`
	Text       string `json:"text"`
	PhotoPath  string `json:"photo_path,omitempty"`
}

// Author is the public author summary embedded in recipes and comments.
type Author struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname,omitempty"`
	PhotoPath string `json:"photo_path,omitempty"`
}

// DisplayName returns the nickname when set, falling back to the email.
func (a Author) DisplayName() string {
	if a.Nickname != "" {
		return a.Nickname
	}
	return a.Email
}

// Recipe is the full recipe representation returned by the service.
// Steps and Comments are populated only by endpoints that include them.
type Recipe struct {
	ID          int64        `json:"id"`
	AuthorID    int64        `json:"author_id"`
	Author      *Author      `json:"author,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Topic       Topic        `json:"topic"`
	PhotoPath   string       `json:"photo_path,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	LikesCount  int          `json:"likes_count"`
	LikedByMe   *bool        `json:"liked_by_me,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps,omitempty"`
	Comments    []Comment    `json:"comments,omitempty"`
}

// Comment is one recipe comment with the viewer's permissions resolved
// server-side.
type Comment struct {
	ID        int64     `json:"id"`
	Author    Author    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	CanEdit   bool      `json:"can_edit"`
	CanDelete bool      `json:"can_delete"`
}

// LikeResult is the response of the like toggle endpoint.
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}
