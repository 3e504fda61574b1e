// Package catalog holds the immutable reference content for a deployment:
// challenge, lesson, badge and shop item definitions. The catalogs are
// seeded once at startup and only ever read after that.
package catalog

import "ecolearn/internal/models"

// Catalog provides keyed, read-only access to the seeded content
type Catalog struct {
	challenges []models.Challenge
	lessons    []models.Lesson
	badges     []models.Badge
	shopItems  []models.ShopItem

	challengeByID map[string]models.Challenge
	lessonByID    map[string]models.Lesson
	badgeByID     map[string]models.Badge
	shopItemByID  map[string]models.ShopItem
}

// New builds a catalog from explicit content slices
func New(challenges []models.Challenge, lessons []models.Lesson, badges []models.Badge, shopItems []models.ShopItem) *Catalog {
	c := &Catalog{
		challenges:    challenges,
		lessons:       lessons,
		badges:        badges,
		shopItems:     shopItems,
		challengeByID: make(map[string]models.Challenge, len(challenges)),
		lessonByID:    make(map[string]models.Lesson, len(lessons)),
		badgeByID:     make(map[string]models.Badge, len(badges)),
		shopItemByID:  make(map[string]models.ShopItem, len(shopItems)),
	}

	for _, ch := range challenges {
		c.challengeByID[ch.ID] = ch
	}
	for _, l := range lessons {
		c.lessonByID[l.ID] = l
	}
	for _, b := range badges {
		c.badgeByID[b.ID] = b
	}
	for _, item := range shopItems {
		c.shopItemByID[item.ID] = item
	}

	return c
}

// Default returns the catalog seeded with the standard content
func Default() *Catalog {
	return New(seedChallenges(), seedLessons(), seedBadges(), seedShopItems())
}

// Challenges returns all challenge definitions
func (c *Catalog) Challenges() []models.Challenge {
	return c.challenges
}

// Lessons returns all lesson definitions
func (c *Catalog) Lessons() []models.Lesson {
	return c.lessons
}

// Badges returns all badge definitions
func (c *Catalog) Badges() []models.Badge {
	return c.badges
}

// ShopItems returns all shop item definitions
func (c *Catalog) ShopItems() []models.ShopItem {
	return c.shopItems
}

// ChallengeByID looks up a challenge; ok is false for unknown ids
func (c *Catalog) ChallengeByID(id string) (models.Challenge, bool) {
	ch, ok := c.challengeByID[id]
	return ch, ok
}

// LessonByID looks up a lesson; ok is false for unknown ids
func (c *Catalog) LessonByID(id string) (models.Lesson, bool) {
	l, ok := c.lessonByID[id]
	return l, ok
}

// BadgeByID looks up a badge; ok is false for unknown ids
func (c *Catalog) BadgeByID(id string) (models.Badge, bool) {
	b, ok := c.badgeByID[id]
	return b, ok
}

// ShopItemByID looks up a shop item; ok is false for unknown ids
func (c *Catalog) ShopItemByID(id string) (models.ShopItem, bool) {
	item, ok := c.shopItemByID[id]
	return item, ok
}
