// Package catalog holds the fixed item catalogs the watch-lists are built
// from. The remote API may return more or fewer items; matching is by name.
package catalog

import "fmt"

// Category identifies one of the two stock feeds.
type Category int

const (
	Seeds Category = iota
	Gear
)

// Categories lists every category in processing order.
var Categories = []Category{Seeds, Gear}

// Item is a catalog entry.
type Item struct {
	Name string `json:"name"`
}

var seedItems = []Item{
	{"Carrot"}, {"Strawberry"}, {"Blueberry"},
	{"Orange Tulip"}, {"Tomato"}, {"Corn"},
	{"Daffodil"}, {"Watermelon"}, {"Pumpkin"},
	{"Apple"}, {"Bamboo"}, {"Coconut"},
	{"Cactus"}, {"Dragon Fruit"}, {"Mango"},
	{"Grape"}, {"Mushroom"}, {"Pepper"},
	{"Cacao"}, {"Beanstalk"}, {"Ember Lily"},
	{"Sugar Apple"}, {"Burning Bud"}, {"Giant Pinecone"},
	{"Elder Strawberry"},
}

var gearItems = []Item{
	{"Watering Can"}, {"Trowel"}, {"Trading Ticket"},
	{"Recall Wrench"}, {"Basic Sprinkler"}, {"Advanced Sprinkler"},
	{"Medium Treat"}, {"Medium Toy"}, {"Godly Sprinkler"},
	{"Magnifying Glass"}, {"Master Sprinkler"}, {"Cleaning Spray"},
	{"Favourite Tool"}, {"Harvest Tool"}, {"Friendship Pot"},
	{"Level Up Lolllipop"}, {"Grandmaster sprinkler"},
}

// String returns the lower-case name used in config keys and messages.
func (c Category) String() string {
	switch c {
	case Seeds:
		return "seeds"
	case Gear:
		return "gear"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Title returns the capitalized display name.
func (c Category) Title() string {
	switch c {
	case Seeds:
		return "Seeds"
	case Gear:
		return "Gear"
	default:
		return c.String()
	}
}

// Items returns a copy of the category's catalog in display order.
func (c Category) Items() []Item {
	var src []Item
	switch c {
	case Seeds:
		src = seedItems
	case Gear:
		src = gearItems
	}
	out := make([]Item, len(src))
	copy(out, src)
	return out
}

// Names returns the catalog item names in display order.
func (c Category) Names() []string {
	items := c.Items()
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

// Contains reports whether name is in the category's catalog. Matching is
// exact, as the API returns the same spelling.
func (c Category) Contains(name string) bool {
	for _, item := range c.Items() {
		if item.Name == name {
			return true
		}
	}
	return false
}
