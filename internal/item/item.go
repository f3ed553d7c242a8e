// Package item holds the consumables a player can give a pet.
package item

import (
	"fmt"
	"log"
	"strings"

	"animora/internal/pet"
)

// Kind decides which pet action an item drives
type Kind int

const (
	Food Kind = iota
	Toy
	Soap
	Medicine
)

func (k Kind) String() string {
	switch k {
	case Food:
		return "Food"
	case Toy:
		return "Toy"
	case Soap:
		return "Soap"
	case Medicine:
		return "Medicine"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Item is a consumable. Bonus is applied on top of the action's own effect
// and only when the pet accepts the action.
type Item struct {
	Name       string
	Emoji      string
	Kind       Kind
	Bonus      pet.StatDelta
	Experience float64 // Base experience before species and level scaling
}

// Catalog lists every item in menu order
var Catalog = []Item{
	{Name: "Basic Kibble", Emoji: "🥣", Kind: Food, Experience: pet.FeedExperience},
	{Name: "Gourmet Pet Meal", Emoji: "🍲", Kind: Food, Bonus: pet.StatDelta{Mood: 20, Energy: 25}, Experience: pet.FeedExperience * 2},
	{Name: "Energy Boost Snack", Emoji: "🥨", Kind: Food, Bonus: pet.StatDelta{Energy: 40}, Experience: pet.FeedExperience},
	{Name: "Golden Apple", Emoji: "🍎", Kind: Food, Bonus: pet.StatDelta{Mood: 30, Energy: 30, Health: 30, Cleanliness: 10}, Experience: pet.FeedExperience * 4},
	{Name: "Bouncy Ball", Emoji: "⚽", Kind: Toy, Experience: pet.PlayExperience},
	{Name: "Puzzle Toy", Emoji: "🧩", Kind: Toy, Bonus: pet.StatDelta{Mood: 10, Energy: -5}, Experience: pet.PlayExperience * 2},
	{Name: "Flying Disc", Emoji: "🥏", Kind: Toy, Bonus: pet.StatDelta{Mood: 20, Energy: -20}, Experience: pet.PlayExperience * 3},
	{Name: "Soap", Emoji: "🧼", Kind: Soap, Experience: pet.CleanExperience},
	{Name: "Bubble Bath", Emoji: "🫧", Kind: Soap, Bonus: pet.StatDelta{Mood: 10}, Experience: pet.CleanExperience * 2},
	{Name: "Medicine", Emoji: "💊", Kind: Medicine, Experience: pet.HealExperience},
}

// Lookup finds a catalog item by name, ignoring case
func Lookup(name string) (Item, bool) {
	for _, it := range Catalog {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return Item{}, false
}

// OfKind returns the catalog items driving the given action
func OfKind(k Kind) []Item {
	var items []Item
	for _, it := range Catalog {
		if it.Kind == k {
			items = append(items, it)
		}
	}
	return items
}

// Use gives the item to the pet. It reports false and changes nothing when
// the pet is busy; otherwise the bonus and experience are awarded once.
func Use(p *pet.Pet, it Item) bool {
	var accepted bool
	switch it.Kind {
	case Food:
		accepted = p.Feed()
	case Toy:
		accepted = p.Play()
	case Soap:
		accepted = p.Clean()
	case Medicine:
		accepted = p.Heal()
	}
	if !accepted {
		return false
	}

	p.Adjust(it.Bonus)
	gained := p.GrantExperience(it.Experience)
	log.Printf("%s used %s (+%.1f xp)", p.Name, it.Name, gained)
	return true
}
