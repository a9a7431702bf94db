// Package templates holds the fixed catalog of card opening-animation
// templates and the customization options offered by the card editor.
// The catalog is reference data compiled into the binary; the server only
// serves it and validates card template ids against it.
package templates

// Template describes one open-animation template. Interactions is the
// number of discrete taps/gestures a viewer performs before the message
// is revealed; the animation itself is a client concern.
type Template struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	PreviewColor string `json:"previewColor"`
	Interactions int    `json:"interactions"`
}

// Template category tags.
const (
	CategoryClassic     = "classic"
	CategoryRomantic    = "romantic"
	CategoryPlayful     = "playful"
	CategoryCelebration = "celebration"
)

// DefaultTemplateID is used when a card is created without a template.
const DefaultTemplateID = "envelope"

// Catalog is the full template catalog, in display order.
var Catalog = []Template{
	{
		ID:           "birthday-cake",
		Name:         "Birthday Cake",
		Description:  "Blow out 5 candles one by one to open the card, with smoke and confetti effects.",
		Category:     CategoryCelebration,
		PreviewColor: "#f59e0b",
		Interactions: 5,
	},
	{
		ID:           "treasure-chest",
		Name:         "Treasure Chest",
		Description:  "Find and collect 4 hidden keys to unlock the treasure chest.",
		Category:     CategoryPlayful,
		PreviewColor: "#d97706",
		Interactions: 4,
	},
	{
		ID:           "flower-bouquet",
		Name:         "Flower Bouquet",
		Description:  "Pick 8 flower petals one by one, loves-me-loves-me-not style.",
		Category:     CategoryRomantic,
		PreviewColor: "#ec4899",
		Interactions: 8,
	},
	{
		ID:           "star-collector",
		Name:         "Star Collector",
		Description:  "Collect 6 stars in the night sky with shooting star effects.",
		Category:     CategoryPlayful,
		PreviewColor: "#8b5cf6",
		Interactions: 6,
	},
	{
		ID:           "gift-box",
		Name:         "Gift Box",
		Description:  "A gift box with an unravelling golden ribbon and magical sparkles.",
		Category:     CategoryCelebration,
		PreviewColor: "#10b981",
		Interactions: 1,
	},
	{
		ID:           "balloon-pop",
		Name:         "Balloon Surprise",
		Description:  "Pop 5 colorful balloons one by one to reveal the message.",
		Category:     CategoryCelebration,
		PreviewColor: "#f43f5e",
		Interactions: 5,
	},
	{
		ID:           "magic-card",
		Name:         "Magic Card",
		Description:  "A card with magical sparkles that follow the pointer.",
		Category:     CategoryPlayful,
		PreviewColor: "#8b5cf6",
		Interactions: 1,
	},
	{
		ID:           "heart-box",
		Name:         "Heart Box",
		Description:  "A pulsing heart-shaped box with floating hearts animation.",
		Category:     CategoryRomantic,
		PreviewColor: "#ec4899",
		Interactions: 1,
	},
	{
		ID:           "scroll",
		Name:         "Letter Scroll",
		Description:  "An ancient paper scroll with a wax seal that opens dramatically.",
		Category:     CategoryClassic,
		PreviewColor: "#d97706",
		Interactions: 1,
	},
	{
		ID:           "envelope",
		Name:         "Classic Envelope",
		Description:  "An elegant classic envelope with a smooth opening animation.",
		Category:     CategoryClassic,
		PreviewColor: "#6366f1",
		Interactions: 1,
	},
}

// ByID returns the catalog entry for id, or false if unknown.
func ByID(id string) (Template, bool) {
	for _, t := range Catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// ByCategory returns catalog entries with the given category tag.
func ByCategory(category string) []Template {
	var out []Template
	for _, t := range Catalog {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// IsValid reports whether id names a catalog entry.
func IsValid(id string) bool {
	_, ok := ByID(id)
	return ok
}
