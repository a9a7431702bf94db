package templates

// Option is a named choice offered by the card editor.
type Option struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Defaults applied to cards created without explicit customization.
const (
	DefaultFontFamily    = "Inter"
	DefaultAccentColor   = "#f43f5e"
	DefaultEnvelopeStyle = "classic"
	DefaultEnvelopeColor = "#d4a574"
)

// CardCategories are the occasion categories a card can be filed under.
var CardCategories = []Option{
	{ID: "valentine", Name: "Valentine", Value: "#f43f5e"},
	{ID: "birthday", Name: "Birthday", Value: "#f59e0b"},
	{ID: "graduation", Name: "Graduation", Value: "#8b5cf6"},
	{ID: "anniversary", Name: "Anniversary", Value: "#ec4899"},
	{ID: "eid", Name: "Eid", Value: "#10b981"},
	{ID: "christmas", Name: "Christmas", Value: "#22c55e"},
	{ID: "newyear", Name: "New Year", Value: "#a855f7"},
	{ID: "thankyou", Name: "Thank You", Value: "#0ea5e9"},
}

// Fonts are the message font choices.
var Fonts = []Option{
	{ID: "Inter", Name: "Default"},
	{ID: "Playfair Display", Name: "Display"},
	{ID: "Caveat", Name: "Handwriting"},
	{ID: "Lora", Name: "Serif"},
}

// AccentColors are the accent color choices.
var AccentColors = []Option{
	{ID: "rose", Name: "Rose", Value: "#f43f5e"},
	{ID: "pink", Name: "Pink", Value: "#ec4899"},
	{ID: "purple", Name: "Purple", Value: "#a855f7"},
	{ID: "blue", Name: "Blue", Value: "#3b82f6"},
	{ID: "sky", Name: "Sky", Value: "#0ea5e9"},
	{ID: "teal", Name: "Teal", Value: "#14b8a6"},
	{ID: "orange", Name: "Orange", Value: "#f97316"},
	{ID: "amber", Name: "Amber", Value: "#f59e0b"},
}

// EnvelopeStyles are the envelope paper choices.
var EnvelopeStyles = []Option{
	{ID: "classic", Name: "Classic", Value: "#d4a574"},
	{ID: "white", Name: "White", Value: "#ffffff"},
	{ID: "pink", Name: "Pink", Value: "#ffc0cb"},
	{ID: "red", Name: "Red", Value: "#e53e3e"},
}
