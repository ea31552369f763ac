package catalog

// Card is one immutable entry in the reference catalog.
type Card struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Faction string `json:"faction"`
	Type    string `json:"type"`
	Text    string `json:"text"`
}
