package catalog

import "strings"

// FilterOptions narrows the catalog for selection lists. Empty fields
// leave their axis unfiltered. Filtering is a presentation concern; the
// deck rules never consult it.
type FilterOptions struct {
	Factions  []string
	Types     []string
	FreeWords string
}

// Filter returns the cards matching every requested axis. Faction and
// type match case-insensitively; FreeWords is a space-separated keyword
// list that must all appear in the card name or text.
func Filter(cards []Card, opt FilterOptions) []Card {
	var out []Card
	for _, c := range cards {
		if len(opt.Factions) > 0 {
			matched := false
			for _, f := range opt.Factions {
				if strings.EqualFold(c.Faction, f) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if len(opt.Types) > 0 {
			matched := false
			for _, tp := range opt.Types {
				if strings.EqualFold(c.Type, tp) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if opt.FreeWords != "" {
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				k = strings.ToLower(k)
				if !strings.Contains(strings.ToLower(c.Name), k) &&
					!strings.Contains(strings.ToLower(c.Text), k) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
