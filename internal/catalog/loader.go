package catalog

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/deckbench/deckbench/internal/util"
)

// Load reads the card catalog from a local file or an http(s) URL.
// JSON sources hold an array of card objects; .csv sources need a
// header row naming the id, name, faction, type and text columns, in
// any order.
func Load(src string) (*Catalog, error) {
	var data []byte
	var err error
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		data, err = util.GetBytes(src)
	} else {
		data, err = os.ReadFile(src)
	}
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", src, err)
	}

	var cards []Card
	if strings.HasSuffix(strings.ToLower(src), ".csv") {
		cards, err = parseCSV(data)
	} else {
		err = json.Unmarshal(data, &cards)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", src, err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("catalog %s has no cards", src)
	}
	return New(cards)
}

func parseCSV(data []byte) ([]Card, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv has no header")
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := make([]Card, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out = append(out, Card{
			ID:      get(row, "id"),
			Name:    get(row, "name"),
			Faction: get(row, "faction"),
			Type:    get(row, "type"),
			Text:    get(row, "text"),
		})
	}
	return out, nil
}
