package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/deckbench/deckbench/internal/catalog"
	"github.com/deckbench/deckbench/internal/deck"
)

func main() {
	catalogSrc := flag.String("catalog", "data/cards.json", "path or URL of the card catalog")
	maxSize := flag.Int("max-size", deck.DefaultMaxDeckSize, "maximum deck size")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: deckcheck [-catalog PATH] [-max-size N] FILE...")
		os.Exit(2)
	}

	cat, err := catalog.Load(*catalogSrc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	limits := deck.Limits{MaxDeckSize: *maxSize, CopyLimit: deck.DefaultCopyLimit}

	failed := 0
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			color.Red("%s: %v", file, err)
			failed++
			continue
		}
		d, err := deck.Import(data, cat, limits)
		if err != nil {
			color.Red("%s: %v", file, err)
			failed++
			continue
		}
		color.Green("%s: ok (%q, %d cards)", file, d.Name(), d.TotalSize())
	}

	color.Cyan("checked %d file(s), %d problem(s)", len(files), failed)
	if failed > 0 {
		os.Exit(1)
	}
}
