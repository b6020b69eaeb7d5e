// seed_surveys.go parses a markdown file of surveys and creates them through the TOPSIS API.
//
// Usage:
//
//	go run scripts/seed_surveys.go -file surveys.md -api http://localhost:8000
//
// The file lists one survey per top-level heading:
//
//	# Skates
//	## Criteria
//	- Price
//	- Speed
//	## Alternatives
//	- Quad
//	- Inline
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

func parseSurveys(r io.Reader) ([]topsis.ModelCreate, error) {
	var (
		surveys []topsis.ModelCreate
		current *topsis.ModelCreate
		section string
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "## "):
			section = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "## ")))
		case strings.HasPrefix(line, "# "):
			surveys = append(surveys, topsis.ModelCreate{Name: strings.TrimSpace(strings.TrimPrefix(line, "# "))})
			current = &surveys[len(surveys)-1]
			section = ""
		case strings.HasPrefix(line, "- ") && current != nil:
			item := strings.TrimSpace(strings.TrimPrefix(line, "- "))
			if item == "" {
				continue
			}
			switch section {
			case "criteria":
				current.Criteria = append(current.Criteria, item)
			case "alternatives":
				current.Alternatives = append(current.Alternatives, item)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return surveys, nil
}

func main() {
	path := flag.String("file", "surveys.md", "path to the surveys markdown file")
	apiURL := flag.String("api", "http://localhost:8000", "TOPSIS API base URL")
	prefix := flag.String("prefix", topsis.DefaultPrefix, "API path prefix")
	dryRun := flag.Bool("dry-run", false, "print surveys without creating them")
	flag.Parse()

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("open %s: %v", *path, err)
	}
	defer f.Close()

	surveys, err := parseSurveys(f)
	if err != nil {
		log.Fatalf("scan %s: %v", *path, err)
	}
	log.Printf("parsed %d surveys from %s", len(surveys), *path)

	if *dryRun {
		for i, s := range surveys {
			fmt.Printf("[%d] %s (criteria=%s, alternatives=%s)\n", i+1, s.Name,
				strings.Join(s.Criteria, ", "), strings.Join(s.Alternatives, ", "))
		}
		return
	}

	client := topsis.NewHTTPClient(*apiURL, *prefix, 10*time.Second)
	ctx := context.Background()
	created, skipped := 0, 0
	for _, s := range surveys {
		m, err := client.CreateModel(ctx, s)
		if err != nil {
			log.Printf("skip %q: %v", s.Name, err)
			skipped++
			continue
		}
		log.Printf("created %q as %s", m.Name, m.ModelID)
		created++
	}

	log.Printf("done: %d created, %d skipped", created, skipped)
}
