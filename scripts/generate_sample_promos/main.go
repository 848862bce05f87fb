package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Writes a sample promo seed file (gzipped JSON lines, one promo per line)
// for local development and for exercising the promo importer.
func main() {
	dataDir := "data/promos"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	promos := []string{
		`{"code": "SAVE10", "description": "10% off everything", "percent_off": 10, "active": true}`,
		`{"code": "FLAT5", "description": "5 dollars off", "amount_off": 5.0, "active": true}`,
		`{"code": "COMBO15", "description": "10% plus 5 off", "percent_off": 10, "amount_off": 5.0, "active": true}`,
		`{"code": "EXPIRED20", "description": "Retired spring promo", "percent_off": 20, "active": false}`,
	}

	path := filepath.Join(dataDir, "promos.jsonl.gz")
	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer file.Close()

	gz := gzip.NewWriter(file)
	for _, line := range promos {
		if _, err := fmt.Fprintln(gz, line); err != nil {
			log.Fatalf("Failed to write promo line: %v", err)
		}
	}
	if err := gz.Close(); err != nil {
		log.Fatalf("Failed to finish %s: %v", path, err)
	}

	fmt.Printf("Wrote %d sample promos to %s\n", len(promos), path)
}
