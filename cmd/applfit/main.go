package main

import (
	"fmt"
	"os"

	"appliancefit/internal/cli"
)

// go run ./cmd/applfit serve
// go run ./cmd/applfit scrape KODC304ESS --format tsv
// go run ./cmd/applfit compare KODC304ESS HBL8451UC
// go run ./cmd/applfit import --file models.txt --xlsx ovens.xlsx
func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
