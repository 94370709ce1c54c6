package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/ee-portfolio/internal/config"
	"github.com/Zachkp/ee-portfolio/internal/export"
	"github.com/Zachkp/ee-portfolio/internal/render"
)

func main() {
	out := flag.String("out", "dist", "output directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	pages, err := render.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load templates: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exporting site to %s...\n", *out)
	files, err := export.Write(*out, pages, cfg.PublicDir)
	for _, f := range files {
		fmt.Printf("  Created %s\n", f)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done!")
}
