package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/LeoCommon/modemcore/internal/config"
	"github.com/LeoCommon/modemcore/pkg/file"
)

// Writes the default configuration so it can be shipped and edited
func main() {
	out := flag.String("out", "./config/config.toml", "where to write the sample config")
	flag.Parse()

	sample, err := config.Sample()
	if err != nil {
		fmt.Printf("could not render sample config: %s\n", err)
		os.Exit(1)
	}

	if err := file.WriteAtomic(*out, sample, 0644); err != nil {
		fmt.Printf("failed to write config file: %s\n", err)
		os.Exit(1)
	}
}
