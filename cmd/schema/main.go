package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/hnscope/pkg/config"
)

// Opts with schema generator options
type Opts struct {
	Args struct {
		Output string `positional-arg-name:"output" description:"schema file to write"`
	} `positional-args:"yes"`
}

func main() {
	var opts Opts
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}
	lgr.SetupStdLogger(lgr.Msec, lgr.LevelBraces)

	if err := writeSchema(opts.Args.Output); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

// writeSchema reflects hnscope configuration into a JSON schema file, schema.json if path is empty
func writeSchema(path string) error {
	if path == "" {
		path = "schema.json"
	}

	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write schema file: %w", err)
	}

	log.Printf("[INFO] schema written to %s", path)
	return nil
}
