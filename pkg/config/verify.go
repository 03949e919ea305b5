package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema map[string]any
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// every top-level section of the config has to be known to the schema
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	known := schemaSections(schema)
	for key := range configMap {
		if !slices.Contains(known, key) {
			return fmt.Errorf("section %q is not described by schema", key)
		}
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// schemaSections returns property names of the root Config definition
func schemaSections(schema map[string]any) []string {
	defs, _ := schema["$defs"].(map[string]any)
	root, _ := defs["Config"].(map[string]any)
	props, _ := root["properties"].(map[string]any)
	res := make([]string, 0, len(props))
	for k := range props {
		res = append(res, k)
	}
	return res
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.HN.BaseURL == "" {
		return fmt.Errorf("hn.base_url is required")
	}
	if cfg.HN.PageLimit == 0 {
		return fmt.Errorf("hn.page_limit is required")
	}
	if cfg.Flags.ProviderURL != "" && cfg.Flags.APIKey == "" {
		return fmt.Errorf("flags.api_key is required when flags.provider_url is set")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
