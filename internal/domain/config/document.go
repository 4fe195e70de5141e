package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultsDocument returns the built-in defaults as a document tree, suitable
// as a Merge base.
func DefaultsDocument() (interface{}, error) {
	raw, err := yaml.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("marshal defaults: %w", err)
	}

	return NormalizeYAML(raw)
}

// Decode materializes a document tree into Config.
func Decode(document interface{}) (Config, error) {
	raw, err := yaml.Marshal(document)
	if err != nil {
		return Config{}, fmt.Errorf("marshal document: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal document: %w", err)
	}

	return cfg, nil
}

func Merge(base, override interface{}) interface{} {
	if override == nil {
		override = map[string]interface{}{}
	}

	switch baseTyped := base.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(baseTyped))
		for key, val := range baseTyped {
			result[key] = DeepCopy(val)
		}

		overrideMap, ok := override.(map[string]interface{})
		if !ok {
			return DeepCopy(override)
		}

		for key, value := range overrideMap {
			if existing, exists := result[key]; exists {
				result[key] = Merge(existing, value)
			} else {
				result[key] = DeepCopy(value)
			}
		}

		return result
	case []interface{}:
		overrideSlice, ok := override.([]interface{})
		if !ok {
			return DeepCopy(override)
		}

		return DeepCopy(overrideSlice)
	default:
		return DeepCopy(override)
	}
}

func DeepCopy(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			result[key] = DeepCopy(value)
		}

		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = DeepCopy(item)
		}

		return result
	default:
		return v
	}
}

func NormalizeYAML(data []byte) (interface{}, error) {
	var content interface{}
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	return normalize(content), nil
}

func normalize(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			result[key] = normalize(value)
		}

		return result
	case map[interface{}]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			result[fmt.Sprint(key)] = normalize(value)
		}

		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = normalize(item)
		}

		return result
	default:
		return v
	}
}

// HasContent reports whether raw configuration bytes carry an actual
// document. Empty and comment-only files do not.
func HasContent(data []byte) bool {
	if len(strings.TrimSpace(string(data))) == 0 {
		return false
	}

	var content interface{}
	if err := yaml.Unmarshal(data, &content); err != nil {
		// Unparseable YAML counts as content, the decode step reports it.
		return true
	}

	switch v := content.(type) {
	case nil:
		return false
	case map[string]interface{}:
		return len(v) > 0
	case []interface{}:
		return len(v) > 0
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return true
	}
}
