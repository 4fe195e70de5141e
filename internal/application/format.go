package application

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/truewebber/gitver/internal/domain/version"
)

type OutputFormat int

const (
	OutputText OutputFormat = iota
	OutputJSON
)

var errUnknownOutputFormat = errors.New("unknown output format")

// FormatResult renders the computed version. The text format prints the bare
// semantic version, or the full form when full is set. The json format prints
// the whole result document.
func FormatResult(result version.Result, format OutputFormat, full bool) (string, error) {
	switch format {
	case OutputText:
		if full {
			return result.FullSemVer, nil
		}

		return result.SemVer, nil
	case OutputJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal result: %w", err)
		}

		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %d", errUnknownOutputFormat, format)
	}
}
