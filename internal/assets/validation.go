package assets

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ValidateStyle parses css and reports ErrInvalidStyle when the stylesheet
// is malformed. Blank input is valid and yields no rules.
func ValidateStyle(css string) error {
	if strings.TrimSpace(css) == "" {
		return nil
	}
	if _, err := parser.Parse(css); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	return nil
}
