package api

import (
	_ "embed" // Required for go:embed
	"encoding/json"
	"fmt"

	"github.com/verte-zerg/folio/internal/model"
)

//go:embed fallback.json
var fallbackJSON []byte

// FallbackPortfolio returns the built-in portfolio used when no source is reachable.
func FallbackPortfolio() model.Portfolio {
	var p model.Portfolio
	if err := json.Unmarshal(fallbackJSON, &p); err != nil {
		panic(fmt.Sprintf("invalid embedded fallback data: %v", err))
	}
	return p
}
