package snapshots

import (
	_ "embed"
	"encoding/json"

	"thoth-hr/internal/core/domain"
)

//go:embed data.json
var seedData []byte

// Seed returns the bundled seed dataset. It is consumed once, on the
// first-ever load when no persisted snapshot exists.
func Seed() domain.Snapshot {
	var snap domain.Snapshot
	if err := json.Unmarshal(seedData, &snap); err != nil {
		// The seed dataset is compiled into the binary; a parse failure
		// is a build defect, not a runtime condition.
		panic("snapshots: invalid embedded seed dataset: " + err.Error())
	}
	return snap
}
