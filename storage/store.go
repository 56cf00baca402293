package storage

import (
	"scolarium/core"
)

// Store is the sole gateway to the persisted document. Load always hands the
// caller a structurally-complete document; Save and Clear handle their own
// failures at this boundary (logged and alerted, never propagated), so an
// in-memory mutation is never rolled back on a failed write.
type Store interface {
	Load() core.AppData
	Save(doc core.AppData)
	Clear()
	// UpdateField performs load -> set field -> save and returns the
	// resulting full document. It only fails on an unknown field or a
	// value of the wrong type; the document is untouched in that case.
	UpdateField(field core.Field, value interface{}) (core.AppData, error)
}
