package models

// SyncCount tallies one entity type's outcome during a push or pull.
type SyncCount struct {
	Transferred int `json:"transferred"`
	Failed      int `json:"failed"`
}

// SyncReport summarizes a manual push-all or pull-all run, per entity type.
type SyncReport struct {
	Producers SyncCount `json:"producers"`
	Lots      SyncCount `json:"lots"`
	Packs     SyncCount `json:"packs"`
	Promos    SyncCount `json:"promos"`
}

// Total returns the number of entities transferred across all types.
func (r SyncReport) Total() int {
	return r.Producers.Transferred + r.Lots.Transferred + r.Packs.Transferred + r.Promos.Transferred
}

// TotalFailed returns the number of entities that failed across all types.
func (r SyncReport) TotalFailed() int {
	return r.Producers.Failed + r.Lots.Failed + r.Packs.Failed + r.Promos.Failed
}
