package controller

import (
	"log"
	"net/http"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/service"
)

// SyncController handles the manual push/pull actions. These are the only
// endpoints that block the caller on the remote store; the admin app shows a
// busy indicator while they run.
type SyncController struct {
	sync *service.SyncService
}

// NewSyncController creates a new SyncController.
func NewSyncController(sync *service.SyncService) *SyncController {
	return &SyncController{sync: sync}
}

// PushAll handles POST /admin/sync/push.
func (c *SyncController) PushAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	report, err := c.sync.PushAll(r.Context())
	if err != nil {
		writeServiceError(w, "PushAll", err)
		return
	}
	log.Printf("🔄 manual push: %d entities transferred", report.Total())
	writeJSON(w, report)
}

// PullAll handles POST /admin/sync/pull.
func (c *SyncController) PullAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := c.sync.PullAll(r.Context()); err != nil {
		writeServiceError(w, "PullAll", err)
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}
