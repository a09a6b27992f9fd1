package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"symbi_server/services"
)

// DigestController exposes the daily digest run to the external scheduler
type DigestController struct {
	DigestService *services.DigestService
}

// NewDigestController creates a new instance of DigestController
func NewDigestController(digestService *services.DigestService) *DigestController {
	return &DigestController{DigestService: digestService}
}

// HandleRunDigest scans all chats and queues nudge digests for unanswered
// recent messages. Invoked once daily by the scheduler collaborator.
func (c *DigestController) HandleRunDigest(w http.ResponseWriter, r *http.Request) {
	queued, err := c.DigestService.RunDailyDigest(r.Context())
	if err != nil {
		log.Printf("❌ Digest run failed: %v", err)
		http.Error(w, `{"error": "Digest run failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"queued": queued,
	})
}
