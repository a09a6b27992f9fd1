package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"symbi_server/models"
	"symbi_server/services"
	"symbi_server/utils"
)

// MatchController serves match records with their rendered explanations
type MatchController struct {
	Store services.MatchStore
}

// NewMatchController creates a new instance of MatchController
func NewMatchController(store services.MatchStore) *MatchController {
	return &MatchController{Store: store}
}

// matchView is a match record with display-ready explanation statements
type matchView struct {
	models.Match
	Explanations []explanationView `json:"explanations"`
}

type explanationView struct {
	utils.MatchExplanation
	Display string `json:"display"`
}

// HandleGetMatches returns the authenticated user's match records annotated
// with parsed explanations. Descriptions that fail to parse degrade to a
// generic statement instead of failing the whole response.
func (c *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		http.Error(w, `{"error": "Authentication required"}`, http.StatusUnauthorized)
		return
	}

	matches, err := c.Store.MatchesForUser(r.Context(), userID)
	if err != nil {
		log.Printf("❌ Failed to fetch matches for %s: %v", userID, err)
		http.Error(w, `{"error": "Internal error"}`, http.StatusInternalServerError)
		return
	}

	views := make([]matchView, 0, len(matches))
	for _, m := range matches {
		view := matchView{Match: m}
		for _, description := range m.MatchedOn {
			parsed := utils.ParseMatchDescription(description)
			view.Explanations = append(view.Explanations, explanationView{
				MatchExplanation: parsed,
				Display:          parsed.DisplayText(),
			})
		}
		views = append(views, view)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}
