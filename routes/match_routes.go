package routes

import (
	"symbi_server/controllers"
	"symbi_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match records under /api/matches
func RegisterMatchRoutes(r *mux.Router, store services.MatchStore) {
	controller := controllers.NewMatchController(store)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()

	matchRouter.HandleFunc("", controller.HandleGetMatches).Methods("GET")
}
