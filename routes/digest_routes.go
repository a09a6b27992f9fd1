package routes

import (
	"symbi_server/controllers"
	"symbi_server/services"

	"github.com/gorilla/mux"
)

// RegisterDigestRoutes exposes the scheduled digest run under /api/digest
func RegisterDigestRoutes(r *mux.Router, digestService *services.DigestService) {
	controller := controllers.NewDigestController(digestService)

	digestRouter := r.PathPrefix("/api/digest").Subrouter()

	digestRouter.HandleFunc("/run", controller.HandleRunDigest).Methods("POST")
}
