package routes

import (
	"symbi_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up avatar upload/read URL routes under /api/avatars
func RegisterS3Routes(r *mux.Router) {
	s3Router := r.PathPrefix("/api/avatars").Subrouter()

	s3Router.HandleFunc("/upload-url", controllers.HandleGenerateAvatarUploadURL).Methods("POST")
	s3Router.HandleFunc("/read-url", controllers.HandleGenerateAvatarReadURL).Methods("GET")
}
