package handlers

import (
	"github.com/adikhanov/bondify-backend/internal/config"
	"github.com/adikhanov/bondify-backend/pkg/middleware"
	"github.com/gorilla/mux"
)

// NewRouter registers every route of the HTTP surface. The friend and user
// routes are unauthenticated; the auth gate is mounted on /me.
func NewRouter(cfg *config.Config, authHandler *AuthHandler, userHandler *UserHandler, friendHandler *FriendHandler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", HealthHandler).Methods("GET")
	router.HandleFunc("/jwt", authHandler.GenerateTokenHandler).Methods("POST")
	router.HandleFunc("/logout", authHandler.LogoutHandler).Methods("GET")

	router.HandleFunc("/user", userHandler.UpsertUserHandler).Methods("PUT")
	router.HandleFunc("/users", userHandler.GetUsersHandler).Methods("GET")

	router.HandleFunc("/sendFriendRequest", friendHandler.SendFriendRequestHandler).Methods("POST")
	router.HandleFunc("/friendRequests/{email}", friendHandler.GetPendingRequestsHandler).Methods("GET")
	router.HandleFunc("/friends/{email}", friendHandler.GetFriendsHandler).Methods("GET")
	router.HandleFunc("/updateFriendRequestStatus", friendHandler.AcceptFriendRequestHandler).Methods("PUT")
	router.HandleFunc("/declineFriendRequest", friendHandler.DeclineFriendRequestHandler).Methods("PUT")
	router.HandleFunc("/unfriend", friendHandler.UnfriendHandler).Methods("PUT")

	protected := router.PathPrefix("/me").Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protected.HandleFunc("", authHandler.MeHandler).Methods("GET")

	router.Use(middleware.LoggingMiddleware)

	return router
}
