package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Monirul480/Language-club-serversite/internal/auth"
	"github.com/Monirul480/Language-club-serversite/internal/config"
	"github.com/Monirul480/Language-club-serversite/internal/handlers"
	"github.com/Monirul480/Language-club-serversite/internal/middleware"
	"github.com/Monirul480/Language-club-serversite/internal/store"
	"github.com/Monirul480/Language-club-serversite/internal/utils"
)

// SetupRouter wires stores, middleware, and handlers onto the paths the
// frontend already calls. Paths and methods are load-bearing; do not rename
// them without a frontend release.
func SetupRouter(client *mongo.Client, cfg config.Config) *mux.Router {
	users := store.NewUserStore(client, cfg.DatabaseName)
	classes := store.NewClassStore(client, cfg.DatabaseName)
	orders := store.NewOrderStore(client, cfg.DatabaseName)

	tokens := auth.NewTokenService(cfg.AccessTokenSecret)
	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireAdmin(users)

	var receipts handlers.ReceiptSender
	if mailer := utils.NewMailer(cfg.SMTP); mailer != nil {
		receipts = mailer
	}

	userHandler := handlers.NewUserHandler(users, tokens)
	classHandler := handlers.NewClassHandler(classes)
	orderHandler := handlers.NewOrderHandler(orders, receipts)

	router := mux.NewRouter()

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("server is running"))
	}).Methods("GET")

	// identity and users
	router.HandleFunc("/jwt", userHandler.IssueToken).Methods("POST")
	router.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	router.Handle("/users", requireAuth(requireAdmin(http.HandlerFunc(userHandler.GetUsers)))).Methods("GET")
	router.Handle("/users/admin/{email}", requireAuth(http.HandlerFunc(userHandler.CheckRole))).Methods("GET")
	router.Handle("/users/admin/{id}", requireAuth(requireAdmin(http.HandlerFunc(userHandler.MakeAdmin)))).Methods("PATCH")
	router.Handle("/users/instructor/{id}", requireAuth(requireAdmin(http.HandlerFunc(userHandler.MakeInstructor)))).Methods("PATCH")
	router.Handle("/users/{id}", requireAuth(requireAdmin(http.HandlerFunc(userHandler.DeleteUser)))).Methods("DELETE")
	router.HandleFunc("/allInstructor", userHandler.GetInstructors).Methods("GET")

	// classes and seat inventory
	router.HandleFunc("/activeAllClass", classHandler.GetActiveClasses).Methods("GET")
	router.HandleFunc("/allClass", classHandler.GetAllClasses).Methods("GET")
	router.HandleFunc("/allClass", classHandler.CreateClass).Methods("POST")
	router.Handle("/allClass/{id}", requireAuth(requireAdmin(http.HandlerFunc(classHandler.DeleteClass)))).Methods("DELETE")
	router.Handle("/updateSates/{id}", requireAuth(http.HandlerFunc(classHandler.DecrementSeat))).Methods("PATCH")
	router.Handle("/activeStatus/{id}", requireAuth(requireAdmin(http.HandlerFunc(classHandler.SetActive)))).Methods("PATCH")
	router.Handle("/pendingStatus/{id}", requireAuth(requireAdmin(http.HandlerFunc(classHandler.SetPending)))).Methods("PATCH")
	router.HandleFunc("/classFeedback/{id}", classHandler.SetFeedback).Methods("PATCH")
	router.Handle("/instructor/{email}", requireAuth(http.HandlerFunc(classHandler.GetInstructorClasses))).Methods("GET")

	// enrollment orders
	router.HandleFunc("/orderCourse", orderHandler.CreateOrder).Methods("POST")
	router.Handle("/orderCourse/{email}", requireAuth(http.HandlerFunc(orderHandler.GetUnpaidOrders))).Methods("GET")
	router.Handle("/orderPaid/{email}", requireAuth(http.HandlerFunc(orderHandler.GetPaidOrders))).Methods("GET")
	router.Handle("/orderCourse/{id}", requireAuth(http.HandlerFunc(orderHandler.DeleteOrder))).Methods("DELETE")
	router.Handle("/orderCourse/{id}", requireAuth(http.HandlerFunc(orderHandler.MarkPaid))).Methods("PATCH")

	return router
}
