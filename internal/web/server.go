package web

import (
	"fmt"
	"log"
	"net/http"

	"batchping/internal/database"
)

// Server handles web requests
type Server struct {
	db   *database.DB
	port int
}

// New creates a new web server
func New(db *database.DB, port int) *Server {
	return &Server{
		db:   db,
		port: port,
	}
}

// Start starts the web server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("/api/recent", s.handleRecent)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/outages", s.handleOutages)

	log.Printf("Web server starting on port %d", s.port)
	return http.ListenAndServe(fmt.Sprintf(":%d", s.port), mux)
}
