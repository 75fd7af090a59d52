package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type BuzzHttpServer struct {
	addr      string
	router    *Router
	muxRouter *mux.Router
}

func NewBuzzHttpServer(addr string, router *Router, muxRouter *mux.Router) *BuzzHttpServer {
	return &BuzzHttpServer{
		addr:      addr,
		router:    router,
		muxRouter: muxRouter,
	}
}

// Start registers the routes, serves until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *BuzzHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.muxRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		log.Printf("[BuzzHttpServer] Listening on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	log.Println("[BuzzHttpServer] Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[BuzzHttpServer] Server exiting")
}
