package main

import (
	"alcyxob/workout-planner/internal/api"
	"alcyxob/workout-planner/internal/config"
	"alcyxob/workout-planner/internal/repository"
	"alcyxob/workout-planner/internal/repository/local"
	mongorepo "alcyxob/workout-planner/internal/repository/mongo"
	"alcyxob/workout-planner/internal/repository/postgres"
	"alcyxob/workout-planner/internal/store"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Workout Planner Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Local store (standalone backend and fallback cache) ---
	localGW, err := local.New(cfg.Storage.Dir)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize local storage: %v", err)
	}

	// --- Gateway selection ---
	// Decided once from configuration presence and held for the process
	// lifetime: Postgres DSN wins, then Mongo URI, else the local store.
	var gateway repository.Gateway = localGW
	remote := false

	switch {
	case cfg.Postgres.DSN != "":
		pool, err := postgres.Connect(context.Background(), cfg.Postgres.DSN)
		if err != nil {
			log.Fatalf("FATAL: Could not connect to PostgreSQL: %v", err)
		}
		defer pool.Close()
		pg := postgres.NewGateway(pool)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("FATAL: Could not ensure PostgreSQL schema: %v", err)
		}
		gateway = pg
		remote = true
		log.Println("Using PostgreSQL persistence.")

	case cfg.Database.URI != "":
		dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongorepo.DisconnectDB(dbClient); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}()
		gateway = mongorepo.NewGateway(dbClient.Database(cfg.Database.Name))
		remote = true
		log.Println("Using MongoDB persistence.")

	default:
		log.Printf("No remote backend configured, using local storage at %s.", cfg.Storage.Dir)
	}

	gateway = repository.Instrument(gateway)

	// --- Application store ---
	st := store.New(gateway, localGW, remote)

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	st.LoadData(loadCtx)
	loadCancel()

	// --- Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.Auth.Secret, st)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	// Drain fire-and-forget saves before closing backend connections.
	st.Wait()

	log.Println("Server exiting.")
}
