package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"platter/db"
	"platter/importer"
	"platter/middleware"
	"platter/rdx"
	"platter/routes"
)

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[%s] %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Write([]byte("OK"))
}

func setupRouter() http.Handler {
	router := httprouter.New()
	router.GET("/health", healthCheck)

	routes.AddRecipeRoutes(router)
	routes.AddStaticRoutes(router)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	return middleware.Recover(
		middleware.RequestID(
			loggingMiddleware(
				securityHeaders(
					c.Handler(router)))))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	seedPath := flag.String("seed", "", "path to a recipe dataset; reseed the collection and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	ctx := context.Background()

	mongoURI := getEnv("MONGODB_URI", "mongodb://localhost:27017")
	if err := db.Connect(ctx, mongoURI); err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()
	log.Println("connected to MongoDB")

	redisURL := getEnv("REDIS_URL", "redis://localhost:6379")
	if err := rdx.Init(ctx, redisURL); err != nil {
		log.Fatalf("failed to connect to Redis: %v", err)
	}
	defer rdx.Close()
	log.Println("connected to Redis")

	if *seedPath != "" {
		if err := importer.Run(ctx, *seedPath); err != nil {
			log.Fatalf("import failed: %v", err)
		}
		return
	}

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Printf("ensure indexes: %v", err)
	}

	addr := ":" + getEnv("PORT", "8080")
	server := &http.Server{
		Addr:              addr,
		Handler:           setupRouter(),
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("server started on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("could not listen on %s: %v", addr, err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)
	<-shutdownChan

	log.Println("shutdown signal received, shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly")
}
