package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/damianp1350/ToDoAPI/api"
	"github.com/damianp1350/ToDoAPI/config"
	"github.com/damianp1350/ToDoAPI/database"
	"github.com/damianp1350/ToDoAPI/handler"
	"github.com/damianp1350/ToDoAPI/service"

	_ "github.com/damianp1350/ToDoAPI/docs"
)

// @title ToDo API
// @version 1.0
// @description Task-management HTTP service exposing CRUD operations over todos.
func main() {
	configPath := flag.String("config", "todoapi.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	svc := service.NewTodoService(db)
	h := handler.NewHandler(svc)
	mux := api.SetupRoutes(h)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	go func() {
		log.Printf("Server started on http://localhost%s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := server.Close(); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
