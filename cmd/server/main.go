package main

import (
	"log"
	"net/http"
	"os"

	"credcheck/internal/db"
	"credcheck/internal/logcache"
	"credcheck/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	db.Init()
	logcache.Init()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router.RegisterRouter()))
}
