package main

import (
	"flag"
	"log"

	"booking-app/config"
	"booking-app/database"
	routes "booking-app/internal/app/http"
	"booking-app/internal/forms"
)

func main() {
	seed := flag.Bool("seed", false, "load the demo fixture set and exit")
	flag.Parse()

	config.LoadEnv()
	database.InitDB()

	if *seed {
		if err := database.Seed(database.DB); err != nil {
			log.Fatal("Seed error:", err)
		}
		log.Println("Seeded demo data")
		return
	}

	forms.RegisterValidators()

	r := routes.NewRouter("templates/**/*.html")

	r.Run(":" + config.PORT)
}
