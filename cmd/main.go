package main

import (
	"nutritrack/config"
	"nutritrack/routes"
	"nutritrack/services"
	"nutritrack/utils"
)

func main() {
	config.InitLogger()
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	r := routes.SetupRouter(config.DB, hub)
	r.Run(":8080")
}
