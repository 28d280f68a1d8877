package main

import (
	"github.com/RohitValiveti/Fitness-Tracker/config"
	"github.com/RohitValiveti/Fitness-Tracker/routes"
	"github.com/RohitValiveti/Fitness-Tracker/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter(config.DB, utils.NewS3Store())
	r.Run(":8000")
}
