package main

import (
	"fmt"
	"log"

	"os-scheduler-simulator/api"
	"os-scheduler-simulator/config"
	"os-scheduler-simulator/internal/schedulers"
)

func main() {
	cfg := config.GetSchedulerConfig()
	schedulers.SetTrace(cfg.Trace)

	app := api.NewApp(cfg, true)
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
