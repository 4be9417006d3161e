package main

import (
	"log"
	"os"

	"github.com/reelfolio/core/cmd/reelfolio/commands"
)

// @title Reelfolio API
// @version 1.0
// @description Projects and income records behind the Reelfolio portfolio site

// @BasePath /api

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
