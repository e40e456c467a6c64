package cmd

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "todolist.com/todolist/internal/configs"
)

var rootCmd = &cobra.Command{
	Use:           "todolist",
	Short:         "To-do list API server and client",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to read .env file: %v", err)
	}
	return config.Load()
}
