package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"

	"termdex/internal/client"
	"termdex/internal/config"
	"termdex/internal/tui"
)

func main() {
	baseURL := os.Getenv("TERMDEX_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	theme := config.LoadTheme()
	api := client.New(baseURL)

	program := tea.NewProgram(tui.InitialModel(api, theme.Dark), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("error running program: %v", err)
	}
}
