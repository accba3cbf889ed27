package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/todolist/internal/client/config"
	"github.com/dmitrijs2005/todolist/internal/client/controller"
	"github.com/dmitrijs2005/todolist/internal/client/gateway"
	"github.com/dmitrijs2005/todolist/internal/client/services"
	"github.com/dmitrijs2005/todolist/internal/client/session"
	"github.com/dmitrijs2005/todolist/internal/client/tui"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()

	sess := session.New()
	gw := gateway.New(cfg.ServerURL)
	ctrl := controller.New(gw, sess)
	auth := services.NewAuthService(gw, sess)

	p := tea.NewProgram(tui.New(ctrl, auth), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("%v", err)
	}

}
