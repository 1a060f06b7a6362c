package main

import (
	"context"
	"log"

	"github.com/mbenaiss/whatsapp-helpdesk/config"
	"github.com/mbenaiss/whatsapp-helpdesk/login"
	"github.com/mbenaiss/whatsapp-helpdesk/logger"
	"github.com/mbenaiss/whatsapp-helpdesk/mcp"
	"github.com/mbenaiss/whatsapp-helpdesk/metrics"
	"github.com/mbenaiss/whatsapp-helpdesk/services"
	"github.com/mbenaiss/whatsapp-helpdesk/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// stdout carries the MCP protocol, zap writes to stderr
	logg, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logg.Sync()

	sessions := session.NewManager(session.NewMemoryStore(), cfg.DefaultLanguage, logg)
	service := services.NewService(sessions, metrics.New(), logg)

	sid := sessions.NewID()
	_, err = service.Login(context.Background(), sid, login.Form{
		Name:  cfg.OperatorName,
		Phone: cfg.OperatorPhone,
		Role:  cfg.OperatorRole,
	})
	if err != nil {
		logg.Fatalw("Failed to log in MCP operator", "name", cfg.OperatorName, "error", err)
	}

	mcpServer := mcp.NewMCPServer("WhatsApp Helpdesk MCP", "1.0.0", service, sid)
	if err := mcp.StartMCPServer(mcpServer); err != nil {
		logg.Fatalw("Failed to start MCP server", "error", err)
	}
}
