package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mbenaiss/whatsapp-helpdesk/services"
)

// NewMCPServer creates a new MCP server acting on the dashboard session sid
func NewMCPServer(name string, version string, service services.Service, sid string) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
	)

	h := &handler{service: service, sid: sid}

	listContactsTool := mcp.NewTool("list_contacts",
		mcp.WithDescription("List the records of one kind: attendants, clients, bots or instances"),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Record kind, one of 'attendant', 'client', 'bot' or 'instance' (plural accepted)"),
		),
	)

	addContactTool := mcp.NewTool("add_contact",
		mcp.WithDescription("Add a record. New attendants, clients and bots start offline, new instances start disconnected"),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Record kind, one of 'attendant', 'client', 'bot' or 'instance'"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Display name"),
		),
		mcp.WithString("phone",
			mcp.Required(),
			mcp.Description("Phone number, or the instance number for instances"),
		),
	)

	deleteContactTool := mcp.NewTool("delete_contact",
		mcp.WithDescription("Delete a record by id. Deleting an unknown id does nothing"),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Record kind, one of 'attendant', 'client', 'bot' or 'instance'"),
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Id of the record to delete"),
		),
	)

	listChatsTool := mcp.NewTool("list_chats",
		mcp.WithDescription("List client chats with the client name and the last message"),
	)

	getChatTool := mcp.NewTool("get_chat",
		mcp.WithDescription("Retrieve every message of a chat in order"),
		mcp.WithString("chat_id",
			mcp.Required(),
			mcp.Description("Id of the chat to retrieve"),
		),
	)

	getTranslationsTool := mcp.NewTool("get_translations",
		mcp.WithDescription("Retrieve the UI string table of a language. Unknown languages get English"),
		mcp.WithString("lang",
			mcp.Required(),
			mcp.Description("Language code: 'en', 'es' or 'pt'"),
		),
	)

	getInstanceLinkTool := mcp.NewTool("get_instance_link",
		mcp.WithDescription("Retrieve the wa.me pairing link of a WhatsApp instance"),
		mcp.WithString("instance_id",
			mcp.Required(),
			mcp.Description("Id of the instance"),
		),
	)

	s.AddTool(listContactsTool, h.listContacts)
	s.AddTool(addContactTool, h.addContact)
	s.AddTool(deleteContactTool, h.deleteContact)
	s.AddTool(listChatsTool, h.listChats)
	s.AddTool(getChatTool, h.getChat)
	s.AddTool(getTranslationsTool, h.getTranslations)
	s.AddTool(getInstanceLinkTool, h.getInstanceLink)

	return s
}

// StartMCPServer starts the MCP server
func StartMCPServer(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
