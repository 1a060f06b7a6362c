package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mbenaiss/whatsapp-helpdesk/i18n"
	"github.com/mbenaiss/whatsapp-helpdesk/models"
	"github.com/mbenaiss/whatsapp-helpdesk/services"
	"github.com/mbenaiss/whatsapp-helpdesk/whatsapp"
)

type handler struct {
	service services.Service
	sid     string
}

func stringArg(request mcp.CallToolRequest, name string) (string, error) {
	v, ok := request.Params.Arguments[name].(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", name)
	}
	return v, nil
}

func kindArg(request mcp.CallToolRequest) (models.Kind, error) {
	s, err := stringArg(request, "kind")
	if err != nil {
		return "", err
	}

	kind, ok := models.ParseKind(s)
	if !ok {
		return "", fmt.Errorf("%q: %w", s, services.ErrUnknownKind)
	}
	return kind, nil
}

func textResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(string(data)), nil
}

func (h *handler) listContacts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := kindArg(request)
	if err != nil {
		return nil, err
	}

	st, err := h.service.State(ctx, h.sid)
	if err != nil {
		return nil, err
	}

	if kind == models.KindInstance {
		return textResult(st.Instances)
	}
	return textResult(st.Contacts(kind))
}

func (h *handler) addContact(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := kindArg(request)
	if err != nil {
		return nil, err
	}

	name, err := stringArg(request, "name")
	if err != nil {
		return nil, err
	}

	phone, err := stringArg(request, "phone")
	if err != nil {
		return nil, err
	}

	id, err := h.service.AddRecord(ctx, h.sid, kind, name, phone)
	if err != nil {
		return nil, err
	}

	result := map[string]interface{}{
		"success": id != "",
		"id":      id,
	}
	if id == "" {
		result["message"] = "name and phone are required"
	}

	return textResult(result)
}

func (h *handler) deleteContact(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := kindArg(request)
	if err != nil {
		return nil, err
	}

	id, err := stringArg(request, "id")
	if err != nil {
		return nil, err
	}

	if err := h.service.DeleteRecord(ctx, h.sid, kind, id); err != nil {
		return nil, err
	}

	return textResult(map[string]interface{}{
		"success": true,
	})
}

func (h *handler) listChats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := h.service.State(ctx, h.sid)
	if err != nil {
		return nil, err
	}

	return textResult(st.ChatList())
}

func (h *handler) getChat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chatID, err := stringArg(request, "chat_id")
	if err != nil {
		return nil, err
	}

	st, err := h.service.State(ctx, h.sid)
	if err != nil {
		return nil, err
	}

	chat, ok := st.Chat(chatID)
	if !ok {
		return nil, fmt.Errorf("chat %s: %w", chatID, services.ErrNotFound)
	}

	return textResult(chat)
}

func (h *handler) getTranslations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lang, err := stringArg(request, "lang")
	if err != nil {
		return nil, err
	}

	return textResult(i18n.Get(lang))
}

func (h *handler) getInstanceLink(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := stringArg(request, "instance_id")
	if err != nil {
		return nil, err
	}

	st, err := h.service.State(ctx, h.sid)
	if err != nil {
		return nil, err
	}

	in, ok := st.FindInstance(id)
	if !ok {
		return nil, fmt.Errorf("instance %s: %w", id, services.ErrNotFound)
	}

	link, err := whatsapp.Link(in.Number)
	if err != nil {
		return nil, fmt.Errorf("instance %s: %w", id, err)
	}

	return textResult(map[string]interface{}{
		"instance": in,
		"link":     link,
	})
}
