package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/mocks"
	"github.com/avc-dev/terabis-bot/internal/model"
)

func TestHandle_Routing(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		expect func(service *mocks.MockBotService, msg model.InboundMessage)
	}{
		{
			name: "Start command",
			text: "/start",
			expect: func(service *mocks.MockBotService, msg model.InboundMessage) {
				service.EXPECT().Start(mock.Anything, msg).Return(nil).Once()
			},
		},
		{
			name: "Connect command passes key argument",
			text: "/connect my-api-key",
			expect: func(service *mocks.MockBotService, msg model.InboundMessage) {
				service.EXPECT().Connect(mock.Anything, msg, "my-api-key").Return(nil).Once()
			},
		},
		{
			name: "Connect command without argument",
			text: "/connect",
			expect: func(service *mocks.MockBotService, msg model.InboundMessage) {
				service.EXPECT().Connect(mock.Anything, msg, "").Return(nil).Once()
			},
		},
		{
			name: "Command with bot mention suffix",
			text: "/disconnect@terabis_bot",
			expect: func(service *mocks.MockBotService, msg model.InboundMessage) {
				service.EXPECT().Disconnect(mock.Anything, msg).Return(nil).Once()
			},
		},
		{
			name: "View command",
			text: "/view",
			expect: func(service *mocks.MockBotService, msg model.InboundMessage) {
				service.EXPECT().View(mock.Anything, msg).Return(nil).Once()
			},
		},
		{
			name: "Help command",
			text: "/help",
			expect: func(service *mocks.MockBotService, msg model.InboundMessage) {
				service.EXPECT().Help(mock.Anything, msg).Return(nil).Once()
			},
		},
		{
			name: "Commands command",
			text: "/commands",
			expect: func(service *mocks.MockBotService, msg model.InboundMessage) {
				service.EXPECT().Commands(mock.Anything, msg).Return(nil).Once()
			},
		},
		{
			name: "Broadcast to everyone",
			text: "/broadcast Scheduled maintenance tonight",
			expect: func(service *mocks.MockBotService, msg model.InboundMessage) {
				service.EXPECT().
					Broadcast(mock.Anything, msg, "Scheduled maintenance tonight", model.ScopeAll).
					Return(nil).
					Once()
			},
		},
		{
			name: "Broadcast to credentialed users",
			text: "/broadcast_credentialed New feature is live",
			expect: func(service *mocks.MockBotService, msg model.InboundMessage) {
				service.EXPECT().
					Broadcast(mock.Anything, msg, "New feature is live", model.ScopeCredentialed).
					Return(nil).
					Once()
			},
		},
		{
			name: "Plain text goes to link conversion",
			text: "https://terabox.com/s/abc123",
			expect: func(service *mocks.MockBotService, msg model.InboundMessage) {
				service.EXPECT().ConvertLinks(mock.Anything, msg).Return(nil).Once()
			},
		},
		{
			name: "Unknown command goes to link conversion",
			text: "/unknown",
			expect: func(service *mocks.MockBotService, msg model.InboundMessage) {
				service.EXPECT().ConvertLinks(mock.Anything, msg).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockBotService(t)
			msg := model.InboundMessage{ChatID: 1, UserID: 42, Text: tt.text}

			service.EXPECT().ObserveUser(mock.Anything, msg).Once()
			tt.expect(service, msg)

			h := New(service, zap.NewNop(), nil)
			h.Handle(context.Background(), msg)
		})
	}
}

func TestHandle_MediaMessageGoesToConversion(t *testing.T) {
	service := mocks.NewMockBotService(t)
	msg := model.InboundMessage{
		ChatID: 1,
		UserID: 42,
		Text:   "https://terabox.com/s/abc123",
		Media:  model.MediaVideo,
		FileID: "video-1",
	}

	service.EXPECT().ObserveUser(mock.Anything, msg).Once()
	service.EXPECT().ConvertLinks(mock.Anything, msg).Return(nil).Once()

	h := New(service, zap.NewNop(), nil)
	h.Handle(context.Background(), msg)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		command string
		args    string
	}{
		{name: "Bare command", text: "/start", command: "/start", args: ""},
		{name: "Command with argument", text: "/connect abc", command: "/connect", args: "abc"},
		{name: "Mention is stripped", text: "/view@terabis_bot", command: "/view", args: ""},
		{name: "Multiline broadcast", text: "/broadcast line one\nline two", command: "/broadcast", args: "line one\nline two"},
		{name: "Plain text", text: "hello", command: "", args: "hello"},
		{name: "Empty text", text: "", command: "", args: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, args := parseCommand(tt.text)

			assert.Equal(t, tt.command, command)
			assert.Equal(t, tt.args, args)
		})
	}
}
