package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mindful-campus-be/internal/config"
	"mindful-campus-be/internal/constant"
	"mindful-campus-be/internal/model"
	"mindful-campus-be/internal/pkg/logger"
	"mindful-campus-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerRoutesChatFailuresToChatLog(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	db, err := database.OpenInMemory("container_chat_log", model.All()...)
	require.NoError(t, err)

	chatLog := filepath.Join(t.TempDir(), "chat.log")
	cfg := &config.Config{
		Chat: config.ChatConfig{
			APIKey:         "sk-test",
			BaseURL:        upstream.URL,
			Model:          "gpt-4o-mini",
			TimeoutSeconds: 2,
			LogFilePath:    chatLog,
		},
		Booking: config.BookingConfig{
			JoinLinkBaseURL: "https://mindful-campus.local/join",
			EventsTopic:     constant.SessionBookedEvent,
		},
	}

	c, err := NewContainer(db, cfg, logger.NewNopLogger())
	require.NoError(t, err)
	defer c.Close()

	app := fiber.New()
	c.ChatController.RegisterRoutes(app.Group("/api"))

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	data, err := os.ReadFile(chatLog)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Using fallback reply")
	assert.Contains(t, string(data), `"module":"CHAT"`)
}
