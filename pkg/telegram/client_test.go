package telegram_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atlasboutique/storefront-platform/pkg/telegram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		var gotPath string

		var gotBody map[string]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path

			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := telegram.NewClientWithBaseURL("test-token", "12345", server.URL)

		err := client.SendMessage(t.Context(), "Restock alert")

		require.NoError(t, err)
		assert.Equal(t, "/bottest-token/sendMessage", gotPath)
		assert.Equal(t, "12345", gotBody["chat_id"])
		assert.Equal(t, "Restock alert", gotBody["text"])
	})

	t.Run("Failure - API Error Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"ok":false,"description":"chat not found"}`, http.StatusBadRequest)
		}))
		defer server.Close()

		client := telegram.NewClientWithBaseURL("test-token", "12345", server.URL)

		err := client.SendMessage(t.Context(), "Restock alert")

		require.Error(t, err)
		assert.ErrorContains(t, err, "chat not found")
	})

	t.Run("Failure - Missing Configuration", func(t *testing.T) {
		client := telegram.NewClientWithBaseURL("", "", "http://localhost:0")

		err := client.SendMessage(t.Context(), "Restock alert")

		require.Error(t, err)
		assert.ErrorContains(t, err, "not configured")
	})
}
