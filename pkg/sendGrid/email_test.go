package sendGrid_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atlasboutique/storefront-platform/pkg/sendGrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sendgridV3Payload struct {
	Personalizations []struct {
		To      []map[string]string `json:"to"`
		Subject string              `json:"subject"`
	} `json:"personalizations"`
	From    map[string]string `json:"from"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func TestEmailServiceSend(t *testing.T) {

	newService := func(t *testing.T, handler http.HandlerFunc) (sendGrid.EmailService, *sendgridV3Payload) {
		t.Helper()

		payload := &sendgridV3Payload{}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(payload))
			handler(w, r)
		}))
		t.Cleanup(server.Close)

		service := sendGrid.NewEmailService("SG.test-api-key", "store@example.com", "Atlas Boutique")
		service.GetSendGridClient().Request.BaseURL = server.URL

		return service, payload
	}

	t.Run("Success - Payload Carries Recipient And Content", func(t *testing.T) {
		service, payload := newService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer SG.test-api-key", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusAccepted)
		})

		err := service.Send(t.Context(), &sendGrid.EmailRequest{
			To:      "jane@example.com",
			ToName:  "Jane Doe",
			Subject: "Chrono Classic is back in stock!",
			Content: "Grab yours before it sells out again.",
		})

		require.NoError(t, err)
		require.Len(t, payload.Personalizations, 1)
		assert.Equal(t, "jane@example.com", payload.Personalizations[0].To[0]["email"])
		assert.Equal(t, "Chrono Classic is back in stock!", payload.Personalizations[0].Subject)
		assert.Equal(t, "store@example.com", payload.From["email"])
		require.NotEmpty(t, payload.Content)
		assert.Equal(t, "text/plain", payload.Content[0].Type)
	})

	t.Run("Success - HTML Content Added When Present", func(t *testing.T) {
		service, payload := newService(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})

		err := service.Send(t.Context(), &sendGrid.EmailRequest{
			To:          "jane@example.com",
			Subject:     "Back in stock",
			Content:     "plain",
			HTMLContent: "<b>html</b>",
		})

		require.NoError(t, err)
		require.Len(t, payload.Content, 2)
		assert.Equal(t, "text/html", payload.Content[1].Type)
	})

	t.Run("Failure - API Error Status", func(t *testing.T) {
		service, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		err := service.Send(t.Context(), &sendGrid.EmailRequest{
			To:      "jane@example.com",
			Subject: "Back in stock",
			Content: "plain",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status code: 401")
	})
}
