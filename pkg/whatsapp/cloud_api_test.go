package whatsapp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rioserver/internal/utils"
)

func TestSendTemplateHitsMessagesEndpoint(t *testing.T) {
	var captured templatePayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/123456/messages", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"messages":[{"id":"wamid.test"}]}`))
	}))
	defer srv.Close()

	p := NewCloudAPIProvider("123456", "token-abc")
	p.BaseURL = srv.URL

	err := p.SendTemplate(context.Background(), &TemplateRequest{
		To:           "250788000000",
		TemplateName: "flight_admin",
		BodyParams:   []string{"a", "b", "c", "d", "e"},
	})
	require.NoError(t, err)

	assert.Equal(t, "whatsapp", captured.MessagingProduct)
	assert.Equal(t, "template", captured.Type)
	assert.Equal(t, "250788000000", captured.To)
	assert.Equal(t, "flight_admin", captured.Template.Name)
	// Language defaults to "en" when the request leaves it empty.
	assert.Equal(t, "en", captured.Template.Language.Code)
	require.Len(t, captured.Template.Components, 1)
	assert.Equal(t, "body", captured.Template.Components[0].Type)
	assert.Len(t, captured.Template.Components[0].Parameters, 5)
	assert.Equal(t, "text", captured.Template.Components[0].Parameters[0].Type)
}

func TestSendTemplateOmitsComponentsWithoutParams(t *testing.T) {
	var captured map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewCloudAPIProvider("123456", "token-abc")
	p.BaseURL = srv.URL

	err := p.SendTemplate(context.Background(), &TemplateRequest{
		To:           "250788000000",
		TemplateName: "hello_world",
		Language:     "en_US",
	})
	require.NoError(t, err)

	tpl := captured["template"].(map[string]interface{})
	assert.Equal(t, "en_US", tpl["language"].(map[string]interface{})["code"])
	_, hasComponents := tpl["components"]
	assert.False(t, hasComponents)
}

func TestSendTemplateNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"template not found"}}`))
	}))
	defer srv.Close()

	p := NewCloudAPIProvider("123456", "token-abc")
	p.BaseURL = srv.URL

	err := p.SendTemplate(context.Background(), &TemplateRequest{
		To:           "250788000000",
		TemplateName: "missing_template",
	})
	require.Error(t, err)
	assert.True(t, utils.IsNotification(err))
	assert.Contains(t, err.Error(), "WhatsApp template error 400")
	assert.Contains(t, err.Error(), "template not found")

	var notif *utils.NotificationError
	require.True(t, errors.As(err, &notif))
	assert.Equal(t, http.StatusBadRequest, notif.StatusCode)
}

func TestSendTextPayload(t *testing.T) {
	var captured textPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewCloudAPIProvider("123456", "token-abc")
	p.BaseURL = srv.URL

	require.NoError(t, p.SendText(context.Background(), "250788000000", "hello"))
	assert.Equal(t, "text", captured.Type)
	assert.Equal(t, "hello", captured.Text.Body)
}

func TestCloudAPIConfigurationErrors(t *testing.T) {
	ctx := context.Background()

	p := NewCloudAPIProvider("", "")
	err := p.SendTemplate(ctx, &TemplateRequest{To: "250788000000", TemplateName: "x"})
	assert.True(t, utils.IsConfiguration(err))
	assert.Contains(t, err.Error(), "WhatsApp credentials are not configured")

	p = NewCloudAPIProvider("123456", "token-abc")
	err = p.SendTemplate(ctx, &TemplateRequest{TemplateName: "x"})
	assert.True(t, utils.IsConfiguration(err))
	assert.Contains(t, err.Error(), "WhatsApp recipient is missing")

	err = p.SendTemplate(ctx, &TemplateRequest{To: "250788000000"})
	assert.True(t, utils.IsConfiguration(err))
	assert.Contains(t, err.Error(), "WhatsApp template name is missing")

	err = p.SendText(ctx, "", "hello")
	assert.True(t, utils.IsConfiguration(err))
}

func TestAttemptWrappers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewCloudAPIProvider("123456", "token-abc")
	p.BaseURL = srv.URL

	res := Attempt(context.Background(), p, "250788000000", "hello")
	assert.True(t, res.Success)
	assert.Empty(t, res.Message)

	res = AttemptTemplate(context.Background(), p, &TemplateRequest{To: "250788000000", TemplateName: "x"})
	assert.True(t, res.Success)

	// Errors never escape the wrappers; they become failed results.
	unconfigured := NewCloudAPIProvider("", "")
	res = AttemptTemplate(context.Background(), unconfigured, &TemplateRequest{To: "x", TemplateName: "y"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "WhatsApp credentials are not configured")
}
