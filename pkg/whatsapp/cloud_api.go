package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rioserver/internal/utils"
)

// DefaultBaseURL is the Meta Graph API endpoint for the WhatsApp
// Business Cloud API.
const DefaultBaseURL = "https://graph.facebook.com/v22.0"

// CloudAPIProvider calls the Meta WhatsApp Cloud API directly over
// HTTP; no official Go SDK exists for it.
type CloudAPIProvider struct {
	BaseURL string

	phoneNumberID string
	accessToken   string
	client        *http.Client
}

func NewCloudAPIProvider(phoneNumberID, accessToken string) *CloudAPIProvider {
	return &CloudAPIProvider{
		BaseURL:       DefaultBaseURL,
		phoneNumberID: phoneNumberID,
		accessToken:   accessToken,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type textPayload struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             textContent `json:"text"`
}

type textContent struct {
	Body string `json:"body"`
}

type templatePayload struct {
	MessagingProduct string          `json:"messaging_product"`
	To               string          `json:"to"`
	Type             string          `json:"type"`
	Template         templateContent `json:"template"`
}

type templateContent struct {
	Name       string              `json:"name"`
	Language   templateLanguage    `json:"language"`
	Components []templateComponent `json:"components,omitempty"`
}

type templateLanguage struct {
	Code string `json:"code"`
}

type templateComponent struct {
	Type       string              `json:"type"`
	Parameters []templateParameter `json:"parameters"`
}

type templateParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (p *CloudAPIProvider) SendText(ctx context.Context, to, body string) error {
	if p.phoneNumberID == "" || p.accessToken == "" {
		return utils.NewConfigurationError("WhatsApp credentials are not configured")
	}
	if to == "" {
		return utils.NewConfigurationError("WhatsApp recipient is missing")
	}

	payload := textPayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             textContent{Body: body},
	}
	return p.post(ctx, payload, "WhatsApp API error")
}

func (p *CloudAPIProvider) SendTemplate(ctx context.Context, req *TemplateRequest) error {
	if p.phoneNumberID == "" || p.accessToken == "" {
		return utils.NewConfigurationError("WhatsApp credentials are not configured")
	}
	if req.To == "" {
		return utils.NewConfigurationError("WhatsApp recipient is missing")
	}
	if req.TemplateName == "" {
		return utils.NewConfigurationError("WhatsApp template name is missing")
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	payload := templatePayload{
		MessagingProduct: "whatsapp",
		To:               req.To,
		Type:             "template",
		Template: templateContent{
			Name:     req.TemplateName,
			Language: templateLanguage{Code: language},
		},
	}
	if len(req.BodyParams) > 0 {
		params := make([]templateParameter, 0, len(req.BodyParams))
		for _, text := range req.BodyParams {
			params = append(params, templateParameter{Type: "text", Text: text})
		}
		payload.Template.Components = []templateComponent{
			{Type: "body", Parameters: params},
		}
	}
	return p.post(ctx, payload, "WhatsApp template error")
}

func (p *CloudAPIProvider) post(ctx context.Context, payload interface{}, errPrefix string) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal whatsapp payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", p.BaseURL, p.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create whatsapp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		// Transport-level failure: no response, no status to carry.
		return utils.NewNotificationError(fmt.Sprintf("%s: %s", errPrefix, err.Error()), 0)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return utils.NewNotificationError(
			fmt.Sprintf("%s %d: %s", errPrefix, resp.StatusCode, string(body)), resp.StatusCode)
	}
	return nil
}
