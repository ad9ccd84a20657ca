package whatsapp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"rioserver/internal/utils"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioProvider sends WhatsApp messages through Twilio's messaging
// API. Template sends map to Twilio content templates: TemplateName is
// the content SID and positional parameters become content variables
// keyed "1".."n".
type TwilioProvider struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioProvider(accountSID, authToken, fromNumber string) *TwilioProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioProvider{
		client:     client,
		fromNumber: fromNumber,
	}
}

func (t *TwilioProvider) SendText(ctx context.Context, to, body string) error {
	if t.fromNumber == "" {
		return utils.NewConfigurationError("WhatsApp credentials are not configured")
	}
	if to == "" {
		return utils.NewConfigurationError("WhatsApp recipient is missing")
	}

	params := &api.CreateMessageParams{}
	params.SetTo("whatsapp:" + to)
	params.SetFrom("whatsapp:" + t.fromNumber)
	params.SetBody(body)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return utils.NewNotificationError("WhatsApp API error: "+err.Error(), 0)
	}
	return nil
}

func (t *TwilioProvider) SendTemplate(ctx context.Context, req *TemplateRequest) error {
	if t.fromNumber == "" {
		return utils.NewConfigurationError("WhatsApp credentials are not configured")
	}
	if req.To == "" {
		return utils.NewConfigurationError("WhatsApp recipient is missing")
	}
	if req.TemplateName == "" {
		return utils.NewConfigurationError("WhatsApp template name is missing")
	}

	params := &api.CreateMessageParams{}
	params.SetTo("whatsapp:" + req.To)
	params.SetFrom("whatsapp:" + t.fromNumber)
	params.SetContentSid(req.TemplateName)

	if len(req.BodyParams) > 0 {
		variables := make(map[string]string, len(req.BodyParams))
		for i, text := range req.BodyParams {
			variables[strconv.Itoa(i+1)] = text
		}
		encoded, err := json.Marshal(variables)
		if err != nil {
			return fmt.Errorf("marshal content variables: %w", err)
		}
		params.SetContentVariables(string(encoded))
	}

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return utils.NewNotificationError("WhatsApp template error: "+err.Error(), 0)
	}
	return nil
}
