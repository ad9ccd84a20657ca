package whatsapp

import "context"

// Provider sends WhatsApp messages through one upstream API. Two
// implementations exist: the Meta Cloud API (default) and Twilio.
type Provider interface {
	// SendText delivers a free-text message.
	SendText(ctx context.Context, to, body string) error

	// SendTemplate delivers a pre-approved template with positional
	// body parameters.
	SendTemplate(ctx context.Context, req *TemplateRequest) error
}

// TemplateRequest names a provisioned template and its positional
// parameters. Language defaults to "en" when empty.
type TemplateRequest struct {
	To           string
	TemplateName string
	Language     string
	BodyParams   []string
}

// Result is the soft outcome of an attempted send.
type Result struct {
	Success bool
	Message string
}

// Attempt wraps SendText so callers can treat messaging as always
// non-throwing: any error becomes a failed Result.
func Attempt(ctx context.Context, p Provider, to, body string) Result {
	if err := p.SendText(ctx, to, body); err != nil {
		return Result{Success: false, Message: err.Error()}
	}
	return Result{Success: true}
}

// AttemptTemplate is the template-message counterpart of Attempt.
func AttemptTemplate(ctx context.Context, p Provider, req *TemplateRequest) Result {
	if err := p.SendTemplate(ctx, req); err != nil {
		return Result{Success: false, Message: err.Error()}
	}
	return Result{Success: true}
}
