package services

import (
	"context"

	"rioserver/internal/config"
	"rioserver/internal/models"
	"rioserver/internal/repositories/interfaces"
	"rioserver/internal/templates"
	"rioserver/internal/utils"
	"rioserver/internal/validators"
	"rioserver/pkg/logger"
	"rioserver/pkg/mailer"
	"rioserver/pkg/whatsapp"

	"github.com/google/uuid"
)

// MailSender is the transactional email transport the intake depends
// on; satisfied by mailer.SMTPMailer.
type MailSender interface {
	Send(msg *mailer.Message) error
}

// OnFailure is the per-system failure policy of the fan-out.
type OnFailure int

const (
	// FailureIgnore logs the error and moves on.
	FailureIgnore OnFailure = iota
	// FailureAbort fails the whole request.
	FailureAbort
	// FailureDegrade records the failure as a status string.
	FailureDegrade
)

// fanOutPolicy makes the orchestration declarative: one entry per
// external system instead of policy buried in control flow. Persistence
// never blocks a submission, the admin email is mandatory, WhatsApp is
// best-effort.
var fanOutPolicy = map[string]OnFailure{
	"persistence": FailureIgnore,
	"email":       FailureAbort,
	"whatsapp":    FailureDegrade,
}

// IntakeResult is what the handler shapes into the HTTP response.
type IntakeResult struct {
	RecordID             string
	EmailStatus          string
	WhatsAppAdminStatus  string
	WhatsAppClientStatus string
}

// IntakeService drives the submission fan-out: persist, template, email
// the admin, notify WhatsApp. Steps run sequentially with no rollback;
// this is deliberate best-effort, not a saga.
type IntakeService struct {
	repo interfaces.SubmissionRepository
	mail MailSender
	wa   whatsapp.Provider
	cfg  *config.Config
	log  *logger.Logger
}

func NewIntakeService(repo interfaces.SubmissionRepository, mail MailSender, wa whatsapp.Provider, cfg *config.Config, log *logger.Logger) *IntakeService {
	return &IntakeService{
		repo: repo,
		mail: mail,
		wa:   wa,
		cfg:  cfg,
		log:  log,
	}
}

// Submit runs the fan-out for one decoded submission. The returned
// error, when non-nil, always comes from a FailureAbort step.
func (s *IntakeService) Submit(ctx context.Context, formType models.FormType, payload interface{}, files []models.Attachment) (*IntakeResult, error) {
	log := s.log.WithSubmissionRef(uuid.NewString()).WithFormType(string(formType))

	s.adviseOnMissingFields(formType, payload, log)

	result := &IntakeResult{
		WhatsAppAdminStatus:  "skipped",
		WhatsAppClientStatus: "skipped",
	}

	// Step 1: persist. Policy Ignore: database unavailability never
	// blocks a submission, it only loses the record link.
	recordID, err := s.repo.Insert(ctx, formType, payload, models.AttachmentsMetadata(files))
	if err != nil {
		if fanOutPolicy["persistence"] == FailureAbort {
			return nil, err
		}
		log.WithError(err).Error("failed to persist submission")
	} else {
		result.RecordID = recordID
		log.WithField("record_id", recordID).Info("submission stored")
	}

	// Step 2: build templates. The client template is computed and kept
	// on the builder's contract even though this deployment only sends
	// to the admin recipient.
	tpl, err := templates.Build(formType, payload)
	if err != nil {
		return nil, utils.NewValidationError(err.Error())
	}

	// Step 3: admin email. Policy Abort: a failed notification fails
	// the request, even when the record from step 1 already exists.
	if err := s.sendAdminEmail(tpl, files); err != nil {
		log.WithError(err).Error("admin email failed")
		if fanOutPolicy["email"] == FailureAbort {
			return nil, err
		}
		result.EmailStatus = "failed"
	} else {
		result.EmailStatus = "sent"
		log.Info("admin email sent")
	}

	// Step 4: WhatsApp. Policy Degrade: the outcome is a status string,
	// never an error.
	status := s.sendAdminWhatsApp(ctx, formType, payload, log)
	result.WhatsAppAdminStatus = status
	log.WithField("whatsapp_status", status).Info("submission fan-out complete")

	return result, nil
}

func (s *IntakeService) adviseOnMissingFields(formType models.FormType, payload interface{}, log *logger.Logger) {
	var fieldErrs map[string]string
	switch d := payload.(type) {
	case *models.FlightData:
		fieldErrs = validators.ValidateFlight(d)
	case *models.LogisticsData:
		if d.Volume == "" {
			d.Volume = d.ShipmentDetails.Dimensions.Volume()
		}
		fieldErrs = validators.ValidateLogistics(d)
	}
	if len(fieldErrs) > 0 {
		log.WithField("missing_fields", len(fieldErrs)).Warn("submission is missing required wizard fields")
	}
}

func (s *IntakeService) sendAdminEmail(tpl *templates.Templates, files []models.Attachment) error {
	adminTo := s.cfg.Admin.ToEmail
	if adminTo == "" {
		adminTo = s.cfg.SMTP.ToEmail
	}
	if adminTo == "" {
		return utils.NewConfigurationError("Admin recipient is not configured")
	}

	from := s.cfg.SMTP.FromEmail
	if from == "" {
		from = s.cfg.SMTP.Username
	}

	uploads := make([]mailer.File, 0, len(files))
	for _, f := range files {
		uploads = append(uploads, mailer.File{Name: f.Name, Data: f.Data})
	}

	return s.mail.Send(&mailer.Message{
		From:        from,
		To:          adminTo,
		Subject:     tpl.Admin.Subject,
		HTML:        tpl.Admin.HTML,
		Attachments: mailer.MapAttachments(uploads),
	})
}

func (s *IntakeService) sendAdminWhatsApp(ctx context.Context, formType models.FormType, payload interface{}, log *logger.Logger) string {
	if s.wa == nil || !s.cfg.WhatsApp.Configured(s.cfg.Admin.WhatsAppNumber) {
		return "skipped"
	}

	templateName := s.cfg.WhatsApp.AdminTemplateFor(string(formType))
	if templateName == "" {
		return "failed: missing admin WhatsApp template name"
	}

	bodyParams, err := templates.BuildAdminParams(formType, payload)
	if err != nil {
		return "failed: " + err.Error()
	}
	// Flight admin templates are provisioned with 5 slots.
	if formType == models.FormTypeFlight && len(bodyParams) > templates.FlightAdminParamLimit {
		bodyParams = bodyParams[:templates.FlightAdminParamLimit]
	}

	res := whatsapp.AttemptTemplate(ctx, s.wa, &whatsapp.TemplateRequest{
		To:           s.cfg.Admin.WhatsAppNumber,
		TemplateName: templateName,
		BodyParams:   bodyParams,
	})
	if !res.Success {
		if fanOutPolicy["whatsapp"] == FailureAbort {
			// Unreachable with the current table; kept so the policy
			// stays authoritative.
			log.WithField("whatsapp_error", res.Message).Error("whatsapp notification failed")
		}
		return "failed: " + res.Message
	}
	return "sent"
}

// SendTestTemplate fires the configured test template at the admin
// number. Configuration gaps surface as ValidationErrors so the handler
// maps them to 400.
func (s *IntakeService) SendTestTemplate(ctx context.Context) (string, error) {
	if s.wa == nil || !s.cfg.WhatsApp.Configured(s.cfg.Admin.WhatsAppNumber) {
		return "", utils.NewValidationError("WhatsApp admin configuration missing")
	}
	templateName := s.cfg.WhatsApp.TestTemplate
	if templateName == "" {
		return "", utils.NewValidationError("WHATSAPP_TEST_TEMPLATE is not configured")
	}

	res := whatsapp.AttemptTemplate(ctx, s.wa, &whatsapp.TemplateRequest{
		To:           s.cfg.Admin.WhatsAppNumber,
		TemplateName: templateName,
		Language:     "en_US",
	})
	if !res.Success {
		return "", utils.NewNotificationError(res.Message, 0)
	}
	return "WhatsApp test message sent (" + templateName + ")", nil
}
