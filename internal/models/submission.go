package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FormType string

const (
	FormTypeFlight    FormType = "flight"
	FormTypeLogistics FormType = "logistics"
)

// ParseFormType validates the tagged-union discriminator coming off the wire.
func ParseFormType(s string) (FormType, error) {
	switch FormType(s) {
	case FormTypeFlight:
		return FormTypeFlight, nil
	case FormTypeLogistics:
		return FormTypeLogistics, nil
	default:
		return "", fmt.Errorf("unknown form type %q", s)
	}
}

// Submission is one persisted intake record. It is append-only: created
// exactly once per accepted request, read by the admin endpoints, never
// updated or deleted by this service.
type Submission struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FormType            FormType           `json:"formType" bson:"formType"`
	Data                interface{}        `json:"data" bson:"data"`
	AttachmentsMetadata []AttachmentMeta   `json:"attachmentsMetadata" bson:"attachmentsMetadata"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt"`
}

// Attachment is a client-supplied upload: a file name plus a data-URI
// (or bare base64) string. Raw bytes are relayed by email only, never
// persisted.
type Attachment struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// AttachmentMeta is the audit-only record of an attachment.
type AttachmentMeta struct {
	Name string `json:"name" bson:"name"`
	Size int    `json:"size" bson:"size"`
}

// AttachmentsMetadata derives the audit records kept alongside a
// submission. Size is the length of the encoded payload as received.
func AttachmentsMetadata(files []Attachment) []AttachmentMeta {
	meta := make([]AttachmentMeta, 0, len(files))
	for _, f := range files {
		meta = append(meta, AttachmentMeta{Name: f.Name, Size: len(f.Data)})
	}
	return meta
}

// SubmissionRequest is the intake request body. Data stays raw until the
// form type is known, then decodes into the matching payload variant.
type SubmissionRequest struct {
	FormType    string          `json:"formType"`
	Data        json.RawMessage `json:"data"`
	Attachments []Attachment    `json:"attachments"`
}

// DecodePayload decodes the raw data into the variant selected by the
// form type. Unknown discriminators never reach here; ParseFormType runs
// first.
func DecodePayload(formType FormType, raw json.RawMessage) (interface{}, error) {
	switch formType {
	case FormTypeFlight:
		var d FlightData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("invalid flight payload: %w", err)
		}
		return &d, nil
	case FormTypeLogistics:
		var d LogisticsData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("invalid logistics payload: %w", err)
		}
		return &d, nil
	default:
		return nil, fmt.Errorf("unknown form type %q", formType)
	}
}
