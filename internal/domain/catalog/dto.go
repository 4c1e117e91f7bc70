package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/arqsuite/arqsuite-api/internal/pkg/validator"
)

// CreateRequest is the parsed write payload for any kind
type CreateRequest struct {
	ParentID    uuid.NullUUID
	Label       string
	Description sql.NullString
}

// UpdateRequest carries the optional fields of a PATCH payload
type UpdateRequest struct {
	Label       *string
	Description *string
}

// ParseCreate decodes and validates a create payload against the
// descriptor. Field names vary per kind, so the body is read as a raw
// JSON object and the descriptor picks the keys. A non-nil details map
// means validation failed; a non-nil error means the body was not JSON.
func (d Descriptor) ParseCreate(body io.Reader) (*CreateRequest, map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("decode body: %w", err)
	}

	details := make(map[string]string)
	req := &CreateRequest{}

	req.Label = stringField(raw, d.LabelField, details)
	if _, seen := details[d.LabelField]; !seen {
		if msg := validator.ValidateVar(req.Label, "required,max=200"); msg != "" {
			details[d.LabelField] = msg
		}
	}

	if d.HasParent() {
		ref := stringField(raw, d.ParentField, details)
		if _, seen := details[d.ParentField]; !seen {
			if msg := validator.ValidateVar(ref, "required,uuid"); msg != "" {
				details[d.ParentField] = msg
			} else {
				req.ParentID = uuid.NullUUID{UUID: uuid.MustParse(ref), Valid: true}
			}
		}
	}

	if desc := optionalString(raw, "description", details); desc != nil {
		req.Description = sql.NullString{String: *desc, Valid: true}
	}

	if len(details) > 0 {
		return nil, details, nil
	}
	return req, nil, nil
}

// ParseUpdate decodes and validates a PATCH payload. Absent fields are
// left untouched by the repository.
func (d Descriptor) ParseUpdate(body io.Reader) (*UpdateRequest, map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("decode body: %w", err)
	}

	details := make(map[string]string)
	req := &UpdateRequest{}

	if _, ok := raw[d.LabelField]; ok {
		label := stringField(raw, d.LabelField, details)
		if _, seen := details[d.LabelField]; !seen {
			if msg := validator.ValidateVar(label, "required,max=200"); msg != "" {
				details[d.LabelField] = msg
			} else {
				req.Label = &label
			}
		}
	}

	req.Description = optionalString(raw, "description", details)

	if len(details) > 0 {
		return nil, details, nil
	}
	return req, nil, nil
}

// Render builds the public representation of a record. Keys follow the
// descriptor, matching the persisted column names.
func (d Descriptor) Render(rec *Record) map[string]interface{} {
	out := map[string]interface{}{
		"id":          rec.ID,
		d.LabelField:  rec.Label,
		"description": nil,
		"created_at":  rec.CreatedAt.Format(time.RFC3339),
		"updated_at":  rec.UpdatedAt.Format(time.RFC3339),
	}
	if rec.Description.Valid {
		out["description"] = rec.Description.String
	}
	if d.HasParent() {
		out[d.ParentField] = rec.ParentID.UUID
	}
	return out
}

// RenderList builds the public representation of a record sequence
func (d Descriptor) RenderList(recs []Record) []map[string]interface{} {
	items := make([]map[string]interface{}, len(recs))
	for i := range recs {
		items[i] = d.Render(&recs[i])
	}
	return items
}

func stringField(raw map[string]json.RawMessage, key string, details map[string]string) string {
	msg, ok := raw[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		details[key] = "Must be a string"
		return ""
	}
	return s
}

func optionalString(raw map[string]json.RawMessage, key string, details map[string]string) *string {
	msg, ok := raw[key]
	if !ok || string(msg) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		details[key] = "Must be a string"
		return nil
	}
	return &s
}
