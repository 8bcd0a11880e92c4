package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"bussola/internal/adapter/http/dto"
	"bussola/internal/core/domain"
)

var ErrInvalidActionPayload = errors.New("invalid action payload")

func BuildCreateAction(req dto.CreateActionRequest, raw map[string]json.RawMessage, loc *time.Location) (domain.Action, error) {
	for _, field := range []string{"id", "state", "priority", "time", "description", "color"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return domain.Action{}, ErrInvalidActionPayload
		}
	}

	title := strings.TrimSpace(req.Title)
	category := strings.TrimSpace(req.Category)
	if title == "" || category == "" {
		return domain.Action{}, ErrInvalidActionPayload
	}

	date, err := domain.ParseDate(req.Date, loc)
	if err != nil {
		return domain.Action{}, ErrInvalidActionPayload
	}

	action := domain.Action{
		Title:          title,
		Category:       category,
		Date:           date,
		Partners:       req.Partners,
		Responsibles:   req.Responsibles,
		Topics:         req.Topics,
		Files:          req.Files,
		InstagramFiles: req.InstagramFiles,
	}
	if req.ID != nil {
		action.ID = *req.ID
	}
	if req.Description != nil {
		action.Description = *req.Description
	}
	if req.State != nil {
		action.State = strings.TrimSpace(*req.State)
	}
	if req.Priority != nil {
		action.Priority = domain.Priority(*req.Priority)
	}
	if req.Time != nil {
		action.Time = *req.Time
	}
	if req.Color != nil {
		action.Color = *req.Color
	}
	if req.InstagramCaption != nil {
		action.InstagramCaption = *req.InstagramCaption
	}
	if req.InstagramContent != nil {
		action.InstagramContent = *req.InstagramContent
	}
	if req.InstagramDate != nil {
		value, err := domain.ParseDate(*req.InstagramDate, loc)
		if err != nil {
			return domain.Action{}, ErrInvalidActionPayload
		}
		action.InstagramDate = &value
	}

	return action, nil
}

// BuildActionPatch turns a partial update into a patch. Only instagram_date
// accepts null, meaning "clear it".
func BuildActionPatch(req dto.UpdateActionRequest, raw map[string]json.RawMessage, loc *time.Location) (domain.ActionPatch, error) {
	if !hasActionUpdateFields(raw) {
		return domain.ActionPatch{}, ErrInvalidActionPayload
	}
	for field, value := range raw {
		if field != "instagram_date" && isJSONNull(value) {
			return domain.ActionPatch{}, ErrInvalidActionPayload
		}
	}

	patch := domain.ActionPatch{
		Description:      req.Description,
		Time:             req.Time,
		Color:            req.Color,
		InstagramCaption: req.InstagramCaption,
		InstagramContent: req.InstagramContent,
	}

	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.ActionPatch{}, ErrInvalidActionPayload
		}
		patch.Title = &value
	}
	if req.Category != nil {
		value := strings.TrimSpace(*req.Category)
		if value == "" {
			return domain.ActionPatch{}, ErrInvalidActionPayload
		}
		patch.Category = &value
	}
	if req.State != nil {
		value := strings.TrimSpace(*req.State)
		if value == "" {
			return domain.ActionPatch{}, ErrInvalidActionPayload
		}
		patch.State = &value
	}
	if req.Priority != nil {
		value := domain.Priority(*req.Priority)
		patch.Priority = &value
	}

	if req.Date != nil {
		value, err := domain.ParseDate(*req.Date, loc)
		if err != nil {
			return domain.ActionPatch{}, ErrInvalidActionPayload
		}
		patch.Date = &value
	}
	if hasJSONField(raw, "instagram_date") {
		patch.InstagramDateSet = true
		if req.InstagramDate != nil {
			value, err := domain.ParseDate(*req.InstagramDate, loc)
			if err != nil {
				return domain.ActionPatch{}, ErrInvalidActionPayload
			}
			patch.InstagramDate = &value
		}
	}

	if req.Partners != nil {
		patch.Partners = nonNil(*req.Partners)
	}
	if req.Responsibles != nil {
		patch.Responsibles = nonNil(*req.Responsibles)
	}
	if req.Topics != nil {
		patch.Topics = nonNil(*req.Topics)
	}

	return patch, nil
}

// BuildBulkPatch validates the id list and the shared patch of a bulk update.
func BuildBulkPatch(req dto.BulkUpdateActionsRequest, raw map[string]json.RawMessage, loc *time.Location) ([]string, domain.ActionPatch, error) {
	ids := make([]string, 0, len(req.IDs))
	seen := make(map[string]struct{}, len(req.IDs))
	for _, id := range req.IDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, domain.ActionPatch{}, ErrInvalidActionPayload
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	var rawPatch map[string]json.RawMessage
	if err := json.Unmarshal(raw["patch"], &rawPatch); err != nil {
		return nil, domain.ActionPatch{}, ErrInvalidActionPayload
	}
	patch, err := BuildActionPatch(req.Patch, rawPatch, loc)
	if err != nil {
		return nil, domain.ActionPatch{}, err
	}
	return ids, patch, nil
}

func hasActionUpdateFields(raw map[string]json.RawMessage) bool {
	for _, field := range []string{
		"title", "description", "category", "state", "priority", "date", "instagram_date", "time",
		"partners", "responsibles", "topics", "color", "instagram_caption", "instagram_content",
	} {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
