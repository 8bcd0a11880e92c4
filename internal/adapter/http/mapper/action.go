package mapper

import (
	"time"

	"bussola/internal/adapter/http/dto"
	"bussola/internal/core/domain"
	"bussola/internal/core/ports"
)

// ToActionItems renders actions with their schedule dates in loc.
func ToActionItems(actions []domain.Action, loc *time.Location) []dto.ActionItem {
	items := make([]dto.ActionItem, 0, len(actions))
	for _, action := range actions {
		items = append(items, ToActionItem(action, loc))
	}
	return items
}

func ToActionItem(action domain.Action, loc *time.Location) dto.ActionItem {
	item := dto.ActionItem{
		ID:               action.ID,
		Title:            action.Title,
		Description:      action.Description,
		Category:         action.Category,
		State:            action.State,
		Priority:         string(action.Priority),
		Date:             domain.FormatDate(action.Date.In(loc)),
		Time:             action.Time,
		Partners:         nonNil(action.Partners),
		Responsibles:     nonNil(action.Responsibles),
		Topics:           nonNil(action.Topics),
		Color:            action.Color,
		Files:            nonNil(action.Files),
		InstagramCaption: action.InstagramCaption,
		InstagramContent: action.InstagramContent,
		InstagramFiles:   nonNil(action.InstagramFiles),
		InstagramMedia:   toMediaItems(action.InstagramFiles),
		Archived:         action.Archived,
		CreatedAt:        action.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        action.UpdatedAt.Format(time.RFC3339),
	}

	if action.InstagramDate != nil {
		value := domain.FormatDate(action.InstagramDate.In(loc))
		item.InstagramDate = &value
	}

	return item
}

// FromActionItem reads a full action record sent back by the client.
func FromActionItem(item dto.ActionItem, loc *time.Location) (domain.Action, error) {
	date, err := domain.ParseDate(item.Date, loc)
	if err != nil {
		return domain.Action{}, err
	}

	action := domain.Action{
		ID:               item.ID,
		Title:            item.Title,
		Description:      item.Description,
		Category:         item.Category,
		State:            item.State,
		Priority:         domain.Priority(item.Priority),
		Date:             date,
		Time:             item.Time,
		Partners:         item.Partners,
		Responsibles:     item.Responsibles,
		Topics:           item.Topics,
		Color:            item.Color,
		Files:            item.Files,
		InstagramCaption: item.InstagramCaption,
		InstagramContent: item.InstagramContent,
		InstagramFiles:   item.InstagramFiles,
		Archived:         item.Archived,
	}

	if item.InstagramDate != nil {
		value, err := domain.ParseDate(*item.InstagramDate, loc)
		if err != nil {
			return domain.Action{}, err
		}
		action.InstagramDate = &value
	}
	if item.CreatedAt != "" {
		if value, err := time.Parse(time.RFC3339, item.CreatedAt); err == nil {
			action.CreatedAt = value
		}
	}
	if item.UpdatedAt != "" {
		if value, err := time.Parse(time.RFC3339, item.UpdatedAt); err == nil {
			action.UpdatedAt = value
		}
	}

	return action, nil
}

func ToDateValidationResponse(report ports.DateReport) dto.DateValidationResponse {
	resp := dto.DateValidationResponse{IsValid: report.IsValid, Errors: nonNil(report.Errors)}
	if report.Corrected != nil {
		resp.Corrected = &dto.CorrectedDates{
			Date:          report.Corrected.Date,
			InstagramDate: report.Corrected.InstagramDate,
		}
	}
	return resp
}

func ToDateSuggestionResponse(report ports.DateSuggestionReport) dto.DateSuggestionResponse {
	resp := dto.DateSuggestionResponse{IsValid: report.IsValid, Errors: nonNil(report.Errors)}
	if report.Suggestions != nil {
		resp.Suggestions = &dto.DateSuggestions{
			ActionDate:    report.Suggestions.ActionDate,
			InstagramDate: report.Suggestions.InstagramDate,
			Message:       report.Suggestions.Message,
		}
	}
	return resp
}

func toMediaItems(files []string) []dto.MediaItem {
	items := make([]dto.MediaItem, 0, len(files))
	for _, file := range files {
		items = append(items, dto.MediaItem{File: file, Kind: string(domain.ClassifyMediaKind(file))})
	}
	return items
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
