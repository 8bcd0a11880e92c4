package dto

type ActionItem struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Category         string      `json:"category"`
	State            string      `json:"state"`
	Priority         string      `json:"priority"`
	Date             string      `json:"date"`
	InstagramDate    *string     `json:"instagram_date,omitempty"`
	Time             int         `json:"time"`
	Partners         []string    `json:"partners"`
	Responsibles     []string    `json:"responsibles"`
	Topics           []string    `json:"topics"`
	Color            string      `json:"color"`
	Files            []string    `json:"files"`
	InstagramCaption string      `json:"instagram_caption"`
	InstagramContent string      `json:"instagram_content"`
	InstagramFiles   []string    `json:"instagram_files"`
	InstagramMedia   []MediaItem `json:"instagram_media"`
	Archived         bool        `json:"archived"`
	CreatedAt        string      `json:"created_at"`
	UpdatedAt        string      `json:"updated_at"`
}

// MediaItem tells the dashboard how to preview an Instagram file.
type MediaItem struct {
	File string `json:"file"`
	Kind string `json:"kind"`
}

type CreateActionRequest struct {
	ID               *string  `json:"id" binding:"omitempty,uuid"`
	Title            string   `json:"title" binding:"required,max=255"`
	Description      *string  `json:"description" binding:"omitempty,max=65535"`
	Category         string   `json:"category" binding:"required,max=64"`
	State            *string  `json:"state" binding:"omitempty,max=64"`
	Priority         *string  `json:"priority" binding:"omitempty,oneof=low mid high"`
	Date             string   `json:"date" binding:"required"`
	InstagramDate    *string  `json:"instagram_date"`
	Time             *int     `json:"time" binding:"omitempty,gte=0"`
	Partners         []string `json:"partners"`
	Responsibles     []string `json:"responsibles"`
	Topics           []string `json:"topics"`
	Color            *string  `json:"color" binding:"omitempty,max=32"`
	Files            []string `json:"files"`
	InstagramCaption *string  `json:"instagram_caption"`
	InstagramContent *string  `json:"instagram_content"`
	InstagramFiles   []string `json:"instagram_files"`
}

type UpdateActionRequest struct {
	Title            *string   `json:"title" binding:"omitempty,max=255"`
	Description      *string   `json:"description" binding:"omitempty,max=65535"`
	Category         *string   `json:"category" binding:"omitempty,max=64"`
	State            *string   `json:"state" binding:"omitempty,max=64"`
	Priority         *string   `json:"priority" binding:"omitempty,oneof=low mid high"`
	Date             *string   `json:"date"`
	InstagramDate    *string   `json:"instagram_date"`
	Time             *int      `json:"time" binding:"omitempty,gte=0"`
	Partners         *[]string `json:"partners"`
	Responsibles     *[]string `json:"responsibles"`
	Topics           *[]string `json:"topics"`
	Color            *string   `json:"color" binding:"omitempty,max=32"`
	InstagramCaption *string   `json:"instagram_caption"`
	InstagramContent *string   `json:"instagram_content"`
}

// BulkUpdateActionsRequest applies one patch to every listed action.
type BulkUpdateActionsRequest struct {
	IDs   []string            `json:"ids" binding:"required,min=1,dive,required"`
	Patch UpdateActionRequest `json:"patch"`
}

type ActionViewRequest struct {
	Pending  []ActionItem `json:"pending"`
	Deleting []string     `json:"deleting"`
}

type DateValidationRequest struct {
	Date            string `json:"date" binding:"required"`
	InstagramDate   string `json:"instagram_date" binding:"required"`
	Time            int    `json:"time" binding:"gte=0"`
	Category        string `json:"category" binding:"required"`
	RejectPastDates bool   `json:"reject_past_dates"`
	AutoCorrect     bool   `json:"auto_correct"`
}

type CorrectedDates struct {
	Date          *string `json:"date,omitempty"`
	InstagramDate *string `json:"instagram_date,omitempty"`
}

type DateValidationResponse struct {
	IsValid   bool            `json:"is_valid"`
	Errors    []string        `json:"errors"`
	Corrected *CorrectedDates `json:"corrected,omitempty"`
}

type DateSuggestionRequest struct {
	ActionID         string  `json:"action_id"`
	Category         string  `json:"category"`
	Time             int     `json:"time" binding:"gte=0"`
	Date             *string `json:"date"`
	InstagramDate    *string `json:"instagram_date"`
	IsChangingDoDate bool    `json:"is_changing_do_date"`
}

type DateSuggestions struct {
	ActionDate    *string `json:"action_date,omitempty"`
	InstagramDate *string `json:"instagram_date,omitempty"`
	Message       string  `json:"message"`
}

type DateSuggestionResponse struct {
	IsValid     bool             `json:"is_valid"`
	Errors      []string         `json:"errors"`
	Suggestions *DateSuggestions `json:"suggestions,omitempty"`
}

type SprintRequest struct {
	ActionID string `json:"action_id" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
}
