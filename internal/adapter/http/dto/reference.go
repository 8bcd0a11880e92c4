package dto

type StateItem struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

type CategoryItem struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

type PartnerItem struct {
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Users []string `json:"users"`
}

type PersonItem struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Admin    bool   `json:"admin"`
}
