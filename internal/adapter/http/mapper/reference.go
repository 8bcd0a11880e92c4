package mapper

import (
	"bussola/internal/adapter/http/dto"
	"bussola/internal/core/domain"
)

func ToStateItems(states []domain.State) []dto.StateItem {
	items := make([]dto.StateItem, 0, len(states))
	for _, s := range states {
		items = append(items, dto.StateItem{Slug: s.Slug, Title: s.Title, Color: s.Color, Order: s.Order})
	}
	return items
}

func ToCategoryItems(categories []domain.Category) []dto.CategoryItem {
	items := make([]dto.CategoryItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, dto.CategoryItem{Slug: c.Slug, Title: c.Title, Order: c.Order})
	}
	return items
}

func ToPartnerItems(partners []domain.Partner) []dto.PartnerItem {
	items := make([]dto.PartnerItem, 0, len(partners))
	for _, p := range partners {
		items = append(items, dto.PartnerItem{Slug: p.Slug, Title: p.Title, Users: nonNil(p.Users)})
	}
	return items
}

func ToPersonItems(people []domain.Person) []dto.PersonItem {
	items := make([]dto.PersonItem, 0, len(people))
	for _, p := range people {
		items = append(items, dto.PersonItem{ID: p.ID, UserID: p.UserID, Name: p.Name, Initials: p.Initials, Admin: p.Admin})
	}
	return items
}
