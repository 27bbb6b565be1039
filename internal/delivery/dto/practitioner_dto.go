package dto

import "github.com/shopspring/decimal"

type PractitionerResponse struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Title        string          `json:"title"`
	Specialties  []string        `json:"specialties"`
	Experience   string          `json:"experience"`
	Rating       decimal.Decimal `json:"rating"`
	ReviewsCount int             `json:"reviews_count"`
	Bio          string          `json:"bio"`
	Availability string          `json:"availability"`
	ImageURL     string          `json:"image_url,omitempty"`
}

type PractitionerListResponse struct {
	Practitioners []PractitionerResponse `json:"practitioners"`
	Total         int                    `json:"total"`
}
