package models

// Service is a bookable home-care service offering.
type Service struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Price             float64  `json:"price"`
	OriginalPrice     float64  `json:"originalPrice,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	ImageURL          string   `json:"imageUrl,omitempty"`
	Category          string   `json:"category"`
	IsHot             bool     `json:"isHot,omitempty"`
	Rating            float64  `json:"rating,omitempty"`
	Duration          string   `json:"duration,omitempty"`
	Audience          string   `json:"audience,omitempty"`
	ContentList       []string `json:"contentList,omitempty"`
	Contraindications string   `json:"contraindications,omitempty"`
	Notes             string   `json:"notes,omitempty"`
}

// Category groups services on the home screen.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// City is a market the platform may or may not cover yet.
type City struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsOpen bool   `json:"isOpen"`
}
