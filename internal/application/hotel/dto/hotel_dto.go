// Package dto defines the request and response shapes of the hotel usecases.
package dto

import (
	"time"

	"stayops/internal/domain/hotel"
)

type HotelPayload struct {
	Name                  string  `json:"name" binding:"required"`
	Location              string  `json:"location"`
	SubLocation           string  `json:"sub_location"`
	Address               string  `json:"address"`
	BcomID                string  `json:"bcom_id"`
	URL                   string  `json:"url"`
	ReviewScore           float64 `json:"review_score"`
	NumberOfReviews       int     `json:"number_of_reviews"`
	GoogleReviewScore     float64 `json:"google_review_score"`
	GoogleNumberOfReviews int     `json:"google_number_of_reviews"`
	Market                string  `json:"market"`
	Segment               string  `json:"segment"`
	Agreement             string  `json:"agreement"`
	SalesProcess          string  `json:"sales_process"`
	BcomStatus            string  `json:"bcom_status"`
}

func (p HotelPayload) Attrs() hotel.Attrs {
	return hotel.Attrs{
		Location:              p.Location,
		SubLocation:           p.SubLocation,
		Address:               p.Address,
		BcomID:                p.BcomID,
		URL:                   p.URL,
		ReviewScore:           p.ReviewScore,
		NumberOfReviews:       p.NumberOfReviews,
		GoogleReviewScore:     p.GoogleReviewScore,
		GoogleNumberOfReviews: p.GoogleNumberOfReviews,
		Market:                p.Market,
		Segment:               p.Segment,
		Agreement:             p.Agreement,
		SalesProcess:          p.SalesProcess,
		BcomStatus:            p.BcomStatus,
	}
}

type HotelResponse struct {
	ID                    uint      `json:"id"`
	Name                  string    `json:"name"`
	Location              string    `json:"location,omitempty"`
	SubLocation           string    `json:"sub_location,omitempty"`
	Address               string    `json:"address,omitempty"`
	BcomID                string    `json:"bcom_id,omitempty"`
	URL                   string    `json:"url,omitempty"`
	ReviewScore           float64   `json:"review_score,omitempty"`
	NumberOfReviews       int       `json:"number_of_reviews,omitempty"`
	GoogleReviewScore     float64   `json:"google_review_score,omitempty"`
	GoogleNumberOfReviews int       `json:"google_number_of_reviews,omitempty"`
	Market                string    `json:"market,omitempty"`
	Segment               string    `json:"segment,omitempty"`
	Agreement             string    `json:"agreement,omitempty"`
	SalesProcess          string    `json:"sales_process,omitempty"`
	BcomStatus            string    `json:"bcom_status,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func NewHotelResponse(h *hotel.Hotel) *HotelResponse {
	attrs := h.Attrs()
	return &HotelResponse{
		ID:                    h.ID(),
		Name:                  h.Name(),
		Location:              attrs.Location,
		SubLocation:           attrs.SubLocation,
		Address:               attrs.Address,
		BcomID:                attrs.BcomID,
		URL:                   attrs.URL,
		ReviewScore:           attrs.ReviewScore,
		NumberOfReviews:       attrs.NumberOfReviews,
		GoogleReviewScore:     attrs.GoogleReviewScore,
		GoogleNumberOfReviews: attrs.GoogleNumberOfReviews,
		Market:                attrs.Market,
		Segment:               attrs.Segment,
		Agreement:             attrs.Agreement,
		SalesProcess:          attrs.SalesProcess,
		BcomStatus:            attrs.BcomStatus,
		CreatedAt:             h.CreatedAt(),
		UpdatedAt:             h.UpdatedAt(),
	}
}

func NewHotelResponses(hotels []*hotel.Hotel) []*HotelResponse {
	responses := make([]*HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		responses = append(responses, NewHotelResponse(h))
	}
	return responses
}
