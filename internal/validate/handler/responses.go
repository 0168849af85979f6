package handler

import "verid/pkg/nid/albania"

// DecodeResponse is the flattened projection of a decoded Albanian NID,
// shaped for clients that want both the ISO date and the decomposed parts.
type DecodeResponse struct {
	Country  string `json:"country"`
	Birthday string `json:"birthday"`
	Sex      string `json:"sex"`
	National bool   `json:"is_national"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Day      int    `json:"day"`
}

// FromInfo builds the wire response from a decode result.
func FromInfo(country string, info albania.Info) DecodeResponse {
	return DecodeResponse{
		Country:  country,
		Birthday: info.Birthday.String(),
		Sex:      info.Sex.String(),
		National: info.National,
		Year:     info.Birthday.Year,
		Month:    info.Birthday.Month,
		Day:      info.Birthday.Day,
	}
}

// ValidateResponse is returned by the validation endpoints on success.
type ValidateResponse struct {
	Valid bool `json:"valid"`
}
