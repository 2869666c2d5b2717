package model

// Hotel is a bookable property. TotalRooms is the capacity ceiling for
// concurrently active reservations against this hotel.
type Hotel struct {
	ID         string `json:"hotel_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Location   string `json:"location" validate:"required"`
	TotalRooms int    `json:"total_rooms" validate:"required,min=1"`
}

// HotelUpdate carries a partial update; nil / empty fields keep their prior
// values when merged.
type HotelUpdate struct {
	Name       string `json:"name,omitempty"`
	Location   string `json:"location,omitempty"`
	TotalRooms *int   `json:"total_rooms,omitempty"`
}

func (h Hotel) ToRecord() map[string]any {
	return map[string]any{
		"hotel_id":    h.ID,
		"name":        h.Name,
		"location":    h.Location,
		"total_rooms": h.TotalRooms,
	}
}
