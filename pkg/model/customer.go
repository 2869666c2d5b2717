package model

type Customer struct {
	ID    string `json:"customer_id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

type CustomerUpdate struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func (c Customer) ToRecord() map[string]any {
	return map[string]any{
		"customer_id": c.ID,
		"name":        c.Name,
		"email":       c.Email,
	}
}
