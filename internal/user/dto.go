package user

import "strings"

// RegisterDTO is the body of POST /api/register.
type RegisterDTO struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Email    string  `json:"email" validate:"required,max=255"`
	Phone    string  `json:"phone" validate:"required,max=20"`
	Password string  `json:"password" validate:"required"`
	Address  *string `json:"address,omitempty"`
}

func (d *RegisterDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	if d.Address != nil {
		addr := strings.TrimSpace(*d.Address)
		if addr == "" {
			d.Address = nil
		} else {
			d.Address = &addr
		}
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
