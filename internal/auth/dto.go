package auth

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CitizenView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type AdminView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    interface{} `json:"user"`
}

func (a *Account) ToCitizenView() CitizenView {
	return CitizenView{ID: a.ID, Name: a.Name, Email: a.Email, Phone: a.Phone}
}

func (a *Account) ToAdminView() AdminView {
	return AdminView{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}
