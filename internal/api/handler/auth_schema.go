package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for write operations that only confirm success.
type messageResponse struct {
	Message string `json:"message"`
}

// registerRequest accepts both the English and the Spanish field name for the
// display name; older clients still send "nombre".
type registerRequest struct {
	Name     string `json:"name"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) displayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Nombre
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Email   string `json:"email"`
}
