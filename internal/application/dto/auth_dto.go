package dto

// RegisterRequest entrada para registrar un administrador.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=4"`
}

// AdminResponse salida de un administrador (sin password).
type AdminResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginRequest entrada para login de administrador.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string `json:"token"`
}

// VoterLoginRequest entrada para login de votante: school id + nivel + password.
type VoterLoginRequest struct {
	SchoolID string `json:"school_id" validate:"required"`
	Level    string `json:"level" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// VoterLoginResponse salida del login de votante.
type VoterLoginResponse struct {
	Token string        `json:"token"`
	Voter VoterResponse `json:"voter"`
}
