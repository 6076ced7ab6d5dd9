package auth

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/eleccion-api/internal/application/dto"
	"github.com/jhoicas/eleccion-api/internal/domain"
	"github.com/jhoicas/eleccion-api/internal/domain/entity"
	"github.com/jhoicas/eleccion-api/internal/domain/repository"
	"github.com/jhoicas/eleccion-api/internal/domain/taxonomy"
	"github.com/jhoicas/eleccion-api/pkg/jwt"
)

// Roles que viajan en el JWT.
const (
	RoleAdmin = "admin"
	RoleVoter = "voter"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login de admins,
// login de votantes. La identidad autenticada (id + rol + nivel) que produce
// es la que consumen las rutas de votación.
type AuthUseCase struct {
	adminRepo repository.AdminRepository
	voterRepo repository.VoterRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, voterRepo repository.VoterRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, voterRepo: voterRepo, jwtCfg: jwtCfg}
}

// RegisterAdmin crea un administrador. El chequeo de username es case-insensitive;
// devuelve ErrAdminExists si ya está tomado.
func (uc *AuthUseCase) RegisterAdmin(ctx context.Context, in dto.RegisterRequest) (*dto.AdminResponse, error) {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(password) < 4 {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAdminExists
	}

	hash, err := NormalizeCredential(password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	admin := &entity.Admin{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return &dto.AdminResponse{ID: admin.ID, Username: admin.Username}, nil
}

// LoginAdmin verifica credenciales y genera un JWT con rol admin.
func (uc *AuthUseCase) LoginAdmin(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	admin, err := uc.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if admin == nil || !CheckCredential(admin.PasswordHash, password) {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.Username, RoleAdmin, "", uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

// LoginVoter autentica a un votante por (school id, nivel, password) y genera
// un JWT con rol voter que lleva su nivel. Un votante sin credencial asignada
// no puede iniciar sesión.
func (uc *AuthUseCase) LoginVoter(ctx context.Context, in dto.VoterLoginRequest) (*dto.VoterLoginResponse, error) {
	level, ok := taxonomy.ResolveLevel(in.Level)
	if !ok {
		return nil, domain.ErrInvalidLevel
	}
	voter, err := uc.voterRepo.GetBySchoolIDAndLevel(ctx, taxonomy.CanonicalSchoolID(in.SchoolID), level)
	if err != nil {
		return nil, err
	}
	if voter == nil || !CheckCredential(voter.PasswordHash, in.Password) {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, voter.ID, RoleVoter, voter.Level, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.VoterLoginResponse{Token: token, Voter: *VoterToResponse(voter)}, nil
}

// VoterToResponse mapea la entidad al DTO de salida (sin hash).
func VoterToResponse(v *entity.Voter) *dto.VoterResponse {
	if v == nil {
		return nil
	}
	return &dto.VoterResponse{
		ID:        v.ID,
		SchoolID:  v.SchoolID,
		FullName:  v.FullName,
		Course:    v.Course,
		Year:      v.Year,
		Status:    v.Status,
		Level:     v.Level,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
