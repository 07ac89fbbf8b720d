package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/application/dto"
	"github.com/techstock/techstock-api/internal/domain"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/repository"
	"github.com/techstock/techstock-api/pkg/jwt"
	"github.com/techstock/techstock-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, verificación de email y login.
type AuthUseCase struct {
	perfilRepo repository.PerfilRepository
	jwtCfg     JWTConfig
	log        *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(perfilRepo repository.PerfilRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{perfilRepo: perfilRepo, jwtCfg: jwtCfg, log: log}
}

// Registrar crea un perfil con email sin verificar: hashea el password con
// bcrypt y genera un token de verificación de un solo uso. El envío del email
// queda fuera de alcance; el token se loguea como gancho de notificación.
func (uc *AuthUseCase) Registrar(in dto.RegisterRequest) (*dto.PerfilResponse, error) {
	existente, _ := uc.perfilRepo.GetByEmail(in.Email)
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	token, err := nuevoTokenVerificacion()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	nombre := in.NombreCompleto
	if nombre == "" {
		nombre = in.Email
	}
	perfil := &entity.Perfil{
		ID:                uuid.New().String(),
		Email:             in.Email,
		PasswordHash:      string(hash),
		NombreCompleto:    nombre,
		EmailVerificado:   false,
		TokenVerificacion: token,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.perfilRepo.Create(perfil); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("user_id", perfil.ID).
		Str("email", perfil.Email).
		Str("token_verificacion", token).
		Msg("perfil registrado, email de verificación pendiente de envío")
	return toPerfilResponse(perfil), nil
}

// VerificarEmail marca el perfil como verificado y consume el token.
func (uc *AuthUseCase) VerificarEmail(token string) (*dto.PerfilResponse, error) {
	if token == "" {
		return nil, domain.ErrInvalidInput
	}
	perfil, err := uc.perfilRepo.GetByTokenVerificacion(token)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, domain.ErrNotFound
	}
	perfil.EmailVerificado = true
	perfil.TokenVerificacion = ""
	perfil.UpdatedAt = time.Now()
	if err := uc.perfilRepo.Update(perfil); err != nil {
		return nil, err
	}
	return toPerfilResponse(perfil), nil
}

// Login verifica email/password, genera JWT y retorna token + perfil.
// El login no exige email verificado: el gate de admisión es quien decide qué
// pantalla ve un usuario sin verificar.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	perfil, err := uc.perfilRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(perfil.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, perfil.ID, perfil.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:  token,
		Perfil: *toPerfilResponse(perfil),
	}, nil
}

func nuevoTokenVerificacion() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func toPerfilResponse(p *entity.Perfil) *dto.PerfilResponse {
	if p == nil {
		return nil
	}
	return &dto.PerfilResponse{
		ID:              p.ID,
		Email:           p.Email,
		NombreCompleto:  p.NombreCompleto,
		EmailVerificado: p.EmailVerificado,
		CreatedAt:       p.CreatedAt,
	}
}
