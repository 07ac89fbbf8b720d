package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techstock/techstock-api/internal/application/auth"
	"github.com/techstock/techstock-api/internal/application/dto"
	"github.com/techstock/techstock-api/internal/domain"
	"github.com/techstock/techstock-api/internal/domain/entity"
	pkgjwt "github.com/techstock/techstock-api/pkg/jwt"
	"github.com/techstock/techstock-api/pkg/logger"
)

const testSecret = "test-secret-key-for-unit-tests"

type fakePerfilRepo struct {
	perfiles map[string]*entity.Perfil
}

func newFakePerfilRepo() *fakePerfilRepo {
	return &fakePerfilRepo{perfiles: map[string]*entity.Perfil{}}
}

func (f *fakePerfilRepo) Create(p *entity.Perfil) error { f.perfiles[p.ID] = p; return nil }
func (f *fakePerfilRepo) GetByID(id string) (*entity.Perfil, error) {
	return f.perfiles[id], nil
}
func (f *fakePerfilRepo) GetByEmail(email string) (*entity.Perfil, error) {
	for _, p := range f.perfiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakePerfilRepo) GetByTokenVerificacion(token string) (*entity.Perfil, error) {
	if token == "" {
		return nil, nil
	}
	for _, p := range f.perfiles {
		if p.TokenVerificacion == token {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakePerfilRepo) Update(p *entity.Perfil) error { f.perfiles[p.ID] = p; return nil }
func (f *fakePerfilRepo) EsSuperAdmin(userID string) (bool, error) {
	p := f.perfiles[userID]
	return p != nil && p.EsSuperAdmin, nil
}

func armarAuth() (*auth.AuthUseCase, *fakePerfilRepo) {
	repo := newFakePerfilRepo()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "techstock-test",
	}, log)
	return uc, repo
}

func TestRegistrar_CreaPerfilSinVerificar(t *testing.T) {
	uc, repo := armarAuth()

	out, err := uc.Registrar(dto.RegisterRequest{
		Email:          "ana@test.dev",
		Password:       "password123",
		NombreCompleto: "Ana Pérez",
	})
	require.NoError(t, err)

	assert.False(t, out.EmailVerificado, "el perfil nace sin verificar")
	perfil := repo.perfiles[out.ID]
	require.NotNil(t, perfil)
	assert.NotEmpty(t, perfil.TokenVerificacion, "debe generarse un token de verificación")
	assert.NotEqual(t, "password123", perfil.PasswordHash, "el password nunca se guarda en claro")
}

func TestRegistrar_EmailDuplicado(t *testing.T) {
	uc, _ := armarAuth()
	_, err := uc.Registrar(dto.RegisterRequest{Email: "ana@test.dev", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Registrar(dto.RegisterRequest{Email: "ana@test.dev", Password: "otropassword"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestVerificarEmail_ConsumeElToken(t *testing.T) {
	uc, repo := armarAuth()
	out, err := uc.Registrar(dto.RegisterRequest{Email: "ana@test.dev", Password: "password123"})
	require.NoError(t, err)
	token := repo.perfiles[out.ID].TokenVerificacion

	verificado, err := uc.VerificarEmail(token)
	require.NoError(t, err)
	assert.True(t, verificado.EmailVerificado)
	assert.Empty(t, repo.perfiles[out.ID].TokenVerificacion, "el token es de un solo uso")

	// Reusar el token falla.
	_, err = uc.VerificarEmail(token)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerificarEmail_TokenDesconocido(t *testing.T) {
	uc, _ := armarAuth()
	_, err := uc.VerificarEmail("token-que-no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_Exitoso(t *testing.T) {
	uc, _ := armarAuth()
	_, err := uc.Registrar(dto.RegisterRequest{Email: "ana@test.dev", Password: "password123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@test.dev", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, email, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Perfil.ID, userID)
	assert.Equal(t, "ana@test.dev", email)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := armarAuth()
	_, err := uc.Registrar(dto.RegisterRequest{Email: "ana@test.dev", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@test.dev", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := armarAuth()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@test.dev", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// El login no exige email verificado: esa decisión es del gate de admisión.
func TestLogin_SinVerificarEmiteToken(t *testing.T) {
	uc, _ := armarAuth()
	_, err := uc.Registrar(dto.RegisterRequest{Email: "ana@test.dev", Password: "password123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@test.dev", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.False(t, out.Perfil.EmailVerificado)
}
