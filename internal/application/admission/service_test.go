package admission_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techstock/techstock-api/internal/application/admission"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakePerfilRepo struct {
	perfiles    map[string]*entity.Perfil
	errAdmin    error
	adminChecks int
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
	for _, p := range f.perfiles {
		if p.TokenVerificacion == token {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakePerfilRepo) Update(p *entity.Perfil) error { f.perfiles[p.ID] = p; return nil }
func (f *fakePerfilRepo) EsSuperAdmin(userID string) (bool, error) {
	f.adminChecks++
	if f.errAdmin != nil {
		return false, f.errAdmin
	}
	p := f.perfiles[userID]
	return p != nil && p.EsSuperAdmin, nil
}

type fakeMiembroRepo struct {
	miembros []*entity.Miembro
	errList  error
}

func (f *fakeMiembroRepo) Create(m *entity.Miembro) error { f.miembros = append(f.miembros, m); return nil }
func (f *fakeMiembroRepo) ListByUser(userID string) ([]*entity.Miembro, error) {
	if f.errList != nil {
		return nil, f.errList
	}
	var out []*entity.Miembro
	for _, m := range f.miembros {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (f *fakeMiembroRepo) GetRol(userID, orgID string) (string, error) {
	for _, m := range f.miembros {
		if m.UserID == userID && m.OrganizacionID == orgID {
			return m.Rol, nil
		}
	}
	return "", nil
}
type fakeOrgRepo struct {
	orgs   map[string]*entity.Organizacion
	errGet error
}

func (f *fakeOrgRepo) Create(o *entity.Organizacion) error { f.orgs[o.ID] = o; return nil }
func (f *fakeOrgRepo) GetByID(id string) (*entity.Organizacion, error) {
	if f.errGet != nil {
		return nil, f.errGet
	}
	return f.orgs[id], nil
}
func (f *fakeOrgRepo) GetBySlug(slug string) (*entity.Organizacion, error) {
	for _, o := range f.orgs {
		if o.Slug == slug {
			return o, nil
		}
	}
	return nil, nil
}
func (f *fakeOrgRepo) Aprobar(id, notas string) (bool, error)  { return false, nil }
func (f *fakeOrgRepo) Rechazar(id, motivo string) (bool, error) { return false, nil }
func (f *fakeOrgRepo) ListPendientes() ([]*entity.Organizacion, error) {
	return nil, nil
}
func (f *fakeOrgRepo) Delete(id string) error { delete(f.orgs, id); return nil }

type fakeConfigRepo struct {
	configs map[string]*entity.ConfiguracionOrganizacion
	errGet  error
}

func (f *fakeConfigRepo) Create(c *entity.ConfiguracionOrganizacion) error {
	f.configs[c.OrganizacionID] = c
	return nil
}
func (f *fakeConfigRepo) GetByOrganizacion(orgID string) (*entity.ConfiguracionOrganizacion, error) {
	if f.errGet != nil {
		return nil, f.errGet
	}
	return f.configs[orgID], nil
}
func (f *fakeConfigRepo) Update(c *entity.ConfiguracionOrganizacion) error {
	f.configs[c.OrganizacionID] = c
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

type escenario struct {
	perfiles *fakePerfilRepo
	miembros *fakeMiembroRepo
	orgs     *fakeOrgRepo
	configs  *fakeConfigRepo
	svc      *admission.Service
}

func nuevoEscenario() *escenario {
	e := &escenario{
		perfiles: &fakePerfilRepo{perfiles: map[string]*entity.Perfil{}},
		miembros: &fakeMiembroRepo{},
		orgs:     &fakeOrgRepo{orgs: map[string]*entity.Organizacion{}},
		configs:  &fakeConfigRepo{configs: map[string]*entity.ConfiguracionOrganizacion{}},
	}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	e.svc = admission.NewService(e.perfiles, e.miembros, e.orgs, e.configs, log)
	return e
}

func (e *escenario) conUsuario(id string, verificado bool) {
	e.perfiles.perfiles[id] = &entity.Perfil{ID: id, Email: id + "@test.dev", EmailVerificado: verificado}
}

func (e *escenario) conOrganizacion(userID, orgID, estado, tipoNegocio string) {
	e.orgs.orgs[orgID] = &entity.Organizacion{ID: orgID, Estado: estado}
	e.miembros.miembros = append(e.miembros.miembros, &entity.Miembro{
		UserID: userID, OrganizacionID: orgID, Rol: entity.RolAdmin,
	})
	e.configs.configs[orgID] = &entity.ConfiguracionOrganizacion{
		OrganizacionID: orgID, TipoNegocio: tipoNegocio,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluar_SinUserID_SinSesion(t *testing.T) {
	e := nuevoEscenario()
	out, err := e.svc.Evaluar("")
	require.NoError(t, err)
	assert.Equal(t, string(admission.EstadoSinSesion), out.Estado)
}

func TestEvaluar_PerfilInexistente_SinSesion(t *testing.T) {
	e := nuevoEscenario()
	out, err := e.svc.Evaluar("fantasma")
	require.NoError(t, err)
	assert.Equal(t, string(admission.EstadoSinSesion), out.Estado)
}

func TestEvaluar_FlujoCompleto(t *testing.T) {
	e := nuevoEscenario()
	e.conUsuario("u1", true)
	e.conOrganizacion("u1", "org1", entity.EstadoAprobada, "PANADERIA")

	out, err := e.svc.Evaluar("u1")
	require.NoError(t, err)
	assert.Equal(t, string(admission.EstadoListo), out.Estado)
	assert.Equal(t, "org1", out.OrganizacionID)
}

func TestEvaluar_OnboardingPendiente(t *testing.T) {
	e := nuevoEscenario()
	e.conUsuario("u1", true)
	e.conOrganizacion("u1", "org1", entity.EstadoAprobada, entity.TipoNegocioSinConfigurar)

	out, err := e.svc.Evaluar("u1")
	require.NoError(t, err)
	assert.Equal(t, string(admission.EstadoRequiereOnboarding), out.Estado)
}

func TestEvaluar_OrganizacionPendiente(t *testing.T) {
	e := nuevoEscenario()
	e.conUsuario("u1", true)
	e.conOrganizacion("u1", "org1", entity.EstadoPendiente, entity.TipoNegocioSinConfigurar)

	out, err := e.svc.Evaluar("u1")
	require.NoError(t, err)
	assert.Equal(t, string(admission.EstadoPendienteAprobacion), out.Estado)
}

// Un fallo al leer la configuración degrada a LISTO (fail-open): preferimos
// dejar pasar al usuario antes que bloquearlo en una pantalla de espera por un
// error transitorio.
func TestEvaluar_ErrorConfiguracion_FailOpen(t *testing.T) {
	e := nuevoEscenario()
	e.conUsuario("u1", true)
	e.conOrganizacion("u1", "org1", entity.EstadoAprobada, entity.TipoNegocioSinConfigurar)
	e.configs.errGet = errors.New("timeout")

	out, err := e.svc.Evaluar("u1")
	require.NoError(t, err)
	assert.Equal(t, string(admission.EstadoListo), out.Estado)
}

// Lo mismo si falla la lectura de membresías.
func TestEvaluar_ErrorMembresias_FailOpen(t *testing.T) {
	e := nuevoEscenario()
	e.conUsuario("u1", true)
	e.miembros.errList = errors.New("conexión perdida")

	out, err := e.svc.Evaluar("u1")
	require.NoError(t, err)
	assert.Equal(t, string(admission.EstadoListo), out.Estado)
}

// El check de super admin, en cambio, falla cerrado: sin confirmación de la
// base no se concede el panel.
func TestEvaluar_ErrorCheckAdmin_FallaCerrado(t *testing.T) {
	e := nuevoEscenario()
	e.conUsuario("u1", true)
	e.perfiles.perfiles["u1"].EsSuperAdmin = true
	e.perfiles.errAdmin = errors.New("timeout")

	out, err := e.svc.Evaluar("u1")
	require.NoError(t, err)
	assert.NotEqual(t, string(admission.EstadoSuperAdmin), out.Estado)
}

func TestEvaluar_SuperAdmin(t *testing.T) {
	e := nuevoEscenario()
	e.conUsuario("admin", true)
	e.perfiles.perfiles["admin"].EsSuperAdmin = true

	out, err := e.svc.Evaluar("admin")
	require.NoError(t, err)
	assert.Equal(t, string(admission.EstadoSuperAdmin), out.Estado)
}

func TestEvaluar_EmailSinVerificar(t *testing.T) {
	e := nuevoEscenario()
	e.conUsuario("u1", false)

	out, err := e.svc.Evaluar("u1")
	require.NoError(t, err)
	assert.Equal(t, string(admission.EstadoEmailSinVerificar), out.Estado)
}
