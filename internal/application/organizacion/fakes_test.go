package organizacion_test

import (
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/pkg/logger"
)

// Fakes en memoria de los puertos, con errores inyectables y contadores de
// llamadas para verificar qué tocó cada caso de uso.

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type fakeOrgRepo struct {
	orgs map[string]*entity.Organizacion

	createErr error
	deleteErr error

	deleteCalls   int
	aprobarCalls  int
	rechazarCalls int
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{orgs: map[string]*entity.Organizacion{}}
}

func (f *fakeOrgRepo) Create(o *entity.Organizacion) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.orgs[o.ID] = o
	return nil
}

func (f *fakeOrgRepo) GetByID(id string) (*entity.Organizacion, error) {
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

// Aprobar replica la guarda del UPDATE real: solo aplica desde PENDIENTE.
func (f *fakeOrgRepo) Aprobar(id, notas string) (bool, error) {
	f.aprobarCalls++
	o, ok := f.orgs[id]
	if !ok || o.Estado != entity.EstadoPendiente {
		return false, nil
	}
	o.Estado = entity.EstadoAprobada
	o.NotasAprobacion = notas
	return true, nil
}

func (f *fakeOrgRepo) Rechazar(id, motivo string) (bool, error) {
	f.rechazarCalls++
	o, ok := f.orgs[id]
	if !ok || o.Estado != entity.EstadoPendiente {
		return false, nil
	}
	o.Estado = entity.EstadoRechazada
	o.MotivoRechazo = motivo
	return true, nil
}

func (f *fakeOrgRepo) ListPendientes() ([]*entity.Organizacion, error) {
	var out []*entity.Organizacion
	for _, o := range f.orgs {
		if o.Estado == entity.EstadoPendiente {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrgRepo) Delete(id string) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.orgs, id)
	return nil
}

type fakeMiembroRepo struct {
	miembros  []*entity.Miembro
	createErr error
}

func (f *fakeMiembroRepo) Create(m *entity.Miembro) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.miembros = append(f.miembros, m)
	return nil
}

func (f *fakeMiembroRepo) ListByUser(userID string) ([]*entity.Miembro, error) {
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

type fakeConfigRepo struct {
	configs   map[string]*entity.ConfiguracionOrganizacion
	createErr error
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: map[string]*entity.ConfiguracionOrganizacion{}}
}

func (f *fakeConfigRepo) Create(c *entity.ConfiguracionOrganizacion) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.configs[c.OrganizacionID] = c
	return nil
}
func (f *fakeConfigRepo) GetByOrganizacion(orgID string) (*entity.ConfiguracionOrganizacion, error) {
	return f.configs[orgID], nil
}
func (f *fakeConfigRepo) Update(c *entity.ConfiguracionOrganizacion) error {
	f.configs[c.OrganizacionID] = c
	return nil
}

type fakeCategoriaRepo struct {
	categorias []*entity.Categoria
	batchErr   error
}

func (f *fakeCategoriaRepo) Create(c *entity.Categoria) error {
	f.categorias = append(f.categorias, c)
	return nil
}
func (f *fakeCategoriaRepo) CreateBatch(cs []*entity.Categoria) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.categorias = append(f.categorias, cs...)
	return nil
}
func (f *fakeCategoriaRepo) ListByOrganizacion(orgID string) ([]*entity.Categoria, error) {
	var out []*entity.Categoria
	for _, c := range f.categorias {
		if c.OrganizacionID == orgID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeCategoriaRepo) Delete(id string) error { return nil }

type fakeNotificador struct {
	eventos []*entity.Organizacion
}

func (f *fakeNotificador) NotificarTransicion(org *entity.Organizacion) {
	f.eventos = append(f.eventos, org)
}
