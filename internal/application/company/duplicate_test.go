package company_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remitospro/remitos-api/internal/application/company"
	"github.com/remitospro/remitos-api/internal/application/dto"
	"github.com/remitospro/remitos-api/internal/domain"
	"github.com/remitospro/remitos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore simula la base: todas las tablas en slices. Los fakes de repos
// escriben acá, y el fakeTxRunner hace snapshot/restore para emular el
// rollback transaccional.
type memStore struct {
	companies []*entity.Company
	users     []*entity.User
	categories []*entity.Category
	products  []*entity.Product
	clients   []*entity.Client
	estados   []*entity.EstadoRemito
	remitos   []*entity.Remito
	items     []*entity.RemitoItem

	// inyección de fallos: el repo indicado falla en Create
	failUserCreate   bool
	failRemitoCreate bool
}

func (s *memStore) snapshot() memStore {
	cp := *s
	cp.companies = append([]*entity.Company(nil), s.companies...)
	cp.users = append([]*entity.User(nil), s.users...)
	cp.categories = append([]*entity.Category(nil), s.categories...)
	cp.products = append([]*entity.Product(nil), s.products...)
	cp.clients = append([]*entity.Client(nil), s.clients...)
	cp.estados = append([]*entity.EstadoRemito(nil), s.estados...)
	cp.remitos = append([]*entity.Remito(nil), s.remitos...)
	cp.items = append([]*entity.RemitoItem(nil), s.items...)
	return cp
}

func (s *memStore) restore(snap memStore) {
	s.companies = snap.companies
	s.users = snap.users
	s.categories = snap.categories
	s.products = snap.products
	s.clients = snap.clients
	s.estados = snap.estados
	s.remitos = snap.remitos
	s.items = snap.items
}

type fakeCompanyRepo struct{ s *memStore }

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	for _, e := range r.s.companies {
		if e.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.companies = append(r.s.companies, c)
	return nil
}
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	for _, e := range r.s.companies {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeCompanyRepo) GetByName(name string) (*entity.Company, error) {
	for _, e := range r.s.companies {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeCompanyRepo) Update(*entity.Company) error { return nil }
func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	return r.s.companies, nil
}
func (r *fakeCompanyRepo) Delete(string) error { return nil }

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Create(u *entity.User) error {
	if r.s.failUserCreate {
		return errors.New("insert user: fallo inyectado")
	}
	r.s.users = append(r.s.users, u)
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, e := range r.s.users {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, e := range r.s.users {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeUserRepo) Update(*entity.User) error { return nil }
func (r *fakeUserRepo) Delete(string) error       { return nil }

type fakeCategoryRepo struct{ s *memStore }

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.s.categories = append(r.s.categories, c)
	return nil
}
func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, e := range r.s.categories {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeCategoryRepo) ListByCompany(companyID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, e := range r.s.categories {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeCategoryRepo) Update(*entity.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(string) error           { return nil }

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.s.products = append(r.s.products, p)
	return nil
}
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, e := range r.s.products {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, e := range r.s.products {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(string) error          { return nil }

type fakeClientRepo struct{ s *memStore }

func (r *fakeClientRepo) Create(c *entity.Client) error {
	r.s.clients = append(r.s.clients, c)
	return nil
}
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	for _, e := range r.s.clients {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeClientRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, e := range r.s.clients {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeClientRepo) Update(*entity.Client) error { return nil }
func (r *fakeClientRepo) Delete(string) error         { return nil }

type fakeEstadoRepo struct{ s *memStore }

func (r *fakeEstadoRepo) Create(e *entity.EstadoRemito) error {
	r.s.estados = append(r.s.estados, e)
	return nil
}
func (r *fakeEstadoRepo) GetByID(id string) (*entity.EstadoRemito, error) {
	for _, e := range r.s.estados {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeEstadoRepo) ListByCompany(companyID string) ([]*entity.EstadoRemito, error) {
	var out []*entity.EstadoRemito
	for _, e := range r.s.estados {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeEstadoRepo) GetDefaultByCompany(companyID string) (*entity.EstadoRemito, error) {
	for _, e := range r.s.estados {
		if e.CompanyID == companyID && e.IsDefault {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeEstadoRepo) Update(*entity.EstadoRemito) error { return nil }
func (r *fakeEstadoRepo) Delete(string) error               { return nil }

type fakeRemitoRepo struct{ s *memStore }

func (r *fakeRemitoRepo) Create(rm *entity.Remito) error {
	if r.s.failRemitoCreate {
		return errors.New("insert remito: fallo inyectado")
	}
	r.s.remitos = append(r.s.remitos, rm)
	return nil
}
func (r *fakeRemitoRepo) CreateItem(it *entity.RemitoItem) error {
	r.s.items = append(r.s.items, it)
	return nil
}
func (r *fakeRemitoRepo) GetByID(id string) (*entity.Remito, error) {
	for _, e := range r.s.remitos {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeRemitoRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Remito, error) {
	var out []*entity.Remito
	for _, e := range r.s.remitos {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeRemitoRepo) GetItemsByRemito(remitoID string) ([]*entity.RemitoItem, error) {
	var out []*entity.RemitoItem
	for _, e := range r.s.items {
		if e.RemitoID != nil && *e.RemitoID == remitoID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeRemitoRepo) ListItemsByCompany(companyID string) ([]*entity.RemitoItem, error) {
	remitoIDs := make(map[string]bool)
	for _, rm := range r.s.remitos {
		if rm.CompanyID == companyID {
			remitoIDs[rm.ID] = true
		}
	}
	var out []*entity.RemitoItem
	for _, e := range r.s.items {
		if e.RemitoID != nil && remitoIDs[*e.RemitoID] {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeRemitoRepo) NextNumber(companyID string) (int, error) {
	max := 0
	for _, e := range r.s.remitos {
		if e.CompanyID == companyID && e.Number > max {
			max = e.Number
		}
	}
	return max + 1, nil
}
func (r *fakeRemitoRepo) Update(*entity.Remito) error { return nil }
func (r *fakeRemitoRepo) Delete(string) error         { return nil }

// fakeTxRunner emula la atomicidad: snapshot antes de fn, restore si falla.
type fakeTxRunner struct{ s *memStore }

func (t *fakeTxRunner) RunClone(_ context.Context, fn func(repos company.TxRepos) error) error {
	snap := t.s.snapshot()
	repos := company.TxRepos{
		Companies:  &fakeCompanyRepo{s: t.s},
		Users:      &fakeUserRepo{s: t.s},
		Categories: &fakeCategoryRepo{s: t.s},
		Products:   &fakeProductRepo{s: t.s},
		Clients:    &fakeClientRepo{s: t.s},
		Estados:    &fakeEstadoRepo{s: t.s},
		Remitos:    &fakeRemitoRepo{s: t.s},
	}
	if err := fn(repos); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: la empresa "Acme" con datos en todas las tablas
// ──────────────────────────────────────────────────────────────────────────────

const (
	acmeID   = "company-acme"
	callerID = "superadmin-01"
)

func str(s string) *string { return &s }

// seedAcme arma una empresa completa: dos estados propios, una categoría,
// dos productos (uno sin categoría), un cliente, dos usuarios (uno con hash),
// un remito con dos líneas.
func seedAcme() *memStore {
	now := time.Now()
	hash := "$2a$10$hashdeacme"
	s := &memStore{}
	s.companies = append(s.companies, &entity.Company{ID: acmeID, Name: "Acme", CreatedAt: now, UpdatedAt: now})

	s.estados = append(s.estados,
		&entity.EstadoRemito{ID: "est-pend", CompanyID: acmeID, Name: "Pendiente", Color: "#f59e0b", IsActive: true, IsDefault: true, SortOrder: 1},
		&entity.EstadoRemito{ID: "est-desp", CompanyID: acmeID, Name: "Despachado", Color: "#3b82f6", IsActive: true, SortOrder: 2},
	)
	s.categories = append(s.categories,
		&entity.Category{ID: "cat-bebidas", CompanyID: acmeID, Name: "Bebidas"},
	)
	s.products = append(s.products,
		&entity.Product{ID: "prod-agua", CompanyID: acmeID, Name: "Agua mineral", Price: decimal.NewFromInt(500), Stock: 10, CategoryID: str("cat-bebidas")},
		&entity.Product{ID: "prod-caja", CompanyID: acmeID, Name: "Caja cartón", Price: decimal.NewFromInt(120), Stock: 4},
	)
	s.clients = append(s.clients,
		&entity.Client{ID: "cli-norte", CompanyID: acmeID, Name: "Distribuidora Norte", Email: "norte@example.com"},
	)
	s.users = append(s.users,
		&entity.User{ID: "user-ana", CompanyID: acmeID, Email: "ana@acme.com", Name: "Ana", Role: entity.RoleAdmin, PasswordHash: &hash, IsActive: true},
		&entity.User{ID: "user-luis", CompanyID: acmeID, Email: "luis@acme.com", Name: "Luis", Role: entity.RoleOperador, IsActive: true, HasTemporaryPassword: true},
	)
	s.remitos = append(s.remitos,
		&entity.Remito{ID: "rem-1", CompanyID: acmeID, Number: 1, ClientID: str("cli-norte"), Estado: "est-desp", Notes: "entrega urgente", CreatedByID: "user-ana"},
	)
	s.items = append(s.items,
		&entity.RemitoItem{ID: "item-1", RemitoID: str("rem-1"), ProductID: str("prod-agua"), Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(500), LineTotal: decimal.NewFromInt(1500), ProductName: "Agua mineral"},
		&entity.RemitoItem{ID: "item-2", RemitoID: str("rem-1"), ProductID: str("prod-caja"), Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(120), LineTotal: decimal.NewFromInt(120), ProductName: "Caja cartón", ProductDescription: "sin marca"},
	)
	return s
}

func newUC(s *memStore) *company.DuplicateUseCase {
	return company.NewDuplicateUseCase(&fakeTxRunner{s: s}, &fakeCompanyRepo{s: s})
}

func byCompany[T any](list []T, companyID string, getID func(T) string) []T {
	var out []T
	for _, e := range list {
		if getID(e) == companyID {
			out = append(out, e)
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Duplicación completa de Acme con todos los flags encendidos.
func TestDuplicate_TodosLosFlags_CopiaCompleta(t *testing.T) {
	s := seedAcme()
	uc := newUC(s)

	out, err := uc.Duplicate(context.Background(), callerID, acmeID, dto.DuplicateCompanyRequest{
		Name: "Acme Sucursal", Estados: true, Categorias: true, Productos: true,
		Clientes: true, Remitos: true, Usuarios: true,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Acme Sucursal", out.Name)
	assert.NotEqual(t, acmeID, out.ID, "la empresa nueva debe tener ID propio")

	newID := out.ID

	estados := byCompany(s.estados, newID, func(e *entity.EstadoRemito) string { return e.CompanyID })
	require.Len(t, estados, 2, "deben clonarse los dos estados de Acme, no los canónicos")

	categorias := byCompany(s.categories, newID, func(c *entity.Category) string { return c.CompanyID })
	require.Len(t, categorias, 1)
	assert.NotEqual(t, "cat-bebidas", categorias[0].ID)

	productos := byCompany(s.products, newID, func(p *entity.Product) string { return p.CompanyID })
	require.Len(t, productos, 2)
	for _, p := range productos {
		switch p.Name {
		case "Agua mineral":
			require.NotNil(t, p.CategoryID)
			assert.Equal(t, categorias[0].ID, *p.CategoryID, "category_id debe re-apuntar a la categoría clonada")
		case "Caja cartón":
			assert.Nil(t, p.CategoryID, "producto sin categoría queda sin categoría")
		}
	}

	clientes := byCompany(s.clients, newID, func(c *entity.Client) string { return c.CompanyID })
	require.Len(t, clientes, 1)

	remitos := byCompany(s.remitos, newID, func(r *entity.Remito) string { return r.CompanyID })
	require.Len(t, remitos, 1)
	rm := remitos[0]
	assert.Equal(t, 1, rm.Number, "el número del remito se conserva")
	require.NotNil(t, rm.ClientID)
	assert.Equal(t, clientes[0].ID, *rm.ClientID, "client_id debe re-apuntar al cliente clonado")
	assert.Equal(t, callerID, rm.CreatedByID, "created_by de la copia es quien ejecuta la duplicación")

	// El estado del remito se re-mapea por nombre: "Despachado" origen → "Despachado" destino
	var despachadoNuevo string
	for _, e := range estados {
		if e.Name == "Despachado" {
			despachadoNuevo = e.ID
		}
	}
	require.NotEmpty(t, despachadoNuevo)
	assert.Equal(t, despachadoNuevo, rm.Estado)

	items, err := (&fakeRemitoRepo{s: s}).GetItemsByRemito(rm.ID)
	require.NoError(t, err)
	require.Len(t, items, 2, "las dos líneas deben colgar del remito clonado")
	for _, it := range items {
		require.NotNil(t, it.ProductID)
		assert.NotEqual(t, "prod-agua", *it.ProductID, "product_id debe re-apuntar al producto clonado")
		assert.NotEqual(t, "prod-caja", *it.ProductID)
		assert.NotEmpty(t, it.ProductName, "los snapshots se copian tal cual")
	}
}

// Con Estados=false la empresa nueva se siembra con los cuatro canónicos.
func TestDuplicate_SinEstados_SiembraCanonicos(t *testing.T) {
	s := seedAcme()
	uc := newUC(s)

	out, err := uc.Duplicate(context.Background(), callerID, acmeID, dto.DuplicateCompanyRequest{
		Name: "Acme Dos",
	})
	require.NoError(t, err)

	estados := byCompany(s.estados, out.ID, func(e *entity.EstadoRemito) string { return e.CompanyID })
	require.Len(t, estados, 4)
	nombres := make(map[string]bool)
	defaults := 0
	for _, e := range estados {
		nombres[e.Name] = true
		if e.IsDefault {
			defaults++
		}
	}
	assert.True(t, nombres["Pendiente"] && nombres["Preparado"] && nombres["Entregado"] && nombres["Cancelado"])
	assert.Equal(t, 1, defaults, "exactamente un estado default")
}

// Remitos clonados con Estados=false: el estado se re-mapea por NOMBRE contra
// los canónicos; "Despachado" no existe en destino y conserva el ID crudo de
// origen como fallback.
func TestDuplicate_RemitosSinEstados_RemapeaPorNombreConFallback(t *testing.T) {
	s := seedAcme()
	// un segundo remito en estado Pendiente, que sí tiene homónimo canónico
	s.remitos = append(s.remitos, &entity.Remito{ID: "rem-2", CompanyID: acmeID, Number: 2, Estado: "est-pend", CreatedByID: "user-ana"})
	uc := newUC(s)

	out, err := uc.Duplicate(context.Background(), callerID, acmeID, dto.DuplicateCompanyRequest{
		Name: "Acme Tres", Remitos: true,
	})
	require.NoError(t, err)

	estados := byCompany(s.estados, out.ID, func(e *entity.EstadoRemito) string { return e.CompanyID })
	var pendienteNuevo string
	for _, e := range estados {
		if e.Name == "Pendiente" {
			pendienteNuevo = e.ID
		}
	}
	require.NotEmpty(t, pendienteNuevo)

	remitos := byCompany(s.remitos, out.ID, func(r *entity.Remito) string { return r.CompanyID })
	require.Len(t, remitos, 2)
	for _, rm := range remitos {
		switch rm.Number {
		case 1:
			assert.Equal(t, "est-desp", rm.Estado, "sin homónimo en destino se conserva el valor original")
		case 2:
			assert.Equal(t, pendienteNuevo, rm.Estado, "con homónimo se re-apunta al estado nuevo")
		}
	}
}

// Productos clonados sin clonar categorías: category_id de origen se conserva
// tal cual (carry-over heredado).
func TestDuplicate_ProductosSinCategorias_ConservaCategoryIDDeOrigen(t *testing.T) {
	s := seedAcme()
	uc := newUC(s)

	out, err := uc.Duplicate(context.Background(), callerID, acmeID, dto.DuplicateCompanyRequest{
		Name: "Acme Cuatro", Productos: true,
	})
	require.NoError(t, err)

	productos := byCompany(s.products, out.ID, func(p *entity.Product) string { return p.CompanyID })
	require.Len(t, productos, 2)
	for _, p := range productos {
		if p.Name == "Agua mineral" {
			require.NotNil(t, p.CategoryID)
			assert.Equal(t, "cat-bebidas", *p.CategoryID, "sin clonar categorías se conserva el ID de origen")
		}
	}
}

// Remitos clonados sin clonar clientes ni productos: client_id y product_id
// de origen se conservan tal cual.
func TestDuplicate_RemitosSinClientesNiProductos_ConservaIDsDeOrigen(t *testing.T) {
	s := seedAcme()
	uc := newUC(s)

	out, err := uc.Duplicate(context.Background(), callerID, acmeID, dto.DuplicateCompanyRequest{
		Name: "Acme Cinco", Estados: true, Remitos: true,
	})
	require.NoError(t, err)

	remitos := byCompany(s.remitos, out.ID, func(r *entity.Remito) string { return r.CompanyID })
	require.Len(t, remitos, 1)
	require.NotNil(t, remitos[0].ClientID)
	assert.Equal(t, "cli-norte", *remitos[0].ClientID)

	items, err := (&fakeRemitoRepo{s: s}).GetItemsByRemito(remitos[0].ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		require.NotNil(t, it.ProductID)
		assert.Contains(t, []string{"prod-agua", "prod-caja"}, *it.ProductID)
	}
}

// Usuarios clonados: nunca se copia el hash; quedan con contraseña pendiente.
func TestDuplicate_Usuarios_SinHashYConPasswordTemporal(t *testing.T) {
	s := seedAcme()
	uc := newUC(s)

	out, err := uc.Duplicate(context.Background(), callerID, acmeID, dto.DuplicateCompanyRequest{
		Name: "Acme Seis", Usuarios: true,
	})
	require.NoError(t, err)

	usuarios := byCompany(s.users, out.ID, func(u *entity.User) string { return u.CompanyID })
	require.Len(t, usuarios, 2)
	for _, u := range usuarios {
		assert.Nil(t, u.PasswordHash, "el hash jamás se copia entre empresas")
		assert.True(t, u.HasTemporaryPassword)
		assert.NotEqual(t, "user-ana", u.ID)
		assert.NotEqual(t, "user-luis", u.ID)
	}
	// los perfiles (email, rol) sí se copian
	emails := map[string]bool{}
	for _, u := range usuarios {
		emails[u.Email] = true
	}
	assert.True(t, emails["ana@acme.com"] && emails["luis@acme.com"])
}

// Atomicidad: si un paso intermedio falla, no queda ni la empresa nueva ni
// ningún sub-recurso a medias.
func TestDuplicate_FalloIntermedio_NoDejaNada(t *testing.T) {
	s := seedAcme()
	s.failUserCreate = true
	uc := newUC(s)

	before := len(s.companies)
	_, err := uc.Duplicate(context.Background(), callerID, acmeID, dto.DuplicateCompanyRequest{
		Name: "Acme Rota", Estados: true, Categorias: true, Productos: true,
		Clientes: true, Remitos: true, Usuarios: true,
	})
	require.Error(t, err)

	assert.Len(t, s.companies, before, "la empresa nueva no debe persistir")
	for _, e := range s.estados {
		assert.Equal(t, acmeID, e.CompanyID, "ningún estado clonado debe persistir")
	}
	for _, p := range s.products {
		assert.Equal(t, acmeID, p.CompanyID)
	}
	for _, rm := range s.remitos {
		assert.Equal(t, acmeID, rm.CompanyID)
	}
}

func TestDuplicate_FalloEnRemitos_NoDejaNada(t *testing.T) {
	s := seedAcme()
	s.failRemitoCreate = true
	uc := newUC(s)

	_, err := uc.Duplicate(context.Background(), callerID, acmeID, dto.DuplicateCompanyRequest{
		Name: "Acme Rota", Remitos: true,
	})
	require.Error(t, err)
	assert.Len(t, s.companies, 1)
	assert.Len(t, s.estados, 2, "los canónicos sembrados también se descartan")
}

// Validaciones de entrada.
func TestDuplicate_NombreVacio_ErrInvalidInput(t *testing.T) {
	s := seedAcme()
	uc := newUC(s)

	_, err := uc.Duplicate(context.Background(), callerID, acmeID, dto.DuplicateCompanyRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDuplicate_NombreTomado_ErrDuplicate(t *testing.T) {
	s := seedAcme()
	uc := newUC(s)

	_, err := uc.Duplicate(context.Background(), callerID, acmeID, dto.DuplicateCompanyRequest{Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, s.companies, 1)
}

func TestDuplicate_OrigenInexistente_ErrNotFound(t *testing.T) {
	s := seedAcme()
	uc := newUC(s)

	_, err := uc.Duplicate(context.Background(), callerID, "company-fantasma", dto.DuplicateCompanyRequest{Name: "Nueva"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El nombre se guarda con espacios recortados.
func TestDuplicate_NombreConEspacios_SeRecorta(t *testing.T) {
	s := seedAcme()
	uc := newUC(s)

	out, err := uc.Duplicate(context.Background(), callerID, acmeID, dto.DuplicateCompanyRequest{Name: "  Acme Siete  "})
	require.NoError(t, err)
	assert.Equal(t, "Acme Siete", out.Name)
}
