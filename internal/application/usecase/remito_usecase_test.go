package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remitospro/remitos-api/internal/application/dto"
	"github.com/remitospro/remitos-api/internal/application/usecase"
	"github.com/remitospro/remitos-api/internal/domain"
	"github.com/remitospro/remitos-api/internal/domain/entity"
	"github.com/remitospro/remitos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para el caso de uso de remitos
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct{ products map[string]*entity.Product }

func (r *stubProductRepo) Create(*entity.Product) error { return nil }
func (r *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *stubProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) Update(*entity.Product) error { return nil }
func (r *stubProductRepo) Delete(string) error          { return nil }

type stubClientRepo struct{ clients map[string]*entity.Client }

func (r *stubClientRepo) Create(*entity.Client) error { return nil }
func (r *stubClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}
func (r *stubClientRepo) ListByCompany(string, int, int) ([]*entity.Client, error) {
	return nil, nil
}
func (r *stubClientRepo) Update(*entity.Client) error { return nil }
func (r *stubClientRepo) Delete(string) error         { return nil }

type stubEstadoRepo struct{ estados map[string]*entity.EstadoRemito }

func (r *stubEstadoRepo) Create(*entity.EstadoRemito) error { return nil }
func (r *stubEstadoRepo) GetByID(id string) (*entity.EstadoRemito, error) {
	return r.estados[id], nil
}
func (r *stubEstadoRepo) ListByCompany(string) ([]*entity.EstadoRemito, error) { return nil, nil }
func (r *stubEstadoRepo) GetDefaultByCompany(companyID string) (*entity.EstadoRemito, error) {
	for _, e := range r.estados {
		if e.CompanyID == companyID && e.IsDefault {
			return e, nil
		}
	}
	return nil, nil
}
func (r *stubEstadoRepo) Update(*entity.EstadoRemito) error { return nil }
func (r *stubEstadoRepo) Delete(string) error               { return nil }

// memRemitoRepo acumula remitos y líneas en memoria, con numeración real.
type memRemitoRepo struct {
	remitos []*entity.Remito
	items   []*entity.RemitoItem
}

func (r *memRemitoRepo) Create(rm *entity.Remito) error {
	r.remitos = append(r.remitos, rm)
	return nil
}
func (r *memRemitoRepo) CreateItem(it *entity.RemitoItem) error {
	r.items = append(r.items, it)
	return nil
}
func (r *memRemitoRepo) GetByID(id string) (*entity.Remito, error) {
	for _, rm := range r.remitos {
		if rm.ID == id {
			return rm, nil
		}
	}
	return nil, nil
}
func (r *memRemitoRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Remito, error) {
	var out []*entity.Remito
	for _, rm := range r.remitos {
		if rm.CompanyID == companyID {
			out = append(out, rm)
		}
	}
	return out, nil
}
func (r *memRemitoRepo) GetItemsByRemito(remitoID string) ([]*entity.RemitoItem, error) {
	var out []*entity.RemitoItem
	for _, it := range r.items {
		if it.RemitoID != nil && *it.RemitoID == remitoID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *memRemitoRepo) ListItemsByCompany(string) ([]*entity.RemitoItem, error) { return nil, nil }
func (r *memRemitoRepo) NextNumber(companyID string) (int, error) {
	max := 0
	for _, rm := range r.remitos {
		if rm.CompanyID == companyID && rm.Number > max {
			max = rm.Number
		}
	}
	return max + 1, nil
}
func (r *memRemitoRepo) Update(*entity.Remito) error { return nil }
func (r *memRemitoRepo) Delete(string) error         { return nil }

// passthroughTxRunner ejecuta el callback directamente con los repos dados.
type passthroughTxRunner struct {
	remitoRepo  repository.RemitoRepository
	productRepo repository.ProductRepository
}

func (t *passthroughTxRunner) RunRemito(_ context.Context, fn func(
	remitoRepo repository.RemitoRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(t.remitoRepo, t.productRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	miEmpresa   = "company-mia"
	otraEmpresa = "company-otra"
	operadorID  = "user-operador"
)

func buildRemitoUC() (*usecase.RemitoUseCase, *memRemitoRepo) {
	products := &stubProductRepo{products: map[string]*entity.Product{
		"prod-yerba":  {ID: "prod-yerba", CompanyID: miEmpresa, Name: "Yerba mate", Description: "paquete 1kg", Price: decimal.NewFromInt(2500)},
		"prod-azucar": {ID: "prod-azucar", CompanyID: miEmpresa, Name: "Azúcar", Price: decimal.NewFromInt(900)},
		"prod-ajeno":  {ID: "prod-ajeno", CompanyID: otraEmpresa, Name: "Ajeno", Price: decimal.NewFromInt(100)},
	}}
	clients := &stubClientRepo{clients: map[string]*entity.Client{
		"cli-sur":   {ID: "cli-sur", CompanyID: miEmpresa, Name: "Almacén Sur"},
		"cli-ajeno": {ID: "cli-ajeno", CompanyID: otraEmpresa, Name: "Ajeno"},
	}}
	estados := &stubEstadoRepo{estados: map[string]*entity.EstadoRemito{
		"est-pend":  {ID: "est-pend", CompanyID: miEmpresa, Name: "Pendiente", IsDefault: true},
		"est-listo": {ID: "est-listo", CompanyID: miEmpresa, Name: "Listo"},
		"est-ajeno": {ID: "est-ajeno", CompanyID: otraEmpresa, Name: "Ajeno"},
	}}
	remitos := &memRemitoRepo{}
	tx := &passthroughTxRunner{remitoRepo: remitos, productRepo: products}
	return usecase.NewRemitoUseCase(tx, remitos, products, clients, estados), remitos
}

func itemReq(productID string, qty, price int64) dto.RemitoItemRequest {
	return dto.RemitoItemRequest{
		ProductID: productID,
		Quantity:  decimal.NewFromInt(qty),
		UnitPrice: decimal.NewFromInt(price),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRemitoCreate_NumeracionSecuencialPorEmpresa(t *testing.T) {
	uc, _ := buildRemitoUC()

	first, err := uc.Create(context.Background(), miEmpresa, operadorID, dto.CreateRemitoRequest{
		Items: []dto.RemitoItemRequest{itemReq("prod-yerba", 2, 2500)},
	})
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), miEmpresa, operadorID, dto.CreateRemitoRequest{
		Items: []dto.RemitoItemRequest{itemReq("prod-azucar", 1, 900)},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, operadorID, first.CreatedByID)
}

func TestRemitoCreate_SnapshotsYLineTotal(t *testing.T) {
	uc, repo := buildRemitoUC()

	out, err := uc.Create(context.Background(), miEmpresa, operadorID, dto.CreateRemitoRequest{
		Items: []dto.RemitoItemRequest{itemReq("prod-yerba", 3, 2000)},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	it := out.Items[0]
	assert.Equal(t, "Yerba mate", it.ProductName, "snapshot del nombre al momento de la escritura")
	assert.Equal(t, "paquete 1kg", it.ProductDescription)
	assert.True(t, decimal.NewFromInt(6000).Equal(it.LineTotal), "line_total = quantity * unit_price")
	require.Len(t, repo.items, 1)
}

func TestRemitoCreate_PrecioCero_TomaPrecioDelProducto(t *testing.T) {
	uc, _ := buildRemitoUC()

	out, err := uc.Create(context.Background(), miEmpresa, operadorID, dto.CreateRemitoRequest{
		Items: []dto.RemitoItemRequest{itemReq("prod-yerba", 2, 0)},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.True(t, decimal.NewFromInt(2500).Equal(out.Items[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(5000).Equal(out.Items[0].LineTotal))
}

func TestRemitoCreate_SinEstado_UsaDefault(t *testing.T) {
	uc, _ := buildRemitoUC()

	out, err := uc.Create(context.Background(), miEmpresa, operadorID, dto.CreateRemitoRequest{
		Items: []dto.RemitoItemRequest{itemReq("prod-yerba", 1, 100)},
	})
	require.NoError(t, err)
	assert.Equal(t, "est-pend", out.Estado)
}

func TestRemitoCreate_EstadoExplicito(t *testing.T) {
	uc, _ := buildRemitoUC()

	out, err := uc.Create(context.Background(), miEmpresa, operadorID, dto.CreateRemitoRequest{
		Estado: "est-listo",
		Items:  []dto.RemitoItemRequest{itemReq("prod-yerba", 1, 100)},
	})
	require.NoError(t, err)
	assert.Equal(t, "est-listo", out.Estado)
}

func TestRemitoCreate_EstadoDeOtraEmpresa_ErrNotFound(t *testing.T) {
	uc, _ := buildRemitoUC()

	_, err := uc.Create(context.Background(), miEmpresa, operadorID, dto.CreateRemitoRequest{
		Estado: "est-ajeno",
		Items:  []dto.RemitoItemRequest{itemReq("prod-yerba", 1, 100)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemitoCreate_ProductoDeOtraEmpresa_ErrForbidden(t *testing.T) {
	uc, repo := buildRemitoUC()

	_, err := uc.Create(context.Background(), miEmpresa, operadorID, dto.CreateRemitoRequest{
		Items: []dto.RemitoItemRequest{itemReq("prod-ajeno", 1, 100)},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, repo.remitos, "no debe persistir nada")
}

func TestRemitoCreate_ClienteDeOtraEmpresa_ErrForbidden(t *testing.T) {
	uc, _ := buildRemitoUC()

	clienteAjeno := "cli-ajeno"
	_, err := uc.Create(context.Background(), miEmpresa, operadorID, dto.CreateRemitoRequest{
		ClientID: &clienteAjeno,
		Items:    []dto.RemitoItemRequest{itemReq("prod-yerba", 1, 100)},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRemitoCreate_SinItems_ErrInvalidInput(t *testing.T) {
	uc, _ := buildRemitoUC()

	_, err := uc.Create(context.Background(), miEmpresa, operadorID, dto.CreateRemitoRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRemitoCreate_CantidadCero_ErrInvalidInput(t *testing.T) {
	uc, _ := buildRemitoUC()

	_, err := uc.Create(context.Background(), miEmpresa, operadorID, dto.CreateRemitoRequest{
		Items: []dto.RemitoItemRequest{itemReq("prod-yerba", 0, 100)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRemitoGetByID_DeOtraEmpresa_ErrNotFound(t *testing.T) {
	uc, repo := buildRemitoUC()
	repo.remitos = append(repo.remitos, &entity.Remito{ID: "rem-x", CompanyID: otraEmpresa, Number: 1})

	_, err := uc.GetByID(miEmpresa, "rem-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
