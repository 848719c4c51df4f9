package company

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/remitospro/remitos-api/internal/application/dto"
	"github.com/remitospro/remitos-api/internal/domain"
	"github.com/remitospro/remitos-api/internal/domain/entity"
	"github.com/remitospro/remitos-api/internal/domain/repository"
)

// DuplicateUseCase crea una empresa nueva copiando selectivamente los
// sub-recursos de una empresa de origen, re-apuntando todas las referencias
// internas a los IDs recién generados.
//
// Orden de la cascada: estados antes que remitos (los remitos necesitan el
// mapa de estados); categorías antes que productos; clientes antes que
// remitos; remitos antes que sus líneas; productos antes que líneas. Los
// usuarios no tienen dependientes y se clonan al final.
//
// Los mapas origen→destino se capturan en el momento de cada insert, fila por
// fila; no se asume ninguna correspondencia por orden de inserción.
type DuplicateUseCase struct {
	txRunner    CloneTxRunner
	companyRepo repository.CompanyRepository
}

// NewDuplicateUseCase construye el caso de uso.
func NewDuplicateUseCase(txRunner CloneTxRunner, companyRepo repository.CompanyRepository) *DuplicateUseCase {
	return &DuplicateUseCase{txRunner: txRunner, companyRepo: companyRepo}
}

// Duplicate ejecuta la clonación. El caller ya fue autorizado como superadmin
// en la capa HTTP; callerID se usa como created_by de los remitos clonados.
//
// Errores:
//   - domain.ErrInvalidInput  nombre vacío.
//   - domain.ErrNotFound      empresa de origen inexistente.
//   - domain.ErrDuplicate     ya hay una empresa con ese nombre (pre-chequeo
//     amable; la garantía real es el constraint UNIQUE de companies.name, que
//     también sale como ErrDuplicate desde el insert).
func (uc *DuplicateUseCase) Duplicate(ctx context.Context, callerID, sourceID string, in dto.DuplicateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	source, err := uc.companyRepo.GetByID(sourceID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.companyRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	newCompany := &entity.Company{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.RunClone(ctx, func(repos TxRepos) error {
		if err := repos.Companies.Create(newCompany); err != nil {
			return err
		}

		estadoIDByName, err := cloneEstados(repos.Estados, sourceID, newCompany.ID, in.Estados, now)
		if err != nil {
			return err
		}

		categoryMap := map[string]string{}
		if in.Categorias {
			categoryMap, err = cloneCategorias(repos.Categories, sourceID, newCompany.ID, now)
			if err != nil {
				return err
			}
		}

		productMap := map[string]string{}
		if in.Productos {
			productMap, err = cloneProductos(repos.Products, sourceID, newCompany.ID, in.Categorias, categoryMap, now)
			if err != nil {
				return err
			}
		}

		clientMap := map[string]string{}
		if in.Clientes {
			clientMap, err = cloneClientes(repos.Clients, sourceID, newCompany.ID, now)
			if err != nil {
				return err
			}
		}

		if in.Remitos {
			if err := cloneRemitos(repos.Remitos, repos.Estados, sourceID, newCompany.ID, callerID, cloneRemitosDeps{
				clientesClonados:  in.Clientes,
				productosClonados: in.Productos,
				clientMap:         clientMap,
				productMap:        productMap,
				estadoIDByName:    estadoIDByName,
			}, now); err != nil {
				return err
			}
		}

		if in.Usuarios {
			if err := cloneUsuarios(repos.Users, sourceID, newCompany.ID, now); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CompanyResponse{
		ID:        newCompany.ID,
		Name:      newCompany.Name,
		CreatedAt: newCompany.CreatedAt,
		UpdatedAt: newCompany.UpdatedAt,
	}, nil
}

// cloneEstados copia los estados de origen (o siembra los canónicos si
// clonar=false) y devuelve el índice nombre → ID nuevo, usado después para
// re-apuntar el estado de cada remito.
func cloneEstados(repo repository.EstadoRepository, sourceID, newID string, clonar bool, now time.Time) (map[string]string, error) {
	idByName := make(map[string]string)

	if !clonar {
		for _, base := range entity.CanonicalEstados() {
			estado := base
			estado.ID = uuid.New().String()
			estado.CompanyID = newID
			estado.CreatedAt = now
			estado.UpdatedAt = now
			if err := repo.Create(&estado); err != nil {
				return nil, err
			}
			idByName[estado.Name] = estado.ID
		}
		return idByName, nil
	}

	sources, err := repo.ListByCompany(sourceID)
	if err != nil {
		return nil, err
	}
	for _, src := range sources {
		estado := &entity.EstadoRemito{
			ID:          uuid.New().String(),
			CompanyID:   newID,
			Name:        src.Name,
			Description: src.Description,
			Color:       src.Color,
			Icon:        src.Icon,
			IsActive:    src.IsActive,
			IsDefault:   src.IsDefault,
			SortOrder:   src.SortOrder,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repo.Create(estado); err != nil {
			return nil, err
		}
		idByName[estado.Name] = estado.ID
	}
	return idByName, nil
}

func cloneCategorias(repo repository.CategoryRepository, sourceID, newID string, now time.Time) (map[string]string, error) {
	sources, err := repo.ListByCompany(sourceID)
	if err != nil {
		return nil, err
	}
	idMap := make(map[string]string, len(sources))
	for _, src := range sources {
		category := &entity.Category{
			ID:          uuid.New().String(),
			CompanyID:   newID,
			Name:        src.Name,
			Description: src.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repo.Create(category); err != nil {
			return nil, err
		}
		idMap[src.ID] = category.ID
	}
	return idMap, nil
}

// cloneProductos copia los productos re-apuntando category_id con el mapa de
// categorías. Si las categorías NO se clonaron, se conserva el category_id de
// origen tal cual (comportamiento heredado del producto; la fila nueva queda
// apuntando a una categoría de otra empresa — ver nota en DESIGN.md).
func cloneProductos(repo repository.ProductRepository, sourceID, newID string, categoriasClonadas bool, categoryMap map[string]string, now time.Time) (map[string]string, error) {
	sources, err := repo.ListByCompany(sourceID, 0, 0)
	if err != nil {
		return nil, err
	}
	idMap := make(map[string]string, len(sources))
	for _, src := range sources {
		var categoryID *string
		switch {
		case src.CategoryID == nil:
			categoryID = nil
		case categoriasClonadas:
			if mapped, ok := categoryMap[*src.CategoryID]; ok {
				categoryID = &mapped
			} else {
				categoryID = nil // categoría de origen inexistente en el mapa
			}
		default:
			original := *src.CategoryID
			categoryID = &original // carry-over deliberado del ID de origen
		}
		product := &entity.Product{
			ID:          uuid.New().String(),
			CompanyID:   newID,
			Name:        src.Name,
			Description: src.Description,
			Price:       src.Price,
			Stock:       src.Stock,
			CategoryID:  categoryID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repo.Create(product); err != nil {
			return nil, err
		}
		idMap[src.ID] = product.ID
	}
	return idMap, nil
}

func cloneClientes(repo repository.ClientRepository, sourceID, newID string, now time.Time) (map[string]string, error) {
	sources, err := repo.ListByCompany(sourceID, 0, 0)
	if err != nil {
		return nil, err
	}
	idMap := make(map[string]string, len(sources))
	for _, src := range sources {
		client := &entity.Client{
			ID:        uuid.New().String(),
			CompanyID: newID,
			Name:      src.Name,
			Email:     src.Email,
			Phone:     src.Phone,
			Address:   src.Address,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(client); err != nil {
			return nil, err
		}
		idMap[src.ID] = client.ID
	}
	return idMap, nil
}

type cloneRemitosDeps struct {
	clientesClonados  bool
	productosClonados bool
	clientMap         map[string]string
	productMap        map[string]string
	estadoIDByName    map[string]string
}

// cloneRemitos copia cabeceras y líneas. El estado se re-mapea SIEMPRE por
// nombre (se resuelve el nombre del estado de origen y se busca su homónimo
// en destino); si no hay homónimo se conserva el valor original como
// fallback. client_id/product_id se re-mapean solo si el sub-recurso fue
// clonado; si no, se conserva el ID de origen (mismo carry-over deliberado
// que en productos). created_by de cada copia es el superadmin que ejecuta
// la duplicación, no el autor original.
func cloneRemitos(
	remitoRepo repository.RemitoRepository,
	estadoRepo repository.EstadoRepository,
	sourceID, newID, callerID string,
	deps cloneRemitosDeps,
	now time.Time,
) error {
	sources, err := remitoRepo.ListByCompany(sourceID, 0, 0)
	if err != nil {
		return err
	}

	// Nombre de cada estado de la empresa de origen, para el re-mapeo por nombre
	sourceEstados, err := estadoRepo.ListByCompany(sourceID)
	if err != nil {
		return err
	}
	sourceEstadoName := make(map[string]string, len(sourceEstados))
	for _, e := range sourceEstados {
		sourceEstadoName[e.ID] = e.Name
	}

	remitoMap := make(map[string]string, len(sources))
	for _, src := range sources {
		var clientID *string
		switch {
		case src.ClientID == nil:
			clientID = nil
		case deps.clientesClonados:
			if mapped, ok := deps.clientMap[*src.ClientID]; ok {
				clientID = &mapped
			} else {
				clientID = nil
			}
		default:
			original := *src.ClientID
			clientID = &original
		}

		estado := src.Estado
		if name, ok := sourceEstadoName[src.Estado]; ok {
			if mapped, ok := deps.estadoIDByName[name]; ok {
				estado = mapped
			}
		}

		remito := &entity.Remito{
			ID:          uuid.New().String(),
			CompanyID:   newID,
			Number:      src.Number,
			ClientID:    clientID,
			Estado:      estado,
			Notes:       src.Notes,
			CreatedByID: callerID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := remitoRepo.Create(remito); err != nil {
			return err
		}
		remitoMap[src.ID] = remito.ID
	}

	// Todas las líneas de la empresa de origen en una sola consulta
	items, err := remitoRepo.ListItemsByCompany(sourceID)
	if err != nil {
		return err
	}
	for _, src := range items {
		var remitoID *string
		if src.RemitoID != nil {
			if mapped, ok := remitoMap[*src.RemitoID]; ok {
				remitoID = &mapped
			}
		}

		var productID *string
		switch {
		case src.ProductID == nil:
			productID = nil
		case deps.productosClonados:
			if mapped, ok := deps.productMap[*src.ProductID]; ok {
				productID = &mapped
			} else {
				productID = nil
			}
		default:
			original := *src.ProductID
			productID = &original
		}

		item := &entity.RemitoItem{
			ID:                 uuid.New().String(),
			RemitoID:           remitoID,
			ProductID:          productID,
			Quantity:           src.Quantity,
			UnitPrice:          src.UnitPrice,
			LineTotal:          src.LineTotal,
			ProductName:        src.ProductName,
			ProductDescription: src.ProductDescription,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := remitoRepo.CreateItem(item); err != nil {
			return err
		}
	}
	return nil
}

// cloneUsuarios copia los perfiles sin contraseña: password_hash queda NULL y
// has_temporary_password en true. Nunca se copian hashes entre empresas; el
// usuario clonado debe completar el alta de contraseña antes de poder entrar.
func cloneUsuarios(repo repository.UserRepository, sourceID, newID string, now time.Time) error {
	sources, err := repo.ListByCompany(sourceID, 0, 0)
	if err != nil {
		return err
	}
	for _, src := range sources {
		user := &entity.User{
			ID:                   uuid.New().String(),
			CompanyID:            newID,
			Email:                src.Email,
			PasswordHash:         nil,
			Name:                 src.Name,
			Role:                 src.Role,
			Phone:                src.Phone,
			Address:              src.Address,
			HasTemporaryPassword: true,
			IsActive:             src.IsActive,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if err := repo.Create(user); err != nil {
			return err
		}
	}
	return nil
}
