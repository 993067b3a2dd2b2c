package commands

import (
	"context"

	"github.com/google/uuid"

	"washdesk/internal/domain/catalog"
	"washdesk/internal/domain/customer"
	"washdesk/internal/domain/zone"
	reqdto "washdesk/internal/handler/dto/request"
	"washdesk/internal/infra"
	"washdesk/internal/pkg/errs"
	"washdesk/internal/pkg/patch"
	"washdesk/internal/usecase/queries"
)

var (
	ErrCategoryNotFound = errs.New("category not found")
	ErrZoneInUse        = errs.New("zone has bookings and cannot be deleted")
	ErrProductInUse     = errs.New("product is referenced and cannot be deleted")
	ErrDuplicateCode    = errs.New("duplicate code")
)

type ZoneCommands interface {
	Create(ctx context.Context, req reqdto.CreateZoneRequest) (*queries.ZoneView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateZoneRequest) (*queries.ZoneView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CustomerCommands interface {
	Create(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest) (*queries.CustomerView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CatalogCommands interface {
	CreateCategory(ctx context.Context, req reqdto.CreateCategoryRequest) (*queries.CategoryView, error)
	CreateTax(ctx context.Context, req reqdto.CreateTaxRequest) (*queries.TaxView, error)
	CreateProduct(ctx context.Context, req reqdto.CreateProductRequest) (*queries.ProductView, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req reqdto.UpdateProductRequest) (*queries.ProductView, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type SettingsCommands interface {
	Update(ctx context.Context, req reqdto.UpdateSettingsRequest) (*queries.SettingsView, error)
}

type zoneCommandsImpl struct {
	repo        ZoneRepository
	zoneQueries queries.ZoneQueries
}

func NewZoneCommands(repo ZoneRepository, zoneQueries queries.ZoneQueries) ZoneCommands {
	return &zoneCommandsImpl{repo: repo, zoneQueries: zoneQueries}
}

func (c *zoneCommandsImpl) Create(ctx context.Context, req reqdto.CreateZoneRequest) (*queries.ZoneView, error) {
	entity, err := zone.NewZone(req.Name, req.Active())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.repo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.zoneQueries.GetByID(ctx, entity.ID())
}

func (c *zoneCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateZoneRequest) (*queries.ZoneView, error) {
	entity, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrZoneNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if req.Name != nil {
		if err := entity.Rename(*req.Name); err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}
	if req.IsActive != nil {
		entity.SetActive(*req.IsActive)
	}

	if err := c.repo.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.zoneQueries.GetByID(ctx, id)
}

func (c *zoneCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrZoneNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrZoneInUse
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

type customerCommandsImpl struct {
	repo            CustomerRepository
	customerQueries queries.CustomerQueries
}

func NewCustomerCommands(repo CustomerRepository, customerQueries queries.CustomerQueries) CustomerCommands {
	return &customerCommandsImpl{repo: repo, customerQueries: customerQueries}
}

func (c *customerCommandsImpl) Create(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error) {
	entity, err := customer.NewCustomer(req.Name, req.Phone, req.Email, req.Address)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.repo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.customerQueries.GetByID(ctx, entity.ID())
}

func (c *customerCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest) (*queries.CustomerView, error) {
	current, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	name := patch.Coalesce(req.Name, current.Name())
	phone := patch.Coalesce(req.Phone, current.Phone())
	email := current.Email()
	if req.Email != nil {
		email = req.Email
	}
	address := current.Address()
	if req.Address != nil {
		address = req.Address
	}

	entity, err := customer.NewCustomer(name, phone, email, address)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	entity = customer.ReconstructCustomer(id, entity.Name(), entity.Phone(), entity.Email(), entity.Address(), current.CreatedAt())

	if err := c.repo.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.customerQueries.GetByID(ctx, id)
}

func (c *customerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCustomerNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

type catalogCommandsImpl struct {
	repo           CatalogRepository
	catalogQueries queries.CatalogQueries
}

func NewCatalogCommands(repo CatalogRepository, catalogQueries queries.CatalogQueries) CatalogCommands {
	return &catalogCommandsImpl{repo: repo, catalogQueries: catalogQueries}
}

func (c *catalogCommandsImpl) CreateCategory(ctx context.Context, req reqdto.CreateCategoryRequest) (*queries.CategoryView, error) {
	entity, err := catalog.NewCategory(req.Name, req.Description)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.repo.CreateCategory(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &queries.CategoryView{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
	}, nil
}

func (c *catalogCommandsImpl) CreateTax(ctx context.Context, req reqdto.CreateTaxRequest) (*queries.TaxView, error) {
	entity, err := catalog.NewTax(req.Name, req.Percentage)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.repo.CreateTax(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &queries.TaxView{
		ID:         entity.ID(),
		Name:       entity.Name(),
		Percentage: entity.Percentage(),
	}, nil
}

func (c *catalogCommandsImpl) CreateProduct(ctx context.Context, req reqdto.CreateProductRequest) (*queries.ProductView, error) {
	entity, err := catalog.NewProduct(req.Name, req.Code, req.CategoryID, req.TaxIDs, req.BuyPrice, req.SellPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.repo.CreateProduct(ctx, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrCategoryNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateCode
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return c.catalogQueries.GetProduct(ctx, entity.ID())
}

func (c *catalogCommandsImpl) UpdateProduct(ctx context.Context, id uuid.UUID, req reqdto.UpdateProductRequest) (*queries.ProductView, error) {
	current, err := c.repo.FindProductByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	name := patch.Coalesce(req.Name, current.Name())
	code := patch.Coalesce(req.Code, current.Code())
	categoryID := patch.Coalesce(req.CategoryID, current.CategoryID())
	taxIDs := current.TaxIDs()
	if req.TaxIDs != nil {
		taxIDs = req.TaxIDs
	}
	buyPrice := current.BuyPrice()
	if req.BuyPrice != nil {
		buyPrice = req.BuyPrice
	}
	sellPrice := current.SellPrice()
	if req.SellPrice != nil {
		sellPrice = *req.SellPrice
	}

	updated, err := catalog.NewProduct(name, code, categoryID, taxIDs, buyPrice, sellPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	entity := catalog.ReconstructProduct(
		id, updated.Name(), updated.Code(), updated.CategoryID(),
		updated.TaxIDs(), updated.BuyPrice(), updated.SellPrice(), current.CreatedAt(),
	)

	if err := c.repo.UpdateProduct(ctx, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrCategoryNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateCode
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return c.catalogQueries.GetProduct(ctx, id)
}

func (c *catalogCommandsImpl) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.DeleteProduct(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrProductNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrProductInUse
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

type settingsCommandsImpl struct {
	repo            SettingsRepository
	settingsQueries queries.SettingsQueries
}

func NewSettingsCommands(repo SettingsRepository, settingsQueries queries.SettingsQueries) SettingsCommands {
	return &settingsCommandsImpl{repo: repo, settingsQueries: settingsQueries}
}

func (c *settingsCommandsImpl) Update(ctx context.Context, req reqdto.UpdateSettingsRequest) (*queries.SettingsView, error) {
	if _, err := c.repo.Update(ctx, req.Currency, req.ShowTaxBifurcation); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.settingsQueries.Get(ctx)
}
