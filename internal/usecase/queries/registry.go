package queries

import (
	"context"

	"github.com/google/uuid"

	"washdesk/internal/infra"
	"washdesk/internal/pkg/errs"
)

var (
	ErrZoneNotFound     = errs.New("zone not found")
	ErrCustomerNotFound = errs.New("customer not found")
	ErrCategoryNotFound = errs.New("category not found")
	ErrTaxNotFound      = errs.New("tax not found")
	ErrProductNotFound  = errs.New("product not found")
)

type ZoneQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ZoneView, error)
	List(ctx context.Context) ([]*ZoneView, error)
}

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	List(ctx context.Context, search *string, page Page) ([]*CustomerView, error)
}

type CatalogQueries interface {
	ListCategories(ctx context.Context) ([]*CategoryView, error)
	ListTaxes(ctx context.Context) ([]*TaxView, error)
	ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*ProductView, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type SettingsQueries interface {
	Get(ctx context.Context) (*SettingsView, error)
}

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	Search(ctx context.Context, search *string, limit, offset int32) ([]*CustomerView, error)
}

type CatalogReadStore interface {
	FindAllCategories(ctx context.Context) ([]*CategoryView, error)
	FindAllTaxes(ctx context.Context) ([]*TaxView, error)
	FindProducts(ctx context.Context, categoryID *uuid.UUID) ([]*ProductView, error)
	FindProductByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type SettingsReadStore interface {
	Find(ctx context.Context) (*SettingsView, error)
}

type zoneQueriesImpl struct {
	readStore ZoneReadStore
}

func NewZoneQueries(readStore ZoneReadStore) ZoneQueries {
	return &zoneQueriesImpl{readStore: readStore}
}

func (q *zoneQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ZoneView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrZoneNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *zoneQueriesImpl) List(ctx context.Context) ([]*ZoneView, error) {
	return q.readStore.FindAll(ctx)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *customerQueriesImpl) List(ctx context.Context, search *string, page Page) ([]*CustomerView, error) {
	page = page.Normalized()
	return q.readStore.Search(ctx, search, page.Limit, page.Offset)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) ListCategories(ctx context.Context) ([]*CategoryView, error) {
	return q.readStore.FindAllCategories(ctx)
}

func (q *catalogQueriesImpl) ListTaxes(ctx context.Context) ([]*TaxView, error) {
	return q.readStore.FindAllTaxes(ctx)
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*ProductView, error) {
	return q.readStore.FindProducts(ctx, categoryID)
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.readStore.FindProductByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return view, nil
}

type settingsQueriesImpl struct {
	readStore SettingsReadStore
}

func NewSettingsQueries(readStore SettingsReadStore) SettingsQueries {
	return &settingsQueriesImpl{readStore: readStore}
}

func (q *settingsQueriesImpl) Get(ctx context.Context) (*SettingsView, error) {
	return q.readStore.Find(ctx)
}
