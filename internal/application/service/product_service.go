package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/entity"
	"github.com/rgusain/tarazu-api/internal/domain/enum"
	"github.com/rgusain/tarazu-api/internal/domain/repository"
	"github.com/rgusain/tarazu-api/pkg/apperror"
	"github.com/rgusain/tarazu-api/pkg/pagination"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents input for creating a product
type CreateProductInput struct {
	Name            string
	Category        enum.ProductCategory
	PricePerKg      float64
	StockGrams      int
	StockAlertGrams int
	Image           *string
}

// UpdateProductInput represents input for updating a product
type UpdateProductInput struct {
	Name            *string
	Category        *enum.ProductCategory
	PricePerKg      *float64
	StockGrams      *int
	StockAlertGrams *int
	Image           *string
}

func validateProductFields(name string, category enum.ProductCategory, pricePerKg float64, stockGrams, stockAlertGrams int) []apperror.FieldError {
	var fieldErrors []apperror.FieldError

	if strings.TrimSpace(name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if !category.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "category", Message: "Category must be Fruit, Vegetable or Other"})
	}
	if pricePerKg <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price_per_kg", Message: "Price per kg must be greater than zero"})
	}
	if stockGrams < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "stock_grams", Message: "Stock cannot be negative"})
	}
	if stockAlertGrams < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "stock_alert_grams", Message: "Stock alert cannot be negative"})
	}

	return fieldErrors
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if fieldErrors := validateProductFields(input.Name, input.Category, input.PricePerKg, input.StockGrams, input.StockAlertGrams); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	product := &entity.Product{
		Name:            strings.TrimSpace(input.Name),
		Category:        input.Category,
		PricePerKg:      ToCents(input.PricePerKg),
		StockGrams:      input.StockGrams,
		StockAlertGrams: input.StockAlertGrams,
		Image:           input.Image,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProduct updates an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.PricePerKg != nil {
		product.PricePerKg = ToCents(*input.PricePerKg)
	}
	if input.StockGrams != nil {
		product.StockGrams = *input.StockGrams
	}
	if input.StockAlertGrams != nil {
		product.StockAlertGrams = *input.StockAlertGrams
	}
	if input.Image != nil {
		product.Image = input.Image
	}

	price := float64(product.PricePerKg) / 100
	if fieldErrors := validateProductFields(product.Name, product.Category, price, product.StockGrams, product.StockAlertGrams); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product from the catalog. Cart lines and sale
// items carry their own snapshots, so neither is touched.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// GetLowStockProducts returns products at or below their stock alert level
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}
