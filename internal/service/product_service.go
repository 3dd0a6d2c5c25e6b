package service

import (
	"errors"
	"mime/multipart"
	"os"

	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/internal/storage"
	"go-catalog-admin/internal/ws"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var (
	ErrProductNotFound = errors.New("Product not found")
	ErrNoProducts      = errors.New("No products found")
)

type CreateProductInput struct {
	Title       string
	Description string
	Amount      int
	Image       *multipart.FileHeader
}

// UpdateProductInput carries partial updates. A zero value (empty string,
// 0) keeps the stored value; there is no way to explicitly set a field to
// its zero value through this surface.
type UpdateProductInput struct {
	Title       string
	Description string
	Amount      int
}

type ProductService interface {
	Create(in CreateProductInput) (*model.Product, error)
	GetAll() ([]model.Product, error)
	Update(id uuid.UUID, in UpdateProductInput) (*model.Product, error)
	Delete(id uuid.UUID) error
}

type productService struct {
	productRepo repository.ProductRepository
	store       storage.UploadStore
	hub         *ws.Hub
}

func NewProductService(productRepo repository.ProductRepository, store storage.UploadStore, hub *ws.Hub) ProductService {
	return &productService{
		productRepo: productRepo,
		store:       store,
		hub:         hub,
	}
}

func (s *productService) Create(in CreateProductInput) (*model.Product, error) {
	filename, err := s.store.Save(in.Image)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		Title:       in.Title,
		Description: in.Description,
		Amount:      in.Amount,
		Image:       filename,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.hub.Publish("product_created", product)
	return product, nil
}

func (s *productService) GetAll() ([]model.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	return products, nil
}

func (s *productService) Update(id uuid.UUID, in UpdateProductInput) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if in.Title != "" {
		product.Title = in.Title
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.Amount != 0 {
		product.Amount = in.Amount
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	s.hub.Publish("product_updated", product)
	return product, nil
}

// Delete removes the product row. The image file cleanup is best-effort:
// a failure is logged and never surfaced, since the row is authoritative.
func (s *productService) Delete(id uuid.UUID) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return ErrProductNotFound
	}

	if err := s.store.Remove(product.Image); err != nil {
		logger.Warn().Err(err).Str("image", product.Image).Msg("failed to remove product image")
	}

	if err := s.productRepo.Delete(product.ID); err != nil {
		return err
	}

	s.hub.Publish("product_deleted", map[string]interface{}{"id": product.ID})
	return nil
}
