package service

import (
	"errors"

	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/internal/ws"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("Order not found")

type CreateOrderInput struct {
	FullName    string
	Region      string
	PhoneNumber string
	ProductID   uuid.UUID
}

// UpdateOrderInput carries partial updates with the same zero-value
// semantics as UpdateProductInput. ProductID is immutable after creation.
type UpdateOrderInput struct {
	FullName    string
	Region      string
	PhoneNumber string
}

type OrderService interface {
	Create(in CreateOrderInput) (*model.Order, error)
	GetAll() ([]model.Order, error)
	Update(id uuid.UUID, in UpdateOrderInput) (*model.Order, error)
	Delete(id uuid.UUID) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	hub       *ws.Hub
}

func NewOrderService(orderRepo repository.OrderRepository, hub *ws.Hub) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		hub:       hub,
	}
}

// Create accepts the order without checking that the product exists.
// Orders may outlive or predate their product; listings join a null
// product in that case.
func (s *orderService) Create(in CreateOrderInput) (*model.Order, error) {
	order := &model.Order{
		FullName:    in.FullName,
		Region:      in.Region,
		PhoneNumber: in.PhoneNumber,
		ProductID:   in.ProductID,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	s.hub.Publish("order_created", order.ToResponse())
	return order, nil
}

func (s *orderService) GetAll() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) Update(id uuid.UUID, in UpdateOrderInput) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	if in.FullName != "" {
		order.FullName = in.FullName
	}
	if in.Region != "" {
		order.Region = in.Region
	}
	if in.PhoneNumber != "" {
		order.PhoneNumber = in.PhoneNumber
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.hub.Publish("order_updated", order.ToResponse())
	return order, nil
}

func (s *orderService) Delete(id uuid.UUID) error {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return ErrOrderNotFound
	}

	if err := s.orderRepo.Delete(order.ID); err != nil {
		return err
	}

	s.hub.Publish("order_deleted", map[string]interface{}{"id": order.ID})
	return nil
}
