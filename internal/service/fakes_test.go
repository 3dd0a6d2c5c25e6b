package service

import (
	"fmt"
	"mime/multipart"

	"go-catalog-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. Lookups miss with gorm.ErrRecordNotFound,
// matching the GORM-backed implementations.

type fakeAdminRepo struct {
	admins      []*model.Admin
	createCalls int
}

func (r *fakeAdminRepo) Create(admin *model.Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	r.createCalls++
	r.admins = append(r.admins, admin)
	return nil
}

func (r *fakeAdminRepo) FindByID(id uuid.UUID) (*model.Admin, error) {
	for _, admin := range r.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAdminRepo) FindByUsername(username string) (*model.Admin, error) {
	for _, admin := range r.admins {
		if admin.Username == username {
			return admin, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeProductRepo struct {
	products []*model.Product
}

func (r *fakeProductRepo) Create(product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products = append(r.products, product)
	return nil
}

func (r *fakeProductRepo) FindAll() ([]model.Product, error) {
	all := make([]model.Product, len(r.products))
	for i, p := range r.products {
		all[i] = *p
	}
	return all, nil
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Update(product *model.Product) error {
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Delete(id uuid.UUID) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeOrderRepo struct {
	orders []*model.Order
}

func (r *fakeOrderRepo) Create(order *model.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepo) FindAll() ([]model.Order, error) {
	all := make([]model.Order, len(r.orders))
	for i, o := range r.orders {
		all[i] = *o
	}
	return all, nil
}

func (r *fakeOrderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			copied := *o
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) Update(order *model.Order) error {
	for i, o := range r.orders {
		if o.ID == order.ID {
			r.orders[i] = order
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) Delete(id uuid.UUID) error {
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeCommentRepo struct {
	comments []*model.Comment
}

func (r *fakeCommentRepo) Create(comment *model.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	r.comments = append(r.comments, comment)
	return nil
}

func (r *fakeCommentRepo) FindAll() ([]model.Comment, error) {
	all := make([]model.Comment, len(r.comments))
	for i, c := range r.comments {
		all[i] = *c
	}
	return all, nil
}

func (r *fakeCommentRepo) FindByProductID(productID uuid.UUID) ([]model.Comment, error) {
	var matched []model.Comment
	for _, c := range r.comments {
		if c.ProductID == productID {
			matched = append(matched, *c)
		}
	}
	return matched, nil
}

type fakeUploadStore struct {
	saved     []string
	removed   []string
	removeErr error
}

func (s *fakeUploadStore) Save(file *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("stored-%d.png", len(s.saved))
	s.saved = append(s.saved, name)
	return name, nil
}

func (s *fakeUploadStore) Remove(filename string) error {
	s.removed = append(s.removed, filename)
	return s.removeErr
}
