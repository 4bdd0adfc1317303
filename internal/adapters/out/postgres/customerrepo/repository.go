package customerrepo

import (
	"context"

	"truckrental/internal/adapters/out/postgres/gormrepo"
	"truckrental/internal/core/domain/model/customer"

	"gorm.io/gorm"
)

type GormCustomerRepository struct {
	*gormrepo.Repository[customer.Customer, CustomerDTO]
}

func NewGormCustomerRepository(db *gorm.DB, tracker gormrepo.AggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		Repository: gormrepo.New(db, tracker, gormrepo.Mapper[customer.Customer, CustomerDTO]{
			FromDomain: fromDomain,
			ToDomain:   toDomain,
		}, "customerId"),
	}
}

// FindByEmail expects an already normalized email.
func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email string) (customer.Customer, error) {
	return r.FirstWhere(ctx, "email", email, "email = ?", email)
}
