package contactusrepo

import (
	"truckrental/internal/adapters/out/postgres/gormrepo"
	"truckrental/internal/core/domain/model/contactus"

	"gorm.io/gorm"
)

type GormContactUsRepository struct {
	*gormrepo.Repository[contactus.ContactUs, ContactUsDTO]
}

func NewGormContactUsRepository(db *gorm.DB, tracker gormrepo.AggregateTracker) *GormContactUsRepository {
	return &GormContactUsRepository{
		Repository: gormrepo.New(db, tracker, gormrepo.Mapper[contactus.ContactUs, ContactUsDTO]{
			FromDomain: fromDomain,
			ToDomain:   toDomain,
		}, "contactUsId"),
	}
}
