// Package renttruckrepo persists rentals.
package renttruckrepo

import (
	"time"

	"truckrental/internal/core/domain/model/renttruck"
)

type RentTruckDTO struct {
	ID              int        `gorm:"primaryKey;autoIncrement:false"`
	RentDate        *time.Time `gorm:"type:date"`
	ReturnDate      time.Time  `gorm:"type:date;not null"`
	TotalCost       float64    `gorm:"type:numeric(14,2);not null"`
	PaymentMade     bool       `gorm:"not null"`
	Returned        bool       `gorm:"not null"`
	CustomerID      int        `gorm:"not null;index"`
	TruckID         int        `gorm:"not null;index"`
	PickUpBranchID  int        `gorm:"column:pick_up_branch_id;not null"`
	DropOffBranchID int        `gorm:"column:drop_off_branch_id;not null"`
	Status          string     `gorm:"not null;index"`

	CancellationReason string `gorm:"not null;default:''"`
}

func (RentTruckDTO) TableName() string {
	return "rent_trucks"
}

func fromDomain(r renttruck.RentTruck) RentTruckDTO {
	var rentDate *time.Time
	if d := r.RentDate(); !d.IsZero() {
		rentDate = &d
	}

	return RentTruckDTO{
		ID:              r.ID(),
		RentDate:        rentDate,
		ReturnDate:      r.ReturnDate(),
		TotalCost:       r.TotalCost(),
		PaymentMade:     r.PaymentMade(),
		Returned:        r.Returned(),
		CustomerID:      r.CustomerID(),
		TruckID:         r.TruckID(),
		PickUpBranchID:  r.PickUpBranchID(),
		DropOffBranchID: r.DropOffBranchID(),
		Status:          r.Status().String(),

		CancellationReason: r.CancellationReason(),
	}
}

func toDomain(dto RentTruckDTO) (renttruck.RentTruck, error) {
	status, err := renttruck.ParseStatus(dto.Status)
	if err != nil {
		return renttruck.RentTruck{}, err
	}

	b := renttruck.NewBuilder().
		SetID(dto.ID).
		SetReturnDate(dto.ReturnDate).
		SetTotalCost(dto.TotalCost).
		SetPaymentMade(dto.PaymentMade).
		SetReturned(dto.Returned).
		SetCustomerID(dto.CustomerID).
		SetTruckID(dto.TruckID).
		SetPickUpBranchID(dto.PickUpBranchID).
		SetDropOffBranchID(dto.DropOffBranchID).
		SetStatus(status).
		SetCancellationReason(dto.CancellationReason)
	if dto.RentDate != nil {
		b.SetRentDate(*dto.RentDate)
	}

	r := b.Build()
	if err = r.Validate(); err != nil {
		return renttruck.RentTruck{}, err
	}
	return r, nil
}
