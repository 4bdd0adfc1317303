package renttruck

import (
	"time"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/pkg/guard"
)

type Builder struct {
	id              int
	rentDate        time.Time
	returnDate      time.Time
	totalCost       float64
	paymentMade     bool
	returned        bool
	customerID      int
	truckID         int
	pickUpBranchID  int
	dropOffBranchID int
	status          Status

	cancellationReason string
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetID(id int) *Builder {
	b.id = id
	return b
}

func (b *Builder) SetRentDate(date time.Time) *Builder {
	b.rentDate = kernel.DateOf(date)
	return b
}

func (b *Builder) SetReturnDate(date time.Time) *Builder {
	b.returnDate = kernel.DateOf(date)
	return b
}

func (b *Builder) SetTotalCost(cost float64) *Builder {
	b.totalCost = cost
	return b
}

func (b *Builder) SetPaymentMade(paymentMade bool) *Builder {
	b.paymentMade = paymentMade
	return b
}

func (b *Builder) SetReturned(returned bool) *Builder {
	b.returned = returned
	return b
}

func (b *Builder) SetCustomerID(customerID int) *Builder {
	b.customerID = customerID
	return b
}

func (b *Builder) SetTruckID(truckID int) *Builder {
	b.truckID = truckID
	return b
}

func (b *Builder) SetPickUpBranchID(branchID int) *Builder {
	b.pickUpBranchID = branchID
	return b
}

func (b *Builder) SetDropOffBranchID(branchID int) *Builder {
	b.dropOffBranchID = branchID
	return b
}

func (b *Builder) SetStatus(status Status) *Builder {
	b.status = status
	return b
}

func (b *Builder) SetCancellationReason(reason string) *Builder {
	b.cancellationReason = reason
	return b
}

func (b *Builder) Copy(r RentTruck) *Builder {
	b.id = r.id
	b.rentDate = r.rentDate
	b.returnDate = r.returnDate
	b.totalCost = r.totalCost
	b.paymentMade = r.paymentMade
	b.returned = r.returned
	b.customerID = r.customerID
	b.truckID = r.truckID
	b.pickUpBranchID = r.pickUpBranchID
	b.dropOffBranchID = r.dropOffBranchID
	b.status = r.status
	b.cancellationReason = r.cancellationReason
	return b
}

func (b *Builder) Build() RentTruck {
	return RentTruck{
		id:              b.id,
		rentDate:        b.rentDate,
		returnDate:      b.returnDate,
		totalCost:       b.totalCost,
		paymentMade:     b.paymentMade,
		returned:        b.returned,
		customerID:      b.customerID,
		truckID:         b.truckID,
		pickUpBranchID:  b.pickUpBranchID,
		dropOffBranchID: b.dropOffBranchID,
		status:          b.status,

		cancellationReason: b.cancellationReason,

		guard:           guard.NewConstructorGuard(),
	}
}
