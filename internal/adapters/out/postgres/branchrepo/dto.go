// Package branchrepo persists branches.
package branchrepo

import (
	"truckrental/internal/core/domain/model/branch"
)

type BranchDTO struct {
	ID      int    `gorm:"primaryKey;autoIncrement:false"`
	Name    string `gorm:"not null"`
	Address string `gorm:"not null"`
}

func (BranchDTO) TableName() string {
	return "branches"
}

func fromDomain(b branch.Branch) BranchDTO {
	return BranchDTO{ID: b.ID(), Name: b.Name(), Address: b.Address()}
}

func toDomain(dto BranchDTO) (branch.Branch, error) {
	b := branch.NewBuilder().SetID(dto.ID).SetName(dto.Name).SetAddress(dto.Address).Build()
	if err := b.Validate(); err != nil {
		return branch.Branch{}, err
	}
	return b, nil
}
