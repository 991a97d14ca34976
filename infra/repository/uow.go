// Package repository provides the GORM-backed persistence layer: typed
// repositories and the unit of work binding them to one transaction.
package repository

import (
	"context"

	infraaccount "github.com/amirasaad/privplan/infra/repository/account"
	infrawithdrawal "github.com/amirasaad/privplan/infra/repository/withdrawal"
	"github.com/amirasaad/privplan/pkg/repository"
	"github.com/amirasaad/privplan/pkg/repository/account"
	"github.com/amirasaad/privplan/pkg/repository/withdrawal"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories handed out inside Do are bound to the transaction session, so
// a step transition and its ledger effect commit or roll back together.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs the given function in a transaction boundary, providing a UoW whose
// repositories share the transaction session.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// WithdrawalRepository implements repository.UnitOfWork.
func (u *UoW) WithdrawalRepository() (withdrawal.Repository, error) {
	return infrawithdrawal.New(u.session()), nil
}

// AccountRepository implements repository.UnitOfWork.
func (u *UoW) AccountRepository() (account.Repository, error) {
	return infraaccount.New(u.session()), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Ensure UoW implements the UnitOfWork interface.
var _ repository.UnitOfWork = (*UoW)(nil)
