package pgsql

import (
	portsrepo "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx repositories together. The payment,
// grant and approval repositories share the user repository's in-transaction
// balance operations.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool).(*PgxUserRepository)

	return portsrepo.RepositoryProvider{
		UserRepo:     userRepo,
		PaymentRepo:  newPgxPaymentRepository(dbPool, userRepo),
		GrantRepo:    newPgxGrantRepository(dbPool, userRepo),
		ApprovalRepo: newPgxApprovalRepository(dbPool, userRepo),
	}
}
