package services

import (
	portsrepo "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/repositories"
	portssvc "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:     NewUserService(repos.UserRepo),
		Transfer: NewTransferService(repos.PaymentRepo, repos.UserRepo),
		Grant:    NewGrantService(repos.GrantRepo, repos.PaymentRepo, repos.ApprovalRepo, repos.UserRepo),
		Approval: NewApprovalService(repos.ApprovalRepo),
	}
}
