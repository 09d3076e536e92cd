package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service layer.
type RepositoryProvider struct {
	UserRepo     UserRepositoryFacade
	PaymentRepo  PaymentRepositoryWithTx
	GrantRepo    GrantRepositoryWithTx
	ApprovalRepo ApprovalRepositoryWithTx
}
