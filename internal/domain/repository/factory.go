package repository

// Factory describes access to the relational repositories.
type Factory interface {
	Users() UserRepository
	Orders() OrderRepository
}
