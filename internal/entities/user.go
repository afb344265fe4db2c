package entities

type RoleType string

const (
	RoleFranchiseStaff    RoleType = "franchise_staff"
	RoleSupplyCoordinator RoleType = "supply_coordinator"
	RoleCentralKitchen    RoleType = "central_kitchen"
	RoleManager           RoleType = "manager"
)

func (r RoleType) String() string {
	return string(r)
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         RoleType
	StoreID      string
	StoreName    string
}

// Actor is the authenticated identity acting on the ledger. The ledger
// itself never authorizes; handlers enforce role policy before calling it.
type Actor struct {
	UserID    string
	Name      string
	Role      RoleType
	StoreID   string
	StoreName string
}
