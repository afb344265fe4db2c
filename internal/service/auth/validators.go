package auth

import (
	"strings"

	"centralkitchen/internal/entities"
)

const minPasswordLength = 6

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

func isValidRole(role entities.RoleType) bool {
	switch role {
	case entities.RoleFranchiseStaff, entities.RoleSupplyCoordinator,
		entities.RoleCentralKitchen, entities.RoleManager:
		return true
	default:
		return false
	}
}
