package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"centralkitchen/internal/entities"
	"centralkitchen/internal/pkg/seed"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	catalogPath := writeFile(t, dir, "catalog.yaml", `
ingredients:
  - { id: ING001, name: "Bột mì", unit: kg, category: "Nguyên liệu khô", price_per_unit: 15000 }
  - { id: ING014, name: "Dâu tây", unit: kg, category: "Trái cây", price_per_unit: 200000 }
`)
	inventoryPath := writeFile(t, dir, "inventory.yaml", `
stores:
  - store_id: STORE001
    store_name: "CentralKitchen - Chi nhánh Quận 1"
    items:
      - { ingredient_id: ING001, quantity: 20, min_level: 10 }
      - { ingredient_id: ING014, quantity: 0.5, min_level: 2 }
`)
	usersPath := writeFile(t, dir, "users.yaml", `
users:
  - id: USR001
    name: "Nguyễn Văn A"
    email: staff@centralkitchen.vn
    password: "123456"
    role: franchise_staff
    store_id: STORE001
`)

	data, err := seed.Load(catalogPath, inventoryPath, usersPath)
	require.NoError(t, err)

	require.Len(t, data.Ingredients, 2)
	assert.Equal(t, "Bột mì", data.Ingredients[0].Name)
	assert.InDelta(t, 15000, data.Ingredients[0].PricePerUnit, 0.001)

	require.Len(t, data.Stores, 1)
	require.Len(t, data.Stores[0].Items, 2)
	assert.InDelta(t, 0.5, data.Stores[0].Items[1].Quantity, 0.001)

	require.Len(t, data.Users, 1)
	user := data.Users[0]
	assert.Equal(t, entities.RoleFranchiseStaff, user.Role)
	assert.NotEqual(t, "123456", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("123456")))
}

func TestLoadRejectsBadData(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := seed.LoadCatalog(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("ingredient without id", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, dir, "bad_catalog.yaml", `
ingredients:
  - { name: "Bột mì", unit: kg }
`)
		_, err := seed.LoadCatalog(path)
		assert.Error(t, err)
	})

	t.Run("negative quantity", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, dir, "bad_inventory.yaml", `
stores:
  - store_id: STORE001
    items:
      - { ingredient_id: ING001, quantity: -1, min_level: 10 }
`)
		_, err := seed.LoadInventory(path)
		assert.Error(t, err)
	})

	t.Run("user without password", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, dir, "bad_users.yaml", `
users:
  - name: "Nguyễn Văn A"
    email: staff@centralkitchen.vn
`)
		_, err := seed.LoadUsers(path)
		assert.Error(t, err)
	})
}
