// Package seed loads the demo dataset (ingredient catalog, store
// inventories, user directory) from YAML files at startup. The files stand
// in for an upstream master-data system; nothing writes them back.
package seed

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"centralkitchen/internal/entities"
)

type Data struct {
	Ingredients []entities.Ingredient
	Stores      []entities.StoreInventory
	Users       []entities.User
}

type catalogFile struct {
	Ingredients []ingredientYAML `yaml:"ingredients"`
}

type ingredientYAML struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Unit         string  `yaml:"unit"`
	Category     string  `yaml:"category"`
	PricePerUnit float64 `yaml:"price_per_unit"`
}

type inventoryFile struct {
	Stores []storeYAML `yaml:"stores"`
}

type storeYAML struct {
	StoreID   string     `yaml:"store_id"`
	StoreName string     `yaml:"store_name"`
	Items     []itemYAML `yaml:"items"`
}

type itemYAML struct {
	IngredientID string  `yaml:"ingredient_id"`
	Quantity     float64 `yaml:"quantity"`
	MinLevel     float64 `yaml:"min_level"`
}

type usersFile struct {
	Users []userYAML `yaml:"users"`
}

// Passwords are plaintext in the seed file: this is demo account data, the
// hash is computed once at load time.
type userYAML struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Role      string `yaml:"role"`
	StoreID   string `yaml:"store_id"`
	StoreName string `yaml:"store_name"`
}

func Load(catalogPath, inventoryPath, usersPath string) (*Data, error) {
	ingredients, err := LoadCatalog(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("catalog seed: %w", err)
	}

	stores, err := LoadInventory(inventoryPath)
	if err != nil {
		return nil, fmt.Errorf("inventory seed: %w", err)
	}

	users, err := LoadUsers(usersPath)
	if err != nil {
		return nil, fmt.Errorf("users seed: %w", err)
	}

	return &Data{
		Ingredients: ingredients,
		Stores:      stores,
		Users:       users,
	}, nil
}

func LoadCatalog(path string) ([]entities.Ingredient, error) {
	var file catalogFile
	if err := readYAML(path, &file); err != nil {
		return nil, err
	}

	ingredients := make([]entities.Ingredient, 0, len(file.Ingredients))
	for _, in := range file.Ingredients {
		if in.ID == "" || in.Name == "" {
			return nil, fmt.Errorf("ingredient %q: id and name are required", in.ID)
		}
		ingredients = append(ingredients, entities.Ingredient{
			ID:           in.ID,
			Name:         in.Name,
			Unit:         in.Unit,
			Category:     in.Category,
			PricePerUnit: in.PricePerUnit,
		})
	}
	return ingredients, nil
}

func LoadInventory(path string) ([]entities.StoreInventory, error) {
	var file inventoryFile
	if err := readYAML(path, &file); err != nil {
		return nil, err
	}

	stores := make([]entities.StoreInventory, 0, len(file.Stores))
	for _, st := range file.Stores {
		if st.StoreID == "" {
			return nil, fmt.Errorf("store %q: store_id is required", st.StoreName)
		}
		items := make([]entities.InventoryItem, 0, len(st.Items))
		for _, item := range st.Items {
			if item.Quantity < 0 || item.MinLevel < 0 {
				return nil, fmt.Errorf("store %s item %s: negative quantity or min level", st.StoreID, item.IngredientID)
			}
			items = append(items, entities.InventoryItem{
				IngredientID: item.IngredientID,
				Quantity:     item.Quantity,
				MinLevel:     item.MinLevel,
			})
		}
		stores = append(stores, entities.StoreInventory{
			StoreID:   st.StoreID,
			StoreName: st.StoreName,
			Items:     items,
		})
	}
	return stores, nil
}

func LoadUsers(path string) ([]entities.User, error) {
	var file usersFile
	if err := readYAML(path, &file); err != nil {
		return nil, err
	}

	users := make([]entities.User, 0, len(file.Users))
	for _, u := range file.Users {
		if u.Email == "" || u.Password == "" {
			return nil, fmt.Errorf("user %q: email and password are required", u.Name)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", u.Email, err)
		}

		users = append(users, entities.User{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: string(hash),
			Role:         entities.RoleType(u.Role),
			StoreID:      u.StoreID,
			StoreName:    u.StoreName,
		})
	}
	return users, nil
}

func readYAML(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
