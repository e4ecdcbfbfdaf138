package catalog

import (
	"io"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/matst80/slask-listing/pkg/types"
)

const (
	usersFile      = "users.json"
	categoriesFile = "categories.json"
	productsFile   = "products.json"
)

func readFile(path string, dest any) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(data, dest)
}

// LoadReferenceData reads the three static collections from dir. It does
// not validate references, Enrich does that.
func LoadReferenceData(dir string) (*types.ReferenceData, error) {
	data := &types.ReferenceData{}
	if err := readFile(filepath.Join(dir, usersFile), &data.Users); err != nil {
		return nil, err
	}
	if err := readFile(filepath.Join(dir, categoriesFile), &data.Categories); err != nil {
		return nil, err
	}
	if err := readFile(filepath.Join(dir, productsFile), &data.Products); err != nil {
		return nil, err
	}
	return data, nil
}
