package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDataDir(t *testing.T, users, categories, products string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		usersFile:      users,
		categoriesFile: categories,
		productsFile:   products,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoadReferenceData(t *testing.T) {
	dir := writeDataDir(t,
		`[{"id":100,"name":"Alice"}]`,
		`[{"id":10,"title":"Fruit","ownerId":100}]`,
		`[{"id":1,"name":"Apple","categoryId":10}]`,
	)
	data, err := LoadReferenceData(dir)
	if err != nil {
		t.Fatalf("LoadReferenceData failed: %v", err)
	}
	if len(data.Users) != 1 || data.Users[0].Name != "Alice" {
		t.Errorf("unexpected users: %+v", data.Users)
	}
	if len(data.Categories) != 1 || data.Categories[0].Title != "Fruit" {
		t.Errorf("unexpected categories: %+v", data.Categories)
	}
	if len(data.Products) != 1 || data.Products[0].Name != "Apple" {
		t.Errorf("unexpected products: %+v", data.Products)
	}
}

func TestLoadReferenceDataMissingFile(t *testing.T) {
	if _, err := LoadReferenceData(t.TempDir()); err == nil {
		t.Error("expected error for missing files")
	}
}

func TestDiskHolderReloadKeepsOldOnFailure(t *testing.T) {
	dir := writeDataDir(t,
		`[{"id":100,"name":"Alice"}]`,
		`[{"id":10,"title":"Fruit","ownerId":100}]`,
		`[{"id":1,"name":"Apple","categoryId":10}]`,
	)
	holder, err := NewDiskHolder(dir)
	if err != nil {
		t.Fatalf("NewDiskHolder failed: %v", err)
	}
	if len(holder.Items()) != 1 {
		t.Fatalf("expected 1 item, got %d", len(holder.Items()))
	}

	// break the data, reload must fail and keep the old catalog
	if err := os.WriteFile(filepath.Join(dir, productsFile), []byte(`[{"id":2,"name":"Ghost","categoryId":99}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := holder.Reload(); err == nil {
		t.Error("expected reload to fail on dangling reference")
	}
	items := holder.Items()
	if len(items) != 1 || items[0].Name != "Apple" {
		t.Errorf("old catalog not preserved: %+v", items)
	}
}
