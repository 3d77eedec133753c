package seed

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/greenpoint/backend/internal/domain"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Items []domain.Item `yaml:"items"`
}

// LoadCatalogFile reads the catalog seed from a yaml file.
func LoadCatalogFile(path string) ([]domain.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog seed failed: %w", err)
	}
	defer f.Close()

	return LoadCatalog(f)
}

// LoadCatalog decodes a catalog seed. Ids must be positive and unique and
// every item needs a title and an image.
func LoadCatalog(r io.Reader) ([]domain.Item, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog seed failed: %w", err)
	}

	seen := make(map[int]struct{}, len(file.Items))
	for i, item := range file.Items {
		switch {
		case item.ID <= 0:
			return nil, fmt.Errorf("catalog seed item #%d: id must be positive", i)
		case strings.TrimSpace(item.Title) == "":
			return nil, fmt.Errorf("catalog seed item %d: empty title", item.ID)
		case strings.TrimSpace(item.Image) == "":
			return nil, fmt.Errorf("catalog seed item %d: empty image", item.ID)
		}
		if _, ok := seen[item.ID]; ok {
			return nil, fmt.Errorf("catalog seed item %d: duplicate id", item.ID)
		}
		seen[item.ID] = struct{}{}
	}

	return file.Items, nil
}
