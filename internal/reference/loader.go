package reference

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadEnumCatalog читает все enum-справочники из папки reference/enums/
func LoadEnumCatalog(dir string) (map[string]EnumDirectory, error) {
	result := make(map[string]EnumDirectory)
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "can not read enums dir '%s'", dir)
	}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if !strings.HasSuffix(file.Name(), ".yaml") && !strings.HasSuffix(file.Name(), ".yml") {
			continue
		}
		path := filepath.Join(dir, file.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "can not read enum file '%s'", path)
		}
		var enumDir EnumDirectory
		if err := yaml.Unmarshal(data, &enumDir); err != nil {
			return nil, errors.Wrapf(err, "can not parse enum file '%s'", path)
		}
		// Имя справочника — из enumDir.Name или из имени файла
		enumName := enumDir.Name
		if enumName == "" {
			enumName = strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		}
		result[enumName] = enumDir
	}
	return result, nil
}
