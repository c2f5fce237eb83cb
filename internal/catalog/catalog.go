// internal/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"unihub-api/internal/common/errors"
	"unihub-api/internal/common/logger"

	"github.com/xeipuuv/gojsonschema"
)

// Provider resolves reference data for the scoring path. Implementations are
// read-only and safe for concurrent use.
type Provider interface {
	FindUniversity(id string) (*UniversityRecord, error)
	FindProgram(id string) (*ProgramRecord, error)
	Universities() []UniversityRecord
}

// Catalog holds the full reference data set in memory. Loaded once at startup,
// never mutated afterwards.
type Catalog struct {
	universities    []UniversityRecord
	universityIndex map[string]int
	programIndex    map[string]ProgramRecord
}

// Load reads, validates and indexes the static data files.
func Load(universitiesPath, programsPath string, log logger.Logger) (*Catalog, error) {
	universities, err := loadUniversities(universitiesPath)
	if err != nil {
		return nil, err
	}

	programs, err := loadPrograms(programsPath)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		universities:    universities,
		universityIndex: make(map[string]int, len(universities)),
		programIndex:    make(map[string]ProgramRecord, len(programs)),
	}
	for i, u := range universities {
		if _, dup := c.universityIndex[u.ID]; dup {
			return nil, errors.NewCatalogValidationFailedError(
				fmt.Sprintf("duplicate university id: %s", u.ID))
		}
		c.universityIndex[u.ID] = i
	}
	for _, p := range programs {
		if _, dup := c.programIndex[p.ID]; dup {
			return nil, errors.NewCatalogValidationFailedError(
				fmt.Sprintf("duplicate program id: %s", p.ID))
		}
		if _, ok := c.universityIndex[p.UniversityID]; !ok {
			return nil, errors.NewCatalogValidationFailedError(
				fmt.Sprintf("program %s references unknown university %s", p.ID, p.UniversityID))
		}
		c.programIndex[p.ID] = p
	}

	log.Info("catalog loaded", map[string]interface{}{
		"universities": len(c.universities),
		"programs":     len(c.programIndex),
	})

	return c, nil
}

// FindUniversity resolves a university by id.
func (c *Catalog) FindUniversity(id string) (*UniversityRecord, error) {
	i, ok := c.universityIndex[id]
	if !ok {
		return nil, errors.NewUniversityNotFoundError(id)
	}
	u := c.universities[i]
	return &u, nil
}

// FindProgram resolves a program by id.
func (c *Catalog) FindProgram(id string) (*ProgramRecord, error) {
	p, ok := c.programIndex[id]
	if !ok {
		return nil, errors.NewProgramNotFoundError(id)
	}
	return &p, nil
}

// Universities returns all catalog entries in file order. The slice is a copy;
// the records themselves are never mutated.
func (c *Catalog) Universities() []UniversityRecord {
	out := make([]UniversityRecord, len(c.universities))
	copy(out, c.universities)
	return out
}

func loadUniversities(path string) ([]UniversityRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}

	if err := validateAgainstSchema(universitiesSchema, raw); err != nil {
		return nil, err
	}

	var universities []UniversityRecord
	if err := json.Unmarshal(raw, &universities); err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}
	return universities, nil
}

func loadPrograms(path string) ([]ProgramRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}

	if err := validateAgainstSchema(programsSchema, raw); err != nil {
		return nil, err
	}

	var programs []ProgramRecord
	if err := json.Unmarshal(raw, &programs); err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}
	return programs, nil
}

func validateAgainstSchema(schema string, document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.NewCatalogValidationFailedError(err.Error())
	}
	if !result.Valid() {
		var details []string
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return errors.NewCatalogValidationFailedError(strings.Join(details, "; "))
	}
	return nil
}
