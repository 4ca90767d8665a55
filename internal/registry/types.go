package registry

import (
	"fmt"
	"strings"
)

// Category groups examples for display purposes.
type Category string

const (
	CategoryBasic        Category = "Basic"
	CategoryEncryption   Category = "Encryption"
	CategoryDecryption   Category = "Decryption"
	CategoryAdvanced     Category = "Advanced"
	CategoryEducation    Category = "Education"
	CategoryOpenZeppelin Category = "OpenZeppelin"
)

// Example describes one named example: where its contract and test sources
// live and the prose used when generating READMEs and documentation.
type Example struct {
	Name         string   `json:"name"`
	ContractPath string   `json:"contract_path"`
	TestPath     string   `json:"test_path"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
}

// DocFilename returns the markdown filename used for this example's
// generated documentation.
func (e Example) DocFilename() string {
	return e.Name + ".md"
}

// ContractBasename returns the filename component of the contract path.
func (e Example) ContractBasename() string {
	return basename(e.ContractPath)
}

// TestBasename returns the filename component of the test path.
func (e Example) TestBasename() string {
	return basename(e.TestPath)
}

// basename avoids path/filepath so registry paths stay slash-separated on
// every platform.
func basename(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}

// NotFoundError reports a lookup for a name that is not in the registry.
// Known carries the full list of registered names so callers can print an
// actionable hint.
type NotFoundError struct {
	Name  string
	Known []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("example %q not found in registry", e.Name)
}
