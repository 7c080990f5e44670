package lookup

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// AddressPlaceholder marks where the contract address goes in a source URL template
const AddressPlaceholder = "{address}"

// Sentinel errors for catalog loading
var (
	ErrCatalogRead      = errors.New("reading source catalog")
	ErrCatalogParse     = errors.New("parsing source catalog")
	ErrCatalogEmpty     = errors.New("source catalog has no sources")
	ErrInvalidSourceURL = errors.New("source URL template has no " + AddressPlaceholder + " placeholder")
)

// Source is one public site that publishes facts about token contracts
type Source struct {
	Name        string `yaml:"name"`
	URLTemplate string `yaml:"url"`
}

// URL substitutes address verbatim into the source's template
func (s Source) URL(address string) string {
	return strings.ReplaceAll(s.URLTemplate, AddressPlaceholder, address)
}

// Catalog is the fixed, ordered list of sources consulted on every lookup
type Catalog []Source

// DefaultCatalog returns the built-in sources: a block explorer, a DEX aggregator, and a DEX analytics site
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "etherscan", URLTemplate: "https://etherscan.io/token/" + AddressPlaceholder},
		{Name: "dexscreener", URLTemplate: "https://dexscreener.com/ethereum/" + AddressPlaceholder},
		{Name: "dextools", URLTemplate: "https://www.dextools.io/app/en/ether/pair-explorer/" + AddressPlaceholder},
	}
}

// URLs returns one URL per source for address, in catalog order
func (c Catalog) URLs(address string) []string {
	urls := make([]string, len(c))
	for i, s := range c {
		urls[i] = s.URL(address)
	}
	return urls
}

// Validate checks that the catalog is usable
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrCatalogEmpty
	}
	for i, s := range c {
		if !strings.Contains(s.URLTemplate, AddressPlaceholder) {
			return fmt.Errorf("%w: source %d (%q)", ErrInvalidSourceURL, i, s.Name)
		}
	}
	return nil
}

type catalogFile struct {
	Sources Catalog `yaml:"sources"`
}

// ParseCatalog decodes a YAML catalog of the form
//
//	sources:
//	  - name: etherscan
//	    url: https://etherscan.io/token/{address}
func ParseCatalog(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogParse, err)
	}
	if err := file.Sources.Validate(); err != nil {
		return nil, err
	}
	return file.Sources, nil
}

// LoadCatalog reads a YAML catalog from path
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogRead, err)
	}
	return ParseCatalog(data)
}
