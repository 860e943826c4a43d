// Package parser decodes design-tool export files into the domain tree.
package parser

import (
	"encoding/json"
	"os"

	"github.com/framelint/framelint/domain"
)

// exportFile is the REST export envelope: the document node wrapped with
// file metadata. Bare node exports are also accepted.
type exportFile struct {
	Name         string             `json:"name"`
	Version      string             `json:"version"`
	LastModified string             `json:"lastModified"`
	Document     *domain.DesignNode `json:"document"`
}

// Document is a parsed design export
type Document struct {
	// Name is the file name from the export envelope, empty for bare nodes
	Name string

	// Version is the export version from the envelope, if present
	Version string

	// Root is the root design node
	Root *domain.DesignNode
}

// Parse decodes a design export. Both the full export envelope
// ({"document": {...}, "name": ...}) and a bare node object are accepted.
func Parse(data []byte) (*Document, error) {
	var envelope exportFile
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, domain.NewParseError("<memory>", err)
	}

	if envelope.Document != nil {
		return &Document{
			Name:    envelope.Name,
			Version: envelope.Version,
			Root:    envelope.Document,
		}, nil
	}

	// Bare node export
	var node domain.DesignNode
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, domain.NewParseError("<memory>", err)
	}
	if node.ID == "" || node.Type == "" {
		return nil, domain.NewInvalidInputError("export contains neither a document envelope nor a design node", nil)
	}
	return &Document{Root: &node}, nil
}

// ParseFile reads and decodes a design export file
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewFileNotFoundError(path, err)
		}
		return nil, domain.NewInvalidInputError("failed to read design export", err)
	}

	doc, err := Parse(data)
	if err != nil {
		if de, ok := err.(domain.DomainError); ok && de.Code == domain.ErrCodeParseError {
			return nil, domain.NewParseError(path, de.Cause)
		}
		return nil, err
	}
	return doc, nil
}
