package schema

import (
	"context"
	"errors"
)

// Document wraps a raw contract payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("schema: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("schema: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Contract decodes the document. With an operation ID the document is read
// as OpenAPI and the contract comes from that operation's request body;
// otherwise it is a JSON or YAML contract.
func (d Document) Contract(ctx context.Context, operationID string) (Contract, error) {
	if operationID != "" {
		return FromOpenAPI(ctx, d.raw, operationID)
	}
	return Parse(d.raw, d.Location())
}
