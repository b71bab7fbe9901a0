package inputs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Decodable - and interface that allows for decoding of inputs and params
type Decodable interface {
	Decode(context.Context, []byte) error
}

// Decode - decode a decodable thing
func Decode(ctx context.Context, d Decodable, input []byte) error {
	if err := d.Decode(ctx, input); err != nil {
		return fmt.Errorf("failed decoding: %w", err)
	}
	return nil
}

// DecodeReader - read all of input and decode it
func DecodeReader(ctx context.Context, d Decodable, input io.Reader) error {
	b, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return Decode(ctx, d, b)
}

// DecodeJSON - decode json helper
func DecodeJSON(ctx context.Context, input []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewBuffer(input))
	dec.UseNumber()
	return dec.Decode(v)
}
