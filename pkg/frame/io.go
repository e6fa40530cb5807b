package frame

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/river/pkg/errors"
)

// Marshal encodes f as indented JSON.
func Marshal(f *Frame) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(f, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes f as indented JSON to w.
func Write(f *Frame, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes f to path with 0644 permissions.
func WriteFile(f *Frame, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Unmarshal decodes a JSON frame.
func Unmarshal(data []byte) (*Frame, error) {
	return Read(bytes.NewReader(data))
}

// Read decodes a JSON frame from r.
func Read(r io.Reader) (*Frame, error) {
	var f Frame
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode frame")
	}
	if err := errors.ValidateDimensions(f.Width, f.Height); err != nil {
		return nil, err
	}
	return &f, nil
}

// ReadFile reads a JSON frame from path.
func ReadFile(path string) (*Frame, error) {
	in, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "frame %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()
	return Read(in)
}
