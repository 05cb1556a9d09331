package utils

import (
	"fmt"
	"io"
	"os"
)

// ReadAllString reads r to EOF and returns the content as a string.
func ReadAllString(r io.Reader) (string, error) {
	if r == nil {
		return "", fmt.Errorf("no reader provided")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadFileString reads the whole file at path.
func ReadFileString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFileString creates or truncates the file at path and writes content to it.
func WriteFileString(path, content string) error {
	// #nosec G306 -- cipher output is ordinary text meant to be shared.
	return os.WriteFile(path, []byte(content), 0644)
}
