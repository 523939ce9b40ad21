package toolutils

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// ReadYaml decodes a YAML file into dest. Unknown keys are an error.
func ReadYaml(dest any, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", file, err)
	}
	defer f.Close()

	if err = DecodeYaml(dest, f); err != nil {
		return fmt.Errorf("unable to parse %s: %w", file, err)
	}
	return nil
}

// DecodeYaml is ReadYaml for an open stream.
func DecodeYaml(dest any, r io.Reader) error {
	return yaml.NewDecoder(r, yaml.Strict()).Decode(dest)
}
