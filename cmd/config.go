package cmd

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Load LUMEN_* settings from a dotenv file into the process environment so
// that they can act as flag defaults. Variables that are already set take
// precedence. A missing default file is not an error.
func LoadEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	err := godotenv.Load(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
