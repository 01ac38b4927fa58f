package config

import "errors"

var (
	// ErrUnsupportedDriver indicates a database.driver other than sqlite or postgres
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrConfigExists is returned by Init when a config file is already in place
	ErrConfigExists = errors.New("config file already exists")
)
