package config

import "errors"

// ErrInvalidConfig wraps every validation failure reported by Validate
var ErrInvalidConfig = errors.New("invalid config")
