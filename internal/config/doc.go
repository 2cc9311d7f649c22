// Package config loads and validates morphic.json project configuration.
//
// Configuration is discovered by walking up from the working directory
// until a morphic.json is found. Missing fields take defaults, so an
// empty file is a valid configuration.
package config
