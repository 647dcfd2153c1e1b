// Package config manages user-level settings stored at ~/.appscaffold/config.yaml.
// Settings are ambient only (for example verbose logging); the generated
// layout is never configurable.
package config
