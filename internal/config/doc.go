// Package config reads the server settings from the environment, optionally
// seeded from a .env file. Invalid values never fail startup, they fall back
// to their defaults.
package config
