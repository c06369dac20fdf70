package config

//go:generate go tool go-enum --marshal --names

// Projection produced when a command does not say otherwise.
// ENUM(web, native)
type Target int
