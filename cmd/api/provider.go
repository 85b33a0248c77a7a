package main

import (
	"github.com/worldloom/worldloom/x/guard"
	"github.com/worldloom/worldloom/x/world"
)

// provideWorldResolver lets the ownership guard look up worlds without
// depending on the world package directly.
func provideWorldResolver(repository world.Repository) guard.WorldResolver {
	return repository
}
