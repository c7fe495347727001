// Package bindings loads declarative shortcut binding files and applies
// them to a shortcut.Root.
//
// A binding file lists layers, each with bindings from a shortcut pattern
// to a named action:
//
//	[[layers]]
//	name = "main"
//
//	  [[layers.bindings]]
//	  keys = "Ctrl+S"
//	  action = "file.save"
//	  default = true
//
// YAML files use the same field names. Actions are resolved through a
// Catalog. Every file is registered under its own context, so reloading a
// file replaces exactly the bindings it contributed.
package bindings
