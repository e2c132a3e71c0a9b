// Package utils provides loose type conversion helpers.
//
// API clients submit gallery ids, positions and flags either as JSON scalars or
// as strings ("12", "1", "true"); these helpers normalize both forms.
package utils
