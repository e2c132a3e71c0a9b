// Package models contains the gallery database model and the API request and
// response types.
package models
