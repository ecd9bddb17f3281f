// Package utils provides common utility functions for the catalog-builder application.
// It includes loose type conversions used when reading database rows and query flags.
package utils
