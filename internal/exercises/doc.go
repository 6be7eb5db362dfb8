// Package exercises holds the static catalog of supported exercises and
// their muscle groups, mirroring the registry used by the ML analysis
// service.
package exercises
