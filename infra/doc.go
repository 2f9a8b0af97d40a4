// Package infra contains technical adapters such as table loaders and the
// zerolog logger. These packages should depend only on the interfaces and
// types defined in the core packages.
package infra
