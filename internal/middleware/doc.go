/*
Package middleware provides the HTTP middleware chain for the LiftLens
backend: access logging, Prometheus request metrics, and panic recovery.
*/
package middleware
