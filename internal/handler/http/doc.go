// Package http implements the HTTP transport layer of the application.
//
// It exposes the resolved branding and button-visibility configuration as
// read-only JSON endpoints. Request tracing, access logging and response
// compression are handled by middleware before requests reach the service
// layer.
package http
