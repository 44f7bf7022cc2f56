// SPDX-License-Identifier: Apache-2.0

// Package http implements the HTTP transport layer of the settings service.
//
// It exposes route wiring, request handlers, and middleware for the admin
// REST API. Cross-cutting concerns such as request tracing and access
// logging are handled in this package before requests are delegated to the
// service layer. Authentication of admin callers is deliberately not
// implemented here; the service is expected to sit behind the main
// application's access control.
package http
