// Package miniappsdk provides a typed HTTP client for the Kompanion mini-app
// service together with the request and response types shared by the server
// handlers. It is used by the end-to-end tests and is suitable for external
// consumers of the API.
package miniappsdk
