// Package http contains the HTTP handlers for the items API.
//
// Every handler echoes the request's correlation id in its JSON body; the
// monitoring middleware stamps the same id on the x-request-id response
// header. Validation failures on item creation answer 422 with field-level
// detail rather than gin's default 400.
package http
