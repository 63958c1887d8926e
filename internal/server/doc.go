// Package server exposes hold detection over HTTP.
//
// All detection endpoints accept a multipart form upload under the field
// name "image" plus operation-specific form values, and respond with JSON.
// Rendered images travel inside the JSON body as base64-encoded PNG.
//
// # Endpoints
//
//	GET  /                            welcome message
//	GET  /api/v1/health               service and runtime status
//	POST /api/v1/upload               upload acknowledgment with image metadata
//	POST /api/v1/identify-route       holds of one color       (form: color)
//	POST /api/v1/identify-all-routes  holds of every color
//	POST /api/v1/visualize-route      holds + rendering        (form: color, overlay)
//	POST /api/v1/visualize-all-routes all holds + rendering    (form: overlay)
//	POST /api/v1/remove-background    transparent-background PNG
//
// # Error Mapping
//
// Undecodable images and unknown color names are client errors (400) with
// the cause in the response body. Anything else is a generic 500; details
// go to the log, never to the client. Requests are independent: a failure
// affects only its own response.
package server
