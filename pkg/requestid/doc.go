// Package requestid correlates log records and responses belonging to one
// HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header sent by the client or
// mints a time-ordered UUIDv7, stores it in the request context and echoes it
// in the response. Extractor plugs the stored ID into pkg/logger so every
// record logged with the request context carries request_id.
package requestid
