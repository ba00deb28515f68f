// Package api exposes enrollment validation over HTTP using a chi router.
//
// Every response is a JSON Envelope. Successful calls fill Data; failures
// fill Error with a stable code such as "bad_request" or "not_found".
// Validating a step that has field errors answers 422 with the full
// enrollment.Result in Data and the same messages in Error.Details, so
// clients can render every message at once.
//
// The keystroke endpoint POST /v1/enrollment/fields/{field} can be throttled
// per client address with WithFieldRateLimit.
//
// Requests carry an X-Request-ID header (generated when absent) that is
// echoed on the response and attached to log records.
package api
