// Package clientip resolves the address of the member's device behind the
// load balancer and carries it in the request context for rate limiting and
// logging.
package clientip
