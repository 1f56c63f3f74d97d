// Package notifications delivers push notifications about finished sync
// sessions through ntfy. Without a configured topic the service is a noop, so
// callers never have to guard notification calls.
package notifications
