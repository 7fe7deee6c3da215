// Package http exposes the workshop app over HTTP using a chi router.
package http
