/*
Package metrics instruments the workshop server with Prometheus collectors.

The collectors are exposed on their own listener so that the application
listener keeps a single route.
*/
package metrics
