// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses the client's X-Request-ID header when it is at most 128
// characters of [a-zA-Z0-9_-], otherwise generates a UUIDv4. The id is
// echoed in the response header and stored in the request context, where
// FromContext and the logger extractor pick it up:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
