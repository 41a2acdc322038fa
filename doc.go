// Package httplog logs HTTP requests through a small labeled logging facade on top of zap.
//
// A Logger writes lines like
//
//	[    debug @ 2024/03/01T09:15:04] - HTTP: GET /users (200)
//
// and hands out LabeledLogger views that prefix every record with a label.
// An Interceptor wraps handlers that return an error and logs exactly one
// record per request. Errors of type *HTTPError are passed on unchanged,
// any other error is logged and replaced by a generic 500.
package httplog
