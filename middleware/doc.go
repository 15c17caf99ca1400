// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and envelope helpers.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/users", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms),
both tagged with the request ID.

# Request IDs

WithRequestID assigns each request a correlation ID (reusing an
incoming X-Request-ID, else a fresh UUID), stores it on the context,
and echoes it on the response. Apply it outside WithLogging.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type,
X-Request-ID.

# Envelope Helpers

Write the uniform response envelope:

	middleware.DataEnvelope(w, data)      // 200 {status, success, data}
	middleware.ErrorEnvelope(w, err)      // status from errs taxonomy

ErrorEnvelope derives the HTTP status and client message from the errs
package, so handlers pass classified errors straight through.

Parse JSON request bodies:

	var req models.CreateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorEnvelope(w, errs.Malformed("Bad Request"))
		return
	}
*/
package middleware
