/*
Package middleware provides HTTP cross-cutting helpers.

  - WithLogging: per-request structured logging with a generated
    request id (echoed as X-Request-ID)
  - JSONResponse / ErrorResponse: uniform JSON output
  - ParseJSONBody: request body decoding
  - CORS: cross-origin headers for the browser UI dev server
*/
package middleware
