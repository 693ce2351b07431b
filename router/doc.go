/*
Package router wires the HTTP routes to their handlers.

Routes use Go 1.22+ method patterns on the standard ServeMux. Every
route except /health and / is wrapped with request logging.
*/
package router
