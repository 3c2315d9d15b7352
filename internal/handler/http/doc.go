// Package http implements the REST transport of the footy-tipping server.
//
// It wires the /users routes and the /version endpoint onto a chi router
// and provides the middleware chain every request passes through: trace id,
// access logging, the error boundary and the request authenticator. Request
// handlers decode the body, delegate to the service layer and translate
// service errors into {"message": ...} responses.
package http
