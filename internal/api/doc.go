// Package api handles incoming HTTP requests for companies, industries and
// invoices: it extracts path parameters, decodes and validates JSON bodies,
// calls exactly one store operation per request and shapes the result into
// a JSON envelope. Handlers return errors to a single boundary, Handle,
// which translates them into status codes and client-safe messages.
package api
