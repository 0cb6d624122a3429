// Package domain contains the core business entities of the application:
// companies, the industries they belong to, and the invoices billed to them.
// It is independent of any specific infrastructure or delivery mechanism.
package domain
