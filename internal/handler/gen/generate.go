// Package gen holds the types, chi router and strict-server adapter generated
// from spec/openapi.yaml. Do not edit api.gen.go by hand.
package gen

//go:generate go tool oapi-codegen --config=config.yaml ../../../spec/openapi.yaml
