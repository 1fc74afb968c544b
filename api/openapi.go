// Package api carries the HTTP contract of the storefront service.
package api

import _ "embed"

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config ../configs/server.cfg.yaml openapi.yml

// OpenAPI is the raw OpenAPI 3 document.
//
//go:embed openapi.yml
var OpenAPI []byte
