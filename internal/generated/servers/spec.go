package servers

import (
	"context"

	"storefront/api"

	"github.com/getkin/kin-openapi/openapi3"
)

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false

	swagger, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, err
	}
	if err = swagger.Validate(context.Background()); err != nil {
		return nil, err
	}
	return swagger, nil
}
