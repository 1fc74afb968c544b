package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// requestValidator checks every API request against the OpenAPI document
// before it reaches a handler. Authentication is left to the JWT middleware.
func requestValidator(swagger *openapi3.T, basePath string) (echo.MiddlewareFunc, error) {
	// Routes are matched on the path below basePath, whatever host served it.
	swagger.Servers = nil
	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			lookup := req.Clone(req.Context())
			lookup.URL.Path = strings.TrimPrefix(req.URL.Path, basePath)
			lookup.URL.RawPath = ""

			route, pathParams, findErr := router.FindRoute(lookup)
			if findErr != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    lookup,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			validateErr := openapi3filter.ValidateRequest(req.Context(), input)
			// the validator drained the body and left a rewound copy on lookup
			req.Body = lookup.Body
			if validateErr != nil {
				return badRequest(c, validateErr.Error())
			}
			return next(c)
		}
	}, nil
}

// structValidator backs echo.Context.Validate with validator/v10 tags.
type structValidator struct {
	validate *validator.Validate
}

func newStructValidator() *structValidator {
	return &structValidator{validate: validator.New()}
}

func (v *structValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// openAPIDoc serves the embedded document to swagger UI through swag.
type openAPIDoc struct {
	doc string
}

func (d openAPIDoc) ReadDoc() string {
	return d.doc
}

var registerDocOnce sync.Once

func registerSwaggerDoc(swagger *openapi3.T) error {
	raw, err := json.Marshal(swagger)
	if err != nil {
		return err
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{doc: string(raw)})
	})
	return nil
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
