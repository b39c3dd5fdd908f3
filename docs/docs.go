// Package docs holds the Swagger definition served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.nexconsult.com/support",
            "email": "support@nexconsult.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/cpf/{cpf}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["CPF"],
                "summary": "Validate a CPF",
                "parameters": [
                    {"type": "string", "description": "CPF number", "name": "cpf", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/cpf/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["CPF"],
                "summary": "Generate a valid CPF",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/cnpj/{cnpj}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["CNPJ"],
                "summary": "Validate a CNPJ",
                "parameters": [
                    {"type": "string", "description": "CNPJ number", "name": "cnpj", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/cnpj/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["CNPJ"],
                "summary": "Generate a valid CNPJ",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/cnpj/{cnpj}/company": {
            "get": {
                "produces": ["application/json"],
                "tags": ["CNPJ"],
                "summary": "Look up company registration data",
                "parameters": [
                    {"type": "string", "description": "CNPJ number", "name": "cnpj", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/cep/{cep}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["CEP"],
                "summary": "Validate a CEP",
                "parameters": [
                    {"type": "string", "description": "CEP", "name": "cep", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/cep/{cep}/address": {
            "get": {
                "produces": ["application/json"],
                "tags": ["CEP"],
                "summary": "Look up the address of a CEP",
                "parameters": [
                    {"type": "string", "description": "CEP", "name": "cep", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/phone/{phone}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Phone"],
                "summary": "Validate a phone number",
                "parameters": [
                    {"type": "string", "description": "Phone number", "name": "phone", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/phone/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Phone"],
                "summary": "Generate a valid phone number",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/pix/validate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Pix"],
                "summary": "Validate a Pix key",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/pix/batch": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Pix"],
                "summary": "Validate Pix keys in batch",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/pix/mask": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Pix"],
                "summary": "Mask a Pix key",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/pix/equal": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Pix"],
                "summary": "Compare two Pix keys",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/pix/random": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Pix"],
                "summary": "Generate a random Pix key",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/plate/{plate}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Plate"],
                "summary": "Validate a vehicle plate",
                "parameters": [
                    {"type": "string", "description": "Vehicle plate", "name": "plate", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/plate/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Plate"],
                "summary": "Generate a valid vehicle plate",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/banks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "List banks",
                "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/banks/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "Look up a bank by code",
                "parameters": [
                    {"type": "string", "description": "Bank code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/ddd/{ddd}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "Look up a DDD",
                "parameters": [
                    {"type": "string", "description": "Area code", "name": "ddd", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/holidays/{year}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "List national holidays of a year",
                "parameters": [
                    {"type": "integer", "description": "Year", "name": "year", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/holidays/next": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "Next national holiday",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/holidays/check": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "Check whether a date is a national holiday",
                "parameters": [
                    {"type": "string", "description": "Date (YYYY-MM-DD)", "name": "date", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/metrics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Metrics"],
                "summary": "Get application metrics",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/states": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "List states",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/states/{uf}/cities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "List municipalities of a state",
                "parameters": [
                    {"type": "string", "description": "State abbreviation", "name": "uf", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/fipe/{vehicle}/brands": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "List FIPE brands",
                "parameters": [
                    {"type": "string", "description": "Vehicle type", "name": "vehicle", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/fipe/{vehicle}/price/{brand}/{model}/{year}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "FIPE price of one vehicle",
                "parameters": [
                    {"type": "string", "description": "Vehicle type", "name": "vehicle", "in": "path", "required": true},
                    {"type": "string", "description": "Brand code", "name": "brand", "in": "path", "required": true},
                    {"type": "string", "description": "Model code", "name": "model", "in": "path", "required": true},
                    {"type": "string", "description": "Year code", "name": "year", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/cache/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Cache"],
                "summary": "Get cache statistics",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/cache/clear": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Cache"],
                "summary": "Clear the cache",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Brazilian Documents API",
	Description:      "Validation, formatting and generation of Brazilian identification numbers (CPF, CNPJ, CEP, phone, Pix keys, vehicle plates), with public registry lookups",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
