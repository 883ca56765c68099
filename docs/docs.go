// Package docs registers the OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/listings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Browse listings",
                "parameters": [
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "location_value", "in": "query"},
                    {"type": "string", "name": "title", "in": "query"},
                    {"type": "string", "name": "min_price", "in": "query"},
                    {"type": "string", "name": "max_price", "in": "query"},
                    {"type": "string", "name": "bedrooms", "in": "query", "description": "exact value or N+ for at least N"},
                    {"type": "string", "name": "bathrooms", "in": "query"},
                    {"type": "string", "name": "listingType", "in": "query"},
                    {"type": "string", "name": "featureType", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "pageSize", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "boolean", "name": "showAll", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Create a listing",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ListingRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/listings/count": {
            "get": {"produces": ["application/json"], "tags": ["Listings"], "summary": "Count matching listings", "responses": {"200": {"description": "OK"}}}
        },
        "/listings/featured": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Newest approved listings for home sections",
                "parameters": [
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/listings/slug/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Listing detail by slug",
                "parameters": [{"type": "string", "name": "slug", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/listings/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Listing detail",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Replace the content of a listing",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ListingRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Delete a listing",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/listings/{id}/cancel": {
            "post": {"security": [{"Bearer": []}], "tags": ["Listings"], "summary": "Cancel a listing", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/listings/{id}/sold": {
            "post": {"security": [{"Bearer": []}], "tags": ["Listings"], "summary": "Mark a listing as sold", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/me/listings": {
            "get": {"security": [{"Bearer": []}], "tags": ["Listings"], "summary": "Listings of the caller in every status", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/listings/stats": {
            "get": {"security": [{"Bearer": []}], "tags": ["Admin"], "summary": "Listing counts by status", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/listings/{id}/moderate": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["Admin"],
                "summary": "Approve or reject a pending listing",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ModerateListingRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/admin/listings/{id}/status": {
            "patch": {
                "security": [{"Bearer": []}],
                "tags": ["Admin"],
                "summary": "Set the status of a listing",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SetStatusRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/admin/listings/{id}/premium": {
            "patch": {
                "security": [{"Bearer": []}],
                "tags": ["Admin"],
                "summary": "Set the premium flag of a listing",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SetPremiumRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/users/{id}/listings": {
            "delete": {"security": [{"Bearer": []}], "tags": ["Admin"], "summary": "Delete every listing of a user", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "utils.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"$ref": "#/definitions/utils.ErrorInfo"},
                "message": {"type": "string"}
            }
        },
        "utils.ErrorInfo": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "handlers.LocationRequest": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "value": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "latlng": {"type": "array", "items": {"type": "number"}}
            }
        },
        "handlers.ListingRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "imageSrc": {"type": "array", "items": {"type": "string"}},
                "address": {"type": "string"},
                "features": {"type": "string"},
                "category": {"type": "string"},
                "listingType": {"type": "string", "enum": ["SALE", "RENT", "DAILY_RENT"]},
                "featureType": {"type": "string", "enum": ["HOMES", "EXPERIENCES", "SERVICES"]},
                "location": {"$ref": "#/definitions/handlers.LocationRequest"},
                "price": {"type": "integer"},
                "area": {"type": "integer"},
                "bedrooms": {"type": "integer"},
                "bathrooms": {"type": "integer"}
            }
        },
        "handlers.ModerateListingRequest": {
            "type": "object",
            "required": ["decision"],
            "properties": {"decision": {"type": "string", "enum": ["Approved", "Canceled"]}}
        },
        "handlers.SetStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string"}}
        },
        "handlers.SetPremiumRequest": {
            "type": "object",
            "required": ["isPremium"],
            "properties": {"isPremium": {"type": "boolean"}}
        }
    },
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Estately API",
	Description:      "Real-estate listing browse and moderation API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
