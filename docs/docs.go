// Package docs holds the Swagger 2.0 document served at /swagger. It follows
// the godoc annotations on the handlers and is kept in step with the router.
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
        "/categories": {
            "get": {
                "description": "Returns the fixed portfolio categories in display order",
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "List portfolio categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CategoriesResponse"}}
                }
            }
        },
        "/portfolio": {
            "get": {
                "description": "Returns portfolio images newest first. A failed fetch returns an empty list.",
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "List portfolio images",
                "parameters": [
                    {"type": "string", "description": "Category filter", "name": "category", "in": "query"},
                    {"type": "integer", "description": "Maximum number of images", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GalleryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/admin/login": {
            "post": {
                "description": "Checks the shared admin password. On success sets the session cookie and returns a bearer token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Admin login",
                "parameters": [
                    {"description": "Admin password", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/admin/logout": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Admin logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MutationResponse"}}
                }
            }
        },
        "/admin/selection": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Current bulk selection",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SelectionResponse"}}
                }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Clear the selection",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SelectionResponse"}}
                }
            }
        },
        "/admin/selection/mode": {
            "post": {
                "security": [{"Bearer": []}],
                "description": "Leaving selection mode clears the selection.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Enter or leave selection mode",
                "parameters": [
                    {"description": "Mode", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SelectionModeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SelectionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/admin/selection/toggle/{id}": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Select or deselect one image",
                "parameters": [
                    {"type": "string", "description": "Image ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SelectionResponse"}}
                }
            }
        },
        "/admin/selection/all": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Select every image, or clear when all are selected",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SelectionResponse"}}
                }
            }
        },
        "/admin/images": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List all portfolio images",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ImageListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Upload one image",
                "parameters": [
                    {"type": "file", "description": "Image file", "name": "image", "in": "formData", "required": true},
                    {"type": "string", "description": "Portfolio category", "name": "category", "in": "formData", "required": true},
                    {"type": "string", "description": "Optional title", "name": "title", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.MutationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/admin/images/bulk": {
            "post": {
                "security": [{"Bearer": []}],
                "description": "With Accept: text/event-stream the response is a stream of progress events followed by one result event.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json", "text/event-stream"],
                "tags": ["admin"],
                "summary": "Upload many images",
                "parameters": [
                    {"type": "file", "description": "Image files (multiple allowed)", "name": "images", "in": "formData", "required": true},
                    {"type": "string", "description": "Portfolio category for every file", "name": "category", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BatchResponse"}}
                }
            }
        },
        "/admin/images/bulk-delete": {
            "post": {
                "security": [{"Bearer": []}],
                "description": "With Accept: text/event-stream the response is a stream of progress events followed by one result event.",
                "consumes": ["application/json"],
                "produces": ["application/json", "text/event-stream"],
                "tags": ["admin"],
                "summary": "Delete many images",
                "parameters": [
                    {"description": "Image IDs", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/models.BulkDeleteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BatchResponse"}}
                }
            }
        },
        "/admin/images/{id}": {
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update image metadata",
                "parameters": [
                    {"type": "string", "description": "Image ID", "name": "id", "in": "path", "required": true},
                    {"description": "New metadata", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateImageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MutationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete an image",
                "parameters": [
                    {"type": "string", "description": "Image ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MutationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "message": {"type": "string"}}
        },
        "models.CategoriesResponse": {
            "type": "object",
            "properties": {"categories": {"type": "array", "items": {"type": "string"}}}
        },
        "models.GalleryItemResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "image_url": {"type": "string"},
                "category": {"type": "string"},
                "title": {"type": "string"},
                "alt": {"type": "string"}
            }
        },
        "models.GalleryResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.GalleryItemResponse"}}
            }
        },
        "models.LoginRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {"password": {"type": "string"}}
        },
        "models.LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "models.ImageResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "image_url": {"type": "string"},
                "category": {"type": "string"},
                "title": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.ImageListResponse": {
            "type": "object",
            "properties": {"images": {"type": "array", "items": {"$ref": "#/definitions/models.ImageResponse"}}}
        },
        "models.MutationResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "image": {"$ref": "#/definitions/models.ImageResponse"},
                "images": {"type": "array", "items": {"$ref": "#/definitions/models.ImageResponse"}}
            }
        },
        "models.BatchError": {
            "type": "object",
            "properties": {"item": {"type": "string"}, "error": {"type": "string"}}
        },
        "models.BatchResponse": {
            "type": "object",
            "properties": {
                "succeeded": {"type": "integer"},
                "failed": {"type": "integer"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/models.BatchError"}},
                "images": {"type": "array", "items": {"$ref": "#/definitions/models.ImageResponse"}}
            }
        },
        "models.BulkDeleteRequest": {
            "type": "object",
            "properties": {"ids": {"type": "array", "items": {"type": "string"}}}
        },
        "models.SelectionModeRequest": {
            "type": "object",
            "properties": {"enabled": {"type": "boolean"}}
        },
        "models.SelectionResponse": {
            "type": "object",
            "properties": {
                "enabled": {"type": "boolean"},
                "ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.UpdateImageRequest": {
            "type": "object",
            "required": ["category"],
            "properties": {"category": {"type": "string"}, "title": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and the token returned by login.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Frames Studio API",
	Description:      "Portfolio gallery and admin asset management for the 35 Frames Photography site.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
