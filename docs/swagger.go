// Package docs registers the OpenAPI description of the userfeed API with
// swag so gin-swagger can serve it under /docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/users": {
            "get": {
                "summary": "List users with their address, five per page",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "1-based page; invalid values mean 1", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserPage"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/users/{id}/posts": {
            "get": {
                "summary": "List a user's posts, newest first",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserPosts"}},
                    "400": {"description": "Missing user ID", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/users/posts/add/{userId}": {
            "post": {
                "summary": "Create a post for a user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "userId", "in": "path", "required": true},
                    {"description": "Post", "name": "post", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NewPost"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/PostCreated"}},
                    "400": {"description": "Missing title or body", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "summary": "Store connectivity check",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Store unreachable", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "address": {"type": "string", "x-nullable": true}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "currentPage": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "totalRecords": {"type": "integer"}
            }
        },
        "UserPage": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/User"}},
                "pagination": {"$ref": "#/definitions/Pagination"}
            }
        },
        "Post": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "body": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "UserPosts": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/Post"}}
            }
        },
        "NewPost": {
            "type": "object",
            "required": ["title", "body"],
            "properties": {
                "title": {"type": "string"},
                "body": {"type": "string"}
            }
        },
        "CreatedPost": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "userId": {"type": "string"},
                "title": {"type": "string"},
                "body": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "PostCreated": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "data": {"$ref": "#/definitions/CreatedPost"}
            }
        },
        "Error": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["invalid_argument", "store_failure", "unavailable", "internal"]},
                "message": {"type": "string"},
                "fields": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "field": {"type": "string"},
                            "rule": {"type": "string"},
                            "message": {"type": "string"}
                        }
                    }
                }
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "error": {"$ref": "#/definitions/Error"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "userfeed API",
	Description:      "Paginated users with addresses, and per-user posts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
