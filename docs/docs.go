// Package docs registers the OpenAPI description of the ticket HTTP API
// with swag, for serving under /swagger.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/tickets": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tickets"],
                "summary": "Create a ticket",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ticket.CreateTicketRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ticket.CreateTicketResponse"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/tickets/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tickets"],
                "summary": "Get a ticket",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TicketDTO"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["tickets"],
                "summary": "Close a ticket",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TicketDTO"}},
                    "400": {"description": "Invalid id or already closed", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "409": {"description": "Concurrent modification", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/tickets/{id}/assignee": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tickets"],
                "summary": "Assign a ticket",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ticket.AssignTicketRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TicketDTO"}},
                    "400": {"description": "Invalid input or closed ticket", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "409": {"description": "Concurrent modification", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.TicketDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["open", "assigned", "closed"]},
                "assignee": {"type": "string"},
                "version": {"type": "integer"}
            }
        },
        "ticket.AssignTicketRequest": {
            "type": "object",
            "required": ["user_id"],
            "properties": {
                "user_id": {"type": "string"}
            }
        },
        "ticket.CreateTicketRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 100},
                "description": {"type": "string", "maxLength": 200}
            }
        },
        "ticket.CreateTicketResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}
            }
        },
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
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ticketdesk API",
	Description:      "Ticket creation, assignment and closing with optimistic concurrency.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
