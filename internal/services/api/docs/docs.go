// Package docs holds the OpenAPI document served by swaggerkit
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "{{.Title}}",
    "description": "{{escape .Description}}",
    "version": "{{.Version}}"
  },
  "paths": {
    "/lookup": {
      "get": {
        "tags": ["Lookup"],
        "summary": "Resolve the caller name for a phone number",
        "operationId": "lookupName",
        "parameters": [
          {"name": "phone_number", "in": "query", "required": true, "example": "+15551234567", "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "resolution", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/lookup.LookupResult"}}}},
          "422": {"description": "provider rejected the number", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "429": {"description": "provider rate limited", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "502": {"description": "provider failure", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/lookup/last": {
      "get": {
        "tags": ["Lookup"],
        "summary": "Most recently resolved caller name",
        "operationId": "lookupLast",
        "responses": {
          "200": {"description": "last lookup", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/lookup.LastResolved"}}}},
          "404": {"description": "nothing resolved yet", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/verify": {
      "get": {
        "tags": ["Verify"],
        "summary": "Verify the claimed name for one phone number",
        "operationId": "verifyOne",
        "parameters": [
          {"name": "phone_number", "in": "query", "required": true, "example": "+15551234567", "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "verdict", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/verify.Result"}}}},
          "404": {"description": "number not in directory", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "503": {"description": "directory unavailable", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/verify/all": {
      "get": {
        "tags": ["Verify"],
        "summary": "Verify every directory record",
        "operationId": "verifyAll",
        "responses": {
          "200": {"description": "verdicts in directory order", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/verify.Result"}}}}},
          "503": {"description": "directory unavailable", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/directory/users": {
      "get": {
        "tags": ["Directory"],
        "summary": "Mock directory users list (bare array, no envelope)",
        "operationId": "directoryUsers",
        "responses": {
          "200": {"description": "users", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/verify.Record"}}}}}
        }
      }
    },
    "/meta/health": {
      "get": {"tags": ["Meta"], "summary": "Health check", "operationId": "metaHealth", "responses": {"200": {"description": "ok"}}}
    },
    "/meta/ready": {
      "get": {"tags": ["Meta"], "summary": "Readiness probe with dependency checks", "operationId": "metaReady", "responses": {"200": {"description": "ok"}}}
    },
    "/meta/version": {
      "get": {"tags": ["Meta"], "summary": "Build and version info", "operationId": "metaVersion", "responses": {"200": {"description": "ok"}}}
    },
    "/meta/service": {
      "get": {"tags": ["Meta"], "summary": "Service info and uptime", "operationId": "metaService", "responses": {"200": {"description": "ok"}}}
    }
  },
  "components": {
    "schemas": {
      "lookup.LookupResult": {
        "type": "object",
        "properties": {
          "phone_number": {"type": "string", "example": "+15551234567"},
          "name": {"type": "string", "example": "John Doe"},
          "found": {"type": "boolean", "example": true},
          "cached": {"type": "boolean", "example": false},
          "message": {"type": "string", "example": "Name not found or not available"}
        }
      },
      "lookup.LastResolved": {
        "type": "object",
        "properties": {
          "phone_number": {"type": "string", "example": "+15551234567"},
          "caller_name": {"type": "string", "example": "John Doe"},
          "resolved_at": {"type": "string", "format": "date-time"}
        }
      },
      "verify.Record": {
        "type": "object",
        "properties": {
          "phone_number": {"type": "string", "example": "+15551234567"},
          "name": {"type": "string", "example": "John Doe"}
        }
      },
      "verify.Result": {
        "type": "object",
        "properties": {
          "phone_number": {"type": "string", "example": "+15551234567"},
          "claimed_name": {"type": "string", "example": "John Doe"},
          "resolved_name": {"type": "string", "nullable": true, "example": "John Doe"},
          "status": {"type": "string", "enum": ["Verified", "Invalid", "LookupError"]},
          "error": {"type": "string"}
        }
      }
    }
  }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "callerverify API",
	Description:      "Caller name lookups and identity verification against a directory",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
