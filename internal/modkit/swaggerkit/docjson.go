package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"callerverify/internal/core/version"
	perr "callerverify/internal/platform/errors"

	docs "callerverify/internal/services/api/docs"
)

// docReader is a seam so tests can inject invalid JSON
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// DocOptions adjusts the served document
type DocOptions struct {
	// TitleSuffix is appended to info.title, e.g. "(staging)"
	TitleSuffix string
	// BaseURL becomes the single servers entry
	BaseURL string
}

// serveDocJSON parses the embedded document, patches it, and serves it uncached
func serveDocJSON(o DocOptions) http.HandlerFunc {
	if o.BaseURL == "" {
		o.BaseURL = "/api/v1"
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		var doc map[string]any
		if err := json.Unmarshal([]byte(docReader()), &doc); err != nil {
			http.Error(w, "openapi document parse error", http.StatusInternalServerError)
			return
		}

		normalizeVersion(doc)
		if _, ok := doc["servers"]; !ok {
			doc["servers"] = []any{map[string]any{"url": o.BaseURL}}
		}
		stampInfo(doc, o.TitleSuffix)
		child(child(doc, "components"), "schemas")["ErrorResponse"] = errorSchema()
		injectDefaults(doc, map[string]any{
			"400": errorResponse("Bad Request", perr.ErrorCodeValidation, "phone_number is required"),
			"500": errorResponse("Internal Server Error", perr.ErrorCodePanic, "internal error"),
		})

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(doc)
	}
}

// normalizeVersion pins the document to OpenAPI 3.0.3, which swagger ui renders
func normalizeVersion(doc map[string]any) {
	delete(doc, "swagger")
	if v, _ := doc["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		doc["openapi"] = "3.0.3"
	}
}

// stampInfo sets info.version from the running build
func stampInfo(doc map[string]any, suffix string) {
	info := child(doc, "info")
	info["version"] = version.Info().Version
	if title, ok := info["title"].(string); ok && suffix != "" {
		info["title"] = title + " " + suffix
	}
}

// injectDefaults adds each status response to every operation lacking one
func injectDefaults(doc map[string]any, defaults map[string]any) {
	paths, _ := doc["paths"].(map[string]any)
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps := child(op, "responses")
			for status, r := range defaults {
				if _, exists := resps[status]; !exists {
					resps[status] = r
				}
			}
		}
	}
}

func errorSchema() map[string]any {
	codes := make([]any, 0, 10)
	for c := perr.ErrorCodeUnknown; c <= perr.ErrorCodeUpstream; c++ {
		codes = append(codes, c.String())
	}
	return map[string]any{
		"type":        "object",
		"description": "Error envelope",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "string", "enum": codes},
			"error":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

func errorResponse(desc string, code perr.ErrorCode, msg string) map[string]any {
	status := perr.HTTPStatusCode(code)
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      http.StatusText(status),
					"code":        code.String(),
					"error":       msg,
					"request_id":  "host/abc-000001",
				},
			},
		},
	}
}

// child returns m[key] as a map, creating it when missing
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}
