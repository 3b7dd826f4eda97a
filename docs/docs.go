// Package docs holds the OpenAPI document served under /swagger. It is
// maintained by hand and must follow the swag annotations on the handlers.
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
        "/api/v1/suggest-tasks": {
            "post": {
                "description": "Suggests 1 to 5 tasks for a project description using similar historical tasks as context.\nDescriptions that fail the quality gate get a single request for more detail.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Suggestion"],
                "summary": "Suggest project tasks",
                "parameters": [
                    {
                        "description": "Project description",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.suggestReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.suggestResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/validate-description": {
            "post": {
                "description": "Scores a description for coherence and project relevance and returns improvement hints.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Suggestion"],
                "summary": "Validate a project description",
                "parameters": [
                    {
                        "description": "Text to validate",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.validateReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.validateResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/reload-data": {
            "post": {
                "description": "Re-embeds every catalog task into the vector collection in the background.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Rebuild the vector index",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Admin token, required when configured",
                        "name": "X-Admin-Token",
                        "in": "header"
                    },
                    {
                        "description": "Reload options",
                        "name": "body",
                        "in": "body",
                        "schema": {"$ref": "#/definitions/http.reloadReq"}
                    }
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/http.reloadResp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Reload already running", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/status": {
            "get": {
                "description": "Reports catalog size, vector collection state, configured models and the last reload.",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Service status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.statusResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Vector store unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.suggestReq": {
            "type": "object",
            "properties": {
                "project_description": {"type": "string"},
                "num_suggestions": {"type": "integer", "maximum": 5, "minimum": 1},
                "use_hybrid_search": {"type": "boolean"}
            }
        },
        "http.taskSuggestionResp": {
            "type": "object",
            "properties": {"task_text": {"type": "string"}}
        },
        "http.similarTaskResp": {
            "type": "object",
            "properties": {
                "task_id": {"type": "string"},
                "task_text": {"type": "string"},
                "project_id": {"type": "string"},
                "project_name": {"type": "string"},
                "project_description": {"type": "string"},
                "score": {"type": "number"},
                "raw_score": {"type": "number"}
            }
        },
        "http.suggestResp": {
            "type": "object",
            "properties": {
                "suggestions": {"type": "array", "items": {"$ref": "#/definitions/http.taskSuggestionResp"}},
                "similar_tasks": {"type": "array", "items": {"$ref": "#/definitions/http.similarTaskResp"}},
                "confidence": {"type": "string"},
                "retrieval_confidence": {"type": "string"},
                "query": {"$ref": "#/definitions/quality.Metadata"},
                "rejected": {"type": "boolean"},
                "degraded": {"type": "boolean"},
                "processing_time": {"type": "number"}
            }
        },
        "http.validateReq": {
            "type": "object",
            "required": ["text"],
            "properties": {"text": {"type": "string"}}
        },
        "http.validateResp": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "enhanced_text": {"type": "string"},
                "metadata": {"$ref": "#/definitions/quality.Metadata"},
                "recommendations": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.reloadReq": {
            "type": "object",
            "properties": {"recreate": {"type": "boolean"}}
        },
        "http.reloadResp": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "recreate": {"type": "boolean"}
            }
        },
        "http.statusResp": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "vector_store": {
                    "type": "object",
                    "properties": {
                        "collection": {"type": "string"},
                        "points_count": {"type": "integer"},
                        "status": {"type": "string"},
                        "available": {"type": "boolean"}
                    }
                },
                "catalog": {
                    "type": "object",
                    "properties": {
                        "projects": {"type": "integer"},
                        "tasks": {"type": "integer"}
                    }
                },
                "embedding_model": {"type": "string"},
                "generation_models": {"type": "array", "items": {"type": "string"}},
                "last_reload": {
                    "type": "object",
                    "properties": {
                        "state": {"type": "string"},
                        "started_at": {"type": "string"},
                        "finished_at": {"type": "string"},
                        "indexed": {"type": "integer"},
                        "skipped": {"type": "integer"},
                        "error": {"type": "string"}
                    }
                }
            }
        },
        "quality.Metadata": {
            "type": "object",
            "properties": {
                "original_length": {"type": "integer"},
                "word_count": {"type": "integer"},
                "unique_word_ratio": {"type": "number"},
                "special_char_ratio": {"type": "number"},
                "is_coherent": {"type": "boolean"},
                "relevance_score": {"type": "number"},
                "confidence": {"type": "string"},
                "should_process": {"type": "boolean"},
                "enhancement_applied": {"type": "boolean"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Task Suggestion API",
	Description:      "Suggests project tasks from a description using retrieval over historical projects and an LLM.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
