// Package docs holds the OpenAPI description of the record API.
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
        "/projects": {
            "get": {
                "tags": ["projects"],
                "summary": "List projects",
                "description": "Return every project, most recent first",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/entities.Project"}
                        }
                    }
                }
            },
            "post": {
                "tags": ["projects"],
                "summary": "Create a new project",
                "description": "Store a project and assign it an id",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "description": "Project data",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ports.ProjectRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/entities.Project"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/http.ValidationErrorResponse"}
                    }
                }
            }
        },
        "/projects/{id}": {
            "put": {
                "tags": ["projects"],
                "summary": "Replace a project",
                "description": "Replace every field of the project; the id is taken from the path",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Project ID", "name": "id", "in": "path", "required": true},
                    {
                        "in": "body",
                        "name": "request",
                        "description": "Project data",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ports.ProjectRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/entities.Project"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/http.ValidationErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/http.MessageResponse"}
                    }
                }
            },
            "delete": {
                "tags": ["projects"],
                "summary": "Delete a project",
                "parameters": [
                    {"type": "string", "description": "Project ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/http.MessageResponse"}
                    }
                }
            }
        },
        "/incomes": {
            "get": {
                "tags": ["incomes"],
                "summary": "List income entries",
                "description": "Return every income entry, newest date first",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/entities.IncomeEntry"}
                        }
                    }
                }
            },
            "post": {
                "tags": ["incomes"],
                "summary": "Record income",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "description": "Income data",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ports.IncomeRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/entities.IncomeEntry"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/http.ValidationErrorResponse"}
                    }
                }
            }
        },
        "/incomes/summary": {
            "get": {
                "tags": ["incomes"],
                "summary": "Income summary",
                "description": "Total income and per-month totals in chronological order",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/entities.IncomeSummary"}
                    }
                }
            }
        },
        "/incomes/{id}": {
            "delete": {
                "tags": ["incomes"],
                "summary": "Delete an income entry",
                "parameters": [
                    {"type": "string", "description": "Income entry ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/http.MessageResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "entities.Project": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "imageUrl": {"type": "string"},
                "videoUrl": {"type": "string"},
                "client": {"type": "string"},
                "year": {"type": "integer"},
                "duration": {"type": "string"},
                "tools": {"type": "array", "items": {"type": "string"}}
            }
        },
        "entities.IncomeEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "project": {"type": "string"},
                "client": {"type": "string"},
                "amount": {"type": "number"},
                "date": {"type": "string", "example": "2024-01-15"}
            }
        },
        "entities.MonthlyIncome": {
            "type": "object",
            "properties": {
                "month": {"type": "string", "example": "2024-01"},
                "label": {"type": "string", "example": "Jan 24"},
                "income": {"type": "number"}
            }
        },
        "entities.IncomeSummary": {
            "type": "object",
            "properties": {
                "total": {"type": "number"},
                "months": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/entities.MonthlyIncome"}
                }
            }
        },
        "ports.ProjectRequest": {
            "type": "object",
            "required": ["title", "category", "description", "imageUrl"],
            "properties": {
                "title": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "imageUrl": {"type": "string"},
                "videoUrl": {"type": "string"},
                "client": {"type": "string"},
                "year": {"type": "integer"},
                "duration": {"type": "string"},
                "tools": {"type": "array", "items": {"type": "string"}}
            }
        },
        "ports.IncomeRequest": {
            "type": "object",
            "required": ["project", "date"],
            "properties": {
                "project": {"type": "string"},
                "client": {"type": "string"},
                "amount": {"type": "number", "minimum": 0},
                "date": {"type": "string", "example": "2024-01-15"}
            }
        },
        "http.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "http.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "rule": {"type": "string"},
                "param": {"type": "string"}
            }
        },
        "http.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "details": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/http.FieldError"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Reelfolio API",
	Description:      "Projects and income records behind the Reelfolio portfolio site",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
