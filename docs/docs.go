// Package docs holds the OpenAPI description served at /swagger/. It
// mirrors the swag annotations on the handlers in internal/api; update both
// together.
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
        "/notes": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notes"
                ],
                "summary": "List notes",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/notes/{questionID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notes"
                ],
                "summary": "Get a note",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Question ID",
                        "name": "questionID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.NoteResponse"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notes"
                ],
                "summary": "Save a note",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Question ID",
                        "name": "questionID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Note",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.NoteRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.NoteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Notes"
                ],
                "summary": "Delete a note",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Question ID",
                        "name": "questionID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/session": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Session"
                ],
                "summary": "Current session",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.SessionResponse"
                        }
                    },
                    "409": {
                        "description": "no current test",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/session/answers": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Session"
                ],
                "summary": "Answer current question",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Chosen option index",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.SubmitAnswerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.AnswerResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "no current test",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/session/complete": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Session"
                ],
                "summary": "Complete test",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Elapsed time",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.TimerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/session.Result"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "unanswered questions or no current test",
                        "schema": {
                            "$ref": "#/definitions/api.IncompleteResponse"
                        }
                    }
                }
            }
        },
        "/session/navigate": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Session"
                ],
                "summary": "Go to question",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Target index",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.NavigateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.SessionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "no current test",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/session/next": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Session"
                ],
                "summary": "Next question",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.SessionResponse"
                        }
                    },
                    "409": {
                        "description": "no current test",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/session/pause": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Session"
                ],
                "summary": "Pause test",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Elapsed time",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.TimerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.SessionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "no current test",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/session/prev": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Session"
                ],
                "summary": "Previous question",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.SessionResponse"
                        }
                    },
                    "409": {
                        "description": "no current test",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/tests": {
            "post": {
                "description": "Filters the UV question bank, shuffles it and keeps the requested number of questions.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tests"
                ],
                "summary": "Create a test",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Test filters",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.CreateTestRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/api.SessionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tests"
                ],
                "summary": "List saved tests",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/api.TestSummary"
                            }
                        }
                    }
                }
            }
        },
        "/tests/{testID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tests"
                ],
                "summary": "Get a test",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Test ID",
                        "name": "testID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/quiz.Test"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Tests"
                ],
                "summary": "Delete a test",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Test ID",
                        "name": "testID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/tests/{testID}/open": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tests"
                ],
                "summary": "Open a test",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Test ID",
                        "name": "testID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.SessionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/tests/{testID}/result": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tests"
                ],
                "summary": "Test result",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Test ID",
                        "name": "testID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.Result"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/api.IncompleteResponse"
                        }
                    }
                }
            }
        },
        "/tests/{testID}/retest": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tests"
                ],
                "summary": "Retake a test",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Test ID",
                        "name": "testID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/api.SessionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/theme": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Theme"
                ],
                "summary": "Get theme",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.ThemeResponse"
                        }
                    }
                }
            }
        },
        "/theme/toggle": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Theme"
                ],
                "summary": "Toggle theme",
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "X-Profile-ID",
                        "in": "header",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.ThemeResponse"
                        }
                    }
                }
            }
        },
        "/uvs": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Setup"
                ],
                "summary": "List UVs",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/api.UVResponse"
                            }
                        }
                    }
                }
            }
        },
        "/uvs/{uv}/questions": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Setup"
                ],
                "summary": "Count available questions",
                "parameters": [
                    {
                        "description": "UV id",
                        "name": "uv",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Database key (H or A)",
                        "name": "database",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Selected subtopic codes",
                        "name": "subtopic",
                        "in": "query",
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.AvailableResponse"
                        }
                    }
                }
            }
        },
        "/uvs/{uv}/subjects": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Setup"
                ],
                "summary": "Subject statistics",
                "parameters": [
                    {
                        "description": "UV id",
                        "name": "uv",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Database key (H or A)",
                        "name": "database",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.SubjectStatsResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "answer.Resolution": {
            "type": "object",
            "properties": {
                "user_index": {
                    "type": "integer"
                },
                "answered": {
                    "type": "boolean"
                },
                "correct_index": {
                    "type": "integer"
                }
            }
        },
        "api.AnswerResponse": {
            "type": "object",
            "properties": {
                "recorded": {
                    "type": "boolean"
                },
                "session": {
                    "$ref": "#/definitions/api.SessionResponse"
                }
            }
        },
        "api.AvailableResponse": {
            "type": "object",
            "properties": {
                "uv": {
                    "type": "string",
                    "example": "050"
                },
                "database": {
                    "type": "string",
                    "example": "H"
                },
                "available": {
                    "type": "integer",
                    "example": 42
                }
            }
        },
        "api.CreateTestRequest": {
            "type": "object",
            "properties": {
                "uv": {
                    "type": "string",
                    "example": "050"
                },
                "database": {
                    "type": "string",
                    "example": "H"
                },
                "subtopics": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "count": {
                    "type": "integer",
                    "example": 20
                }
            }
        },
        "api.IncompleteResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "test incomplete: 2 unanswered questions"
                },
                "unanswered": {
                    "type": "integer",
                    "example": 2
                }
            }
        },
        "api.NavigateRequest": {
            "type": "object",
            "properties": {
                "index": {
                    "type": "integer",
                    "example": 3
                }
            }
        },
        "api.NoteRequest": {
            "type": "object",
            "properties": {
                "note": {
                    "type": "string",
                    "example": "Remember: QNH is sea level pressure."
                }
            }
        },
        "api.NoteResponse": {
            "type": "object",
            "properties": {
                "question_id": {
                    "type": "string",
                    "example": "q-050-001"
                },
                "note": {
                    "type": "string"
                }
            }
        },
        "api.OptionView": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string",
                    "example": "1013.25 hPa"
                },
                "correct": {
                    "type": "boolean"
                }
            }
        },
        "api.QuestionView": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "q-050-001"
                },
                "subtopic": {
                    "type": "string",
                    "example": "050-01"
                },
                "database": {
                    "type": "string",
                    "example": "H"
                },
                "question": {
                    "type": "string",
                    "example": "Standard sea level pressure?"
                },
                "options": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/api.OptionView"
                    }
                },
                "explanation": {
                    "type": "string"
                }
            }
        },
        "api.SessionResponse": {
            "type": "object",
            "properties": {
                "test_id": {
                    "type": "string",
                    "example": "m1x2y3z4abcd1234"
                },
                "state": {
                    "type": "string",
                    "example": "in_progress"
                },
                "index": {
                    "type": "integer",
                    "example": 0
                },
                "total": {
                    "type": "integer",
                    "example": 20
                },
                "answered": {
                    "type": "integer",
                    "example": 0
                },
                "question": {
                    "$ref": "#/definitions/api.QuestionView"
                },
                "validation": {
                    "$ref": "#/definitions/answer.Resolution"
                },
                "nav": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "elapsed": {
                    "type": "integer",
                    "example": 0
                },
                "time": {
                    "type": "string",
                    "example": "00:00:00"
                }
            }
        },
        "api.SubjectStatsResponse": {
            "type": "object",
            "properties": {
                "uv": {
                    "type": "string",
                    "example": "050"
                },
                "database": {
                    "type": "string",
                    "example": "H"
                },
                "subjects": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/subject.Stats"
                    }
                }
            }
        },
        "api.SubmitAnswerRequest": {
            "type": "object",
            "properties": {
                "option": {
                    "type": "integer",
                    "example": 1
                }
            }
        },
        "api.TestSummary": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "m1x2y3z4abcd1234"
                },
                "mode": {
                    "type": "string",
                    "example": "TEST"
                },
                "database": {
                    "type": "string",
                    "example": "HELICOPTERE"
                },
                "uv": {
                    "type": "string",
                    "example": "050 - Météorologie"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "save_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "questions": {
                    "type": "integer",
                    "example": 20
                },
                "answered": {
                    "type": "integer",
                    "example": 12
                },
                "score": {
                    "type": "integer",
                    "example": 80
                },
                "time_spent": {
                    "type": "string",
                    "example": "00:12:45"
                },
                "completed": {
                    "type": "boolean"
                }
            }
        },
        "api.ThemeResponse": {
            "type": "object",
            "properties": {
                "mode": {
                    "type": "string",
                    "example": "light"
                },
                "icon": {
                    "type": "string",
                    "example": "bxs:moon"
                }
            }
        },
        "api.TimerRequest": {
            "type": "object",
            "properties": {
                "elapsed": {
                    "type": "integer",
                    "example": 754
                },
                "time": {
                    "type": "string",
                    "example": "00:12:34"
                }
            }
        },
        "api.UVResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "050"
                },
                "name": {
                    "type": "string",
                    "example": "Météorologie"
                },
                "label": {
                    "type": "string",
                    "example": "050 - Météorologie"
                }
            }
        },
        "question.Option": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "correct": {
                    "type": "boolean"
                }
            }
        },
        "question.Question": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "subtopic": {
                    "type": "string"
                },
                "database": {
                    "type": "string"
                },
                "question": {
                    "type": "string"
                },
                "options": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/question.Option"
                    }
                },
                "explanation": {
                    "type": "string"
                }
            }
        },
        "quiz.Params": {
            "type": "object",
            "properties": {
                "mode": {
                    "type": "string"
                },
                "database_key": {
                    "type": "string"
                },
                "uv": {
                    "$ref": "#/definitions/subject.UV"
                },
                "subtopics": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "desired_count": {
                    "type": "integer"
                }
            }
        },
        "quiz.Test": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "mode": {
                    "type": "string"
                },
                "database": {
                    "type": "string"
                },
                "uv": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "questions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/question.Question"
                    }
                },
                "user_answers": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "time_elapsed": {
                    "type": "integer"
                },
                "save_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "score": {
                    "type": "integer"
                },
                "params": {
                    "$ref": "#/definitions/quiz.Params"
                }
            }
        },
        "service.Result": {
            "type": "object",
            "properties": {
                "test_id": {
                    "type": "string"
                },
                "uv": {
                    "type": "string"
                },
                "database": {
                    "type": "string"
                },
                "mode": {
                    "type": "string"
                },
                "correct": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                },
                "pct_correct": {
                    "type": "integer"
                },
                "pct_incorrect": {
                    "type": "integer"
                },
                "passed": {
                    "type": "boolean"
                },
                "time_spent": {
                    "type": "string"
                },
                "cards": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/session.Card"
                    }
                },
                "save_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "notes": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "session.Card": {
            "type": "object",
            "properties": {
                "index": {
                    "type": "integer"
                },
                "question": {
                    "$ref": "#/definitions/question.Question"
                },
                "resolution": {
                    "$ref": "#/definitions/answer.Resolution"
                },
                "correct": {
                    "type": "boolean"
                }
            }
        },
        "session.Result": {
            "type": "object",
            "properties": {
                "test_id": {
                    "type": "string"
                },
                "uv": {
                    "type": "string"
                },
                "database": {
                    "type": "string"
                },
                "mode": {
                    "type": "string"
                },
                "correct": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                },
                "pct_correct": {
                    "type": "integer"
                },
                "pct_incorrect": {
                    "type": "integer"
                },
                "passed": {
                    "type": "boolean"
                },
                "time_spent": {
                    "type": "string"
                },
                "cards": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/session.Card"
                    }
                },
                "save_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "subject.Stats": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "total": {
                    "type": "integer"
                },
                "subtopics": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/subject.SubtopicStats"
                    }
                }
            }
        },
        "subject.SubtopicStats": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "subject.UV": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "UV Quiz API",
	Description:      "Take randomized UV tests, navigate questions and review scored results.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
