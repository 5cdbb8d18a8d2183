// Package portal contains the generated Swagger documentation for the
// portal API. Regenerate with:
//
//	swag init -g internal/portal/http/router.go -o api/portal
package portal

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Harbor Financial Engineering",
            "url": "https://github.com/harborfin/rollover"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/livez": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check Endpoint",
                "responses": {
                    "200": {"description": "status, uptime, version", "schema": {"$ref": "#/definitions/portalsdk.HealthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check Endpoint",
                "responses": {
                    "200": {"description": "status, uptime, version, checks", "schema": {"$ref": "#/definitions/portalsdk.HealthResponse"}},
                    "503": {"description": "service not ready", "schema": {"$ref": "#/definitions/portalsdk.HealthResponse"}}
                }
            }
        },
        "/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Sign In",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/portalsdk.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "access_token, token_type, expires_at, user", "schema": {"$ref": "#/definitions/portalsdk.LoginResponse"}},
                    "400": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}}
                }
            }
        },
        "/v1/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Sign Out",
                "responses": {
                    "204": {"description": "no content"},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}}
                }
            }
        },
        "/v1/invites/advisor": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Invitations"],
                "summary": "Invite Advisor",
                "parameters": [
                    {"description": "Advisor invitation", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/portalsdk.InviteAdvisorRequest"}}
                ],
                "responses": {
                    "200": {"description": "user_id, email, firm_id, role, invited", "schema": {"$ref": "#/definitions/portalsdk.InviteResponse"}},
                    "400": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}},
                    "502": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}}
                }
            }
        },
        "/v1/invites/client": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Invitations"],
                "summary": "Invite Client",
                "parameters": [
                    {"description": "Client invitation", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/portalsdk.InviteClientRequest"}}
                ],
                "responses": {
                    "200": {"description": "user_id, email, firm_id, role, invited", "schema": {"$ref": "#/definitions/portalsdk.InviteResponse"}},
                    "400": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}},
                    "403": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}},
                    "502": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}}
                }
            }
        },
        "/v1/invites/accept": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Invitations"],
                "summary": "Accept Invitation",
                "parameters": [
                    {"description": "Invitation token and chosen password", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/portalsdk.AcceptInviteRequest"}}
                ],
                "responses": {
                    "200": {"description": "user", "schema": {"$ref": "#/definitions/portalsdk.AcceptInviteResponse"}},
                    "400": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}}
                }
            }
        },
        "/v1/firm": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Firm"],
                "summary": "Firm Directory",
                "responses": {
                    "200": {"description": "id, name, members", "schema": {"$ref": "#/definitions/portalsdk.FirmResponse"}},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}},
                    "403": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}}
                }
            }
        },
        "/v1/clients": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Clients"],
                "summary": "List My Clients",
                "responses": {
                    "200": {"description": "clients", "schema": {"$ref": "#/definitions/portalsdk.ClientsResponse"}},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}},
                    "403": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}}
                }
            }
        },
        "/v1/clients/{id}/access": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Sharing"],
                "summary": "List Client Access",
                "parameters": [
                    {"type": "string", "description": "Client user id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "grants", "schema": {"$ref": "#/definitions/portalsdk.AccessListResponse"}},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}},
                    "403": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sharing"],
                "summary": "Grant Client Access",
                "parameters": [
                    {"type": "string", "description": "Client user id", "name": "id", "in": "path", "required": true},
                    {"description": "Advisor to grant", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/portalsdk.GrantAccessRequest"}}
                ],
                "responses": {
                    "200": {"description": "client_id, advisor_id, granted_by, created_at", "schema": {"$ref": "#/definitions/portalsdk.AccessGrant"}},
                    "400": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}},
                    "403": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}}
                }
            }
        },
        "/v1/clients/{id}/access/{advisorID}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Sharing"],
                "summary": "Revoke Client Access",
                "parameters": [
                    {"type": "string", "description": "Client user id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Advisor user id", "name": "advisorID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "no content"},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}},
                    "403": {"description": "error, error_description", "schema": {"$ref": "#/definitions/portalsdk.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "portalsdk.AcceptInviteRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "portalsdk.AcceptInviteResponse": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/portalsdk.UserProfile"}
            }
        },
        "portalsdk.AccessGrant": {
            "type": "object",
            "properties": {
                "advisor_email": {"type": "string"},
                "advisor_id": {"type": "string"},
                "advisor_name": {"type": "string"},
                "client_id": {"type": "string"},
                "created_at": {"type": "string"},
                "granted_by": {"type": "string"}
            }
        },
        "portalsdk.AccessListResponse": {
            "type": "object",
            "properties": {
                "grants": {"type": "array", "items": {"$ref": "#/definitions/portalsdk.AccessGrant"}}
            }
        },
        "portalsdk.ClientsResponse": {
            "type": "object",
            "properties": {
                "clients": {"type": "array", "items": {"$ref": "#/definitions/portalsdk.UserProfile"}}
            }
        },
        "portalsdk.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "error_description": {"type": "string"}
            }
        },
        "portalsdk.FirmMember": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "id": {"type": "string"},
                "joined_at": {"type": "string"},
                "last_name": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "portalsdk.FirmResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "members": {"type": "array", "items": {"$ref": "#/definitions/portalsdk.FirmMember"}},
                "name": {"type": "string"}
            }
        },
        "portalsdk.GrantAccessRequest": {
            "type": "object",
            "properties": {
                "advisor_id": {"type": "string"}
            }
        },
        "portalsdk.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"},
                "signer": {"type": "string"}
            }
        },
        "portalsdk.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {"$ref": "#/definitions/portalsdk.HealthChecks"},
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "portalsdk.InviteAdvisorRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "firm_name": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"}
            }
        },
        "portalsdk.InviteClientRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"}
            }
        },
        "portalsdk.InviteResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "firm_id": {"type": "string"},
                "invited": {"type": "boolean"},
                "role": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "portalsdk.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "portalsdk.LoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "expires_at": {"type": "integer"},
                "token_type": {"type": "string"},
                "user": {"$ref": "#/definitions/portalsdk.UserProfile"}
            }
        },
        "portalsdk.UserProfile": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "id": {"type": "string"},
                "last_name": {"type": "string"},
                "role": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT session token. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Rollover Portal API",
	Description:      "Backend for the rollover portal: firm and advisor onboarding, client invitations, and the advisor-client access grants that gate who may see whose data.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
