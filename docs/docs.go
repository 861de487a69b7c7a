// Package docs provides Swagger documentation for the Motor Portal API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/MrKriegler/go-motor-portal"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "in": "header", "name": "X-API-Key"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/rates": {
            "get": {
                "tags": ["Rates"],
                "summary": "List rate tables",
                "operationId": "listRates",
                "responses": {
                    "200": {"description": "Rate tables ordered by vehicle type", "schema": {"type": "array", "items": {"$ref": "#/definitions/RateTable"}}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/rates/{vehicle_type}": {
            "get": {
                "tags": ["Rates"],
                "summary": "Get the rate table of a vehicle type",
                "operationId": "getRate",
                "parameters": [
                    {"name": "vehicle_type", "in": "path", "required": true, "type": "string", "description": "Vehicle type (e.g., sedan)"}
                ],
                "responses": {
                    "200": {"description": "Rate table", "schema": {"$ref": "#/definitions/RateTable"}},
                    "404": {"description": "Unknown vehicle type", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/quotes": {
            "post": {
                "tags": ["Quotes"],
                "summary": "Price a vehicle and issue a quotation",
                "description": "Depreciates the vehicle 10% per year, adds the rate-table coverages, applies VAT, documentary stamp and local government tax on the basic premium, then adds the optional Act of Nature rider. Every step is rounded half away from zero to 2 decimals.",
                "operationId": "createQuote",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/QuoteInput"}}
                ],
                "responses": {
                    "201": {"description": "Quotation created", "schema": {"$ref": "#/definitions/Quotation"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/ProblemDetails"}},
                    "404": {"description": "No usable rate table for the vehicle type", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/quotes/{quote_id}": {
            "get": {
                "tags": ["Quotes"],
                "summary": "Get a quotation",
                "operationId": "getQuote",
                "parameters": [
                    {"name": "quote_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Quotation", "schema": {"$ref": "#/definitions/Quotation"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/commissions:apply": {
            "post": {
                "tags": ["Quotes"],
                "summary": "Mark a total up by a commission percentage",
                "operationId": "applyCommission",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CommissionInput"}}
                ],
                "responses": {
                    "200": {"description": "Commission applied", "schema": {"$ref": "#/definitions/CommissionResult"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/policies": {
            "get": {
                "tags": ["Policies"],
                "summary": "List policies",
                "operationId": "listPolicies",
                "parameters": [
                    {"name": "holder_email", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["active", "lapsed", "cancelled", "expired"]},
                    {"name": "limit", "in": "query", "type": "integer", "default": 20, "maximum": 100},
                    {"name": "offset", "in": "query", "type": "integer", "default": 0}
                ],
                "responses": {
                    "200": {"description": "Page of policies, newest first", "schema": {"$ref": "#/definitions/PolicyPage"}}
                }
            }
        },
        "/policies/{policy_number}": {
            "get": {
                "tags": ["Policies"],
                "summary": "Get a policy by number",
                "operationId": "getPolicy",
                "parameters": [
                    {"name": "policy_number", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Policy", "schema": {"$ref": "#/definitions/Policy"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/policies/{policy_number}/installments": {
            "get": {
                "tags": ["Payments"],
                "summary": "Installment schedule",
                "description": "Installments in due-date order, each flagged payable only when every earlier installment is paid. Overdue is a date-only comparison against today.",
                "operationId": "getSchedule",
                "parameters": [
                    {"name": "policy_number", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Schedule", "schema": {"$ref": "#/definitions/Schedule"}},
                    "404": {"description": "Policy not found", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/policies/{policy_number}/installments/{installment_id}/payability": {
            "get": {
                "tags": ["Payments"],
                "summary": "Check whether an installment may be paid now",
                "operationId": "checkPayability",
                "parameters": [
                    {"name": "policy_number", "in": "path", "required": true, "type": "string"},
                    {"name": "installment_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Payability with reason when refused", "schema": {"$ref": "#/definitions/Payability"}},
                    "404": {"description": "Policy or installment not found", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/policies/{policy_number}/claims": {
            "get": {
                "tags": ["Claims"],
                "summary": "List claims on a policy",
                "operationId": "listClaims",
                "parameters": [
                    {"name": "policy_number", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Claims, oldest first", "schema": {"type": "array", "items": {"$ref": "#/definitions/Claim"}}},
                    "404": {"description": "Policy not found", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            },
            "post": {
                "tags": ["Claims"],
                "summary": "File a claim",
                "description": "Eligibility is re-evaluated on fresh data: claimable amount must be positive, fewer than two claims may exist, and no claim may be pending, under review or approved.",
                "operationId": "fileClaim",
                "parameters": [
                    {"name": "policy_number", "in": "path", "required": true, "type": "string"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ClaimInput"}}
                ],
                "responses": {
                    "201": {"description": "Pending claim created", "schema": {"$ref": "#/definitions/Claim"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/ProblemDetails"}},
                    "404": {"description": "Policy not found", "schema": {"$ref": "#/definitions/ProblemDetails"}},
                    "409": {"description": "Not eligible; reason in body", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/policies/{policy_number}/claims/eligibility": {
            "get": {
                "tags": ["Claims"],
                "summary": "Claim eligibility of a policy",
                "operationId": "getClaimEligibility",
                "parameters": [
                    {"name": "policy_number", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Eligibility", "schema": {"$ref": "#/definitions/ClaimEligibility"}},
                    "404": {"description": "Policy not found", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/claims/eligibility": {
            "get": {
                "tags": ["Claims"],
                "summary": "Claim eligibility for a page of policies",
                "operationId": "listClaimEligibility",
                "parameters": [
                    {"name": "holder_email", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "limit", "in": "query", "type": "integer", "default": 20},
                    {"name": "offset", "in": "query", "type": "integer", "default": 0}
                ],
                "responses": {
                    "200": {"description": "Page of eligibility results", "schema": {"$ref": "#/definitions/PolicyEligibilityPage"}}
                }
            }
        }
    },
    "definitions": {
        "RateTable": {
            "type": "object",
            "properties": {
                "vehicle_type": {"type": "string", "example": "sedan"},
                "description": {"type": "string"},
                "vehicle_rate_percent": {"type": "number", "example": 1.5},
                "bodily_injury": {"type": "number", "example": 1250},
                "property_damage": {"type": "number", "example": 1750},
                "personal_accident": {"type": "number", "example": 1000},
                "vat_percent": {"type": "number", "example": 12},
                "documentary_stamp_percent": {"type": "number", "example": 12.5},
                "local_gov_tax_percent": {"type": "number", "example": 0.2},
                "act_of_nature_percent": {"type": "number", "example": 0.5}
            }
        },
        "Vehicle": {
            "type": "object",
            "required": ["model_year"],
            "properties": {
                "original_cost": {"type": "number", "example": 500000},
                "model_year": {"type": "integer", "example": 2022}
            }
        },
        "QuoteInput": {
            "type": "object",
            "required": ["vehicle_type", "vehicle"],
            "properties": {
                "vehicle_type": {"type": "string", "example": "sedan"},
                "vehicle": {"$ref": "#/definitions/Vehicle"},
                "with_aon": {"type": "boolean"}
            }
        },
        "PremiumComputation": {
            "type": "object",
            "properties": {
                "vehicle_value": {"type": "number", "example": 364500},
                "vehicle_rate_amount": {"type": "number", "example": 7290},
                "basic_premium": {"type": "number", "example": 11290},
                "premium_after_tax": {"type": "number", "example": 12729.48},
                "with_aon": {"type": "boolean", "example": true},
                "aon_cost": {"type": "number", "example": 1822.5},
                "total_premium": {"type": "number", "example": 14551.98}
            }
        },
        "Quotation": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "quotation_number": {"type": "string", "example": "Q-2025-001"},
                "vehicle_type": {"type": "string"},
                "vehicle": {"$ref": "#/definitions/Vehicle"},
                "premium": {"$ref": "#/definitions/PremiumComputation"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "CommissionInput": {
            "type": "object",
            "properties": {
                "total_amount": {"type": "number", "example": 12000},
                "commission_percent": {"type": "number", "example": 10}
            }
        },
        "CommissionResult": {
            "type": "object",
            "properties": {
                "total_amount": {"type": "number"},
                "commission_percent": {"type": "number"},
                "total_with_commission": {"type": "number", "example": 13200}
            }
        },
        "Policy": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "number": {"type": "string", "example": "POL-2025-000001"},
                "holder_name": {"type": "string"},
                "holder_email": {"type": "string"},
                "vehicle_type": {"type": "string"},
                "vehicle": {"$ref": "#/definitions/Vehicle"},
                "plate_number": {"type": "string"},
                "premium": {"$ref": "#/definitions/PremiumComputation"},
                "claimable_amount": {"type": "number"},
                "status": {"type": "string", "enum": ["active", "lapsed", "cancelled", "expired"]},
                "effective_date": {"type": "string", "format": "date-time"},
                "expiry_date": {"type": "string", "format": "date-time"},
                "issued_at": {"type": "string", "format": "date-time"}
            }
        },
        "PolicyPage": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/Policy"}},
                "total": {"type": "integer"},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"}
            }
        },
        "ScheduleRow": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "policy_id": {"type": "string"},
                "seq": {"type": "integer"},
                "amount_to_be_paid": {"type": "number"},
                "due_date": {"type": "string", "format": "date-time"},
                "is_paid": {"type": "boolean"},
                "paid_amount": {"type": "number"},
                "paid_at": {"type": "string", "format": "date-time"},
                "payable": {"type": "boolean"},
                "overdue": {"type": "boolean"},
                "days_overdue": {"type": "integer"},
                "unpaid_penalty": {"type": "number"},
                "amount_due": {"type": "number"}
            }
        },
        "Schedule": {
            "type": "object",
            "properties": {
                "policy_id": {"type": "string"},
                "as_of": {"type": "string", "format": "date-time"},
                "installments": {"type": "array", "items": {"$ref": "#/definitions/ScheduleRow"}},
                "paid_count": {"type": "integer"},
                "unpaid_count": {"type": "integer"},
                "overdue_count": {"type": "integer"},
                "total_unpaid_penalty": {"type": "number"},
                "next_payable_id": {"type": "string"}
            }
        },
        "Payability": {
            "type": "object",
            "properties": {
                "installment_id": {"type": "string"},
                "payable": {"type": "boolean"},
                "reason": {"type": "string", "example": "installment due 2025-01-15 must be paid first."},
                "amount_due": {"type": "number"},
                "blocked_by": {"type": "string"}
            }
        },
        "ClaimInput": {
            "type": "object",
            "required": ["incident_date", "description"],
            "properties": {
                "incident_date": {"type": "string", "example": "2025-02-03", "description": "YYYY-MM-DD or RFC 3339"},
                "description": {"type": "string", "maxLength": 2000},
                "estimated_amount": {"type": "number", "example": 25000}
            }
        },
        "Claim": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "policy_id": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "under_review", "approved", "rejected", "completed"]},
                "incident_date": {"type": "string", "format": "date-time"},
                "description": {"type": "string"},
                "estimated_amount": {"type": "number"},
                "approved_amount": {"type": "number"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "ClaimEligibility": {
            "type": "object",
            "properties": {
                "can_create": {"type": "boolean"},
                "reason": {"type": "string", "example": "maximum of two claims per policy reached."},
                "claimable_amount": {"type": "number"},
                "claims_count": {"type": "integer"}
            }
        },
        "PolicyEligibility": {
            "type": "object",
            "properties": {
                "policy_id": {"type": "string"},
                "policy_number": {"type": "string"},
                "can_create": {"type": "boolean"},
                "reason": {"type": "string"},
                "claimable_amount": {"type": "number"},
                "claims_count": {"type": "integer"}
            }
        },
        "PolicyEligibilityPage": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/PolicyEligibility"}},
                "total": {"type": "integer"},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"}
            }
        },
        "ProblemDetails": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "example": "about:blank"},
                "title": {"type": "string", "example": "Not Found"},
                "status": {"type": "integer", "example": 404},
                "detail": {"type": "string", "example": "Resource not found"},
                "reason": {"type": "string"}
            }
        }
    },
    "tags": [
        {"name": "Rates", "description": "Per vehicle type rating parameters"},
        {"name": "Quotes", "description": "Premium computation and quotation numbering"},
        {"name": "Policies", "description": "Issued motor policies"},
        {"name": "Payments", "description": "Installment schedule and payment gate"},
        {"name": "Claims", "description": "Claim eligibility and filing"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Motor Portal API",
	Description:      "Motor insurance quotation, payment schedule and claims eligibility API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
