package models

import "github.com/golang-jwt/jwt/v5"

const (
	RoleOperator = "operator"
	RoleAuditor  = "auditor"
)

// OperatorClaims are the claims carried by tokens issued to back-office
// operators. Tokens are issued elsewhere; this service only verifies them.
type OperatorClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}
