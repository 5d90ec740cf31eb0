package service

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/huellitas/adoption-client/internal/core/domain"
)

// The backend's login payload shape has drifted across builds: the token
// and role live under several possible field names, sometimes nested under
// a user object, sometimes only inside the JWT. Extraction is an explicit
// ordered list of strategies, each total and side-effect-free, first match
// wins.

// decodeBody turns a raw login body into a generic map. A missing or
// malformed body yields an empty map, never an error.
func decodeBody(raw json.RawMessage) map[string]any {
	payload := map[string]any{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &payload)
	}
	return payload
}

// extractToken returns the first token found under the known field names.
func extractToken(payload map[string]any) string {
	for _, key := range []string{"token", "accessToken", "jwt", "authorization"} {
		s, _ := payload[key].(string)
		if s == "" {
			continue
		}
		// An authorization field may carry the full header value.
		if rest, ok := cutBearer(s); ok {
			return rest
		}
		return s
	}
	return ""
}

func cutBearer(s string) (string, bool) {
	if len(s) > 7 && strings.EqualFold(s[:7], "bearer ") {
		return strings.TrimSpace(s[7:]), true
	}
	return s, false
}

// extractRawRole walks the strategies in their fixed precedence:
// explicit role field on the body or nested user object, first element of
// a roles array on either, then the JWT payload claims.
func extractRawRole(payload map[string]any, token string) (raw, source string) {
	user, _ := payload["user"].(map[string]any)

	for _, v := range []any{user["rol"], user["role"], payload["rol"], payload["role"]} {
		if s := roleValue(v); s != "" {
			return s, "body"
		}
	}
	for _, v := range []any{firstElem(payload["roles"]), firstElem(user["roles"])} {
		if s := roleValue(v); s != "" {
			return s, "body"
		}
	}

	claims := decodeClaims(token)
	for _, v := range []any{
		claims["role"],
		firstElem(claims["roles"]),
		firstElem(claims["authorities"]),
		claims["authority"],
		claims["rol"],
	} {
		if s := roleValue(v); s != "" {
			return s, "jwt"
		}
	}

	return "", ""
}

// roleValue renders a duck-typed role value as a string. Handles plain
// strings, numeric codes, and the `{id, nombre}` object form.
func roleValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case map[string]any:
		if s, _ := val["nombre"].(string); s != "" {
			return s
		}
		return roleValue(val["id"])
	default:
		return ""
	}
}

func firstElem(v any) any {
	if arr, ok := v.([]any); ok && len(arr) > 0 {
		return arr[0]
	}
	return nil
}

// decodeClaims reads the JWT payload without verifying the signature; the
// client only mirrors what the backend already asserted. Any decode
// failure yields no claims rather than an error.
func decodeClaims(token string) jwt.MapClaims {
	if token == "" {
		return nil
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}

// deriveRole resolves the session role from a login payload and token.
// Total: when nothing matches, the role degrades to adopter and matched
// reports false so the caller can surface the fallback.
func deriveRole(payload map[string]any, token string) (role domain.Role, raw string, matched bool) {
	raw, _ = extractRawRole(payload, token)
	role, matched = domain.NormalizeRole(raw)
	return role, raw, matched
}

// extractUser assembles the session identity from whatever the payload
// offers, falling back to the correo the caller logged in with.
func extractUser(payload map[string]any, fallbackCorreo string, role domain.Role) domain.User {
	user, _ := payload["user"].(map[string]any)

	nombre, _ := payload["nombre"].(string)
	if nombre == "" {
		nombre, _ = user["nombre"].(string)
	}
	correo, _ := payload["correo"].(string)
	if correo == "" {
		correo, _ = user["correo"].(string)
	}
	if correo == "" {
		correo = fallbackCorreo
	}

	return domain.User{Nombre: nombre, Correo: correo, Role: role}
}
