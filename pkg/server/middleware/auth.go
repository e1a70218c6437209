package middleware

import (
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"boardhub/pkg/identity"
	"boardhub/pkg/server/store"
)

const bearerPrefix = "Bearer "

// TrustedProxyChecker reports whether a peer address may supply
// X-Forwarded-For.
type TrustedProxyChecker func(ip net.IP) bool

// Authenticator is middleware that validates bearer tokens and resolves
// them to a user identity.
type Authenticator struct {
	secret       []byte
	users        store.UsersStore
	trustedProxy TrustedProxyChecker
}

// NewAuthenticator creates a new Authenticator middleware
func NewAuthenticator(secret []byte, users store.UsersStore, trustedProxy TrustedProxyChecker) *Authenticator {
	return &Authenticator{secret: secret, users: users, trustedProxy: trustedProxy}
}

// Claims are the token claims boardhub issues and accepts. Subject carries
// the user's email.
type Claims struct {
	jwt.RegisteredClaims
}

// IssueToken mints a signed token for the user, used by the dev CLI and
// tests.
func IssueToken(secret []byte, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Middleware returns an HTTP middleware that validates bearer tokens. On
// success the request context carries an Identity; otherwise the request
// ends with 401.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			unauthorized(w, "Authorization missing")
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			unauthorized(w, "Malformed authorization header")
			return
		}
		tokenStr := strings.TrimSpace(authHeader[len(bearerPrefix):])

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				unauthorized(w, "Token expired")
				return
			}
			unauthorized(w, "Invalid token")
			return
		}

		user, err := a.users.FindByEmail(claims.Subject)
		if err != nil || !user.IsActive {
			unauthorized(w, "Unknown user")
			return
		}

		ident := &identity.Identity{
			UserID:   user.ID,
			Email:    user.Email,
			FullName: user.FullName(),
		}
		if claims.IssuedAt != nil {
			ident.IssuedAt = claims.IssuedAt.Time
		}
		if claims.ExpiresAt != nil {
			ident.ExpiresAt = claims.ExpiresAt.Time
		}
		ident.WithRemoteIP(a.remoteIP(r))

		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), ident)))
	})
}

// remoteIP resolves the client address, honouring X-Forwarded-For only
// when the direct peer is a trusted proxy.
func (a *Authenticator) remoteIP(r *http.Request) net.IP {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	peer := net.ParseIP(host)

	if a.trustedProxy == nil || peer == nil || !a.trustedProxy(peer) {
		return peer
	}

	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return peer
	}
	// Leftmost address is the originating client.
	first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
	if ip := net.ParseIP(first); ip != nil {
		return ip
	}
	return peer
}

func unauthorized(w http.ResponseWriter, message string) {
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(message))
}
