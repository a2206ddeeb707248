package middleware

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the opaque session id. The cookie
// never holds identity or claims; those live server-side in the session store.
const SessionCookieName = "auth.sid"

// CookiePolicy decides the attributes of the session cookie. HttpOnly is
// always set. Production tightens to Secure with SameSite=None (cross-site
// over TLS); every other environment uses Lax without Secure.
type CookiePolicy struct {
	Secure   bool
	SameSite http.SameSite
	TTL      time.Duration
}

func NewCookiePolicy(environment string, ttl time.Duration) CookiePolicy {
	p := CookiePolicy{SameSite: http.SameSiteLaxMode, TTL: ttl}
	if environment == "production" {
		p.Secure = true
		p.SameSite = http.SameSiteNoneMode
	}
	return p
}

// Cookie builds the session cookie for the given id with MaxAge equal to the
// session TTL.
func (p CookiePolicy) Cookie(sessionID string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(p.TTL.Seconds()),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
	}
}

// Expired builds a cookie that instructs the browser to drop the session id.
func (p CookiePolicy) Expired() *http.Cookie {
	c := p.Cookie("")
	c.MaxAge = -1
	return c
}
