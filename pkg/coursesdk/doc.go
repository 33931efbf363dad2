/*
Package coursesdk is a Go client for the course service, and the home of its
wire types.

# SDKClient vs Session

SDKClient covers the public endpoints (registration, the catalog, health,
JWKS) and logs in. Login returns a Session, which carries the caller's
tokens and refreshes the access token when it is about to expire:

	client := coursesdk.NewSDKClient("http://localhost:8080")

	session, err := client.Login(ctx, "alice", "correct-horse")
	if errors.Is(err, coursesdk.ErrInvalidCredentials) {
		// wrong username or password
	}

	me, err := session.Me(ctx)
	progress, err := session.StartCourse(ctx, courseID)
	progress, err = session.Next(ctx, courseID)

# Transports

The service delivers tokens either as HttpOnly cookies or in the response
body for use as "Authorization: Bearer" credentials. NewSDKClient speaks the
header transport. NewCookieSDKClient installs a cookie jar and lets the jar
carry the tokens; the Session then never sets an Authorization header.

# Errors

Every failed call returns an *APIError. The predefined values (ErrInvalidToken,
ErrTokenExpired, ErrForbidden, ...) match with errors.Is on status and code.
The server uses the same values to write its responses.
*/
package coursesdk
