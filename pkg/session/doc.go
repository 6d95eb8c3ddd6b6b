// Package session keeps request sessions in signed JWTs instead of a
// server-side store. Everything a session knows lives in the token's claims;
// the server only needs the shared signing key.
//
// # Architecture
//
//	┌────────┐  token   ┌───────────┐  raw token  ┌───────┐  Verify  ┌─────────────┐
//	│ Client │ ───────► │ Transport │ ──────────► │ Codec │ ───────► │ jwt.Service │
//	└────────┘          └───────────┘             └───────┘          └─────────────┘
//	     ▲                                            │
//	     └──────────── Set-Cookie (Write/Destroy) ────┘
//
// Claims is the in-memory claim set. The eight registered claims (iss, sub,
// aud, exp, nbf, iat, jti, typ) are declared from the start with nil values;
// empty values never reach the signed payload.
//
// Codec binds a claim set to a Transport. Start reads the inbound token,
// Write signs the claims and emits a fresh token with new iat, nbf and exp,
// Destroy unsets everything and expires the token on the client.
//
// HTTPTransport looks the token up in the request cookie, then the request
// parameters, then the header of the same name, and always writes a cookie.
//
// # Usage
//
//	cfg := session.DefaultConfig()
//	cfg.Key = os.Getenv("SESSION_KEY")
//
//	mgr, err := session.NewManager(cfg, session.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	r := chi.NewRouter()
//	r.Use(mgr.Middleware)
//	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
//		sess := session.MustFromContext(r.Context())
//		sess.Set(session.ClaimSubject, userID)
//		if !sess.Write() {
//			http.Error(w, "session", http.StatusInternalServerError)
//			return
//		}
//		w.WriteHeader(http.StatusNoContent)
//	})
//
// Tokens must be emitted before the handler writes the response: once headers
// are committed Write and Destroy return false.
//
// # Concurrency
//
// A Codec and its Claims belong to one request and use no locks. Manager is
// immutable and may be shared.
package session
