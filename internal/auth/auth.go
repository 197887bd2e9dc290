// Package auth implements the OAuth login flow for the Doc Hub backend: an
// authorization-code exchange through a short-lived localhost callback
// server, plus identity extraction from the issued access token.
package auth

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"dochub/internal/errors"
	"dochub/internal/logger"
)

const (
	clientID     = "dochub-cli"
	callbackPort = 8976
	loginTimeout = 5 * time.Minute
)

// Flow runs one interactive login.
type Flow struct {
	oauth *oauth2.Config
}

// NewFlow creates a login flow against the given server.
func NewFlow(serverURL string) *Flow {
	return &Flow{
		oauth: &oauth2.Config{
			ClientID: clientID,
			Endpoint: oauth2.Endpoint{
				AuthURL:  serverURL + "/oauth/authorize",
				TokenURL: serverURL + "/oauth/token",
			},
			RedirectURL: fmt.Sprintf("http://localhost:%d/callback", callbackPort),
			Scopes:      []string{"spaces", "documents", "chat"},
		},
	}
}

// Login starts the callback server, hands the authorization URL to openURL
// (normally a browser launcher), and blocks until the redirect arrives or
// ctx expires. Returns the exchanged token.
func (f *Flow) Login(ctx context.Context, openURL func(string) error) (*oauth2.Token, error) {
	const op errors.Op = "auth.Login"

	state := uuid.NewString()

	ln, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", callbackPort))
	if err != nil {
		return nil, errors.E(op, errors.KindIO, err)
	}

	type callback struct {
		code string
		err  error
	}
	results := make(chan callback, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			results <- callback{err: errors.E(op, errors.KindAuth, "authorization state mismatch")}
			return
		}
		if msg := q.Get("error"); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			results <- callback{err: errors.E(op, errors.KindAuth, msg)}
			return
		}
		fmt.Fprintln(w, "Logged in. You can close this window and return to the terminal.")
		results <- callback{code: q.Get("code")}
	})

	srv := &http.Server{Handler: mux}
	go srv.Serve(ln)
	defer srv.Close()

	authURL := f.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
	if err := openURL(authURL); err != nil {
		return nil, errors.E(op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, loginTimeout)
	defer cancel()

	select {
	case <-ctx.Done():
		return nil, errors.E(op, errors.KindTimeout, ctx.Err())
	case cb := <-results:
		if cb.err != nil {
			return nil, cb.err
		}
		tok, err := f.oauth.Exchange(ctx, cb.code)
		if err != nil {
			return nil, errors.E(op, errors.KindAuth, err)
		}
		logger.Info("Auth: login succeeded, token expires %s", tok.Expiry)
		return tok, nil
	}
}
