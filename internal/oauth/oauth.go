// Package oauth drives the browser authorization flow: it opens the
// provider's consent screen in the user's browser and runs a loopback
// listener that stands in for the web app's callback route.
package oauth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultTimeout bounds how long a flow waits for the provider redirect.
// The user abandoning the browser window would otherwise hang the command
const DefaultTimeout = 2 * time.Minute

const callbackPath = "/callback"

// set of flow errors
var (
	ErrTimedOut      = errors.New("timed out waiting for the authorization to complete")
	errMissingCode   = errors.New("the provider returned no authorization code")
	errStateMismatch = errors.New("authorization response did not match this login attempt")
)

// Exchange trades the provider's authorization code at the SkillSwap
// backend; it runs inside the callback handler, once per flow at most
type Exchange func(code string) error

// Options configure a Coordinator
type Options struct {
	// Timeout overrides DefaultTimeout
	Timeout time.Duration

	// ListenAddr overrides the loopback listen address, primarily for tests
	ListenAddr string

	// OpenBrowser opens the provider's consent screen
	OpenBrowser func(url string) error
}

// Coordinator runs browser authorization flows against a SkillSwap backend.
// A Coordinator is not safe for overlapping flows; commands run one at a time
type Coordinator struct {
	authURL     func(provider string) (string, error)
	openBrowser func(url string) error
	listenAddr  string
	timeout     time.Duration
}

// NewCoordinator creates a new flow coordinator; authURL fetches the
// provider's authorization URL from the backend
func NewCoordinator(authURL func(provider string) (string, error), options Options) *Coordinator {
	timeout := options.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	listenAddr := options.ListenAddr
	if listenAddr == "" {
		listenAddr = "127.0.0.1:0"
	}

	return &Coordinator{
		authURL:     authURL,
		openBrowser: options.OpenBrowser,
		listenAddr:  listenAddr,
		timeout:     timeout,
	}
}

type result struct {
	err error
}

// Run executes a single authorization flow for the provider and blocks
// until the callback handler reports an outcome, the context is canceled
// or the flow times out. Exactly one outcome is reported per attempt
func (c *Coordinator) Run(ctx context.Context, provider string, exchange Exchange) error {
	authURL, authURLErr := c.authURL(provider)
	if authURLErr != nil {
		return fmt.Errorf("failed to begin the %s authorization: %w", provider, authURLErr)
	}

	listener, listenErr := net.Listen("tcp", c.listenAddr)
	if listenErr != nil {
		return fmt.Errorf("failed to start the callback listener: %w", listenErr)
	}

	state := primitive.NewObjectID().Hex()

	redirectURI := fmt.Sprintf("http://%s%s", listener.Addr().String(), callbackPath)

	authURL, rewriteErr := rewriteAuthURL(authURL, redirectURI, state)
	if rewriteErr != nil {
		listener.Close()
		return rewriteErr
	}

	// the callback handler resolves the flow at most once; stray or repeated
	// redirects after that are answered but not reported
	results := make(chan result, 1)
	var once sync.Once
	resolve := func(err error) {
		once.Do(func() { results <- result{err} })
	}

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, callbackHandler(state, exchange, resolve))

	server := &http.Server{Handler: mux}
	go server.Serve(listener)
	defer server.Close()

	if err := c.openBrowser(authURL); err != nil {
		return fmt.Errorf("failed to open a browser for %s: %w", authURL, err)
	}

	select {
	case res := <-results:
		return res.err
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.timeout):
		return ErrTimedOut
	}
}

// callbackHandler handles the provider redirect: it validates the query,
// runs the code exchange and reports the outcome. A missing code or a
// state mismatch resolves the flow without issuing the exchange call
func callbackHandler(state string, exchange Exchange, resolve func(error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			resolve(errMissingCode)
			writePage(w, http.StatusBadRequest, pageFailure)
			return
		}

		if r.URL.Query().Get("state") != state {
			resolve(errStateMismatch)
			writePage(w, http.StatusBadRequest, pageFailure)
			return
		}

		if err := exchange(code); err != nil {
			resolve(err)
			writePage(w, http.StatusBadGateway, pageFailure)
			return
		}

		resolve(nil)
		writePage(w, http.StatusOK, pageSuccess)
	}
}

// rewriteAuthURL points the authorization URL's redirect_uri at the
// loopback listener and attaches the flow's state nonce; the URL the
// backend hands out targets the web app's callback route instead
func rewriteAuthURL(authURL, redirectURI, state string) (string, error) {
	u, err := url.Parse(authURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse the authorization URL: %w", err)
	}

	q := u.Query()
	q.Set("redirect_uri", redirectURI)
	q.Set("state", state)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
