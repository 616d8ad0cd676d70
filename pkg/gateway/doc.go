// Package gateway sends authenticated requests to the GitHub REST API.
//
// # Overview
//
// This package is the single choke point for all GitHub traffic: it attaches
// credentials and protocol headers, encodes request bodies, decodes response
// bodies, and collapses every failure into one error shape. Higher layers
// (see [github.Client]) compose calls to this package and never touch
// net/http directly.
//
// # Usage
//
//	api := gateway.NewClient(gateway.Credential{Login: "octocat", Token: token})
//
//	var user struct {
//	    Login string `json:"login"`
//	}
//	if err := api.Get(ctx, "/user", nil, &user); err != nil {
//	    log.Fatal(err)
//	}
//
// # Requests
//
// Every request carries the bearer token, the GitHub JSON media type, and a
// pinned API version header. Exactly one HTTP round trip is performed per
// call: there are no retries, no redirect handling beyond net/http defaults,
// and no caching.
//
// # Failures
//
// A response outside the 2xx range becomes an [*APIError] preserving the
// original status code and GitHub's diagnostic message. Transport failures
// (DNS, connect, TLS, timeout) are returned as wrapped errors. No call
// panics; every failure is an ordinary error value.
//
// A 2xx response with an empty body (204, 205, or a bodyless 200) succeeds
// without touching the result value.
//
// [github.Client]: github.com/ghops/ghops/pkg/github.Client
package gateway
