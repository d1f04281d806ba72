// Package fetchserp provides a client for the FetchSERP search and SEO data API.
//
// Every exported method maps to one API endpoint. It checks its required
// parameters locally, then performs exactly one authenticated HTTP call and
// returns the decoded response.
//
// # Usage
//
// Create a client with your secret key. The base URL and timeout are optional:
//
//	client, err := fetchserp.NewClient(
//		os.Getenv("FETCHSERP_API_KEY"),
//		fetchserp.WithTimeout(10*time.Second),
//		fetchserp.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.GetSerp(ctx, fetchserp.SearchParams{
//		Query:   "golang http client",
//		Country: "us",
//	})
//
// Responses declared as JSON are decoded into Response.Data as generic Go
// values; use Response.Decode to unmarshal into your own types. Other
// content types are returned as text.
//
// # Browser-rendered search
//
// GetSerpJS submits a job and returns its identifier; GetSerpJSResult
// fetches the results later:
//
//	submitted, err := client.GetSerpJS(ctx, fetchserp.SearchParams{Query: "coffee"})
//	id, err := submitted.JobID()
//	results, err := client.GetSerpJSResult(ctx, id)
//
// # Error Handling
//
//   - *ValidationError: a required parameter is missing; no request was sent
//   - *TransportError: no response was received; Timeout() reports whether
//     the client timeout fired (errors.Is(err, ErrTimeout))
//   - *APIError: the server answered with a non-2xx status
//   - *DecodeError: the server declared JSON but sent something else
//
// API errors carry the status code and decoded body:
//
//	if apiErr, ok := fetchserp.AsAPIError(err); ok && apiErr.IsUnauthorized() {
//		// Handle auth failure
//	}
//
// The client does not retry, cache or paginate.
package fetchserp
