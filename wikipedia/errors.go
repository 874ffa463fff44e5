package wikipedia

import (
	"errors"
	"fmt"
	"strings"
)

// PageNotFoundError indicates the requested page does not exist on the wiki.
type PageNotFoundError struct {
	Title string
}

func (e *PageNotFoundError) Error() string {
	return fmt.Sprintf("page %q does not exist. Check the spelling or use Search to find similar titles", e.Title)
}

// RedirectNotFollowedError indicates the page is a redirect but redirect
// following was disabled for the lookup.
type RedirectNotFollowedError struct {
	Title  string
	Target string
}

func (e *RedirectNotFollowedError) Error() string {
	return fmt.Sprintf("page %q redirects to %q and redirect following is disabled", e.Title, e.Target)
}

// UnexpectedRedirectSourceError indicates the API reported a redirect whose
// source does not match the requested title. The response cannot be trusted.
type UnexpectedRedirectSourceError struct {
	Expected string
	Got      string
}

func (e *UnexpectedRedirectSourceError) Error() string {
	return fmt.Sprintf("redirect source mismatch: requested %q but API reported redirect from %q", e.Expected, e.Got)
}

// TooManyRedirectsError indicates a redirect chain exceeded the hop limit,
// usually because of a redirect loop on the wiki.
type TooManyRedirectsError struct {
	Title string
	Hops  int
}

func (e *TooManyRedirectsError) Error() string {
	return fmt.Sprintf("too many redirects resolving %q: gave up after %d hops", e.Title, e.Hops)
}

// DisambiguationError indicates the title resolves to a disambiguation page.
// Candidates holds the concrete titles the page offers, in document order.
type DisambiguationError struct {
	Title      string
	Candidates []string
}

func (e *DisambiguationError) Error() string {
	return fmt.Sprintf("%q may refer to: %s", e.Title, strings.Join(e.Candidates, ", "))
}

// SectionNotFoundError indicates the page content has no section with the
// requested heading.
type SectionNotFoundError struct {
	Title   string
	Section string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("page %q has no section %q", e.Title, e.Section)
}

// MalformedResponseError indicates a well-formed HTTP response whose JSON is
// missing a field the API contract promises. Path names the JSON location
// that was expected (e.g. "query.pages.123.revisions").
type MalformedResponseError struct {
	Field string
	Path  string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed API response: missing %s at %s", e.Field, e.Path)
}

// TransportError wraps a network-level failure: DNS, connection, TLS, or an
// HTTP status outside 2xx. The underlying error is available via Unwrap.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RequestTimeoutError indicates the API itself reported a timeout while
// serving the request (as opposed to a client-side deadline).
type RequestTimeoutError struct {
	Info string
}

func (e *RequestTimeoutError) Error() string {
	return fmt.Sprintf("API request timed out: %s", e.Info)
}

// SearchServiceError indicates the search backend rejected or failed the
// query for a reason other than a timeout.
type SearchServiceError struct {
	Message string
}

func (e *SearchServiceError) Error() string {
	return fmt.Sprintf("search failed: %s", e.Message)
}

// APIError is the catch-all for error objects the API returns on operations
// where no more specific mapping applies.
type APIError struct {
	Code string
	Info string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error [%s]: %s", e.Code, e.Info)
}

// IsPageNotFound reports whether err is a PageNotFoundError.
func IsPageNotFound(err error) bool {
	var e *PageNotFoundError
	return errors.As(err, &e)
}

// IsDisambiguation reports whether err is a DisambiguationError.
func IsDisambiguation(err error) bool {
	var e *DisambiguationError
	return errors.As(err, &e)
}

// IsRedirectNotFollowed reports whether err is a RedirectNotFollowedError.
func IsRedirectNotFollowed(err error) bool {
	var e *RedirectNotFollowedError
	return errors.As(err, &e)
}

// IsTooManyRedirects reports whether err is a TooManyRedirectsError.
func IsTooManyRedirects(err error) bool {
	var e *TooManyRedirectsError
	return errors.As(err, &e)
}

// IsSectionNotFound reports whether err is a SectionNotFoundError.
func IsSectionNotFound(err error) bool {
	var e *SectionNotFoundError
	return errors.As(err, &e)
}

// IsMalformedResponse reports whether err is a MalformedResponseError.
func IsMalformedResponse(err error) bool {
	var e *MalformedResponseError
	return errors.As(err, &e)
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

// IsRequestTimeout reports whether err is a RequestTimeoutError.
func IsRequestTimeout(err error) bool {
	var e *RequestTimeoutError
	return errors.As(err, &e)
}
