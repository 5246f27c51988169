package shared

import (
	"encoding/json"
	"net/http"
)

// maxRequestBodyBytes caps how much of a request body DecodeJSON reads.
// Task payloads are small; anything near this limit is abuse.
const maxRequestBodyBytes = 1 << 20

// DecodeJSON decodes the request body into the given struct, enforcing
// the body size limit.
func DecodeJSON(r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes)
	return json.NewDecoder(body).Decode(v)
}
