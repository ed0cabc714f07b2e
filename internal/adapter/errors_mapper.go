package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/akwaabahomes/passcheck/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusUnprocessableEntity:
		return decodeViolation(resp.Body())
	case http.StatusTooManyRequests:
		if retry := resp.Header().Get("Retry-After"); retry != "" {
			return fmt.Errorf("%w: retry after %ss", ErrTooManyRequests, retry)
		}
		return ErrTooManyRequests
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// decodeViolation turns a 422 body into a ViolationError. A body that is not
// a PolicyViolation still yields ErrPolicyViolation, just without feedback.
func decodeViolation(body []byte) error {
	var v models.PolicyViolation
	if err := json.Unmarshal(body, &v); err != nil {
		return &ViolationError{}
	}
	return &ViolationError{Message: v.Error, Result: v.Result}
}
