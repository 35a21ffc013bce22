package opentdb

import "fmt"

// Stage names the endpoint a failure came from.
type Stage string

const (
	StageCategories Stage = "categories"
	StageCount      Stage = "count"
	StageQuestions  Stage = "questions"
)

// FetchFailure is returned when an endpoint answers with a non-200 status.
type FetchFailure struct {
	Stage      Stage
	StatusCode int
}

func (e *FetchFailure) Error() string {
	return fmt.Sprintf("opentdb %s fetch returned status %d", e.Stage, e.StatusCode)
}

// DecodeFailure is returned when a 200 response body is not the expected JSON.
type DecodeFailure struct {
	Stage Stage
	Err   error
}

func (e *DecodeFailure) Error() string {
	return fmt.Sprintf("opentdb %s decode: %v", e.Stage, e.Err)
}

func (e *DecodeFailure) Unwrap() error {
	return e.Err
}

// ResponseCodeFailure is returned when the question endpoint reports a
// non-zero response_code inside an otherwise successful response.
type ResponseCodeFailure struct {
	Stage Stage
	Code  int
}

func (e *ResponseCodeFailure) Error() string {
	return fmt.Sprintf("opentdb %s response_code=%d (%s)", e.Stage, e.Code, responseCodeText(e.Code))
}

func responseCodeText(code int) string {
	switch code {
	case 1:
		return "no results"
	case 2:
		return "invalid parameter"
	case 3:
		return "token not found"
	case 4:
		return "token empty"
	case 5:
		return "rate limit"
	default:
		return "unknown"
	}
}
