package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code classifies an error
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeInternal           Code = "INTERNAL"
)

type transportCodes struct {
	http int
	grpc codes.Code
}

// Stat comparisons that cannot be aligned are a semantically invalid
// request, hence 422. An unreachable reference API is the upstream's fault,
// hence 502.
var transport = map[Code]transportCodes{
	CodeOK:                 {http.StatusOK, codes.OK},
	CodeCanceled:           {http.StatusRequestTimeout, codes.Canceled},
	CodeDeadlineExceeded:   {http.StatusGatewayTimeout, codes.DeadlineExceeded},
	CodeInvalidArgument:    {http.StatusBadRequest, codes.InvalidArgument},
	CodeNotFound:           {http.StatusNotFound, codes.NotFound},
	CodeFailedPrecondition: {http.StatusUnprocessableEntity, codes.FailedPrecondition},
	CodeUnavailable:        {http.StatusBadGateway, codes.Unavailable},
	CodeInternal:           {http.StatusInternalServerError, codes.Internal},
}

// String returns the wire form of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the response status for the code. Unknown codes are 500.
func (c Code) HTTPStatus() int {
	if t, ok := transport[c]; ok {
		return t.http
	}
	return http.StatusInternalServerError
}

// GRPCCode returns the gRPC status code for the code. Unknown codes are Unknown.
func (c Code) GRPCCode() codes.Code {
	if t, ok := transport[c]; ok {
		return t.grpc
	}
	return codes.Unknown
}
