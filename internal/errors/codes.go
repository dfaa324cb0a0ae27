package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code classifies a compendium failure
type Code string

// Codes raised by the compendium
const (
	CodeOK Code = "OK"
	// CodeInvalidArgument marks a missing or malformed request field
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeNotFound marks an unknown entity, overlay or SRD key
	CodeNotFound Code = "NOT_FOUND"
	// CodeFailedPrecondition marks an entity that cannot serve the
	// operation, such as rolling hit points for a spell
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	// CodeUnavailable marks an unreachable SRD source
	CodeUnavailable Code = "UNAVAILABLE"
	// CodeInternal covers storage failures and any uncoded error
	CodeInternal Code = "INTERNAL"
)

type transport struct {
	grpc codes.Code
	http int
}

var transports = map[Code]transport{
	CodeOK:                 {grpc: codes.OK, http: http.StatusOK},
	CodeInvalidArgument:    {grpc: codes.InvalidArgument, http: http.StatusBadRequest},
	CodeNotFound:           {grpc: codes.NotFound, http: http.StatusNotFound},
	CodeFailedPrecondition: {grpc: codes.FailedPrecondition, http: http.StatusPreconditionFailed},
	CodeUnavailable:        {grpc: codes.Unavailable, http: http.StatusServiceUnavailable},
	CodeInternal:           {grpc: codes.Internal, http: http.StatusInternalServerError},
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the gRPC code the API answers with. Unknown codes map to
// codes.Unknown.
func (c Code) GRPCCode() codes.Code {
	if t, ok := transports[c]; ok {
		return t.grpc
	}
	return codes.Unknown
}

// HTTPStatus returns the HTTP status the API answers with. Unknown codes map
// to 500.
func (c Code) HTTPStatus() int {
	if t, ok := transports[c]; ok {
		return t.http
	}
	return http.StatusInternalServerError
}
