package errors

import (
	"errors"
	"fmt"
	"sort"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// Domain identifies compendium errors in gRPC ErrorInfo details
const Domain = "rpg-compendium"

// ToGRPCError converts err to a gRPC status. The code travels as an
// ErrorInfo reason with Meta as its metadata, and field errors as a
// BadRequest detail. Status errors pass through and uncoded errors become
// codes.Internal.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !errors.As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	details := []protoadapt.MessageV1{
		&errdetails.ErrorInfo{
			Reason:   customErr.Code.String(),
			Domain:   Domain,
			Metadata: stringMeta(customErr.Meta),
		},
	}
	if badRequest := fieldViolations(customErr.Meta); badRequest != nil {
		details = append(details, badRequest)
	}

	withDetails, detailErr := st.WithDetails(details...)
	if detailErr != nil {
		return st.Err()
	}
	return withDetails.Err()
}

func stringMeta(meta map[string]any) map[string]string {
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		if k == validationErrorsKey {
			continue
		}
		out[k] = fmt.Sprint(v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func fieldViolations(meta map[string]any) *errdetails.BadRequest {
	fields, ok := meta[validationErrorsKey].(map[string][]string)
	if !ok || len(fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	badRequest := &errdetails.BadRequest{}
	for _, name := range names {
		for _, msg := range fields[name] {
			badRequest.FieldViolations = append(badRequest.FieldViolations,
				&errdetails.BadRequest_FieldViolation{Field: name, Description: msg})
		}
	}
	return badRequest
}
