// Package errors carries coded errors through the compendium.
//
// Repositories and orchestrators return *Error values with one of a small set
// of codes. Wrapping keeps the code of the innermost coded error, so a
// NotFound raised by the entity repository is still NotFound when the gRPC
// handler or HTTP router sees it:
//
//	got, err := repo.Get(ctx, input)
//	if err != nil {
//	    return nil, errors.Wrapf(err, "failed to load entity %s", input.EntityID)
//	}
//
// Request validation collects every bad field before failing:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("ruleset_id", input.RulesetID, vb)
//	errors.ValidateEnum("kind", input.Kind, ImportKinds, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// ToGRPCError and ToHTTP translate at the transport edge. Field errors
// become a BadRequest detail over gRPC and a "fields" object over HTTP.
package errors
