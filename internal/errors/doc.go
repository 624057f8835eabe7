// Package errors provides structured errors for the pokemon-api.
//
// Every error carries a Code, a user-facing message, an optional cause and
// optional metadata. Codes map onto HTTP statuses for the REST handlers and
// onto gRPC codes for the health server.
//
// # Basic Usage
//
//	err := errors.NotFoundf("trainer %d not found", id)
//	err := errors.InvalidArgument("birthdate is required").WithMeta("field", "birthdate")
//
// Wrapping keeps the code of a wrapped *Error and defaults to Internal otherwise:
//
//	if err := repo.Create(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to create trainer")
//	}
//
// # Layer Guidelines
//
// Repositories return NotFound, InvalidArgument or Internal and include the
// relevant ids in the message. Orchestrators validate input with the
// ValidationBuilder and wrap repository errors with business context.
// Handlers translate with Code.HTTPStatus and never inspect causes.
//
// A stat comparison between creatures that cannot be aligned is reported as
// FailedPrecondition, and an unreachable reference API as Unavailable.
package errors
