// Package errors provides coded errors for the rpg-sheet project.
//
// Errors carry a Code, a message, an optional cause and optional metadata.
// The character sheet itself never fails on user input: bad numbers are
// coerced and bad bonus text is skipped. Coded errors are reserved for
// wiring problems (missing dependencies, invalid configuration), storage
// failures, and the single rejected operation in the domain, a dice roll
// requested while another one is still in flight.
//
// # Basic Usage
//
//	err := errors.InvalidArgumentf("unknown stat key: %s", key)
//
//	if err := store.Set(ctx, key, data); err != nil {
//	    return errors.Wrapf(err, "failed to save %s", key)
//	}
//
//	if errors.IsFailedPrecondition(err) {
//	    // a roll is already pending
//	}
//
// # Validation
//
// Constructors validate their Config with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Store == nil {
//	    vb.RequiredField("Store")
//	}
//	return vb.Build()
package errors
