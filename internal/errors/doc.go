// Package errors provides coded errors for the ie-chargen project.
//
// Errors carry a Code, a message, an optional cause and metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", id)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Update(ctx, &character.UpdateInput{Block: block}); err != nil {
//	    return errors.Wrap(err, "failed to save stat block")
//	}
//
// Rules data problems are reported as FailedPrecondition so the host can
// treat them as fatal configuration errors:
//
//	return errors.FailedPreconditionf("class row %q has %d components", name, n)
//
// Multi-field validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("locale", cfg.Locale, vb)
//	errors.ValidateNonNegative("playMode", cfg.PlayMode, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// The CLI maps codes to process exit statuses with Code.ExitCode.
package errors
