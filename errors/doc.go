/*
Package errors defines the error values shared by all extensions and the
helpers to wrap, group and inspect them.

Every error is registered once with Register and carries an ABCI code, so
a client can tell an unauthorized transfer (ErrUnauthorized) from a
balance that is too low (ErrInsufficientAmount) without parsing the log.
Prefer the errors declared here and register a new one only when no
existing code fits.

Add context by wrapping, never by creating a new error:

	if bal < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s holds %d", owner, bal)
	}

Test the kind of an error with Is, which looks through any number of
wraps:

	if errors.ErrNotFound.Is(err) {
		// treat as zero balance
	}

Message validation reports the offending attribute with Field and
collects all failures with AppendField, so that a batch with several bad
items is rejected with one error naming all of them. FieldErrors returns
the failures of a single attribute.

The first wrap records a stack trace. Format the error with %+v to print
it, %v and %s print the message only.
*/
package errors
