/*
Package errors implements custom error interfaces for weave.

Reuse as many errors from this package as possible and define custom package
errors only when absolutely necessary (see x/kitty for an extension that
registers its own codes).

If you want to register a custom error - use Register(code, description).
For reusing errors - use Errxxx.New, Errxxx.Newf or Wrap.
Code stands for ABCI error code, which allows to distinguish types of errors
on the client side and act accordingly.

Please ensure you create the custom error using ErrXyz.New("...") or
errors.Wrap(err, "...") at the point of creation to ensure we attach a
stacktrace. If you wrap multiple times, we only record the first wrap with the
stacktrace.
*/
package errors
