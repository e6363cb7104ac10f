// Package blockkit builds Slack Block Kit message payloads.
//
// Builders are configured through chained setters and finalized with Render,
// which returns an insertion-ordered Payload ready to be encoded as JSON.
// Validation happens in two passes:
//
//   - Field lengths and references are checked when a setter is called. A
//     failing setter records the first error on its builder, ignores the value
//     and keeps the chain going; Err reports it.
//   - Structural rules (required children, collection limits, block IDs) are
//     checked by Render, so a builder may be incomplete while it is being
//     assembled.
//
// Errors match ErrValidation, ErrLogic or ErrParse with errors.Is and can be
// unpacked with errors.As into *ValidationError, *LogicError or *ParseError.
package blockkit
